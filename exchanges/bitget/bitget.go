package bitget

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thrasher-corp/bitget-legacy/common"
	"github.com/thrasher-corp/bitget-legacy/config"
	"github.com/thrasher-corp/bitget-legacy/encoding/json"
	"github.com/thrasher-corp/bitget-legacy/exchanges/asset"
	"github.com/thrasher-corp/bitget-legacy/exchanges/request"
)

// Bitget is the overarching type across this package
type Bitget struct {
	Name          string
	Verbose       bool
	HTTPDebugging bool
	// DefaultType is the product family whose account is used when no
	// account id is configured
	DefaultType asset.Item
	// VolumeFields selects the candle volume field per product family
	VolumeFields VolumeFieldTable

	Requester *request.Requester

	endpoints   map[URL]string
	credentials Credentials
	accountID   string

	registry atomic.Pointer[Registry]
	// loadMu serialises market reloads, readers never take it
	loadMu sync.Mutex
	now    func() time.Time
}

// URL identifies one of the REST API hosts
type URL uint8

// REST API hosts
const (
	// RestData serves public spot market data
	RestData URL = iota
	// RestAPI serves the private spot account API
	RestAPI
	// RestContract serves public contract market data
	RestContract
	// RestSwap serves the private swap API
	RestSwap
)

const (
	bitgetDataURL = "https://api.bitget.com/data/v1"
	bitgetAPIURL  = "https://api.bitget.com/api/v1"
	bitgetSwapURL = "https://capi.bitget.com/api/swap/v3"

	// Public spot endpoints
	bitgetKline      = "market/history/kline"
	bitgetMergedTick = "market/detail/merged"
	bitgetTickers    = "market/tickers"
	bitgetDepth      = "market/depth"
	bitgetTradeHist  = "market/history/trade"
	bitgetSymbols    = "common/symbols"
	bitgetCurrencies = "common/currencys" // sic
	bitgetServerTime = "common/timestamp"

	// Public contract endpoints
	bitgetContracts = "market/contracts"
	bitgetTicker    = "market/ticker"
	bitgetTrades    = "market/trades"
	bitgetCandles   = "market/candles"

	// Private spot endpoints
	bitgetAccounts    = "account/accounts"
	bitgetBalance     = "accounts/{account_id}/balance"
	bitgetOrders      = "order/orders"
	bitgetPlaceSpot   = "order/orders/place"
	bitgetCancelSpot  = "order/orders/{order_id}/submitcancel"
	bitgetOrderSpot   = "order/orders/{order_id}"
	bitgetMatches     = "order/matchresults"
	bitgetDepositWith = "dw/query/deposit_withdraw"

	// Private swap endpoints
	bitgetSwapAccounts = "account/accounts"
	bitgetSwapDetail   = "order/detail"
	bitgetSwapOrders   = "order/orders"
	bitgetSwapFills    = "order/fills"
	bitgetSwapPlace    = "order/placeOrder"
	bitgetSwapCancel   = "order/cancel_order"
)

var (
	errEndpointUnset      = errors.New("endpoint URL not set")
	errUnsupportedFamily  = errors.New("unsupported signing family")
	errUnexpectedResponse = errors.New("unexpected response")
)

// SetCredentials sets the API credentials used for authenticated requests
func (bi *Bitget) SetCredentials(creds Credentials) {
	bi.credentials = creds
}

// SetEndpoint overrides the base URL of an API host
func (bi *Bitget) SetEndpoint(u URL, endpoint string) error {
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return fmt.Errorf("%w: %w", errEndpointUnset, err)
	}
	bi.endpoints[u] = strings.TrimSuffix(endpoint, "/")
	return nil
}

// Endpoint returns the base URL of an API host
func (bi *Bitget) Endpoint(u URL) (string, error) {
	e, ok := bi.endpoints[u]
	if !ok || e == "" {
		return "", fmt.Errorf("%w: %d", errEndpointUnset, u)
	}
	return e, nil
}

// SetRegistry publishes a fully built market registry
func (bi *Bitget) SetRegistry(r *Registry) {
	bi.registry.Store(r)
}

// Registry returns the current market registry, nil until markets are loaded
func (bi *Bitget) Registry() *Registry {
	return bi.registry.Load()
}

// SendHTTPRequest sends an unauthenticated GET request and returns the
// response body as a tagged payload
func (bi *Bitget) SendHTTPRequest(ctx context.Context, ep URL, path string, params url.Values) (Payload, error) {
	base, err := bi.Endpoint(ep)
	if err != nil {
		return Payload{}, err
	}
	var raw json.RawMessage
	newRequest := func() (*request.Item, error) {
		signed, err := Sign(FamilyA, http.MethodGet, base, path, params, Credentials{}, 0)
		if err != nil {
			return nil, err
		}
		return &request.Item{
			Method:        http.MethodGet,
			Path:          signed.URL,
			Result:        &raw,
			Verbose:       bi.Verbose,
			HTTPDebugging: bi.HTTPDebugging,
			CheckResponse: checkResponse,
		}, nil
	}
	if err := bi.Requester.SendPayload(ctx, request.UnAuth, newRequest); err != nil {
		return Payload{}, err
	}
	return ParsePayload(raw)
}

// SendAuthenticatedHTTPRequest sends a request signed for the family and
// returns the response body as a tagged payload. The signature is refreshed on
// every attempt.
func (bi *Bitget) SendAuthenticatedHTTPRequest(ctx context.Context, family Family, method, path string, params url.Values) (Payload, error) {
	var ep URL
	switch family {
	case FamilyB:
		ep = RestSwap
	case FamilyC:
		ep = RestAPI
	default:
		return Payload{}, fmt.Errorf("%w: %d", errUnsupportedFamily, family)
	}
	base, err := bi.Endpoint(ep)
	if err != nil {
		return Payload{}, err
	}
	var raw json.RawMessage
	newRequest := func() (*request.Item, error) {
		signed, err := Sign(family, method, base, path, params, bi.credentials, bi.now().UnixMilli())
		if err != nil {
			return nil, err
		}
		item := &request.Item{
			Method:        method,
			Path:          signed.URL,
			Headers:       signed.Headers,
			Result:        &raw,
			Verbose:       bi.Verbose,
			HTTPDebugging: bi.HTTPDebugging,
			CheckResponse: checkResponse,
		}
		if signed.Body != "" {
			item.Body = strings.NewReader(signed.Body)
		}
		return item, nil
	}
	if err := bi.Requester.SendPayload(ctx, request.Auth, newRequest); err != nil {
		return Payload{}, err
	}
	return ParsePayload(raw)
}

// checkResponse classifies exchange errors carried in any response body,
// including those returned with a non 2xx status
func checkResponse(_ int, contents []byte) error {
	return CheckResponse(contents)
}

// familyEndpoint returns the public host serving market data of a family
func familyEndpoint(family asset.Item) (URL, error) {
	switch family {
	case asset.Spot:
		return RestData, nil
	case asset.Swap:
		return RestContract, nil
	}
	return 0, fmt.Errorf("%w: %q", asset.ErrNotSupported, family)
}

// newRequester builds the HTTP requester with a single rate budget shared by
// public and private endpoints
func newRequester(name string, exch *config.Exchange) *request.Requester {
	limiter := request.NewRateLimit(exch.RateLimit.Interval, exch.RateLimit.Actions)
	return request.New(name,
		common.NewHTTPClientWithTimeout(exch.HTTPTimeout),
		request.WithLimiter(request.RateLimitDefinitions{
			request.Auth:   limiter,
			request.UnAuth: limiter,
		}),
		request.WithMaxRetries(exch.Retry.MaxAttempts),
		request.WithBackoff(request.LinearBackoff(exch.Retry.Backoff, time.Second)),
		request.WithUserAgent(exch.HTTPUserAgent))
}
