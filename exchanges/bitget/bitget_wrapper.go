package bitget

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/bitget-legacy/common"
	"github.com/thrasher-corp/bitget-legacy/config"
	"github.com/thrasher-corp/bitget-legacy/currency"
	"github.com/thrasher-corp/bitget-legacy/exchanges/asset"
	"github.com/thrasher-corp/bitget-legacy/exchanges/order"
	"github.com/thrasher-corp/bitget-legacy/exchanges/request"
	"github.com/thrasher-corp/bitget-legacy/log"
)

// Order status query codes
const (
	OrderQueryCancelled = -1
	OrderQueryUnfilled  = 0
	OrderQueryPartial   = 1
	OrderQueryFilled    = 2
	OrderQueryOpen      = 3
	OrderQueryDone      = 4
	OrderQueryAll       = 5
)

const (
	defaultSwapDepthLimit  = 100
	defaultSwapTradeLimit  = 100
	defaultSwapCandleLimit = 1000
	isoMillis              = "2006-01-02T15:04:05.000Z"
)

var (
	errConfigNil         = errors.New("config is nil")
	errSymbolRequired    = errors.New("symbol argument required")
	errAccountNotFound   = errors.New("no account found")
	errAccountAmbiguous  = errors.New("more than one account found")
	errMarketBuyNoPrice  = errors.New("spot market buy orders require a price to compute the order cost")
	errInvalidDirection  = errors.New("transaction kind must be deposit or withdrawal")
	errInvalidOrderQuery = errors.New("order status query code out of range")
)

var validate = validator.New()

// New returns a Bitget instance set up from cfg. A nil cfg yields the
// defaults without credentials.
func New(cfg *config.Config) (*Bitget, error) {
	bi := new(Bitget)
	bi.SetDefaults()
	if cfg == nil {
		return bi, nil
	}
	if err := bi.Setup(cfg); err != nil {
		return nil, err
	}
	return bi, nil
}

// SetDefaults sets the basic defaults for Bitget
func (bi *Bitget) SetDefaults() {
	bi.Name = "Bitget"
	bi.DefaultType = asset.Spot
	bi.VolumeFields = DefaultVolumeFields
	bi.endpoints = map[URL]string{
		RestData:     bitgetDataURL,
		RestAPI:      bitgetAPIURL,
		RestContract: bitgetSwapURL,
		RestSwap:     bitgetSwapURL,
	}
	bi.now = time.Now
	bi.Requester = newRequester(bi.Name, &config.Default().Exchange)
}

// Setup takes in the supplied configuration and sets params
func (bi *Bitget) Setup(cfg *config.Config) error {
	if cfg == nil {
		return errConfigNil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	exch := cfg.Exchange
	bi.Verbose = exch.Verbose
	bi.accountID = exch.AccountID
	if exch.DefaultType != "" {
		a, err := asset.New(exch.DefaultType)
		if err != nil {
			return err
		}
		bi.DefaultType = a
	}
	for u, e := range map[URL]string{
		RestData:     exch.Endpoints.Data,
		RestAPI:      exch.Endpoints.API,
		RestContract: exch.Endpoints.Swap,
		RestSwap:     exch.Endpoints.Swap,
	} {
		if e == "" {
			continue
		}
		if err := bi.SetEndpoint(u, e); err != nil {
			return err
		}
	}
	bi.Requester = newRequester(bi.Name, &exch)

	if cfg.AuthenticatedSupport() {
		bi.SetCredentials(Credentials{
			Key:      cfg.Credentials.Key,
			Secret:   cfg.Credentials.Secret,
			ClientID: cfg.Credentials.ClientID,
		})
		if !cfg.SwapAuthenticatedSupport() {
			log.Warnf(log.ExchangeSys, "%s swap authenticated API support disabled, passphrase not set", bi.Name)
		}
	} else {
		log.Warnf(log.ExchangeSys, config.WarningAuthAPIDefaultOrEmptyValues, bi.Name)
	}
	return nil
}

// FetchTime returns the exchange server time in epoch milliseconds
func (bi *Bitget) FetchTime(ctx context.Context) (int64, error) {
	p, err := bi.SendHTTPRequest(ctx, RestData, bitgetServerTime, nil)
	if err != nil {
		return 0, err
	}
	r, err := p.Record()
	if err != nil {
		return 0, err
	}
	v := r.Value()
	if !v.Valid {
		return 0, fmt.Errorf("%w: server time %s", errUnexpectedResponse, p.Raw())
	}
	return strconv.ParseInt(v.String, 10, 64)
}

// FetchMarkets returns the markets of the product families, both when none
// are supplied
func (bi *Bitget) FetchMarkets(ctx context.Context, families ...asset.Item) ([]Market, error) {
	if len(families) == 0 {
		families = asset.Supported()
	}
	var markets []Market
	for _, f := range families {
		var (
			p   Payload
			err error
		)
		switch f {
		case asset.Spot:
			p, err = bi.SendHTTPRequest(ctx, RestData, bitgetSymbols, nil)
		case asset.Swap:
			p, err = bi.SendHTTPRequest(ctx, RestContract, bitgetContracts, nil)
		default:
			return nil, fmt.Errorf("%w: %q", asset.ErrNotSupported, f)
		}
		if err != nil {
			return nil, err
		}
		m, err := ParseMarkets(p)
		if err != nil {
			return nil, err
		}
		markets = append(markets, m...)
	}
	return markets, nil
}

// LoadMarkets returns the market registry, fetching and publishing it first
// when none is loaded or reload is set. Concurrent callers never observe a
// partially built registry.
func (bi *Bitget) LoadMarkets(ctx context.Context, reload bool) (*Registry, error) {
	if r := bi.Registry(); r != nil && !reload {
		return r, nil
	}
	bi.loadMu.Lock()
	defer bi.loadMu.Unlock()
	if r := bi.Registry(); r != nil && !reload {
		return r, nil
	}
	markets, err := bi.FetchMarkets(ctx)
	if err != nil {
		return nil, err
	}
	r := NewRegistry(markets)
	bi.SetRegistry(r)
	if bi.Verbose {
		log.Debugf(log.ExchangeSys, "%s loaded %d markets", bi.Name, r.Len())
	}
	return r, nil
}

// market loads markets when required and resolves a unified symbol
func (bi *Bitget) market(ctx context.Context, symbol string) (Market, *Registry, error) {
	if symbol == "" {
		return Market{}, nil, NewError(KindArgumentsRequired, "%v", errSymbolRequired)
	}
	r, err := bi.LoadMarkets(ctx, false)
	if err != nil {
		return Market{}, nil, err
	}
	m, err := r.Market(symbol)
	return m, r, err
}

// FetchCurrencies returns the currencies supported by the exchange keyed by
// currency code
func (bi *Bitget) FetchCurrencies(ctx context.Context) (map[string]Currency, error) {
	p, err := bi.SendHTTPRequest(ctx, RestData, bitgetCurrencies, nil)
	if err != nil {
		return nil, err
	}
	records, err := p.Records()
	if err != nil {
		return nil, err
	}
	result := make(map[string]Currency, len(records))
	for i := range records {
		id := records[i].Value()
		if !id.Valid {
			continue
		}
		c := Currency{ID: id.String, Code: currency.SafeCode(id.String)}
		result[c.Code.String()] = c
	}
	return result, nil
}

// FetchOrderBook returns the depth snapshot of a market. Contract depth is
// limited to 100 levels when limit is zero.
func (bi *Bitget) FetchOrderBook(ctx context.Context, symbol string, limit int) (OrderBook, error) {
	m, _, err := bi.market(ctx, symbol)
	if err != nil {
		return OrderBook{}, err
	}
	params := url.Values{}
	params.Set("symbol", m.ID)
	if m.Spot {
		// step0 disables depth merging
		params.Set("type", "step0")
	} else {
		if limit <= 0 {
			limit = defaultSwapDepthLimit
		}
		params.Set("limit", strconv.Itoa(limit))
	}
	ep, err := familyEndpoint(m.Type)
	if err != nil {
		return OrderBook{}, err
	}
	p, err := bi.SendHTTPRequest(ctx, ep, bitgetDepth, params)
	if err != nil {
		return OrderBook{}, err
	}
	r, err := p.Record()
	if err != nil {
		return OrderBook{}, err
	}
	return ParseOrderBook(r, m.Symbol)
}

// FetchTicker returns the 24h ticker of a market
func (bi *Bitget) FetchTicker(ctx context.Context, symbol string) (Ticker, error) {
	m, reg, err := bi.market(ctx, symbol)
	if err != nil {
		return Ticker{}, err
	}
	path, ep := bitgetMergedTick, RestData
	if m.Swap {
		path, ep = bitgetTicker, RestContract
	}
	params := url.Values{}
	params.Set("symbol", m.ID)
	p, err := bi.SendHTTPRequest(ctx, ep, path, params)
	if err != nil {
		return Ticker{}, err
	}
	r, err := p.Record()
	if err != nil {
		return Ticker{}, err
	}
	t := ParseTicker(r, reg)
	if t.Symbol == "" {
		t.Symbol = m.Symbol
	}
	if !t.Timestamp.Valid {
		t.Timestamp = p.Timestamp
	}
	return t, nil
}

// FetchTickers returns the tickers of every market of a product family,
// filtered to symbols when supplied
func (bi *Bitget) FetchTickers(ctx context.Context, family asset.Item, symbols ...string) ([]Ticker, error) {
	reg, err := bi.LoadMarkets(ctx, false)
	if err != nil {
		return nil, err
	}
	ep, err := familyEndpoint(family)
	if err != nil {
		return nil, err
	}
	p, err := bi.SendHTTPRequest(ctx, ep, bitgetTickers, nil)
	if err != nil {
		return nil, err
	}
	tickers, err := ParseTickers(p, reg)
	if err != nil {
		return nil, err
	}
	if len(symbols) == 0 {
		return tickers, nil
	}
	return slices.DeleteFunc(tickers, func(t Ticker) bool {
		return !slices.Contains(symbols, t.Symbol)
	}), nil
}

// FetchTrades returns recent public trades of a market
func (bi *Bitget) FetchTrades(ctx context.Context, symbol string, limit int) ([]Trade, error) {
	m, reg, err := bi.market(ctx, symbol)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("symbol", m.ID)
	path, ep := bitgetTradeHist, RestData
	if m.Spot {
		if limit > 0 {
			params.Set("size", strconv.Itoa(limit))
		}
	} else {
		path, ep = bitgetTrades, RestContract
		if limit <= 0 {
			limit = defaultSwapTradeLimit
		}
		params.Set("limit", strconv.Itoa(limit))
	}
	p, err := bi.SendHTTPRequest(ctx, ep, path, params)
	if err != nil {
		return nil, err
	}
	var records []Record
	if p.Kind == PayloadArray {
		records, err = p.Records()
	} else {
		// spot trades are nested under data.data
		records, err = p.Records("data")
	}
	if err != nil {
		return nil, err
	}
	return ParseTrades(records, reg, &m), nil
}

// FetchOHLCV returns candles of a market. Contract candles are requested for
// the window [since, since+limit*timeframe], ending now when since is zero.
func (bi *Bitget) FetchOHLCV(ctx context.Context, symbol, timeframe string, since time.Time, limit int) ([]Candle, error) {
	m, _, err := bi.market(ctx, symbol)
	if err != nil {
		return nil, err
	}
	interval, err := Timeframe(m.Type, timeframe)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("symbol", m.ID)
	path, ep := bitgetKline, RestData
	if m.Spot {
		params.Set("period", interval)
		if limit > 0 {
			params.Set("size", strconv.Itoa(limit))
		}
	} else {
		path, ep = bitgetCandles, RestContract
		params.Set("granularity", interval)
		seconds, err := strconv.Atoi(interval)
		if err != nil {
			return nil, err
		}
		start, end := candleWindow(bi.now(), since, limit, time.Duration(seconds)*time.Second)
		if err := common.StartEndTimeCheck(start, end); err != nil {
			return nil, NewError(KindBadRequest, "candle window: %v", err)
		}
		params.Set("start", start.UTC().Format(isoMillis))
		params.Set("end", end.UTC().Format(isoMillis))
	}
	p, err := bi.SendHTTPRequest(ctx, ep, path, params)
	if err != nil {
		return nil, err
	}
	records, err := p.Records()
	if err != nil {
		return nil, err
	}
	return ParseCandles(records, m.Type, bi.VolumeFields), nil
}

// candleWindow returns the contract candle request window
func candleWindow(now, since time.Time, limit int, duration time.Duration) (start, end time.Time) {
	if since.IsZero() {
		if limit <= 0 {
			limit = defaultSwapCandleLimit
		}
		return now.Add(-time.Duration(limit) * duration), now
	}
	if limit <= 0 {
		return since, now
	}
	return since, since.Add(time.Duration(limit) * duration)
}

// FetchAccounts returns the spot accounts of the user
func (bi *Bitget) FetchAccounts(ctx context.Context) ([]Account, error) {
	params := url.Values{}
	params.Set("method", "accounts")
	p, err := bi.SendAuthenticatedHTTPRequest(ctx, FamilyC, http.MethodGet, bitgetAccounts, params)
	if err != nil {
		return nil, err
	}
	records, err := p.Records()
	if err != nil {
		return nil, err
	}
	accounts := make([]Account, 0, len(records))
	for i := range records {
		accounts = append(accounts, Account{
			ID:   records[i].String("id").String,
			Type: strings.ToLower(records[i].String("type").String),
		})
	}
	return accounts, nil
}

// FindAccountByType returns the single account of type, an error is returned
// when there is none or more than one
func (bi *Bitget) FindAccountByType(ctx context.Context, accountType string) (Account, error) {
	accounts, err := bi.FetchAccounts(ctx)
	if err != nil {
		return Account{}, err
	}
	var found []Account
	for i := range accounts {
		if accounts[i].Type == accountType {
			found = append(found, accounts[i])
		}
	}
	switch len(found) {
	case 0:
		return Account{}, NewError(KindExchange, "%v with type %q, set an account id instead", errAccountNotFound, accountType)
	case 1:
		return found[0], nil
	}
	return Account{}, NewError(KindExchange, "%v with type %q, set an account id instead", errAccountAmbiguous, accountType)
}

// AccountID returns the configured account id, else the id of the single
// account of the default type
func (bi *Bitget) AccountID(ctx context.Context) (string, error) {
	if bi.accountID != "" {
		return bi.accountID, nil
	}
	a, err := bi.FindAccountByType(ctx, bi.DefaultType.String())
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

// FetchBalance returns the balances of a product family account
func (bi *Bitget) FetchBalance(ctx context.Context, family asset.Item) (BalanceSet, error) {
	var (
		p   Payload
		err error
	)
	switch family {
	case asset.Spot:
		var id string
		if id, err = bi.AccountID(ctx); err != nil {
			return BalanceSet{}, err
		}
		params := url.Values{}
		params.Set("account_id", id)
		params.Set("method", "balance")
		p, err = bi.SendAuthenticatedHTTPRequest(ctx, FamilyC, http.MethodGet, bitgetBalance, params)
	case asset.Swap:
		p, err = bi.SendAuthenticatedHTTPRequest(ctx, FamilyB, http.MethodGet, bitgetSwapAccounts, nil)
	default:
		return BalanceSet{}, fmt.Errorf("%w: %q", asset.ErrNotSupported, family)
	}
	if err != nil {
		return BalanceSet{}, err
	}
	return ParseBalance(family, p, bi.Registry())
}

// CreateOrder places an order. Contract orders open a position in the
// direction of Side unless PositionAction is set.
func (bi *Bitget) CreateOrder(ctx context.Context, s *OrderSubmission) (Order, error) {
	if s == nil {
		return Order{}, order.ErrSubmissionIsNil
	}
	if err := validate.Struct(s); err != nil {
		return Order{}, NewError(KindInvalidOrder, "%v", err)
	}
	submit := order.Submit{Symbol: s.Symbol, Side: s.Side, Type: s.Type, Amount: s.Amount, Price: s.Price}
	if s.MatchPrice {
		// price is ignored when matching the best counter party price
		submit.Type = order.Market
	}
	if err := submit.Validate(); err != nil {
		return Order{}, NewError(KindInvalidOrder, "%v", err)
	}
	m, reg, err := bi.market(ctx, s.Symbol)
	if err != nil {
		return Order{}, err
	}
	// Placement is not idempotent, a retried timeout could double fill
	ctx = request.WithRetryNotAllowed(ctx)

	params := url.Values{}
	var p Payload
	if m.Swap {
		clientID := s.ClientOrderID
		if clientID == "" {
			if clientID, err = newClientOrderID(); err != nil {
				return Order{}, err
			}
		}
		action := s.PositionAction
		if action == 0 {
			action = 1
			if s.Side == order.Sell {
				action = 2
			}
		}
		matchPrice := "0"
		if s.MatchPrice {
			matchPrice = "1"
		}
		params.Set("instrument_id", m.ID)
		params.Set("client_oid", clientID)
		params.Set("type", strconv.Itoa(action))
		params.Set("size", s.Amount.String())
		if s.Price.IsPositive() {
			params.Set("price", s.Price.String())
		}
		params.Set("match_price", matchPrice)
		params.Set("order_type", strconv.Itoa(s.TimeInForce))
		p, err = bi.SendAuthenticatedHTTPRequest(ctx, FamilyB, http.MethodPost, bitgetSwapPlace, params)
	} else {
		amount := s.Amount
		if s.Type == order.Market && s.Side == order.Buy {
			// market buys are sized in quote currency
			if !s.Price.IsPositive() {
				return Order{}, NewError(KindInvalidOrder, "%v", errMarketBuyNoPrice)
			}
			amount = amount.Mul(s.Price)
		}
		params.Set("symbol", m.ID)
		params.Set("type", s.Side.Lower()+"-"+s.Type.Lower())
		params.Set("amount", amount.String())
		if s.Type == order.Limit {
			params.Set("price", s.Price.String())
		}
		params.Set("method", "placeOrder")
		p, err = bi.SendAuthenticatedHTTPRequest(ctx, FamilyC, http.MethodPost, bitgetPlaceSpot, params)
	}
	if err != nil {
		return Order{}, err
	}
	r, err := p.Record()
	if err != nil {
		return Order{}, err
	}
	if r.Value().Valid {
		// spot placement reports the bare order id
		r = Record(`{"order_id":` + string(r) + `}`)
	}
	o := parseOrder(r, reg, &m)
	if !r.Has("type") {
		o.Type, o.Side = s.Type, s.Side
	}
	if o.ClientOrderID == "" {
		o.ClientOrderID = params.Get("client_oid")
	}
	if !o.Amount.Valid {
		o.Amount = decimal.NewNullDecimal(s.Amount)
	}
	if !o.Price.Valid && s.Price.IsPositive() {
		o.Price = decimal.NewNullDecimal(s.Price)
	}
	return o, nil
}

// newClientOrderID returns 32 lowercase alphanumerics derived from a v4 UUID
func newClientOrderID() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(u.String(), "-", ""), nil
}

// CancelOrder cancels an order of a market
func (bi *Bitget) CancelOrder(ctx context.Context, id, symbol string) (Order, error) {
	m, reg, err := bi.market(ctx, symbol)
	if err != nil {
		return Order{}, err
	}
	params := url.Values{}
	params.Set("order_id", id)
	var p Payload
	if m.Swap {
		params.Set("instrument_id", m.ID)
		p, err = bi.SendAuthenticatedHTTPRequest(ctx, FamilyB, http.MethodPost, bitgetSwapCancel, params)
	} else {
		params.Set("method", "submitcancel")
		p, err = bi.SendAuthenticatedHTTPRequest(ctx, FamilyC, http.MethodPost, bitgetCancelSpot, params)
	}
	if err != nil {
		return Order{}, err
	}
	r, err := p.Record()
	if err != nil {
		return Order{}, err
	}
	if r.Value().Valid {
		r = Record(`{"order_id":` + string(r) + `}`)
	}
	o := parseOrder(r, reg, &m)
	if o.ID == "" {
		o.ID = id
	}
	return o, nil
}

// FetchOrder returns an order of a market
func (bi *Bitget) FetchOrder(ctx context.Context, id, symbol string) (Order, error) {
	m, reg, err := bi.market(ctx, symbol)
	if err != nil {
		return Order{}, err
	}
	params := url.Values{}
	params.Set("order_id", id)
	var p Payload
	if m.Swap {
		params.Set("instrument_id", m.ID)
		p, err = bi.SendAuthenticatedHTTPRequest(ctx, FamilyB, http.MethodGet, bitgetSwapDetail, params)
	} else {
		params.Set("method", "getOrder")
		p, err = bi.SendAuthenticatedHTTPRequest(ctx, FamilyC, http.MethodPost, bitgetOrderSpot, params)
	}
	if err != nil {
		return Order{}, err
	}
	r, err := p.Record()
	if err != nil {
		return Order{}, err
	}
	return parseOrder(r, reg, &m), nil
}

// FetchOrders returns orders of a market matching a status query code
func (bi *Bitget) FetchOrders(ctx context.Context, symbol string, status int, since time.Time, limit int) ([]Order, error) {
	if status < OrderQueryCancelled || status > OrderQueryAll {
		return nil, NewError(KindBadRequest, "%v: %d", errInvalidOrderQuery, status)
	}
	m, reg, err := bi.market(ctx, symbol)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("status", strconv.Itoa(status))
	if !since.IsZero() {
		params.Set("from", strconv.FormatInt(since.UnixMilli(), 10))
	}
	var p Payload
	if m.Swap {
		params.Set("instrument_id", m.ID)
		if limit > 0 {
			params.Set("limit", strconv.Itoa(limit))
		}
		p, err = bi.SendAuthenticatedHTTPRequest(ctx, FamilyB, http.MethodGet, bitgetSwapOrders, params)
	} else {
		params.Set("symbol", m.ID)
		params.Set("method", "getOrders")
		if limit > 0 {
			params.Set("size", strconv.Itoa(limit))
		}
		p, err = bi.SendAuthenticatedHTTPRequest(ctx, FamilyC, http.MethodGet, bitgetOrders, params)
	}
	if err != nil {
		return nil, err
	}
	records, err := orderRecords(p)
	if err != nil {
		return nil, err
	}
	return ParseOrders(records, reg, &m), nil
}

// orderRecords extracts order records from a list response. Contract lists
// nest orders under data.list; paginated spot lists report the orders as the
// first element followed by a cursor object.
func orderRecords(p Payload) ([]Record, error) {
	data := Record(p.Data)
	if _, ok := data.Get("list"); ok {
		return p.Records("list")
	}
	records, err := p.Records()
	if err != nil {
		return nil, err
	}
	if len(records) > 1 && records[1].Has("before") {
		return records[0].Elements()
	}
	return records, nil
}

// FetchOpenOrders returns the open orders of a market
func (bi *Bitget) FetchOpenOrders(ctx context.Context, symbol string, since time.Time, limit int) ([]Order, error) {
	return bi.FetchOrders(ctx, symbol, OrderQueryOpen, since, limit)
}

// FetchClosedOrders returns the completed orders of a market
func (bi *Bitget) FetchClosedOrders(ctx context.Context, symbol string, since time.Time, limit int) ([]Order, error) {
	return bi.FetchOrders(ctx, symbol, OrderQueryDone, since, limit)
}

// FetchMyTrades returns the user's fills on a market. Spot fills are
// reconciled from ledger legs.
func (bi *Bitget) FetchMyTrades(ctx context.Context, symbol string, since time.Time, limit int) ([]Trade, error) {
	m, reg, err := bi.market(ctx, symbol)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	var trades []Trade
	if m.Swap {
		params.Set("instrument_id", m.ID)
		if limit > 0 {
			params.Set("limit", strconv.Itoa(limit))
		}
		p, err := bi.SendAuthenticatedHTTPRequest(ctx, FamilyB, http.MethodGet, bitgetSwapFills, params)
		if err != nil {
			return nil, err
		}
		records, err := p.Records()
		if err != nil {
			return nil, err
		}
		trades = ParseTrades(records, reg, &m)
	} else {
		params.Set("symbol", m.ID)
		params.Set("method", "matchresults")
		p, err := bi.SendAuthenticatedHTTPRequest(ctx, FamilyC, http.MethodPost, bitgetMatches, params)
		if err != nil {
			return nil, err
		}
		records, err := p.Records()
		if err != nil {
			return nil, err
		}
		trades = ReconcileLedger(ParseLedgerLegs(records), reg)
	}
	return filterTrades(trades, since, limit), nil
}

// filterTrades drops trades before since and keeps at most limit of the
// earliest remaining ones
func filterTrades(trades []Trade, since time.Time, limit int) []Trade {
	if !since.IsZero() {
		ms := since.UnixMilli()
		trades = slices.DeleteFunc(trades, func(t Trade) bool {
			return !t.Timestamp.Valid || t.Timestamp.Int64 < ms
		})
	}
	if limit > 0 && len(trades) > limit {
		trades = trades[:limit]
	}
	return trades
}

// FetchTransactions returns deposits or withdrawals of a currency
func (bi *Bitget) FetchTransactions(ctx context.Context, code, kind string, limit int) ([]Transaction, error) {
	if code == "" {
		return nil, NewError(KindArgumentsRequired, "currency code required")
	}
	params := url.Values{}
	switch kind {
	case TransactionDeposit:
		params.Set("type", "deposit")
	case TransactionWithdrawal:
		params.Set("type", "withdraw")
	default:
		return nil, NewError(KindBadRequest, "%v: %q", errInvalidDirection, kind)
	}
	params.Set("currency", strings.ToLower(code))
	params.Set("method", "deposit_withdraw")
	if limit > 0 {
		params.Set("size", strconv.Itoa(limit))
	}
	p, err := bi.SendAuthenticatedHTTPRequest(ctx, FamilyC, http.MethodGet, bitgetDepositWith, params)
	if err != nil {
		return nil, err
	}
	records, err := p.Records()
	if err != nil {
		return nil, err
	}
	return ParseTransactions(records), nil
}
