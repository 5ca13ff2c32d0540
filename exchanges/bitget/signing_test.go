package bitget

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimestamp = int64(1585136522000)

var testCreds = Credentials{Key: "key", Secret: "secret", ClientID: "passphrase"}

func TestImplodePath(t *testing.T) {
	t.Parallel()
	params := url.Values{"account_id": {"1234"}, "method": {"balance"}}
	path, query, err := implodePath("accounts/{account_id}/balance", params)
	require.NoError(t, err)
	assert.Equal(t, "accounts/1234/balance", path)
	assert.Equal(t, url.Values{"method": {"balance"}}, query)
	assert.Equal(t, "1234", params.Get("account_id"), "input params must not be mutated")

	_, _, err = implodePath("order/orders/{order_id}", url.Values{})
	assert.ErrorIs(t, err, ErrArgumentsRequired)
}

func TestSignPublic(t *testing.T) {
	t.Parallel()
	req, err := Sign(FamilyA, http.MethodGet, "https://api.bitget.com/data/v1/", "/market/tickers", nil, Credentials{}, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://api.bitget.com/data/v1/market/tickers", req.URL)
	assert.Equal(t, "/data/v1/market/tickers", req.Path)
	assert.Empty(t, req.Headers)

	req, err = Sign(FamilyA, http.MethodGet, bitgetSwapURL, bitgetDepth, url.Values{"symbol": {"cmt_btcusdt"}, "limit": {"100"}}, Credentials{}, 0)
	require.NoError(t, err)
	assert.Equal(t, bitgetSwapURL+"/market/depth?limit=100&symbol=cmt_btcusdt", req.URL)
}

func TestSignSwap(t *testing.T) {
	t.Parallel()
	params := url.Values{"instrument_id": {"cmt_btcusdt"}, "order_id": {"1"}}
	req, err := Sign(FamilyB, http.MethodGet, bitgetSwapURL, bitgetSwapDetail, params, testCreds, testTimestamp)
	require.NoError(t, err)
	assert.Equal(t, bitgetSwapURL+"/order/detail?instrument_id=cmt_btcusdt&order_id=1", req.URL)
	assert.Empty(t, req.Body)
	assert.Equal(t, map[string]string{
		"ACCESS-KEY":        "key",
		"ACCESS-SIGN":       "EA2XKKt0OCe/uttaBmp0iMVABKHZa4ETGA2kQCW7qto=",
		"ACCESS-TIMESTAMP":  "1585136522000",
		"ACCESS-PASSPHRASE": "passphrase",
	}, req.Headers)

	params = url.Values{"size": {"1"}, "instrument_id": {"cmt_btcusdt"}}
	req, err = Sign(FamilyB, http.MethodPost, bitgetSwapURL, bitgetSwapPlace, params, testCreds, testTimestamp)
	require.NoError(t, err)
	assert.Equal(t, bitgetSwapURL+"/order/placeOrder", req.URL)
	assert.JSONEq(t, `{"instrument_id":"cmt_btcusdt","size":"1"}`, req.Body)
	assert.Equal(t, "QudmhCfINwLUoUbqXpYMCjfL09OLPoyfCPrv764mp6Y=", req.Headers["ACCESS-SIGN"])
	assert.Equal(t, "application/json", req.Headers["Content-Type"])

	_, err = Sign(FamilyB, http.MethodGet, bitgetSwapURL, bitgetSwapAccounts, nil, Credentials{Key: "key", Secret: "secret"}, testTimestamp)
	assert.ErrorIs(t, err, ErrAuthentication, "a passphrase must be required")
}

func TestSignSpot(t *testing.T) {
	t.Parallel()
	params := url.Values{"symbol": {"btc_usdt"}}
	req, err := Sign(FamilyC, http.MethodGet, bitgetAPIURL, bitgetOrders, params, testCreds, testTimestamp)
	require.NoError(t, err)
	assert.Equal(t, bitgetAPIURL+"/order/orders?symbol=btc_usdt&sign=f5e60f6a0273314348e84e2871abd36f&req_time=1585136522000&accesskey=key", req.URL)
	assert.Empty(t, req.Body)
	assert.Empty(t, req.Headers)

	later, err := Sign(FamilyC, http.MethodGet, bitgetAPIURL, bitgetOrders, params, testCreds, testTimestamp+5000)
	require.NoError(t, err)
	q, err := url.ParseQuery(req.URL[len(bitgetAPIURL+"/order/orders?"):])
	require.NoError(t, err)
	laterQ, err := url.ParseQuery(later.URL[len(bitgetAPIURL+"/order/orders?"):])
	require.NoError(t, err)
	assert.Equal(t, q.Get("sign"), laterQ.Get("sign"), "the signature must not cover the timestamp")
	assert.NotEqual(t, q.Get("req_time"), laterQ.Get("req_time"))
	assert.Equal(t, q.Get("symbol"), laterQ.Get("symbol"))

	req, err = Sign(FamilyC, http.MethodPost, bitgetAPIURL, bitgetPlaceSpot, params, testCreds, testTimestamp)
	require.NoError(t, err)
	assert.Equal(t, "symbol=btc_usdt", req.Body)

	req, err = Sign(FamilyC, http.MethodGet, bitgetAPIURL, bitgetAccounts, nil, testCreds, testTimestamp)
	require.NoError(t, err)
	assert.Equal(t, bitgetAPIURL+"/account/accounts?sign=a22ac6c2357e3e75cc0abab8ed1f9232&req_time=1585136522000&accesskey=key", req.URL)

	_, err = Sign(FamilyC, http.MethodGet, bitgetAPIURL, bitgetAccounts, nil, Credentials{Key: "key"}, testTimestamp)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestSignUnsupportedFamily(t *testing.T) {
	t.Parallel()
	_, err := Sign(Family(9), http.MethodGet, bitgetAPIURL, bitgetAccounts, nil, testCreds, testTimestamp)
	assert.ErrorIs(t, err, ErrNotSupported)
}
