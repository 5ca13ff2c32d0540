package bitget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/bitget-legacy/currency"
	"github.com/thrasher-corp/bitget-legacy/exchanges/order"
)

func testLegs(tb testing.TB, raw string) []LedgerLeg {
	tb.Helper()
	records, err := Record(raw).Elements()
	require.NoError(tb, err)
	return ParseLedgerLegs(records)
}

func TestReconcileLedger(t *testing.T) {
	t.Parallel()
	legs := testLegs(t, `[
		{"trade_id":"t1","instrument_id":"btc_usdt","currency":"usdt","price":"129.1","size":"30.98","fee":"-0.05","order_id":"o1","exec_type":"T","created_at":"1585136522000"},
		{"trade_id":"t1","instrument_id":"btc_usdt","currency":"btc","price":"129.1","size":"0.24","fee":"0","order_id":"o1"},
		{"trade_id":"t2","instrument_id":"btc_usdt","currency":"usdt","price":"6600","size":"660","fee":"0","order_id":"o0"},
		{"trade_id":"t2","instrument_id":"btc_usdt","currency":"btc","price":"6600","size":"0.1","fee":"-0.0001","order_id":"o2","exec_type":"M"},
		{"trade_id":"t3","instrument_id":"btc_usdt","currency":"btc","size":"1"},
		{"trade_id":"t4","instrument_id":"btc_usdt","currency":"btc","size":"1"},
		{"trade_id":"t4","instrument_id":"btc_usdt","currency":"usdt","size":"1"},
		{"trade_id":"t4","instrument_id":"btc_usdt","currency":"usdt","size":"1"}
	]`)
	trades := ReconcileLedger(legs, testRegistry(t))
	require.Len(t, trades, 2, "groups without exactly two legs must be dropped")

	sell := trades[0]
	assert.Equal(t, "t1", sell.ID)
	assert.Equal(t, "BTC/USDT", sell.Symbol)
	assert.Equal(t, order.Sell, sell.Side)
	assertDecimal(t, "0.24", sell.Amount)
	assertDecimal(t, "30.98", sell.Cost)
	assertDecimal(t, "129.1", sell.Price)
	assert.Equal(t, "o1", sell.Order)
	assert.Equal(t, order.Taker, sell.TakerOrMaker)
	assert.Equal(t, int64(1585136522000), sell.Timestamp.Int64)
	require.NotNil(t, sell.Fee)
	assertDecimal(t, "0.05", sell.Fee.Cost)
	assert.True(t, sell.Fee.Currency.Equal(currency.USDT))

	buy := trades[1]
	assert.Equal(t, "t2", buy.ID)
	assert.Equal(t, order.Buy, buy.Side)
	assertDecimal(t, "0.1", buy.Amount)
	assertDecimal(t, "660", buy.Cost)
	assert.Equal(t, "o2", buy.Order, "the leg carrying the fee belongs to the user")
	assert.Equal(t, order.Maker, buy.TakerOrMaker)
	require.NotNil(t, buy.Fee)
	assertDecimal(t, "0.0001", buy.Fee.Cost)
	assert.True(t, buy.Fee.Currency.Equal(currency.BTC))
}

func TestReconcileLedgerUnlisted(t *testing.T) {
	t.Parallel()
	legs := testLegs(t, `[
		{"trade_id":"t1","instrument_id":"ltc-usdt","currency":"usdt","size":"10","fee":"0"},
		{"trade_id":"t1","instrument_id":"ltc-usdt","currency":"ltc","size":"0.2","fee":"0"}
	]`)
	trades := ReconcileLedger(legs, nil)
	require.Len(t, trades, 1)
	assert.Equal(t, "ltc-usdt", trades[0].Symbol)
	assert.Equal(t, order.Sell, trades[0].Side, "without fees the first leg belongs to the user")
	assertDecimal(t, "0.2", trades[0].Amount)
	assertDecimal(t, "10", trades[0].Cost)
	require.NotNil(t, trades[0].Fee)
	assertDecimal(t, "0", trades[0].Fee.Cost)
}

func TestReconcileLedgerCurrencyCase(t *testing.T) {
	t.Parallel()
	legs := testLegs(t, `[
		{"trade_id":"t1","instrument_id":"btc_usdt","currency":"USDT","price":"129.1","size":"30.98","fee":"-0.05"},
		{"trade_id":"t1","instrument_id":"btc_usdt","currency":"BTC","price":"129.1","size":"0.24","fee":"0"},
		{"trade_id":"t2","instrument_id":"btc_usdt","currency":"USDT","price":"6600","size":"660","fee":"0"},
		{"trade_id":"t2","instrument_id":"btc_usdt","currency":"BTC","price":"6600","size":"0.1","fee":"-0.0001"}
	]`)
	trades := ReconcileLedger(legs, testRegistry(t))
	require.Len(t, trades, 2)

	assert.Equal(t, order.Sell, trades[0].Side, "an upper case quote leg must match the lower case listing")
	assertDecimal(t, "0.24", trades[0].Amount)
	assertDecimal(t, "30.98", trades[0].Cost)
	require.NotNil(t, trades[0].Fee)
	assert.True(t, trades[0].Fee.Currency.Equal(currency.USDT))

	assert.Equal(t, order.Buy, trades[1].Side)
	assertDecimal(t, "0.1", trades[1].Amount)
	assertDecimal(t, "660", trades[1].Cost)
	require.NotNil(t, trades[1].Fee)
	assert.True(t, trades[1].Fee.Currency.Equal(currency.BTC))

	trades = ReconcileLedger(testLegs(t, `[
		{"trade_id":"t1","instrument_id":"ltc-usdt","currency":"USDT","size":"10","fee":"-0.01"},
		{"trade_id":"t1","instrument_id":"ltc-usdt","currency":"LTC","size":"0.2","fee":"0"}
	]`), nil)
	require.Len(t, trades, 1)
	assert.Equal(t, order.Sell, trades[0].Side, "unlisted instruments must compare normalised codes too")
}

func TestReconcileLedgerMixedInstruments(t *testing.T) {
	t.Parallel()
	legs := testLegs(t, `[
		{"trade_id":"t1","instrument_id":"btc_usdt","currency":"usdt","size":"1"},
		{"trade_id":"t1","instrument_id":"eth_usdt","currency":"eth","size":"1"},
		{"trade_id":"t2","instrument_id":"btc_usdt","currency":"usdt","size":"660","fee":"-0.1"},
		{"trade_id":"t2","instrument_id":"btc_usdt","currency":"btc","size":"0.1","fee":"0"}
	]`)
	trades := ReconcileLedger(legs, testRegistry(t))
	require.Len(t, trades, 1, "a pair on differing instruments must be dropped without failing the batch")
	assert.Equal(t, "t2", trades[0].ID)
	assert.Equal(t, order.Sell, trades[0].Side)

	assert.Empty(t, ReconcileLedger(nil, nil))
}
