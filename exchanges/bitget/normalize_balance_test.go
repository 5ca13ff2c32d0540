package bitget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/bitget-legacy/exchanges/asset"
)

func TestParseSpotBalance(t *testing.T) {
	t.Parallel()
	p, err := ParsePayload([]byte(`{"status":"ok","data":{"id":"1","type":"spot","list":[
		{"currency":"btc","type":"trade","balance":"1.5"},
		{"currency":"btc","type":"frozen","balance":"0.5"},
		{"currency":"usdt","type":"trade","balance":"10"},
		{"currency":"usdt","type":"frozen","balance":"2"},
		{"currency":"usdt","type":"lock","balance":"1"},
		{"currency":"eos","type":"trade","balance":"3"},
		{"currency":"","type":"trade","balance":"3"}
	]}}`))
	require.NoError(t, err)
	set, err := ParseBalance(asset.Spot, p, nil)
	require.NoError(t, err)
	assert.Equal(t, asset.Spot, set.Family)
	assert.Len(t, set.Balances, 3)

	btc := set.Balances["BTC"]
	assertDecimal(t, "1.5", btc.Free)
	assertDecimal(t, "0.5", btc.Used)
	assertDecimal(t, "2", btc.Total)

	usdt := set.Balances["USDT"]
	assertDecimal(t, "3", usdt.Used, "frozen and locked legs must be summed")
	assertDecimal(t, "13", usdt.Total)

	eos := set.Balances["EOS"]
	assertDecimal(t, "3", eos.Free)
	assert.False(t, eos.Used.Valid)
	assert.False(t, eos.Total.Valid, "total needs both free and used")

	_, ok := set.Balances["ETH"]
	assert.False(t, ok, "unseen currencies must be absent")
}

func TestParseSwapBalance(t *testing.T) {
	t.Parallel()
	p, err := ParsePayload([]byte(`{"data":[{"symbol":"cmt_btcusdt","equity":"10","total_avail_balance":"7"},{"symbol":"unlisted","equity":"1"},{"equity":"5"}]}`))
	require.NoError(t, err)
	set, err := ParseBalance(asset.Swap, p, testRegistry(t))
	require.NoError(t, err)
	assert.Equal(t, asset.Swap, set.Family)
	require.Len(t, set.Balances, 2)

	b := set.Balances["CMT_BTCUSDT"]
	assertDecimal(t, "10", b.Total)
	assertDecimal(t, "7", b.Free)
	assertDecimal(t, "3", b.Used)

	b = set.Balances["unlisted"]
	assertDecimal(t, "1", b.Total)
	assert.False(t, b.Used.Valid)
}

func TestParseBalanceUnsupported(t *testing.T) {
	t.Parallel()
	_, err := ParseBalance(asset.Item("margin"), Payload{}, nil)
	assert.ErrorIs(t, err, ErrNotSupported)

	p, err := ParsePayload([]byte(`{"data":{"list":{}}}`))
	require.NoError(t, err)
	_, err = ParseBalance(asset.Spot, p, nil)
	assert.ErrorIs(t, err, errRecordsNotAnArray)
}
