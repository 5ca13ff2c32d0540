package bitget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/bitget-legacy/exchanges/asset"
)

func TestTimeframe(t *testing.T) {
	t.Parallel()
	v, err := Timeframe(asset.Spot, "1h")
	require.NoError(t, err)
	assert.Equal(t, "60min", v)
	v, err = Timeframe(asset.Swap, "1h")
	require.NoError(t, err)
	assert.Equal(t, "3600", v)

	_, err = Timeframe(asset.Spot, "3m")
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = Timeframe(asset.Item("margin"), "1h")
	assert.ErrorIs(t, err, asset.ErrNotSupported)

	for _, tf := range Timeframes() {
		for _, a := range asset.Supported() {
			_, err := Timeframe(a, tf)
			assert.NoErrorf(t, err, "%s %s must be supported", a, tf)
		}
	}
}

func TestParseCandle(t *testing.T) {
	t.Parallel()
	spot := Record(`{"id":1585136520,"open":"1","close":"2","low":"0.5","high":"3","amount":"10","vol":"20"}`)
	c := ParseCandle(spot, asset.Spot, DefaultVolumeFields)
	assert.Equal(t, int64(1585136520000), c.Timestamp.Int64)
	assertDecimal(t, "1", c.Open)
	assertDecimal(t, "3", c.High)
	assertDecimal(t, "0.5", c.Low)
	assertDecimal(t, "2", c.Close)
	assertDecimal(t, "10", c.Volume)

	c = ParseCandle(spot, asset.Spot, VolumeFieldTable{asset.Spot: {Name: "vol"}})
	assertDecimal(t, "20", c.Volume)

	swap := Record(`["2020-03-25T11:42:00.000Z","1","3","0.5","2","100","0.1"]`)
	c = ParseCandle(swap, asset.Swap, DefaultVolumeFields)
	assert.Equal(t, int64(1585136520000), c.Timestamp.Int64)
	assertDecimal(t, "1", c.Open)
	assertDecimal(t, "3", c.High)
	assertDecimal(t, "0.5", c.Low)
	assertDecimal(t, "2", c.Close)
	assertDecimal(t, "100", c.Volume)

	c = ParseCandle(swap, asset.Swap, VolumeFieldTable{asset.Swap: {Index: 6}})
	assertDecimal(t, "0.1", c.Volume)

	c = ParseCandle(swap, asset.Swap, VolumeFieldTable{})
	assert.False(t, c.Volume.Valid, "an unconfigured family must leave volume unknown")

	candles := ParseCandles([]Record{spot, spot}, asset.Spot, DefaultVolumeFields)
	assert.Len(t, candles, 2)
}
