package bitget

import (
	"fmt"

	"github.com/thrasher-corp/bitget-legacy/exchanges/asset"
)

// VolumeField selects the volume of a candle row. Object rows are read by
// Name, array rows by Index when Name is empty.
type VolumeField struct {
	Name  string
	Index int
}

// VolumeFieldTable maps a product family to its candle volume field
type VolumeFieldTable map[asset.Item]VolumeField

// DefaultVolumeFields reads base volume from the spot amount member and from
// the sixth element of contract candles
var DefaultVolumeFields = VolumeFieldTable{
	asset.Spot: {Name: "amount"},
	asset.Swap: {Index: 5},
}

// spotTimeframes and swapTimeframes map unified timeframes to the period and
// granularity parameters of each API
var (
	spotTimeframes = map[string]string{
		"1m":  "1min",
		"5m":  "5min",
		"15m": "15min",
		"30m": "30min",
		"1h":  "60min",
		"2h":  "120min",
		"4h":  "240min",
		"6h":  "360min",
		"12h": "720min",
		"1d":  "1day",
		"1w":  "1week",
	}
	swapTimeframes = map[string]string{
		"1m":  "60",
		"5m":  "300",
		"15m": "900",
		"30m": "1800",
		"1h":  "3600",
		"2h":  "7200",
		"4h":  "14400",
		"6h":  "21600",
		"12h": "43200",
		"1d":  "86400",
		"1w":  "604800",
	}
)

// Timeframe returns the native interval parameter of a unified timeframe for
// the product family
func Timeframe(family asset.Item, timeframe string) (string, error) {
	var table map[string]string
	switch family {
	case asset.Spot:
		table = spotTimeframes
	case asset.Swap:
		table = swapTimeframes
	default:
		return "", fmt.Errorf("%w: %q", asset.ErrNotSupported, family)
	}
	v, ok := table[timeframe]
	if !ok {
		return "", NewError(KindBadRequest, "unsupported timeframe %q", timeframe)
	}
	return v, nil
}

// Timeframes returns the supported unified timeframes
func Timeframes() []string {
	return []string{"1m", "5m", "15m", "30m", "1h", "2h", "4h", "6h", "12h", "1d", "1w"}
}

// ParseCandle normalises a candle row. Spot rows are objects keyed by id,
// contract rows are arrays led by an ISO-8601 time.
func ParseCandle(r Record, family asset.Item, table VolumeFieldTable) Candle {
	vf, hasVolume := table[family]
	if r.IsArray() {
		c := Candle{
			Timestamp: r.IndexTimestamp(0),
			Open:      r.IndexDecimal(1),
			High:      r.IndexDecimal(2),
			Low:       r.IndexDecimal(3),
			Close:     r.IndexDecimal(4),
		}
		if hasVolume && vf.Name == "" {
			c.Volume = r.IndexDecimal(vf.Index)
		}
		return c
	}
	c := Candle{
		Timestamp: r.Timestamp("id"),
		Open:      r.Decimal("open"),
		High:      r.Decimal("high"),
		Low:       r.Decimal("low"),
		Close:     r.Decimal("close"),
	}
	if hasVolume && vf.Name != "" {
		c.Volume = r.Decimal(vf.Name)
	}
	return c
}

// ParseCandles normalises every candle row
func ParseCandles(records []Record, family asset.Item, table VolumeFieldTable) []Candle {
	candles := make([]Candle, len(records))
	for i := range records {
		candles[i] = ParseCandle(records[i], family, table)
	}
	return candles
}
