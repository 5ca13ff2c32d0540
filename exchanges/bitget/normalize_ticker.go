package bitget

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// tickerFieldSet lists the candidate member names of each ticker field, in
// order of preference across the spot and contract APIs
type tickerFieldSet struct {
	Timestamp   []string
	Symbol      []string
	Last        []string
	High        []string
	Low         []string
	BaseVolume  []string
	QuoteVolume []string
	BestBid     []string
	BestAsk     []string
}

var tickerFields = tickerFieldSet{
	Timestamp:   []string{"timestamp", "id"},
	Symbol:      []string{"instrument_id", "symbol"},
	Last:        []string{"last", "close"},
	High:        []string{"high", "high_24h"},
	Low:         []string{"low", "low_24h"},
	BaseVolume:  []string{"amount", "volume_24h"},
	QuoteVolume: []string{"vol"},
	BestBid:     []string{"best_bid"},
	BestAsk:     []string{"best_ask"},
}

// ParseTicker normalises a spot or contract ticker record. Spot tickers
// report bid and ask as [price, amount] pairs, contract tickers as best_bid
// and best_ask prices.
func ParseTicker(r Record, reg *Registry) Ticker {
	t := Ticker{
		Symbol:      resolveSymbol(reg, r.String(tickerFields.Symbol...).String, tickerDelimiter, false).Symbol,
		Timestamp:   r.Timestamp(tickerFields.Timestamp...),
		High:        r.Decimal(tickerFields.High...),
		Low:         r.Decimal(tickerFields.Low...),
		Open:        r.Decimal("open"),
		Last:        r.Decimal(tickerFields.Last...),
		BaseVolume:  r.Decimal(tickerFields.BaseVolume...),
		QuoteVolume: r.Decimal(tickerFields.QuoteVolume...),
	}
	t.Close = t.Last
	t.Bid, t.BidVolume = quoteLevel(r, "bid", tickerFields.BestBid)
	t.Ask, t.AskVolume = quoteLevel(r, "ask", tickerFields.BestAsk)

	if t.BaseVolume.Valid && t.QuoteVolume.Valid && !t.BaseVolume.Decimal.IsZero() {
		t.VWAP = decimal.NewNullDecimal(t.QuoteVolume.Decimal.Div(t.BaseVolume.Decimal))
	}
	if t.Last.Valid && t.Open.Valid {
		change := t.Last.Decimal.Sub(t.Open.Decimal)
		t.Change = decimal.NewNullDecimal(change)
		if !t.Open.Decimal.IsZero() {
			t.Percentage = decimal.NewNullDecimal(change.Div(t.Open.Decimal).Mul(hundred))
		}
		t.Average = decimal.NewNullDecimal(t.Open.Decimal.Add(t.Last.Decimal).Div(decimal.NewFromInt(2)))
	}
	return t
}

// quoteLevel reads a [price, amount] pair at key, falling back to a bare
// price in one of the fallback members
func quoteLevel(r Record, key string, fallback []string) (price, amount decimal.NullDecimal) {
	if level, ok := r.Get(key); ok {
		if level.IsArray() {
			return level.IndexDecimal(0), level.IndexDecimal(1)
		}
		return r.Decimal(key), decimal.NullDecimal{}
	}
	return r.Decimal(fallback...), decimal.NullDecimal{}
}

// ParseTickers normalises every ticker record of a payload. The envelope
// timestamp is used for records that do not report their own.
func ParseTickers(p Payload, reg *Registry) ([]Ticker, error) {
	records, err := p.Records()
	if err != nil {
		return nil, err
	}
	tickers := make([]Ticker, len(records))
	for i := range records {
		tickers[i] = ParseTicker(records[i], reg)
		if !tickers[i].Timestamp.Valid {
			tickers[i].Timestamp = p.Timestamp
		}
	}
	return tickers, nil
}
