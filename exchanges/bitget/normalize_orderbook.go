package bitget

import (
	"sort"
	"strconv"

	"github.com/volatiletech/null"
)

// ParseOrderBook normalises a depth snapshot. Levels are [price, amount, ...]
// rows; unparsable levels are skipped.
func ParseOrderBook(r Record, symbol string) (OrderBook, error) {
	ob := OrderBook{
		Symbol:    symbol,
		Timestamp: r.Timestamp("timestamp", "ts"),
	}
	if id := r.String("id"); id.Valid {
		if n, err := strconv.ParseInt(id.String, 10, 64); err == nil {
			ob.Nonce = null.Int64From(n)
		}
	}
	var err error
	if ob.Bids, err = parseLevels(r, "bids"); err != nil {
		return OrderBook{}, err
	}
	if ob.Asks, err = parseLevels(r, "asks"); err != nil {
		return OrderBook{}, err
	}
	sort.SliceStable(ob.Bids, func(i, j int) bool { return ob.Bids[i].Price.GreaterThan(ob.Bids[j].Price) })
	sort.SliceStable(ob.Asks, func(i, j int) bool { return ob.Asks[i].Price.LessThan(ob.Asks[j].Price) })
	return ob, nil
}

func parseLevels(r Record, side string) ([]OrderBookLevel, error) {
	raw, ok := r.Get(side)
	if !ok {
		return nil, nil
	}
	rows, err := raw.Elements()
	if err != nil {
		return nil, err
	}
	levels := make([]OrderBookLevel, 0, len(rows))
	for i := range rows {
		price, amount := rows[i].IndexDecimal(0), rows[i].IndexDecimal(1)
		if !price.Valid || !amount.Valid {
			continue
		}
		levels = append(levels, OrderBookLevel{Price: price.Decimal, Amount: amount.Decimal})
	}
	return levels, nil
}
