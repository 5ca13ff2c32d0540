package bitget

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/bitget-legacy/currency"
	"github.com/thrasher-corp/bitget-legacy/exchanges/asset"
)

// Spot balance leg types
const (
	balanceTrade  = "trade"
	balanceFrozen = "frozen"
	balanceLock   = "lock"
)

// ParseBalance aggregates a balance payload for the product family. Spot
// payloads list one leg per currency and type under data.list, contract
// payloads list one account per market.
func ParseBalance(family asset.Item, p Payload, reg *Registry) (BalanceSet, error) {
	switch family {
	case asset.Spot:
		records, err := p.Records("list")
		if err != nil {
			return BalanceSet{}, err
		}
		return parseSpotBalance(records), nil
	case asset.Swap:
		records, err := p.Records()
		if err != nil {
			return BalanceSet{}, err
		}
		return parseSwapBalance(records, reg), nil
	}
	return BalanceSet{}, fmt.Errorf("%w: balances for %q", ErrNotSupported, family)
}

func parseSpotBalance(records []Record) BalanceSet {
	set := BalanceSet{Family: asset.Spot, Balances: make(map[string]Balance)}
	for i := range records {
		code := currency.SafeCode(records[i].String("currency").String)
		if code.IsEmpty() {
			continue
		}
		b := set.Balances[code.String()]
		amount := records[i].Decimal("balance")
		switch records[i].String("type").String {
		case balanceTrade:
			b.Free = amount
		case balanceFrozen, balanceLock:
			if amount.Valid {
				b.Used = decimal.NewNullDecimal(b.Used.Decimal.Add(amount.Decimal))
			}
		}
		set.Balances[code.String()] = b
	}
	for k, b := range set.Balances {
		if b.Free.Valid && b.Used.Valid {
			b.Total = decimal.NewNullDecimal(b.Free.Decimal.Add(b.Used.Decimal))
			set.Balances[k] = b
		}
	}
	return set
}

func parseSwapBalance(records []Record, reg *Registry) BalanceSet {
	set := BalanceSet{Family: asset.Swap, Balances: make(map[string]Balance, len(records))}
	for i := range records {
		id := records[i].String("symbol").String
		if id == "" {
			continue
		}
		symbol := id
		if m, ok := reg.ByNativeID(id); ok {
			symbol = m.Symbol
		}
		b := Balance{
			Total: records[i].Decimal("equity"),
			Free:  records[i].Decimal("total_avail_balance"),
		}
		if b.Total.Valid && b.Free.Valid {
			b.Used = decimal.NewNullDecimal(b.Total.Decimal.Sub(b.Free.Decimal))
		}
		set.Balances[symbol] = b
	}
	return set
}
