package bitget

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/bitget-legacy/currency"
	"github.com/thrasher-corp/bitget-legacy/exchanges/order"
	"github.com/thrasher-corp/bitget-legacy/log"
)

// ParseLedgerLeg normalises one match result record
func ParseLedgerLeg(r Record) LedgerLeg {
	return LedgerLeg{
		TradeID:      r.String("trade_id").String,
		InstrumentID: r.String("instrument_id").String,
		Currency:     r.String("currency").String,
		Price:        r.Decimal("price"),
		Size:         r.Decimal("size"),
		Fee:          r.Decimal("fee"),
		Timestamp:    r.Timestamp("timestamp", "created_at"),
		OrderID:      r.String("order_id").String,
		ExecType:     r.String("exec_type", "liquidity").String,
	}
}

// ParseLedgerLegs normalises every match result record
func ParseLedgerLegs(records []Record) []LedgerLeg {
	legs := make([]LedgerLeg, len(records))
	for i := range records {
		legs[i] = ParseLedgerLeg(records[i])
	}
	return legs
}

// ReconcileLedger pairs ledger legs by trade id into trades. Each fill is
// reported as two legs, one per currency moved; trade ids with any other leg
// count, or whose legs name differing instruments, are dropped. Trades keep the
// order in which their ids first appear.
func ReconcileLedger(legs []LedgerLeg, reg *Registry) []Trade {
	var ids []string
	groups := make(map[string][]LedgerLeg)
	for i := range legs {
		id := legs[i].TradeID
		if _, ok := groups[id]; !ok {
			ids = append(ids, id)
		}
		groups[id] = append(groups[id], legs[i])
	}
	trades := make([]Trade, 0, len(ids))
	for _, id := range ids {
		pair := groups[id]
		if len(pair) != 2 {
			continue
		}
		if pair[0].InstrumentID != pair[1].InstrumentID {
			log.Warnf(log.ExchangeSys, "bitget dropping trade %s, legs on differing instruments %q and %q",
				id, pair[0].InstrumentID, pair[1].InstrumentID)
			continue
		}
		trades = append(trades, reconcilePair(pair[0], pair[1], reg))
	}
	return trades
}

// reconcilePair merges two legs of one fill. The leg carrying a fee belongs to
// the user, the first leg when neither does. Receiving the quote currency
// makes the fill a sell.
func reconcilePair(first, second LedgerLeg, reg *Registry) Trade {
	var quote currency.Code
	var symbol string
	if m, ok := reg.ByNativeID(first.InstrumentID); ok {
		quote, symbol = m.Quote, m.Symbol
	} else {
		symbol = first.InstrumentID
		if _, q, ok := strings.Cut(first.InstrumentID, tradeDelimiter); ok {
			quote = currency.SafeCode(q)
		}
	}

	user, other := first, second
	if !hasFee(first) && hasFee(second) {
		user, other = second, first
	}
	userCurrency := currency.SafeCode(user.Currency)

	t := Trade{
		ID:           first.TradeID,
		Order:        user.OrderID,
		Timestamp:    user.Timestamp,
		Symbol:       symbol,
		TakerOrMaker: parseLiquidity(user.ExecType),
		Price:        first.Price,
	}
	if !quote.IsEmpty() && userCurrency.Equal(quote) {
		t.Side = order.Sell
		t.Amount, t.Cost = other.Size, user.Size
	} else {
		t.Side = order.Buy
		t.Amount, t.Cost = user.Size, other.Size
	}
	if user.Fee.Valid {
		t.Fee = &Fee{
			Cost:     decimal.NewNullDecimal(user.Fee.Decimal.Neg()),
			Currency: userCurrency,
		}
	}
	return t
}

func hasFee(l LedgerLeg) bool {
	return l.Fee.Valid && !l.Fee.Decimal.IsZero()
}
