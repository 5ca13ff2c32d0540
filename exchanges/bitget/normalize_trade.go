package bitget

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/bitget-legacy/exchanges/order"
)

// tradeFieldSet lists the candidate member names of each trade field
type tradeFieldSet struct {
	ID           []string
	Timestamp    []string
	Amount       []string
	Side         []string
	TakerOrMaker []string
}

var tradeFields = tradeFieldSet{
	ID:           []string{"trade_id", "id"},
	Timestamp:    []string{"timestamp", "ts"},
	Amount:       []string{"size", "amount"},
	Side:         []string{"side", "direction"},
	TakerOrMaker: []string{"exec_type", "liquidity"},
}

// ParseTrade normalises a public trade or a contract fill record
func ParseTrade(r Record, reg *Registry) Trade {
	return parseTrade(r, reg, nil)
}

// parseTrade normalises a trade, falling back to market when the record does
// not identify its own
func parseTrade(r Record, reg *Registry, market *Market) Trade {
	ref := resolveSymbol(reg, r.String("symbol").String, tradeDelimiter, true)
	if ref.Symbol == "" && market != nil {
		ref = symbolRef{Symbol: market.Symbol, Base: market.Base, Quote: market.Quote, QuoteID: market.QuoteID}
	}
	t := Trade{
		ID:           r.String(tradeFields.ID...).String,
		Order:        r.String("order_id").String,
		Timestamp:    r.Timestamp(tradeFields.Timestamp...),
		Symbol:       ref.Symbol,
		Side:         parseSide(r.String(tradeFields.Side...).String),
		TakerOrMaker: parseLiquidity(r.String(tradeFields.TakerOrMaker...).String),
		Price:        r.Decimal("price"),
		Amount:       r.Decimal(tradeFields.Amount...),
	}
	if t.Amount.Valid && t.Price.Valid {
		t.Cost = decimal.NewNullDecimal(t.Amount.Decimal.Mul(t.Price.Decimal))
	}
	if fee := r.Decimal("fee"); fee.Valid {
		feeCurrency := ref.Quote
		if t.Side == order.Buy {
			feeCurrency = ref.Base
		}
		t.Fee = &Fee{Cost: decimal.NewNullDecimal(fee.Decimal.Neg()), Currency: feeCurrency}
	}
	return t
}

// parseSide maps buy and sell, other values such as the contract long and
// short directions pass through
func parseSide(s string) order.Side {
	if side := order.StringToOrderSide(s); side != order.UnknownSide {
		return side
	}
	return order.Side(s)
}

// parseLiquidity maps the M and T execution codes, other values pass through
func parseLiquidity(s string) order.TakerOrMaker {
	switch s {
	case "M":
		return order.Maker
	case "T":
		return order.Taker
	}
	return order.TakerOrMaker(s)
}

// ParseTrades normalises every trade record, market is used for records that
// do not identify their own
func ParseTrades(records []Record, reg *Registry, market *Market) []Trade {
	trades := make([]Trade, len(records))
	for i := range records {
		trades[i] = parseTrade(records[i], reg, market)
	}
	return trades
}

