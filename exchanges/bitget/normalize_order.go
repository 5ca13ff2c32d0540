package bitget

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/bitget-legacy/exchanges/order"
)

// orderFieldSet lists the candidate member names of each order field
type orderFieldSet struct {
	Filled []string
	Cost   []string
}

var orderFields = orderFieldSet{
	Filled: []string{"filled_size", "filled_qty"},
	Cost:   []string{"filled_notional", "funds"},
}

// orderStatuses maps raw state codes, unknown codes pass through
var orderStatuses = map[string]order.Status{
	"-2": order.Failed,
	"-1": order.Cancelled,
	"0":  order.Open,
	"1":  order.Open,
	"2":  order.Closed,
	"3":  order.Open,
	"4":  order.Cancelled,
}

// positionSides maps contract position action codes to order sides: open long,
// open short, close long and close short
var positionSides = map[string]order.Side{
	"1": order.Buy,
	"2": order.Sell,
	"3": order.Sell,
	"4": order.Buy,
}

// ParseOrderStatus maps a raw order state code
func ParseOrderStatus(state string) order.Status {
	if s, ok := orderStatuses[state]; ok {
		return s
	}
	return order.Status(state)
}

// ParseOrder normalises a spot or contract order record
func ParseOrder(r Record, reg *Registry) Order {
	return parseOrder(r, reg, nil)
}

func parseOrder(r Record, reg *Registry, market *Market) Order {
	o := Order{
		ID:            r.String("order_id").String,
		ClientOrderID: r.String("client_oid").String,
		Timestamp:     r.Timestamp("timestamp"),
		Price:         r.Decimal("price"),
		Average:       r.Decimal("price_avg"),
		Amount:        r.Decimal("size"),
		Filled:        r.Decimal(orderFields.Filled...),
		Cost:          r.Decimal(orderFields.Cost...),
		Status:        ParseOrderStatus(r.String("state").String),
	}

	rawType := r.String("type").String
	o.Side = order.StringToOrderSide(r.String("side").String)
	// spot order types combine side and type such as buy-limit
	if side, kind, ok := strings.Cut(rawType, "-"); ok && o.Side == order.UnknownSide {
		if s := order.StringToOrderSide(side); s != order.UnknownSide {
			o.Side = s
			rawType = kind
		}
	}
	if o.Side == order.UnknownSide {
		if s, ok := positionSides[rawType]; ok {
			o.Side = s
		} else {
			o.Side = order.Side(rawType)
		}
	}
	switch order.Type(rawType) {
	case order.Limit, order.Market:
		o.Type = order.Type(rawType)
	default:
		if r.Has("pnl") {
			o.Type = order.Futures
		} else {
			o.Type = order.Swap
		}
	}

	if id := r.String("instrument_id", "symbol"); id.Valid {
		o.Symbol = id.String
		if m, ok := reg.ByNativeID(id.String); ok {
			o.Symbol = m.Symbol
		}
	} else if market != nil {
		o.Symbol = market.Symbol
	}

	if o.Amount.Valid && o.Filled.Valid {
		o.Amount.Decimal = decimal.Max(o.Amount.Decimal, o.Filled.Decimal)
		o.Remaining = decimal.NewNullDecimal(decimal.Max(decimal.Zero, o.Amount.Decimal.Sub(o.Filled.Decimal)))
	}
	if o.Type == order.Market {
		o.Remaining = decimal.NewNullDecimal(decimal.Zero)
	}

	switch {
	case !o.Cost.Valid && o.Filled.Valid && o.Average.Valid:
		o.Cost = decimal.NewNullDecimal(o.Average.Decimal.Mul(o.Filled.Decimal))
	case o.Cost.Valid && !o.Average.Valid && o.Filled.Valid && o.Filled.Decimal.IsPositive():
		o.Average = decimal.NewNullDecimal(o.Cost.Decimal.Div(o.Filled.Decimal))
	}

	if fee := r.Decimal("fee"); fee.Valid {
		o.Fee = &Fee{Cost: fee}
	}
	return o
}

// ParseOrders normalises every order record
func ParseOrders(records []Record, reg *Registry, market *Market) []Order {
	orders := make([]Order, len(records))
	for i := range records {
		orders[i] = parseOrder(records[i], reg, market)
	}
	return orders
}
