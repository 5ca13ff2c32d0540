package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Submit contains all properties of an order that may be required
// for an order to be created on an exchange
type Submit struct {
	Symbol        string
	Side          Side
	Type          Type
	Amount        decimal.Decimal
	Price         decimal.Decimal
	ClientOrderID string
}

// Validate checks the supplied data and returns whether or not it's valid
func (s *Submit) Validate() error {
	if s == nil {
		return ErrSubmissionIsNil
	}
	if s.Symbol == "" {
		return ErrSymbolIsEmpty
	}
	if s.Side != Buy && s.Side != Sell {
		return ErrSideIsInvalid
	}
	if s.Type != Market && s.Type != Limit {
		return ErrTypeIsInvalid
	}
	if !s.Amount.IsPositive() {
		return ErrAmountIsInvalid
	}
	if s.Type == Limit && !s.Price.IsPositive() {
		return ErrPriceMustBeSetIfLimitOrder
	}
	return nil
}

// String implements the stringer interface
func (t Type) String() string {
	return string(t)
}

// Lower returns the type lower case string
func (t Type) Lower() string {
	return strings.ToLower(string(t))
}

// String implements the stringer interface
func (s Side) String() string {
	return string(s)
}

// Lower returns the side lower case string
func (s Side) Lower() string {
	return strings.ToLower(string(s))
}

// String implements the stringer interface
func (s Status) String() string {
	return string(s)
}

// StringToOrderSide returns the side for a "buy" or "sell" string, any other
// input yields UnknownSide
func StringToOrderSide(side string) Side {
	switch strings.ToLower(side) {
	case "buy":
		return Buy
	case "sell":
		return Sell
	}
	return UnknownSide
}
