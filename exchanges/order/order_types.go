package order

import "errors"

// var error definitions
var (
	ErrSubmissionIsNil            = errors.New("order submission is nil")
	ErrSymbolIsEmpty              = errors.New("order symbol is empty")
	ErrSideIsInvalid              = errors.New("order side is invalid")
	ErrTypeIsInvalid              = errors.New("order type is invalid")
	ErrAmountIsInvalid            = errors.New("order amount is equal or less than zero")
	ErrPriceMustBeSetIfLimitOrder = errors.New("order price must be set if limit order type is desired")
)

// Side enforces a standard for order sides across the code base
type Side string

// Order side types
const (
	UnknownSide Side = ""
	Buy         Side = "buy"
	Sell        Side = "sell"
)

// Type enforces a standard for order types across the code base
type Type string

// Defined package order types. Swap and Futures are reported for derivative
// orders whose raw type is a position action code rather than limit or market.
const (
	UnknownType Type = ""
	Limit       Type = "limit"
	Market      Type = "market"
	Swap        Type = "swap"
	Futures     Type = "futures"
)

// Status defines order status types
type Status string

// All order status types. Raw exchange codes outside the known table are
// carried through as Status values unchanged.
const (
	UnknownStatus Status = ""
	Open          Status = "open"
	Closed        Status = "closed"
	Cancelled     Status = "canceled"
	Failed        Status = "failed"
)

// TakerOrMaker defines the liquidity side of a fill
type TakerOrMaker string

// Liquidity sides
const (
	Taker TakerOrMaker = "taker"
	Maker TakerOrMaker = "maker"
)
