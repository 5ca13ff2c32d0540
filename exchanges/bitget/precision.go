package bitget

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxTickExponent bounds the exponents accepted, the exchange reports at most
// 18 decimal places
const maxTickExponent = 18

// TickSizeToStep converts a tick size exponent such as "2" into the decimal
// step 0.01. Absent, negative or malformed exponents yield an unknown step,
// never zero.
func TickSizeToStep(exp string) decimal.NullDecimal {
	exp = strings.TrimSpace(exp)
	if exp == "" {
		return decimal.NullDecimal{}
	}
	// exponents are sometimes reported as floats such as "2.0"
	if whole, frac, ok := strings.Cut(exp, "."); ok {
		if strings.Trim(frac, "0") != "" {
			return decimal.NullDecimal{}
		}
		exp = whole
	}
	e, err := strconv.Atoi(exp)
	if err != nil || e < 0 || e > maxTickExponent {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.New(1, -int32(e)))
}

// AmountStep returns the amount precision step of a market listing record.
// size_increment is a tick exponent like tick_size; lot_size and
// trade_increment are reported as literal steps.
func AmountStep(r Record) decimal.NullDecimal {
	if s := r.String("size_increment"); s.Valid {
		return TickSizeToStep(s.String)
	}
	step := r.Decimal("lot_size", "trade_increment")
	if !step.Valid || !step.Decimal.IsPositive() {
		return decimal.NullDecimal{}
	}
	return step
}
