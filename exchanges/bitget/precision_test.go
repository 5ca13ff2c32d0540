package bitget

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickSizeToStep(t *testing.T) {
	t.Parallel()
	for exp, want := range map[string]string{
		"0":   "1",
		"2":   "0.01",
		"8":   "0.00000001",
		"4.0": "0.0001",
		" 3 ": "0.001",
	} {
		assertDecimal(t, want, TickSizeToStep(exp), exp)
	}
	for _, exp := range []string{"", "-1", "x", "2.5", "19"} {
		assert.Falsef(t, TickSizeToStep(exp).Valid, "exponent %q must yield an unknown step", exp)
	}

	prev := TickSizeToStep("0")
	for e := 1; e <= maxTickExponent; e++ {
		step := TickSizeToStep(strconv.Itoa(e))
		assert.True(t, step.Decimal.IsPositive(), "steps must be strictly positive")
		assert.True(t, step.Decimal.LessThan(prev.Decimal), "steps must decrease with the exponent")
		prev = step
	}
}

func TestAmountStep(t *testing.T) {
	t.Parallel()
	assertDecimal(t, "0.0001", AmountStep(Record(`{"size_increment":"4","lot_size":"1"}`)))
	assertDecimal(t, "0.5", AmountStep(Record(`{"lot_size":"0.5"}`)))
	assertDecimal(t, "1", AmountStep(Record(`{"trade_increment":"1"}`)))
	assert.False(t, AmountStep(Record(`{"lot_size":"0"}`)).Valid)
	assert.False(t, AmountStep(Record(`{}`)).Valid)
}
