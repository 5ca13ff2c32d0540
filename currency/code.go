package currency

import (
	"errors"
	"strings"

	"github.com/thrasher-corp/bitget-legacy/encoding/json"
)

var (
	// ErrCurrencyCodeEmpty defines an error if the currency code is empty
	ErrCurrencyCodeEmpty = errors.New("currency code is empty")
	// ErrCurrencyPairEmpty defines an error if the currency pair is empty
	ErrCurrencyPairEmpty = errors.New("currency pair is empty")
	// EMPTYCODE is an empty currency code
	EMPTYCODE = Code{}
	// EMPTYPAIR is an empty currency pair
	EMPTYPAIR = Pair{}
)

// Codes referenced by the exchange translation table
var (
	BTC    = NewCode("BTC")
	BCH    = NewCode("BCH")
	BSV    = NewCode("BSV")
	DASH   = NewCode("DASH")
	ETH    = NewCode("ETH")
	USDT   = NewCode("USDT")
	XBT    = NewCode("XBT")
	BCC    = NewCode("BCC")
	BCHABC = NewCode("BCHABC")
	BCHSV  = NewCode("BCHSV")
	DRK    = NewCode("DRK")
)

// Code defines an ISO 4217 fiat currency or unofficial cryptocurrency code
// string. The symbol is always stored in uppercase.
type Code struct {
	symbol string
	lower  bool
}

// NewCode returns a new currency code, surrounding whitespace is removed and
// the symbol is uppercased
func NewCode(c string) Code {
	return Code{symbol: strings.ToUpper(strings.TrimSpace(c))}
}

// String converts the code to string
func (c Code) String() string {
	if c.lower {
		return strings.ToLower(c.symbol)
	}
	return c.symbol
}

// Lower flags the Code to use lowercase formatting, but does not change the
// stored symbol
func (c Code) Lower() Code {
	c.lower = true
	return c
}

// Upper flags the Code to use uppercase formatting
func (c Code) Upper() Code {
	c.lower = false
	return c
}

// IsEmpty returns true if the code is empty
func (c Code) IsEmpty() bool {
	return c.symbol == ""
}

// Equal returns if the code supplied is the same as the corresponding code
func (c Code) Equal(check Code) bool {
	return c.symbol == check.symbol
}

// UnmarshalJSON conforms type to the umarshaler interface
func (c *Code) UnmarshalJSON(d []byte) error {
	var newcode string
	if err := json.Unmarshal(d, &newcode); err != nil {
		return err
	}
	*c = NewCode(newcode)
	return nil
}

// MarshalJSON conforms type to the marshaler interface
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
