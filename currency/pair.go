package currency

import (
	"fmt"
	"strings"
)

// Pair holds currency pair information
type Pair struct {
	Delimiter string `json:"delimiter,omitempty"`
	Base      Code   `json:"base,omitempty"`
	Quote     Code   `json:"quote,omitempty"`
}

// NewPair returns a currency pair from currency codes
func NewPair(baseCurrency, quoteCurrency Code) Pair {
	return Pair{
		Base:  baseCurrency,
		Quote: quoteCurrency,
	}
}

// NewPairWithDelimiter returns a currency pair with a delimiter
func NewPairWithDelimiter(base, quote, delimiter string) Pair {
	return Pair{
		Base:      SafeCode(base),
		Quote:     SafeCode(quote),
		Delimiter: delimiter,
	}
}

// NewPairDelimiter splits the desired currency string at delimiter and returns
// a Pair. The string must split into exactly two non empty parts.
func NewPairDelimiter(currencyPair, delimiter string) (Pair, error) {
	if currencyPair == "" {
		return EMPTYPAIR, ErrCurrencyPairEmpty
	}
	result := strings.Split(currencyPair, delimiter)
	if len(result) != 2 || result[0] == "" || result[1] == "" {
		return EMPTYPAIR, fmt.Errorf("%q cannot be split into base and quote with delimiter %q", currencyPair, delimiter)
	}
	return NewPairWithDelimiter(result[0], result[1], delimiter), nil
}

// String returns a currency pair string
func (p Pair) String() string {
	return p.Base.String() + p.Delimiter + p.Quote.String()
}

// Format changes the currency based on user preferences overriding the default
// String() display
func (p Pair) Format(delimiter string, uppercase bool) Pair {
	p.Delimiter = delimiter
	if uppercase {
		p.Base, p.Quote = p.Base.Upper(), p.Quote.Upper()
		return p
	}
	p.Base, p.Quote = p.Base.Lower(), p.Quote.Lower()
	return p
}

// Equal compares two currency pairs and returns whether or not they are equal
func (p Pair) Equal(cPair Pair) bool {
	return p.Base.Equal(cPair.Base) && p.Quote.Equal(cPair.Quote)
}

// IsEmpty returns whether or not the pair is empty or is missing a currency
// code
func (p Pair) IsEmpty() bool {
	return p.Base.IsEmpty() || p.Quote.IsEmpty()
}
