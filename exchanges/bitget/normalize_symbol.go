package bitget

import (
	"strings"

	"github.com/thrasher-corp/bitget-legacy/currency"
)

// Native id delimiters used when a market is not in the registry
const (
	tickerDelimiter = "_"
	tradeDelimiter  = "-"
)

// symbolRef is the unified view of a native market id
type symbolRef struct {
	Symbol string
	Base   currency.Code
	Quote  currency.Code
	// QuoteID is the native quote id when it could be determined
	QuoteID string
}

// resolveSymbol maps a native id to a unified symbol. The registry is
// consulted first, then an id with exactly two non empty parts around
// delimiter is read as BASE/QUOTE. Anything else passes through, uppercased when upper is
// set.
func resolveSymbol(reg *Registry, id, delimiter string, upper bool) symbolRef {
	if id == "" {
		return symbolRef{}
	}
	if m, ok := reg.ByNativeID(id); ok {
		return symbolRef{Symbol: m.Symbol, Base: m.Base, Quote: m.Quote, QuoteID: m.QuoteID}
	}
	if pair, err := currency.NewPairDelimiter(id, delimiter); err == nil {
		_, quoteID, _ := strings.Cut(id, delimiter)
		return symbolRef{
			Symbol:  pair.Format("/", true).String(),
			Base:    pair.Base,
			Quote:   pair.Quote,
			QuoteID: quoteID,
		}
	}
	if upper {
		id = strings.ToUpper(id)
	}
	return symbolRef{Symbol: id}
}
