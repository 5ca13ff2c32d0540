package currency

// Translations is a map of translations for a specific exchange implementation
// the key indicates the exchange representation and the value the common
// representation
type Translations map[Code]Code

// NewTranslations returns a new translation map, e.g. XBT as key and BTC as
// value, this is useful for exchanges that use different naming conventions.
func NewTranslations(t map[Code]Code) Translations {
	lookup := make(Translations, len(t))
	for k, v := range t {
		lookup[k.Upper()] = v.Upper()
	}
	return lookup
}

// Translate returns the translated currency code. If no translation is found
// it will return the original currency code.
func (t Translations) Translate(incoming Code) Code {
	if len(t) == 0 {
		return incoming
	}
	val, ok := t[incoming.Upper()]
	if !ok {
		return incoming
	}
	return val
}

// Translator is an interface for translating currency codes
type Translator interface {
	Translate(Code) Code
}

// commonTranslations holds legacy tickers still reported by older exchange
// API versions
var commonTranslations = NewTranslations(map[Code]Code{
	XBT:    BTC,
	BCC:    BCH,
	BCHABC: BCH,
	BCHSV:  BSV,
	DRK:    DASH,
})

// SafeCode converts an exchange native currency id into a common currency
// code. An empty id yields EMPTYCODE.
func SafeCode(id string) Code {
	c := NewCode(id)
	if c.IsEmpty() {
		return EMPTYCODE
	}
	return commonTranslations.Translate(c)
}
