package bitget

import (
	"slices"
	"sort"
)

// Registry is an immutable index of markets by native id and by unified
// symbol. It is built in full before being published and never mutated
// afterwards.
type Registry struct {
	markets  []Market
	byID     map[string]int
	bySymbol map[string]int
}

// NewRegistry indexes markets. A later market with the same native id replaces
// the earlier one.
func NewRegistry(markets ...[]Market) *Registry {
	r := &Registry{
		byID:     make(map[string]int),
		bySymbol: make(map[string]int),
	}
	for _, set := range markets {
		for i := range set {
			if idx, ok := r.byID[set[i].ID]; ok {
				if old := r.markets[idx].Symbol; r.bySymbol[old] == idx {
					delete(r.bySymbol, old)
				}
				r.markets[idx] = set[i]
				r.bySymbol[set[i].Symbol] = idx
				continue
			}
			r.markets = append(r.markets, set[i])
			r.byID[set[i].ID] = len(r.markets) - 1
			r.bySymbol[set[i].Symbol] = len(r.markets) - 1
		}
	}
	return r
}

// LoadAll builds a registry from raw spot and contract listing bodies. Either
// body may be empty when that family is not loaded.
func LoadAll(rawSpotListing, rawSwapListing []byte) (*Registry, error) {
	var sets [][]Market
	for _, raw := range [][]byte{rawSpotListing, rawSwapListing} {
		if len(raw) == 0 {
			continue
		}
		if err := CheckResponse(raw); err != nil {
			return nil, err
		}
		p, err := ParsePayload(raw)
		if err != nil {
			return nil, err
		}
		m, err := ParseMarkets(p)
		if err != nil {
			return nil, err
		}
		sets = append(sets, m)
	}
	return NewRegistry(sets...), nil
}

// ByNativeID returns the market with the exchange native id
func (r *Registry) ByNativeID(id string) (Market, bool) {
	if r == nil {
		return Market{}, false
	}
	idx, ok := r.byID[id]
	if !ok {
		return Market{}, false
	}
	return r.markets[idx], true
}

// BySymbol returns the market with the unified symbol
func (r *Registry) BySymbol(symbol string) (Market, bool) {
	if r == nil {
		return Market{}, false
	}
	idx, ok := r.bySymbol[symbol]
	if !ok {
		return Market{}, false
	}
	return r.markets[idx], true
}

// Market returns the market with the unified symbol or a BadSymbol error
func (r *Registry) Market(symbol string) (Market, error) {
	m, ok := r.BySymbol(symbol)
	if !ok {
		return Market{}, NewError(KindBadSymbol, "market %q not found", symbol)
	}
	return m, nil
}

// Markets returns a copy of every market in load order
func (r *Registry) Markets() []Market {
	if r == nil {
		return nil
	}
	return slices.Clone(r.markets)
}

// Symbols returns the sorted unified symbols of every market
func (r *Registry) Symbols() []string {
	if r == nil {
		return nil
	}
	s := make([]string, 0, len(r.bySymbol))
	for k := range r.bySymbol {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// Len returns the number of markets
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.markets)
}

