package bitget

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/bitget-legacy/currency"
	"github.com/thrasher-corp/bitget-legacy/exchanges/asset"
	"github.com/volatiletech/null"
)

var errMarketIDUnset = errors.New("market listing has no symbol or instrument_id")

// Trading fee rates per product family
var (
	spotTakerFee = decimal.RequireFromString("0.002")
	spotMakerFee = decimal.RequireFromString("0.002")
	swapTakerFee = decimal.RequireFromString("0.0006")
	swapMakerFee = decimal.RequireFromString("0.0004")
)

// ParseMarkets normalises a market listing. Spot listings report a data
// array, contract listings either an array root or a data.contractApis
// member.
func ParseMarkets(p Payload) ([]Market, error) {
	var (
		records []Record
		err     error
	)
	if p.Kind == PayloadEnveloped && Record(p.Data).Has("contractApis") {
		records, err = p.Records("contractApis")
	} else {
		records, err = p.Records()
	}
	if err != nil {
		return nil, err
	}
	markets := make([]Market, 0, len(records))
	for i := range records {
		m, err := ParseMarket(records[i])
		if err != nil {
			return nil, err
		}
		markets = append(markets, m)
	}
	return markets, nil
}

// ParseMarket normalises a single spot or contract listing record. A record
// carrying contract_val is a swap market.
func ParseMarket(r Record) (Market, error) {
	id := r.String("symbol", "instrument_id")
	if !id.Valid {
		return Market{}, errMarketIDUnset
	}
	m := Market{
		ID:      id.String,
		BaseID:  r.String("base_currency", "coin").String,
		QuoteID: r.String("quote_currency").String,
		Type:    asset.Spot,
		Spot:    true,
		Taker:   spotTakerFee,
		Maker:   spotMakerFee,
	}
	if r.Decimal("contract_val").Valid {
		m.Type = asset.Swap
		m.Spot = false
		m.Swap = true
		m.Taker = swapTakerFee
		m.Maker = swapMakerFee
	}
	pair := currency.NewPairWithDelimiter(m.BaseID, m.QuoteID, "/")
	m.Base, m.Quote = pair.Base, pair.Quote
	if m.Spot {
		m.Symbol = pair.String()
	} else {
		m.Symbol = strings.ToUpper(m.ID)
	}

	m.Precision.Amount = AmountStep(r)
	m.Precision.Price = TickSizeToStep(r.String("tick_size").String)

	m.Limits.Amount.Min = r.Decimal("min_size", "base_min_size")
	m.Limits.Price.Min = m.Precision.Price
	m.Limits.Cost.Min = m.Precision.Price

	if status := r.String("status"); status.Valid {
		m.Active = null.BoolFrom(status.String == "1")
	}
	return m, nil
}
