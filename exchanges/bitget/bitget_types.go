package bitget

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/bitget-legacy/currency"
	"github.com/thrasher-corp/bitget-legacy/exchanges/asset"
	"github.com/thrasher-corp/bitget-legacy/exchanges/order"
	"github.com/volatiletech/null"
)

// Family identifies the signing scheme of one of the backing APIs
type Family uint8

// Signing families
const (
	// FamilyA covers the public data and contract market endpoints, requests
	// are not signed
	FamilyA Family = iota
	// FamilyB covers the private swap API, signed with HMAC-SHA256 and a
	// passphrase
	FamilyB
	// FamilyC covers the private spot account API, signed with HMAC-MD5 keyed
	// by the hex SHA1 of the secret
	FamilyC
)

// MinMax holds an optional lower and upper bound
type MinMax struct {
	Min decimal.NullDecimal `json:"min"`
	Max decimal.NullDecimal `json:"max"`
}

// Precision holds decimal steps for amounts and prices
type Precision struct {
	Amount decimal.NullDecimal `json:"amount"`
	Price  decimal.NullDecimal `json:"price"`
}

// Limits holds the trading limits of a market
type Limits struct {
	Amount MinMax `json:"amount"`
	Price  MinMax `json:"price"`
	Cost   MinMax `json:"cost"`
}

// Market is a single tradable instrument
type Market struct {
	ID        string          `json:"id"`
	Symbol    string          `json:"symbol"`
	BaseID    string          `json:"baseId"`
	QuoteID   string          `json:"quoteId"`
	Base      currency.Code   `json:"base"`
	Quote     currency.Code   `json:"quote"`
	Type      asset.Item      `json:"type"`
	Spot      bool            `json:"spot"`
	Swap      bool            `json:"swap"`
	Active    null.Bool       `json:"active"`
	Precision Precision       `json:"precision"`
	Limits    Limits          `json:"limits"`
	Taker     decimal.Decimal `json:"taker"`
	Maker     decimal.Decimal `json:"maker"`
}

// Currency is a currency supported by the exchange. Precision and limits are
// not published.
type Currency struct {
	ID   string        `json:"id"`
	Code currency.Code `json:"code"`
}

// Ticker holds the 24h ticker data for a symbol
type Ticker struct {
	Symbol      string              `json:"symbol"`
	Timestamp   null.Int64          `json:"timestamp"`
	High        decimal.NullDecimal `json:"high"`
	Low         decimal.NullDecimal `json:"low"`
	Bid         decimal.NullDecimal `json:"bid"`
	BidVolume   decimal.NullDecimal `json:"bidVolume"`
	Ask         decimal.NullDecimal `json:"ask"`
	AskVolume   decimal.NullDecimal `json:"askVolume"`
	VWAP        decimal.NullDecimal `json:"vwap"`
	Open        decimal.NullDecimal `json:"open"`
	Close       decimal.NullDecimal `json:"close"`
	Last        decimal.NullDecimal `json:"last"`
	Change      decimal.NullDecimal `json:"change"`
	Percentage  decimal.NullDecimal `json:"percentage"`
	Average     decimal.NullDecimal `json:"average"`
	BaseVolume  decimal.NullDecimal `json:"baseVolume"`
	QuoteVolume decimal.NullDecimal `json:"quoteVolume"`
}

// Fee is a fee charged in a currency, positive values are charges
type Fee struct {
	Cost     decimal.NullDecimal `json:"cost"`
	Currency currency.Code       `json:"currency"`
}

// Trade is a public or private trade
type Trade struct {
	ID           string              `json:"id"`
	Order        string              `json:"order,omitempty"`
	Timestamp    null.Int64          `json:"timestamp"`
	Symbol       string              `json:"symbol"`
	Side         order.Side          `json:"side"`
	TakerOrMaker order.TakerOrMaker  `json:"takerOrMaker,omitempty"`
	Price        decimal.NullDecimal `json:"price"`
	Amount       decimal.NullDecimal `json:"amount"`
	Cost         decimal.NullDecimal `json:"cost"`
	Fee          *Fee                `json:"fee,omitempty"`
}

// Candle is one OHLCV row
type Candle struct {
	Timestamp null.Int64          `json:"timestamp"`
	Open      decimal.NullDecimal `json:"open"`
	High      decimal.NullDecimal `json:"high"`
	Low       decimal.NullDecimal `json:"low"`
	Close     decimal.NullDecimal `json:"close"`
	Volume    decimal.NullDecimal `json:"volume"`
}

// OrderBookLevel is a single price level
type OrderBookLevel struct {
	Price  decimal.Decimal `json:"price"`
	Amount decimal.Decimal `json:"amount"`
}

// OrderBook holds bids sorted descending and asks sorted ascending
type OrderBook struct {
	Symbol    string           `json:"symbol"`
	Timestamp null.Int64       `json:"timestamp"`
	Nonce     null.Int64       `json:"nonce"`
	Bids      []OrderBookLevel `json:"bids"`
	Asks      []OrderBookLevel `json:"asks"`
}

// Order is a snapshot of an order as reported by the exchange
type Order struct {
	ID            string              `json:"id"`
	ClientOrderID string              `json:"clientOrderId,omitempty"`
	Timestamp     null.Int64          `json:"timestamp"`
	Symbol        string              `json:"symbol"`
	Type          order.Type          `json:"type"`
	Side          order.Side          `json:"side"`
	Price         decimal.NullDecimal `json:"price"`
	Average       decimal.NullDecimal `json:"average"`
	Amount        decimal.NullDecimal `json:"amount"`
	Filled        decimal.NullDecimal `json:"filled"`
	Remaining     decimal.NullDecimal `json:"remaining"`
	Cost          decimal.NullDecimal `json:"cost"`
	Status        order.Status        `json:"status"`
	Fee           *Fee                `json:"fee,omitempty"`
}

// Balance holds the free, used and total amounts of one entry
type Balance struct {
	Free  decimal.NullDecimal `json:"free"`
	Used  decimal.NullDecimal `json:"used"`
	Total decimal.NullDecimal `json:"total"`
}

// BalanceSet holds balances for one account family. Spot balances are keyed
// by currency code, swap balances by market symbol.
type BalanceSet struct {
	Family   asset.Item         `json:"family"`
	Balances map[string]Balance `json:"balances"`
}

// Account is a spot account
type Account struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// LedgerLeg is one side of a spot fill as reported by the match results feed
type LedgerLeg struct {
	TradeID      string              `json:"tradeId"`
	InstrumentID string              `json:"instrumentId"`
	Currency     string              `json:"currency"`
	Price        decimal.NullDecimal `json:"price"`
	Size         decimal.NullDecimal `json:"size"`
	Fee          decimal.NullDecimal `json:"fee"`
	Timestamp    null.Int64          `json:"timestamp"`
	OrderID      string              `json:"orderId"`
	ExecType     string              `json:"execType,omitempty"`
}

// Transaction is a deposit or a withdrawal
type Transaction struct {
	ID          string              `json:"id"`
	TxID        string              `json:"txid"`
	Type        string              `json:"type"`
	Currency    currency.Code       `json:"currency"`
	Amount      decimal.NullDecimal `json:"amount"`
	AddressFrom string              `json:"addressFrom,omitempty"`
	AddressTo   string              `json:"addressTo,omitempty"`
	Address     string              `json:"address,omitempty"`
	Status      string              `json:"status"`
	Timestamp   null.Int64          `json:"timestamp"`
	Fee         Fee                 `json:"fee"`
}

// LedgerEntry is a single balance change
type LedgerEntry struct {
	ID          string              `json:"id"`
	ReferenceID string              `json:"referenceId,omitempty"`
	Type        string              `json:"type"`
	Currency    currency.Code       `json:"currency"`
	Amount      decimal.NullDecimal `json:"amount"`
	Before      decimal.NullDecimal `json:"before"`
	After       decimal.NullDecimal `json:"after"`
	Status      string              `json:"status"`
	Timestamp   null.Int64          `json:"timestamp"`
	Fee         Fee                 `json:"fee"`
}

// Credentials holds the API credentials. ClientID is the swap passphrase.
type Credentials struct {
	Key      string
	Secret   string
	ClientID string
}

// SignedRequest is the authentication material for a single request
type SignedRequest struct {
	URL     string
	Path    string
	Body    string
	Headers map[string]string
}

// OrderSubmission holds the parameters of a new order
type OrderSubmission struct {
	Symbol        string          `validate:"required"`
	Side          order.Side      `validate:"required,oneof=buy sell"`
	Type          order.Type      `validate:"required,oneof=limit market"`
	Amount        decimal.Decimal
	Price         decimal.Decimal
	ClientOrderID string `validate:"omitempty,max=32,alphanum,lowercase"`
	// PositionAction is the swap position code: 1 open long, 2 open short,
	// 3 close long, 4 close short. When zero it is derived from Side as an
	// opening order.
	PositionAction int `validate:"gte=0,lte=4"`
	// MatchPrice executes at the best counter party price when set
	MatchPrice bool
	// TimeInForce is the swap order type: 0 normal, 1 post only, 2 fill or
	// kill, 3 immediate or cancel
	TimeInForce int `validate:"gte=0,lte=3"`
}
