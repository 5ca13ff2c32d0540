package main

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/thrasher-corp/bitget-legacy/common"
	"github.com/thrasher-corp/bitget-legacy/exchanges/asset"
	"github.com/thrasher-corp/bitget-legacy/exchanges/bitget"
	"github.com/urfave/cli/v2"
)

var (
	errInvalidSymbol = errors.New("invalid symbol supplied")
	errInvalidStatus = errors.New("invalid order status supplied, must be open, closed or all")
)

var symbolFlag = &cli.StringFlag{
	Name:  "symbol",
	Usage: "the unified symbol e.g. BTC/USDT or CMT_BTCUSDT",
}

var limitFlag = &cli.IntFlag{
	Name:  "limit",
	Usage: "the maximum number of entries to return, zero uses the exchange default",
}

var sinceFlag = &cli.StringFlag{
	Name:  "since",
	Usage: "only return entries at or after this time, in the format " + common.SimpleTimeFormat,
}

var assetFlag = &cli.StringFlag{
	Name:  "asset",
	Usage: "the product family, spot or swap",
}

var getTimeCommand = &cli.Command{
	Name:   "time",
	Usage:  "returns the exchange server time in epoch milliseconds",
	Action: getTime,
}

var getMarketsCommand = &cli.Command{
	Name:      "markets",
	Usage:     "returns the listed markets, optionally for a single product family",
	ArgsUsage: "<asset>",
	Flags:     []cli.Flag{assetFlag},
	Action:    getMarkets,
}

var getCurrenciesCommand = &cli.Command{
	Name:   "currencies",
	Usage:  "returns the listed spot currencies",
	Action: getCurrencies,
}

var getTickerCommand = &cli.Command{
	Name:      "ticker",
	Usage:     "returns the ticker for a symbol",
	ArgsUsage: "<symbol>",
	Flags:     []cli.Flag{symbolFlag},
	Action:    getTicker,
}

var getTickersCommand = &cli.Command{
	Name:      "tickers",
	Usage:     "returns every ticker for a product family, optionally filtered by symbol",
	ArgsUsage: "<asset> <symbols>",
	Flags: []cli.Flag{
		assetFlag,
		&cli.StringFlag{
			Name:  "symbols",
			Usage: "comma delimited list of symbols to keep e.g. \"BTC/USDT,ETH/USDT\"",
		},
	},
	Action: getTickers,
}

var getOrderbookCommand = &cli.Command{
	Name:      "orderbook",
	Usage:     "returns the order book for a symbol",
	ArgsUsage: "<symbol> <limit>",
	Flags:     []cli.Flag{symbolFlag, limitFlag},
	Action:    getOrderbook,
}

var getTradesCommand = &cli.Command{
	Name:      "trades",
	Usage:     "returns recent public trades for a symbol",
	ArgsUsage: "<symbol> <limit>",
	Flags:     []cli.Flag{symbolFlag, limitFlag},
	Action:    getTrades,
}

var getOHLCVCommand = &cli.Command{
	Name:      "ohlcv",
	Usage:     "returns candles for a symbol",
	ArgsUsage: "<symbol> <timeframe>",
	Flags: []cli.Flag{
		symbolFlag,
		&cli.StringFlag{
			Name:  "timeframe",
			Value: "1m",
			Usage: "the candle interval, see the timeframes command",
		},
		sinceFlag,
		limitFlag,
	},
	Action: getOHLCV,
}

var getBalanceCommand = &cli.Command{
	Name:      "balance",
	Usage:     "returns account balances for a product family",
	ArgsUsage: "<asset>",
	Flags:     []cli.Flag{assetFlag},
	Action:    getBalance,
}

var getOrdersCommand = &cli.Command{
	Name:      "orders",
	Usage:     "returns orders for a symbol",
	ArgsUsage: "<symbol> <status>",
	Flags: []cli.Flag{
		symbolFlag,
		&cli.StringFlag{
			Name:  "status",
			Value: "all",
			Usage: "open, closed or all",
		},
		sinceFlag,
		limitFlag,
	},
	Action: getOrders,
}

var getMyTradesCommand = &cli.Command{
	Name:      "mytrades",
	Usage:     "returns the account's executions for a symbol",
	ArgsUsage: "<symbol>",
	Flags:     []cli.Flag{symbolFlag, sinceFlag, limitFlag},
	Action:    getMyTrades,
}

var getTimeframesCommand = &cli.Command{
	Name:   "timeframes",
	Usage:  "returns the supported candle timeframes",
	Action: getTimeframes,
}

// stringArg returns the named flag when set, otherwise the positional
// argument at index
func stringArg(c *cli.Context, name string, index int) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return c.Args().Get(index)
}

func intArg(c *cli.Context, name string, index int) (int, error) {
	if c.IsSet(name) {
		return c.Int(name), nil
	}
	if v := c.Args().Get(index); v != "" {
		return strconv.Atoi(v)
	}
	return 0, nil
}

func symbolArg(c *cli.Context) (string, error) {
	symbol := strings.TrimSpace(stringArg(c, "symbol", 0))
	if symbol == "" {
		return "", errInvalidSymbol
	}
	return symbol, nil
}

func parseSince(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(common.SimpleTimeFormat, v)
}

// parseFamilies returns every supported family for an empty input
func parseFamilies(v string) ([]asset.Item, error) {
	if v == "" || strings.EqualFold(v, "all") {
		return asset.Supported(), nil
	}
	a, err := asset.New(v)
	if err != nil {
		return nil, err
	}
	return []asset.Item{a}, nil
}

func orderStatus(v string) (int, error) {
	switch strings.ToLower(v) {
	case "open":
		return bitget.OrderQueryOpen, nil
	case "closed":
		return bitget.OrderQueryDone, nil
	case "", "all":
		return bitget.OrderQueryAll, nil
	}
	return 0, errInvalidStatus
}

func splitSymbols(v string) []string {
	if v == "" {
		return nil
	}
	symbols := strings.Split(v, ",")
	for i := range symbols {
		symbols[i] = strings.TrimSpace(symbols[i])
	}
	return symbols
}

func getTime(c *cli.Context) error {
	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchTime(c.Context)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getMarkets(c *cli.Context) error {
	families, err := parseFamilies(stringArg(c, "asset", 0))
	if err != nil {
		return err
	}

	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchMarkets(c.Context, families...)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getCurrencies(c *cli.Context) error {
	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchCurrencies(c.Context)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getTicker(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}

	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchTicker(c.Context, symbol)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getTickers(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	family, err := asset.New(stringArg(c, "asset", 0))
	if err != nil {
		return err
	}
	symbols := splitSymbols(stringArg(c, "symbols", 1))

	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchTickers(c.Context, family, symbols...)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getOrderbook(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}
	limit, err := intArg(c, "limit", 1)
	if err != nil {
		return err
	}

	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchOrderBook(c.Context, symbol, limit)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getTrades(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}
	limit, err := intArg(c, "limit", 1)
	if err != nil {
		return err
	}

	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchTrades(c.Context, symbol, limit)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getOHLCV(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}
	timeframe := c.String("timeframe")
	if !c.IsSet("timeframe") && c.Args().Get(1) != "" {
		timeframe = c.Args().Get(1)
	}
	since, err := parseSince(c.String("since"))
	if err != nil {
		return err
	}

	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchOHLCV(c.Context, symbol, timeframe, since, c.Int("limit"))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getBalance(c *cli.Context) error {
	family, err := asset.New(stringArg(c, "asset", 0))
	if err != nil {
		return err
	}

	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchBalance(c.Context, family)
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getOrders(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}
	status, err := orderStatus(stringArg(c, "status", 1))
	if err != nil {
		return err
	}
	since, err := parseSince(c.String("since"))
	if err != nil {
		return err
	}

	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchOrders(c.Context, symbol, status, since, c.Int("limit"))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getMyTrades(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}
	symbol, err := symbolArg(c)
	if err != nil {
		return err
	}
	since, err := parseSince(c.String("since"))
	if err != nil {
		return err
	}

	b, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := b.FetchMyTrades(c.Context, symbol, since, c.Int("limit"))
	if err != nil {
		return err
	}
	jsonOutput(result)
	return nil
}

func getTimeframes(_ *cli.Context) error {
	jsonOutput(bitget.Timeframes())
	return nil
}
