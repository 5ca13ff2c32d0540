package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/thrasher-corp/bitget-legacy/config"
	"github.com/thrasher-corp/bitget-legacy/encoding/json"
	"github.com/thrasher-corp/bitget-legacy/exchanges/bitget"
	"github.com/thrasher-corp/bitget-legacy/exchanges/request"
	"github.com/thrasher-corp/bitget-legacy/log"
	"github.com/thrasher-corp/bitget-legacy/signaler"
	"github.com/urfave/cli/v2"
)

var (
	configPath    string
	timeout       time.Duration
	exchangeCreds config.Credentials
	verbose       bool
)

const defaultTimeout = time.Second * 30

func jsonOutput(in any) {
	j, err := json.MarshalIndent(in, "", " ")
	if err != nil {
		return
	}
	fmt.Println(string(j))
}

// setupClient loads the config, applies command line overrides and returns a
// ready exchange along with a context bounded by the request timeout
func setupClient(c *cli.Context) (*bitget.Bitget, context.CancelFunc, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	applyOverrides(cfg)
	if err := log.SetupGlobalLogger(&cfg.Logging); err != nil {
		return nil, nil, err
	}
	b, err := bitget.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	var cancel context.CancelFunc
	c.Context, cancel = context.WithTimeout(c.Context, timeout)
	if verbose {
		c.Context = request.WithVerbose(c.Context)
	}
	return b, cancel, nil
}

func applyOverrides(cfg *config.Config) {
	if verbose {
		cfg.Exchange.Verbose = true
	}
	if exchangeCreds.Key != "" {
		cfg.Credentials.Key = exchangeCreds.Key
	}
	if exchangeCreds.Secret != "" {
		cfg.Credentials.Secret = exchangeCreds.Secret
	}
	if exchangeCreds.ClientID != "" {
		cfg.Credentials.ClientID = exchangeCreds.ClientID
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "bitgetcli"
	app.EnableBashCompletion = true
	app.Usage = "command line interface for the legacy bitget spot and swap APIs"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "the config file to load, environment variables prefixed with BITGET_ are applied on top",
			Destination: &configPath,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Value:       defaultTimeout,
			Usage:       "the default context timeout value for requests",
			Destination: &timeout,
		},
		&cli.StringFlag{
			Name:        "apikey",
			Usage:       "override config API key for request",
			Destination: &exchangeCreds.Key,
		},
		&cli.StringFlag{
			Name:        "apisecret",
			Usage:       "override config API Secret for request",
			Destination: &exchangeCreds.Secret,
		},
		&cli.StringFlag{
			Name:        "apiclientid",
			Usage:       "override config API client ID (passphrase) for request",
			Destination: &exchangeCreds.ClientID,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "logs every request and response",
			Destination: &verbose,
		},
	}
	app.Commands = []*cli.Command{
		getTimeCommand,
		getMarketsCommand,
		getCurrenciesCommand,
		getTickerCommand,
		getTickersCommand,
		getOrderbookCommand,
		getTradesCommand,
		getOHLCVCommand,
		getBalanceCommand,
		getOrdersCommand,
		getMyTradesCommand,
		getTimeframesCommand,
	}

	ctx, cancel := cancelOnInterrupt(context.Background(), signaler.WaitForInterrupt())
	defer cancel()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// cancelOnInterrupt returns a context cancelled once interrupt fires, leaving
// the running command to unwind and report the cancellation itself
func cancelOnInterrupt(parent context.Context, interrupt <-chan os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case <-interrupt:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
