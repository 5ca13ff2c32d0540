package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/bitget-legacy/config"
	"github.com/thrasher-corp/bitget-legacy/exchanges/asset"
	"github.com/thrasher-corp/bitget-legacy/exchanges/bitget"
)

func TestParseFamilies(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"", "all", "ALL"} {
		f, err := parseFamilies(v)
		require.NoError(t, err)
		assert.Equal(t, []asset.Item{asset.Spot, asset.Swap}, f)
	}
	f, err := parseFamilies("swap")
	require.NoError(t, err)
	assert.Equal(t, []asset.Item{asset.Swap}, f)

	_, err = parseFamilies("margin")
	assert.ErrorIs(t, err, asset.ErrNotSupported)
}

func TestOrderStatus(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]int{
		"":       bitget.OrderQueryAll,
		"all":    bitget.OrderQueryAll,
		"Open":   bitget.OrderQueryOpen,
		"closed": bitget.OrderQueryDone,
	} {
		got, err := orderStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := orderStatus("filled")
	assert.ErrorIs(t, err, errInvalidStatus)
}

func TestParseSince(t *testing.T) {
	t.Parallel()
	s, err := parseSince("")
	require.NoError(t, err)
	assert.True(t, s.IsZero())

	s, err = parseSince("2020-03-25 11:42:02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 3, 25, 11, 42, 2, 0, time.UTC), s)

	_, err = parseSince("yesterday")
	assert.Error(t, err)
}

func TestSplitSymbols(t *testing.T) {
	t.Parallel()
	assert.Nil(t, splitSymbols(""))
	assert.Equal(t, []string{"BTC/USDT", "ETH/USDT"}, splitSymbols("BTC/USDT, ETH/USDT"))
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Credentials.Key = "cfgkey"
	cfg.Credentials.Secret = "cfgsecret"

	exchangeCreds = config.Credentials{Secret: "flagsecret", ClientID: "flagpass"}
	verbose = true
	t.Cleanup(func() {
		exchangeCreds = config.Credentials{}
		verbose = false
	})

	applyOverrides(cfg)
	assert.True(t, cfg.Exchange.Verbose)
	assert.Equal(t, "cfgkey", cfg.Credentials.Key, "unset flags must not clear config values")
	assert.Equal(t, "flagsecret", cfg.Credentials.Secret)
	assert.Equal(t, "flagpass", cfg.Credentials.ClientID)
}

func TestCancelOnInterrupt(t *testing.T) {
	t.Parallel()
	interrupt := make(chan os.Signal, 1)
	ctx, cancel := cancelOnInterrupt(testContext(t), interrupt)
	defer cancel()
	require.NoError(t, ctx.Err())

	interrupt <- os.Interrupt
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		require.Fail(t, "interrupt must cancel the running command's context")
	}
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	ctx, cancel = cancelOnInterrupt(testContext(t), make(chan os.Signal))
	cancel()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

// testContext stands in for testing.T.Context (Go 1.24+): a context that is
// cancelled when the test finishes.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
