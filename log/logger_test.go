package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSplitLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Levels{Info: true, Debug: true, Warn: true, Error: true}, splitLevel("INFO|DEBUG|WARN|ERROR"))
	assert.Equal(t, Levels{Warn: true, Error: true}, splitLevel("warn| error"))
	assert.Equal(t, Levels{}, splitLevel("meow"))
}

func TestNewSubLogger(t *testing.T) {
	t.Parallel()
	_, err := NewSubLogger("")
	assert.ErrorIs(t, err, errEmptyLoggerName)

	sl, err := NewSubLogger("newsublogger")
	require.NoError(t, err)
	assert.Equal(t, "NEWSUBLOGGER", sl.Name())

	_, err = NewSubLogger("NEWSUBLOGGER")
	assert.ErrorIs(t, err, errSubLoggerAlreadyExists)
}

func TestLogLevels(t *testing.T) {
	t.Parallel()
	sl, err := NewSubLogger("levelcheck")
	require.NoError(t, err)

	var buf bytes.Buffer
	mu.Lock()
	err = configureSubLogger("levelcheck", "INFO|ERROR", false, zapcore.AddSync(&buf))
	mu.Unlock()
	require.NoError(t, err)

	Debugf(sl, "hidden %d", 1)
	assert.Zero(t, buf.Len(), "Debugf should not write when debug is disabled")

	Infof(sl, "hello %s", "world")
	assert.Contains(t, buf.String(), "hello world")
	assert.Contains(t, buf.String(), "LEVELCHECK")

	buf.Reset()
	Warnln(sl, "hidden")
	assert.Zero(t, buf.Len(), "Warnln should not write when warn is disabled")

	Errorln(sl, "broken", 42)
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "broken42")
}

func TestNilSubLogger(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		Infof(nil, "test")
		Debugln(nil, "test")
		Errorf(nil, "test")
	})
	var sl *SubLogger
	assert.Empty(t, sl.Name())
	assert.Equal(t, Levels{}, sl.Levels())
}

func TestGetWriters(t *testing.T) {
	t.Parallel()
	_, err := getWriters(nil, "")
	assert.ErrorIs(t, err, errSubloggerConfigIsNil)

	_, err = getWriters(&SubLoggerConfig{Output: "console|stderr"}, "")
	assert.NoError(t, err)

	_, err = getWriters(&SubLoggerConfig{Output: "file"}, "")
	assert.ErrorIs(t, err, errFileNameUnset)

	_, err = getWriters(&SubLoggerConfig{Output: "carrier pigeon"}, "")
	assert.ErrorIs(t, err, errUnhandledOutputWriter)
}

func TestConfigureSubLoggerNotFound(t *testing.T) {
	t.Parallel()
	mu.Lock()
	defer mu.Unlock()
	err := configureSubLogger("doesnotexist", "INFO", false, zapcore.AddSync(&bytes.Buffer{}))
	assert.ErrorIs(t, err, errSubLoggerNotFound)
}

func TestGenDefaultSettings(t *testing.T) {
	t.Parallel()
	cfg := GenDefaultSettings()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, defaultLevels, cfg.Level)
	assert.Equal(t, defaultOutput, cfg.Output)
}
