package log

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	errSubloggerConfigIsNil  = errors.New("sublogger config is nil")
	errUnhandledOutputWriter = errors.New("unhandled output writer")
	errFileNameUnset         = errors.New("file output requested without a filename")
	errSubLoggerNotFound     = errors.New("sub logger not found")
)

// GenDefaultSettings return struct with known sane/working logger settings
func GenDefaultSettings() Config {
	return Config{
		Enabled: true,
		SubLoggerConfig: SubLoggerConfig{
			Level:  defaultLevels,
			Output: defaultOutput,
		},
	}
}

func newEncoder(structured bool) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if structured {
		return zapcore.NewJSONEncoder(encoderCfg)
	}
	return zapcore.NewConsoleEncoder(encoderCfg)
}

func getWriters(s *SubLoggerConfig, fileName string) (zapcore.WriteSyncer, error) {
	if s == nil {
		return nil, errSubloggerConfigIsNil
	}
	var syncers []zapcore.WriteSyncer
	for _, output := range strings.Split(s.Output, "|") {
		switch strings.ToLower(strings.TrimSpace(output)) {
		case "stdout", "console":
			syncers = append(syncers, zapcore.Lock(os.Stdout))
		case "stderr":
			syncers = append(syncers, zapcore.Lock(os.Stderr))
		case "file":
			if fileName == "" {
				return nil, errFileNameUnset
			}
			f, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, err
			}
			syncers = append(syncers, zapcore.AddSync(f))
		default:
			return nil, fmt.Errorf("%w: %s", errUnhandledOutputWriter, output)
		}
	}
	return zapcore.NewMultiWriteSyncer(syncers...), nil
}

func configureSubLogger(name, levels string, structured bool, ws zapcore.WriteSyncer) error {
	sl, found := subLoggers[strings.ToUpper(name)]
	if !found {
		return fmt.Errorf("%w: %v", errSubLoggerNotFound, name)
	}
	core := zapcore.NewCore(newEncoder(structured), ws, zapcore.DebugLevel)
	sl.sugar = zap.New(core).Named(sl.name).Sugar()
	sl.levels = splitLevel(levels)
	return nil
}

// SetupGlobalLogger applies cfg to every registered sub logger and then any
// per sub logger overrides. A disabled config silences all output.
func SetupGlobalLogger(cfg *Config) error {
	if cfg == nil {
		return errSubloggerConfigIsNil
	}
	mu.Lock()
	defer mu.Unlock()
	if !cfg.Enabled {
		for _, sl := range subLoggers {
			sl.sugar = zap.NewNop().Sugar()
			sl.levels = Levels{}
		}
		return nil
	}
	ws, err := getWriters(&cfg.SubLoggerConfig, cfg.FileName)
	if err != nil {
		return err
	}
	for name := range subLoggers {
		if err := configureSubLogger(name, cfg.Level, cfg.JSON, ws); err != nil {
			return err
		}
	}
	for x := range cfg.SubLoggers {
		sub := cfg.SubLoggers[x]
		if sub.Output == "" {
			sub.Output = cfg.Output
		}
		ws, err := getWriters(&sub, cfg.FileName)
		if err != nil {
			return err
		}
		if err := configureSubLogger(sub.Name, sub.Level, cfg.JSON, ws); err != nil {
			return err
		}
	}
	return nil
}

func splitLevel(level string) (l Levels) {
	enabledLevels := strings.Split(level, "|")
	for x := range enabledLevels {
		switch strings.ToUpper(strings.TrimSpace(enabledLevels[x])) {
		case "DEBUG":
			l.Debug = true
		case "INFO":
			l.Info = true
		case "WARN":
			l.Warn = true
		case "ERROR":
			l.Error = true
		}
	}
	return
}
