package log

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	errEmptyLoggerName        = errors.New("cannot have empty logger name")
	errSubLoggerAlreadyExists = errors.New("sub logger already registered")
)

// NewSubLogger allows for a new sub logger to be registered.
func NewSubLogger(name string) (*SubLogger, error) {
	if name == "" {
		return nil, errEmptyLoggerName
	}
	name = strings.ToUpper(name)
	mu.Lock()
	defer mu.Unlock()
	if _, ok := subLoggers[name]; ok {
		return nil, fmt.Errorf("%w: %s", errSubLoggerAlreadyExists, name)
	}
	return registerNewSubLogger(name), nil
}

// registerNewSubLogger registers a new sub logger. Output is discarded until
// SetupGlobalLogger is called.
func registerNewSubLogger(name string) *SubLogger {
	sl := &SubLogger{
		name:   name,
		levels: splitLevel(defaultLevels),
		sugar:  zap.NewNop().Sugar(),
	}
	subLoggers[name] = sl
	return sl
}

// Name returns the sub logger name
func (sl *SubLogger) Name() string {
	if sl == nil {
		return ""
	}
	return sl.name
}

// Levels returns the enabled levels of the sub logger
func (sl *SubLogger) Levels() Levels {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil {
		return Levels{}
	}
	return sl.levels
}

func init() {
	Global = registerNewSubLogger("LOG")
	ConfigMgr = registerNewSubLogger("CONFIG")
	ExchangeSys = registerNewSubLogger("EXCHANGE")
	RequestSys = registerNewSubLogger("REQUESTER")
}
