package log

import (
	"sync"
)

const (
	defaultLevels = "INFO|WARN|DEBUG|ERROR"
	defaultOutput = "console"
)

// mu guards sub logger configuration, log calls take the read lock
var mu sync.RWMutex

// Config holds configuration settings loaded from the adapter config
type Config struct {
	Enabled         bool `mapstructure:"enabled" json:"enabled"`
	SubLoggerConfig `mapstructure:",squash"`
	// JSON switches the console encoder for a structured JSON encoder
	JSON       bool              `mapstructure:"json" json:"json"`
	FileName   string            `mapstructure:"filename" json:"filename,omitempty"`
	SubLoggers []SubLoggerConfig `mapstructure:"subloggers" json:"subloggers,omitempty"`
}

// SubLoggerConfig holds sub logger configuration settings
type SubLoggerConfig struct {
	Name   string `mapstructure:"name" json:"name,omitempty"`
	Level  string `mapstructure:"level" json:"level"`
	Output string `mapstructure:"output" json:"output"`
}

// Levels flags for each sub logger type
type Levels struct {
	Info, Debug, Warn, Error bool
}
