package log

import "go.uber.org/zap"

// Global vars related to the logger package
var (
	subLoggers = map[string]*SubLogger{}

	Global      *SubLogger
	ConfigMgr   *SubLogger
	ExchangeSys *SubLogger
	RequestSys  *SubLogger
)

// SubLogger defines a sub logger can be used externally for packages wanted to
// leverage GCT library logger features.
type SubLogger struct {
	name   string
	levels Levels
	sugar  *zap.SugaredLogger
}
