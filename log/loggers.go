package log

import "fmt"

// Infoln takes a pointer subLogger struct and interface sends to the zap core
func Infoln(sl *SubLogger, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Info {
		return
	}
	sl.sugar.Info(fmt.Sprint(v...))
}

// Infof takes a pointer subLogger struct, string and interface formats sends to the zap core
func Infof(sl *SubLogger, data string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Info {
		return
	}
	sl.sugar.Infof(data, v...)
}

// Debugln takes a pointer subLogger struct, string and interface sends to the zap core
func Debugln(sl *SubLogger, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Debug {
		return
	}
	sl.sugar.Debug(fmt.Sprint(v...))
}

// Debugf takes a pointer subLogger struct, string and interface formats sends to the zap core
func Debugf(sl *SubLogger, data string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Debug {
		return
	}
	sl.sugar.Debugf(data, v...)
}

// Warnln takes a pointer subLogger struct & interface formats and sends to the zap core
func Warnln(sl *SubLogger, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Warn {
		return
	}
	sl.sugar.Warn(fmt.Sprint(v...))
}

// Warnf takes a pointer subLogger struct, string and interface formats sends to the zap core
func Warnf(sl *SubLogger, data string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Warn {
		return
	}
	sl.sugar.Warnf(data, v...)
}

// Errorln takes a pointer subLogger struct, string & interface formats and sends to the zap core
func Errorln(sl *SubLogger, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Error {
		return
	}
	sl.sugar.Error(fmt.Sprint(v...))
}

// Errorf takes a pointer subLogger struct, string and interface formats sends to the zap core
func Errorf(sl *SubLogger, data string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.levels.Error {
		return
	}
	sl.sugar.Errorf(data, v...)
}

// Sync flushes any buffered log entries of every sub logger
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	for _, sl := range subLoggers {
		_ = sl.sugar.Sync()
	}
}
