package model

//
// Logger
//

// Logger is the logger used to report outcomes. Only formatted debug and
// warning messages are needed, so `log.Log` and `*log.Logger` from `apex/log`
// satisfy it out of the box.
type Logger interface {
	// Debugf formats and emits a debug message.
	Debugf(format string, v ...interface{})

	// Warnf formats and emits a warning message.
	Warnf(format string, v ...interface{})
}

// DiscardLogger is the logger used when the caller provides none.
var DiscardLogger Logger = logDiscarder{}

// logDiscarder is a logger that discards its input
type logDiscarder struct{}

// Debugf implements Logger.Debugf
func (logDiscarder) Debugf(format string, v ...interface{}) {}

// Warnf implements Logger.Warnf
func (logDiscarder) Warnf(format string, v ...interface{}) {}

// ValidLoggerOrDefault returns the logger provided as argument, if
// not nil, or DiscardLogger.
func ValidLoggerOrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return DiscardLogger
}
