package everyaction

//
// Logger
//

// Logger defines the interface through which the client emits logs.
// It is out of the box compatible with `log.Log` in `apex/log`.
type Logger interface {
	// Debug emits a debug message.
	Debug(msg string)

	// Debugf formats and emits a debug message.
	Debugf(format string, v ...interface{})

	// Info emits an informational message.
	Info(msg string)

	// Infof formats and emits an informational message.
	Infof(format string, v ...interface{})

	// Warn emits a warning message.
	Warn(msg string)

	// Warnf formats and emits a warning message.
	Warnf(format string, v ...interface{})
}

// DiscardLogger is the default logger that discards its input.
var DiscardLogger Logger = logDiscarder{}

// logDiscarder is a logger that discards its input.
type logDiscarder struct{}

// Debug implements Logger.Debug.
func (logDiscarder) Debug(msg string) {}

// Debugf implements Logger.Debugf.
func (logDiscarder) Debugf(format string, v ...interface{}) {}

// Info implements Logger.Info.
func (logDiscarder) Info(msg string) {}

// Infof implements Logger.Infof.
func (logDiscarder) Infof(format string, v ...interface{}) {}

// Warn implements Logger.Warn.
func (logDiscarder) Warn(msg string) {}

// Warnf implements Logger.Warnf.
func (logDiscarder) Warnf(format string, v ...interface{}) {}

// validLoggerOrDefault returns logger when not nil and
// [DiscardLogger] otherwise.
func validLoggerOrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return DiscardLogger
}
