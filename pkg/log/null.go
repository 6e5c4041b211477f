package log

// nullLogger is a logger that does nothing.
type nullLogger struct{}

func (nullLogger) Debugf(format string, args ...interface{}) {}
func (nullLogger) Warnf(format string, args ...interface{})  {}
func (nullLogger) Errorf(format string, args ...interface{}) {}

// NewNullLogger returns a logger that does nothing. Used as the default
// logger for a Cpu that was never given one, so the core never logs unless
// a host asks it to.
func NewNullLogger() Logger {
	return nullLogger{}
}
