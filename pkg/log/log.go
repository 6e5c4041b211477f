// Package log provides the logging surface the core and its CLI front-end
// log through, backed by logrus.
package log

import "github.com/sirupsen/logrus"

// Logger is the logging capability the core demands. *logrus.Logger and
// *logrus.Entry both satisfy it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// New returns a logrus logger configured the way the core and its CLI
// front-end want their output formatted: plain text, no timestamps, field
// order preserved.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
	}
	return l
}
