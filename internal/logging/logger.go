// ABOUTME: Logging port injected into engines instead of a process-wide singleton
// ABOUTME: Default backend is charmbracelet/log; Nop is used in tests
package logging

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the minimal logging surface the engines depend on.
// Key-value pairs follow the message, logfmt style.
type Logger interface {
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}

// New creates the default stderr logger. Verbose lowers the level to debug
// output from the underlying backend; normal runs log at info.
func New(verbose bool) Logger {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "transcripts",
	})
	if verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}
	return charmAdapter{logger}
}

// charmAdapter narrows charmlog's interface{}-typed message parameter to the
// string-typed Logger interface.
type charmAdapter struct {
	l *charmlog.Logger
}

func (a charmAdapter) Info(msg string, keyvals ...interface{})  { a.l.Info(msg, keyvals...) }
func (a charmAdapter) Warn(msg string, keyvals ...interface{})  { a.l.Warn(msg, keyvals...) }
func (a charmAdapter) Error(msg string, keyvals ...interface{}) { a.l.Error(msg, keyvals...) }

// Nop returns a logger that discards everything
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
