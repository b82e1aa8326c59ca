package logging

import "github.com/vvka-141/dirtally/pkg/dirtally"

// NullLogger discards everything. Used by tests and by library callers
// that want the CLI pipeline without console output.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}
func (l *NullLogger) Info(format string, args ...interface{})    {}
func (l *NullLogger) Error(format string, args ...interface{})   {}

var _ dirtally.Logger = (*NullLogger)(nil)
