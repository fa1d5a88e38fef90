package logger

import (
	"bytes"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// The level is set to LevelDebug, and Stub will restore the logger.Default after the test.
func Stub(tb testingTB) *bytes.Buffer {
	tb.Helper()
	out, level := Default.Out, Default.Level
	tb.Cleanup(func() {
		Default.Out = out
		Default.Level = level
	})
	buf := &bytes.Buffer{}
	Default.Out = buf
	Default.Level = LevelDebug
	return buf
}
