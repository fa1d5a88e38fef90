// Package logger provides tooling for structured logging.
// Every entry is written as a single JSON object per line.
package logger

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

type Logger struct {
	Out io.Writer
	// Level is the minimum level an entry needs to be written.
	// When empty, it defaults to LevelInfo.
	Level loggingLevel

	Separator string

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// MarshalFunc is used to serialise the logging message event.
	// When nil it defaults to JSON format.
	MarshalFunc func(interface{}) ([]byte, error)

	outLock sync.Mutex
}

const (
	levelDefaultKey   = "level"
	messageDefaultKey = "message"
	timestampKey      = "timestamp"
)

func (l *Logger) Debug(msg string, ds ...LoggingDetail) {
	l.log(LevelDebug, msg, ds)
}

func (l *Logger) Info(msg string, ds ...LoggingDetail) {
	l.log(LevelInfo, msg, ds)
}

func (l *Logger) Warn(msg string, ds ...LoggingDetail) {
	l.log(LevelWarn, msg, ds)
}

func (l *Logger) Error(msg string, ds ...LoggingDetail) {
	l.log(LevelError, msg, ds)
}

// IsEnabled tells whether an entry with the given level would be written.
func (l *Logger) IsEnabled(level loggingLevel) bool {
	return isLevelEnabled(l.Level, level)
}

func (l *Logger) log(level loggingLevel, msg string, ds []LoggingDetail) {
	if !l.IsEnabled(level) {
		return
	}
	entry := l.toLogEntry(level, msg, ds)
	bs, err := l.marshalFunc()(entry)
	if err != nil {
		return
	}
	l.outLock.Lock()
	defer l.outLock.Unlock()
	_, _ = l.writer().Write(append(bs, []byte(l.separator())...))
}

func (l *Logger) toLogEntry(level loggingLevel, msg string, ds []LoggingDetail) logEntry {
	le := make(logEntry)
	for _, ld := range ds {
		ld.addTo(le)
	}
	le[coalesce(l.LevelKey, levelDefaultKey)] = level
	le[coalesce(l.MessageKey, messageDefaultKey)] = msg
	le[coalesce(l.TimestampKey, timestampKey)] = time.Now().UTC().Format(time.RFC3339)
	return le
}

func (l *Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l *Logger) marshalFunc() func(interface{}) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	switch os.PathSeparator {
	case '\\':
		return "\r\n"
	default:
		return "\n"
	}
}

func coalesce(v, defaultValue string) string {
	if v == "" {
		return defaultValue
	}
	return v
}
