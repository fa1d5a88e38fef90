package logger

import (
	"os"
	"strings"
)

const (
	LevelDebug loggingLevel = "debug"
	LevelInfo  loggingLevel = "info"
	LevelWarn  loggingLevel = "warn"
	LevelError loggingLevel = "error"
)

type loggingLevel string

// levels are ordered by increasing severity.
var levels = []loggingLevel{LevelDebug, LevelInfo, LevelWarn, LevelError}

// levelEnvKeys are checked in order, the first one holding a valid level wins.
var levelEnvKeys = []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"}

func init() {
	Default.Level = levelFromEnv(os.LookupEnv)
}

// ParseLevel accepts a level name or its initial, in any letter case.
func ParseLevel(raw string) (loggingLevel, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", false
	}
	for _, level := range levels {
		if raw == string(level) || raw == string(level)[:1] {
			return level, true
		}
	}
	return "", false
}

func levelFromEnv(lookup func(key string) (string, bool)) loggingLevel {
	for _, key := range levelEnvKeys {
		raw, ok := lookup(key)
		if !ok {
			continue
		}
		if level, ok := ParseLevel(raw); ok {
			return level
		}
	}
	return LevelInfo
}

// severity of an unknown or empty level is the same as LevelInfo.
func (ll loggingLevel) severity() int {
	for i, level := range levels {
		if level == ll {
			return i
		}
	}
	return 1
}

func isLevelEnabled(min, level loggingLevel) bool {
	return min.severity() <= level.severity()
}
