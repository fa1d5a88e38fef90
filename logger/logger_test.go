package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/eloquent/logger"
)

func decodeEntries(tb testing.TB, buf *bytes.Buffer) []map[string]interface{} {
	tb.Helper()
	var entries []map[string]interface{}
	dec := json.NewDecoder(buf)
	for dec.More() {
		entry := map[string]interface{}{}
		require.Nil(tb, dec.Decode(&entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_smoke(t *testing.T) {
	t.Run("output is a valid JSON by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf}

		expected := randomdata.Number(3, 7)
		for i := 0; i < expected; i++ {
			l.Info(randomdata.SillyName())
		}

		entries := decodeEntries(t, buf)
		require.Len(t, entries, expected)
		for _, entry := range entries {
			require.Equal(t, "info", entry["level"])
			require.NotEmpty(t, entry["message"])
			require.NotEmpty(t, entry["timestamp"])
		}
	})

	t.Run("but marshaling can be configured through the MarshalFunc", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf, MarshalFunc: func(interface{}) ([]byte, error) {
			return []byte("Hello, world!"), nil
		}}
		l.Info("msg")
		require.Equal(t, "Hello, world!\n", buf.String())
	})

	t.Run("log entries split by the separator", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf, Separator: "|"}
		l.Info("foo")
		l.Info("bar")
		require.Equal(t, 2, strings.Count(buf.String(), "|"))
	})

	t.Run("keys can be renamed", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := logger.Logger{Out: buf, MessageKey: "msg", LevelKey: "lvl", TimestampKey: "ts"}
		l.Warn("foo")
		entries := decodeEntries(t, buf)
		require.Len(t, entries, 1)
		require.Equal(t, "foo", entries[0]["msg"])
		require.Equal(t, "warn", entries[0]["lvl"])
		require.Contains(t, entries[0], "ts")
	})
}

func TestLogger_levels(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.Logger{Out: buf, Level: logger.LevelWarn}

	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	var levels []interface{}
	for _, entry := range decodeEntries(t, buf) {
		levels = append(levels, entry["level"])
	}
	require.Equal(t, []interface{}{"warn", "error"}, levels)
	require.False(t, l.IsEnabled(logger.LevelInfo))
	require.True(t, l.IsEnabled(logger.LevelError))
}

func TestLogger_details(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.Logger{Out: buf}

	l.Info("msg",
		logger.Field("foo", "bar"),
		logger.Fields{"skipped": 3, "nested": logger.Fields{"key": "value"}},
		logger.ErrField(errors.New("boom")),
		logger.ErrField(nil),
	)

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	require.Equal(t, "bar", entry["foo"])
	require.Equal(t, float64(3), entry["skipped"])
	require.Equal(t, map[string]interface{}{"key": "value"}, entry["nested"])
	require.Equal(t, map[string]interface{}{"message": "boom"}, entry["error"])
}

func TestStub(t *testing.T) {
	var buf *bytes.Buffer
	t.Run("", func(t *testing.T) {
		buf = logger.Stub(t)
		logger.Debug("foo", logger.Field("bar", 42))
		require.Contains(t, buf.String(), `"message":"foo"`)
		require.Contains(t, buf.String(), `"bar":42`)
	})

	require.NotEqual(t, buf, logger.Default.Out, "the original output is restored after the test")
}
