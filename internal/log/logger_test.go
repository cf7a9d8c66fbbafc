package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, min Level) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := New(path, min)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestLoggerWritesLeveledLines(t *testing.T) {
	l, path := newTestLogger(t, LevelDebug)

	l.Debug("dbg %d", 1)
	l.Info("inf")
	l.Warn("wrn")
	l.Error("err")

	content := readLog(t, path)
	require.Contains(t, content, "DEBUG: dbg 1")
	require.Contains(t, content, "INFO: inf")
	require.Contains(t, content, "WARN: wrn")
	require.Contains(t, content, "ERROR: err")
}

func TestLoggerMinLevelFilters(t *testing.T) {
	l, path := newTestLogger(t, LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	content := readLog(t, path)
	require.NotContains(t, content, "hidden")
	require.Contains(t, content, "shown")
}

func TestLoggerDisabled(t *testing.T) {
	l, path := newTestLogger(t, LevelDebug)
	l.SetEnabled(false)
	l.Error("dropped")

	require.Empty(t, readLog(t, path))
}

func TestLoggerWriter(t *testing.T) {
	l, path := newTestLogger(t, LevelDebug)

	w := l.Writer(LevelInfo)
	_, err := w.Write([]byte("piped line\n"))
	require.NoError(t, err)

	require.Contains(t, readLog(t, path), "INFO: piped line")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelDebug, ParseLevel("debug"))
	require.Equal(t, LevelInfo, ParseLevel("INFO"))
	require.Equal(t, LevelError, ParseLevel("Error"))
	require.Equal(t, LevelWarn, ParseLevel("bogus"))
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("no panic")
	require.NoError(t, l.Close())
}
