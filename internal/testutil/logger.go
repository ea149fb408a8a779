// Package testutil provides helpers shared by package tests.
package testutil

import (
	"log/slog"
	"strings"
	"testing"
)

// Logger returns a debug-level logger whose output lands in t.Log,
// so it only shows up for failing tests or under -v.
func Logger(tb testing.TB) *slog.Logger {
	tb.Helper()
	return slog.New(slog.NewTextHandler(logWriter{tb}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type logWriter struct {
	tb testing.TB
}

func (w logWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
