package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLevels(t *testing.T) {
	l := New()
	if l == nil {
		t.Fatal("expected logger, got nil")
	}

	cases := []struct {
		level   slog.Level
		enabled bool
	}{
		{slog.LevelDebug, false},
		{slog.LevelInfo, true},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
	}
	for _, tc := range cases {
		if got := l.Enabled(context.Background(), tc.level); got != tc.enabled {
			t.Errorf("level %v: expected enabled=%v, got %v", tc.level, tc.enabled, got)
		}
	}
}

func TestNewUsesJSONHandler(t *testing.T) {
	l := New()
	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}
