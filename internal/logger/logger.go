package logger

import (
	"log/slog"
	"os"
)

// New creates the application logger writing JSON records to stdout.
// Every record carries the service name so aggregated logs stay filterable.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "loyaltycart"))
}
