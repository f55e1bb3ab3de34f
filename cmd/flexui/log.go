package main

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-flexui/internal/config"
)

// newLogger creates a logger with timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg *config.Resolved) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the attached config, or the built-in defaults.
func configFromContext(ctx context.Context) *config.Resolved {
	if cfg, ok := ctx.Value(configKey).(*config.Resolved); ok {
		return cfg
	}
	cfg, _ := (&config.Config{}).Resolve()
	return cfg
}
