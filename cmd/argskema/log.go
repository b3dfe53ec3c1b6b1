package main

import (
	"context"
	"io"
	"log/slog"
)

type logConfig struct {
	Level  string `default:"warn" enum:"debug,info,warn,error" help:"Set log level."`
	Format string `default:"text" enum:"json,text"             help:"Set log format."`
}

func (c *logConfig) start(ctx context.Context, w io.Writer) *slog.Logger {
	var level slog.Level
	_ = level.UnmarshalText([]byte(c.Level))
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if c.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	logger.DebugContext(ctx, "logger initialized",
		slog.String("level", c.Level),
		slog.String("format", c.Format),
	)
	return logger
}
