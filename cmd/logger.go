package cmd

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

type configKey struct{}

func newLogger(w io.Writer, cfg *Config) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func withLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// loggerFrom returns the command logger, or a discarding one when the root
// pre-run did not install any.
func loggerFrom(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func withConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) *Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
			return cfg
		}
	}
	return &Config{InputFormat: InputAuto, Infinity: "string", LogLevel: "warn", LogFormat: "text"}
}
