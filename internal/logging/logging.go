// Package logging builds the slog logger used by the dna2aa commands.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/liserjrqlxue/dna2aa/internal/config"
)

// ParseLevel maps debug/info/warn/error to a slog.Level, info otherwise
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Output returns the log destination: a rotating file when cfg.File is set, else fallback
func Output(cfg config.LogConfig, fallback io.Writer) io.Writer {
	if cfg.File == "" {
		return fallback
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

func New(cfg config.LogConfig, fallback io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(
		Output(cfg, fallback),
		&slog.HandlerOptions{Level: ParseLevel(cfg.Level)},
	))
}

// Setup installs the logger as slog default
func Setup(cfg config.LogConfig, fallback io.Writer) *slog.Logger {
	var logger = New(cfg, fallback)
	slog.SetDefault(logger)
	return logger
}
