package config

import (
	"io"
	"log/slog"
	"strings"
)

var Logger *slog.Logger

// InitLogger sets up the JSON logger and makes it the slog default.
func InitLogger(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}
	if !cfg.IsProduction() {
		opts.ReplaceAttr = replaceTimeAttr
		opts.AddSource = true
	}

	Logger = slog.New(slog.NewJSONHandler(w, opts))
	slog.SetDefault(Logger)

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func replaceTimeAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.String("time", a.Value.Time().Local().Format("2006-01-02 15:04:05"))
	}
	return a
}
