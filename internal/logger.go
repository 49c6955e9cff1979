package internal

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel converts a textual level to a slog.Level. Unknown values map to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetLoggingHandler initializes a slog.Handler based on the provided logging level and format options.
func GetLoggingHandler(w io.Writer, level string, pretty, json bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: ParseLogLevel(level),
	}

	switch {
	case json:
		return slog.NewJSONHandler(w, opts)
	case pretty:
		opts.ReplaceAttr = prettyAttributes
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// SetupLogging initializes the global logger with the given level and format.
// Everything is sent to stderr.
func SetupLogging(level string, pretty, json bool) {
	slog.SetDefault(slog.New(GetLoggingHandler(os.Stderr, level, pretty, json)))
}

// prettyAttributes shortens the time stamp and pads the level, so that messages line up.
func prettyAttributes(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		return slog.String(slog.TimeKey, a.Value.Time().Format("2006/01/02 15:04:05"))
	case slog.LevelKey:
		return slog.String(slog.LevelKey, (a.Value.String() + " ")[0:5])
	}
	return a
}
