package logging

import (
	"context"
	"log/slog"
)

// options is a struct that contains options for the logging middleware.
// It uses the functional options pattern for flexible configuration.
type options struct {
	logger    *slog.Logger
	level     slog.Level
	prefix    string
	requestId func(ctx context.Context) string
	skipPaths map[string]struct{}
}

// Option is a type that is used to set options for the logging middleware.
// It implements the functional options pattern.
type Option func(*options)

// WithLevel sets the level of the request log lines. The default is slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithLogger sets the logger. The default is slog.Default() at the time of the request.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPrefix prepends the given prefix and a space to every message.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithRequestId adds the value returned by fn to every log line as requestId.
func WithRequestId(fn func(ctx context.Context) string) Option {
	return func(o *options) {
		o.requestId = fn
	}
}

// WithSkipPaths disables logging for requests to the given paths, for example health checks.
func WithSkipPaths(paths ...string) Option {
	return func(o *options) {
		for _, p := range paths {
			o.skipPaths[p] = struct{}{}
		}
	}
}

// newOptions is a function that returns a new options struct with sane default values.
func newOptions(opts ...Option) options {
	o := options{
		level:     slog.LevelInfo,
		skipPaths: make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
