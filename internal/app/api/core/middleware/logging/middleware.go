// Package logging writes one structured log line per request.
package logging

import (
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Middleware is a type that creates a new logging middleware. The logging middleware
// logs information about each request.
type Middleware struct {
	o options
}

// New returns a new logging middleware with the provided options.
func New(opts ...Option) *Middleware {
	return &Middleware{
		o: newOptions(opts...),
	}
}

// Handler returns the logging middleware handler.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, skip := m.o.skipPaths[r.URL.Path]; skip {
			next.ServeHTTP(w, r)
			return
		}

		ww := newWriterWrapper(w)
		start := time.Now()
		defer func() {
			m.log(r, ww, time.Since(start))
		}()

		next.ServeHTTP(ww, r)
	})
}

func (m *Middleware) log(r *http.Request, ww *writerWrapper, duration time.Duration) {
	logger := m.o.logger
	if logger == nil {
		logger = slog.Default()
	}

	msg := r.Method + " " + r.URL.Path
	if m.o.prefix != "" {
		msg = m.o.prefix + " " + msg
	}

	attrs := []slog.Attr{
		slog.String("protocol", r.Proto),
		slog.Int("status", ww.StatusCode),
		slog.Int64("dataLength", ww.WrittenBytes),
		slog.Duration("duration", duration),
		slog.String("clientIP", clientIp(r)),
		slog.String("userAgent", r.UserAgent()),
	}
	if m.o.requestId != nil {
		attrs = append(attrs, slog.String("requestId", m.o.requestId(r.Context())))
	}

	logger.LogAttrs(r.Context(), m.o.level, msg, attrs...)
}

func clientIp(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
