// Package tracing assigns a request id to every request.
package tracing

import (
	"context"
	"net/http"
)

type contextKey struct{}

// Middleware is a type that creates a new tracing middleware. The tracing middleware
// can be used to trace requests based on a request ID header.
type Middleware struct {
	o options
}

// New returns a new tracing middleware with the provided options.
func New(opts ...Option) *Middleware {
	return &Middleware{
		o: newOptions(opts...),
	}
}

// Handler returns the tracing middleware handler.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqId string

		// read upstream header und re-use it
		if m.o.upstreamReqIdHeader != "" {
			reqId = r.Header.Get(m.o.upstreamReqIdHeader)
		}
		if reqId == "" {
			reqId = m.o.generator()
		}

		if m.o.headerIdentifier != "" {
			w.Header().Set(m.o.headerIdentifier, reqId)
		}

		next.ServeHTTP(w, r.WithContext(WithRequestId(r.Context(), reqId)))
	})
}

// WithRequestId returns a copy of ctx that carries the given request id.
func WithRequestId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// RequestId returns the request id stored in ctx, or an empty string.
func RequestId(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
