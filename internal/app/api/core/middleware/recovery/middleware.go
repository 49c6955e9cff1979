// Package recovery turns panics in HTTP handlers into Internal Server Error responses.
package recovery

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"syscall"
)

// Middleware is a type that creates a new recovery middleware. It must be the first middleware
// in the chain, so that it can recover from panics in other middlewares.
type Middleware struct {
	o options
}

// New returns a new recovery middleware with the provided options.
func New(opts ...Option) *Middleware {
	return &Middleware{
		o: newOptions(opts...),
	}
}

// Handler returns the recovery middleware handler.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec) // let net/http abort the connection
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			// a client that went away does not warrant a stack trace
			if isBrokenPipeError(err) {
				return
			}

			m.respond(w, r, err, debug.Stack())
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) respond(w http.ResponseWriter, r *http.Request, err error, stack []byte) {
	msg := err.Error()
	if m.o.logPrefix != "" {
		msg = m.o.logPrefix + " " + msg
	}

	body := map[string]any{
		"Code":    http.StatusInternalServerError,
		"Message": "Internal Server Error",
	}
	logArgs := []any{"stack", string(stack)}
	if m.o.requestId != nil {
		id := m.o.requestId(r)
		body["RequestId"] = id
		logArgs = append(logArgs, "requestId", id)
	}
	if m.o.exposeStackTrace {
		body["Stack"] = string(stack)
	}

	slog.ErrorContext(r.Context(), msg, logArgs...)

	jsonBody, _ := json.Marshal(body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(jsonBody)
}

func isBrokenPipeError(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}
