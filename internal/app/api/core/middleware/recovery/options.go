package recovery

import "net/http"

// options is a struct that contains options for the recovery middleware.
// It uses the functional options pattern for flexible configuration.
type options struct {
	exposeStackTrace bool
	logPrefix        string
	requestId        func(r *http.Request) string
}

// Option is a type that is used to set options for the recovery middleware.
// It implements the functional options pattern.
type Option func(*options)

// WithExposeStackTrace includes the stack trace in the error response. The default is false.
func WithExposeStackTrace(exposeStackTrace bool) Option {
	return func(o *options) {
		o.exposeStackTrace = exposeStackTrace
	}
}

// WithLogPrefix prepends the given prefix and a space to the panic log message.
func WithLogPrefix(prefix string) Option {
	return func(o *options) {
		o.logPrefix = prefix
	}
}

// WithRequestId adds the id returned by fn to the log line and the error response.
func WithRequestId(fn func(r *http.Request) string) Option {
	return func(o *options) {
		o.requestId = fn
	}
}

// newOptions is a function that returns a new options struct with sane default values.
func newOptions(opts ...Option) options {
	o := options{}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
