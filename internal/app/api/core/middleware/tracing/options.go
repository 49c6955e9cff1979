package tracing

import "github.com/google/uuid"

// options is a struct that contains options for the tracing middleware.
// It uses the functional options pattern for flexible configuration.
type options struct {
	upstreamReqIdHeader string
	headerIdentifier    string
	generator           func() string
}

// Option is a type that is used to set options for the tracing middleware.
// It implements the functional options pattern.
type Option func(*options)

// WithHeaderIdentifier specifies the response header that carries the request id.
// If the identifier is empty, the request id will not be added to the response headers.
func WithHeaderIdentifier(identifier string) Option {
	return func(o *options) {
		o.headerIdentifier = identifier
	}
}

// WithUpstreamHeader sets the upstream header name, that should be used to fetch the request id.
// If no upstream header is found, a new id is generated.
func WithUpstreamHeader(header string) Option {
	return func(o *options) {
		o.upstreamReqIdHeader = header
	}
}

// WithIdGenerator replaces the default UUID based request id generator.
func WithIdGenerator(fn func() string) Option {
	return func(o *options) {
		o.generator = fn
	}
}

// newOptions is a function that returns a new options struct with sane default values.
func newOptions(opts ...Option) options {
	o := options{
		headerIdentifier: "X-Request-Id",
		generator:        uuid.NewString,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
