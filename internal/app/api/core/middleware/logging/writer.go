package logging

import (
	"net/http"
)

// writerWrapper tracks the status code and the number of body bytes written through it.
type writerWrapper struct {
	http.ResponseWriter

	StatusCode   int
	WrittenBytes int64
}

func (w *writerWrapper) WriteHeader(code int) {
	w.StatusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *writerWrapper) Write(data []byte) (int, error) {
	n, err := w.ResponseWriter.Write(data)
	w.WrittenBytes += int64(n)
	return n, err
}

// Unwrap allows http.ResponseController to reach the underlying writer.
func (w *writerWrapper) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func newWriterWrapper(w http.ResponseWriter) *writerWrapper {
	return &writerWrapper{ResponseWriter: w, StatusCode: http.StatusOK}
}
