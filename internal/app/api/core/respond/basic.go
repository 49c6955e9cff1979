// Package respond provides a set of utility functions to help with the HTTP response handling.
package respond

import (
	"encoding/json"
	"net/http"
)

// Status writes a response with the given status code.
// The response will not contain any data.
func Status(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}

// String writes a plain text response with the given status code and data.
func String(w http.ResponseWriter, code int, data string) {
	w.Header().Set("Content-Type", "text/plain;charset=utf-8")
	w.WriteHeader(code)

	_, _ = w.Write([]byte(data))
}

// JSON writes a JSON response with the given status code and data.
// If data is nil, the response body is null. Encoding errors are silently ignored.
func JSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if data == nil {
		_, _ = w.Write([]byte("null"))
		return
	}

	_ = json.NewEncoder(w).Encode(data)
}

// Redirect writes a response with the given status code and redirects to the given URL.
// A relative URL is resolved against the original request URL.
func Redirect(w http.ResponseWriter, r *http.Request, code int, url string) {
	http.Redirect(w, r, url, code)
}
