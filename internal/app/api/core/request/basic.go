// Package request provides functions to extract parameters from the request.
package request

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// Path returns the value of the named path parameter.
// The return value is trimmed of leading and trailing whitespace.
func Path(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}

// Query returns the value of the named query parameter.
// The return value is trimmed of leading and trailing whitespace.
func Query(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// QueryDefault returns the value of the named query parameter.
// If the parameter is empty, it returns the default value.
func QueryDefault(r *http.Request, name string, defaultValue string) string {
	if value := Query(r, name); value != "" {
		return value
	}
	return defaultValue
}

// Header returns the value of the named header, trimmed of leading and trailing whitespace.
func Header(r *http.Request, name string) string {
	return strings.TrimSpace(r.Header.Get(name))
}

// IsJson reports whether the request body is declared as JSON.
func IsJson(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

// BodyJson decodes the JSON value from the request body into the target.
// The body reader is closed after reading.
func BodyJson(r *http.Request, target any) error {
	defer func() {
		_ = r.Body.Close()
	}()
	return json.NewDecoder(r.Body).Decode(target)
}

// BodyForm parses an url-encoded or multipart form body and returns the trimmed values of the given fields.
// Fields that are not present in the body are omitted from the result.
func BodyForm(r *http.Request, fields ...string) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}

	values := make(map[string]string, len(fields))
	for _, field := range fields {
		if _, ok := r.PostForm[field]; ok {
			values[field] = strings.TrimSpace(r.PostForm.Get(field))
		}
	}
	return values, nil
}
