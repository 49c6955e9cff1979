package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var ErrNotFound = errors.New("record not found")
var ErrInvalidData = errors.New("invalid data")

// ErrConfigurationMissing is returned if no LDAP capable resource has been configured yet.
// It terminates the current request, the user has to create a resource first.
var ErrConfigurationMissing = errors.New("no ldap resources available")

// FieldErrors maps a form field name to the validation message of that field.
type FieldErrors map[string]string

// Error implements the error interface. Fields are sorted to keep the message stable.
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range slices.Sorted(maps.Keys(e)) {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for the given field. The first message of a field wins.
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = message
}
