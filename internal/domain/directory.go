package domain

import (
	"fmt"
	"strings"
)

// DirectoryFlavor selects which built-in LDAP schema convention supplies default attribute names.
type DirectoryFlavor string

const (
	DirectoryFlavorOpenLdap        DirectoryFlavor = "ldap"
	DirectoryFlavorActiveDirectory DirectoryFlavor = "msldap"
)

// ParseDirectoryFlavor converts a type tag like "ldap" or "MSLDAP" to a DirectoryFlavor.
func ParseDirectoryFlavor(value string) (DirectoryFlavor, error) {
	switch DirectoryFlavor(strings.ToLower(strings.TrimSpace(value))) {
	case DirectoryFlavorOpenLdap:
		return DirectoryFlavorOpenLdap, nil
	case DirectoryFlavorActiveDirectory:
		return DirectoryFlavorActiveDirectory, nil
	default:
		return "", fmt.Errorf("%w: unsupported directory type %q", ErrInvalidData, value)
	}
}

// IsDirectoryType reports whether the given (case-insensitive) type tag names an LDAP capable type.
func IsDirectoryType(value string) bool {
	_, err := ParseDirectoryFlavor(value)
	return err == nil
}

// ResourceConfig is a named connection definition as stored in the resource registry.
type ResourceConfig struct {
	Name     string
	Type     string
	Hostname string
	Port     int
}

// DirectoryResourceRef identifies the server behind a resource. Two resources are considered
// equal if hostname and port match, regardless of their name.
type DirectoryResourceRef struct {
	Name     string
	Hostname string
	Port     int
}

// SameServer reports whether both references point to the same directory server.
func (r DirectoryResourceRef) SameServer(other DirectoryResourceRef) bool {
	return r.Hostname == other.Hostname && r.Port == other.Port
}

func (r DirectoryResourceRef) String() string {
	return fmt.Sprintf("%s (%s:%d)", r.Name, r.Hostname, r.Port)
}

// UserBackendConfig is a configured user authentication backend.
type UserBackendConfig struct {
	Name     string
	Backend  string
	Resource string

	BaseDn            string
	UserClass         string
	UserNameAttribute string
	Filter            string
}

// UserBackendRef holds the attribute mapping of a resolved user backend.
type UserBackendRef struct {
	Name              string
	BaseDn            string
	UserClass         string
	UserNameAttribute string
	Filter            string
}

// NoUserBackend is the selection value meaning "no linked user backend".
const NoUserBackend = "none"

// ResourceProbeResult is the outcome of a connection test against a resource.
type ResourceProbeResult struct {
	Resource  string `json:"resource"`
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}
