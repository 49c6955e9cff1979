package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// DirectoryConfig contains the resource registry and the configured user backends.
type DirectoryConfig struct {
	// Resources is the ordered list of named connection definitions.
	Resources []ResourceConfig `yaml:"resources"`
	// UserBackends is the ordered list of authentication backends.
	UserBackends []UserBackendConfig `yaml:"user_backends"`
}

// ResourceConfig is a named, reusable connection definition.
type ResourceConfig struct {
	// Name is the unique resource name.
	Name string `yaml:"name"`
	// Type is the resource type, for example ldap, msldap or db. Only ldap and msldap resources
	// can be used for group backends.
	Type string `yaml:"type"`
	// URL is an optional LDAP URL like ldaps://dc1.example.local:636. It overrides Hostname, Port and Encryption.
	URL string `yaml:"url"`
	// Hostname is the directory server host.
	Hostname string `yaml:"hostname"`
	// Port is the directory server port. Defaults to 389, or 636 for ldaps.
	Port int `yaml:"port"`
	// Encryption is one of none, starttls or ldaps.
	Encryption string `yaml:"encryption"`
	// RootDN is the root of the directory tree.
	RootDN string `yaml:"root_dn"`
	// BindDN is the user used to bind to the directory.
	BindDN string `yaml:"bind_dn"`
	// BindPass is the password of the bind user.
	BindPass string `yaml:"bind_pass"`
}

// UserBackendConfig is a configured user authentication backend.
type UserBackendConfig struct {
	// Name is the unique backend name.
	Name string `yaml:"name"`
	// Backend is the backend type, for example ldap, msldap or db.
	Backend string `yaml:"backend"`
	// Resource names the resource used by the backend.
	Resource string `yaml:"resource"`
	// BaseDN is the path where users can be found.
	BaseDN string `yaml:"base_dn"`
	// UserClass is the object class of user entries.
	UserClass string `yaml:"user_class"`
	// UserNameAttribute is the attribute containing the user name.
	UserNameAttribute string `yaml:"user_name_attribute"`
	// Filter is an additional user filter without outer parentheses.
	Filter string `yaml:"filter"`
}

// Validate normalizes the directory configuration and checks the uniqueness of all names.
func (d *DirectoryConfig) Validate() error {
	resourceNames := make(map[string]struct{}, len(d.Resources))
	for i := range d.Resources {
		r := &d.Resources[i]
		if r.Name == "" {
			return fmt.Errorf("resource #%d has no name", i)
		}
		if _, exists := resourceNames[r.Name]; exists {
			return fmt.Errorf("resource name %q is not unique", r.Name)
		}
		resourceNames[r.Name] = struct{}{}

		if err := r.normalize(); err != nil {
			return fmt.Errorf("resource %q: %w", r.Name, err)
		}
	}

	backendNames := make(map[string]struct{}, len(d.UserBackends))
	for i, b := range d.UserBackends {
		if b.Name == "" {
			return fmt.Errorf("user backend #%d has no name", i)
		}
		if _, exists := backendNames[b.Name]; exists {
			return fmt.Errorf("user backend name %q is not unique", b.Name)
		}
		backendNames[b.Name] = struct{}{}
	}

	return nil
}

func (r *ResourceConfig) normalize() error {
	if r.URL != "" {
		u, err := url.Parse(r.URL)
		if err != nil {
			return fmt.Errorf("invalid url: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "ldap":
			if r.Encryption == "" {
				r.Encryption = "none"
			}
		case "ldaps":
			r.Encryption = "ldaps"
		default:
			return fmt.Errorf("unsupported url scheme %q", u.Scheme)
		}
		r.Hostname = u.Hostname()
		if p := u.Port(); p != "" {
			port, err := strconv.Atoi(p)
			if err != nil {
				return fmt.Errorf("invalid port %q: %w", p, err)
			}
			r.Port = port
		}
	}

	r.Encryption = strings.ToLower(r.Encryption)
	switch r.Encryption {
	case "":
		r.Encryption = "none"
	case "none", "starttls", "ldaps":
	default:
		return fmt.Errorf("unsupported encryption %q", r.Encryption)
	}

	if r.Port == 0 {
		r.Port = 389
		if r.Encryption == "ldaps" {
			r.Port = 636
		}
	}

	return nil
}

// Address returns the LDAP URL of the resource.
func (r ResourceConfig) Address() string {
	scheme := "ldap"
	if r.Encryption == "ldaps" {
		scheme = "ldaps"
	}
	return scheme + "://" + net.JoinHostPort(r.Hostname, strconv.Itoa(r.Port))
}
