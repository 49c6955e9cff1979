package config

import "strings"

// DefaultCreateResourceUrl is the resource creation page of the surrounding application.
const DefaultCreateResourceUrl = "/config/createresource"

// WebConfig contains the configuration for the web server.
type WebConfig struct {
	// RequestLogging enables logging of all HTTP requests.
	RequestLogging bool `yaml:"request_logging"`
	// ExposeHostInfo sets whether the host information should be exposed in a response header.
	ExposeHostInfo bool `yaml:"expose_host_info"`
	// ExternalUrl is the URL where a client can access the portal.
	// It decides whether the session cookie is flagged as secure.
	ExternalUrl string `yaml:"external_url"`
	// ListeningAddress is the address and port for the web server.
	ListeningAddress string `yaml:"listening_address"`
	// SessionIdentifier is the session cookie name.
	SessionIdentifier string `yaml:"session_identifier"`
	// CreateResourceUrl is where clients are redirected to if no LDAP resource exists yet.
	// Resources are managed by the surrounding application, relative paths are resolved against ExternalUrl.
	CreateResourceUrl string `yaml:"create_resource_url"`
	// DefaultLanguage is used if the Accept-Language header does not match any supported language.
	DefaultLanguage string `yaml:"default_language"`
	// CertFile is the path to the TLS certificate file.
	CertFile string `yaml:"cert_file"`
	// KeyFile is the path to the TLS certificate key file.
	KeyFile string `yaml:"key_file"`
}

func (c *WebConfig) Sanitize() {
	c.ExternalUrl = strings.TrimRight(c.ExternalUrl, "/")
	if c.CreateResourceUrl == "" {
		c.CreateResourceUrl = DefaultCreateResourceUrl
	}
	if strings.HasPrefix(c.CreateResourceUrl, "/") {
		c.CreateResourceUrl = c.ExternalUrl + c.CreateResourceUrl
	}
	c.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.DefaultLanguage))
}
