package internal

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/go-ldap/ldap/v3"

	"github.com/h44z/groupbackend-portal/internal/config"
)

// LdapConnect opens a connection to the directory server of the given resource.
// If the resource has a bind DN configured, the connection is bound as that user.
func LdapConnect(cfg *config.ResourceConfig, timeout time.Duration) (*ldap.Conn, error) {
	tlsConfig := &tls.Config{ServerName: cfg.Hostname}

	conn, err := ldap.DialURL(cfg.Address(),
		ldap.DialWithTLSConfig(tlsConfig),
		ldap.DialWithDialer(&net.Dialer{Timeout: timeout}))
	if err != nil {
		return nil, fmt.Errorf("dial error: %w", err)
	}
	conn.SetTimeout(timeout)

	if cfg.Encryption == "starttls" {
		if err = conn.StartTLS(tlsConfig); err != nil {
			LdapDisconnect(conn)
			return nil, fmt.Errorf("failed to start TLS on connection: %w", err)
		}
	}

	if cfg.BindDN != "" {
		if err = conn.Bind(cfg.BindDN, cfg.BindPass); err != nil {
			LdapDisconnect(conn)
			return nil, fmt.Errorf("failed to bind to LDAP: %w", err)
		}
	}

	return conn, nil
}

// LdapDisconnect closes the given connection and logs any error.
func LdapDisconnect(conn *ldap.Conn) {
	if conn != nil {
		if err := conn.Close(); err != nil {
			slog.Error("failed to close ldap connection", "error", err)
		}
	}
}

// LdapCompileFilter checks the syntax of a filter that is stored without outer parentheses.
func LdapCompileFilter(filter string) error {
	if _, err := ldap.CompileFilter("(" + filter + ")"); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	return nil
}

// LdapParseDN checks the syntax of a distinguished name.
func LdapParseDN(dn string) error {
	if _, err := ldap.ParseDN(dn); err != nil {
		return fmt.Errorf("invalid distinguished name: %w", err)
	}
	return nil
}
