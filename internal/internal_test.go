package internal

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLdapCompileFilter(t *testing.T) {
	assert.NoError(t, LdapCompileFilter("&(foo=bar)(bar=foo)"))
	assert.NoError(t, LdapCompileFilter("foo=bar"))
	assert.NoError(t, LdapCompileFilter("!(objectClass=computer)"))
	assert.Error(t, LdapCompileFilter("&(foo=bar"))
	assert.Error(t, LdapCompileFilter("foo"))
}

func TestLdapParseDN(t *testing.T) {
	assert.NoError(t, LdapParseDN("ou=people,dc=example,dc=com"))
	assert.NoError(t, LdapParseDN("CN=Users,DC=corp,DC=local"))
	assert.Error(t, LdapParseDN("not a dn"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("whatever"))
}

func TestGetLoggingHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(GetLoggingHandler(buf, "warn", false, true))

	logger.Info("hidden")
	logger.Warn("visible", "resource", "dc1")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
	assert.Contains(t, buf.String(), `"resource":"dc1"`)

	buf.Reset()
	logger = slog.New(GetLoggingHandler(buf, "info", true, false))
	logger.Info("pretty")
	assert.Contains(t, buf.String(), "level=\"INFO \"")
}
