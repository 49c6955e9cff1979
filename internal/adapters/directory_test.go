package adapters

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h44z/groupbackend-portal/internal/config"
	"github.com/h44z/groupbackend-portal/internal/domain"
)

func testDirectoryConfig() *config.DirectoryConfig {
	return &config.DirectoryConfig{
		Resources: []config.ResourceConfig{
			{Name: "dc1", Type: "ldap", Hostname: "ldap.example.com", Port: 389},
			{
				Name: "ad", Type: "msldap", Hostname: "ad.example.com", Port: 636, Encryption: "ldaps",
				BindDN: "cn=reader,dc=ad,dc=example,dc=com", BindPass: "secret",
			},
			{Name: "icingadb", Type: "db"},
		},
		UserBackends: []config.UserBackendConfig{
			{
				Name:     "users1",
				Backend:  "ldap",
				Resource: "dc1",
				BaseDN:   "ou=people,dc=example,dc=com",
				Filter:   "memberOf=cn=staff,dc=example,dc=com",
			},
			{Name: "adusers", Backend: "msldap", Resource: "ad", UserClass: "person"},
			{Name: "dbusers", Backend: "db", Resource: "icingadb"},
		},
	}
}

func TestDirectoryRepo_Resources(t *testing.T) {
	ctx := context.Background()
	repo := NewDirectoryRepository(testDirectoryConfig(), time.Second)

	resources, err := repo.GetResourceConfigs(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 3)
	assert.Equal(t, "dc1", resources[0].Name)
	// connection settings stay in the configuration, the registry only exposes the server identity
	assert.Equal(t, domain.ResourceConfig{Name: "ad", Type: "msldap", Hostname: "ad.example.com", Port: 636},
		resources[1])

	ref, err := repo.CreateResource(ctx, "ad")
	require.NoError(t, err)
	assert.Equal(t, domain.DirectoryResourceRef{Name: "ad", Hostname: "ad.example.com", Port: 636}, ref)

	_, err = repo.CreateResource(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryRepo_UserBackends(t *testing.T) {
	ctx := context.Background()
	repo := NewDirectoryRepository(testDirectoryConfig(), time.Second)

	backends, err := repo.GetUserBackendConfigs(ctx)
	require.NoError(t, err)
	require.Len(t, backends, 3)
	assert.Equal(t, "dc1", backends[0].Resource)

	users1, err := repo.CreateUserBackend(ctx, "users1")
	require.NoError(t, err)
	assert.Equal(t, "ou=people,dc=example,dc=com", users1.BaseDn)
	assert.Equal(t, "inetOrgPerson", users1.UserClass, "missing attributes use the flavor defaults")
	assert.Equal(t, "uid", users1.UserNameAttribute)
	assert.Equal(t, "memberOf=cn=staff,dc=example,dc=com", users1.Filter)

	adUsers, err := repo.CreateUserBackend(ctx, "adusers")
	require.NoError(t, err)
	assert.Equal(t, "person", adUsers.UserClass)
	assert.Equal(t, "sAMAccountName", adUsers.UserNameAttribute)

	_, err = repo.CreateUserBackend(ctx, "dbusers")
	assert.ErrorIs(t, err, domain.ErrInvalidData)

	_, err = repo.CreateUserBackend(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryRepo_Probe(t *testing.T) {
	ctx := context.Background()

	// reserve a port and close it again, nothing is listening there afterwards
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := testDirectoryConfig()
	cfg.Resources[0].Hostname = "127.0.0.1"
	cfg.Resources[0].Port = port
	repo := NewDirectoryRepository(cfg, 500*time.Millisecond)

	assert.Error(t, repo.Probe(ctx, "dc1"))
	assert.ErrorIs(t, repo.Probe(ctx, "icingadb"), domain.ErrInvalidData)
	assert.ErrorIs(t, repo.Probe(ctx, "unknown"), domain.ErrNotFound)
}
