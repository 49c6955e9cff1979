package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/h44z/groupbackend-portal/internal"
	"github.com/h44z/groupbackend-portal/internal/config"
	"github.com/h44z/groupbackend-portal/internal/domain"
)

// DirectoryRepo serves resources and user backends from the static directory configuration.
// It is read-only and safe for concurrent use.
type DirectoryRepo struct {
	cfg          *config.DirectoryConfig
	probeTimeout time.Duration
}

// NewDirectoryRepository creates a new DirectoryRepo for the given configuration.
func NewDirectoryRepository(cfg *config.DirectoryConfig, probeTimeout time.Duration) *DirectoryRepo {
	return &DirectoryRepo{
		cfg:          cfg,
		probeTimeout: probeTimeout,
	}
}

// GetResourceConfigs returns all resource definitions in configuration order.
func (r *DirectoryRepo) GetResourceConfigs(_ context.Context) ([]domain.ResourceConfig, error) {
	resources := make([]domain.ResourceConfig, len(r.cfg.Resources))
	for i, res := range r.cfg.Resources {
		resources[i] = domain.ResourceConfig{
			Name:     res.Name,
			Type:     res.Type,
			Hostname: res.Hostname,
			Port:     res.Port,
		}
	}

	return resources, nil
}

// CreateResource returns the server reference of the named resource.
// If the resource does not exist, an error wrapping domain.ErrNotFound is returned.
func (r *DirectoryRepo) CreateResource(_ context.Context, name string) (domain.DirectoryResourceRef, error) {
	res, err := r.findResource(name)
	if err != nil {
		return domain.DirectoryResourceRef{}, err
	}

	return domain.DirectoryResourceRef{
		Name:     res.Name,
		Hostname: res.Hostname,
		Port:     res.Port,
	}, nil
}

// GetUserBackendConfigs returns all configured user backends in configuration order.
func (r *DirectoryRepo) GetUserBackendConfigs(_ context.Context) ([]domain.UserBackendConfig, error) {
	backends := make([]domain.UserBackendConfig, len(r.cfg.UserBackends))
	for i, b := range r.cfg.UserBackends {
		backends[i] = convertUserBackend(b)
	}

	return backends, nil
}

// CreateUserBackend returns the attribute mapping of the named user backend. Attributes missing in the
// configuration are filled with the defaults of the backend's directory flavor.
func (r *DirectoryRepo) CreateUserBackend(_ context.Context, name string) (*domain.UserBackendRef, error) {
	for _, b := range r.cfg.UserBackends {
		if b.Name != name {
			continue
		}

		flavor, err := domain.ParseDirectoryFlavor(b.Backend)
		if err != nil {
			return nil, fmt.Errorf("user backend %s is no ldap backend: %w", name, err)
		}
		defaults := domain.DefaultsFor(flavor)

		ref := &domain.UserBackendRef{
			Name:              b.Name,
			BaseDn:            b.BaseDN,
			UserClass:         b.UserClass,
			UserNameAttribute: b.UserNameAttribute,
			Filter:            b.Filter,
		}
		if ref.UserClass == "" {
			ref.UserClass = defaults.UserClass
		}
		if ref.UserNameAttribute == "" {
			ref.UserNameAttribute = defaults.UserNameAttribute
		}

		return ref, nil
	}

	return nil, fmt.Errorf("user backend %s: %w", name, domain.ErrNotFound)
}

// Probe connects to the directory server of the named resource and binds if credentials are configured.
func (r *DirectoryRepo) Probe(ctx context.Context, name string) error {
	res, err := r.findResource(name)
	if err != nil {
		return err
	}
	if !domain.IsDirectoryType(res.Type) {
		return fmt.Errorf("resource %s is of type %s: %w", name, res.Type, domain.ErrInvalidData)
	}

	timeout := r.probeTimeout
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		timeout = time.Until(deadline)
	}

	start := time.Now()
	conn, err := internal.LdapConnect(&res, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", res.Address(), err)
	}
	defer internal.LdapDisconnect(conn)

	slog.Debug("resource probe succeeded", "resource", name, "address", res.Address(), "duration", time.Since(start))

	return nil
}

func (r *DirectoryRepo) findResource(name string) (config.ResourceConfig, error) {
	for _, res := range r.cfg.Resources {
		if res.Name == name {
			return res, nil
		}
	}

	return config.ResourceConfig{}, fmt.Errorf("resource %s: %w", name, domain.ErrNotFound)
}

func convertUserBackend(b config.UserBackendConfig) domain.UserBackendConfig {
	return domain.UserBackendConfig{
		Name:              b.Name,
		Backend:           b.Backend,
		Resource:          b.Resource,
		BaseDn:            b.BaseDN,
		UserClass:         b.UserClass,
		UserNameAttribute: b.UserNameAttribute,
		Filter:            b.Filter,
	}
}
