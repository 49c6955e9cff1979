package groupbackend

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/h44z/groupbackend-portal/internal/domain"
)

// Resolution is the outcome of a single resolution pass.
type Resolution struct {
	Flavor        domain.DirectoryFlavor
	ResourceNames []string
	Resource      domain.DirectoryResourceRef

	UserBackendNames []string
	UserBackend      string // domain.NoUserBackend if no backend is linked

	Defaults domain.AttributeDefaults
	Policy   domain.FieldDisablePolicy
}

// Resolver derives the defaults and the field disablement of the user group backend form.
// It keeps no state between calls, every call reads its collaborators again.
type Resolver struct {
	resources    ResourceRegistry
	authConfig   AuthConfigStore
	userBackends UserBackendService
}

func NewResolver(resources ResourceRegistry, authConfig AuthConfigStore, userBackends UserBackendService) *Resolver {
	return &Resolver{
		resources:    resources,
		authConfig:   authConfig,
		userBackends: userBackends,
	}
}

// LdapResourceNames returns the names of all resources of type ldap or msldap, in registry order.
// If there is no such resource, domain.ErrConfigurationMissing is returned.
func (r *Resolver) LdapResourceNames(ctx context.Context) ([]string, error) {
	configs, err := r.resources.GetResourceConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load resource configs: %w", err)
	}

	names := LdapResourceNames(configs)
	if len(names) == 0 {
		return nil, domain.ErrConfigurationMissing
	}

	return names, nil
}

// LdapResourceNames filters the given resource configs down to the names of all LDAP capable resources.
func LdapResourceNames(configs []domain.ResourceConfig) []string {
	var names []string
	for _, cfg := range configs {
		if domain.IsDirectoryType(cfg.Type) {
			names = append(names, cfg.Name)
		}
	}
	return names
}

// ResourceResolver maps a resource name to the server it points to.
type ResourceResolver func(name string) (domain.DirectoryResourceRef, error)

// CompatibleUserBackendNames returns the names of all LDAP user backends whose resource points to the same
// server (hostname and port) as the given resource. Resource names are not compared.
func CompatibleUserBackendNames(
	resource domain.DirectoryResourceRef,
	backends []domain.UserBackendConfig,
	resolve ResourceResolver,
) ([]string, error) {
	var names []string
	for _, backend := range backends {
		if !domain.IsDirectoryType(backend.Backend) {
			continue
		}

		backendResource, err := resolve(backend.Resource)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve resource of user backend %s: %w", backend.Name, err)
		}

		if backendResource.SameServer(resource) {
			names = append(names, backend.Name)
		}
	}

	return names, nil
}

// ResolveDefaults computes the default values and the disablement policy for the given flavor.
// A linked user backend overrides the four user attributes and disables all fields.
func ResolveDefaults(
	flavor domain.DirectoryFlavor,
	userBackend *domain.UserBackendRef,
) (domain.AttributeDefaults, domain.FieldDisablePolicy) {
	defaults := domain.DefaultsFor(flavor)

	policy := domain.FieldPolicyUnset
	if flavor == domain.DirectoryFlavorActiveDirectory {
		policy = domain.FieldPolicyForceDisabled
	}

	if userBackend != nil {
		defaults = defaults.Merge(*userBackend)
		policy = policy.Precedence(domain.FieldPolicyLinkedDisabled)
	}

	return defaults, policy
}

// Resolve runs a full resolution pass for the given form input.
//
// The effective resource is the requested one if it is an LDAP resource, otherwise the first LDAP resource.
// A requested user backend is only linked if it is compatible with the effective resource.
func (r *Resolver) Resolve(ctx context.Context, in FormInput) (*Resolution, error) {
	flavor, err := domain.ParseDirectoryFlavor(in.Type)
	if err != nil {
		return nil, err
	}

	resourceNames, err := r.LdapResourceNames(ctx)
	if err != nil {
		return nil, err
	}

	resourceName := resourceNames[0]
	if slices.Contains(resourceNames, in.Resource) {
		resourceName = in.Resource
	}

	resource, err := r.resources.CreateResource(ctx, resourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource %s: %w", resourceName, err)
	}

	backendConfigs, err := r.authConfig.GetUserBackendConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user backend configs: %w", err)
	}

	// each referenced resource is created at most once per pass
	resolved := map[string]domain.DirectoryResourceRef{resourceName: resource}
	userBackendNames, err := CompatibleUserBackendNames(resource, backendConfigs,
		func(name string) (domain.DirectoryResourceRef, error) {
			if ref, ok := resolved[name]; ok {
				return ref, nil
			}
			ref, err := r.resources.CreateResource(ctx, name)
			if err != nil {
				return domain.DirectoryResourceRef{}, err
			}
			resolved[name] = ref
			return ref, nil
		})
	if err != nil {
		return nil, err
	}

	selectedBackend := domain.NoUserBackend
	var userBackend *domain.UserBackendRef
	if in.UserBackend != "" && in.UserBackend != domain.NoUserBackend {
		if !slices.Contains(userBackendNames, in.UserBackend) {
			slog.DebugContext(ctx, "ignoring incompatible user backend",
				"userBackend", in.UserBackend, "resource", resourceName)
		} else {
			userBackend, err = r.userBackends.CreateUserBackend(ctx, in.UserBackend)
			if err != nil {
				return nil, fmt.Errorf("failed to create user backend %s: %w", in.UserBackend, err)
			}
			selectedBackend = in.UserBackend
		}
	}

	defaults, policy := ResolveDefaults(flavor, userBackend)

	return &Resolution{
		Flavor:           flavor,
		ResourceNames:    resourceNames,
		Resource:         resource,
		UserBackendNames: userBackendNames,
		UserBackend:      selectedBackend,
		Defaults:         defaults,
		Policy:           policy,
	}, nil
}
