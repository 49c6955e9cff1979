package groupbackend

import (
	"context"
	"fmt"
	"sync"

	"github.com/h44z/groupbackend-portal/internal/domain"
)

type fakeDirectory struct {
	resources    []domain.ResourceConfig
	userBackends []domain.UserBackendConfig

	createdResources    map[string]int
	createdUserBackends map[string]int
	probeErr            error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		resources: []domain.ResourceConfig{
			{Name: "dc1", Type: "ldap", Hostname: "ldap.example.com", Port: 389},
			{Name: "icingaweb_db", Type: "db", Hostname: "db.example.com", Port: 3306},
			{Name: "ad", Type: "MSLDAP", Hostname: "ad.example.com", Port: 389},
			{Name: "dc1-alias", Type: "ldap", Hostname: "ldap.example.com", Port: 389},
		},
		userBackends: []domain.UserBackendConfig{
			{
				Name:              "users1",
				Backend:           "ldap",
				Resource:          "dc1",
				BaseDn:            "ou=people,dc=example,dc=com",
				UserClass:         "posixAccount",
				UserNameAttribute: "cn",
				Filter:            "memberOf=cn=staff,ou=groups,dc=example,dc=com",
			},
			{Name: "users-alias", Backend: "LDAP", Resource: "dc1-alias"},
			{Name: "adusers", Backend: "msldap", Resource: "ad"},
			{Name: "dbusers", Backend: "db", Resource: "icingaweb_db"},
		},
		createdResources:    map[string]int{},
		createdUserBackends: map[string]int{},
	}
}

func (f *fakeDirectory) GetResourceConfigs(_ context.Context) ([]domain.ResourceConfig, error) {
	return f.resources, nil
}

func (f *fakeDirectory) CreateResource(_ context.Context, name string) (domain.DirectoryResourceRef, error) {
	f.createdResources[name]++
	for _, r := range f.resources {
		if r.Name == name {
			return domain.DirectoryResourceRef{Name: r.Name, Hostname: r.Hostname, Port: r.Port}, nil
		}
	}
	return domain.DirectoryResourceRef{}, fmt.Errorf("resource %s: %w", name, domain.ErrNotFound)
}

func (f *fakeDirectory) GetUserBackendConfigs(_ context.Context) ([]domain.UserBackendConfig, error) {
	return f.userBackends, nil
}

func (f *fakeDirectory) CreateUserBackend(_ context.Context, name string) (*domain.UserBackendRef, error) {
	f.createdUserBackends[name]++
	for _, b := range f.userBackends {
		if b.Name == name {
			return &domain.UserBackendRef{
				Name:              b.Name,
				BaseDn:            b.BaseDn,
				UserClass:         b.UserClass,
				UserNameAttribute: b.UserNameAttribute,
				Filter:            b.Filter,
			}, nil
		}
	}
	return nil, fmt.Errorf("user backend %s: %w", name, domain.ErrNotFound)
}

func (f *fakeDirectory) Probe(_ context.Context, _ string) error {
	return f.probeErr
}

type fakeDatabase struct {
	mux      sync.Mutex
	backends map[domain.UserGroupBackendIdentifier]domain.UserGroupBackend
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{backends: map[domain.UserGroupBackendIdentifier]domain.UserGroupBackend{}}
}

func (f *fakeDatabase) GetUserGroupBackend(
	_ context.Context,
	id domain.UserGroupBackendIdentifier,
) (*domain.UserGroupBackend, error) {
	f.mux.Lock()
	defer f.mux.Unlock()

	b, ok := f.backends[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (f *fakeDatabase) GetAllUserGroupBackends(_ context.Context) ([]domain.UserGroupBackend, error) {
	f.mux.Lock()
	defer f.mux.Unlock()

	all := make([]domain.UserGroupBackend, 0, len(f.backends))
	for _, b := range f.backends {
		all = append(all, b)
	}
	return all, nil
}

func (f *fakeDatabase) SaveUserGroupBackend(
	_ context.Context,
	id domain.UserGroupBackendIdentifier,
	updateFunc func(b *domain.UserGroupBackend) (*domain.UserGroupBackend, error),
) error {
	f.mux.Lock()
	defer f.mux.Unlock()

	b, ok := f.backends[id]
	if !ok {
		b = domain.UserGroupBackend{Identifier: id}
	}
	updated, err := updateFunc(&b)
	if err != nil {
		return err
	}
	f.backends[id] = *updated
	return nil
}

func (f *fakeDatabase) DeleteUserGroupBackend(_ context.Context, id domain.UserGroupBackendIdentifier) error {
	f.mux.Lock()
	defer f.mux.Unlock()

	if _, ok := f.backends[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.backends, id)
	return nil
}

type publishedEvent struct {
	topic string
	args  []any
}

type fakeBus struct {
	events []publishedEvent
}

func (f *fakeBus) Publish(topic string, args ...any) {
	f.events = append(f.events, publishedEvent{topic: topic, args: args})
}

type fakeMetrics struct {
	resolutions      []domain.FieldDisablePolicy
	validationErrors int
	missing          int
	saved            int
	deleted          int
	configured       int
}

func (f *fakeMetrics) RecordResolution(_ domain.DirectoryFlavor, policy domain.FieldDisablePolicy) {
	f.resolutions = append(f.resolutions, policy)
}

func (f *fakeMetrics) RecordValidationErrors(errs domain.FieldErrors) { f.validationErrors += len(errs) }
func (f *fakeMetrics) RecordMissingResources()                      { f.missing++ }
func (f *fakeMetrics) RecordSaved()                                 { f.saved++ }
func (f *fakeMetrics) RecordDeleted()                               { f.deleted++ }
func (f *fakeMetrics) SetConfiguredBackends(count int)              { f.configured = count }
