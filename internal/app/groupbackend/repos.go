package groupbackend

import (
	"context"

	"golang.org/x/text/message"

	"github.com/h44z/groupbackend-portal/internal/domain"
)

type ResourceRegistry interface {
	// GetResourceConfigs returns all configured resources, in registry order.
	GetResourceConfigs(ctx context.Context) ([]domain.ResourceConfig, error)
	// CreateResource returns the server reference of the named resource.
	CreateResource(ctx context.Context, name string) (domain.DirectoryResourceRef, error)
}

type AuthConfigStore interface {
	// GetUserBackendConfigs returns all configured user backends, in configuration order.
	GetUserBackendConfigs(ctx context.Context) ([]domain.UserBackendConfig, error)
}

type UserBackendService interface {
	// CreateUserBackend returns the attribute mapping of the named user backend.
	CreateUserBackend(ctx context.Context, name string) (*domain.UserBackendRef, error)
}

type DatabaseRepo interface {
	// GetUserGroupBackend returns the user group backend with the given id.
	GetUserGroupBackend(ctx context.Context, id domain.UserGroupBackendIdentifier) (*domain.UserGroupBackend, error)
	// GetAllUserGroupBackends returns all user group backends.
	GetAllUserGroupBackends(ctx context.Context) ([]domain.UserGroupBackend, error)
	// SaveUserGroupBackend creates or updates the user group backend with the given id.
	SaveUserGroupBackend(
		ctx context.Context,
		id domain.UserGroupBackendIdentifier,
		updateFunc func(b *domain.UserGroupBackend) (*domain.UserGroupBackend, error),
	) error
	// DeleteUserGroupBackend deletes the user group backend with the given id.
	DeleteUserGroupBackend(ctx context.Context, id domain.UserGroupBackendIdentifier) error
}

type EventBus interface {
	// Publish sends a message to the message bus.
	Publish(topic string, args ...any)
}

type MetricsRecorder interface {
	RecordResolution(flavor domain.DirectoryFlavor, policy domain.FieldDisablePolicy)
	RecordValidationErrors(errs domain.FieldErrors)
	RecordMissingResources()
	RecordSaved()
	RecordDeleted()
	SetConfiguredBackends(count int)
}

// Localizer translates form texts. It is implemented by *message.Printer.
type Localizer interface {
	Sprintf(key message.Reference, a ...any) string
}

type ResourceProber interface {
	// Probe connects to the named resource and binds with its credentials, if any.
	Probe(ctx context.Context, name string) error
}
