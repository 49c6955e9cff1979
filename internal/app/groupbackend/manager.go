package groupbackend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/h44z/groupbackend-portal/internal/app"
	"github.com/h44z/groupbackend-portal/internal/domain"
)

// Manager resolves, validates and stores user group backends.
type Manager struct {
	resolver *Resolver
	prober   ResourceProber
	db       DatabaseRepo
	bus      EventBus
	metrics  MetricsRecorder

	validate *validator.Validate
}

func NewManager(
	resolver *Resolver,
	prober ResourceProber,
	db DatabaseRepo,
	bus EventBus,
	metrics MetricsRecorder,
) *Manager {
	return &Manager{
		resolver: resolver,
		prober:   prober,
		db:       db,
		bus:      bus,
		metrics:  metrics,
		validate: NewValidator(),
	}
}

// Resolve runs a resolution pass and records its outcome.
func (m *Manager) Resolve(ctx context.Context, in FormInput) (*Resolution, error) {
	res, err := m.resolver.Resolve(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrConfigurationMissing) {
			m.metrics.RecordMissingResources()
		}
		return nil, err
	}

	m.metrics.RecordResolution(res.Flavor, res.Policy)

	return res, nil
}

// BuildForm resolves the form for the given input. If no LDAP resource exists,
// domain.ErrConfigurationMissing is returned and no form is built.
func (m *Manager) BuildForm(ctx context.Context, loc Localizer, in FormInput) (*domain.Form, error) {
	res, err := m.Resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	return FormFor(res, loc), nil
}

// EditForm builds the form of a stored user group backend. Type, resource and user backend are taken from
// the stored record, editable attribute fields show the stored values instead of the defaults.
func (m *Manager) EditForm(ctx context.Context, loc Localizer, id domain.UserGroupBackendIdentifier) (
	*domain.Form,
	error,
) {
	b, err := m.db.GetUserGroupBackend(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user group backend %s: %w", id, err)
	}

	form, err := m.BuildForm(ctx, loc, FormValuesOf(b).Input())
	if err != nil {
		return nil, err
	}

	stored := b.Attributes()
	for _, name := range AttributeFieldNames() {
		field := form.Field(name)
		if field == nil || field.Disabled.Disabled() {
			continue
		}
		field.Value = stored.Value(name)
	}

	return form, nil
}

// Submit validates the submitted values and stores them as user group backend with the given identifier.
// Validation problems are returned as domain.FieldErrors.
func (m *Manager) Submit(
	ctx context.Context,
	loc Localizer,
	id domain.UserGroupBackendIdentifier,
	values FormValues,
) (*domain.UserGroupBackend, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing user group backend name", domain.ErrInvalidData)
	}

	res, err := m.Resolve(ctx, values.Input())
	if err != nil {
		return nil, err
	}

	// disabled fields cannot be edited, their value is always the resolved default
	if res.Policy.Disabled() {
		values.SetAttributes(res.Defaults)
	}

	fieldErrs, err := validateValues(m.validate, loc, values)
	if err != nil {
		return nil, err
	}
	if values.Resource != "" && !slices.Contains(res.ResourceNames, values.Resource) {
		fieldErrs.Add(domain.FieldResource, loc.Sprintf(MsgUnknownOption))
	}
	if values.UserBackend != "" && values.UserBackend != res.UserBackend {
		fieldErrs.Add(domain.FieldUserBackend, loc.Sprintf(MsgUnknownOption))
	}
	if len(fieldErrs) > 0 {
		m.metrics.RecordValidationErrors(fieldErrs)
		return nil, fieldErrs
	}

	linkedBackend := ""
	if res.UserBackend != domain.NoUserBackend {
		linkedBackend = res.UserBackend
	}

	var saved domain.UserGroupBackend
	err = m.db.SaveUserGroupBackend(ctx, id, func(b *domain.UserGroupBackend) (*domain.UserGroupBackend, error) {
		b.Backend = res.Flavor
		b.Resource = res.Resource.Name
		b.UserBackend = linkedBackend
		b.SetAttributes(values.Attributes())
		saved = *b
		return b, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user group backend %s: %w", id, err)
	}

	slog.InfoContext(ctx, "saved user group backend",
		"backend", id, "resource", saved.Resource, "userBackend", linkedBackend)

	m.metrics.RecordSaved()
	m.refreshConfiguredCount(ctx)
	m.bus.Publish(app.TopicUserGroupBackendSaved, saved)

	return &saved, nil
}

// FormValuesOf returns the form values that reproduce the given stored backend.
func FormValuesOf(b *domain.UserGroupBackend) FormValues {
	values := FormValues{
		Type:        string(b.Backend),
		Resource:    b.Resource,
		UserBackend: domain.NoUserBackend,
	}
	if b.LinksUserBackend() {
		values.UserBackend = b.UserBackend
	}
	values.SetAttributes(b.Attributes())
	return values
}

func (m *Manager) GetUserGroupBackend(
	ctx context.Context,
	id domain.UserGroupBackendIdentifier,
) (*domain.UserGroupBackend, error) {
	return m.db.GetUserGroupBackend(ctx, id)
}

func (m *Manager) GetAllUserGroupBackends(ctx context.Context) ([]domain.UserGroupBackend, error) {
	return m.db.GetAllUserGroupBackends(ctx)
}

func (m *Manager) DeleteUserGroupBackend(ctx context.Context, id domain.UserGroupBackendIdentifier) error {
	existing, err := m.db.GetUserGroupBackend(ctx, id)
	if err != nil {
		return fmt.Errorf("unable to find user group backend %s: %w", id, err)
	}

	if err := m.db.DeleteUserGroupBackend(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user group backend %s: %w", id, err)
	}

	slog.InfoContext(ctx, "deleted user group backend", "backend", id)

	m.metrics.RecordDeleted()
	m.refreshConfiguredCount(ctx)
	m.bus.Publish(app.TopicUserGroupBackendDeleted, *existing)

	return nil
}

// ProbeResource checks whether the named LDAP resource can be reached and bound to.
func (m *Manager) ProbeResource(ctx context.Context, name string) (domain.ResourceProbeResult, error) {
	names, err := m.resolver.LdapResourceNames(ctx)
	if err != nil {
		return domain.ResourceProbeResult{}, err
	}
	if !slices.Contains(names, name) {
		return domain.ResourceProbeResult{}, fmt.Errorf("ldap resource %s: %w", name, domain.ErrNotFound)
	}

	result := domain.ResourceProbeResult{Resource: name, Reachable: true}
	if err := m.prober.Probe(ctx, name); err != nil {
		slog.DebugContext(ctx, "resource probe failed", "resource", name, "error", err)
		result.Reachable = false
		result.Error = err.Error()
	}

	m.bus.Publish(app.TopicResourceProbed, result)

	return result, nil
}

// StartupCheck logs the directory setup and initializes the backend gauge.
func (m *Manager) StartupCheck(ctx context.Context) {
	if _, err := m.resolver.LdapResourceNames(ctx); errors.Is(err, domain.ErrConfigurationMissing) {
		slog.Warn("no ldap resources configured, user group backends cannot be created yet")
	}
	m.refreshConfiguredCount(ctx)
}

func (m *Manager) refreshConfiguredCount(ctx context.Context) {
	all, err := m.db.GetAllUserGroupBackends(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to count user group backends", "error", err)
		return
	}
	m.metrics.SetConfiguredBackends(len(all))
}
