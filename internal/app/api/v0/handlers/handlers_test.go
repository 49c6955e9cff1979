package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h44z/groupbackend-portal/internal/app/api/v0/model"
	"github.com/h44z/groupbackend-portal/internal/app/groupbackend"
	"github.com/h44z/groupbackend-portal/internal/app/i18n"
	"github.com/h44z/groupbackend-portal/internal/config"
	"github.com/h44z/groupbackend-portal/internal/domain"
)

type fakeService struct {
	buildErr  error
	submitErr error

	lastInput  groupbackend.FormInput
	lastValues groupbackend.FormValues
	backends   map[domain.UserGroupBackendIdentifier]domain.UserGroupBackend
}

func (f *fakeService) BuildForm(
	_ context.Context,
	loc groupbackend.Localizer,
	in groupbackend.FormInput,
) (*domain.Form, error) {
	f.lastInput = in
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	return &domain.Form{
		Name: groupbackend.FormName,
		Fields: []domain.FieldOptions{
			{Name: domain.FieldResource, Type: domain.FieldTypeSelect, Value: "dc1", Label: loc.Sprintf("LDAP Connection")},
			{Name: domain.FieldGroupClass, Type: domain.FieldTypeText, Value: "group"},
			{Name: domain.FieldUserClass, Type: domain.FieldTypeText, Value: "user", Disabled: domain.FieldPolicyForceDisabled},
		},
	}, nil
}

func (f *fakeService) EditForm(
	ctx context.Context,
	loc groupbackend.Localizer,
	id domain.UserGroupBackendIdentifier,
) (*domain.Form, error) {
	b, err := f.GetUserGroupBackend(ctx, id)
	if err != nil {
		return nil, err
	}
	form, err := f.BuildForm(ctx, loc, groupbackend.FormValuesOf(b).Input())
	if err != nil {
		return nil, err
	}
	form.Field(domain.FieldGroupClass).Value = b.GroupClass
	return form, nil
}

func (f *fakeService) Submit(
	_ context.Context,
	_ groupbackend.Localizer,
	id domain.UserGroupBackendIdentifier,
	values groupbackend.FormValues,
) (*domain.UserGroupBackend, error) {
	f.lastValues = values
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	b := domain.UserGroupBackend{
		Identifier: id,
		Backend:    domain.DirectoryFlavor(values.Type),
		Resource:   values.Resource,
	}
	b.SetAttributes(values.Attributes())
	f.backends[id] = b
	return &b, nil
}

func (f *fakeService) GetUserGroupBackend(
	_ context.Context,
	id domain.UserGroupBackendIdentifier,
) (*domain.UserGroupBackend, error) {
	b, ok := f.backends[id]
	if !ok {
		return nil, fmt.Errorf("backend %s: %w", id, domain.ErrNotFound)
	}
	return &b, nil
}

func (f *fakeService) GetAllUserGroupBackends(_ context.Context) ([]domain.UserGroupBackend, error) {
	var all []domain.UserGroupBackend
	for _, b := range f.backends {
		all = append(all, b)
	}
	return all, nil
}

func (f *fakeService) DeleteUserGroupBackend(_ context.Context, id domain.UserGroupBackendIdentifier) error {
	if _, ok := f.backends[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.backends, id)
	return nil
}

func (f *fakeService) ProbeResource(_ context.Context, name string) (domain.ResourceProbeResult, error) {
	if name != "dc1" {
		return domain.ResourceProbeResult{}, domain.ErrNotFound
	}
	return domain.ResourceProbeResult{Resource: name, Reachable: false, Error: "timeout"}, nil
}

const testCreateResourceUrl = "https://admin.example.com/config/createresource"

func setupApi(t *testing.T, svc *fakeService) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Web.SessionIdentifier = "testSession"
	cfg.Web.ExternalUrl = "http://localhost"
	cfg.Web.CreateResourceUrl = testCreateResourceUrl

	session := NewSessionWrapper(cfg)
	translator := i18n.NewTranslator("en")

	_, setup := NewRestApi(session,
		NewUserGroupBackendEndpoint(cfg, svc, session, translator),
		NewResourceEndpoint(svc),
		NewNotificationEndpoint(session),
		NewHealthEndpoint(),
	)()

	router := routegroup.New(http.NewServeMux())
	setup(router.Mount("/api/v0"))
	return router
}

func newFakeService() *fakeService {
	return &fakeService{backends: map[domain.UserGroupBackendIdentifier]domain.UserGroupBackend{}}
}

func TestUserGroupBackendEndpoint_FormGet(t *testing.T) {
	svc := newFakeService()
	api := setupApi(t, svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v0/config/usergroupbackends/form?type=msldap&resource=dc1&user_backend=none", nil)
	req.Header.Set("Accept-Language", "de")
	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, groupbackend.FormInput{Type: "msldap", Resource: "dc1", UserBackend: "none"}, svc.lastInput)

	var form struct {
		Name   string
		Fields []struct {
			Name          string
			Label         string
			Disabled      *bool
			DisablePolicy string
		}
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &form))
	require.Len(t, form.Fields, 3)
	assert.Equal(t, "LDAP-Verbindung", form.Fields[0].Label)
	assert.Nil(t, form.Fields[1].Disabled)
	assert.Equal(t, "unset", form.Fields[1].DisablePolicy)
	require.NotNil(t, form.Fields[2].Disabled)
	assert.True(t, *form.Fields[2].Disabled)
}

func TestUserGroupBackendEndpoint_FormGet_DefaultType(t *testing.T) {
	svc := newFakeService()
	api := setupApi(t, svc)

	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/config/usergroupbackends/form", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ldap", svc.lastInput.Type)
}

func TestUserGroupBackendEndpoint_MissingConfigurationRedirects(t *testing.T) {
	svc := newFakeService()
	svc.buildErr = domain.ErrConfigurationMissing
	api := setupApi(t, svc)

	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/config/usergroupbackends/form?type=ldap", nil))

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, testCreateResourceUrl, rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)

	// the notification is delivered exactly once
	for i, want := range []int{1, 0} {
		req := httptest.NewRequest(http.MethodGet, "/api/v0/notifications", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rr = httptest.NewRecorder()
		api.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var notifications []model.Notification
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &notifications))
		require.Len(t, notifications, want, "request %d", i)
		if want > 0 {
			assert.Equal(t, "error", notifications[0].Type)
			assert.Equal(t, groupbackend.MsgNoLdapResources, notifications[0].Message)
		}
	}
}

func TestUserGroupBackendEndpoint_EditFormGet(t *testing.T) {
	svc := newFakeService()
	svc.backends["groups"] = domain.UserGroupBackend{
		Identifier:  "groups",
		Backend:     domain.DirectoryFlavorActiveDirectory,
		Resource:    "ad",
		UserBackend: "adusers",
		GroupClass:  "groupOfNames",
	}
	api := setupApi(t, svc)

	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/config/usergroupbackends/groups/form", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, groupbackend.FormInput{Type: "msldap", Resource: "ad", UserBackend: "adusers"}, svc.lastInput)

	var form struct {
		Fields []struct {
			Name  string
			Value string
		}
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &form))
	require.Len(t, form.Fields, 3)
	assert.Equal(t, domain.FieldGroupClass, form.Fields[1].Name)
	assert.Equal(t, "groupOfNames", form.Fields[1].Value)
}

func TestUserGroupBackendEndpoint_EditFormGet_NotFound(t *testing.T) {
	api := setupApi(t, newFakeService())

	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/config/usergroupbackends/missing/form", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUserGroupBackendEndpoint_EditFormGet_MissingConfiguration(t *testing.T) {
	svc := newFakeService()
	svc.backends["groups"] = domain.UserGroupBackend{Identifier: "groups", Backend: domain.DirectoryFlavorOpenLdap}
	svc.buildErr = domain.ErrConfigurationMissing
	api := setupApi(t, svc)

	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/config/usergroupbackends/groups/form", nil))

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, testCreateResourceUrl, rr.Header().Get("Location"))
}

func TestUserGroupBackendEndpoint_SubmitJson(t *testing.T) {
	svc := newFakeService()
	api := setupApi(t, svc)

	body := `{"type":"ldap","resource":"dc1","user_backend":"none","group_class":"groupOfNames"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v0/config/usergroupbackends/groups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var saved model.UserGroupBackend
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &saved))
	assert.Equal(t, "groups", saved.Name)
	assert.Equal(t, "groupOfNames", saved.Attributes.GroupClass)
	assert.Equal(t, domain.NoUserBackend, saved.UserBackend)

	rr = httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/config/usergroupbackends/groups", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/config/usergroupbackends/all", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"Name":"groups"`)
}

func TestUserGroupBackendEndpoint_SubmitForm(t *testing.T) {
	svc := newFakeService()
	api := setupApi(t, svc)

	form := url.Values{}
	form.Set("type", "ldap")
	form.Set("resource", "dc1")
	form.Set("user_backend", "none")
	form.Set("group_filter", "cn=staff*")
	form.Set("user_base_dn", "ou=people,dc=example,dc=com")

	req := httptest.NewRequest(http.MethodPost, "/api/v0/config/usergroupbackends/groups",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "cn=staff*", svc.lastValues.GroupFilter)
	assert.Equal(t, "ou=people,dc=example,dc=com", svc.lastValues.UserBaseDn)
	assert.Equal(t, "none", svc.lastValues.UserBackend)
}

func TestUserGroupBackendEndpoint_SubmitFieldErrors(t *testing.T) {
	svc := newFakeService()
	svc.submitErr = domain.FieldErrors{domain.FieldGroupFilter: groupbackend.MsgFilterWrapped}
	api := setupApi(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/config/usergroupbackends/groups",
		strings.NewReader(`{"type":"ldap","group_filter":"(cn=x)"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var verr model.ValidationError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &verr))
	assert.Equal(t, map[string]string{domain.FieldGroupFilter: groupbackend.MsgFilterWrapped}, verr.Fields)
}

func TestUserGroupBackendEndpoint_SubmitBrokenJson(t *testing.T) {
	api := setupApi(t, newFakeService())

	req := httptest.NewRequest(http.MethodPost, "/api/v0/config/usergroupbackends/groups", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUserGroupBackendEndpoint_Delete(t *testing.T) {
	svc := newFakeService()
	svc.backends["groups"] = domain.UserGroupBackend{Identifier: "groups"}
	api := setupApi(t, svc)

	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v0/config/usergroupbackends/groups", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v0/config/usergroupbackends/groups", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResourceEndpoint_Probe(t *testing.T) {
	api := setupApi(t, newFakeService())

	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v0/config/resources/dc1/probe", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Resource":"dc1","Reachable":false,"Error":"timeout"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v0/config/resources/db/probe", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealthEndpoint(t *testing.T) {
	api := setupApi(t, newFakeService())

	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Status":"ok","Version":"dev"}`, rr.Body.String())
}
