package adapters

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h44z/groupbackend-portal/internal/domain"
)

func TestMetricsServer_Handler(t *testing.T) {
	m := NewMetricsServer(":0")

	m.RecordResolution(domain.DirectoryFlavorActiveDirectory, domain.FieldPolicyForceDisabled)
	m.RecordValidationErrors(domain.FieldErrors{domain.FieldGroupFilter: "bad"})
	m.RecordMissingResources()
	m.RecordSaved()
	m.SetConfiguredBackends(3)

	rec := httptest.NewRecorder()
	m.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body),
		`groupbackend_form_resolutions_total{flavor="msldap",policy="force_disabled"} 1`)
	assert.Contains(t, string(body), `groupbackend_form_validation_errors_total{field="group_filter"} 1`)
	assert.Contains(t, string(body), "groupbackend_form_missing_resources_total 1")
	assert.Contains(t, string(body), "groupbackend_configured 3")
}
