package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h44z/groupbackend-portal/internal/app/api/core/middleware/tracing"
	"github.com/h44z/groupbackend-portal/internal/app/api/core/respond"
	"github.com/h44z/groupbackend-portal/internal/config"
)

func testEndpoint(version ApiVersion) ApiEndpointSetupFunc {
	return func() (ApiVersion, GroupSetupFn) {
		return version, func(group *routegroup.Bundle) {
			group.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
				respond.String(w, http.StatusOK, tracing.RequestId(r.Context()))
			})
			group.HandleFunc("GET /panic", func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			})
		}
	}
}

func TestServer_Routes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Web.ExposeHostInfo = true

	srv, err := NewServer(cfg, testEndpoint("v0"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/ping", nil)
	req.Header.Set(RequestIDKey, "abc")
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc", rr.Body.String())
	assert.Equal(t, "abc", rr.Header().Get(RequestIDKey))
	assert.NotEmpty(t, rr.Header().Get("X-Served-By"))

	rr = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api", nil))
	assert.JSONEq(t, `{"Version":"dev","ApiVersions":["v0"]}`, rr.Body.String())
}

func TestServer_RecoversPanics(t *testing.T) {
	srv, err := NewServer(&config.Config{}, testEndpoint("v0"))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal Server Error")
}
