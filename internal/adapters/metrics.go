package adapters

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/h44z/groupbackend-portal/internal/domain"
)

// MetricsServer exposes the form resolution metrics to Prometheus.
type MetricsServer struct {
	*http.Server

	resolutions       *prometheus.CounterVec
	validationErrors  *prometheus.CounterVec
	missingResources  prometheus.Counter
	savedBackends     prometheus.Counter
	deletedBackends   prometheus.Counter
	configuredBackend prometheus.Gauge
}

// NewMetricsServer returns a new prometheus server
func NewMetricsServer(listeningAddress string) *MetricsServer {
	reg := prometheus.NewRegistry()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return &MetricsServer{
		Server: &http.Server{
			Addr:    listeningAddress,
			Handler: mux,
		},

		resolutions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "groupbackend_form_resolutions_total",
				Help: "Number of resolved user group backend forms.",
			}, []string{"flavor", "policy"},
		),
		validationErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "groupbackend_form_validation_errors_total",
				Help: "Number of rejected form fields.",
			}, []string{"field"},
		),
		missingResources: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "groupbackend_form_missing_resources_total",
				Help: "Number of form requests without any configured LDAP resource.",
			},
		),
		savedBackends: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "groupbackend_saved_total",
				Help: "Number of saved user group backends.",
			},
		),
		deletedBackends: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "groupbackend_deleted_total",
				Help: "Number of deleted user group backends.",
			},
		),
		configuredBackend: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "groupbackend_configured",
				Help: "Number of configured user group backends.",
			},
		),
	}
}

// Run starts the metrics server and blocks until the context is cancelled.
func (m *MetricsServer) Run(ctx context.Context) {
	go func() {
		if err := m.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics service exited", "address", m.Addr, "error", err)
		}
	}()

	slog.Info("started metrics service", "address", m.Addr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.Shutdown(shutdownCtx); err != nil {
		slog.Error("metrics service shutdown failed", "address", m.Addr, "error", err)
	} else {
		slog.Info("metrics service shut down gracefully", "address", m.Addr)
	}
}

// RecordResolution counts a resolved form.
func (m *MetricsServer) RecordResolution(flavor domain.DirectoryFlavor, policy domain.FieldDisablePolicy) {
	m.resolutions.WithLabelValues(string(flavor), policy.String()).Inc()
}

// RecordValidationErrors counts every rejected field.
func (m *MetricsServer) RecordValidationErrors(errs domain.FieldErrors) {
	for field := range errs {
		m.validationErrors.WithLabelValues(field).Inc()
	}
}

// RecordMissingResources counts a request that was redirected to the resource creation.
func (m *MetricsServer) RecordMissingResources() {
	m.missingResources.Inc()
}

// RecordSaved counts a saved user group backend.
func (m *MetricsServer) RecordSaved() {
	m.savedBackends.Inc()
}

// RecordDeleted counts a deleted user group backend.
func (m *MetricsServer) RecordDeleted() {
	m.deletedBackends.Inc()
}

// SetConfiguredBackends updates the number of configured user group backends.
func (m *MetricsServer) SetConfiguredBackends(count int) {
	m.configuredBackend.Set(float64(count))
}
