package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/frahmantamala/manager-dashboard/internal/core/events"
)

// Metrics holds the Prometheus collectors for the dashboard service.
type Metrics struct {
	WorkerEvents        *prometheus.CounterVec   // event_type: worker.added, worker.status_changed, worker.deleted
	HTTPRequestDuration *prometheus.HistogramVec // method, route, status
	ReportExports       *prometheus.CounterVec   // format: pdf, xlsx
	ViewMounts          *prometheus.CounterVec   // route
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		WorkerEvents: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_worker_events_total",
			Help: "Worker lifecycle events published on the event bus.",
		}, []string{"event_type"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		ReportExports: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_report_exports_total",
			Help: "Reports exported, by file format.",
		}, []string{"format"}),
		ViewMounts: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_view_mounts_total",
			Help: "Views freshly mounted by navigation.",
		}, []string{"route"}),
	}
}

// WorkerEventHandler counts every event it receives. Subscribe it with
// events.Wildcard.
func (m *Metrics) WorkerEventHandler() events.Handler {
	return func(_ context.Context, event events.Event) error {
		m.WorkerEvents.WithLabelValues(event.EventType()).Inc()
		return nil
	}
}
