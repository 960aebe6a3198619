package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frahmantamala/manager-dashboard/api"
	"github.com/frahmantamala/manager-dashboard/internal"
	"github.com/frahmantamala/manager-dashboard/internal/metrics"
	"github.com/frahmantamala/manager-dashboard/internal/transport/middleware"
	"github.com/frahmantamala/manager-dashboard/internal/transport/swagger"
	"github.com/frahmantamala/manager-dashboard/internal/view"
)

type RouterOptions struct {
	Server        internal.ServerConfig
	Observability internal.ObservabilityConfig
	Metrics       *metrics.Metrics
	Gatherer      prometheus.Gatherer
	Logger        *slog.Logger
}

func RegisterAllRoutes(router *chi.Mux, viewHandler *view.Handler, healthHandler *HealthHandler, opts RouterOptions) {
	router.Use(middleware.CORS(opts.Server.AllowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RecoveryMiddleware(opts.Logger))
	router.Use(middleware.LoggingMiddleware(opts.Logger))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.Document)
	})
	router.Handle("/swagger/*", swagger.Handler("/openapi.yml"))

	if opts.Observability.Metrics.Enabled && opts.Gatherer != nil {
		router.Handle(opts.Observability.Metrics.Path, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/shell", func(sr chi.Router) {
			sr.Get("/", viewHandler.GetShell)
			sr.Post("/navigate", viewHandler.Navigate)
		})

		r.Route("/dashboard", func(dr chi.Router) {
			dr.Get("/", viewHandler.GetDashboard)
			dr.Get("/activities", viewHandler.GetActivities)
			dr.Post("/modals/{modal}", viewHandler.OpenDashboardModal)
			dr.Delete("/modals/{modal}", viewHandler.CloseDashboardModal)
			dr.Get("/bills", viewHandler.GetBills)
			dr.Get("/transactions", viewHandler.GetTransactions)
			dr.Get("/active-workers", viewHandler.GetActiveWorkers)
		})

		r.Route("/workers", func(wr chi.Router) {
			wr.Get("/", viewHandler.ListWorkers)
			wr.Post("/", viewHandler.AddWorker)
			wr.Get("/search", viewHandler.SearchWorkers)
			wr.Post("/selection/clear", viewHandler.ClearSelection)
			wr.Get("/selection/bills", viewHandler.GetSelectedBills)
			wr.Post("/modals/{modal}", viewHandler.OpenWorkersModal)
			wr.Delete("/modals/{modal}", viewHandler.CloseWorkersModal)
			wr.Get("/{id}", viewHandler.GetWorker)
			wr.Delete("/{id}", viewHandler.DeleteWorker)
			wr.Patch("/{id}/status", viewHandler.SetWorkerStatus)
		})

		r.Route("/reports", func(rr chi.Router) {
			rr.Get("/", viewHandler.GetReport)
			rr.Get("/export.pdf", viewHandler.ExportPDF)
			rr.Get("/export.xlsx", viewHandler.ExportXLSX)
		})

		r.Get("/profile", viewHandler.GetProfile)

		r.Route("/settings", func(sr chi.Router) {
			sr.Get("/", viewHandler.GetSettings)
			sr.Put("/section", viewHandler.SelectSection)
			sr.Post("/categories", viewHandler.AddCategory)
			sr.Delete("/categories/{name}", viewHandler.RemoveCategory)
			sr.Put("/budget", viewHandler.SetBudget)
			sr.Put("/alerts", viewHandler.SetAlerts)
		})
	})
}
