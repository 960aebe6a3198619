package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/frahmantamala/manager-dashboard/api"
	"github.com/frahmantamala/manager-dashboard/internal"
	"github.com/frahmantamala/manager-dashboard/internal/core/events"
	"github.com/frahmantamala/manager-dashboard/internal/metrics"
	"github.com/frahmantamala/manager-dashboard/internal/transport/rest"
	"github.com/frahmantamala/manager-dashboard/internal/view"
	"github.com/frahmantamala/manager-dashboard/internal/worker"
	"github.com/frahmantamala/manager-dashboard/internal/worker/memory"
	"github.com/frahmantamala/manager-dashboard/internal/worker/sqlite"
	"github.com/frahmantamala/manager-dashboard/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server that serves the dashboard views`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	Bus      *events.EventBus
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Shell    *view.Shell
	Router   *chi.Mux
	Logger   *slog.Logger
}

func startHTTPServer() {
	ctx := context.Background()

	deps, err := initializeDependencies(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr, "storage", deps.Config.Storage.Driver)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		shutdownCtx, cancel := internal.WithTimeout(ctx, deps.Config.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	if err := deps.Shell.Close(); err != nil {
		deps.Logger.Error("Failed to release mounted view", "error", err)
	}
	deps.Bus.Wait()
	deps.Logger.Info("Server stopped")
}

func initializeDependencies(ctx context.Context) (*Dependencies, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Configure(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.L()

	if _, err := api.Load(ctx); err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	bus := events.NewEventBus(lg)
	bus.Subscribe(events.Wildcard, m.WorkerEventHandler())
	bus.Subscribe(events.Wildcard, events.AuditHandler())

	opener, check, err := storage(config.Storage)
	if err != nil {
		return nil, err
	}

	shell, err := view.NewShell(ctx, view.Dependencies{
		OpenRepository: opener,
		Publisher:      bus,
		Metrics:        m,
		Logger:         lg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mount home view: %w", err)
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router,
		view.NewHandler(shell, m, lg),
		rest.NewHealthHandler(map[string]rest.Check{config.Storage.Driver: check}),
		rest.RouterOptions{
			Server:        config.Server,
			Observability: config.Observability,
			Metrics:       m,
			Gatherer:      registry,
			Logger:        lg,
		})

	return &Dependencies{
		Config:   config,
		Bus:      bus,
		Registry: registry,
		Metrics:  m,
		Shell:    shell,
		Router:   router,
		Logger:   lg,
	}, nil
}

// storage picks the repository each workers view opens, and the health check
// for it.
func storage(cfg internal.StorageConfig) (view.RepositoryOpener, rest.Check, error) {
	switch cfg.Driver {
	case internal.StorageDriverMemory:
		opener := func(context.Context) (worker.Repository, func() error, error) {
			return memory.NewWorkerRepository(), func() error { return nil }, nil
		}
		return opener, func(context.Context) error { return nil }, nil
	case internal.StorageDriverSQLite:
		opener := func(ctx context.Context) (worker.Repository, func() error, error) {
			db, err := sqlite.Open(ctx, cfg.SQLiteDSN)
			if err != nil {
				return nil, nil, err
			}
			return sqlite.NewWorkerRepository(db), func() error { return sqlite.Close(db) }, nil
		}
		check := func(ctx context.Context) error {
			db, err := sqlite.Open(ctx, cfg.SQLiteDSN)
			if err != nil {
				return err
			}
			return sqlite.Close(db)
		}
		return opener, check, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
