package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/frahmantamala/manager-dashboard/internal/core/events"
	"github.com/frahmantamala/manager-dashboard/internal/metrics"
	"github.com/frahmantamala/manager-dashboard/internal/worker"
)

// View is the state behind one mounted route.
type View interface {
	Route() Route
	// Close releases whatever the view holds once it is unmounted.
	Close() error
}

// RepositoryOpener returns an empty worker repository for a freshly mounted
// workers view, plus a func that releases it.
type RepositoryOpener func(ctx context.Context) (worker.Repository, func() error, error)

type Dependencies struct {
	OpenRepository RepositoryOpener
	Publisher      events.Publisher
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
}

// Shell is the navigation frame. Exactly one view is mounted at a time and
// every operation on it runs under the shell lock, start to finish.
type Shell struct {
	mu     sync.Mutex
	deps   Dependencies
	route  Route
	view   View
	logger *slog.Logger
}

type ShellState struct {
	Route Route     `json:"route"`
	Items []NavItem `json:"items"`
}

func NewShell(ctx context.Context, deps Dependencies) (*Shell, error) {
	s := &Shell{deps: deps, logger: deps.Logger}
	if _, err := s.enter(ctx, HomeRoute); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Shell) State() ShellState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ShellState{Route: s.route, Items: NavItems()}
}

// Enter makes route the current one. Entering the current route keeps its
// view; entering any other route discards the old view and seeds a new one.
func (s *Shell) Enter(ctx context.Context, route Route) (ShellState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.enter(ctx, route); err != nil {
		return ShellState{}, err
	}
	return ShellState{Route: s.route, Items: NavItems()}, nil
}

// Do enters route and runs fn against its view under the shell lock.
func (s *Shell) Do(ctx context.Context, route Route, fn func(View) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.enter(ctx, route)
	if err != nil {
		return err
	}
	return fn(v)
}

// Close unmounts the current view.
func (s *Shell) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view == nil {
		return nil
	}
	err := s.view.Close()
	s.view = nil
	s.route = ""
	return err
}

func (s *Shell) enter(ctx context.Context, route Route) (View, error) {
	if s.view != nil && s.route == route {
		return s.view, nil
	}

	next, err := s.mount(ctx, route)
	if err != nil {
		s.logger.Error("failed to mount view", "route", route, "error", err)
		return nil, err
	}

	if s.view != nil {
		if err := s.view.Close(); err != nil {
			s.logger.Warn("failed to release view", "route", s.route, "error", err)
		}
	}

	s.logger.Debug("view mounted", "from", s.route, "to", route)
	s.route = route
	s.view = next
	if s.deps.Metrics != nil {
		s.deps.Metrics.ViewMounts.WithLabelValues(string(route)).Inc()
	}
	return next, nil
}

func (s *Shell) mount(ctx context.Context, route Route) (View, error) {
	switch route {
	case RouteDashboard:
		return newDashboardView(), nil
	case RouteWorkers:
		return newWorkersView(ctx, s.deps)
	case RouteReports:
		return newReportsView(), nil
	case RouteProfile:
		return newProfileView(), nil
	case RouteSettings:
		return newSettingsView(s.deps.Logger)
	default:
		return nil, fmt.Errorf("no view for route %q", route)
	}
}

// With runs fn against the view mounted for route, entering it first.
func With[V View](ctx context.Context, s *Shell, route Route, fn func(V) error) error {
	return s.Do(ctx, route, func(v View) error {
		typed, ok := v.(V)
		if !ok {
			return fmt.Errorf("route %q is served by %T", route, v)
		}
		return fn(typed)
	})
}
