package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
	"github.com/frahmantamala/manager-dashboard/internal/core/events"
	"github.com/frahmantamala/manager-dashboard/internal/core/search"
)

// Repository holds one worker collection in display order.
type Repository interface {
	All(ctx context.Context) ([]*Worker, error)
	// GetByID returns apperrors.ErrWorkerNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*Worker, error)
	// MaxID returns 0 for an empty collection.
	MaxID(ctx context.Context) (int64, error)
	Prepend(ctx context.Context, w *Worker) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	// Delete returns apperrors.ErrWorkerNotFound when the id is absent.
	Delete(ctx context.Context, id int64) error
	// Reset replaces the collection, keeping the given order.
	Reset(ctx context.Context, workers []*Worker) error
}

// Service is the only way to mutate a worker collection. Mutations are
// serialized so that id assignment never races.
type Service struct {
	repo      Repository
	publisher events.Publisher
	logger    *slog.Logger
	mu        sync.Mutex
}

func NewService(repo Repository, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) Seed(ctx context.Context, workers []*Worker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Reset(ctx, workers); err != nil {
		s.logger.Error("failed to seed workers", "error", err)
		return err
	}
	s.logger.Debug("workers seeded", "count", len(workers))
	return nil
}

func (s *Service) List(ctx context.Context) ([]*Worker, error) {
	workers, err := s.repo.All(ctx)
	if err != nil {
		s.logger.Error("failed to list workers", "error", err)
		return nil, err
	}
	return workers, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Worker, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrWorkerNotFound) {
			s.logger.Error("failed to get worker", "error", err, "worker_id", id)
		}
		return nil, err
	}
	return w, nil
}

// Pending is every worker awaiting approval, in display order.
func (s *Service) Pending(ctx context.Context) ([]*Worker, error) {
	return s.partition(ctx, true)
}

// Directory is every worker not awaiting approval, in display order.
func (s *Service) Directory(ctx context.Context) ([]*Worker, error) {
	return s.partition(ctx, false)
}

func (s *Service) partition(ctx context.Context, pending bool) ([]*Worker, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Worker, 0, len(all))
	for _, w := range all {
		if w.IsPending() == pending {
			out = append(out, w)
		}
	}
	return out, nil
}

// Search matches query against worker names and ids.
func (s *Service) Search(ctx context.Context, query string) ([]*Worker, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(all, query, func(w *Worker) (string, int64) {
		return w.Name, w.ID
	}), nil
}

func (s *Service) Detail(ctx context.Context, id int64) (*Detail, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{
		Worker:      w,
		MonthGroups: GroupEventsByMonth(w.Events),
		MaxCost:     MaxCost(w.Events),
	}, nil
}

// Add creates an Active worker at the front of the list with an id greater
// than every id currently held.
func (s *Service) Add(ctx context.Context, dto AddWorkerDTO) (*Worker, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("add worker rejected", "error", err)
		return nil, err
	}
	dto = dto.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	maxID, err := s.repo.MaxID(ctx)
	if err != nil {
		s.logger.Error("failed to read max worker id", "error", err)
		return nil, err
	}

	w := NewWorker(maxID+1, dto)
	if err := s.repo.Prepend(ctx, w); err != nil {
		s.logger.Error("failed to add worker", "error", err, "worker_id", w.ID)
		return nil, err
	}

	s.logger.Info("worker added",
		"worker_id", w.ID,
		"name", w.Name,
		"role", w.Role,
		"status", w.Status)

	s.publish(ctx, events.NewWorkerAddedEvent(w.ID, w.Name, w.Role, string(w.Status)))
	return w, nil
}

// SetStatus changes only the status field. changed is false when the worker
// already had the requested status.
func (s *Service) SetStatus(ctx context.Context, id int64, status Status) (w *Worker, changed bool, err error) {
	if !status.Valid() {
		return nil, false, apperrors.ErrInvalidWorkerStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if current.Status == status {
		return current, false, nil
	}

	if !current.Status.CanTransitionTo(status) {
		s.logger.Warn("worker status transition rejected",
			"worker_id", id,
			"from", current.Status,
			"to", status)
		return nil, false, apperrors.ErrInvalidStatusTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("failed to update worker status", "error", err, "worker_id", id)
		return nil, false, err
	}

	from := current.Status
	current.Status = status

	s.logger.Info("worker status changed",
		"worker_id", id,
		"from", from,
		"to", status)

	s.publish(ctx, events.NewWorkerStatusChangedEvent(id, string(from), string(status)))
	return current, true, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrWorkerNotFound) {
			s.logger.Error("failed to delete worker", "error", err, "worker_id", id)
		}
		return err
	}

	s.logger.Info("worker deleted", "worker_id", id, "name", current.Name)

	s.publish(ctx, events.NewWorkerDeletedEvent(id, string(current.Status)))
	return nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish worker event",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"error", err)
	}
}
