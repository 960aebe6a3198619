package memory

import (
	"context"
	"sync"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
	"github.com/frahmantamala/manager-dashboard/internal/worker"
)

// WorkerRepository keeps the collection in a slice; index 0 is the front of
// the display list. Values are copied in and out.
type WorkerRepository struct {
	mu      sync.RWMutex
	workers []*worker.Worker
}

func NewWorkerRepository() worker.Repository {
	return &WorkerRepository{workers: make([]*worker.Worker, 0)}
}

func (r *WorkerRepository) All(_ context.Context) ([]*worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*worker.Worker, len(r.workers))
	for i, w := range r.workers {
		out[i] = w.Clone()
	}
	return out, nil
}

func (r *WorkerRepository) GetByID(_ context.Context, id int64) (*worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.workers[i].Clone(), nil
	}
	return nil, apperrors.ErrWorkerNotFound
}

func (r *WorkerRepository) MaxID(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var max int64
	for _, w := range r.workers {
		if w.ID > max {
			max = w.ID
		}
	}
	return max, nil
}

func (r *WorkerRepository) Prepend(_ context.Context, w *worker.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workers = append([]*worker.Worker{w.Clone()}, r.workers...)
	return nil
}

func (r *WorkerRepository) UpdateStatus(_ context.Context, id int64, status worker.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return apperrors.ErrWorkerNotFound
	}
	r.workers[i].Status = status
	return nil
}

func (r *WorkerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return apperrors.ErrWorkerNotFound
	}
	r.workers = append(r.workers[:i], r.workers[i+1:]...)
	return nil
}

func (r *WorkerRepository) Reset(_ context.Context, workers []*worker.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workers = make([]*worker.Worker, len(workers))
	for i, w := range workers {
		r.workers[i] = w.Clone()
	}
	return nil
}

func (r *WorkerRepository) indexOf(id int64) int {
	for i, w := range r.workers {
		if w.ID == id {
			return i
		}
	}
	return -1
}
