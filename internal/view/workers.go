package view

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
	"github.com/frahmantamala/manager-dashboard/internal/core/search"
	"github.com/frahmantamala/manager-dashboard/internal/seed"
	"github.com/frahmantamala/manager-dashboard/internal/worker"
)

// WorkersView owns the worker collection while the workers route is mounted,
// along with the open detail view and the modals.
type WorkersView struct {
	service  *worker.Service
	release  func() error
	selected int64
	modals   *ModalController
	logger   *slog.Logger
}

type WorkersState struct {
	Directory  []*worker.Worker `json:"directory"`
	Pending    []*worker.Worker `json:"pending"`
	SelectedID *int64           `json:"selected_id"`
	Modals     map[Modal]bool   `json:"modals"`
}

// StatusResult reports a status change. Worker is nil when the id was not
// found, which is not an error.
type StatusResult struct {
	Worker  *worker.Worker `json:"worker"`
	Changed bool           `json:"changed"`
}

type DeleteResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

func newWorkersView(ctx context.Context, deps Dependencies) (*WorkersView, error) {
	repo, release, err := deps.OpenRepository(ctx)
	if err != nil {
		return nil, err
	}

	service := worker.NewService(repo, deps.Publisher, deps.Logger)
	if err := service.Seed(ctx, seed.Workers()); err != nil {
		_ = release()
		return nil, err
	}

	return &WorkersView{
		service: service,
		release: release,
		modals:  NewModalController(ModalAddWorker, ModalWorkerBills),
		logger:  deps.Logger,
	}, nil
}

func (v *WorkersView) Route() Route { return RouteWorkers }

func (v *WorkersView) Close() error {
	if v.release == nil {
		return nil
	}
	return v.release()
}

func (v *WorkersView) State(ctx context.Context) (WorkersState, error) {
	directory, err := v.service.Directory(ctx)
	if err != nil {
		return WorkersState{}, err
	}
	pending, err := v.service.Pending(ctx)
	if err != nil {
		return WorkersState{}, err
	}

	state := WorkersState{
		Directory: directory,
		Pending:   pending,
		Modals:    v.modals.Snapshot(),
	}
	if v.selected != 0 {
		id := v.selected
		state.SelectedID = &id
	}
	return state, nil
}

// Search filters every worker by name or id.
func (v *WorkersView) Search(ctx context.Context, query string, viewAll bool) (search.Page[*worker.Worker], error) {
	matched, err := v.service.Search(ctx, query)
	if err != nil {
		return search.Page[*worker.Worker]{}, err
	}
	return search.Preview(query, matched, viewAll), nil
}

// Select opens the detail view for id.
func (v *WorkersView) Select(ctx context.Context, id int64) (*worker.Detail, error) {
	detail, err := v.service.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.selected != id {
		_ = v.modals.Close(ModalWorkerBills)
	}
	v.selected = id
	return detail, nil
}

// Back closes the detail view.
func (v *WorkersView) Back() {
	v.deselect()
}

func (v *WorkersView) deselect() {
	v.selected = 0
	_ = v.modals.Close(ModalWorkerBills)
}

func (v *WorkersView) deselectIf(id int64) {
	if v.selected == id {
		v.deselect()
	}
}

func (v *WorkersView) SetStatus(ctx context.Context, id int64, status worker.Status) (StatusResult, error) {
	w, changed, err := v.service.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			v.logger.Debug("status change for missing worker ignored", "worker_id", id)
			return StatusResult{}, nil
		}
		return StatusResult{}, err
	}
	v.deselectIf(id)
	return StatusResult{Worker: w, Changed: changed}, nil
}

// Delete removes id once confirmed. A missing id is reported as not deleted.
func (v *WorkersView) Delete(ctx context.Context, id int64, confirmed bool) (DeleteResult, error) {
	if !confirmed {
		return DeleteResult{ID: id}, apperrors.ErrConfirmationRequired
	}

	if err := v.service.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			v.logger.Debug("delete of missing worker ignored", "worker_id", id)
			return DeleteResult{ID: id}, nil
		}
		return DeleteResult{ID: id}, err
	}
	v.deselectIf(id)
	return DeleteResult{ID: id, Deleted: true}, nil
}

// Add submits the add-worker form. The modal closes only when the worker was
// created.
func (v *WorkersView) Add(ctx context.Context, dto worker.AddWorkerDTO) (*worker.Worker, error) {
	w, err := v.service.Add(ctx, dto)
	if err != nil {
		return nil, err
	}
	_ = v.modals.Close(ModalAddWorker)
	return w, nil
}

func (v *WorkersView) OpenModal(m Modal) error {
	if m == ModalWorkerBills && v.selected == 0 {
		return apperrors.ErrNoWorkerSelected
	}
	return v.modals.Open(m)
}

func (v *WorkersView) CloseModal(m Modal) error {
	return v.modals.Close(m)
}

func (v *WorkersView) Modals() map[Modal]bool {
	return v.modals.Snapshot()
}

// SelectedBills lists the expense events of the open worker for the bills
// modal.
func (v *WorkersView) SelectedBills(ctx context.Context) ([]worker.Event, error) {
	if v.selected == 0 {
		return nil, apperrors.ErrNoWorkerSelected
	}
	w, err := v.service.Get(ctx, v.selected)
	if err != nil {
		return nil, err
	}
	return w.Events, nil
}
