package view

import (
	"net/http"

	"github.com/frahmantamala/manager-dashboard/internal/core/search"
	"github.com/frahmantamala/manager-dashboard/internal/worker"
)

func (h *Handler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	var state WorkersState
	err := With(r.Context(), h.Shell, RouteWorkers, func(v *WorkersView) error {
		var err error
		state, err = v.State(r.Context())
		return err
	})
	if err != nil {
		h.Logger.Error("ListWorkers: failed to load workers", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) SearchWorkers(w http.ResponseWriter, r *http.Request) {
	viewAll, err := parseBool(r, "view_all")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	query := r.URL.Query().Get("q")

	var page search.Page[*worker.Worker]
	err = With(r.Context(), h.Shell, RouteWorkers, func(v *WorkersView) error {
		var err error
		page, err = v.Search(r.Context(), query, viewAll != nil && *viewAll)
		return err
	})
	if err != nil {
		h.Logger.Error("SearchWorkers: failed to search workers", "query", query, "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) AddWorker(w http.ResponseWriter, r *http.Request) {
	var dto worker.AddWorkerDTO
	if err := h.DecodeJSON(w, r, &dto); err != nil {
		h.Logger.Warn("AddWorker: invalid request body", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	var created *worker.Worker
	err := With(r.Context(), h.Shell, RouteWorkers, func(v *WorkersView) error {
		var err error
		created, err = v.Add(r.Context(), dto)
		return err
	})
	if err != nil {
		h.Logger.Warn("AddWorker: worker not created", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("AddWorker: worker created", "worker_id", created.ID, "name", created.Name)
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetWorker(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var detail *worker.Detail
	err = With(r.Context(), h.Shell, RouteWorkers, func(v *WorkersView) error {
		var err error
		detail, err = v.Select(r.Context(), id)
		return err
	})
	if err != nil {
		h.Logger.Warn("GetWorker: cannot open worker", "worker_id", id, "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	var state WorkersState
	err := With(r.Context(), h.Shell, RouteWorkers, func(v *WorkersView) error {
		v.Back()
		var err error
		state, err = v.State(r.Context())
		return err
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) SetWorkerStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var dto worker.SetStatusDTO
	if err := h.DecodeJSON(w, r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if err := dto.Validate(); err != nil {
		h.Logger.Warn("SetWorkerStatus: invalid status", "worker_id", id, "status", dto.Status)
		h.HandleServiceError(w, err)
		return
	}

	var result StatusResult
	err = With(r.Context(), h.Shell, RouteWorkers, func(v *WorkersView) error {
		var err error
		result, err = v.SetStatus(r.Context(), id, worker.Status(dto.Status))
		return err
	})
	if err != nil {
		h.Logger.Warn("SetWorkerStatus: status not changed", "worker_id", id, "status", dto.Status, "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	confirm, err := parseBool(r, "confirm")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	confirmed := confirm != nil && *confirm

	var result DeleteResult
	err = With(r.Context(), h.Shell, RouteWorkers, func(v *WorkersView) error {
		var err error
		result, err = v.Delete(r.Context(), id, confirmed)
		return err
	})
	if err != nil {
		h.Logger.Warn("DeleteWorker: worker not deleted", "worker_id", id, "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) OpenWorkersModal(w http.ResponseWriter, r *http.Request) {
	h.toggleWorkersModal(w, r, true)
}

func (h *Handler) CloseWorkersModal(w http.ResponseWriter, r *http.Request) {
	h.toggleWorkersModal(w, r, false)
}

func (h *Handler) toggleWorkersModal(w http.ResponseWriter, r *http.Request, open bool) {
	modal := parseModal(r)

	var state ModalState
	err := With(r.Context(), h.Shell, RouteWorkers, func(v *WorkersView) error {
		var err error
		if open {
			err = v.OpenModal(modal)
		} else {
			err = v.CloseModal(modal)
		}
		if err != nil {
			return err
		}
		state = ModalState{Modals: v.Modals()}
		return nil
	})
	if err != nil {
		h.Logger.Warn("WorkersModal: toggle rejected", "modal", modal, "open", open, "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) GetSelectedBills(w http.ResponseWriter, r *http.Request) {
	var bills []worker.Event
	err := With(r.Context(), h.Shell, RouteWorkers, func(v *WorkersView) error {
		var err error
		bills, err = v.SelectedBills(r.Context())
		return err
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"bills": bills})
}
