package view

import (
	"net/http"

	"github.com/frahmantamala/manager-dashboard/internal/activity"
	"github.com/frahmantamala/manager-dashboard/internal/core/search"
	"github.com/frahmantamala/manager-dashboard/internal/dashboard"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	var state DashboardState
	err := With(r.Context(), h.Shell, RouteDashboard, func(v *DashboardView) error {
		state = v.State()
		return nil
	})
	if err != nil {
		h.Logger.Error("GetDashboard: failed to mount dashboard", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	viewAll, err := parseBool(r, "view_all")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var query *string
	if r.URL.Query().Has("q") {
		q := r.URL.Query().Get("q")
		query = &q
	}

	var page search.Page[activity.Activity]
	err = With(r.Context(), h.Shell, RouteDashboard, func(v *DashboardView) error {
		page = v.Activities(query, viewAll)
		return nil
	})
	if err != nil {
		h.Logger.Error("GetActivities: failed to mount dashboard", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) OpenDashboardModal(w http.ResponseWriter, r *http.Request) {
	h.toggleDashboardModal(w, r, true)
}

func (h *Handler) CloseDashboardModal(w http.ResponseWriter, r *http.Request) {
	h.toggleDashboardModal(w, r, false)
}

func (h *Handler) toggleDashboardModal(w http.ResponseWriter, r *http.Request, open bool) {
	modal := parseModal(r)

	var state ModalState
	err := With(r.Context(), h.Shell, RouteDashboard, func(v *DashboardView) error {
		var err error
		if open {
			err = v.Modals().Open(modal)
		} else {
			err = v.Modals().Close(modal)
		}
		if err != nil {
			return err
		}
		state = ModalState{Modals: v.Modals().Snapshot()}
		return nil
	})
	if err != nil {
		h.Logger.Warn("DashboardModal: toggle rejected", "modal", modal, "open", open, "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) GetBills(w http.ResponseWriter, r *http.Request) {
	var bills []dashboard.Bill
	err := With(r.Context(), h.Shell, RouteDashboard, func(v *DashboardView) error {
		bills = v.Bills()
		return nil
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"bills": bills})
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	var content TransactionsContent
	err := With(r.Context(), h.Shell, RouteDashboard, func(v *DashboardView) error {
		content = v.Transactions()
		return nil
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, content)
}

func (h *Handler) GetActiveWorkers(w http.ResponseWriter, r *http.Request) {
	var workers []dashboard.ActiveWorker
	err := With(r.Context(), h.Shell, RouteDashboard, func(v *DashboardView) error {
		workers = v.ActiveWorkers()
		return nil
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"active_workers": workers})
}
