package view

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/manager-dashboard/internal/settings"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	var profile settings.Profile
	err := With(r.Context(), h.Shell, RouteProfile, func(v *ProfileView) error {
		profile = v.Profile()
		return nil
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	var state SettingsState
	err := With(r.Context(), h.Shell, RouteSettings, func(v *SettingsView) error {
		state = v.State()
		return nil
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) SelectSection(w http.ResponseWriter, r *http.Request) {
	var dto settings.SectionDTO
	if err := h.DecodeJSON(w, r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var state SettingsState
	err := With(r.Context(), h.Shell, RouteSettings, func(v *SettingsView) error {
		var err error
		state, err = v.SelectSection(dto.Section)
		return err
	})
	if err != nil {
		h.Logger.Warn("SelectSection: unknown section", "section", dto.Section)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var dto settings.CategoryDTO
	if err := h.DecodeJSON(w, r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var org settings.Organization
	err := With(r.Context(), h.Shell, RouteSettings, func(v *SettingsView) error {
		var err error
		org, err = v.AddCategory(r.Context(), dto)
		return err
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, org)
}

func (h *Handler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	var org settings.Organization
	err := With(r.Context(), h.Shell, RouteSettings, func(v *SettingsView) error {
		org = v.RemoveCategory(r.Context(), name)
		return nil
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, org)
}

func (h *Handler) SetBudget(w http.ResponseWriter, r *http.Request) {
	var dto settings.BudgetDTO
	if err := h.DecodeJSON(w, r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var org settings.Organization
	err := With(r.Context(), h.Shell, RouteSettings, func(v *SettingsView) error {
		var err error
		org, err = v.SetBudget(r.Context(), dto)
		return err
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, org)
}

func (h *Handler) SetAlerts(w http.ResponseWriter, r *http.Request) {
	var dto settings.AlertsDTO
	if err := h.DecodeJSON(w, r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var org settings.Organization
	err := With(r.Context(), h.Shell, RouteSettings, func(v *SettingsView) error {
		var err error
		org, err = v.SetAlerts(r.Context(), dto)
		return err
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, org)
}
