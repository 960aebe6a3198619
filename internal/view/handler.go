package view

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
	"github.com/frahmantamala/manager-dashboard/internal/metrics"
	"github.com/frahmantamala/manager-dashboard/internal/transport"
)

// Handler exposes the shell over HTTP. Each request is one UI event.
type Handler struct {
	*transport.BaseHandler
	Shell   *Shell
	Metrics *metrics.Metrics
}

func NewHandler(shell *Shell, m *metrics.Metrics, lg *slog.Logger) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Shell:       shell,
		Metrics:     m,
	}
}

type NavigateDTO struct {
	Route string `json:"route"`
}

type ModalState struct {
	Modals map[Modal]bool `json:"modals"`
}

func (h *Handler) GetShell(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Shell.State())
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var dto NavigateDTO
	if err := h.DecodeJSON(w, r, &dto); err != nil {
		h.Logger.Warn("Navigate: invalid request body", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	route, err := ParseRoute(dto.Route)
	if err != nil {
		h.Logger.Warn("Navigate: unknown route", "route", dto.Route)
		h.HandleServiceError(w, err)
		return
	}

	state, err := h.Shell.Enter(r.Context(), route)
	if err != nil {
		h.Logger.Error("Navigate: failed to enter route", "route", route, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, state)
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationFieldError("id", "id must be a positive integer", apperrors.ErrCodeValidationFailed)
	}
	return id, nil
}

// parseBool reads an optional boolean query parameter.
func parseBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.NewValidationFieldError(name, name+" must be true or false", apperrors.ErrCodeValidationFailed)
	}
	return &v, nil
}

func parseModal(r *http.Request) Modal {
	return Modal(chi.URLParam(r, "modal"))
}
