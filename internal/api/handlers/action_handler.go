package handlers

import (
	"net/http"

	"github.com/TWRT/direction-dashboard/internal/form"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/TWRT/direction-dashboard/internal/service"
)

type ActionHandler struct {
	actionService *service.ActionService
	logger        *logging.Logger
}

func NewActionHandler(actionService *service.ActionService, logger *logging.Logger) *ActionHandler {
	return &ActionHandler{
		actionService: actionService,
		logger:        logger,
	}
}

func (h *ActionHandler) ListActions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	actions, err := h.actionService.List(r.Context(), service.ActionFilter{
		Query:  q.Get("q"),
		Status: models.ActionStatus(q.Get("status")),
	})
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, actions)
}

func (h *ActionHandler) GetAction(w http.ResponseWriter, r *http.Request) {
	action, err := h.actionService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, action)
}

func (h *ActionHandler) CreateAction(w http.ResponseWriter, r *http.Request) {
	fields, err := submit(r, form.NewActionModal(), nil)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	action, err := h.actionService.Create(r.Context(), fields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, action)
}

func (h *ActionHandler) UpdateAction(w http.ResponseWriter, r *http.Request) {
	existing, err := h.actionService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	fields, err := submit(r, form.NewActionModal(), &existing.ActionFields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	action, err := h.actionService.Update(r.Context(), existing.ID, fields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, action)
}

func (h *ActionHandler) DeleteAction(w http.ResponseWriter, r *http.Request) {
	if err := h.actionService.Delete(r.Context(), r.PathValue("id"), confirmed(r)); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
