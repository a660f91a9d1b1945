package handlers

import (
	"net/http"

	"github.com/TWRT/direction-dashboard/internal/form"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/TWRT/direction-dashboard/internal/service"
)

type ObjectiveHandler struct {
	objectiveService *service.ObjectiveService
	logger           *logging.Logger
}

func NewObjectiveHandler(objectiveService *service.ObjectiveService, logger *logging.Logger) *ObjectiveHandler {
	return &ObjectiveHandler{
		objectiveService: objectiveService,
		logger:           logger,
	}
}

func (h *ObjectiveHandler) ListObjectives(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	objectives, err := h.objectiveService.List(r.Context(), service.ObjectiveFilter{
		Query:   q.Get("q"),
		Status:  models.ObjectiveStatus(q.Get("status")),
		Quarter: models.Quarter(q.Get("quarter")),
	})
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, objectives)
}

func (h *ObjectiveHandler) GetObjective(w http.ResponseWriter, r *http.Request) {
	objective, err := h.objectiveService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, objective)
}

func (h *ObjectiveHandler) CreateObjective(w http.ResponseWriter, r *http.Request) {
	fields, err := submit(r, form.NewObjectiveModal(), nil)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	objective, err := h.objectiveService.Create(r.Context(), fields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, objective)
}

func (h *ObjectiveHandler) UpdateObjective(w http.ResponseWriter, r *http.Request) {
	existing, err := h.objectiveService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	fields, err := submit(r, form.NewObjectiveModal(), &existing.ObjectiveFields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	objective, err := h.objectiveService.Update(r.Context(), existing.ID, fields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, objective)
}

func (h *ObjectiveHandler) DeleteObjective(w http.ResponseWriter, r *http.Request) {
	if err := h.objectiveService.Delete(r.Context(), r.PathValue("id"), confirmed(r)); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
