package handlers

import (
	"net/http"

	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/service"
)

type DashboardHandler struct {
	dashboardService   *service.DashboardService
	preferencesService *service.PreferencesService
	logger             *logging.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, preferencesService *service.PreferencesService, logger *logging.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:   dashboardService,
		preferencesService: preferencesService,
		logger:             logger,
	}
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.preferencesService.Get(r.Context())
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// UpdatePreferences overlays the body on the stored preferences.
func (h *DashboardHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.preferencesService.Get(r.Context())
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	if err := decode(r, &prefs); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	saved, err := h.preferencesService.Update(r.Context(), prefs)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
