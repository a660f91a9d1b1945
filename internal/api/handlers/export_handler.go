package handlers

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/service"
)

type ExportHandler struct {
	exportService *service.ExportService
	logger        *logging.Logger
}

func NewExportHandler(exportService *service.ExportService, logger *logging.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

func (h *ExportHandler) ExportAll(w http.ResponseWriter, r *http.Request) {
	art, err := h.exportService.ExportAll(r.Context())
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeArtifact(w, art)
}

func (h *ExportHandler) ExportCategory(w http.ResponseWriter, r *http.Request) {
	category, err := service.ParseCategory(r.PathValue("category"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	art, err := h.exportService.ExportCategory(r.Context(), category)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeArtifact(w, art)
}

// Report serves /reports/{kind}.pdf and /reports/analytics.xlsx.
func (h *ExportHandler) Report(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	ext := path.Ext(file)
	kind := strings.TrimSuffix(file, ext)

	cfg, err := service.ParseReportConfig(kind, r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	var art service.Artifact
	switch {
	case ext == ".pdf":
		art, err = h.exportService.ReportPDF(r.Context(), cfg)
	case ext == ".xlsx" && cfg.Kind == service.ReportAnalytics:
		art, err = h.exportService.ReportWorkbook(r.Context(), cfg.Period)
	default:
		err = fmt.Errorf("%w: report %q", service.ErrInvalidKind, file)
	}
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeArtifact(w, art)
}
