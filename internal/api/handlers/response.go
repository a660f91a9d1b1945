package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/TWRT/direction-dashboard/internal/form"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/service"
)

var errInvalidBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to status codes. Server-side failures are
// logged; their cause is never sent to the client.
func writeError(w http.ResponseWriter, logger *logging.Logger, r *http.Request, err error) {
	status, message := http.StatusInternalServerError, "internal error"

	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		status, message = http.StatusBadRequest, verr.Error()
	case errors.Is(err, errInvalidBody), errors.Is(err, service.ErrInvalidKind):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrConfirmationRequired):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrExportFailed):
		message = service.ErrExportFailed.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": message})
}

// decode overlays the JSON body onto dst. An empty body leaves dst untouched.
func decode(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	return nil
}

// submit runs one modal round trip: open on existing (nil for create mode),
// overlay the request body, validate. The modal is closed either way.
func submit[F any](r *http.Request, modal *form.Modal[F], existing *F) (F, error) {
	var zero F
	modal.Open(existing)
	if err := decode(r, modal.Fields()); err != nil {
		modal.Cancel()
		return zero, err
	}
	fields, err := modal.Submit()
	if err != nil {
		modal.Cancel()
		return zero, err
	}
	modal.Close()
	return fields, nil
}

func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}

func writeArtifact(w http.ResponseWriter, art service.Artifact) {
	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(art.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(art.Data)
}
