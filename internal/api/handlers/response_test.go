package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TWRT/direction-dashboard/internal/form"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/TWRT/direction-dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &form.ValidationError{Missing: []string{"title"}}, http.StatusBadRequest, "missing required fields: title"},
		{"not found", fmt.Errorf("actions x: %w", service.ErrNotFound), http.StatusNotFound, "actions x: record not found"},
		{"unconfirmed", service.ErrConfirmationRequired, http.StatusConflict, "confirmation required"},
		{"bad kind", fmt.Errorf("%w: meeting kind %q", service.ErrInvalidKind, "board"), http.StatusBadRequest, `invalid kind: meeting kind "board"`},
		{"export", fmt.Errorf("%w: %w", service.ErrExportFailed, errors.New("disk full")), http.StatusInternalServerError, "error generating the file"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)

			writeError(rec, logging.Nop(), req, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.message, body["error"])
		})
	}
}

func TestSubmitOverlaysBodyOnExisting(t *testing.T) {
	existing := models.ActionFields{
		Title: "Keep", Description: "d", Owner: "o", DueDate: "2024-02-01",
		Status: models.ActionToDo, Priority: models.PriorityLow,
	}
	req := httptest.NewRequest(http.MethodPut, "/actions/1", strings.NewReader(`{"priority":"High"}`))
	modal := form.NewActionModal()

	fields, err := submit(req, modal, &existing)
	require.NoError(t, err)
	assert.Equal(t, "Keep", fields.Title)
	assert.Equal(t, models.PriorityHigh, fields.Priority)
	assert.Equal(t, models.PriorityLow, existing.Priority)
	assert.Equal(t, form.Closed, modal.State())
}

func TestSubmitRejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(`{"title":`))
	modal := form.NewActionModal()

	_, err := submit(req, modal, nil)
	assert.ErrorIs(t, err, errInvalidBody)
	assert.Equal(t, form.Closed, modal.State())
}
