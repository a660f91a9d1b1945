package handlers

import (
	"fmt"
	"net/http"

	"github.com/TWRT/direction-dashboard/internal/form"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/service"
)

type EmailHandler struct {
	emailService *service.EmailService
	logger       *logging.Logger
}

func NewEmailHandler(emailService *service.EmailService, logger *logging.Logger) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
		logger:       logger,
	}
}

func (h *EmailHandler) ListEmails(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := service.EmailFilter{Query: q.Get("q")}
	switch q.Get("processed") {
	case "":
	case "processed":
		processed := true
		f.Processed = &processed
	case "unprocessed":
		processed := false
		f.Processed = &processed
	default:
		writeError(w, h.logger, r, fmt.Errorf("%w: processed must be processed or unprocessed", errInvalidBody))
		return
	}

	emails, err := h.emailService.List(r.Context(), f)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, emails)
}

func (h *EmailHandler) GetEmail(w http.ResponseWriter, r *http.Request) {
	email, err := h.emailService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, email)
}

// SendEmail records a message written in the compose dialog.
func (h *EmailHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	msg, err := submit(r, form.NewComposeModal(), nil)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	email, err := h.emailService.Send(r.Context(), msg)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, email)
}

func (h *EmailHandler) MarkProcessed(w http.ResponseWriter, r *http.Request) {
	email, err := h.emailService.MarkProcessed(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, email)
}

func (h *EmailHandler) ReplyEmail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.emailService.Get(r.Context(), id); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	reply, err := submit(r, form.NewReplyModal(), nil)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	email, err := h.emailService.Reply(r.Context(), id, reply)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, email)
}

func (h *EmailHandler) ComposeReply(w http.ResponseWriter, r *http.Request) {
	res, err := h.emailService.ReplyLink(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *EmailHandler) CreateAction(w http.ResponseWriter, r *http.Request) {
	action, email, err := h.emailService.CreateAction(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"action": action,
		"email":  email,
	})
}

func (h *EmailHandler) DeleteEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.emailService.Delete(r.Context(), r.PathValue("id"), confirmed(r)); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
