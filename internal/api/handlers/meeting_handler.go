package handlers

import (
	"net/http"

	"github.com/TWRT/direction-dashboard/internal/form"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/TWRT/direction-dashboard/internal/service"
)

// MeetingHandler serves both topic lists; {kind} is manager or team.
type MeetingHandler struct {
	meetingService *service.MeetingService
	logger         *logging.Logger
}

func NewMeetingHandler(meetingService *service.MeetingService, logger *logging.Logger) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
		logger:         logger,
	}
}

func (h *MeetingHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	kind, err := service.ParseMeetingKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	q := r.URL.Query()
	topics, err := h.meetingService.List(r.Context(), kind, service.TopicFilter{
		Query:  q.Get("q"),
		Status: models.TopicStatus(q.Get("status")),
	})
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, topics)
}

func (h *MeetingHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	kind, err := service.ParseMeetingKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	topic, err := h.meetingService.Get(r.Context(), kind, r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, topic)
}

func (h *MeetingHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	kind, err := service.ParseMeetingKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	fields, err := submit(r, form.NewMeetingTopicModal(kind), nil)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	topic, err := h.meetingService.Create(r.Context(), kind, fields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, topic)
}

func (h *MeetingHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	kind, err := service.ParseMeetingKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	existing, err := h.meetingService.Get(r.Context(), kind, r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	fields, err := submit(r, form.NewMeetingTopicModal(kind), &existing.MeetingTopicFields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	topic, err := h.meetingService.Update(r.Context(), kind, existing.ID, fields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, topic)
}

func (h *MeetingHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	kind, err := service.ParseMeetingKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	if err := h.meetingService.Delete(r.Context(), kind, r.PathValue("id"), confirmed(r)); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
