package handlers

import (
	"net/http"

	"github.com/TWRT/direction-dashboard/internal/form"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/service"
)

type MemberHandler struct {
	memberService *service.MemberService
	logger        *logging.Logger
}

func NewMemberHandler(memberService *service.MemberService, logger *logging.Logger) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		logger:        logger,
	}
}

func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.List(r.Context(), service.MemberFilter{Query: r.URL.Query().Get("q")})
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	fields, err := submit(r, form.NewMemberModal(), nil)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	member, err := h.memberService.Create(r.Context(), fields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	existing, err := h.memberService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	fields, err := submit(r, form.NewMemberModal(), &existing.MemberFields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	member, err := h.memberService.Update(r.Context(), existing.ID, fields)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.memberService.Delete(r.Context(), r.PathValue("id"), confirmed(r)); err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MemberHandler) ContactMember(w http.ResponseWriter, r *http.Request) {
	res, err := h.memberService.Contact(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
