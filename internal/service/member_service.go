package service

import (
	"context"
	"fmt"

	"github.com/TWRT/direction-dashboard/internal/client"
	"github.com/TWRT/direction-dashboard/internal/filter"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/TWRT/direction-dashboard/internal/stats"
)

type MemberFilter struct {
	Query string
}

// MemberView is a member with its derived performance.
type MemberView struct {
	models.TeamMember
	Performance int `json:"performance"`
}

// ContactResult tells the caller what to open. When Fallback is set the mail
// client could not be used and Address should be copied instead.
type ContactResult struct {
	Link     string `json:"link,omitempty"`
	Address  string `json:"address"`
	Fallback bool   `json:"fallback"`
	Message  string `json:"message,omitempty"`
}

type MemberService struct {
	store    Store[models.TeamMember]
	composer client.MailComposer
	env      Env
	logger   *logging.Logger
}

func NewMemberService(store Store[models.TeamMember], composer client.MailComposer, env Env, logger *logging.Logger) *MemberService {
	return &MemberService{store: store, composer: composer, env: env, logger: logger}
}

func view(m models.TeamMember) MemberView {
	return MemberView{TeamMember: m, Performance: stats.Performance(m.MemberFields)}
}

// List searches the full name and role.
func (s *MemberService) List(ctx context.Context, f MemberFilter) ([]MemberView, error) {
	members, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	matched := filter.Apply(members, f.Query, func(m models.TeamMember) []string {
		return []string{m.FullName(), m.Role}
	})
	out := make([]MemberView, 0, len(matched))
	for _, m := range matched {
		out = append(out, view(m))
	}
	return out, nil
}

func (s *MemberService) Get(ctx context.Context, id string) (MemberView, error) {
	m, err := s.store.Get(ctx, id)
	if err != nil {
		return MemberView{}, err
	}
	return view(m), nil
}

func (s *MemberService) Create(ctx context.Context, fields models.MemberFields) (MemberView, error) {
	m := models.TeamMember{ID: s.env.NewID(), MemberFields: fields}
	if err := s.store.Append(ctx, m); err != nil {
		return MemberView{}, err
	}
	return view(m), nil
}

func (s *MemberService) Update(ctx context.Context, id string, fields models.MemberFields) (MemberView, error) {
	m := models.TeamMember{ID: id, MemberFields: fields}
	if err := s.store.Replace(ctx, m); err != nil {
		return MemberView{}, err
	}
	return view(m), nil
}

func (s *MemberService) Delete(ctx context.Context, id string, confirmed bool) error {
	return confirmDelete(ctx, s.store, id, confirmed)
}

// Contact prepares a greeting for the member's mail client.
func (s *MemberService) Contact(ctx context.Context, id string) (ContactResult, error) {
	m, err := s.store.Get(ctx, id)
	if err != nil {
		return ContactResult{}, err
	}
	msg := client.MailMessage{
		To:      m.Email,
		Subject: "Contact - " + m.FullName(),
		Body:    fmt.Sprintf("Hello %s,\n\nI hope you are doing well.\n\nBest regards", m.FirstName),
	}
	return compose(s.composer, s.logger, msg), nil
}

func compose(composer client.MailComposer, logger *logging.Logger, msg client.MailMessage) ContactResult {
	link, err := composer.ComposeLink(msg)
	if err != nil {
		logger.Warn("mail client unavailable, falling back to address copy", "to", msg.To, "error", err)
		return ContactResult{
			Address:  msg.To,
			Fallback: true,
			Message:  "Email address copied to the clipboard: " + msg.To,
		}
	}
	return ContactResult{Link: link, Address: msg.To}
}
