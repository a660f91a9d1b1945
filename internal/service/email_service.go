package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TWRT/direction-dashboard/internal/client"
	"github.com/TWRT/direction-dashboard/internal/datefmt"
	"github.com/TWRT/direction-dashboard/internal/filter"
	"github.com/TWRT/direction-dashboard/internal/form"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/models"
)

type EmailFilter struct {
	Query string
	// Processed narrows to processed (true) or unprocessed (false) emails.
	Processed *bool
}

// actionLeadTime is the due date offset given to actions raised from an email.
const actionLeadTime = 7 * 24 * time.Hour

type EmailService struct {
	store    Store[models.Email]
	actions  *ActionService
	composer client.MailComposer
	manager  string
	env      Env
	logger   *logging.Logger
}

func NewEmailService(
	store Store[models.Email],
	actions *ActionService,
	composer client.MailComposer,
	managerAddress string,
	env Env,
	logger *logging.Logger,
) *EmailService {
	return &EmailService{
		store:    store,
		actions:  actions,
		composer: composer,
		manager:  managerAddress,
		env:      env,
		logger:   logger,
	}
}

// List searches subject and sender.
func (s *EmailService) List(ctx context.Context, f EmailFilter) ([]models.Email, error) {
	emails, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	var processed filter.Predicate[models.Email]
	if f.Processed != nil {
		want := *f.Processed
		processed = func(e models.Email) bool { return e.Processed == want }
	}
	return filter.Apply(emails, f.Query,
		func(e models.Email) []string { return []string{e.Subject, e.Sender} },
		processed,
	), nil
}

func (s *EmailService) Get(ctx context.Context, id string) (models.Email, error) {
	return s.store.Get(ctx, id)
}

// MarkProcessed flips the processed flag of one email only.
func (s *EmailService) MarkProcessed(ctx context.Context, id string) (models.Email, error) {
	return s.store.Update(ctx, id, func(e *models.Email) { e.Processed = true })
}

// Send records an outgoing message. Nothing is transmitted.
func (s *EmailService) Send(ctx context.Context, msg form.ComposeFields) (models.Email, error) {
	email := s.outgoing(msg.Recipient, msg.Subject, msg.Body)
	if err := s.store.Prepend(ctx, email); err != nil {
		return models.Email{}, err
	}
	return email, nil
}

// Reply records an answer to the sender of the email with the given id.
func (s *EmailService) Reply(ctx context.Context, id string, reply form.ReplyFields) (models.Email, error) {
	original, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Email{}, err
	}
	email := s.outgoing(original.Sender, "Re: "+original.Subject, reply.Body)
	if err := s.store.Prepend(ctx, email); err != nil {
		return models.Email{}, err
	}
	return email, nil
}

// ReplyLink prepares the reply for the host mail client, quoting the original.
func (s *EmailService) ReplyLink(ctx context.Context, id string) (ContactResult, error) {
	original, err := s.store.Get(ctx, id)
	if err != nil {
		return ContactResult{}, err
	}
	body := fmt.Sprintf("\n\n--- Original message ---\nFrom: %s\nSubject: %s\nDate: %s\n\n%s",
		original.Sender,
		original.Subject,
		datefmt.DateTime(original.ReceivedDate, s.env.Location),
		original.Body,
	)
	return compose(s.composer, s.logger, client.MailMessage{
		To:      original.Sender,
		Subject: "Re: " + original.Subject,
		Body:    body,
	}), nil
}

// CreateAction raises an action from an email, links the two and marks the
// email processed.
func (s *EmailService) CreateAction(ctx context.Context, id string) (models.Action, models.Email, error) {
	email, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Action{}, models.Email{}, err
	}

	action, err := s.actions.Create(ctx, models.ActionFields{
		Title:       "Action: " + email.Subject,
		Description: fmt.Sprintf("Action created from the email of %s:\n\n%s", email.Sender, email.Body),
		Owner:       "Manager",
		Status:      models.ActionToDo,
		Priority:    models.PriorityMedium,
		DueDate:     datefmt.ISODate(s.env.now().Add(actionLeadTime)),
		Origin:      "Email from " + email.Sender,
	})
	if err != nil {
		return models.Action{}, models.Email{}, fmt.Errorf("create action: %w", err)
	}

	email, err = s.store.Update(ctx, id, func(e *models.Email) {
		e.Processed = true
		e.LinkedActionID = action.ID
	})
	if err != nil {
		return action, models.Email{}, fmt.Errorf("mark processed: %w", err)
	}
	return action, email, nil
}

func (s *EmailService) Delete(ctx context.Context, id string, confirmed bool) error {
	return confirmDelete(ctx, s.store, id, confirmed)
}

func (s *EmailService) outgoing(to, subject, body string) models.Email {
	return models.Email{
		ID: s.env.NewID(),
		EmailFields: models.EmailFields{
			Sender:       s.manager,
			Recipient:    to,
			Subject:      subject,
			Body:         body,
			ReceivedDate: s.env.now().Format(time.RFC3339),
			Processed:    true,
		},
	}
}
