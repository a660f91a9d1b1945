package form

import (
	"slices"

	"github.com/TWRT/direction-dashboard/internal/models"
)

func NewActionModal() *Modal[models.ActionFields] {
	return NewModal(Schema[models.ActionFields]{
		Defaults: func() models.ActionFields {
			return models.ActionFields{
				Status:   models.ActionToDo,
				Priority: models.PriorityMedium,
			}
		},
		Required: func(f *models.ActionFields) map[string]string {
			return map[string]string{
				"title":       f.Title,
				"description": f.Description,
				"owner":       f.Owner,
				"due_date":    f.DueDate,
			}
		},
		Check: func(f *models.ActionFields) []string {
			var bad []string
			bad = invalid("status", models.OneOf(f.Status, models.ActionStatuses), bad)
			bad = invalid("priority", models.OneOf(f.Priority, models.Priorities), bad)
			return bad
		},
		Normalize: func(f *models.ActionFields) {
			f.Progress = clampPercent(f.Progress)
		},
	})
}

func NewMemberModal() *Modal[models.MemberFields] {
	return NewModal(Schema[models.MemberFields]{
		Defaults: func() models.MemberFields { return models.MemberFields{} },
		Required: func(f *models.MemberFields) map[string]string {
			return map[string]string{
				"first_name": f.FirstName,
				"last_name":  f.LastName,
				"email":      f.Email,
				"role":       f.Role,
			}
		},
		Normalize: func(f *models.MemberFields) {
			f.AssignedCount = max(f.AssignedCount, 0)
			f.CompletedCount = max(f.CompletedCount, 0)
		},
	})
}

// ComposeFields is what the compose dialog collects.
type ComposeFields struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

func NewComposeModal() *Modal[ComposeFields] {
	return NewModal(Schema[ComposeFields]{
		Defaults: func() ComposeFields { return ComposeFields{} },
		Required: func(f *ComposeFields) map[string]string {
			return map[string]string{
				"recipient": f.Recipient,
				"subject":   f.Subject,
				"body":      f.Body,
			}
		},
	})
}

// ReplyFields is what the reply dialog collects; recipient and subject come
// from the original message.
type ReplyFields struct {
	Body string `json:"body"`
}

func NewReplyModal() *Modal[ReplyFields] {
	return NewModal(Schema[ReplyFields]{
		Defaults: func() ReplyFields { return ReplyFields{} },
		Required: func(f *ReplyFields) map[string]string {
			return map[string]string{"body": f.Body}
		},
	})
}

func NewMeetingTopicModal(kind models.MeetingKind) *Modal[models.MeetingTopicFields] {
	return NewModal(Schema[models.MeetingTopicFields]{
		Defaults: func() models.MeetingTopicFields {
			f := models.MeetingTopicFields{
				Status:          models.TopicOpen,
				Kind:            kind,
				LinkedActionIDs: []string{},
			}
			if kind == models.MeetingManager {
				f.Owner = "Manager"
			}
			return f
		},
		Required: func(f *models.MeetingTopicFields) map[string]string {
			return map[string]string{
				"title":             f.Title,
				"description":       f.Description,
				"owner":             f.Owner,
				"meeting_date_time": f.MeetingDateTime,
			}
		},
		Check: func(f *models.MeetingTopicFields) []string {
			return invalid("status", models.OneOf(f.Status, models.TopicStatuses), nil)
		},
		Normalize: func(f *models.MeetingTopicFields) {
			// The route decides the kind, never the body.
			f.Kind = kind
			if f.LinkedActionIDs == nil {
				f.LinkedActionIDs = []string{}
			}
		},
		Copy: func(f models.MeetingTopicFields) models.MeetingTopicFields {
			f.LinkedActionIDs = slices.Clone(f.LinkedActionIDs)
			return f
		},
	})
}

func NewObjectiveModal() *Modal[models.ObjectiveFields] {
	return NewModal(Schema[models.ObjectiveFields]{
		Defaults: func() models.ObjectiveFields {
			return models.ObjectiveFields{
				Status:     models.ObjectiveNotStarted,
				Priority:   models.PriorityMedium,
				Type:       models.ObjectiveOperational,
				Quarter:    models.Q1,
				Milestones: []string{},
			}
		},
		Required: func(f *models.ObjectiveFields) map[string]string {
			return map[string]string{
				"title":       f.Title,
				"description": f.Description,
				"member_id":   f.MemberID,
				"due_date":    f.DueDate,
			}
		},
		Check: func(f *models.ObjectiveFields) []string {
			var bad []string
			bad = invalid("status", models.OneOf(f.Status, models.ObjectiveStatuses), bad)
			bad = invalid("priority", models.OneOf(f.Priority, models.Priorities), bad)
			bad = invalid("type", models.OneOf(f.Type, models.ObjectiveTypes), bad)
			bad = invalid("quarter", models.OneOf(f.Quarter, models.Quarters), bad)
			return bad
		},
		Normalize: func(f *models.ObjectiveFields) {
			f.Progress = clampPercent(f.Progress)
			if f.Milestones == nil {
				f.Milestones = []string{}
			}
		},
		Copy: func(f models.ObjectiveFields) models.ObjectiveFields {
			f.Milestones = slices.Clone(f.Milestones)
			return f
		},
	})
}
