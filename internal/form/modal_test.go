package form

import (
	"testing"

	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionModalCreateUsesDefaults(t *testing.T) {
	m := NewActionModal()
	assert.Equal(t, Closed, m.State())
	assert.Nil(t, m.Fields())

	m.Open(nil)
	require.Equal(t, Open, m.State())
	assert.Equal(t, Create, m.Mode())

	f := m.Fields()
	require.NotNil(t, f)
	assert.Equal(t, models.ActionToDo, f.Status)
	assert.Equal(t, models.PriorityMedium, f.Priority)
	assert.Equal(t, 0, f.Progress)
	assert.Empty(t, f.Title)
}

func TestActionModalRequiredFieldsBlockSubmit(t *testing.T) {
	m := NewActionModal()
	m.Open(nil)
	m.Fields().Title = "Test"
	m.Fields().Owner = "   "

	_, err := m.Submit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"description", "due_date", "owner"}, verr.Missing)
	assert.Equal(t, Open, m.State(), "a blocked submission keeps the form open")
}

func TestActionModalRejectsUnknownOption(t *testing.T) {
	m := NewActionModal()
	m.Open(nil)
	f := m.Fields()
	f.Title, f.Description, f.Owner, f.DueDate = "t", "d", "o", "2024-02-01"
	f.Status = "Archived"

	_, err := m.Submit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"status"}, verr.Invalid)
	assert.Contains(t, verr.Error(), "invalid values: status")
}

func TestActionModalSubmitThenClose(t *testing.T) {
	m := NewActionModal()
	m.Open(nil)
	f := m.Fields()
	f.Title, f.Description, f.Owner, f.DueDate = "Test", "desc", "Marie", "2024-02-01"
	f.Priority = models.PriorityHigh
	f.Progress = 140

	got, err := m.Submit()
	require.NoError(t, err)
	assert.Equal(t, Submitted, m.State())
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, models.ActionToDo, got.Status)

	m.Close()
	assert.Equal(t, Closed, m.State())
	assert.Nil(t, m.Fields())

	_, err = m.Submit()
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestEditModePrefillsAndCancelDiscards(t *testing.T) {
	existing := models.ObjectiveFields{
		Title:       "Certification",
		Description: "cloud",
		MemberID:    "1",
		MemberName:  "Marie Dubois",
		DueDate:     "2024-06-30",
		Status:      models.ObjectiveInProgress,
		Priority:    models.PriorityHigh,
		Type:        models.ObjectiveDevelopment,
		Quarter:     models.Q2,
		Milestones:  []string{"labs"},
	}

	m := NewObjectiveModal()
	m.Open(&existing)
	assert.Equal(t, Edit, m.Mode())
	assert.Equal(t, existing, *m.Fields())

	m.Fields().Milestones[0] = "changed"
	m.Fields().Title = "changed"
	m.Cancel()

	assert.Equal(t, Closed, m.State())
	assert.Equal(t, "labs", existing.Milestones[0], "editing the draft must not alias the record")
	assert.Equal(t, "Certification", existing.Title)
}

func TestObjectiveModalDefaults(t *testing.T) {
	m := NewObjectiveModal()
	m.Open(nil)
	f := m.Fields()
	assert.Equal(t, models.ObjectiveNotStarted, f.Status)
	assert.Equal(t, models.ObjectiveOperational, f.Type)
	assert.Equal(t, models.Q1, f.Quarter)
	assert.Equal(t, models.PriorityMedium, f.Priority)
	assert.NotNil(t, f.Milestones)
}

func TestMeetingTopicModalKindComesFromRoute(t *testing.T) {
	m := NewMeetingTopicModal(models.MeetingManager)
	m.Open(nil)
	f := m.Fields()
	assert.Equal(t, "Manager", f.Owner)
	assert.Equal(t, models.TopicOpen, f.Status)

	f.Title, f.Description, f.MeetingDateTime = "Budget", "Q1", "2024-01-15T10:00"
	f.Kind = models.MeetingTeam
	f.LinkedActionIDs = nil

	got, err := m.Submit()
	require.NoError(t, err)
	assert.Equal(t, models.MeetingManager, got.Kind)
	assert.NotNil(t, got.LinkedActionIDs)

	team := NewMeetingTopicModal(models.MeetingTeam)
	team.Open(nil)
	assert.Empty(t, team.Fields().Owner)
}

func TestMemberModalHasNoCrossFieldValidation(t *testing.T) {
	m := NewMemberModal()
	m.Open(nil)
	f := m.Fields()
	f.FirstName, f.LastName, f.Email, f.Role = "Jean", "Martin", "jean@example.com", "Lead"
	f.AssignedCount = 2
	f.CompletedCount = 5

	got, err := m.Submit()
	require.NoError(t, err)
	assert.Equal(t, 5, got.CompletedCount)
}

func TestReplyModalNeedsBody(t *testing.T) {
	m := NewReplyModal()
	m.Open(nil)
	_, err := m.Submit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"body"}, verr.Missing)
}
