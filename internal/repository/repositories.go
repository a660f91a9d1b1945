package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/models"
)

// Repositories groups every collection backed by one KV store so all
// services observe the same source of truth.
type Repositories struct {
	Store           *KVStore
	Actions         *Collection[models.Action]
	Members         *Collection[models.TeamMember]
	Emails          *Collection[models.Email]
	ManagerMeetings *Collection[models.MeetingTopic]
	TeamMeetings    *Collection[models.MeetingTopic]
	Objectives      *Collection[models.IndividualObjective]
	Preferences     *Document[models.Preferences]
}

func NewRepositories(db *sql.DB, logger *logging.Logger) *Repositories {
	store := NewKVStore(db)
	return &Repositories{
		Store:           store,
		Actions:         NewCollection[models.Action](store, KeyActions, logger),
		Members:         NewCollection[models.TeamMember](store, KeyMembers, logger),
		Emails:          NewCollection[models.Email](store, KeyEmails, logger),
		ManagerMeetings: NewCollection[models.MeetingTopic](store, KeyManagerMeetings, logger),
		TeamMeetings:    NewCollection[models.MeetingTopic](store, KeyTeamMeetings, logger),
		Objectives:      NewCollection[models.IndividualObjective](store, KeyObjectives, logger),
		Preferences:     NewDocument(store, KeyPreferences, models.DefaultPreferences, logger),
	}
}

// Meetings returns the collection holding topics of the given kind.
func (r *Repositories) Meetings(kind models.MeetingKind) (*Collection[models.MeetingTopic], error) {
	switch kind {
	case models.MeetingManager:
		return r.ManagerMeetings, nil
	case models.MeetingTeam:
		return r.TeamMeetings, nil
	}
	return nil, fmt.Errorf("%w: meeting kind %q", ErrInvalidKind, kind)
}

// Seed writes data for every collection that was never written. Collections
// the user already touched, even emptied ones, are left alone.
func (r *Repositories) Seed(ctx context.Context, data Sample) ([]string, error) {
	var seeded []string

	steps := []struct {
		key  string
		seed func() (bool, error)
	}{
		{KeyActions, func() (bool, error) { return r.Actions.SeedIfAbsent(ctx, data.Actions) }},
		{KeyMembers, func() (bool, error) { return r.Members.SeedIfAbsent(ctx, data.Members) }},
		{KeyEmails, func() (bool, error) { return r.Emails.SeedIfAbsent(ctx, data.Emails) }},
		{KeyManagerMeetings, func() (bool, error) { return r.ManagerMeetings.SeedIfAbsent(ctx, data.ManagerMeetings) }},
		{KeyTeamMeetings, func() (bool, error) { return r.TeamMeetings.SeedIfAbsent(ctx, data.TeamMeetings) }},
		{KeyObjectives, func() (bool, error) { return r.Objectives.SeedIfAbsent(ctx, data.Objectives) }},
	}
	for _, step := range steps {
		ok, err := step.seed()
		if err != nil {
			return seeded, fmt.Errorf("seed %s: %w", step.key, err)
		}
		if ok {
			seeded = append(seeded, step.key)
		}
	}
	return seeded, nil
}
