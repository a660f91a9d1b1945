package service

import (
	"context"
	"fmt"

	"github.com/TWRT/direction-dashboard/internal/models"
)

// SnapshotReader reads every collection one after the other. There is no
// transaction across keys, so the result can be torn by concurrent writes.
type SnapshotReader struct {
	Actions         Store[models.Action]
	Members         Store[models.TeamMember]
	Emails          Store[models.Email]
	ManagerMeetings Store[models.MeetingTopic]
	TeamMeetings    Store[models.MeetingTopic]
	Objectives      Store[models.IndividualObjective]
}

func (r *SnapshotReader) Read(ctx context.Context) (models.Snapshot, error) {
	var (
		s   models.Snapshot
		err error
	)
	if s.Actions, err = r.Actions.All(ctx); err != nil {
		return s, fmt.Errorf("read actions: %w", err)
	}
	if s.Members, err = r.Members.All(ctx); err != nil {
		return s, fmt.Errorf("read members: %w", err)
	}
	if s.Emails, err = r.Emails.All(ctx); err != nil {
		return s, fmt.Errorf("read emails: %w", err)
	}
	if s.ManagerMeetings, err = r.ManagerMeetings.All(ctx); err != nil {
		return s, fmt.Errorf("read manager meetings: %w", err)
	}
	if s.TeamMeetings, err = r.TeamMeetings.All(ctx); err != nil {
		return s, fmt.Errorf("read team meetings: %w", err)
	}
	if s.Objectives, err = r.Objectives.All(ctx); err != nil {
		return s, fmt.Errorf("read objectives: %w", err)
	}
	return s, nil
}
