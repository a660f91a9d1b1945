package service

import (
	"context"

	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/TWRT/direction-dashboard/internal/stats"
)

// Summary is the counters row at the top of the dashboard.
type Summary struct {
	TotalActions      int `json:"total_actions"`
	LateActions       int `json:"late_actions"`
	DoneActions       int `json:"done_actions"`
	UnprocessedEmails int `json:"unprocessed_emails"`
	OpenTopics        int `json:"open_topics"`
	// AveragePerformance is nil when the team is empty.
	AveragePerformance *int `json:"average_performance"`
}

type DashboardService struct {
	snapshots *SnapshotReader
}

func NewDashboardService(snapshots *SnapshotReader) *DashboardService {
	return &DashboardService{snapshots: snapshots}
}

func (s *DashboardService) Summary(ctx context.Context) (Summary, error) {
	snap, err := s.snapshots.Read(ctx)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{
		TotalActions:      len(snap.Actions),
		LateActions:       stats.CountActions(snap.Actions, models.ActionLate),
		DoneActions:       stats.CountActions(snap.Actions, models.ActionDone),
		UnprocessedEmails: stats.CountUnprocessed(snap.Emails),
		OpenTopics:        stats.CountTopics(snap.Meetings(), models.TopicOpen),
	}
	if avg, ok := stats.AveragePerformance(snap.Members); ok {
		sum.AveragePerformance = &avg
	}
	return sum, nil
}
