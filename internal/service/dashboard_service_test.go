package service

import (
	"context"
	"testing"

	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummaryEmptyTeam(t *testing.T) {
	f := newFixture(t, nil)

	sum, err := f.dashboard.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.TotalActions)
	assert.Nil(t, sum.AveragePerformance)
}

func TestDashboardSummaryCounts(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, err := f.actions.Create(ctx, actionFields("A", models.ActionLate))
	require.NoError(t, err)
	_, err = f.actions.Create(ctx, actionFields("B", models.ActionDone))
	require.NoError(t, err)
	_, err = f.members.Create(ctx, memberFields("Marie", "Dubois", 4, 2))
	require.NoError(t, err)
	_, err = f.members.Create(ctx, memberFields("Paul", "Martin", 4, 4))
	require.NoError(t, err)
	_, err = f.meetings.Create(ctx, models.MeetingTeam, models.MeetingTopicFields{Title: "T", Status: models.TopicOpen})
	require.NoError(t, err)

	sum, err := f.dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalActions)
	assert.Equal(t, 1, sum.LateActions)
	assert.Equal(t, 1, sum.DoneActions)
	assert.Equal(t, 1, sum.OpenTopics)
	require.NotNil(t, sum.AveragePerformance)
	assert.Equal(t, 75, *sum.AveragePerformance)
}
