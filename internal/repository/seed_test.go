package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInSample(t *testing.T) {
	s := SampleData()

	require.Len(t, s.Actions, 4)
	assert.Equal(t, models.ActionInProgress, s.Actions[0].Status)
	assert.Equal(t, 65, s.Actions[0].Progress)
	assert.Len(t, s.Members, 4)
	assert.Len(t, s.Emails, 3)
	assert.True(t, s.Emails[1].Processed)
	require.Len(t, s.ManagerMeetings, 2)
	assert.Equal(t, []string{"1", "3"}, s.ManagerMeetings[0].LinkedActionIDs)
	require.Len(t, s.TeamMeetings, 1)
	assert.Equal(t, models.MeetingTeam, s.TeamMeetings[0].Kind)
	require.Len(t, s.Objectives, 3)
	assert.Equal(t, models.Q2, s.Objectives[0].Quarter)
	assert.Len(t, s.Objectives[0].Milestones, 4)
}

func TestLoadSampleFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
members:
  - {id: "7", first_name: Ana, last_name: Costa, email: ana@example.com, role: Analyst}
`), 0o600))

	s, err := LoadSample(path)
	require.NoError(t, err)
	assert.Empty(t, s.Actions)
	require.Len(t, s.Members, 1)
	assert.Equal(t, "Ana Costa", s.Members[0].FullName())
}

func TestParseSampleReadsUnquotedIDsAsStrings(t *testing.T) {
	s, err := ParseSample([]byte(`
members:
  - {id: 7, first_name: Ana, last_name: Costa, email: ana@example.com, role: Analyst}
objectives:
  - {id: 12, title: Audit, member_id: 7, milestones: [Plan, Run]}
meetings_team:
  - {id: 3, title: Stand-up, linked_action_ids: [1, 2]}
`))
	require.NoError(t, err)
	require.Len(t, s.Members, 1)
	assert.Equal(t, "7", s.Members[0].ID)
	require.Len(t, s.Objectives, 1)
	assert.Equal(t, "12", s.Objectives[0].ID)
	assert.Equal(t, "7", s.Objectives[0].MemberID)
	assert.Equal(t, []string{"Plan", "Run"}, s.Objectives[0].Milestones)
	require.Len(t, s.TeamMeetings, 1)
	assert.Equal(t, []string{"1", "2"}, s.TeamMeetings[0].LinkedActionIDs)
}

func TestParseSampleRejectsBadYAML(t *testing.T) {
	_, err := ParseSample([]byte("actions: [unclosed"))
	assert.Error(t, err)
}
