package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/TWRT/direction-dashboard/internal/client"
	"github.com/TWRT/direction-dashboard/internal/client/mailto"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/repository"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repos      *repository.Repositories
	env        Env
	actions    *ActionService
	members    *MemberService
	emails     *EmailService
	meetings   *MeetingService
	objectives *ObjectiveService
	dashboard  *DashboardService
	exports    *ExportService
}

var fixedNow = time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

func testEnv(t *testing.T) Env {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	n := 0
	return Env{
		Now: func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		Location: loc,
	}
}

func newFixture(t *testing.T, composer client.MailComposer) *fixture {
	t.Helper()
	db, err := repository.InitDB(filepath.Join(t.TempDir(), "dashboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	if composer == nil {
		composer = mailto.NewMailtoClient()
	}
	logger := logging.Nop()
	repos := repository.NewRepositories(db, logger)
	env := testEnv(t)

	actions := NewActionService(repos.Actions, env)
	snapshots := &SnapshotReader{
		Actions:         repos.Actions,
		Members:         repos.Members,
		Emails:          repos.Emails,
		ManagerMeetings: repos.ManagerMeetings,
		TeamMeetings:    repos.TeamMeetings,
		Objectives:      repos.Objectives,
	}
	return &fixture{
		repos:      repos,
		env:        env,
		actions:    actions,
		members:    NewMemberService(repos.Members, composer, env, logger),
		emails:     NewEmailService(repos.Emails, actions, composer, "manager@example.com", env, logger),
		meetings:   NewMeetingService(repos, env),
		objectives: NewObjectiveService(repos.Objectives, repos.Members, env),
		dashboard:  NewDashboardService(snapshots),
		exports:    NewExportService(snapshots, "Direction_Test", env, logger, nil),
	}
}

type brokenComposer struct{}

func (brokenComposer) ComposeLink(client.MailMessage) (string, error) {
	return "", errors.New("no mail client")
}
