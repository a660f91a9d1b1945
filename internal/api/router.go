package api

import (
	"database/sql"
	"net/http"

	"github.com/TWRT/direction-dashboard/internal/api/handlers"
	"github.com/TWRT/direction-dashboard/internal/client/mailto"
	"github.com/TWRT/direction-dashboard/internal/config"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/metrics"
	"github.com/TWRT/direction-dashboard/internal/repository"
	"github.com/TWRT/direction-dashboard/internal/service"
)

// Services bundles everything the HTTP surface and the CLI share.
type Services struct {
	Actions     *service.ActionService
	Members     *service.MemberService
	Emails      *service.EmailService
	Meetings    *service.MeetingService
	Objectives  *service.ObjectiveService
	Dashboard   *service.DashboardService
	Preferences *service.PreferencesService
	Exports     *service.ExportService
}

func NewServices(repos *repository.Repositories, cfg config.Config, logger *logging.Logger, m *metrics.Metrics) *Services {
	env := service.DefaultEnv(cfg.Location)
	composer := mailto.NewMailtoClient()

	snapshots := &service.SnapshotReader{
		Actions:         repos.Actions,
		Members:         repos.Members,
		Emails:          repos.Emails,
		ManagerMeetings: repos.ManagerMeetings,
		TeamMeetings:    repos.TeamMeetings,
		Objectives:      repos.Objectives,
	}

	var observer service.ExportObserver
	if m != nil {
		observer = m
	}

	actions := service.NewActionService(repos.Actions, env)
	return &Services{
		Actions:     actions,
		Members:     service.NewMemberService(repos.Members, composer, env, logger),
		Emails:      service.NewEmailService(repos.Emails, actions, composer, cfg.ManagerEmail, env, logger),
		Meetings:    service.NewMeetingService(repos, env),
		Objectives:  service.NewObjectiveService(repos.Objectives, repos.Members, env),
		Dashboard:   service.NewDashboardService(snapshots),
		Preferences: service.NewPreferencesService(repos.Preferences),
		Exports:     service.NewExportService(snapshots, cfg.AppName, env, logger, observer),
	}
}

func SetupRouter(db *sql.DB, cfg config.Config, logger *logging.Logger, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	repos := repository.NewRepositories(db, logger)
	services := NewServices(repos, cfg, logger, m)

	actionHandler := handlers.NewActionHandler(services.Actions, logger)
	memberHandler := handlers.NewMemberHandler(services.Members, logger)
	emailHandler := handlers.NewEmailHandler(services.Emails, logger)
	meetingHandler := handlers.NewMeetingHandler(services.Meetings, logger)
	objectiveHandler := handlers.NewObjectiveHandler(services.Objectives, logger)
	dashboardHandler := handlers.NewDashboardHandler(services.Dashboard, services.Preferences, logger)
	exportHandler := handlers.NewExportHandler(services.Exports, logger)

	mux.HandleFunc("GET /actions", actionHandler.ListActions)
	mux.HandleFunc("POST /actions", actionHandler.CreateAction)
	mux.HandleFunc("GET /actions/{id}", actionHandler.GetAction)
	mux.HandleFunc("PUT /actions/{id}", actionHandler.UpdateAction)
	mux.HandleFunc("DELETE /actions/{id}", actionHandler.DeleteAction)

	mux.HandleFunc("GET /members", memberHandler.ListMembers)
	mux.HandleFunc("POST /members", memberHandler.CreateMember)
	mux.HandleFunc("GET /members/{id}", memberHandler.GetMember)
	mux.HandleFunc("PUT /members/{id}", memberHandler.UpdateMember)
	mux.HandleFunc("DELETE /members/{id}", memberHandler.DeleteMember)
	mux.HandleFunc("GET /members/{id}/contact", memberHandler.ContactMember)

	mux.HandleFunc("GET /emails", emailHandler.ListEmails)
	mux.HandleFunc("POST /emails", emailHandler.SendEmail)
	mux.HandleFunc("GET /emails/{id}", emailHandler.GetEmail)
	mux.HandleFunc("DELETE /emails/{id}", emailHandler.DeleteEmail)
	mux.HandleFunc("POST /emails/{id}/processed", emailHandler.MarkProcessed)
	mux.HandleFunc("POST /emails/{id}/reply", emailHandler.ReplyEmail)
	mux.HandleFunc("POST /emails/{id}/action", emailHandler.CreateAction)
	mux.HandleFunc("GET /emails/{id}/compose", emailHandler.ComposeReply)

	mux.HandleFunc("GET /meetings/{kind}", meetingHandler.ListTopics)
	mux.HandleFunc("POST /meetings/{kind}", meetingHandler.CreateTopic)
	mux.HandleFunc("GET /meetings/{kind}/{id}", meetingHandler.GetTopic)
	mux.HandleFunc("PUT /meetings/{kind}/{id}", meetingHandler.UpdateTopic)
	mux.HandleFunc("DELETE /meetings/{kind}/{id}", meetingHandler.DeleteTopic)

	mux.HandleFunc("GET /objectives", objectiveHandler.ListObjectives)
	mux.HandleFunc("POST /objectives", objectiveHandler.CreateObjective)
	mux.HandleFunc("GET /objectives/{id}", objectiveHandler.GetObjective)
	mux.HandleFunc("PUT /objectives/{id}", objectiveHandler.UpdateObjective)
	mux.HandleFunc("DELETE /objectives/{id}", objectiveHandler.DeleteObjective)

	mux.HandleFunc("GET /dashboard", dashboardHandler.GetSummary)
	mux.HandleFunc("GET /preferences", dashboardHandler.GetPreferences)
	mux.HandleFunc("PUT /preferences", dashboardHandler.UpdatePreferences)

	mux.HandleFunc("GET /export", exportHandler.ExportAll)
	mux.HandleFunc("GET /export/{category}", exportHandler.ExportCategory)
	mux.HandleFunc("GET /reports/{file}", exportHandler.Report)

	if m == nil {
		m = metrics.New()
	}
	mux.Handle("GET /metrics", m.Handler())

	return observe(mux, logger, m)
}
