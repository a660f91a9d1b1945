package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/TWRT/direction-dashboard/internal/export"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/TWRT/direction-dashboard/internal/stats"
)

// Category selects a single-sheet workbook.
type Category string

const (
	CategoryActions    Category = "actions"
	CategoryMembers    Category = "members"
	CategoryEmails     Category = "emails"
	CategoryMeetings   Category = "meetings"
	CategoryObjectives Category = "objectives"
)

var filePrefixes = map[Category]string{
	CategoryActions:    "Actions",
	CategoryMembers:    "Members",
	CategoryEmails:     "Emails",
	CategoryMeetings:   "MeetingTopics",
	CategoryObjectives: "Objectives",
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := filePrefixes[c]; !ok {
		return "", fmt.Errorf("%w: export category %q", ErrInvalidKind, s)
	}
	return c, nil
}

type ReportKind string

const (
	ReportAnalytics ReportKind = "analytics"
	ReportActions   ReportKind = "actions"
	ReportTeam      ReportKind = "team"
	ReportMeetings  ReportKind = "meetings"
)

type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

var periodLabels = map[Period]string{
	PeriodWeek:    "This week",
	PeriodMonth:   "This month",
	PeriodQuarter: "This quarter",
	PeriodYear:    "This year",
}

// ReportConfig says which report to build. The period only labels the
// document; the figures always cover every record.
type ReportConfig struct {
	Kind   ReportKind
	Period Period
}

// ParseReportConfig validates kind and period; an empty period means month.
func ParseReportConfig(kind, period string) (ReportConfig, error) {
	cfg := ReportConfig{
		Kind:   ReportKind(strings.ToLower(strings.TrimSpace(kind))),
		Period: Period(strings.ToLower(strings.TrimSpace(period))),
	}
	switch cfg.Kind {
	case ReportAnalytics, ReportActions, ReportTeam, ReportMeetings:
	default:
		return ReportConfig{}, fmt.Errorf("%w: report %q", ErrInvalidKind, kind)
	}
	if cfg.Period == "" {
		cfg.Period = PeriodMonth
	}
	if _, ok := periodLabels[cfg.Period]; !ok {
		return ReportConfig{}, fmt.Errorf("%w: period %q", ErrInvalidKind, period)
	}
	return cfg, nil
}

// Artifact is a generated file, complete and ready to download.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

type ExportObserver interface {
	ObserveExport(format string, err error)
}

type ExportService struct {
	snapshots *SnapshotReader
	appName   string
	env       Env
	logger    *logging.Logger
	observer  ExportObserver
}

func NewExportService(snapshots *SnapshotReader, appName string, env Env, logger *logging.Logger, observer ExportObserver) *ExportService {
	return &ExportService{
		snapshots: snapshots,
		appName:   appName,
		env:       env,
		logger:    logger.With("component", "export"),
		observer:  observer,
	}
}

// ExportAll builds the full workbook: one sheet per category plus Statistics.
func (s *ExportService) ExportAll(ctx context.Context) (Artifact, error) {
	return s.generate(ctx, "xlsx", "all", func(snap models.Snapshot) (Artifact, error) {
		data, err := export.Workbook(export.SnapshotSheets(snap, s.env.Location)...)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{
			Name:        export.WorkbookName(s.appName, s.env.now()),
			ContentType: export.ContentTypeXLSX,
			Data:        data,
		}, nil
	})
}

func (s *ExportService) ExportCategory(ctx context.Context, c Category) (Artifact, error) {
	prefix, ok := filePrefixes[c]
	if !ok {
		return Artifact{}, fmt.Errorf("%w: export category %q", ErrInvalidKind, c)
	}
	return s.generate(ctx, "xlsx", string(c), func(snap models.Snapshot) (Artifact, error) {
		data, err := export.Workbook(s.categorySheet(c, snap))
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{
			Name:        export.WorkbookName(prefix, s.env.now()),
			ContentType: export.ContentTypeXLSX,
			Data:        data,
		}, nil
	})
}

func (s *ExportService) categorySheet(c Category, snap models.Snapshot) export.Sheet {
	loc := s.env.Location
	switch c {
	case CategoryMembers:
		return export.MembersSheet(snap.Members)
	case CategoryEmails:
		return export.EmailsSheet(snap.Emails, loc)
	case CategoryMeetings:
		return export.MeetingTopicsSheet(snap.Meetings(), loc)
	case CategoryObjectives:
		return export.ObjectivesSheet(snap.Objectives, loc)
	}
	return export.ActionsSheet(snap.Actions, loc)
}

// ReportPDF renders one of the PDF reports.
func (s *ExportService) ReportPDF(ctx context.Context, cfg ReportConfig) (Artifact, error) {
	return s.generate(ctx, "pdf", string(cfg.Kind), func(snap models.Snapshot) (Artifact, error) {
		now := s.env.now()
		report, category := buildReport(cfg, snap, stats.Analyze(snap, now))
		report.GeneratedAt = now
		data, err := export.PDF(report)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{
			Name:        export.ReportName(category, now),
			ContentType: export.ContentTypePDF,
			Data:        data,
		}, nil
	})
}

// ReportWorkbook renders the analytics aggregates as a workbook.
func (s *ExportService) ReportWorkbook(ctx context.Context, period Period) (Artifact, error) {
	if period == "" {
		period = PeriodMonth
	}
	return s.generate(ctx, "xlsx", "analytics", func(snap models.Snapshot) (Artifact, error) {
		now := s.env.now()
		data, err := export.Workbook(export.AnalyticsSheets(stats.Analyze(snap, now))...)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{
			Name:        export.WorkbookName("Report_Analytics_"+string(period), now),
			ContentType: export.ContentTypeXLSX,
			Data:        data,
		}, nil
	})
}

// generate runs one export attempt. Any failure, panics included, is logged
// and reported as ErrExportFailed; nothing partial is returned.
func (s *ExportService) generate(ctx context.Context, format, what string, build func(models.Snapshot) (Artifact, error)) (art Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			s.logger.ErrorContext(ctx, "export failed", "format", format, "what", what, "error", err)
			art = Artifact{}
			err = fmt.Errorf("%w: %w", ErrExportFailed, err)
		} else {
			s.logger.Info("export generated", "format", format, "what", what, "file", art.Name, "bytes", len(art.Data))
		}
		if s.observer != nil {
			s.observer.ObserveExport(format, err)
		}
	}()

	snap, err := s.snapshots.Read(ctx)
	if err != nil {
		return Artifact{}, err
	}
	return build(snap)
}

func buildReport(cfg ReportConfig, snap models.Snapshot, a stats.Analytics) (export.Report, string) {
	metric := []string{"Metric", "Value"}
	pct := func(v int) string { return fmt.Sprintf("%d%%", v) }
	num := func(v int) string { return fmt.Sprint(v) }

	actions := export.Section{Heading: "Actions Summary", Head: metric, Rows: [][]string{
		{"Total Actions", num(a.Actions.Total)},
		{"Done Actions", num(a.Actions.Done)},
		{"Actions In Progress", num(a.Actions.InProgress)},
		{"Late Actions", num(a.Actions.Late)},
		{"New Actions", num(a.Actions.New)},
	}}
	team := export.Section{Heading: "Team Performance", Head: metric, Rows: [][]string{
		{"Team Members", num(a.Team.Members)},
		{"Actions per Member", num(a.Team.ActionsPerMember)},
		{"Completion Rate", pct(a.Team.CompletionRate)},
		{"Overall Performance", pct(a.Team.Performance)},
	}}
	meetings := export.Section{Heading: "Meeting Follow-up", Head: metric, Rows: [][]string{
		{"Total Topics", num(a.Meetings.Total)},
		{"Open Topics", num(a.Meetings.Open)},
		{"Topics In Progress", num(a.Meetings.InProgress)},
		{"Closed Topics", num(a.Meetings.Closed)},
	}}

	r := export.Report{PeriodLabel: periodLabels[cfg.Period]}
	switch cfg.Kind {
	case ReportActions:
		r.Title = "Detailed Actions Report"
		total := a.Actions.Total
		r.Sections = []export.Section{{Head: []string{"Status", "Count", "Percentage"}, Rows: [][]string{
			{"Done", num(a.Actions.Done), pct(stats.Percent(a.Actions.Done, total))},
			{"In progress", num(a.Actions.InProgress), pct(stats.Percent(a.Actions.InProgress, total))},
			{"Late", num(a.Actions.Late), pct(stats.Percent(a.Actions.Late, total))},
		}}}
		return r, "Actions"
	case ReportTeam:
		r.Title = "Detailed Team Report"
		team.Heading = ""
		perMember := export.Section{Heading: "Members", Head: []string{"Member", "Assigned", "Completed", "Performance"}}
		for _, m := range snap.Members {
			perMember.Rows = append(perMember.Rows, []string{
				m.FullName(), num(m.AssignedCount), num(m.CompletedCount), pct(stats.Performance(m.MemberFields)),
			})
		}
		r.Sections = []export.Section{team, perMember}
		return r, "Team"
	case ReportMeetings:
		r.Title = "Detailed Meetings Report"
		meetings.Heading = ""
		meetings.Head = []string{"Status", "Count"}
		r.Sections = []export.Section{meetings}
		return r, "Meetings"
	}
	r.Title = "Direction des études - Analytics Report"
	r.Sections = []export.Section{actions, team, meetings}
	return r, "Analytics"
}
