package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/TWRT/direction-dashboard/internal/export"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type recordingObserver struct {
	formats []string
	errs    []error
}

func (r *recordingObserver) ObserveExport(format string, err error) {
	r.formats = append(r.formats, format)
	r.errs = append(r.errs, err)
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExportCategoryRoundTripsNewAction(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a, err := f.actions.Create(ctx, models.ActionFields{
		Title:    "Test",
		Status:   models.ActionToDo,
		Priority: models.PriorityHigh,
		DueDate:  "2024-02-01",
		Progress: 0,
	})
	require.NoError(t, err)

	art, err := f.exports.ExportCategory(ctx, CategoryActions)
	require.NoError(t, err)
	assert.Equal(t, "Actions_2024-01-15.xlsx", art.Name)
	assert.Equal(t, export.ContentTypeXLSX, art.ContentType)

	wb := openWorkbook(t, art.Data)
	rows, err := wb.GetRows("Actions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, a.ID, rows[1][0])
	assert.Equal(t, "Test", rows[1][1])
	assert.Equal(t, "To do", rows[1][4])
	assert.Equal(t, "High", rows[1][5])
	assert.Equal(t, "01/02/2024", rows[1][7])
	assert.Equal(t, "0", rows[1][9])
}

func TestExportAllWithEmptyTeam(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	art, err := f.exports.ExportAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Direction_Test_2024-01-15.xlsx", art.Name)

	wb := openWorkbook(t, art.Data)
	assert.Equal(t,
		[]string{"Actions", "Members", "Emails", "Meeting Topics", "Objectives", "Statistics"},
		wb.GetSheetList())

	members, err := wb.GetRows("Members")
	require.NoError(t, err)
	assert.Len(t, members, 1)

	rows, err := wb.GetRows("Statistics")
	require.NoError(t, err)
	require.Greater(t, len(rows), 2)
	assert.Equal(t, "Team Members", rows[2][0])
	assert.Equal(t, "0", rows[2][1])
	assert.Equal(t, "Average performance: N/A", rows[2][2])
}

func TestExportAllListsManagerTopicsFirst(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, err := f.meetings.Create(ctx, models.MeetingTeam, models.MeetingTopicFields{Title: "team topic", Status: models.TopicOpen})
	require.NoError(t, err)
	_, err = f.meetings.Create(ctx, models.MeetingManager, models.MeetingTopicFields{Title: "manager topic", Status: models.TopicOpen})
	require.NoError(t, err)

	art, err := f.exports.ExportAll(ctx)
	require.NoError(t, err)

	rows, err := openWorkbook(t, art.Data).GetRows("Meeting Topics")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "manager topic", rows[1][1])
	assert.Equal(t, "team topic", rows[2][1])
}

func TestReportPDFNames(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	for kind, name := range map[ReportKind]string{
		ReportAnalytics: "Report_Analytics_2024-01-15.pdf",
		ReportActions:   "Report_Actions_2024-01-15.pdf",
		ReportTeam:      "Report_Team_2024-01-15.pdf",
		ReportMeetings:  "Report_Meetings_2024-01-15.pdf",
	} {
		art, err := f.exports.ReportPDF(ctx, ReportConfig{Kind: kind, Period: PeriodWeek})
		require.NoError(t, err, kind)
		assert.Equal(t, name, art.Name)
		assert.Equal(t, export.ContentTypePDF, art.ContentType)
		assert.True(t, bytes.HasPrefix(art.Data, []byte("%PDF")), kind)
	}
}

func TestReportWorkbookSheets(t *testing.T) {
	f := newFixture(t, nil)

	art, err := f.exports.ReportWorkbook(context.Background(), PeriodQuarter)
	require.NoError(t, err)
	assert.Equal(t, "Report_Analytics_quarter_2024-01-15.xlsx", art.Name)
	assert.Equal(t,
		[]string{"Actions Report", "Team Report", "Meetings Report", "Summary"},
		openWorkbook(t, art.Data).GetSheetList())
}

func TestParseReportConfig(t *testing.T) {
	cfg, err := ParseReportConfig("Team", "")
	require.NoError(t, err)
	assert.Equal(t, ReportConfig{Kind: ReportTeam, Period: PeriodMonth}, cfg)

	_, err = ParseReportConfig("budget", "month")
	assert.ErrorIs(t, err, ErrInvalidKind)
	_, err = ParseReportConfig("team", "decade")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

type failingStore[T models.Keyed] struct {
	Store[T]
}

func (failingStore[T]) All(context.Context) ([]T, error) {
	return nil, errors.New("disk on fire")
}

func TestExportFailureIsReportedAndObserved(t *testing.T) {
	f := newFixture(t, nil)
	obs := &recordingObserver{}
	snapshots := &SnapshotReader{
		Actions:         failingStore[models.Action]{},
		Members:         f.repos.Members,
		Emails:          f.repos.Emails,
		ManagerMeetings: f.repos.ManagerMeetings,
		TeamMeetings:    f.repos.TeamMeetings,
		Objectives:      f.repos.Objectives,
	}
	svc := NewExportService(snapshots, "X", f.env, logging.Nop(), obs)

	art, err := svc.ExportAll(context.Background())
	assert.ErrorIs(t, err, ErrExportFailed)
	assert.Contains(t, err.Error(), "error generating the file")
	assert.Empty(t, art.Data)
	assert.Equal(t, []string{"xlsx"}, obs.formats)
	assert.Error(t, obs.errs[0])
}
