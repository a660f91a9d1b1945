package export

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/TWRT/direction-dashboard/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func paris(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

func readWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestActionsSheetRoundTrip(t *testing.T) {
	actions := []models.Action{{ID: "42", ActionFields: models.ActionFields{
		Title:       "Test",
		Status:      models.ActionToDo,
		Priority:    models.PriorityHigh,
		CreatedDate: "2024-01-10",
		DueDate:     "2024-02-01",
		Progress:    0,
	}}}

	data, err := Workbook(ActionsSheet(actions, paris(t)))
	require.NoError(t, err)

	f := readWorkbook(t, data)
	assert.Equal(t, []string{"Actions"}, f.GetSheetList())

	rows, err := f.GetRows("Actions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ActionHeaders, rows[0])

	row := rows[1]
	assert.Equal(t, "42", row[0])
	assert.Equal(t, "To do", row[4])
	assert.Equal(t, "High", row[5])
	assert.Equal(t, "10/01/2024", row[6])
	assert.Equal(t, "01/02/2024", row[7])
	assert.Equal(t, "0", row[9])
}

func TestSnapshotSheetsWithEmptyLists(t *testing.T) {
	data, err := Workbook(SnapshotSheets(models.Snapshot{}, paris(t))...)
	require.NoError(t, err)

	f := readWorkbook(t, data)
	assert.Equal(t, []string{"Actions", "Members", "Emails", "Meeting Topics", "Objectives", "Statistics"}, f.GetSheetList())

	rows, err := f.GetRows("Statistics")
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, StatHeaders, rows[0])
	assert.Equal(t, []string{"Team Members", "0", "Average performance: N/A"}, rows[2])
	for _, r := range rows {
		for _, cell := range r {
			assert.NotContains(t, cell, "NaN")
		}
	}
}

func TestMembersSheetPerformance(t *testing.T) {
	members := []models.TeamMember{
		{ID: "1", MemberFields: models.MemberFields{FirstName: "Marie", LastName: "Dubois", AssignedCount: 8, CompletedCount: 6}},
		{ID: "2", MemberFields: models.MemberFields{FirstName: "New", LastName: "Hire"}},
	}
	sheet := MembersSheet(members)
	assert.Equal(t, 75, sheet.Rows[0][7])
	assert.Equal(t, 0, sheet.Rows[1][7])
}

func TestEmailsSheetFormatting(t *testing.T) {
	emails := []models.Email{
		{ID: "1", EmailFields: models.EmailFields{Sender: "a@x.com", ReceivedDate: "2024-01-12T10:30:00", Processed: true, LinkedActionID: "7"}},
		{ID: "2", EmailFields: models.EmailFields{Sender: "b@x.com", ReceivedDate: "2024-01-11T16:45:00"}},
	}
	sheet := EmailsSheet(emails, paris(t))
	assert.Equal(t, []any{"1", "a@x.com", "", "", "12/01/2024 10:30:00", "Yes", "7", ""}, sheet.Rows[0])
	assert.Equal(t, "No", sheet.Rows[1][5])
	assert.Equal(t, "N/A", sheet.Rows[1][6])
}

func TestMeetingTopicsSheetJoinsLinkedActions(t *testing.T) {
	topics := []models.MeetingTopic{{ID: "1", MeetingTopicFields: models.MeetingTopicFields{
		Title:           "Budget",
		Kind:            models.MeetingManager,
		MeetingDateTime: "2024-01-15T10:00",
		LinkedActionIDs: []string{"1", "3"},
	}}}
	sheet := MeetingTopicsSheet(topics, paris(t))
	assert.Equal(t, TopicHeaders, sheet.Headers)
	assert.Equal(t, "15/01/2024 10:00:00", sheet.Rows[0][5])
	assert.Equal(t, "Manager", sheet.Rows[0][6])
	assert.Equal(t, "1, 3", sheet.Rows[0][7])
}

func TestAnalyticsSheetsSummaryGuardsZero(t *testing.T) {
	sheets := AnalyticsSheets(stats.Analytics{})
	require.Len(t, sheets, 4)
	summary := sheets[3]
	assert.Equal(t, "Summary", summary.Name)
	assert.Equal(t, 0, summary.Rows[0][1])
	assert.Equal(t, 0, summary.Rows[2][1])
}

func TestWorkbookNeedsASheet(t *testing.T) {
	_, err := Workbook()
	assert.Error(t, err)
}

func TestPDFPaginatesLongTables(t *testing.T) {
	rows := make([][]string, 0, 120)
	for i := 0; i < 120; i++ {
		rows = append(rows, []string{fmt.Sprintf("Metric %d", i), fmt.Sprint(i)})
	}
	data, err := PDF(Report{
		Title:       "Direction des études - Analytics Report",
		PeriodLabel: "This month",
		GeneratedAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		Sections: []Section{
			{Heading: "Actions Summary", Head: []string{"Metric", "Value"}, Rows: rows},
			{Heading: "Team Performance", Head: []string{"Metric", "Value"}, Rows: rows[:3]},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestNames(t *testing.T) {
	day := time.Date(2024, 2, 1, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "Actions_2024-02-01.xlsx", WorkbookName("Actions", day))
	assert.Equal(t, "Report_Analytics_2024-02-01.pdf", ReportName("Analytics", day))
}
