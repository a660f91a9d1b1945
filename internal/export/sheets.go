package export

import (
	"strings"
	"time"

	"github.com/TWRT/direction-dashboard/internal/datefmt"
	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/TWRT/direction-dashboard/internal/stats"
)

// Sheet is one worksheet: a header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Column headers are part of the file contract; keep labels and order stable.
var (
	ActionHeaders = []string{"ID", "Title", "Description", "Owner", "Status", "Priority", "Created Date", "Due Date", "Origin", "Progress (%)", "Observations"}
	MemberHeaders = []string{"ID", "First Name", "Last Name", "Email", "Role", "Assigned Actions", "Completed Actions", "Performance (%)"}
	EmailHeaders  = []string{"ID", "Sender", "Recipient", "Subject", "Received Date", "Processed", "Linked Action", "Body"}
	TopicHeaders  = []string{"ID", "Title", "Description", "Status", "Owner", "Meeting Date", "Type", "Linked Actions", "Notes"}
	GoalHeaders   = []string{"ID", "Title", "Description", "Member", "Status", "Priority", "Type", "Quarter", "Created Date", "Due Date", "Progress (%)", "Milestones", "Notes"}
	StatHeaders   = []string{"Metric", "Value", "Details"}
)

func ActionsSheet(actions []models.Action, loc *time.Location) Sheet {
	rows := make([][]any, 0, len(actions))
	for _, a := range actions {
		rows = append(rows, []any{
			a.ID,
			a.Title,
			a.Description,
			a.Owner,
			string(a.Status),
			string(a.Priority),
			datefmt.Date(a.CreatedDate, loc),
			datefmt.Date(a.DueDate, loc),
			a.Origin,
			a.Progress,
			a.Observations,
		})
	}
	return Sheet{Name: "Actions", Headers: ActionHeaders, Rows: rows}
}

func MembersSheet(members []models.TeamMember) Sheet {
	rows := make([][]any, 0, len(members))
	for _, m := range members {
		rows = append(rows, []any{
			m.ID,
			m.FirstName,
			m.LastName,
			m.Email,
			m.Role,
			m.AssignedCount,
			m.CompletedCount,
			stats.Performance(m.MemberFields),
		})
	}
	return Sheet{Name: "Members", Headers: MemberHeaders, Rows: rows}
}

func EmailsSheet(emails []models.Email, loc *time.Location) Sheet {
	rows := make([][]any, 0, len(emails))
	for _, e := range emails {
		linked := e.LinkedActionID
		if linked == "" {
			linked = stats.NotAvailable
		}
		rows = append(rows, []any{
			e.ID,
			e.Sender,
			e.Recipient,
			e.Subject,
			datefmt.DateTime(e.ReceivedDate, loc),
			yesNo(e.Processed),
			linked,
			e.Body,
		})
	}
	return Sheet{Name: "Emails", Headers: EmailHeaders, Rows: rows}
}

func MeetingTopicsSheet(topics []models.MeetingTopic, loc *time.Location) Sheet {
	rows := make([][]any, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, []any{
			t.ID,
			t.Title,
			t.Description,
			string(t.Status),
			t.Owner,
			datefmt.DateTime(t.MeetingDateTime, loc),
			string(t.Kind),
			strings.Join(t.LinkedActionIDs, ", "),
			t.Notes,
		})
	}
	return Sheet{Name: "Meeting Topics", Headers: TopicHeaders, Rows: rows}
}

func ObjectivesSheet(objectives []models.IndividualObjective, loc *time.Location) Sheet {
	rows := make([][]any, 0, len(objectives))
	for _, o := range objectives {
		rows = append(rows, []any{
			o.ID,
			o.Title,
			o.Description,
			o.MemberName,
			string(o.Status),
			string(o.Priority),
			string(o.Type),
			string(o.Quarter),
			datefmt.Date(o.CreatedDate, loc),
			datefmt.Date(o.DueDate, loc),
			o.Progress,
			strings.Join(o.Milestones, ", "),
			o.Notes,
		})
	}
	return Sheet{Name: "Objectives", Headers: GoalHeaders, Rows: rows}
}

func StatisticsSheet(rows []stats.Row) Sheet {
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, []any{r.Metric, r.Value, r.Details})
	}
	return Sheet{Name: "Statistics", Headers: StatHeaders, Rows: out}
}

// SnapshotSheets returns every sheet of a full export, Statistics last.
func SnapshotSheets(s models.Snapshot, loc *time.Location) []Sheet {
	return []Sheet{
		ActionsSheet(s.Actions, loc),
		MembersSheet(s.Members),
		EmailsSheet(s.Emails, loc),
		MeetingTopicsSheet(s.Meetings(), loc),
		ObjectivesSheet(s.Objectives, loc),
		StatisticsSheet(stats.Statistics(s)),
	}
}

// AnalyticsSheets is the workbook flavour of the analytics report.
func AnalyticsSheets(a stats.Analytics) []Sheet {
	metric := []string{"Metric", "Value"}
	return []Sheet{
		{Name: "Actions Report", Headers: metric, Rows: [][]any{
			{"Total Actions", a.Actions.Total},
			{"Done Actions", a.Actions.Done},
			{"Actions In Progress", a.Actions.InProgress},
			{"Late Actions", a.Actions.Late},
			{"New Actions", a.Actions.New},
		}},
		{Name: "Team Report", Headers: metric, Rows: [][]any{
			{"Team Members", a.Team.Members},
			{"Actions per Member", a.Team.ActionsPerMember},
			{"Completion Rate (%)", a.Team.CompletionRate},
			{"Overall Performance (%)", a.Team.Performance},
		}},
		{Name: "Meetings Report", Headers: metric, Rows: [][]any{
			{"Total Topics", a.Meetings.Total},
			{"Open Topics", a.Meetings.Open},
			{"Topics In Progress", a.Meetings.InProgress},
			{"Closed Topics", a.Meetings.Closed},
		}},
		{Name: "Summary", Headers: []string{"Section", "Rate (%)", "Meaning"}, Rows: [][]any{
			{"Actions", stats.Percent(a.Actions.Done, a.Actions.Total), "Completion"},
			{"Team", a.Team.Performance, "Performance"},
			{"Meetings", stats.Percent(a.Meetings.Closed, a.Meetings.Total), "Closure"},
		}},
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
