// Package stats computes the aggregates shown on the team and report screens
// and written to the Statistics sheet. Nothing here is cached.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/TWRT/direction-dashboard/internal/datefmt"
	"github.com/TWRT/direction-dashboard/internal/models"
)

// NotAvailable is rendered wherever an average has nothing to average.
const NotAvailable = "N/A"

// Performance is round(completed / max(assigned, 1) * 100).
func Performance(m models.MemberFields) int {
	return int(math.Round(rawPerformance(m)))
}

func rawPerformance(m models.MemberFields) float64 {
	return float64(m.CompletedCount) / float64(max(m.AssignedCount, 1)) * 100
}

// AveragePerformance is the rounded mean of the unrounded per-member
// performances. ok is false for an empty team.
func AveragePerformance(members []models.TeamMember) (avg int, ok bool) {
	if len(members) == 0 {
		return 0, false
	}
	var sum float64
	for _, m := range members {
		sum += rawPerformance(m.MemberFields)
	}
	return int(math.Round(sum / float64(len(members)))), true
}

// Percent is round(part / total * 100), 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

type Row struct {
	Metric  string
	Value   int
	Details string
}

// Statistics returns the rows of the Statistics sheet.
func Statistics(s models.Snapshot) []Row {
	avg := NotAvailable
	if p, ok := AveragePerformance(s.Members); ok {
		avg = fmt.Sprintf("%d%%", p)
	}
	processed := countEmails(s.Emails, true)

	return []Row{
		{
			Metric:  "Total Actions",
			Value:   len(s.Actions),
			Details: fmt.Sprintf("%d done, %d in progress", countActions(s.Actions, models.ActionDone), countActions(s.Actions, models.ActionInProgress)),
		},
		{
			Metric:  "Team Members",
			Value:   len(s.Members),
			Details: "Average performance: " + avg,
		},
		{
			Metric:  "Total Emails",
			Value:   len(s.Emails),
			Details: fmt.Sprintf("%d processed, %d unprocessed", processed, len(s.Emails)-processed),
		},
		{
			Metric:  "Manager Meeting Topics",
			Value:   len(s.ManagerMeetings),
			Details: fmt.Sprintf("%d open, %d closed", countTopics(s.ManagerMeetings, models.TopicOpen), countTopics(s.ManagerMeetings, models.TopicClosed)),
		},
		{
			Metric:  "Team Stand-up Topics",
			Value:   len(s.TeamMeetings),
			Details: fmt.Sprintf("%d open, %d closed", countTopics(s.TeamMeetings, models.TopicOpen), countTopics(s.TeamMeetings, models.TopicClosed)),
		},
		{
			Metric:  "Individual Objectives",
			Value:   len(s.Objectives),
			Details: fmt.Sprintf("%d done, %d in progress", countObjectives(s.Objectives, models.ObjectiveDone), countObjectives(s.Objectives, models.ObjectiveInProgress)),
		},
	}
}

type ActionSummary struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	InProgress int `json:"in_progress"`
	Late       int `json:"late"`
	New        int `json:"new"`
}

type TeamSummary struct {
	Members          int `json:"members"`
	ActionsPerMember int `json:"actions_per_member"`
	CompletionRate   int `json:"completion_rate"`
	Performance      int `json:"performance"`
}

type MeetingSummary struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Closed     int `json:"closed"`
}

type Analytics struct {
	Actions  ActionSummary  `json:"actions"`
	Team     TeamSummary    `json:"team"`
	Meetings MeetingSummary `json:"meetings"`
}

// NewActionWindow is how far back an action counts as new.
const NewActionWindow = 7 * 24 * time.Hour

// Analyze computes the report aggregates. Both meeting kinds are counted.
func Analyze(s models.Snapshot, now time.Time) Analytics {
	var a Analytics

	a.Actions.Total = len(s.Actions)
	a.Actions.Done = countActions(s.Actions, models.ActionDone)
	a.Actions.InProgress = countActions(s.Actions, models.ActionInProgress)
	a.Actions.Late = countActions(s.Actions, models.ActionLate)
	since := now.Add(-NewActionWindow)
	for _, act := range s.Actions {
		if created, ok := datefmt.Parse(act.CreatedDate, now.Location()); ok && !created.Before(since) {
			a.Actions.New++
		}
	}

	a.Team.Members = len(s.Members)
	if a.Team.Members > 0 {
		a.Team.ActionsPerMember = int(math.Round(float64(len(s.Actions)) / float64(a.Team.Members)))
	}
	avg, _ := AveragePerformance(s.Members)
	a.Team.CompletionRate = avg
	a.Team.Performance = avg

	topics := s.Meetings()
	a.Meetings.Total = len(topics)
	a.Meetings.Open = countTopics(topics, models.TopicOpen)
	a.Meetings.InProgress = countTopics(topics, models.TopicInProgress)
	a.Meetings.Closed = countTopics(topics, models.TopicClosed)

	return a
}

func countActions(actions []models.Action, status models.ActionStatus) int {
	n := 0
	for _, a := range actions {
		if a.Status == status {
			n++
		}
	}
	return n
}

func countEmails(emails []models.Email, processed bool) int {
	n := 0
	for _, e := range emails {
		if e.Processed == processed {
			n++
		}
	}
	return n
}

func countTopics(topics []models.MeetingTopic, status models.TopicStatus) int {
	n := 0
	for _, t := range topics {
		if t.Status == status {
			n++
		}
	}
	return n
}

func countObjectives(objectives []models.IndividualObjective, status models.ObjectiveStatus) int {
	n := 0
	for _, o := range objectives {
		if o.Status == status {
			n++
		}
	}
	return n
}

// CountUnprocessed returns how many emails still wait for processing.
func CountUnprocessed(emails []models.Email) int {
	return countEmails(emails, false)
}

func CountActions(actions []models.Action, status models.ActionStatus) int {
	return countActions(actions, status)
}

func CountTopics(topics []models.MeetingTopic, status models.TopicStatus) int {
	return countTopics(topics, status)
}
