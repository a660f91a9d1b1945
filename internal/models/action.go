package models

type ActionStatus string

const (
	ActionToDo       ActionStatus = "To do"
	ActionInProgress ActionStatus = "In progress"
	ActionDone       ActionStatus = "Done"
	ActionLate       ActionStatus = "Late"
)

var ActionStatuses = []ActionStatus{ActionToDo, ActionInProgress, ActionDone, ActionLate}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ActionFields holds everything an action form edits. Progress is a free
// slider value and is not derived from Status.
type ActionFields struct {
	Title        string       `json:"title" yaml:"title"`
	Description  string       `json:"description" yaml:"description"`
	Owner        string       `json:"owner" yaml:"owner"`
	Status       ActionStatus `json:"status" yaml:"status"`
	Priority     Priority     `json:"priority" yaml:"priority"`
	CreatedDate  string       `json:"created_date" yaml:"created_date"`
	DueDate      string       `json:"due_date" yaml:"due_date"`
	Origin       string       `json:"origin" yaml:"origin"`
	Observations string       `json:"observations" yaml:"observations"`
	Progress     int          `json:"progress" yaml:"progress"`
}

type Action struct {
	ID           string `json:"id" yaml:"id"`
	ActionFields `yaml:",inline"`
}

func (a Action) Key() string { return a.ID }
