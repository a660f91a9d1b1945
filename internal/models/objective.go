package models

type ObjectiveStatus string

const (
	ObjectiveNotStarted ObjectiveStatus = "Not started"
	ObjectiveInProgress ObjectiveStatus = "In progress"
	ObjectiveDone       ObjectiveStatus = "Done"
	ObjectiveLate       ObjectiveStatus = "Late"
)

var ObjectiveStatuses = []ObjectiveStatus{ObjectiveNotStarted, ObjectiveInProgress, ObjectiveDone, ObjectiveLate}

type ObjectiveType string

const (
	ObjectiveStrategic   ObjectiveType = "Strategic"
	ObjectiveOperational ObjectiveType = "Operational"
	ObjectiveDevelopment ObjectiveType = "Development"
)

var ObjectiveTypes = []ObjectiveType{ObjectiveStrategic, ObjectiveOperational, ObjectiveDevelopment}

type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

var Quarters = []Quarter{Q1, Q2, Q3, Q4}

// ObjectiveFields.MemberName is copied when the objective is assigned and is
// not refreshed if the member is renamed afterwards.
type ObjectiveFields struct {
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	MemberID    string          `json:"member_id" yaml:"member_id"`
	MemberName  string          `json:"member_name" yaml:"member_name"`
	CreatedDate string          `json:"created_date" yaml:"created_date"`
	DueDate     string          `json:"due_date" yaml:"due_date"`
	Status      ObjectiveStatus `json:"status" yaml:"status"`
	Priority    Priority        `json:"priority" yaml:"priority"`
	Progress    int             `json:"progress" yaml:"progress"`
	Type        ObjectiveType   `json:"type" yaml:"type"`
	Quarter     Quarter         `json:"quarter" yaml:"quarter"`
	Notes       string          `json:"notes" yaml:"notes"`
	Milestones  []string        `json:"milestones" yaml:"milestones"`
}

type IndividualObjective struct {
	ID              string `json:"id" yaml:"id"`
	ObjectiveFields `yaml:",inline"`
}

func (o IndividualObjective) Key() string { return o.ID }
