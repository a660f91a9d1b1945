package models

type TopicStatus string

const (
	TopicOpen       TopicStatus = "Open"
	TopicInProgress TopicStatus = "In progress"
	TopicClosed     TopicStatus = "Closed"
)

var TopicStatuses = []TopicStatus{TopicOpen, TopicInProgress, TopicClosed}

type MeetingKind string

const (
	MeetingManager MeetingKind = "Manager"
	MeetingTeam    MeetingKind = "Team"
)

type MeetingTopicFields struct {
	Title           string      `json:"title" yaml:"title"`
	Description     string      `json:"description" yaml:"description"`
	Status          TopicStatus `json:"status" yaml:"status"`
	Owner           string      `json:"owner" yaml:"owner"`
	MeetingDateTime string      `json:"meeting_date_time" yaml:"meeting_date_time"`
	Kind            MeetingKind `json:"kind" yaml:"kind"`
	LinkedActionIDs []string    `json:"linked_action_ids" yaml:"linked_action_ids"`
	Notes           string      `json:"notes" yaml:"notes"`
}

type MeetingTopic struct {
	ID                 string `json:"id" yaml:"id"`
	MeetingTopicFields `yaml:",inline"`
}

func (t MeetingTopic) Key() string { return t.ID }
