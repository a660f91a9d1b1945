package models

// Snapshot is the set of lists handed to an export at one point in time.
// The lists are read one key at a time, so a concurrent write may land
// between two reads.
type Snapshot struct {
	Actions         []Action
	Members         []TeamMember
	Emails          []Email
	ManagerMeetings []MeetingTopic
	TeamMeetings    []MeetingTopic
	Objectives      []IndividualObjective
}

func (s Snapshot) Meetings() []MeetingTopic {
	out := make([]MeetingTopic, 0, len(s.ManagerMeetings)+len(s.TeamMeetings))
	out = append(out, s.ManagerMeetings...)
	return append(out, s.TeamMeetings...)
}
