package models

type MemberFields struct {
	LastName       string `json:"last_name" yaml:"last_name"`
	FirstName      string `json:"first_name" yaml:"first_name"`
	Email          string `json:"email" yaml:"email"`
	Role           string `json:"role" yaml:"role"`
	Photo          string `json:"photo,omitempty" yaml:"photo,omitempty"`
	AssignedCount  int    `json:"assigned_count" yaml:"assigned_count"`
	CompletedCount int    `json:"completed_count" yaml:"completed_count"`
}

// TeamMember is a person on the team. CompletedCount may exceed
// AssignedCount; nothing enforces the relation.
type TeamMember struct {
	ID           string `json:"id" yaml:"id"`
	MemberFields `yaml:",inline"`
}

func (m TeamMember) Key() string { return m.ID }

func (m MemberFields) FullName() string {
	switch {
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}
