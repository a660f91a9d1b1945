package models

type EmailFields struct {
	Sender         string `json:"sender" yaml:"sender"`
	Recipient      string `json:"recipient" yaml:"recipient"`
	Subject        string `json:"subject" yaml:"subject"`
	Body           string `json:"body" yaml:"body"`
	ReceivedDate   string `json:"received_date" yaml:"received_date"`
	LinkedActionID string `json:"linked_action_id,omitempty" yaml:"linked_action_id,omitempty"`
	Processed      bool   `json:"processed" yaml:"processed"`
}

// Email records correspondence metadata only. Nothing here is ever sent.
type Email struct {
	ID          string `json:"id" yaml:"id"`
	EmailFields `yaml:",inline"`
}

func (e Email) Key() string { return e.ID }
