package repository

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/TWRT/direction-dashboard/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Sample is the content written to a fresh store, one list per key.
type Sample struct {
	Actions         []models.Action              `yaml:"actions"`
	Members         []models.TeamMember          `yaml:"members"`
	Emails          []models.Email               `yaml:"emails"`
	ManagerMeetings []models.MeetingTopic        `yaml:"meetings_manager"`
	TeamMeetings    []models.MeetingTopic        `yaml:"meetings_team"`
	Objectives      []models.IndividualObjective `yaml:"objectives"`
}

// ParseSample reads a YAML seed. Field names are the persisted JSON ones;
// unquoted numeric ids are read as strings.
func ParseSample(data []byte) (Sample, error) {
	var s Sample
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sample{}, fmt.Errorf("parse seed: %w", err)
	}
	return s, nil
}

// LoadSample reads the seed file at path, or the built-in one when path is empty.
func LoadSample(path string) (Sample, error) {
	if path == "" {
		return ParseSample(defaultSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Sample{}, fmt.Errorf("read seed: %w", err)
	}
	return ParseSample(data)
}

// SampleData is the built-in seed.
func SampleData() Sample {
	s, err := ParseSample(defaultSeed)
	if err != nil {
		panic(err)
	}
	return s
}
