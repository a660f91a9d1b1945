package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/TWRT/direction-dashboard/internal/filter"
	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/TWRT/direction-dashboard/internal/repository"
)

// ParseMeetingKind maps a route segment ("manager", "team") to a kind.
func ParseMeetingKind(s string) (models.MeetingKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manager":
		return models.MeetingManager, nil
	case "team":
		return models.MeetingTeam, nil
	}
	return "", fmt.Errorf("%w: meeting kind %q", ErrInvalidKind, s)
}

type TopicFilter struct {
	Query  string
	Status models.TopicStatus
}

// MeetingStores resolves the topic list of a kind. *repository.Repositories
// satisfies it.
type MeetingStores interface {
	Meetings(kind models.MeetingKind) (*repository.Collection[models.MeetingTopic], error)
}

// MeetingService keeps manager topics and team stand-up topics in separate lists.
type MeetingService struct {
	stores MeetingStores
	env    Env
}

func NewMeetingService(stores MeetingStores, env Env) *MeetingService {
	return &MeetingService{stores: stores, env: env}
}

func (s *MeetingService) store(kind models.MeetingKind) (Store[models.MeetingTopic], error) {
	c, err := s.stores.Meetings(kind)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List searches title and description.
func (s *MeetingService) List(ctx context.Context, kind models.MeetingKind, f TopicFilter) ([]models.MeetingTopic, error) {
	store, err := s.store(kind)
	if err != nil {
		return nil, err
	}
	topics, err := store.All(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(topics, f.Query,
		func(t models.MeetingTopic) []string { return []string{t.Title, t.Description} },
		filter.Equal(f.Status, func(t models.MeetingTopic) models.TopicStatus { return t.Status }),
	), nil
}

func (s *MeetingService) Get(ctx context.Context, kind models.MeetingKind, id string) (models.MeetingTopic, error) {
	store, err := s.store(kind)
	if err != nil {
		return models.MeetingTopic{}, err
	}
	return store.Get(ctx, id)
}

func (s *MeetingService) Create(ctx context.Context, kind models.MeetingKind, fields models.MeetingTopicFields) (models.MeetingTopic, error) {
	store, err := s.store(kind)
	if err != nil {
		return models.MeetingTopic{}, err
	}
	fields.Kind = kind
	topic := models.MeetingTopic{ID: s.env.NewID(), MeetingTopicFields: fields}
	if err := store.Append(ctx, topic); err != nil {
		return models.MeetingTopic{}, err
	}
	return topic, nil
}

func (s *MeetingService) Update(ctx context.Context, kind models.MeetingKind, id string, fields models.MeetingTopicFields) (models.MeetingTopic, error) {
	store, err := s.store(kind)
	if err != nil {
		return models.MeetingTopic{}, err
	}
	fields.Kind = kind
	topic := models.MeetingTopic{ID: id, MeetingTopicFields: fields}
	if err := store.Replace(ctx, topic); err != nil {
		return models.MeetingTopic{}, err
	}
	return topic, nil
}

func (s *MeetingService) Delete(ctx context.Context, kind models.MeetingKind, id string, confirmed bool) error {
	store, err := s.store(kind)
	if err != nil {
		return err
	}
	return confirmDelete(ctx, store, id, confirmed)
}
