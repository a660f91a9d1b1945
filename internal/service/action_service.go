package service

import (
	"context"

	"github.com/TWRT/direction-dashboard/internal/filter"
	"github.com/TWRT/direction-dashboard/internal/models"
)

type ActionFilter struct {
	Query  string
	Status models.ActionStatus
}

type ActionService struct {
	store Store[models.Action]
	env   Env
}

func NewActionService(store Store[models.Action], env Env) *ActionService {
	return &ActionService{store: store, env: env}
}

// List searches title and owner.
func (s *ActionService) List(ctx context.Context, f ActionFilter) ([]models.Action, error) {
	actions, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(actions, f.Query,
		func(a models.Action) []string { return []string{a.Title, a.Owner} },
		filter.Equal(f.Status, func(a models.Action) models.ActionStatus { return a.Status }),
	), nil
}

func (s *ActionService) Get(ctx context.Context, id string) (models.Action, error) {
	return s.store.Get(ctx, id)
}

func (s *ActionService) Create(ctx context.Context, fields models.ActionFields) (models.Action, error) {
	if fields.CreatedDate == "" {
		fields.CreatedDate = s.env.today()
	}
	action := models.Action{ID: s.env.NewID(), ActionFields: fields}
	if err := s.store.Append(ctx, action); err != nil {
		return models.Action{}, err
	}
	return action, nil
}

// Update replaces the whole record, keeping its id.
func (s *ActionService) Update(ctx context.Context, id string, fields models.ActionFields) (models.Action, error) {
	action := models.Action{ID: id, ActionFields: fields}
	if err := s.store.Replace(ctx, action); err != nil {
		return models.Action{}, err
	}
	return action, nil
}

func (s *ActionService) Delete(ctx context.Context, id string, confirmed bool) error {
	return confirmDelete(ctx, s.store, id, confirmed)
}
