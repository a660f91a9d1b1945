package service

import (
	"context"
	"errors"

	"github.com/TWRT/direction-dashboard/internal/filter"
	"github.com/TWRT/direction-dashboard/internal/form"
	"github.com/TWRT/direction-dashboard/internal/models"
)

type ObjectiveFilter struct {
	Query   string
	Status  models.ObjectiveStatus
	Quarter models.Quarter
}

type ObjectiveService struct {
	store   Store[models.IndividualObjective]
	members Store[models.TeamMember]
	env     Env
}

func NewObjectiveService(store Store[models.IndividualObjective], members Store[models.TeamMember], env Env) *ObjectiveService {
	return &ObjectiveService{store: store, members: members, env: env}
}

// List searches title and member name.
func (s *ObjectiveService) List(ctx context.Context, f ObjectiveFilter) ([]models.IndividualObjective, error) {
	objectives, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(objectives, f.Query,
		func(o models.IndividualObjective) []string { return []string{o.Title, o.MemberName} },
		filter.Equal(f.Status, func(o models.IndividualObjective) models.ObjectiveStatus { return o.Status }),
		filter.Equal(f.Quarter, func(o models.IndividualObjective) models.Quarter { return o.Quarter }),
	), nil
}

func (s *ObjectiveService) Get(ctx context.Context, id string) (models.IndividualObjective, error) {
	return s.store.Get(ctx, id)
}

func (s *ObjectiveService) Create(ctx context.Context, fields models.ObjectiveFields) (models.IndividualObjective, error) {
	if err := s.assign(ctx, &fields); err != nil {
		return models.IndividualObjective{}, err
	}
	if fields.CreatedDate == "" {
		fields.CreatedDate = s.env.today()
	}
	o := models.IndividualObjective{ID: s.env.NewID(), ObjectiveFields: fields}
	if err := s.store.Append(ctx, o); err != nil {
		return models.IndividualObjective{}, err
	}
	return o, nil
}

// Update copies the member name only when the objective changes hands, so a
// later rename of the member is not reflected in existing objectives.
func (s *ObjectiveService) Update(ctx context.Context, id string, fields models.ObjectiveFields) (models.IndividualObjective, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return models.IndividualObjective{}, err
	}
	if fields.MemberID != existing.MemberID {
		if err := s.assign(ctx, &fields); err != nil {
			return models.IndividualObjective{}, err
		}
	}
	o := models.IndividualObjective{ID: id, ObjectiveFields: fields}
	if err := s.store.Replace(ctx, o); err != nil {
		return models.IndividualObjective{}, err
	}
	return o, nil
}

func (s *ObjectiveService) Delete(ctx context.Context, id string, confirmed bool) error {
	return confirmDelete(ctx, s.store, id, confirmed)
}

// assign copies the current name of the member. The member must exist.
func (s *ObjectiveService) assign(ctx context.Context, fields *models.ObjectiveFields) error {
	if fields.MemberID == "" {
		return nil
	}
	m, err := s.members.Get(ctx, fields.MemberID)
	if errors.Is(err, ErrNotFound) {
		return &form.ValidationError{Invalid: []string{"member_id"}}
	}
	if err != nil {
		return err
	}
	fields.MemberName = m.FullName()
	return nil
}
