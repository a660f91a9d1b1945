package service

import (
	"context"

	"github.com/TWRT/direction-dashboard/internal/models"
)

type PreferencesStore interface {
	Load(ctx context.Context) (models.Preferences, error)
	Save(ctx context.Context, p models.Preferences) error
}

// PreferencesService holds the display settings, dark mode included.
type PreferencesService struct {
	store PreferencesStore
}

func NewPreferencesService(store PreferencesStore) *PreferencesService {
	return &PreferencesService{store: store}
}

func (s *PreferencesService) Get(ctx context.Context) (models.Preferences, error) {
	return s.store.Load(ctx)
}

func (s *PreferencesService) Update(ctx context.Context, p models.Preferences) (models.Preferences, error) {
	if p.Language == "" {
		p.Language = models.DefaultPreferences().Language
	}
	if err := s.store.Save(ctx, p); err != nil {
		return models.Preferences{}, err
	}
	return p, nil
}
