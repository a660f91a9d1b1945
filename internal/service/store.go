package service

import (
	"context"
	"time"

	"github.com/TWRT/direction-dashboard/internal/datefmt"
	"github.com/TWRT/direction-dashboard/internal/models"
	"github.com/google/uuid"
)

// Store is the persisted list a service owns. repository.Collection
// implements it.
type Store[T models.Keyed] interface {
	All(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Append(ctx context.Context, item T) error
	Prepend(ctx context.Context, item T) error
	Replace(ctx context.Context, item T) error
	Update(ctx context.Context, id string, fn func(*T)) (T, error)
	Delete(ctx context.Context, id string) error
}

// Env carries the clock, id source and time zone the services share.
type Env struct {
	Now      func() time.Time
	NewID    func() string
	Location *time.Location
}

func DefaultEnv(loc *time.Location) Env {
	if loc == nil {
		loc = time.UTC
	}
	return Env{Now: time.Now, NewID: NewID, Location: loc}
}

// NewID returns a time-ordered UUID, so ids sort by creation time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (e Env) now() time.Time {
	return e.Now().In(e.Location)
}

func (e Env) today() string {
	return datefmt.ISODate(e.now())
}

func confirmDelete[T models.Keyed](ctx context.Context, store Store[T], id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	return store.Delete(ctx, id)
}
