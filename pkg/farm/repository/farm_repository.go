package repository

import (
	"context"

	"agbrain/entities"
	"agbrain/pkg/store"
)

// FarmRepository finders return (nil, nil) when nothing matches.
type FarmRepository interface {
	Create(ctx context.Context, f *entities.Farm) error
	FindAll(ctx context.Context) ([]entities.Farm, error)
	FindByID(ctx context.Context, id string) (*entities.Farm, error)
	Update(ctx context.Context, f *entities.Farm) error
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
	// SumColumns sums the given area columns over every farm.
	SumColumns(ctx context.Context, columns ...string) (map[string]float64, error)
	CountByState(ctx context.Context) ([]store.GroupCount, error)
}
