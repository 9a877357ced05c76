package repository

import (
	"context"

	"agbrain/entities"
	"agbrain/pkg/store"
)

type CropRepository interface {
	Create(ctx context.Context, c *entities.Crop) error
	FindAll(ctx context.Context) ([]entities.Crop, error)
	FindByID(ctx context.Context, id string) (*entities.Crop, error)
	Update(ctx context.Context, c *entities.Crop) error
	Delete(ctx context.Context, id string) error
	CountByName(ctx context.Context) ([]store.GroupCount, error)
}
