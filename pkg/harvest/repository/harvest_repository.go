package repository

import (
	"context"

	"agbrain/entities"
)

type HarvestRepository interface {
	Create(ctx context.Context, h *entities.Harvest) error
	FindAll(ctx context.Context) ([]entities.Harvest, error)
	FindByID(ctx context.Context, id string) (*entities.Harvest, error)
	Update(ctx context.Context, h *entities.Harvest) error
	Delete(ctx context.Context, id string) error
}
