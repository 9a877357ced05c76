package service

import (
	"context"

	"agbrain/entities"
)

type HarvestService interface {
	Create(ctx context.Context, in CreateHarvestInput) (*entities.Harvest, error)
	FindAll(ctx context.Context) ([]entities.Harvest, error)
	FindOne(ctx context.Context, id string) (*entities.Harvest, error)
	Update(ctx context.Context, id string, patch HarvestPatch) (*entities.Harvest, error)
	Remove(ctx context.Context, id string) error
}

type CreateHarvestInput struct {
	Year   int    `json:"year" validate:"gt=0"`
	FarmID string `json:"farmId" validate:"required"`
}

type HarvestPatch struct {
	Year   *int    `json:"year" validate:"omitempty,gt=0"`
	FarmID *string `json:"farmId" validate:"omitempty,min=1"`
}
