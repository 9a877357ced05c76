package service

import (
	"context"

	"agbrain/entities"
)

type CropService interface {
	Create(ctx context.Context, in CreateCropInput) (*entities.Crop, error)
	FindAll(ctx context.Context) ([]entities.Crop, error)
	FindOne(ctx context.Context, id string) (*entities.Crop, error)
	Update(ctx context.Context, id string, patch CropPatch) (*entities.Crop, error)
	Remove(ctx context.Context, id string) error

	CountByName(ctx context.Context) ([]CropCount, error)
}

type CreateCropInput struct {
	Name      string `json:"name" validate:"required"`
	HarvestID string `json:"harvestId" validate:"required"`
}

type CropPatch struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	HarvestID *string `json:"harvestId" validate:"omitempty,min=1"`
}

type CropCount struct {
	Crop  string `json:"crop"`
	Count int64  `json:"count"`
}
