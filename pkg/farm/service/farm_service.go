package service

import (
	"context"

	"agbrain/entities"
)

type FarmService interface {
	Create(ctx context.Context, in CreateFarmInput) (*entities.Farm, error)
	FindAll(ctx context.Context) ([]entities.Farm, error)
	FindOne(ctx context.Context, id string) (*entities.Farm, error)
	Update(ctx context.Context, id string, patch FarmPatch) (*entities.Farm, error)
	Remove(ctx context.Context, id string) error

	TotalCount(ctx context.Context) (*CountResult, error)
	TotalArea(ctx context.Context) (*TotalAreaResult, error)
	AreaByType(ctx context.Context) (*AreaByTypeResult, error)
	CountByState(ctx context.Context) ([]StateCount, error)
}

type CreateFarmInput struct {
	Name           string  `json:"name" validate:"required"`
	City           string  `json:"city" validate:"required"`
	State          string  `json:"state" validate:"required"`
	TotalArea      float64 `json:"totalArea" validate:"gt=0"`
	ArableArea     float64 `json:"arableArea" validate:"gt=0"`
	VegetationArea float64 `json:"vegetationArea" validate:"gt=0"`
	ProducerID     string  `json:"producerId" validate:"required"`
}

type FarmPatch struct {
	Name           *string  `json:"name" validate:"omitempty,min=1"`
	City           *string  `json:"city" validate:"omitempty,min=1"`
	State          *string  `json:"state" validate:"omitempty,min=1"`
	TotalArea      *float64 `json:"totalArea" validate:"omitempty,gt=0"`
	ArableArea     *float64 `json:"arableArea" validate:"omitempty,gt=0"`
	VegetationArea *float64 `json:"vegetationArea" validate:"omitempty,gt=0"`
	ProducerID     *string  `json:"producerId" validate:"omitempty,min=1"`
}

type CountResult struct {
	Count int64 `json:"count"`
}

type TotalAreaResult struct {
	TotalArea float64 `json:"totalArea"`
}

type AreaByTypeResult struct {
	ArableArea     float64 `json:"arableArea"`
	VegetationArea float64 `json:"vegetationArea"`
}

type StateCount struct {
	State string `json:"state"`
	Count int64  `json:"count"`
}
