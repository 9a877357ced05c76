package service

import (
	"context"

	"agbrain/entities"
)

type ProducerService interface {
	Create(ctx context.Context, in CreateProducerInput) (*entities.Producer, error)
	FindAll(ctx context.Context) ([]entities.Producer, error)
	FindOne(ctx context.Context, id string) (*entities.Producer, error)
	Update(ctx context.Context, id string, patch ProducerPatch) (*entities.Producer, error)
	Remove(ctx context.Context, id string) error
}

type CreateProducerInput struct {
	Name     string `json:"name" validate:"required"`
	Document string `json:"document" validate:"required"` // CPF or CNPJ, punctuation allowed
}

// ProducerPatch only carries name: the document is fixed once registered.
type ProducerPatch struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}
