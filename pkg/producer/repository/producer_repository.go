package repository

import (
	"context"

	"agbrain/entities"
)

// ProducerRepository finders return (nil, nil) when nothing matches.
type ProducerRepository interface {
	Create(ctx context.Context, p *entities.Producer) error
	FindAll(ctx context.Context) ([]entities.Producer, error)
	FindByID(ctx context.Context, id string) (*entities.Producer, error)
	FindByDocument(ctx context.Context, document string) (*entities.Producer, error)
	Update(ctx context.Context, p *entities.Producer) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
