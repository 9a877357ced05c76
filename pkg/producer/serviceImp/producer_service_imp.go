package serviceImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"agbrain/entities"
	"agbrain/pkg/apperr"
	"agbrain/pkg/logger"
	repo "agbrain/pkg/producer/repository"
	"agbrain/pkg/producer/service"
	"agbrain/pkg/rules"
)

type producerSvc struct {
	r   repo.ProducerRepository
	log *logger.Logger
}

func NewProducerService(r repo.ProducerRepository, log *logger.Logger) service.ProducerService {
	return &producerSvc{r: r, log: log.With("service", "ProducerService")}
}

func (s *producerSvc) Create(ctx context.Context, in service.CreateProducerInput) (*entities.Producer, error) {
	doc := rules.NormalizeDocument(in.Document)
	if err := rules.ValidateDocument(doc); err != nil {
		return nil, err
	}
	if err := rules.CheckDocumentAvailable(ctx, s.r, doc); err != nil {
		return nil, err
	}

	p := &entities.Producer{Name: in.Name, Document: doc}
	if err := s.r.Create(ctx, p); err != nil {
		// lost the race against a concurrent create with the same document
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.AlreadyExists("a producer with this document already exists")
		}
		return nil, fmt.Errorf("create producer: %w", err)
	}
	s.log.Debug("producer created", "id", p.ID)
	return p, nil
}

func (s *producerSvc) FindAll(ctx context.Context) ([]entities.Producer, error) {
	return s.r.FindAll(ctx)
}

func (s *producerSvc) FindOne(ctx context.Context, id string) (*entities.Producer, error) {
	p, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find producer: %w", err)
	}
	if p == nil {
		return nil, apperr.NotFound("Producer not found")
	}
	return p, nil
}

func (s *producerSvc) Update(ctx context.Context, id string, patch service.ProducerPatch) (*entities.Producer, error) {
	p, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if err := s.r.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update producer: %w", err)
	}
	return p, nil
}

// Remove does not touch the producer's farms; they stay behind as orphans.
func (s *producerSvc) Remove(ctx context.Context, id string) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete producer: %w", err)
	}
	s.log.Debug("producer removed", "id", id)
	return nil
}
