package serviceImp

import (
	"context"
	"fmt"

	"agbrain/entities"
	"agbrain/pkg/apperr"
	repo "agbrain/pkg/harvest/repository"
	"agbrain/pkg/harvest/service"
)

type harvestSvc struct{ r repo.HarvestRepository }

func NewHarvestService(r repo.HarvestRepository) service.HarvestService { return &harvestSvc{r} }

func (s *harvestSvc) Create(ctx context.Context, in service.CreateHarvestInput) (*entities.Harvest, error) {
	h := &entities.Harvest{Year: in.Year, FarmID: in.FarmID}
	if err := s.r.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("create harvest: %w", err)
	}
	return h, nil
}

func (s *harvestSvc) FindAll(ctx context.Context) ([]entities.Harvest, error) {
	return s.r.FindAll(ctx)
}

func (s *harvestSvc) FindOne(ctx context.Context, id string) (*entities.Harvest, error) {
	h, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find harvest: %w", err)
	}
	if h == nil {
		return nil, apperr.NotFound("Harvest not found")
	}
	return h, nil
}

func (s *harvestSvc) Update(ctx context.Context, id string, p service.HarvestPatch) (*entities.Harvest, error) {
	h, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Year != nil {
		h.Year = *p.Year
	}
	if p.FarmID != nil {
		h.FarmID = *p.FarmID
	}
	if err := s.r.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("update harvest: %w", err)
	}
	return h, nil
}

func (s *harvestSvc) Remove(ctx context.Context, id string) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete harvest: %w", err)
	}
	return nil
}
