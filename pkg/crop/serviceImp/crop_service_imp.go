package serviceImp

import (
	"context"
	"fmt"

	"agbrain/entities"
	"agbrain/pkg/apperr"
	repo "agbrain/pkg/crop/repository"
	"agbrain/pkg/crop/service"
)

type cropSvc struct{ r repo.CropRepository }

func NewCropService(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) Create(ctx context.Context, in service.CreateCropInput) (*entities.Crop, error) {
	c := &entities.Crop{Name: in.Name, HarvestID: in.HarvestID}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create crop: %w", err)
	}
	return c, nil
}

func (s *cropSvc) FindAll(ctx context.Context) ([]entities.Crop, error) {
	return s.r.FindAll(ctx)
}

func (s *cropSvc) FindOne(ctx context.Context, id string) (*entities.Crop, error) {
	c, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find crop: %w", err)
	}
	if c == nil {
		return nil, apperr.NotFound("Crop not found")
	}
	return c, nil
}

func (s *cropSvc) Update(ctx context.Context, id string, p service.CropPatch) (*entities.Crop, error) {
	c, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.HarvestID != nil {
		c.HarvestID = *p.HarvestID
	}
	if err := s.r.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update crop: %w", err)
	}
	return c, nil
}

func (s *cropSvc) Remove(ctx context.Context, id string) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete crop: %w", err)
	}
	return nil
}

func (s *cropSvc) CountByName(ctx context.Context) ([]service.CropCount, error) {
	groups, err := s.r.CountByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("count crops by name: %w", err)
	}
	out := make([]service.CropCount, len(groups))
	for i, g := range groups {
		out[i] = service.CropCount{Crop: g.Key, Count: g.Count}
	}
	return out, nil
}
