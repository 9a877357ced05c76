package serviceImp

import (
	"context"
	"fmt"

	"agbrain/entities"
	"agbrain/pkg/apperr"
	repo "agbrain/pkg/farm/repository"
	"agbrain/pkg/farm/service"
	"agbrain/pkg/logger"
	"agbrain/pkg/rules"
)

const (
	colTotalArea      = "total_area"
	colArableArea     = "arable_area"
	colVegetationArea = "vegetation_area"
)

type farmSvc struct {
	r   repo.FarmRepository
	log *logger.Logger
}

func NewFarmService(r repo.FarmRepository, log *logger.Logger) service.FarmService {
	return &farmSvc{r: r, log: log.With("service", "FarmService")}
}

func (s *farmSvc) Create(ctx context.Context, in service.CreateFarmInput) (*entities.Farm, error) {
	if err := rules.CheckFarmArea(in.TotalArea, in.ArableArea, in.VegetationArea); err != nil {
		return nil, err
	}
	f := &entities.Farm{
		Name:           in.Name,
		City:           in.City,
		State:          in.State,
		TotalArea:      in.TotalArea,
		ArableArea:     in.ArableArea,
		VegetationArea: in.VegetationArea,
		ProducerID:     in.ProducerID,
	}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create farm: %w", err)
	}
	s.log.Debug("farm created", "id", f.ID, "producer_id", f.ProducerID)
	return f, nil
}

func (s *farmSvc) FindAll(ctx context.Context) ([]entities.Farm, error) {
	return s.r.FindAll(ctx)
}

func (s *farmSvc) FindOne(ctx context.Context, id string) (*entities.Farm, error) {
	f, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find farm: %w", err)
	}
	if f == nil {
		return nil, apperr.NotFound("Farm not found")
	}
	return f, nil
}

// Update merges the patch as is. The area rule is only enforced on create,
// so a patch can leave a farm with arable+vegetation above its total.
func (s *farmSvc) Update(ctx context.Context, id string, p service.FarmPatch) (*entities.Farm, error) {
	f, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.City != nil {
		f.City = *p.City
	}
	if p.State != nil {
		f.State = *p.State
	}
	if p.TotalArea != nil {
		f.TotalArea = *p.TotalArea
	}
	if p.ArableArea != nil {
		f.ArableArea = *p.ArableArea
	}
	if p.VegetationArea != nil {
		f.VegetationArea = *p.VegetationArea
	}
	if p.ProducerID != nil {
		f.ProducerID = *p.ProducerID
	}
	if err := s.r.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("update farm: %w", err)
	}
	return f, nil
}

func (s *farmSvc) Remove(ctx context.Context, id string) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete farm: %w", err)
	}
	s.log.Debug("farm removed", "id", id)
	return nil
}

func (s *farmSvc) TotalCount(ctx context.Context) (*service.CountResult, error) {
	n, err := s.r.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count farms: %w", err)
	}
	return &service.CountResult{Count: n}, nil
}

func (s *farmSvc) TotalArea(ctx context.Context) (*service.TotalAreaResult, error) {
	sums, err := s.r.SumColumns(ctx, colTotalArea)
	if err != nil {
		return nil, fmt.Errorf("sum farm area: %w", err)
	}
	return &service.TotalAreaResult{TotalArea: sums[colTotalArea]}, nil
}

func (s *farmSvc) AreaByType(ctx context.Context) (*service.AreaByTypeResult, error) {
	sums, err := s.r.SumColumns(ctx, colArableArea, colVegetationArea)
	if err != nil {
		return nil, fmt.Errorf("sum farm area by type: %w", err)
	}
	return &service.AreaByTypeResult{
		ArableArea:     sums[colArableArea],
		VegetationArea: sums[colVegetationArea],
	}, nil
}

func (s *farmSvc) CountByState(ctx context.Context) ([]service.StateCount, error) {
	groups, err := s.r.CountByState(ctx)
	if err != nil {
		return nil, fmt.Errorf("count farms by state: %w", err)
	}
	out := make([]service.StateCount, len(groups))
	for i, g := range groups {
		out[i] = service.StateCount{State: g.Key, Count: g.Count}
	}
	return out, nil
}
