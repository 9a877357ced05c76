package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agbrain/entities"
	"agbrain/pkg/harvest/repository"
)

type harvestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HarvestRepository { return &harvestRepo{db} }

func (r *harvestRepo) Create(ctx context.Context, h *entities.Harvest) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *harvestRepo) FindAll(ctx context.Context) ([]entities.Harvest, error) {
	out := []entities.Harvest{}
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *harvestRepo) FindByID(ctx context.Context, id string) (*entities.Harvest, error) {
	var h entities.Harvest
	if err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *harvestRepo) Update(ctx context.Context, h *entities.Harvest) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *harvestRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Harvest{}, "id = ?", id).Error
}
