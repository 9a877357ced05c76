package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agbrain/entities"
	"agbrain/pkg/crop/repository"
	"agbrain/pkg/store"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cropRepo) FindAll(ctx context.Context) ([]entities.Crop, error) {
	out := []entities.Crop{}
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) FindByID(ctx context.Context, id string) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) Update(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cropRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Crop{}, "id = ?", id).Error
}

func (r *cropRepo) CountByName(ctx context.Context) ([]store.GroupCount, error) {
	return store.GroupCountBy(ctx, r.db, &entities.Crop{}, "name")
}
