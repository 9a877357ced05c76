package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agbrain/entities"
	"agbrain/pkg/farm/repository"
	"agbrain/pkg/store"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(ctx context.Context, f *entities.Farm) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *farmRepo) FindAll(ctx context.Context) ([]entities.Farm, error) {
	out := []entities.Farm{}
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) FindByID(ctx context.Context, id string) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) Update(ctx context.Context, f *entities.Farm) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *farmRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Farm{}, "id = ?", id).Error
}

func (r *farmRepo) Count(ctx context.Context) (int64, error) {
	return store.Count(ctx, r.db, &entities.Farm{})
}

func (r *farmRepo) SumColumns(ctx context.Context, columns ...string) (map[string]float64, error) {
	return store.Sum(ctx, r.db, &entities.Farm{}, columns...)
}

func (r *farmRepo) CountByState(ctx context.Context) ([]store.GroupCount, error) {
	return store.GroupCountBy(ctx, r.db, &entities.Farm{}, "state")
}
