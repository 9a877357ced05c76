package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agbrain/entities"
	"agbrain/pkg/producer/repository"
	"agbrain/pkg/store"
)

type producerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProducerRepository { return &producerRepo{db} }

func (r *producerRepo) Create(ctx context.Context, p *entities.Producer) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *producerRepo) FindAll(ctx context.Context) ([]entities.Producer, error) {
	out := []entities.Producer{}
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *producerRepo) FindByID(ctx context.Context, id string) (*entities.Producer, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *producerRepo) FindByDocument(ctx context.Context, document string) (*entities.Producer, error) {
	return r.first(ctx, "document = ?", document)
}

func (r *producerRepo) first(ctx context.Context, query string, args ...any) (*entities.Producer, error) {
	var p entities.Producer
	if err := r.db.WithContext(ctx).Where(query, args...).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *producerRepo) Update(ctx context.Context, p *entities.Producer) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *producerRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Producer{}, "id = ?", id).Error
}

func (r *producerRepo) Count(ctx context.Context) (int64, error) {
	return store.Count(ctx, r.db, &entities.Producer{})
}
