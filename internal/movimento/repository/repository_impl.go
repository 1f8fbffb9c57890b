package repository

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/internal/movimento/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, movimento *domain.Movimento) error {
	return db.WithContext(ctx).Create(movimento).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Movimento, error) {
	var m domain.Movimento
	err := db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repo) ListByMaterial(ctx context.Context, db *gorm.DB, materialID int64) ([]domain.Movimento, error) {
	var items []domain.Movimento
	err := db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Order("data desc").
		Find(&items).Error
	return items, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Movimento{}, "id = ?", id).Error
}
