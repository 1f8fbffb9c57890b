package repository

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/internal/categoria/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, categoria *domain.Categoria) error {
	return db.WithContext(ctx).Create(categoria).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Categoria, error) {
	var c domain.Categoria
	err := db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, categoria *domain.Categoria) error {
	return db.WithContext(ctx).Save(categoria).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Categoria{}, "id = ?", id).Error
}
