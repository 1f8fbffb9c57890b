package repository

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/internal/fornecedor/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, fornecedor *domain.Fornecedor) error {
	return db.WithContext(ctx).Create(fornecedor).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Fornecedor, error) {
	var f domain.Fornecedor
	err := db.WithContext(ctx).First(&f, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, fornecedor *domain.Fornecedor) error {
	return db.WithContext(ctx).Save(fornecedor).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Fornecedor{}, "id = ?", id).Error
}
