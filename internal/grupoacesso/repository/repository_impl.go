package repository

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/internal/grupoacesso/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, grupo *domain.GrupoAcesso) error {
	return db.WithContext(ctx).Create(grupo).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.GrupoAcesso, error) {
	var g domain.GrupoAcesso
	err := db.WithContext(ctx).First(&g, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, grupo *domain.GrupoAcesso) error {
	return db.WithContext(ctx).Save(grupo).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.GrupoAcesso{}, "id = ?", id).Error
}
