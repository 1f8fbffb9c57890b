package repository

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/internal/material/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, material *domain.Material) error {
	return db.WithContext(ctx).Create(material).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Material, error) {
	var m domain.Material
	err := db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repo) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id int64) (*domain.Material, error) {
	stmt := db.WithContext(ctx)
	// sqlite serializes writers on its own and rejects FOR UPDATE
	if db.Dialector.Name() == "postgres" {
		stmt = stmt.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var m domain.Material
	err := stmt.First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, material *domain.Material) error {
	return db.WithContext(ctx).Save(material).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Material{}, "id = ?", id).Error
}
