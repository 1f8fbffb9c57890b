package repository

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/internal/usuario/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, usuario *domain.Usuario) error {
	return db.WithContext(ctx).Create(usuario).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Usuario, error) {
	var u domain.Usuario
	err := db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Usuario, error) {
	var u domain.Usuario
	err := db.WithContext(ctx).First(&u, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, usuario *domain.Usuario) error {
	return db.WithContext(ctx).Save(usuario).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Usuario{}, "id = ?", id).Error
}
