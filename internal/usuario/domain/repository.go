package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, usuario *Usuario) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Usuario, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Usuario, error)
	Update(ctx context.Context, db *gorm.DB, usuario *Usuario) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
