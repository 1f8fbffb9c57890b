package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, categoria *Categoria) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Categoria, error)
	Update(ctx context.Context, db *gorm.DB, categoria *Categoria) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
