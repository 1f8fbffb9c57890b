package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, fornecedor *Fornecedor) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Fornecedor, error)
	Update(ctx context.Context, db *gorm.DB, fornecedor *Fornecedor) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
