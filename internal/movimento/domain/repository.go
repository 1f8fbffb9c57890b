package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, movimento *Movimento) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Movimento, error)
	ListByMaterial(ctx context.Context, db *gorm.DB, materialID int64) ([]Movimento, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
