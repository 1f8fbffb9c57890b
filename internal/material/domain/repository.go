package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, material *Material) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Material, error)
	// FindByIDForUpdate locks the row until the surrounding transaction
	// ends, serializing concurrent balance adjustments.
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, id int64) (*Material, error)
	Update(ctx context.Context, db *gorm.DB, material *Material) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
