package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, grupo *GrupoAcesso) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*GrupoAcesso, error)
	Update(ctx context.Context, db *gorm.DB, grupo *GrupoAcesso) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
