package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, tenant *Tenant) error
	UpdateStatus(ctx context.Context, db *gorm.DB, externalID, status string) error
	FindByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*Tenant, error)
	List(ctx context.Context, db *gorm.DB) ([]*Tenant, error)
}
