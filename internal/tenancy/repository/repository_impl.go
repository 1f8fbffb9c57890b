package repository

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/internal/tenancy/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, tenant *domain.Tenant) error {
	return db.WithContext(ctx).Create(tenant).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, externalID, status string) error {
	return db.WithContext(ctx).
		Model(&domain.Tenant{}).
		Where("external_id = ?", externalID).
		Update("status", status).Error
}

func (r *repo) FindByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Tenant, error) {
	var tenants []*domain.Tenant
	err := db.WithContext(ctx).Order("nome asc").Find(&tenants).Error
	return tenants, err
}
