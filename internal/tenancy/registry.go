package tenancy

import (
	"context"
	"fmt"
	"time"

	"github.com/kgsoft/estoque/internal/tenancy/domain"
	"github.com/kgsoft/estoque/pkg/tenant"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// Registry resolves tenant identifiers to registered schema names against
// the tenants table in the default schema, with a short-TTL cache so hot
// lookups skip the registry round trip.
type Registry struct {
	db    *gorm.DB
	repo  domain.Repository
	cache *gocache.Cache

	defaultSchema string
}

func NewRegistry(db *gorm.DB, repo domain.Repository, defaultSchema string, ttl time.Duration) *Registry {
	if defaultSchema == "" {
		defaultSchema = tenant.DefaultTenant
	}
	return &Registry{
		db:            db,
		repo:          repo,
		cache:         gocache.New(ttl, 2*ttl),
		defaultSchema: defaultSchema,
	}
}

// SchemaFor returns the registered schema for tenantID, or
// ErrSchemaNotFound when the tenant is unknown or not active.
func (r *Registry) SchemaFor(ctx context.Context, tenantID string) (string, error) {
	if tenantID == "" || tenantID == tenant.DefaultTenant {
		return r.defaultSchema, nil
	}

	if schema, ok := r.cache.Get(tenantID); ok {
		return schema.(string), nil
	}

	row, err := r.repo.FindByExternalID(ctx, r.db, tenantID)
	if err != nil {
		return "", fmt.Errorf("lookup tenant %q: %w", tenantID, err)
	}
	if row == nil || row.Status != domain.StatusActive {
		return "", fmt.Errorf("%w: tenant %q", ErrSchemaNotFound, tenantID)
	}

	r.cache.SetDefault(tenantID, row.SchemaName)
	return row.SchemaName, nil
}

// Invalidate drops a cached mapping, used after provisioning state changes.
func (r *Registry) Invalidate(tenantID string) {
	r.cache.Delete(tenantID)
}
