package tenancy

import (
	"database/sql"

	"github.com/kgsoft/estoque/internal/config"
	"github.com/kgsoft/estoque/internal/observability/metrics"
	"github.com/kgsoft/estoque/internal/tenancy/domain"
	"github.com/kgsoft/estoque/internal/tenancy/repository"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("tenancy",
	fx.Provide(repository.Provide),
	fx.Provide(newRegistry),
	fx.Provide(newSwitcher),
	fx.Provide(newRouter),
	fx.Provide(NewSessionManager),
)

func newRegistry(db *gorm.DB, repo domain.Repository, holder *config.TenancyConfigHolder) *Registry {
	cfg := holder.Get()
	return NewRegistry(db, repo, cfg.DefaultSchema, cfg.RegistryTTL)
}

func newSwitcher(holder *config.TenancyConfigHolder) SchemaSwitcher {
	return NewSearchPathSwitcher(holder.Get().DefaultSchema)
}

func newRouter(pool *sql.DB, registry *Registry, switcher SchemaSwitcher, m *metrics.Metrics, holder *config.TenancyConfigHolder) *Router {
	cfg := holder.Get()
	return NewRouter(pool, registry, switcher, m, cfg.DefaultSchema, cfg.AcquireTimeout)
}
