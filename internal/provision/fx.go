package provision

import (
	"github.com/kgsoft/estoque/internal/migration"
	"github.com/kgsoft/estoque/internal/provision/service"
	"go.uber.org/fx"
)

var Module = fx.Module("provision.service",
	fx.Provide(func(m *migration.TenantMigrator) service.Migrator { return m }),
	fx.Provide(service.New),
)
