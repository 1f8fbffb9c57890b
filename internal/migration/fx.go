package migration

import (
	"database/sql"

	categoriadomain "github.com/kgsoft/estoque/internal/categoria/domain"
	fornecedordomain "github.com/kgsoft/estoque/internal/fornecedor/domain"
	grupodomain "github.com/kgsoft/estoque/internal/grupoacesso/domain"
	materialdomain "github.com/kgsoft/estoque/internal/material/domain"
	movimentodomain "github.com/kgsoft/estoque/internal/movimento/domain"
	tenancydomain "github.com/kgsoft/estoque/internal/tenancy/domain"
	usuariodomain "github.com/kgsoft/estoque/internal/usuario/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Provide(NewTenantMigrator),
	fx.Invoke(bootstrap),
)

// bootstrap brings the default schema up to date on startup. On the
// sqlite development database there is a single schema, so the whole
// model set is auto-migrated instead.
func bootstrap(gdb *gorm.DB, sqlDB *sql.DB, log *zap.Logger) error {
	if gdb.Dialector.Name() != "postgres" {
		log.Info("banco de desenvolvimento, aplicando auto-migration")
		return gdb.AutoMigrate(
			&tenancydomain.Tenant{},
			&usuariodomain.Usuario{},
			&grupodomain.GrupoAcesso{},
			&categoriadomain.Categoria{},
			&fornecedordomain.Fornecedor{},
			&materialdomain.Material{},
			&movimentodomain.Movimento{},
		)
	}

	log.Info("aplicando migrations do schema default")
	return RunDefaultMigrations(sqlDB)
}
