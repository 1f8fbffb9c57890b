package server

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	categoriadomain "github.com/kgsoft/estoque/internal/categoria/domain"
	categoriarepo "github.com/kgsoft/estoque/internal/categoria/repository"
	categoriaservice "github.com/kgsoft/estoque/internal/categoria/service"
	"github.com/kgsoft/estoque/internal/config"
	fornecedordomain "github.com/kgsoft/estoque/internal/fornecedor/domain"
	fornecedorrepo "github.com/kgsoft/estoque/internal/fornecedor/repository"
	fornecedorservice "github.com/kgsoft/estoque/internal/fornecedor/service"
	grupodomain "github.com/kgsoft/estoque/internal/grupoacesso/domain"
	gruporepo "github.com/kgsoft/estoque/internal/grupoacesso/repository"
	gruposervice "github.com/kgsoft/estoque/internal/grupoacesso/service"
	materialdomain "github.com/kgsoft/estoque/internal/material/domain"
	materialrepo "github.com/kgsoft/estoque/internal/material/repository"
	materialservice "github.com/kgsoft/estoque/internal/material/service"
	movimentodomain "github.com/kgsoft/estoque/internal/movimento/domain"
	movimentorepo "github.com/kgsoft/estoque/internal/movimento/repository"
	movimentoservice "github.com/kgsoft/estoque/internal/movimento/service"
	provisionservice "github.com/kgsoft/estoque/internal/provision/service"
	"github.com/kgsoft/estoque/internal/tenancy"
	tenancydomain "github.com/kgsoft/estoque/internal/tenancy/domain"
	tenancyrepo "github.com/kgsoft/estoque/internal/tenancy/repository"
	usuariodomain "github.com/kgsoft/estoque/internal/usuario/domain"
	usuariorepo "github.com/kgsoft/estoque/internal/usuario/repository"
	usuarioservice "github.com/kgsoft/estoque/internal/usuario/service"
	"github.com/kgsoft/estoque/pkg/db"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type noopMigrator struct{}

func (noopMigrator) Migrate(ctx context.Context, schema string) error { return nil }
func (noopMigrator) Drop(ctx context.Context, schema string) error    { return nil }

// newTestServer wires a full server over an in-memory database, the gin
// engine carrying the same middleware chain as production.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&tenancydomain.Tenant{},
		&usuariodomain.Usuario{},
		&grupodomain.GrupoAcesso{},
		&categoriadomain.Categoria{},
		&fornecedordomain.Fornecedor{},
		&materialdomain.Material{},
		&movimentodomain.Movimento{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	log := zap.NewNop()

	holder := config.NewStaticTenancyConfigHolder(config.DefaultTenancyConfig())
	tenantRepo := tenancyrepo.Provide()
	registry := tenancy.NewRegistry(conn, tenantRepo, "public", holder.Get().RegistryTTL)
	sessions := tenancy.NewSessionManager(conn, nil, registry, nil)

	materialRepo := materialrepo.Provide()

	engine := gin.New()
	engine.Use(tenancy.Resolver(""))
	engine.Use(ErrorHandlingMiddleware())

	srv := NewServer(ServerParams{
		Gin:      engine,
		Sessions: sessions,
		CategoriaSvc: categoriaservice.New(categoriaservice.Params{
			DB: conn, Log: log, GenID: node, Repo: categoriarepo.Provide(),
		}),
		FornecedorSvc: fornecedorservice.New(fornecedorservice.Params{
			DB: conn, Log: log, GenID: node, Repo: fornecedorrepo.Provide(),
		}),
		GrupoSvc: gruposervice.New(gruposervice.Params{
			DB: conn, Log: log, GenID: node, Repo: gruporepo.Provide(),
		}),
		MaterialSvc: materialservice.New(materialservice.Params{
			DB: conn, Log: log, GenID: node, Repo: materialRepo,
		}),
		MovimentoSvc: movimentoservice.New(movimentoservice.Params{
			DB: conn, Log: log, GenID: node, Repo: movimentorepo.Provide(), Materiais: materialRepo,
		}),
		UsuarioSvc: usuarioservice.New(usuarioservice.Params{
			DB: conn, Log: log, GenID: node, Repo: usuariorepo.Provide(),
		}),
		ProvisionSvc: provisionservice.New(provisionservice.Params{
			DB: conn, Log: log, GenID: node,
			Repo:     tenantRepo,
			Usuarios: usuariorepo.Provide(),
			Migrator: noopMigrator{},
			Registry: registry,
			Holder:   holder,
		}),
	})
	return srv, conn
}
