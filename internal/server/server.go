package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kgsoft/estoque/internal/categoria"
	categoriadomain "github.com/kgsoft/estoque/internal/categoria/domain"
	"github.com/kgsoft/estoque/internal/config"
	"github.com/kgsoft/estoque/internal/fornecedor"
	fornecedordomain "github.com/kgsoft/estoque/internal/fornecedor/domain"
	"github.com/kgsoft/estoque/internal/grupoacesso"
	grupodomain "github.com/kgsoft/estoque/internal/grupoacesso/domain"
	"github.com/kgsoft/estoque/internal/material"
	materialdomain "github.com/kgsoft/estoque/internal/material/domain"
	"github.com/kgsoft/estoque/internal/movimento"
	movimentodomain "github.com/kgsoft/estoque/internal/movimento/domain"
	obslogger "github.com/kgsoft/estoque/internal/observability/logger"
	obsmetrics "github.com/kgsoft/estoque/internal/observability/metrics"
	"github.com/kgsoft/estoque/internal/provision"
	provisiondomain "github.com/kgsoft/estoque/internal/provision/domain"
	"github.com/kgsoft/estoque/internal/tenancy"
	"github.com/kgsoft/estoque/internal/usuario"
	usuariodomain "github.com/kgsoft/estoque/internal/usuario/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	categoria.Module,
	fornecedor.Module,
	grupoacesso.Module,
	material.Module,
	movimento.Module,
	usuario.Module,
	provision.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

// NewEngine assembles the middleware chain. The tenant resolver runs
// before the error handler so every downstream layer, error mapping
// included, sees the resolved tenant.
func NewEngine(cfg config.Config, m *obsmetrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(m))
	r.Use(tenancy.Resolver(cfg.TenantHeader))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, m *obsmetrics.Metrics) *gin.Engine {
	return NewEngine(cfg, m)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	sessions      *tenancy.SessionManager
	metrics       *obsmetrics.Metrics
	categoriaSvc  categoriadomain.Service
	fornecedorSvc fornecedordomain.Service
	grupoSvc      grupodomain.Service
	materialSvc   materialdomain.Service
	movimentoSvc  movimentodomain.Service
	usuarioSvc    usuariodomain.Service
	provisionSvc  provisiondomain.Service
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Sessions      *tenancy.SessionManager
	Metrics       *obsmetrics.Metrics `optional:"true"`
	CategoriaSvc  categoriadomain.Service
	FornecedorSvc fornecedordomain.Service
	GrupoSvc      grupodomain.Service
	MaterialSvc   materialdomain.Service
	MovimentoSvc  movimentodomain.Service
	UsuarioSvc    usuariodomain.Service
	ProvisionSvc  provisiondomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:        p.Gin,
		sessions:      p.Sessions,
		metrics:       p.Metrics,
		categoriaSvc:  p.CategoriaSvc,
		fornecedorSvc: p.FornecedorSvc,
		grupoSvc:      p.GrupoSvc,
		materialSvc:   p.MaterialSvc,
		movimentoSvc:  p.MovimentoSvc,
		usuarioSvc:    p.UsuarioSvc,
		provisionSvc:  p.ProvisionSvc,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")

	// provisioning runs against the default schema, outside any tenant
	api.POST("/tenants", s.ProvisionTenant)
	api.GET("/tenants", s.ListTenants)

	api.GET("/referencias/situacoes", s.ListSituacoes)
	api.GET("/referencias/tipos-movimento", s.ListTiposMovimento)
	api.GET("/referencias/unidades-medida", s.ListUnidadesMedida)

	scoped := api.Group("", s.TenantSession())

	scoped.POST("/login", s.Login)

	scoped.POST("/categorias", s.CreateCategoria)
	scoped.GET("/categorias/datatable", s.SearchCategorias)
	scoped.GET("/categorias/:id", s.GetCategoria)
	scoped.PUT("/categorias/:id", s.UpdateCategoria)
	scoped.DELETE("/categorias/:id", s.DeleteCategoria)

	scoped.POST("/fornecedores", s.CreateFornecedor)
	scoped.GET("/fornecedores/datatable", s.SearchFornecedores)
	scoped.GET("/fornecedores/:id", s.GetFornecedor)
	scoped.PUT("/fornecedores/:id", s.UpdateFornecedor)
	scoped.DELETE("/fornecedores/:id", s.DeleteFornecedor)

	scoped.POST("/grupos-acesso", s.CreateGrupoAcesso)
	scoped.GET("/grupos-acesso/datatable", s.SearchGruposAcesso)
	scoped.GET("/grupos-acesso/:id", s.GetGrupoAcesso)
	scoped.PUT("/grupos-acesso/:id", s.UpdateGrupoAcesso)
	scoped.DELETE("/grupos-acesso/:id", s.DeleteGrupoAcesso)

	scoped.POST("/materiais", s.CreateMaterial)
	scoped.GET("/materiais/datatable", s.SearchMateriais)
	scoped.GET("/materiais/:id", s.GetMaterial)
	scoped.PUT("/materiais/:id", s.UpdateMaterial)
	scoped.DELETE("/materiais/:id", s.DeleteMaterial)
	scoped.GET("/materiais/:id/movimentos", s.ListMovimentosByMaterial)

	scoped.POST("/movimentos", s.RegistrarMovimento)
	scoped.GET("/movimentos/datatable", s.SearchMovimentos)
	scoped.GET("/movimentos/:id", s.GetMovimento)
	scoped.DELETE("/movimentos/:id", s.EstornarMovimento)

	scoped.POST("/usuarios", s.CreateUsuario)
	scoped.GET("/usuarios/datatable", s.SearchUsuarios)
	scoped.GET("/usuarios/:id", s.GetUsuario)
	scoped.PUT("/usuarios/:id", s.UpdateUsuario)
	scoped.DELETE("/usuarios/:id", s.DeleteUsuario)
}

func (s *Server) countDatatable(entity string) {
	if s.metrics != nil {
		s.metrics.DatatableQueries.WithLabelValues(entity).Inc()
	}
}
