package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/kgsoft/estoque/internal/auth/password"
	"github.com/kgsoft/estoque/internal/config"
	"github.com/kgsoft/estoque/internal/observability/metrics"
	"github.com/kgsoft/estoque/internal/provision/domain"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/internal/tenancy"
	tenancydomain "github.com/kgsoft/estoque/internal/tenancy/domain"
	usuariodomain "github.com/kgsoft/estoque/internal/usuario/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Migrator seeds and tears down tenant schemas.
type Migrator interface {
	Migrate(ctx context.Context, schema string) error
	Drop(ctx context.Context, schema string) error
}

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     tenancydomain.Repository
	Usuarios usuariodomain.Repository
	Migrator Migrator
	Router   *tenancy.Router
	Registry *tenancy.Registry
	Holder   *config.TenancyConfigHolder
	Metrics  *metrics.Metrics `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     tenancydomain.Repository
	usuarios usuariodomain.Repository
	migrator Migrator
	router   *tenancy.Router
	registry *tenancy.Registry
	holder   *config.TenancyConfigHolder
	metrics  *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("provision.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		usuarios: p.Usuarios,
		migrator: p.Migrator,
		router:   p.Router,
		registry: p.Registry,
		holder:   p.Holder,
		metrics:  p.Metrics,
	}
}

func (s *Service) Provision(ctx context.Context, req domain.Request) (*tenancydomain.Tenant, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, domain.ErrInvalidNome
	}

	adminNome := strings.TrimSpace(req.AdminNome)
	adminEmail := strings.ToLower(strings.TrimSpace(req.AdminEmail))
	if adminNome == "" || len(req.AdminSenha) < 8 {
		return nil, domain.ErrInvalidAdmin
	}
	if _, err := mail.ParseAddress(adminEmail); err != nil {
		return nil, domain.ErrInvalidAdmin
	}

	externalID := strings.TrimSpace(req.ExternalID)
	if externalID == "" {
		externalID = slug.Make(nome)
	}
	if externalID == "" || externalID == "public" {
		return nil, domain.ErrInvalidTenant
	}

	cfg := s.holder.Get()
	schema := cfg.SchemaPrefix + strings.ReplaceAll(slug.Make(externalID), "-", "_")

	log := s.log.With(zap.String("tenant_id", externalID), zap.String("schema", schema))

	existing, err := s.repo.FindByExternalID(ctx, s.db, externalID)
	if err != nil {
		return nil, &domain.ProvisionError{Stage: "registry lookup", Err: err}
	}
	if existing != nil && existing.Status == tenancydomain.StatusActive {
		return nil, domain.ErrTenantExists
	}

	now := time.Now().UTC()
	row := existing
	if row == nil {
		row = &tenancydomain.Tenant{
			ID:         s.genID.Generate(),
			ExternalID: externalID,
			Nome:       nome,
			SchemaName: schema,
			Status:     tenancydomain.StatusProvisioning,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.repo.Insert(ctx, s.db, row); err != nil {
			return nil, &domain.ProvisionError{Stage: "registry insert", Err: err}
		}
	} else {
		// retry of an aborted attempt, reuse the row
		log.Info("retomando provisionamento abortado", zap.String("status", existing.Status))
		if err := s.repo.UpdateStatus(ctx, s.db, externalID, tenancydomain.StatusProvisioning); err != nil {
			return nil, &domain.ProvisionError{Stage: "registry update", Err: err}
		}
	}

	if err := s.migrator.Migrate(ctx, schema); err != nil {
		s.abort(ctx, log, externalID, schema)
		return nil, &domain.ProvisionError{Stage: "schema migration", Err: err}
	}

	if err := s.seedAdmin(ctx, schema, adminNome, adminEmail, req.AdminSenha); err != nil {
		s.abort(ctx, log, externalID, schema)
		return nil, &domain.ProvisionError{Stage: "admin seed", Err: err}
	}

	if err := s.repo.UpdateStatus(ctx, s.db, externalID, tenancydomain.StatusActive); err != nil {
		s.abort(ctx, log, externalID, schema)
		return nil, &domain.ProvisionError{Stage: "activation", Err: err}
	}
	s.registry.Invalidate(externalID)

	if s.metrics != nil {
		s.metrics.TenantsProvisioned.Inc()
	}
	log.Info("tenant provisionado")

	row.Status = tenancydomain.StatusActive
	return row, nil
}

func (s *Service) List(ctx context.Context) ([]*tenancydomain.Tenant, error) {
	return s.repo.List(ctx, s.db)
}

// abort undoes a half-finished attempt: the schema is dropped and the
// registry row marked failed, so the tenant never becomes routable with
// partial state.
func (s *Service) abort(ctx context.Context, log *zap.Logger, externalID, schema string) {
	if err := s.migrator.Drop(ctx, schema); err != nil {
		log.Error("falha ao remover schema abortado", zap.Error(err))
	}
	if err := s.repo.UpdateStatus(ctx, s.db, externalID, tenancydomain.StatusFailed); err != nil {
		log.Error("falha ao marcar tenant como failed", zap.Error(err))
	}
	s.registry.Invalidate(externalID)
}

// seedAdmin writes the first administrator inside the tenant schema.
func (s *Service) seedAdmin(ctx context.Context, schema, nome, email, senha string) error {
	hash, err := password.Hash(senha)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &usuariodomain.Usuario{
		ID:        s.genID.Generate(),
		Nome:      nome,
		Email:     email,
		SenhaHash: hash,
		Situacao:  reference.SituacaoAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if s.db.Dialector.Name() != "postgres" {
		return s.usuarios.Create(ctx, s.db, admin)
	}

	handle, err := s.router.ForSchema(ctx, schema)
	if err != nil {
		return err
	}
	defer handle.Release(ctx)

	scoped, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: handle.Conn()}), &gorm.Config{
		Logger: s.db.Logger,
	})
	if err != nil {
		return err
	}
	return s.usuarios.Create(ctx, scoped, admin)
}
