package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/grupoacesso/domain"
	"github.com/kgsoft/estoque/internal/tenancy"
	"github.com/kgsoft/estoque/pkg/datatable"
	"github.com/kgsoft/estoque/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("grupoacesso.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.GrupoAcesso, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, domain.ErrInvalidNome
	}

	now := time.Now().UTC()
	g := &domain.GrupoAcesso{
		ID:        s.genID.Generate(),
		Nome:      nome,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Permissoes != nil {
		g.Permissoes = datatypes.JSONMap(req.Permissoes)
	}
	if err := s.repo.Create(ctx, tenancy.DB(ctx, s.db), g); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateNome
		}
		return nil, err
	}
	return g, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.GrupoAcesso, error) {
	grupoID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	g, err := s.repo.FindByID(ctx, tenancy.DB(ctx, s.db), grupoID.Int64())
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.GrupoAcesso, error) {
	grupoID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	conn := tenancy.DB(ctx, s.db)
	g, err := s.repo.FindByID(ctx, conn, grupoID.Int64())
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, domain.ErrInvalidNome
		}
		g.Nome = nome
	}
	if req.Permissoes != nil {
		g.Permissoes = datatypes.JSONMap(req.Permissoes)
	}

	g.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, conn, g); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateNome
		}
		return nil, err
	}
	return g, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	grupoID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	conn := tenancy.DB(ctx, s.db)
	g, err := s.repo.FindByID(ctx, conn, grupoID.Int64())
	if err != nil {
		return err
	}
	if g == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, conn, grupoID.Int64())
}

func (s *Service) Search(ctx context.Context, req datatable.Request) (*datatable.Result[domain.GrupoAcesso], error) {
	return datatable.Paginate[domain.GrupoAcesso](ctx, tenancy.DB(ctx, s.db), domain.Columns, req)
}
