package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/categoria/domain"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/internal/tenancy"
	"github.com/kgsoft/estoque/pkg/datatable"
	"go.uber.org/fx"
	"go.uber.org/zap"
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
		log:   p.Log.Named("categoria.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Categoria, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, domain.ErrInvalidNome
	}

	situacao := reference.SituacaoAtivo
	if req.Situacao != "" {
		parsed, err := reference.ParseSituacao(req.Situacao)
		if err != nil {
			return nil, domain.ErrInvalidSituacao
		}
		situacao = parsed
	}

	now := time.Now().UTC()
	c := &domain.Categoria{
		ID:        s.genID.Generate(),
		Nome:      nome,
		Situacao:  situacao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, tenancy.DB(ctx, s.db), c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Categoria, error) {
	categoriaID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	c, err := s.repo.FindByID(ctx, tenancy.DB(ctx, s.db), categoriaID.Int64())
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Categoria, error) {
	categoriaID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	db := tenancy.DB(ctx, s.db)
	c, err := s.repo.FindByID(ctx, db, categoriaID.Int64())
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, domain.ErrInvalidNome
		}
		c.Nome = nome
	}
	if req.Situacao != nil {
		situacao, err := reference.ParseSituacao(*req.Situacao)
		if err != nil {
			return nil, domain.ErrInvalidSituacao
		}
		c.Situacao = situacao
	}

	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, db, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	categoriaID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	db := tenancy.DB(ctx, s.db)
	c, err := s.repo.FindByID(ctx, db, categoriaID.Int64())
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, db, categoriaID.Int64())
}

func (s *Service) Search(ctx context.Context, req datatable.Request) (*datatable.Result[domain.Categoria], error) {
	return datatable.Paginate[domain.Categoria](ctx, tenancy.DB(ctx, s.db), domain.Columns, req)
}
