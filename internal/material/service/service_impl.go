package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/material/domain"
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
		log:   p.Log.Named("material.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Material, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, domain.ErrInvalidNome
	}

	categoriaID, err := snowflake.ParseString(strings.TrimSpace(req.CategoriaID))
	if err != nil {
		return nil, domain.ErrInvalidCategoria
	}

	var fornecedorID *snowflake.ID
	if req.FornecedorID != nil && strings.TrimSpace(*req.FornecedorID) != "" {
		id, err := snowflake.ParseString(strings.TrimSpace(*req.FornecedorID))
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		fornecedorID = &id
	}

	unidade := reference.UnidadeUnidade
	if req.Unidade != "" {
		parsed, err := reference.ParseUnidadeMedida(req.Unidade)
		if err != nil {
			return nil, domain.ErrInvalidUnidade
		}
		unidade = parsed
	}

	situacao := reference.SituacaoAtivo
	if req.Situacao != "" {
		parsed, err := reference.ParseSituacao(req.Situacao)
		if err != nil {
			return nil, domain.ErrInvalidSituacao
		}
		situacao = parsed
	}

	if err := validarFaixaEstoque(req.EstoqueMinimo, req.EstoqueMaximo); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := &domain.Material{
		ID:            s.genID.Generate(),
		Nome:          nome,
		CategoriaID:   categoriaID,
		FornecedorID:  fornecedorID,
		Unidade:       unidade,
		EstoqueMinimo: req.EstoqueMinimo,
		EstoqueMaximo: req.EstoqueMaximo,
		ValorUnitario: req.ValorUnitario,
		Situacao:      situacao,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, tenancy.DB(ctx, s.db), m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Material, error) {
	materialID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	m, err := s.repo.FindByID(ctx, tenancy.DB(ctx, s.db), materialID.Int64())
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Material, error) {
	materialID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	conn := tenancy.DB(ctx, s.db)
	m, err := s.repo.FindByID(ctx, conn, materialID.Int64())
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, domain.ErrInvalidNome
		}
		m.Nome = nome
	}
	if req.CategoriaID != nil {
		categoriaID, err := snowflake.ParseString(strings.TrimSpace(*req.CategoriaID))
		if err != nil {
			return nil, domain.ErrInvalidCategoria
		}
		m.CategoriaID = categoriaID
	}
	if req.FornecedorID != nil {
		if strings.TrimSpace(*req.FornecedorID) == "" {
			m.FornecedorID = nil
		} else {
			id, err := snowflake.ParseString(strings.TrimSpace(*req.FornecedorID))
			if err != nil {
				return nil, domain.ErrInvalidID
			}
			m.FornecedorID = &id
		}
	}
	if req.Unidade != nil {
		unidade, err := reference.ParseUnidadeMedida(*req.Unidade)
		if err != nil {
			return nil, domain.ErrInvalidUnidade
		}
		m.Unidade = unidade
	}
	if req.EstoqueMinimo != nil {
		m.EstoqueMinimo = *req.EstoqueMinimo
	}
	if req.EstoqueMaximo != nil {
		m.EstoqueMaximo = *req.EstoqueMaximo
	}
	if err := validarFaixaEstoque(m.EstoqueMinimo, m.EstoqueMaximo); err != nil {
		return nil, err
	}
	if req.ValorUnitario != nil {
		m.ValorUnitario = *req.ValorUnitario
	}
	if req.Situacao != nil {
		situacao, err := reference.ParseSituacao(*req.Situacao)
		if err != nil {
			return nil, domain.ErrInvalidSituacao
		}
		m.Situacao = situacao
	}

	m.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, conn, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	materialID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	conn := tenancy.DB(ctx, s.db)
	m, err := s.repo.FindByID(ctx, conn, materialID.Int64())
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, conn, materialID.Int64())
}

func (s *Service) Search(ctx context.Context, req datatable.Request) (*datatable.Result[domain.Material], error) {
	return datatable.Paginate[domain.Material](ctx, tenancy.DB(ctx, s.db), domain.Columns, req)
}

func validarFaixaEstoque(minimo, maximo float64) error {
	if minimo < 0 || maximo < 0 {
		return domain.ErrInvalidEstoque
	}
	if maximo > 0 && minimo > maximo {
		return domain.ErrInvalidEstoque
	}
	return nil
}
