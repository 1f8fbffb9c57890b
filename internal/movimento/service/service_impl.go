package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	materialdomain "github.com/kgsoft/estoque/internal/material/domain"
	"github.com/kgsoft/estoque/internal/movimento/domain"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/internal/tenancy"
	"github.com/kgsoft/estoque/pkg/datatable"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Materiais materialdomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	repo      domain.Repository
	materiais materialdomain.Repository
	genID     *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("movimento.service"),
		repo:      p.Repo,
		materiais: p.Materiais,
		genID:     p.GenID,
	}
}

func (s *Service) Registrar(ctx context.Context, req domain.RegistrarRequest) (*domain.Movimento, error) {
	materialID, err := snowflake.ParseString(strings.TrimSpace(req.MaterialID))
	if err != nil {
		return nil, domain.ErrInvalidMaterial
	}

	tipo, err := reference.ParseTipoMovimento(req.Tipo)
	if err != nil {
		return nil, domain.ErrInvalidTipo
	}

	if req.Quantidade <= 0 {
		return nil, domain.ErrInvalidQuantidade
	}

	data := time.Now().UTC()
	if req.Data != nil {
		data = req.Data.UTC()
	}

	mov := &domain.Movimento{
		ID:         s.genID.Generate(),
		MaterialID: materialID,
		Tipo:       tipo,
		Quantidade: req.Quantidade,
		Data:       data,
		Observacao: req.Observacao,
		CreatedAt:  time.Now().UTC(),
	}

	err = tenancy.DB(ctx, s.db).Transaction(func(tx *gorm.DB) error {
		mat, err := s.materiais.FindByIDForUpdate(ctx, tx, materialID.Int64())
		if err != nil {
			return err
		}
		if mat == nil {
			return domain.ErrInvalidMaterial
		}

		delta := req.Quantidade
		if tipo == reference.MovimentoSaida {
			if mat.Saldo < req.Quantidade {
				return domain.ErrSaldoInsuficiente
			}
			delta = -req.Quantidade
		}

		mat.Saldo += delta
		mat.UpdatedAt = time.Now().UTC()
		if err := s.materiais.Update(ctx, tx, mat); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, tx, mov); err != nil {
			return err
		}

		s.alertarFaixa(mat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Movimento, error) {
	movimentoID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	mov, err := s.repo.FindByID(ctx, tenancy.DB(ctx, s.db), movimentoID.Int64())
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

func (s *Service) Estornar(ctx context.Context, id string) error {
	movimentoID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	return tenancy.DB(ctx, s.db).Transaction(func(tx *gorm.DB) error {
		mov, err := s.repo.FindByID(ctx, tx, movimentoID.Int64())
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}

		mat, err := s.materiais.FindByIDForUpdate(ctx, tx, mov.MaterialID.Int64())
		if err != nil {
			return err
		}
		if mat == nil {
			return domain.ErrInvalidMaterial
		}

		// undo the original movement
		delta := -mov.Quantidade
		if mov.Tipo == reference.MovimentoSaida {
			delta = mov.Quantidade
		}
		if mat.Saldo+delta < 0 {
			return domain.ErrSaldoInsuficiente
		}

		mat.Saldo += delta
		mat.UpdatedAt = time.Now().UTC()
		if err := s.materiais.Update(ctx, tx, mat); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, tx, movimentoID.Int64()); err != nil {
			return err
		}

		s.alertarFaixa(mat)
		return nil
	})
}

func (s *Service) ListByMaterial(ctx context.Context, materialID string) ([]domain.Movimento, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(materialID))
	if err != nil {
		return nil, domain.ErrInvalidMaterial
	}
	return s.repo.ListByMaterial(ctx, tenancy.DB(ctx, s.db), id.Int64())
}

func (s *Service) Search(ctx context.Context, req datatable.Request) (*datatable.Result[domain.Movimento], error) {
	return datatable.Paginate[domain.Movimento](ctx, tenancy.DB(ctx, s.db), domain.Columns, req)
}

func (s *Service) alertarFaixa(mat *materialdomain.Material) {
	switch {
	case mat.Saldo < mat.EstoqueMinimo:
		s.log.Warn("material abaixo do estoque minimo",
			zap.String("material_id", mat.ID.String()),
			zap.Float64("saldo", mat.Saldo),
			zap.Float64("estoque_minimo", mat.EstoqueMinimo),
		)
	case mat.EstoqueMaximo > 0 && mat.Saldo > mat.EstoqueMaximo:
		s.log.Warn("material acima do estoque maximo",
			zap.String("material_id", mat.ID.String()),
			zap.Float64("saldo", mat.Saldo),
			zap.Float64("estoque_maximo", mat.EstoqueMaximo),
		)
	}
}
