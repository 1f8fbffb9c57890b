package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/fornecedor/domain"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/internal/tenancy"
	"github.com/kgsoft/estoque/pkg/datatable"
	"github.com/kgsoft/estoque/pkg/db"
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
		log:   p.Log.Named("fornecedor.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Fornecedor, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, domain.ErrInvalidNome
	}

	cnpj, ok := normalizeCNPJ(req.CNPJ)
	if !ok {
		return nil, domain.ErrInvalidCNPJ
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
	f := &domain.Fornecedor{
		ID:        s.genID.Generate(),
		Nome:      nome,
		CNPJ:      cnpj,
		Email:     trimPtr(req.Email),
		Telefone:  trimPtr(req.Telefone),
		Situacao:  situacao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, tenancy.DB(ctx, s.db), f); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateCNPJ
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Fornecedor, error) {
	fornecedorID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	f, err := s.repo.FindByID(ctx, tenancy.DB(ctx, s.db), fornecedorID.Int64())
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Fornecedor, error) {
	fornecedorID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	conn := tenancy.DB(ctx, s.db)
	f, err := s.repo.FindByID(ctx, conn, fornecedorID.Int64())
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, domain.ErrInvalidNome
		}
		f.Nome = nome
	}
	if req.Email != nil {
		f.Email = trimPtr(req.Email)
	}
	if req.Telefone != nil {
		f.Telefone = trimPtr(req.Telefone)
	}
	if req.Situacao != nil {
		situacao, err := reference.ParseSituacao(*req.Situacao)
		if err != nil {
			return nil, domain.ErrInvalidSituacao
		}
		f.Situacao = situacao
	}

	f.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, conn, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	fornecedorID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	conn := tenancy.DB(ctx, s.db)
	f, err := s.repo.FindByID(ctx, conn, fornecedorID.Int64())
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, conn, fornecedorID.Int64())
}

func (s *Service) Search(ctx context.Context, req datatable.Request) (*datatable.Result[domain.Fornecedor], error) {
	return datatable.Paginate[domain.Fornecedor](ctx, tenancy.DB(ctx, s.db), domain.Columns, req)
}

// normalizeCNPJ strips formatting and checks the two verifier digits.
func normalizeCNPJ(raw string) (string, bool) {
	var digits []byte
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, byte(r-'0'))
		}
	}
	if len(digits) != 14 {
		return "", false
	}

	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return "", false
	}

	if cnpjDigit(digits[:12]) != digits[12] || cnpjDigit(digits[:13]) != digits[13] {
		return "", false
	}

	out := make([]byte, 14)
	for i, d := range digits {
		out[i] = '0' + d
	}
	return string(out), true
}

func cnpjDigit(digits []byte) byte {
	weight := len(digits) - 7
	sum := 0
	for _, d := range digits {
		sum += int(d) * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return byte(11 - rest)
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
