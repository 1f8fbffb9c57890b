package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/auth/password"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/internal/tenancy"
	"github.com/kgsoft/estoque/internal/usuario/domain"
	"github.com/kgsoft/estoque/pkg/datatable"
	"github.com/kgsoft/estoque/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const minSenhaLen = 8

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
		log:   p.Log.Named("usuario.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Usuario, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, domain.ErrInvalidNome
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidEmail
	}

	if len(req.Senha) < minSenhaLen {
		return nil, domain.ErrWeakSenha
	}
	hash, err := password.Hash(req.Senha)
	if err != nil {
		return nil, err
	}

	situacao := reference.SituacaoAtivo
	if req.Situacao != "" {
		parsed, err := reference.ParseSituacao(req.Situacao)
		if err != nil {
			return nil, domain.ErrInvalidSituacao
		}
		situacao = parsed
	}

	grupoID, err := parseGrupoID(req.GrupoAcessoID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.Usuario{
		ID:            s.genID.Generate(),
		Nome:          nome,
		Email:         email,
		SenhaHash:     hash,
		GrupoAcessoID: grupoID,
		Situacao:      situacao,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, tenancy.DB(ctx, s.db), u); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Usuario, error) {
	usuarioID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	u, err := s.repo.FindByID(ctx, tenancy.DB(ctx, s.db), usuarioID.Int64())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Usuario, error) {
	usuarioID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	conn := tenancy.DB(ctx, s.db)
	u, err := s.repo.FindByID(ctx, conn, usuarioID.Int64())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, domain.ErrInvalidNome
		}
		u.Nome = nome
	}
	if req.Senha != nil {
		if len(*req.Senha) < minSenhaLen {
			return nil, domain.ErrWeakSenha
		}
		hash, err := password.Hash(*req.Senha)
		if err != nil {
			return nil, err
		}
		u.SenhaHash = hash
	}
	if req.GrupoAcessoID != nil {
		grupoID, err := parseGrupoID(req.GrupoAcessoID)
		if err != nil {
			return nil, err
		}
		u.GrupoAcessoID = grupoID
	}
	if req.Situacao != nil {
		situacao, err := reference.ParseSituacao(*req.Situacao)
		if err != nil {
			return nil, domain.ErrInvalidSituacao
		}
		u.Situacao = situacao
	}

	u.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, conn, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	usuarioID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	conn := tenancy.DB(ctx, s.db)
	u, err := s.repo.FindByID(ctx, conn, usuarioID.Int64())
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, conn, usuarioID.Int64())
}

// Authenticate verifies the credentials against the tenant's user table.
// Unknown emails and wrong passwords return the same error so probes
// cannot distinguish them.
func (s *Service) Authenticate(ctx context.Context, email, senha string) (*domain.Usuario, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, tenancy.DB(ctx, s.db), normalized)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Situacao != reference.SituacaoAtivo || !password.Verify(senha, u.SenhaHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) Search(ctx context.Context, req datatable.Request) (*datatable.Result[domain.Usuario], error) {
	return datatable.Paginate[domain.Usuario](ctx, tenancy.DB(ctx, s.db), domain.Columns, req)
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", err
	}
	return email, nil
}

func parseGrupoID(raw *string) (*snowflake.ID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := snowflake.ParseString(strings.TrimSpace(*raw))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return &id, nil
}
