package domain

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/pkg/datatable"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Usuario, error)
	Get(ctx context.Context, id string) (*Usuario, error)
	Update(ctx context.Context, req UpdateRequest) (*Usuario, error)
	Delete(ctx context.Context, id string) error
	Authenticate(ctx context.Context, email, senha string) (*Usuario, error)
	Search(ctx context.Context, req datatable.Request) (*datatable.Result[Usuario], error)
}

type CreateRequest struct {
	Nome          string  `json:"nome"`
	Email         string  `json:"email"`
	Senha         string  `json:"senha"`
	GrupoAcessoID *string `json:"grupo_acesso_id"`
	Situacao      string  `json:"situacao"`
}

type UpdateRequest struct {
	ID            string  `json:"-"`
	Nome          *string `json:"nome"`
	Senha         *string `json:"senha"`
	GrupoAcessoID *string `json:"grupo_acesso_id"`
	Situacao      *string `json:"situacao"`
}

var (
	ErrInvalidNome        = errors.New("invalid_nome")
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrWeakSenha          = errors.New("weak_senha")
	ErrInvalidSituacao    = errors.New("invalid_situacao")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
	ErrDuplicateEmail     = errors.New("duplicate_email")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)
