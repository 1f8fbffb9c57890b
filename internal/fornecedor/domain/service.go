package domain

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/pkg/datatable"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Fornecedor, error)
	Get(ctx context.Context, id string) (*Fornecedor, error)
	Update(ctx context.Context, req UpdateRequest) (*Fornecedor, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, req datatable.Request) (*datatable.Result[Fornecedor], error)
}

type CreateRequest struct {
	Nome     string  `json:"nome"`
	CNPJ     string  `json:"cnpj"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Situacao string  `json:"situacao"`
}

type UpdateRequest struct {
	ID       string  `json:"-"`
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Situacao *string `json:"situacao"`
}

var (
	ErrInvalidNome     = errors.New("invalid_nome")
	ErrInvalidCNPJ     = errors.New("invalid_cnpj")
	ErrInvalidSituacao = errors.New("invalid_situacao")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
	ErrDuplicateCNPJ   = errors.New("duplicate_cnpj")
)
