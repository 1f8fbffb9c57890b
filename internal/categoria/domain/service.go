package domain

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/pkg/datatable"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Categoria, error)
	Get(ctx context.Context, id string) (*Categoria, error)
	Update(ctx context.Context, req UpdateRequest) (*Categoria, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, req datatable.Request) (*datatable.Result[Categoria], error)
}

type CreateRequest struct {
	Nome     string `json:"nome"`
	Situacao string `json:"situacao"`
}

type UpdateRequest struct {
	ID       string  `json:"-"`
	Nome     *string `json:"nome"`
	Situacao *string `json:"situacao"`
}

var (
	ErrInvalidNome     = errors.New("invalid_nome")
	ErrInvalidSituacao = errors.New("invalid_situacao")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
