package domain

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/pkg/datatable"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*GrupoAcesso, error)
	Get(ctx context.Context, id string) (*GrupoAcesso, error)
	Update(ctx context.Context, req UpdateRequest) (*GrupoAcesso, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, req datatable.Request) (*datatable.Result[GrupoAcesso], error)
}

type CreateRequest struct {
	Nome       string         `json:"nome"`
	Permissoes map[string]any `json:"permissoes"`
}

type UpdateRequest struct {
	ID         string         `json:"-"`
	Nome       *string        `json:"nome"`
	Permissoes map[string]any `json:"permissoes"`
}

var (
	ErrInvalidNome   = errors.New("invalid_nome")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
	ErrDuplicateNome = errors.New("duplicate_nome")
)
