package domain

import (
	"context"
	"errors"

	"github.com/kgsoft/estoque/pkg/datatable"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Material, error)
	Get(ctx context.Context, id string) (*Material, error)
	Update(ctx context.Context, req UpdateRequest) (*Material, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, req datatable.Request) (*datatable.Result[Material], error)
}

type CreateRequest struct {
	Nome          string  `json:"nome"`
	CategoriaID   string  `json:"categoria_id"`
	FornecedorID  *string `json:"fornecedor_id"`
	Unidade       string  `json:"unidade"`
	EstoqueMinimo float64 `json:"estoque_minimo"`
	EstoqueMaximo float64 `json:"estoque_maximo"`
	ValorUnitario float64 `json:"valor_unitario"`
	Situacao      string  `json:"situacao"`
}

type UpdateRequest struct {
	ID            string   `json:"-"`
	Nome          *string  `json:"nome"`
	CategoriaID   *string  `json:"categoria_id"`
	FornecedorID  *string  `json:"fornecedor_id"`
	Unidade       *string  `json:"unidade"`
	EstoqueMinimo *float64 `json:"estoque_minimo"`
	EstoqueMaximo *float64 `json:"estoque_maximo"`
	ValorUnitario *float64 `json:"valor_unitario"`
	Situacao      *string  `json:"situacao"`
}

var (
	ErrInvalidNome      = errors.New("invalid_nome")
	ErrInvalidCategoria = errors.New("invalid_categoria")
	ErrInvalidUnidade   = errors.New("invalid_unidade")
	ErrInvalidSituacao  = errors.New("invalid_situacao")
	ErrInvalidEstoque   = errors.New("invalid_estoque")
	ErrInvalidID        = errors.New("invalid_id")
	ErrNotFound         = errors.New("not_found")
)
