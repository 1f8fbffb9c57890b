package domain

import (
	"context"
	"errors"
	"time"

	"github.com/kgsoft/estoque/pkg/datatable"
)

type Service interface {
	// Registrar records a movement and applies it to the material
	// balance atomically.
	Registrar(ctx context.Context, req RegistrarRequest) (*Movimento, error)
	Get(ctx context.Context, id string) (*Movimento, error)
	// Estornar deletes a movement and rolls its quantity back out of
	// the material balance.
	Estornar(ctx context.Context, id string) error
	ListByMaterial(ctx context.Context, materialID string) ([]Movimento, error)
	Search(ctx context.Context, req datatable.Request) (*datatable.Result[Movimento], error)
}

type RegistrarRequest struct {
	MaterialID string     `json:"material_id"`
	Tipo       string     `json:"tipo"`
	Quantidade float64    `json:"quantidade"`
	Data       *time.Time `json:"data"`
	Observacao *string    `json:"observacao"`
}

var (
	ErrInvalidMaterial   = errors.New("invalid_material")
	ErrInvalidTipo       = errors.New("invalid_tipo")
	ErrInvalidQuantidade = errors.New("invalid_quantidade")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("not_found")
	ErrSaldoInsuficiente = errors.New("saldo_insuficiente")
)
