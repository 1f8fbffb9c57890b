package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/pkg/datatable"
)

// Material is one stock item. Saldo is only ever written through stock
// movements so the balance and the movement log cannot drift apart.
type Material struct {
	ID             snowflake.ID            `gorm:"primaryKey" json:"id"`
	Nome           string                  `gorm:"column:nome;not null" json:"nome"`
	CategoriaID    snowflake.ID            `gorm:"column:categoria_id;not null;index" json:"categoria_id"`
	FornecedorID   *snowflake.ID           `gorm:"column:fornecedor_id;index" json:"fornecedor_id,omitempty"`
	Unidade        reference.UnidadeMedida `gorm:"column:unidade;not null;default:UN" json:"unidade"`
	Saldo          float64                 `gorm:"column:saldo;type:numeric(14,3);not null;default:0" json:"saldo"`
	EstoqueMinimo  float64                 `gorm:"column:estoque_minimo;type:numeric(14,3);not null;default:0" json:"estoque_minimo"`
	EstoqueMaximo  float64                 `gorm:"column:estoque_maximo;type:numeric(14,3);not null;default:0" json:"estoque_maximo"`
	ValorUnitario  float64                 `gorm:"column:valor_unitario;type:numeric(14,2);not null;default:0" json:"valor_unitario"`
	Situacao       reference.Situacao      `gorm:"column:situacao;not null;default:ATIVO" json:"situacao"`
	CreatedAt      time.Time               `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time               `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Material) TableName() string { return "materiais" }

var Columns = datatable.Descriptor{
	{Name: "id", Kind: datatable.Numeric},
	{Name: "nome", Kind: datatable.Text},
	{Name: "unidade", Kind: datatable.Text},
	{Name: "saldo", Kind: datatable.Numeric},
	{Name: "valor_unitario", Kind: datatable.Numeric},
	{Name: "situacao", Kind: datatable.Text},
}
