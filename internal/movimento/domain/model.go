package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/pkg/datatable"
)

// Movimento is one append-only stock ledger entry. Deleting an entry
// reverses its effect on the material balance in the same transaction.
type Movimento struct {
	ID         snowflake.ID            `gorm:"primaryKey" json:"id"`
	MaterialID snowflake.ID            `gorm:"column:material_id;not null;index" json:"material_id"`
	Tipo       reference.TipoMovimento `gorm:"column:tipo;not null" json:"tipo"`
	Quantidade float64                 `gorm:"column:quantidade;type:numeric(14,3);not null" json:"quantidade"`
	Data       time.Time               `gorm:"column:data;not null" json:"data"`
	Observacao *string                 `gorm:"column:observacao" json:"observacao,omitempty"`
	CreatedAt  time.Time               `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Movimento) TableName() string { return "movimentos" }

var Columns = datatable.Descriptor{
	{Name: "id", Kind: datatable.Numeric},
	{Name: "tipo", Kind: datatable.Text},
	{Name: "quantidade", Kind: datatable.Numeric},
	{Name: "observacao", Kind: datatable.Text},
}
