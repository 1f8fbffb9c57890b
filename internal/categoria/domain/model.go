package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/pkg/datatable"
)

type Categoria struct {
	ID        snowflake.ID       `gorm:"primaryKey" json:"id"`
	Nome      string             `gorm:"column:nome;not null" json:"nome"`
	Situacao  reference.Situacao `gorm:"column:situacao;not null;default:ATIVO" json:"situacao"`
	CreatedAt time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Categoria) TableName() string { return "categorias" }

// Columns is the server-side grid contract: index positions here must
// match the client column order.
var Columns = datatable.Descriptor{
	{Name: "id", Kind: datatable.Numeric},
	{Name: "nome", Kind: datatable.Text},
	{Name: "situacao", Kind: datatable.Text},
}
