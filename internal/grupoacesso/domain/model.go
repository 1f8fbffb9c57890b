package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/pkg/datatable"
	"gorm.io/datatypes"
)

// GrupoAcesso groups the permission flags granted to its users. The
// permission set is an open-ended JSON map so new screens do not require
// a schema change.
type GrupoAcesso struct {
	ID         snowflake.ID      `gorm:"primaryKey" json:"id"`
	Nome       string            `gorm:"column:nome;not null;uniqueIndex" json:"nome"`
	Permissoes datatypes.JSONMap `gorm:"column:permissoes;type:jsonb" json:"permissoes,omitempty"`
	CreatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (GrupoAcesso) TableName() string { return "grupos_acesso" }

var Columns = datatable.Descriptor{
	{Name: "id", Kind: datatable.Numeric},
	{Name: "nome", Kind: datatable.Text},
}
