package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/pkg/datatable"
)

type Usuario struct {
	ID            snowflake.ID       `gorm:"primaryKey" json:"id"`
	Nome          string             `gorm:"column:nome;not null" json:"nome"`
	Email         string             `gorm:"column:email;not null;uniqueIndex" json:"email"`
	SenhaHash     string             `gorm:"column:senha_hash;not null" json:"-"`
	GrupoAcessoID *snowflake.ID      `gorm:"column:grupo_acesso_id" json:"grupo_acesso_id,omitempty"`
	Situacao      reference.Situacao `gorm:"column:situacao;not null;default:ATIVO" json:"situacao"`
	CreatedAt     time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Usuario) TableName() string { return "usuarios" }

var Columns = datatable.Descriptor{
	{Name: "id", Kind: datatable.Numeric},
	{Name: "nome", Kind: datatable.Text},
	{Name: "email", Kind: datatable.Text},
	{Name: "situacao", Kind: datatable.Text},
}
