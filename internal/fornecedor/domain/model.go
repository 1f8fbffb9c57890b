package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/reference"
	"github.com/kgsoft/estoque/pkg/datatable"
)

type Fornecedor struct {
	ID        snowflake.ID       `gorm:"primaryKey" json:"id"`
	Nome      string             `gorm:"column:nome;not null" json:"nome"`
	CNPJ      string             `gorm:"column:cnpj;not null;uniqueIndex" json:"cnpj"`
	Email     *string            `gorm:"column:email" json:"email,omitempty"`
	Telefone  *string            `gorm:"column:telefone" json:"telefone,omitempty"`
	Situacao  reference.Situacao `gorm:"column:situacao;not null;default:ATIVO" json:"situacao"`
	CreatedAt time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Fornecedor) TableName() string { return "fornecedores" }

var Columns = datatable.Descriptor{
	{Name: "id", Kind: datatable.Numeric},
	{Name: "nome", Kind: datatable.Text},
	{Name: "cnpj", Kind: datatable.Text},
	{Name: "email", Kind: datatable.Text},
	{Name: "situacao", Kind: datatable.Text},
}
