package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Tenant is one registry row in the default schema. The row is written
// once by provisioning and read-only afterwards.
type Tenant struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	ExternalID string       `gorm:"column:external_id;not null;uniqueIndex" json:"external_id"`
	Nome       string       `gorm:"column:nome;not null" json:"nome"`
	SchemaName string       `gorm:"column:schema_name;not null;uniqueIndex" json:"schema_name"`
	Status     string       `gorm:"column:status;not null;default:provisioning" json:"status"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string { return "tenants" }

// Tenant lifecycle states. Only active tenants are routable; a row left in
// provisioning or failed marks an aborted provisioning attempt.
const (
	StatusProvisioning = "provisioning"
	StatusActive       = "active"
	StatusFailed       = "failed"
)
