package domain

import (
	"context"
	"errors"
	"fmt"

	tenancydomain "github.com/kgsoft/estoque/internal/tenancy/domain"
)

type Service interface {
	// Provision registers a tenant, creates and migrates its schema and
	// seeds the first administrator. Either every step lands or the
	// tenant ends marked failed with its schema removed.
	Provision(ctx context.Context, req Request) (*tenancydomain.Tenant, error)
	List(ctx context.Context) ([]*tenancydomain.Tenant, error)
}

type Request struct {
	Nome       string `json:"nome"`
	ExternalID string `json:"external_id"`
	AdminNome  string `json:"admin_nome"`
	AdminEmail string `json:"admin_email"`
	AdminSenha string `json:"admin_senha"`
}

var (
	ErrInvalidNome   = errors.New("invalid_nome")
	ErrInvalidAdmin  = errors.New("invalid_admin")
	ErrTenantExists  = errors.New("tenant_exists")
	ErrInvalidTenant = errors.New("invalid_tenant")
)

// ProvisionError wraps a failure with the provisioning stage it happened
// in, so callers and logs can tell a registry insert apart from a
// migration failure.
type ProvisionError struct {
	Stage string
	Err   error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("provision %s: %v", e.Stage, e.Err)
}

func (e *ProvisionError) Unwrap() error { return e.Err }
