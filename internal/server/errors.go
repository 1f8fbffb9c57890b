package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	categoriadomain "github.com/kgsoft/estoque/internal/categoria/domain"
	fornecedordomain "github.com/kgsoft/estoque/internal/fornecedor/domain"
	grupodomain "github.com/kgsoft/estoque/internal/grupoacesso/domain"
	materialdomain "github.com/kgsoft/estoque/internal/material/domain"
	movimentodomain "github.com/kgsoft/estoque/internal/movimento/domain"
	provisiondomain "github.com/kgsoft/estoque/internal/provision/domain"
	"github.com/kgsoft/estoque/internal/tenancy"
	usuariodomain "github.com/kgsoft/estoque/internal/usuario/domain"
	"github.com/kgsoft/estoque/pkg/datatable"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not_found")
)

// ErrorHandlingMiddleware converts domain errors collected on the gin
// context into the JSON error envelope.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var perr *provisiondomain.ProvisionError

	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: validationMessage(err),
		}
	case errors.Is(err, usuariodomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "invalid credentials",
		}
	case errors.Is(err, tenancy.ErrSchemaNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "tenant_not_found",
			Message: "tenant is not registered",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: conflictMessage(err),
		}
	case errors.Is(err, tenancy.ErrConnectionUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "service_unavailable",
			Message: "database connection unavailable",
		}
	case errors.As(err, &perr):
		return http.StatusInternalServerError, errorPayload{
			Type:    "provision_error",
			Message: "tenant provisioning failed during " + perr.Stage,
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, datatable.ErrInvalidQueryParameter),
		errors.Is(err, movimentodomain.ErrSaldoInsuficiente),
		errors.Is(err, provisiondomain.ErrInvalidNome),
		errors.Is(err, provisiondomain.ErrInvalidAdmin),
		errors.Is(err, provisiondomain.ErrInvalidTenant):
		return true
	case isCategoriaValidationError(err),
		isFornecedorValidationError(err),
		isGrupoValidationError(err),
		isMaterialValidationError(err),
		isMovimentoValidationError(err),
		isUsuarioValidationError(err):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, categoriadomain.ErrNotFound),
		errors.Is(err, fornecedordomain.ErrNotFound),
		errors.Is(err, grupodomain.ErrNotFound),
		errors.Is(err, materialdomain.ErrNotFound),
		errors.Is(err, movimentodomain.ErrNotFound),
		errors.Is(err, usuariodomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, fornecedordomain.ErrDuplicateCNPJ),
		errors.Is(err, grupodomain.ErrDuplicateNome),
		errors.Is(err, usuariodomain.ErrDuplicateEmail),
		errors.Is(err, provisiondomain.ErrTenantExists):
		return true
	default:
		return false
	}
}

func conflictMessage(err error) string {
	if errors.Is(err, provisiondomain.ErrTenantExists) {
		return "tenant already provisioned"
	}
	return "conflict"
}

func validationMessage(err error) string {
	code := err.Error()
	if field, ok := strings.CutPrefix(code, "invalid_"); ok {
		return "invalid " + field
	}
	return code
}
