package tenancy

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kgsoft/estoque/pkg/tenant"
)

// HeaderTenantID is the default inbound tenant identification header.
const HeaderTenantID = "X-Tenant-ID"

// tenantIDPattern keeps identifiers safe for registry lookups and logs.
var tenantIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,62}$`)

// Resolver extracts the tenant identifier from the request header and
// installs it into the request context before the handler chain runs.
// The context is discarded with the request, so the identifier cannot
// outlive its unit of work on any exit path, including panics and
// cancellation. An absent header leaves the context unset and downstream
// code falls back to the default tenant.
func Resolver(header string) gin.HandlerFunc {
	if header == "" {
		header = HeaderTenantID
	}

	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(header))
		if raw != "" {
			if !tenantIDPattern.MatchString(raw) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": gin.H{"type": "invalid_request", "message": "invalid tenant identifier"},
				})
				return
			}
			ctx := tenant.WithID(c.Request.Context(), raw)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
