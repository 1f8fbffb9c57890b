package tenancy

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kgsoft/estoque/pkg/tenant"
	"github.com/stretchr/testify/assert"
)

func resolverRouter(header string) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(Resolver(header))
	r.GET("/ping", func(c *gin.Context) {
		seen = tenant.Resolve(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestResolverInstallsHeaderTenant(t *testing.T) {
	r, seen := resolverRouter("")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderTenantID, "acme")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acme", *seen)
}

func TestResolverMissingHeaderFallsBackToDefault(t *testing.T) {
	r, seen := resolverRouter("")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tenant.DefaultTenant, *seen)
}

func TestResolverRejectsMalformedIdentifier(t *testing.T) {
	for _, raw := range []string{"a;DROP SCHEMA", "-leading", "has space", "ç"} {
		r, _ := resolverRouter("")

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderTenantID, raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, raw)
	}
}

func TestResolverHonorsConfiguredHeader(t *testing.T) {
	r, seen := resolverRouter("X-Org")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Org", "globex")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "globex", *seen)
}
