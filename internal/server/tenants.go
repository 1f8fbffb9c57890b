package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	provisiondomain "github.com/kgsoft/estoque/internal/provision/domain"
)

func (s *Server) ProvisionTenant(c *gin.Context) {
	var req provisiondomain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.provisionSvc.Provision(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListTenants(c *gin.Context) {
	resp, err := s.provisionSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
