package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	grupodomain "github.com/kgsoft/estoque/internal/grupoacesso/domain"
)

func (s *Server) CreateGrupoAcesso(c *gin.Context) {
	var req grupodomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.grupoSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) GetGrupoAcesso(c *gin.Context) {
	resp, err := s.grupoSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateGrupoAcesso(c *gin.Context) {
	var req grupodomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.grupoSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteGrupoAcesso(c *gin.Context) {
	if err := s.grupoSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) SearchGruposAcesso(c *gin.Context) {
	req, err := parseDatatableQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.grupoSvc.Search(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.countDatatable("grupo_acesso")
	c.JSON(http.StatusOK, resp)
}

func isGrupoValidationError(err error) bool {
	switch err {
	case grupodomain.ErrInvalidNome,
		grupodomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
