package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	categoriadomain "github.com/kgsoft/estoque/internal/categoria/domain"
)

func (s *Server) CreateCategoria(c *gin.Context) {
	var req categoriadomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.categoriaSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) GetCategoria(c *gin.Context) {
	resp, err := s.categoriaSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateCategoria(c *gin.Context) {
	var req categoriadomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.categoriaSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCategoria(c *gin.Context) {
	if err := s.categoriaSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) SearchCategorias(c *gin.Context) {
	req, err := parseDatatableQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.categoriaSvc.Search(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.countDatatable("categoria")
	c.JSON(http.StatusOK, resp)
}

func isCategoriaValidationError(err error) bool {
	switch err {
	case categoriadomain.ErrInvalidNome,
		categoriadomain.ErrInvalidSituacao,
		categoriadomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
