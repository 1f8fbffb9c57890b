package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	fornecedordomain "github.com/kgsoft/estoque/internal/fornecedor/domain"
)

func (s *Server) CreateFornecedor(c *gin.Context) {
	var req fornecedordomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.fornecedorSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) GetFornecedor(c *gin.Context) {
	resp, err := s.fornecedorSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateFornecedor(c *gin.Context) {
	var req fornecedordomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.fornecedorSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteFornecedor(c *gin.Context) {
	if err := s.fornecedorSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) SearchFornecedores(c *gin.Context) {
	req, err := parseDatatableQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.fornecedorSvc.Search(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.countDatatable("fornecedor")
	c.JSON(http.StatusOK, resp)
}

func isFornecedorValidationError(err error) bool {
	switch err {
	case fornecedordomain.ErrInvalidNome,
		fornecedordomain.ErrInvalidCNPJ,
		fornecedordomain.ErrInvalidSituacao,
		fornecedordomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
