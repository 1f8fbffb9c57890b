package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	materialdomain "github.com/kgsoft/estoque/internal/material/domain"
)

func (s *Server) CreateMaterial(c *gin.Context) {
	var req materialdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.materialSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) GetMaterial(c *gin.Context) {
	resp, err := s.materialSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateMaterial(c *gin.Context) {
	var req materialdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.materialSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteMaterial(c *gin.Context) {
	if err := s.materialSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) SearchMateriais(c *gin.Context) {
	req, err := parseDatatableQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.materialSvc.Search(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.countDatatable("material")
	c.JSON(http.StatusOK, resp)
}

func (s *Server) ListMovimentosByMaterial(c *gin.Context) {
	resp, err := s.movimentoSvc.ListByMaterial(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isMaterialValidationError(err error) bool {
	switch err {
	case materialdomain.ErrInvalidNome,
		materialdomain.ErrInvalidCategoria,
		materialdomain.ErrInvalidUnidade,
		materialdomain.ErrInvalidSituacao,
		materialdomain.ErrInvalidEstoque,
		materialdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
