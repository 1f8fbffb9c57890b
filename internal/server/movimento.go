package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	movimentodomain "github.com/kgsoft/estoque/internal/movimento/domain"
)

func (s *Server) RegistrarMovimento(c *gin.Context) {
	var req movimentodomain.RegistrarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.movimentoSvc.Registrar(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) GetMovimento(c *gin.Context) {
	resp, err := s.movimentoSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) EstornarMovimento(c *gin.Context) {
	if err := s.movimentoSvc.Estornar(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) SearchMovimentos(c *gin.Context) {
	req, err := parseDatatableQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.movimentoSvc.Search(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.countDatatable("movimento")
	c.JSON(http.StatusOK, resp)
}

func isMovimentoValidationError(err error) bool {
	switch err {
	case movimentodomain.ErrInvalidMaterial,
		movimentodomain.ErrInvalidTipo,
		movimentodomain.ErrInvalidQuantidade,
		movimentodomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
