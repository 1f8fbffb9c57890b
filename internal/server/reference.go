package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kgsoft/estoque/internal/reference"
)

func (s *Server) ListSituacoes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": reference.Situacoes()})
}

func (s *Server) ListTiposMovimento(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": reference.TiposMovimento()})
}

func (s *Server) ListUnidadesMedida(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": reference.UnidadesMedida()})
}
