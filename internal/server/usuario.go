package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	usuariodomain "github.com/kgsoft/estoque/internal/usuario/domain"
)

func (s *Server) CreateUsuario(c *gin.Context) {
	var req usuariodomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.usuarioSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) GetUsuario(c *gin.Context) {
	resp, err := s.usuarioSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateUsuario(c *gin.Context) {
	var req usuariodomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.usuarioSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteUsuario(c *gin.Context) {
	if err := s.usuarioSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) SearchUsuarios(c *gin.Context) {
	req, err := parseDatatableQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.usuarioSvc.Search(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.countDatatable("usuario")
	c.JSON(http.StatusOK, resp)
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.usuarioSvc.Authenticate(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isUsuarioValidationError(err error) bool {
	switch err {
	case usuariodomain.ErrInvalidNome,
		usuariodomain.ErrInvalidEmail,
		usuariodomain.ErrWeakSenha,
		usuariodomain.ErrInvalidSituacao,
		usuariodomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
