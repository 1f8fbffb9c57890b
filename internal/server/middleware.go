package server

import (
	"github.com/gin-gonic/gin"
	"github.com/kgsoft/estoque/internal/tenancy"
)

// TenantSession borrows a schema-scoped session for the resolved tenant
// and pins it to the request context. The deferred release runs on every
// exit path, so the connection always rejoins the pool with its schema
// reset, panics included.
func (s *Server) TenantSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sess, err := s.sessions.Acquire(ctx)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		defer func() {
			_ = s.sessions.Release(c.Request.Context(), sess)
		}()

		c.Request = c.Request.WithContext(tenancy.WithSession(ctx, sess))
		c.Next()
	}
}
