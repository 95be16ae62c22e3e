package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Gabriel-Dorassi/tvtec-portal/pkg/errors"
	"github.com/Gabriel-Dorassi/tvtec-portal/pkg/response"
)

type sessionChecker interface {
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
}

// RequireSession blocks requests without a structurally valid, non-expired
// local session. This gates whether the attempt is made at all; the upstream
// still decides authenticity on every proxied call.
func RequireSession(sessions sessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.IsAuthenticated(c.Request.Context()) {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin additionally requires the admin role.
func RequireAdmin(sessions sessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if !sessions.IsAuthenticated(ctx) {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if !sessions.IsAdmin(ctx) {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
