package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/pkg/web"
)

// Sessions provides the session lookup needed by the guard.
type Sessions interface {
	Current(ctx context.Context) (domain.Profile, error)
}

// SessionGuard rejects requests when no session is active. Routes behind the
// guard can assume an authenticated account exists.
func SessionGuard(sessions Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := sessions.Current(c.Request.Context()); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(domain.ErrSessionNotFound))
			return
		}

		c.Next()
	}
}
