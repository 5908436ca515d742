package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/session"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/apperror"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/response"
)

// RequireSession guards the /api routes. The session id travels in an
// HTTP-only cookie and resolves against the Redis store; anything else
// is a 401 with the canonical message the frontend expects.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(session.CookieName)
		if err != nil || id == "" {
			zap.L().Named("middleware.session").Warn("unauthorized access",
				zap.String("path", c.Request.URL.Path),
			)
			response.Message(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Message)
			c.Abort()
			return
		}

		data, err := store.Get(c.Request.Context(), id)
		if err != nil {
			zap.L().Named("middleware.session").Warn("session rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			response.Message(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Message)
			c.Abort()
			return
		}

		c.Set("session_id", id)
		c.Set("user_id", data.UserID)
		c.Set("username", data.Username)

		c.Next()
	}
}
