package auth

import (
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the session lifecycle endpoints. These live at
// the root, not under /api, matching the paths the pages call.
func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
	r.POST("/register", middleware.RateLimitByIP(0.5, 3), handler.Register)
	r.POST("/logout", handler.Logout)
	r.GET("/check-session", handler.CheckSession)
}
