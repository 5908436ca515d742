package funcionario

import (
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/middleware"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	sessions *session.Store,
	logger *zap.Logger,
) {
	// The frontend calls the English path even though the payload fields
	// stay in Portuguese.
	employees := r.Group("/employees")
	employees.Use(middleware.RequireSession(sessions))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.List)
		employees.GET("/:id", handler.Get)
		employees.POST("", handler.Create)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
