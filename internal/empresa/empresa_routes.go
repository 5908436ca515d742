package empresa

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
	empresas := r.Group("/empresas")
	empresas.Use(middleware.RequireSession(sessions))
	empresas.Use(middleware.ContextLogger(logger))
	{
		empresas.GET("", handler.List)
		empresas.GET("/:id", handler.Get)
		empresas.POST("", handler.Create)
		empresas.PUT("/:id", handler.Update)
	}

	cnae := r.Group("/cnae")
	cnae.Use(middleware.RequireSession(sessions))
	cnae.Use(middleware.ContextLogger(logger))
	{
		cnae.GET("/:codigo", handler.LookupCNAE)
	}
}
