package lookup

import (
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/middleware"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessions *session.Store) {
	r.GET("/options", middleware.RequireSession(sessions), handler.GetOptions)
}
