package health

import (
	"net/http"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/apperror"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger *zap.Logger
}

func NewHandler(db *gorm.DB, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("health.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.handler")
	}
	return &Handler{db: db, rdb: rdb, logger: l}
}

// Check pings both backing stores so the load balancer pulls the
// instance before it starts serving errors to users.
func (h *Handler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Error("database unreachable", zap.Error(err))
		response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Banco de dados indisponível", nil)
		return
	}

	if err := h.rdb.Ping(ctx).Err(); err != nil {
		h.logger.Error("redis unreachable", zap.Error(err))
		response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Redis indisponível", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/health", handler.Check)
}
