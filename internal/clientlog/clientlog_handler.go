package clientlog

import (
	"net/http"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/apperror"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Entry is a log line forwarded by the browser pages.
type Entry struct {
	Msg    string `json:"msg" binding:"required"`
	Level  string `json:"level"`
	Module string `json:"module"`
	Stack  string `json:"stack"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger ...*zap.Logger) *Handler {
	l := zap.L().Named("client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client")
	}
	return &Handler{logger: l}
}

// Ingest writes a client-side event into the server log. Unknown levels
// degrade to info; a logging endpoint should never bounce its caller.
func (h *Handler) Ingest(c *gin.Context) {
	var entry Entry
	if err := c.ShouldBindJSON(&entry); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Message(c, httpErr.Status, httpErr.Message)
		return
	}

	fields := []zap.Field{
		zap.String("module", entry.Module),
	}
	if entry.Stack != "" {
		fields = append(fields, zap.String("stack", entry.Stack))
	}

	switch entry.Level {
	case "error":
		h.logger.Error(entry.Msg, fields...)
	case "warn":
		h.logger.Warn(entry.Msg, fields...)
	case "debug":
		h.logger.Debug(entry.Msg, fields...)
	default:
		h.logger.Info(entry.Msg, fields...)
	}

	response.Message(c, http.StatusOK, "Log registrado no servidor")
}

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.POST("/log-client", handler.Ingest)
}
