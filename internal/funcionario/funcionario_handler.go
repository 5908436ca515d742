package funcionario

import (
	"net/http"
	"strconv"

	funcionarioerrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/funcionario/errors"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/apperror"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("funcionario.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("funcionario.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	// The grid consumes a plain array, not an envelope.
	c.JSON(http.StatusOK, views)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) Create(c *gin.Context) {
	var payload FuncionarioPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("create funcionario malformed body", zap.Error(err))
		h.respondError(c, apperror.MapValidationError(err))
		return
	}

	id, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": "Funcionário criado com sucesso",
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var payload FuncionarioPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("update funcionario malformed body", zap.Int64("funcionario_id", id), zap.Error(err))
		h.respondError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, payload); err != nil {
		h.respondError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Funcionário atualizado com sucesso")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Funcionário excluído com sucesso")
}

func (h *Handler) respondError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Message(c, httpErr.Status, httpErr.Message)
}

func parsePathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, funcionarioerrors.ErrInvalidFuncionarioID
	}
	return id, nil
}
