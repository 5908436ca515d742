package empresa

import (
	"net/http"
	"strconv"

	empresaerrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/empresa/errors"
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
	l := zap.L().Named("empresa.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("empresa.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	summaries, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) Create(c *gin.Context) {
	var payload EmpresaPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("create empresa malformed body", zap.Error(err))
		h.respondError(c, apperror.MapValidationError(err))
		return
	}

	id, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": "Empresa criada com sucesso",
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var payload EmpresaPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("update empresa malformed body", zap.Int64("empresa_id", id), zap.Error(err))
		h.respondError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.Update(c.Request.Context(), id, payload); err != nil {
		h.respondError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Empresa atualizada com sucesso")
}

func (h *Handler) LookupCNAE(c *gin.Context) {
	view, err := h.service.LookupCNAE(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Message(c, httpErr.Status, httpErr.Message)
}

func parsePathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, empresaerrors.ErrInvalidEmpresaID
	}
	return id, nil
}
