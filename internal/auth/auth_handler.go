package auth

import (
	"net/http"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/session"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/apperror"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service  Service
	sessions *session.Store
	logger   *zap.Logger
}

func NewHandler(service Service, sessions *session.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, sessions: sessions, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperror.MapValidationError(err))
		return
	}

	sessionID, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	maxAge := int(h.sessions.TTL().Seconds())
	c.SetCookie(session.CookieName, sessionID, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, LoginResponse{
		Message:  "Login bem-sucedido!",
		Redirect: "/Home.html",
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Usuário registrado com sucesso!")
}

func (h *Handler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(session.CookieName)
	if err == nil && sessionID != "" {
		if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
			h.respondError(c, err)
			return
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	response.Message(c, http.StatusOK, "Logout realizado com sucesso")
}

// CheckSession reports whether the caller holds a live session. The
// client polls it on page load to decide between the app and the login
// screen.
func (h *Handler) CheckSession(c *gin.Context) {
	sessionID, err := c.Cookie(session.CookieName)
	if err != nil || sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	if _, err := h.sessions.Get(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Message(c, httpErr.Status, httpErr.Message)
}
