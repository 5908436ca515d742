package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/auth"
	autherrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/auth/errors"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	LoginFn    func(ctx context.Context, req auth.LoginRequest) (string, error)
	RegisterFn func(ctx context.Context, req auth.RegisterRequest) error
	LogoutFn   func(ctx context.Context, sessionID string) error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (string, error) {
	return f.LoginFn(ctx, req)
}
func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) error {
	return f.RegisterFn(ctx, req)
}
func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	return f.LogoutFn(ctx, sessionID)
}

func setupAuthRouter(svc auth.Service, sessions *session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := auth.NewHandler(svc, sessions)
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)
	r.GET("/check-session", h.CheckSession)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	sessions := session.NewStore(rdb)

	t.Run("success sets the cookie and points home", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (string, error) {
				assert.Equal(t, "vicente", req.Username)
				return "sess-123", nil
			},
		}
		r := setupAuthRouter(svc, sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"vicente","password":"segredo123"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Login bem-sucedido!")
		assert.Contains(t, w.Body.String(), "/Home.html")

		cookies := w.Result().Cookies()
		var found bool
		for _, cookie := range cookies {
			if cookie.Name == session.CookieName {
				found = true
				assert.Equal(t, "sess-123", cookie.Value)
				assert.True(t, cookie.HttpOnly)
			}
		}
		assert.True(t, found, "session cookie not set")
	})

	t.Run("bad credentials are 401", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (string, error) {
				return "", autherrors.ErrInvalidCredentials
			},
		}
		r := setupAuthRouter(svc, sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"x","password":"y"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Usuário ou senha inválidos."}`, w.Body.String())
	})
}

func TestAuthHandler_Register(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	sessions := session.NewStore(rdb)

	svc := &fakeAuthService{
		RegisterFn: func(ctx context.Context, req auth.RegisterRequest) error {
			return nil
		},
	}
	r := setupAuthRouter(svc, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(
		`{"username":"vicente","email":"v@c.com","password":"segredo123","full_name":"Vicente","status":"Ativo"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Usuário registrado com sucesso!"}`, w.Body.String())
}

func TestAuthHandler_CheckSession(t *testing.T) {
	t.Run("live session", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("session:sess-123").SetVal(`{"user_id":1,"username":"vicente","email":"v@c.com"}`)
		sessions := session.NewStore(rdb)

		r := setupAuthRouter(&fakeAuthService{}, sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/check-session", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sess-123"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())
	})

	t.Run("no cookie", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		r := setupAuthRouter(&fakeAuthService{}, session.NewStore(rdb))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/check-session", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	sessions := session.NewStore(rdb)

	var destroyed string
	svc := &fakeAuthService{
		LogoutFn: func(ctx context.Context, sessionID string) error {
			destroyed = sessionID
			return nil
		},
	}
	r := setupAuthRouter(svc, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sess-123"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sess-123", destroyed)
	assert.JSONEq(t, `{"message":"Logout realizado com sucesso"}`, w.Body.String())
}
