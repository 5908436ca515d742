package health_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/health"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHealthRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	rdb, rmock := redismock.NewClientMock()

	r := gin.New()
	health.RegisterRoutes(r, health.NewHandler(gormDB, rdb, zap.NewNop()))
	return r, mock, rmock
}

func TestHealthHandler_Check(t *testing.T) {
	t.Run("both stores up", func(t *testing.T) {
		r, mock, rmock := setupHealthRouter(t)
		mock.ExpectPing()
		rmock.ExpectPing().SetVal("PONG")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":{"status":"ok"}}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down is 503", func(t *testing.T) {
		r, mock, _ := setupHealthRouter(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
		assert.Contains(t, w.Body.String(), "Banco de dados indisponível")
	})

	t.Run("redis down is 503", func(t *testing.T) {
		r, mock, rmock := setupHealthRouter(t)
		mock.ExpectPing()
		rmock.ExpectPing().SetErr(errors.New("connection refused"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Redis indisponível")
	})
}
