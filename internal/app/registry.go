package app

import (
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/auth"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/clientlog"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/empresa"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/funcionario"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/health"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/lookup"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, db *gorm.DB, redisClient *redis.Client) {
	logger := zap.L()
	sessions := session.NewStore(redisClient)

	// Root-level session lifecycle and the client log sink.
	authRepo := auth.NewRepository(db)
	authService := auth.NewService(authRepo, sessions, logger)
	auth.RegisterRoutes(router, auth.NewHandler(authService, sessions, logger))

	clientlog.RegisterRoutes(router, clientlog.NewHandler(logger))

	// Unauthenticated check for the load balancer.
	health.RegisterRoutes(router, health.NewHandler(db, redisClient, logger))

	// Authenticated API.
	api := router.Group("/api")

	funcionarioRepo := funcionario.NewRepository(db)
	funcionarioService := funcionario.NewService(db, funcionarioRepo, logger)
	funcionario.RegisterRoutes(api, funcionario.NewHandler(funcionarioService, logger), sessions, logger)

	empresaRepo := empresa.NewRepository(db)
	empresaService := empresa.NewService(db, empresaRepo, logger)
	empresa.RegisterRoutes(api, empresa.NewHandler(empresaService, logger), sessions, logger)

	lookupRepo := lookup.NewRepository(db)
	lookupService := lookup.NewService(lookupRepo, redisClient, logger)
	lookup.RegisterRoutes(api, lookup.NewHandler(lookupService), sessions)
}
