package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"route-system/internal/controllers"
	"route-system/internal/repositories"
	"route-system/internal/services"
	"route-system/pkg/middleware"
	"route-system/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- repositórios ---
	routeRepo := repositories.NewRouteRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	pendingRepo := repositories.NewPendingRouteRepository(redisClient)
	userRepo := repositories.NewUserRepository(dbConn)

	// --- serviços ---
	routeService := services.NewRouteService(routeRepo, cacheRepo, logger)
	boardService := services.NewBoardService(routeRepo)
	importerService := services.NewImporterService(routeService, logger)
	reportService := services.NewReportService(routeRepo)
	syncService := services.NewSyncService(pendingRepo, routeRepo, routeService, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)

	// --- controllers ---
	routeCtrl := controllers.NewRouteController(routeService, boardService, logger)
	planilhaCtrl := controllers.NewPlanilhaController(importerService, routeService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	syncCtrl := controllers.NewSyncController(syncService, logger)
	authCtrl := controllers.NewAuthController(authService, logger)

	// Operações destrutivas em massa e a importação exigem token de admin.
	secureGroup := api.Group("", authMW.Auth)

	runRouteRouter(api, secureGroup, routeCtrl)
	runPlanilhaRouter(api, secureGroup, planilhaCtrl)
	runReportRouter(api, reportCtrl)
	runSyncRouter(api, syncCtrl)
	runAuthRouter(api, authCtrl)

	logger.Info("InitRouter: rotas registradas")
}
