package routes

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rigtrack/internal/controllers"
	"rigtrack/internal/repositories"
	"rigtrack/internal/services"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, statsTTL time.Duration, logger *zap.Logger) {
	api := e.Group("/api")

	txManager := repositories.NewTxManager(dbConn)

	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	typeRepo := repositories.NewEquipmentTypeRepository(dbConn)
	inspectionRepo := repositories.NewInspectionRepository(dbConn)
	statusChangeRepo := repositories.NewStatusChangeRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	equipmentService := services.NewEquipmentService(equipmentRepo, typeRepo, inspectionRepo, statusChangeRepo, txManager, logger)
	typeService := services.NewEquipmentTypeService(typeRepo, logger)
	inspectionService := services.NewInspectionService(inspectionRepo, equipmentRepo, statusChangeRepo, txManager, logger)
	reportService := services.NewReportService(reportRepo, cacheRepo, statsTTL, logger)

	equipmentCtrl := controllers.NewEquipmentController(equipmentService, reportService, logger)
	typeCtrl := controllers.NewEquipmentTypeController(typeService, logger)
	inspectionCtrl := controllers.NewInspectionController(inspectionService, reportService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	runEquipmentRouter(api, equipmentCtrl)
	runEquipmentTypeRouter(api, typeCtrl)
	runInspectionRouter(api, inspectionCtrl)
	runReportRouter(api, reportCtrl)
}
