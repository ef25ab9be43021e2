package main

// @title Road Monitoring Service API
// @version 1.0.0
// @description Сервис мониторинга дорог: дороги и их датчики перекрытия, сервисные станции с датчиками занятости мест, типы сервисов и учетные записи.
// @description
// @description Основные возможности:
// @description - CRUD по дорогам, датчикам, станциям, типам сервисов и пользователям
// @description - Классификация состояния дороги (available/jam) по датчикам перекрытия
// @description - Поиск ближайших сервисных станций заданного типа в радиусе
// @description - Статистика по всем сущностям

// @contact.name API Support
// @contact.email support@road-monitoring-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/road-monitoring-service/docs"
	"github.com/road-monitoring-service/internal/config"
	httpDelivery "github.com/road-monitoring-service/internal/delivery/http"
	"github.com/road-monitoring-service/internal/delivery/http/handler"
	"github.com/road-monitoring-service/internal/pkg/auth"
	"github.com/road-monitoring-service/internal/pkg/logger"
	"github.com/road-monitoring-service/internal/repository/cache"
	"github.com/road-monitoring-service/internal/repository/postgres"
	"github.com/road-monitoring-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Road Monitoring Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("auth_enabled", cfg.Auth.Enabled),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Apply schema
	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer migrateCancel()
	if err := db.Migrate(migrateCtx); err != nil {
		log.Fatal("Failed to apply database schema", zap.Error(err))
	}
	log.Info("Database schema applied")

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize repositories
	roadRepo := postgres.NewRoadRepository(db)
	roadSensorRepo := postgres.NewRoadSensorRepository(db)
	stationRepo := postgres.NewServiceStationRepository(db)
	sensorRepo := postgres.NewSensorRepository(db)
	serviceTypeRepo := postgres.NewServiceTypeRepository(db)
	userRepo := postgres.NewUserRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 8. Initialize use cases
	authorizer := auth.NewAuthorizer(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	roadUC := usecase.NewRoadUseCase(
		roadRepo,
		roadSensorRepo,
		cacheRepo,
		log,
		cfg.Cache.RoadStateTTL,
	)

	roadSensorUC := usecase.NewRoadSensorUseCase(
		roadSensorRepo,
		roadRepo,
		cacheRepo,
		log,
	)

	stationUC := usecase.NewServiceStationUseCase(
		stationRepo,
		sensorRepo,
		serviceTypeRepo,
		log,
	)

	sensorUC := usecase.NewSensorUseCase(
		sensorRepo,
		stationRepo,
		log,
	)

	serviceTypeUC := usecase.NewServiceTypeUseCase(
		serviceTypeRepo,
		stationRepo,
		log,
	)

	userUC := usecase.NewUserUseCase(
		userRepo,
		authorizer,
		cfg.Auth.Enabled,
		log,
	)

	statsUC := usecase.NewStatsUseCase(
		roadRepo,
		roadSensorRepo,
		stationRepo,
		sensorRepo,
		serviceTypeRepo,
		userRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsTTL,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	roadHandler := handler.NewRoadHandler(roadUC, log)
	roadSensorHandler := handler.NewRoadSensorHandler(roadSensorUC, log)
	stationHandler := handler.NewServiceStationHandler(stationUC, log)
	sensorHandler := handler.NewSensorHandler(sensorUC, log)
	serviceTypeHandler := handler.NewServiceTypeHandler(serviceTypeUC, log)
	userHandler := handler.NewUserHandler(userUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, db, redisClient, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authorizer,
		roadHandler,
		roadSensorHandler,
		stationHandler,
		sensorHandler,
		serviceTypeHandler,
		userHandler,
		statsHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
