package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/road-monitoring-service/internal/config"
	"github.com/road-monitoring-service/internal/delivery/http/handler"
	"github.com/road-monitoring-service/internal/delivery/http/middleware"
	"github.com/road-monitoring-service/internal/pkg/auth"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app        *fiber.App
	config     *config.Config
	logger     *zap.Logger
	authorizer *auth.Authorizer

	// Handlers
	roadHandler        *handler.RoadHandler
	roadSensorHandler  *handler.RoadSensorHandler
	stationHandler     *handler.ServiceStationHandler
	sensorHandler      *handler.SensorHandler
	serviceTypeHandler *handler.ServiceTypeHandler
	userHandler        *handler.UserHandler
	statsHandler       *handler.StatsHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authorizer *auth.Authorizer,
	roadHandler *handler.RoadHandler,
	roadSensorHandler *handler.RoadSensorHandler,
	stationHandler *handler.ServiceStationHandler,
	sensorHandler *handler.SensorHandler,
	serviceTypeHandler *handler.ServiceTypeHandler,
	userHandler *handler.UserHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Road Monitoring Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		authorizer:         authorizer,
		roadHandler:        roadHandler,
		roadSensorHandler:  roadSensorHandler,
		stationHandler:     stationHandler,
		sensorHandler:      sensorHandler,
		serviceTypeHandler: serviceTypeHandler,
		userHandler:        userHandler,
		statsHandler:       statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(middleware.Auth(s.authorizer, s.config.Auth.Enabled))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	// Health check
	api.Get("/health", s.statsHandler.GetHealth)

	// Road routes
	api.Get("/roads", s.roadHandler.GetAll)
	api.Post("/roads", s.roadHandler.Create)
	api.Get("/roads/:id", s.roadHandler.GetByID)
	api.Put("/roads/:id", s.roadHandler.Update)
	api.Delete("/roads/:id", s.roadHandler.Delete)
	api.Get("/roads/:id/sensors", s.roadHandler.GetSensors)
	api.Get("/roads/:id/state", s.roadHandler.GetState)

	// Road sensor routes
	api.Get("/road_sensors", s.roadSensorHandler.GetAll)
	api.Post("/road_sensors", s.roadSensorHandler.Create)
	api.Post("/road_sensors/reset/:id", s.roadSensorHandler.Reset)
	api.Post("/road_sensors/update/:id", s.roadSensorHandler.SetOverlap)
	api.Get("/road_sensors/:id", s.roadSensorHandler.GetByID)
	api.Delete("/road_sensors/:id", s.roadSensorHandler.Delete)

	// Service station routes. "nearest" must be registered before ":id".
	api.Get("/service_stations", s.stationHandler.GetAll)
	api.Post("/service_stations", s.stationHandler.Create)
	api.Get("/service_stations/nearest", s.stationHandler.GetNearest)
	api.Get("/service_stations/:id", s.stationHandler.GetByID)
	api.Put("/service_stations/:id", s.stationHandler.Update)
	api.Delete("/service_stations/:id", s.stationHandler.Delete)
	api.Get("/service_stations/:id/sensors", s.stationHandler.GetSensors)
	api.Get("/service_stations/:id/sensors/empty", s.stationHandler.GetEmptySensors)
	api.Get("/service_stations/:id/type", s.stationHandler.GetType)

	// Sensor routes
	api.Get("/sensors", s.sensorHandler.GetAll)
	api.Post("/sensors", s.sensorHandler.Create)
	api.Get("/sensors/:id", s.sensorHandler.GetByID)
	api.Put("/sensors/:id", s.sensorHandler.Update)
	api.Delete("/sensors/:id", s.sensorHandler.Delete)

	// Service type routes
	api.Get("/service_types", s.serviceTypeHandler.GetAll)
	api.Post("/service_types", s.serviceTypeHandler.Create)
	api.Get("/service_types/:id", s.serviceTypeHandler.GetByID)
	api.Put("/service_types/:id", s.serviceTypeHandler.Update)
	api.Delete("/service_types/:id", s.serviceTypeHandler.Delete)
	api.Get("/service_types/:id/services", s.serviceTypeHandler.GetStations)

	// User routes
	api.Post("/users/register", s.userHandler.Register)
	api.Post("/users/login", s.userHandler.Login)
	api.Get("/users/logout", s.userHandler.Logout)
	api.Get("/users/emails", s.userHandler.GetEmails)
	api.Delete("/users/:id", s.userHandler.Delete)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает приложение Fiber для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
