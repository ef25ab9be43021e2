package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/road-monitoring-service/internal/pkg/utils"
	"github.com/road-monitoring-service/internal/usecase"
	"go.uber.org/zap"
)

// HealthChecker - проверка живости зависимости
type HealthChecker interface {
	Health(ctx context.Context) error
}

// StatsHandler - обработчик статистики и health check
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	db      HealthChecker
	cache   HealthChecker
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, db, cache HealthChecker, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		db:      db,
		cache:   cache,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Статистика по всем сущностям
// @Tags stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Router /api/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// GetHealth godoc
// @Summary Health check
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *StatsHandler) GetHealth(c *fiber.Ctx) error {
	status := fiber.Map{
		"status":   "healthy",
		"database": "ok",
		"cache":    "ok",
	}
	code := fiber.StatusOK

	if err := h.db.Health(c.Context()); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		code = fiber.StatusServiceUnavailable
	}

	if h.cache != nil {
		if err := h.cache.Health(c.Context()); err != nil {
			status["status"] = "degraded"
			status["cache"] = err.Error()
		}
	} else {
		status["cache"] = "disabled"
	}

	return c.Status(code).JSON(status)
}
