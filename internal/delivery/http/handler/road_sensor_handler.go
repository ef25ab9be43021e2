package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/pkg/utils"
	"github.com/road-monitoring-service/internal/pkg/validator"
	"github.com/road-monitoring-service/internal/usecase"
	"github.com/road-monitoring-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RoadSensorHandler - обработчик запросов по дорожным датчикам
type RoadSensorHandler struct {
	sensorUC *usecase.RoadSensorUseCase
	logger   *zap.Logger
}

func NewRoadSensorHandler(sensorUC *usecase.RoadSensorUseCase, logger *zap.Logger) *RoadSensorHandler {
	return &RoadSensorHandler{
		sensorUC: sensorUC,
		logger:   logger,
	}
}

// Create godoc
// @Summary Создать дорожный датчик
// @Tags road_sensors
// @Accept json
// @Produce json
// @Param request body dto.RoadSensorRequest true "Датчик"
// @Success 201 {object} utils.SuccessResponse{data=domain.RoadSensor}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/road_sensors [post]
func (h *RoadSensorHandler) Create(c *fiber.Ctx) error {
	var req dto.RoadSensorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	sensor, err := h.sensorUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, sensor)
}

// GetAll godoc
// @Summary Список дорожных датчиков
// @Tags road_sensors
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.RoadSensor}
// @Router /api/road_sensors [get]
func (h *RoadSensorHandler) GetAll(c *fiber.Ctx) error {
	sensors, err := h.sensorUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sensors, &utils.Meta{Total: len(sensors)})
}

// GetByID godoc
// @Summary Получить дорожный датчик
// @Tags road_sensors
// @Produce json
// @Param id path string true "ID датчика"
// @Success 200 {object} utils.SuccessResponse{data=domain.RoadSensor}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/road_sensors/{id} [get]
func (h *RoadSensorHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	sensor, err := h.sensorUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sensor, nil)
}

// Reset godoc
// @Summary Сбросить счетчик изменений состояния
// @Description Обнуляет счетчик, флаг перекрытия не меняется
// @Tags road_sensors
// @Produce json
// @Param id path string true "ID датчика"
// @Success 200 {object} utils.SuccessResponse{data=domain.RoadSensor}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/road_sensors/reset/{id} [post]
func (h *RoadSensorHandler) Reset(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	sensor, err := h.sensorUC.Reset(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sensor, nil)
}

// SetOverlap godoc
// @Summary Обновить флаг перекрытия
// @Description Переход из перекрытого в свободное состояние увеличивает счетчик
// @Tags road_sensors
// @Produce json
// @Param id path string true "ID датчика"
// @Param state query bool true "Новое состояние перекрытия"
// @Success 200 {object} utils.SuccessResponse{data=domain.RoadSensor}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/road_sensors/update/{id} [post]
func (h *RoadSensorHandler) SetOverlap(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	stateParam := c.Query("state")
	if stateParam == "" {
		return utils.SendError(c, errors.ErrInvalidState)
	}

	newState, err := strconv.ParseBool(stateParam)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidState)
	}

	sensor, err := h.sensorUC.SetOverlap(c.Context(), id, newState)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sensor, nil)
}

// Delete godoc
// @Summary Удалить дорожный датчик
// @Tags road_sensors
// @Param id path string true "ID датчика"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/road_sensors/{id} [delete]
func (h *RoadSensorHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	if err := h.sensorUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}
