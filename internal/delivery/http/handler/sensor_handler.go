package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/pkg/utils"
	"github.com/road-monitoring-service/internal/pkg/validator"
	"github.com/road-monitoring-service/internal/usecase"
	"github.com/road-monitoring-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// SensorHandler - обработчик запросов по датчикам станций
type SensorHandler struct {
	sensorUC *usecase.SensorUseCase
	logger   *zap.Logger
}

func NewSensorHandler(sensorUC *usecase.SensorUseCase, logger *zap.Logger) *SensorHandler {
	return &SensorHandler{
		sensorUC: sensorUC,
		logger:   logger,
	}
}

// Create godoc
// @Summary Создать датчик
// @Tags sensors
// @Accept json
// @Produce json
// @Param request body dto.CreateSensorRequest true "Датчик"
// @Success 201 {object} utils.SuccessResponse{data=domain.Sensor}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/sensors [post]
func (h *SensorHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSensorRequest
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
// @Summary Список датчиков
// @Tags sensors
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Sensor}
// @Router /api/sensors [get]
func (h *SensorHandler) GetAll(c *fiber.Ctx) error {
	sensors, err := h.sensorUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sensors, &utils.Meta{Total: len(sensors)})
}

// GetByID godoc
// @Summary Получить датчик
// @Tags sensors
// @Produce json
// @Param id path string true "ID датчика"
// @Success 200 {object} utils.SuccessResponse{data=domain.Sensor}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/sensors/{id} [get]
func (h *SensorHandler) GetByID(c *fiber.Ctx) error {
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

// Update godoc
// @Summary Заменить датчик
// @Description Станция-владелец назначается при создании и не изменяется
// @Tags sensors
// @Accept json
// @Produce json
// @Param id path string true "ID датчика"
// @Param request body dto.UpdateSensorRequest true "Датчик"
// @Success 200 {object} utils.SuccessResponse{data=domain.Sensor}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/sensors/{id} [put]
func (h *SensorHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	var req dto.UpdateSensorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	sensor, err := h.sensorUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sensor, nil)
}

// Delete godoc
// @Summary Удалить датчик
// @Tags sensors
// @Param id path string true "ID датчика"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/sensors/{id} [delete]
func (h *SensorHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	if err := h.sensorUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}
