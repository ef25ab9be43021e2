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

// RoadHandler - обработчик запросов по дорогам
type RoadHandler struct {
	roadUC *usecase.RoadUseCase
	logger *zap.Logger
}

func NewRoadHandler(roadUC *usecase.RoadUseCase, logger *zap.Logger) *RoadHandler {
	return &RoadHandler{
		roadUC: roadUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Создать дорогу
// @Tags roads
// @Accept json
// @Produce json
// @Param request body dto.RoadRequest true "Дорога"
// @Success 201 {object} utils.SuccessResponse{data=domain.Road}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/roads [post]
func (h *RoadHandler) Create(c *fiber.Ctx) error {
	var req dto.RoadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	road, err := h.roadUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, road)
}

// GetAll godoc
// @Summary Список дорог
// @Tags roads
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Road}
// @Router /api/roads [get]
func (h *RoadHandler) GetAll(c *fiber.Ctx) error {
	roads, err := h.roadUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, roads, &utils.Meta{Total: len(roads)})
}

// GetByID godoc
// @Summary Получить дорогу
// @Tags roads
// @Produce json
// @Param id path string true "ID дороги"
// @Success 200 {object} utils.SuccessResponse{data=domain.Road}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/roads/{id} [get]
func (h *RoadHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	road, err := h.roadUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, road, nil)
}

// Update godoc
// @Summary Заменить дорогу
// @Tags roads
// @Accept json
// @Produce json
// @Param id path string true "ID дороги"
// @Param request body dto.RoadRequest true "Дорога"
// @Success 200 {object} utils.SuccessResponse{data=domain.Road}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/roads/{id} [put]
func (h *RoadHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	var req dto.RoadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	road, err := h.roadUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, road, nil)
}

// Delete godoc
// @Summary Удалить дорогу
// @Tags roads
// @Param id path string true "ID дороги"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/roads/{id} [delete]
func (h *RoadHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	if err := h.roadUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}

// GetSensors godoc
// @Summary Датчики дороги
// @Tags roads
// @Produce json
// @Param id path string true "ID дороги"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.RoadSensor}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/roads/{id}/sensors [get]
func (h *RoadHandler) GetSensors(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	sensors, err := h.roadUC.GetSensors(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sensors, &utils.Meta{Total: len(sensors)})
}

// GetState godoc
// @Summary Состояние дороги
// @Description Классификация "available" или "jam" по датчикам дороги
// @Tags roads
// @Produce json
// @Param id path string true "ID дороги"
// @Success 200 {object} utils.SuccessResponse{data=dto.RoadStateResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/roads/{id}/state [get]
func (h *RoadHandler) GetState(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	state, err := h.roadUC.GetState(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}
