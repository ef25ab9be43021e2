package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/pkg/utils"
	"github.com/road-monitoring-service/internal/pkg/validator"
	"github.com/road-monitoring-service/internal/usecase"
	"github.com/road-monitoring-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// ServiceTypeHandler - обработчик запросов по типам сервисов
type ServiceTypeHandler struct {
	typeUC *usecase.ServiceTypeUseCase
	logger *zap.Logger
}

func NewServiceTypeHandler(typeUC *usecase.ServiceTypeUseCase, logger *zap.Logger) *ServiceTypeHandler {
	return &ServiceTypeHandler{
		typeUC: typeUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Создать тип сервиса
// @Tags service_types
// @Accept json
// @Produce json
// @Param request body dto.ServiceTypeRequest true "Тип сервиса"
// @Success 201 {object} utils.SuccessResponse{data=domain.ServiceType}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/service_types [post]
func (h *ServiceTypeHandler) Create(c *fiber.Ctx) error {
	var req dto.ServiceTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	serviceType, err := h.typeUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, serviceType)
}

// GetAll godoc
// @Summary Список типов сервисов
// @Tags service_types
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ServiceType}
// @Router /api/service_types [get]
func (h *ServiceTypeHandler) GetAll(c *fiber.Ctx) error {
	types, err := h.typeUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, types, &utils.Meta{Total: len(types)})
}

// GetByID godoc
// @Summary Получить тип сервиса
// @Tags service_types
// @Produce json
// @Param id path int true "ID типа"
// @Success 200 {object} utils.SuccessResponse{data=domain.ServiceType}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/service_types/{id} [get]
func (h *ServiceTypeHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	serviceType, err := h.typeUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, serviceType, nil)
}

// Update godoc
// @Summary Заменить тип сервиса
// @Tags service_types
// @Accept json
// @Produce json
// @Param id path int true "ID типа"
// @Param request body dto.ServiceTypeRequest true "Тип сервиса"
// @Success 200 {object} utils.SuccessResponse{data=domain.ServiceType}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/service_types/{id} [put]
func (h *ServiceTypeHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	var req dto.ServiceTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	serviceType, err := h.typeUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, serviceType, nil)
}

// Delete godoc
// @Summary Удалить тип сервиса
// @Description Станции этого типа не удаляются, ссылка у них повисает
// @Tags service_types
// @Param id path int true "ID типа"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/service_types/{id} [delete]
func (h *ServiceTypeHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	if err := h.typeUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}

// GetStations godoc
// @Summary Станции данного типа
// @Tags service_types
// @Produce json
// @Param id path int true "ID типа"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ServiceStation}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/service_types/{id}/services [get]
func (h *ServiceTypeHandler) GetStations(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	stations, err := h.typeUC.GetStations(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, &utils.Meta{Total: len(stations)})
}
