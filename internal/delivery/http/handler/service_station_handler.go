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

// ServiceStationHandler - обработчик запросов по сервисным станциям
type ServiceStationHandler struct {
	stationUC *usecase.ServiceStationUseCase
	logger    *zap.Logger
}

func NewServiceStationHandler(stationUC *usecase.ServiceStationUseCase, logger *zap.Logger) *ServiceStationHandler {
	return &ServiceStationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Создать станцию
// @Tags service_stations
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceStationRequest true "Станция"
// @Success 201 {object} utils.SuccessResponse{data=domain.ServiceStation}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/service_stations [post]
func (h *ServiceStationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceStationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, station)
}

// GetAll godoc
// @Summary Список станций
// @Tags service_stations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ServiceStation}
// @Router /api/service_stations [get]
func (h *ServiceStationHandler) GetAll(c *fiber.Ctx) error {
	stations, err := h.stationUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, &utils.Meta{Total: len(stations)})
}

// GetNearest godoc
// @Summary Ближайшие станции
// @Description Станции заданного типа в радиусе range (км) от точки
// @Tags service_stations
// @Produce json
// @Param lat query number true "Широта"
// @Param long query number true "Долгота"
// @Param type query int true "ID типа сервиса"
// @Param range query number true "Радиус, км"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ServiceStation}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/service_stations/nearest [get]
func (h *ServiceStationHandler) GetNearest(c *fiber.Ctx) error {
	req, err := parseNearestQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	stations, err := h.stationUC.GetNearest(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, &utils.Meta{Total: len(stations)})
}

// parseNearestQuery разбирает обязательные параметры lat, long, type, range
func parseNearestQuery(c *fiber.Ctx) (dto.NearestStationsRequest, error) {
	var req dto.NearestStationsRequest

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return req, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"param": "lat",
		})
	}

	long, err := strconv.ParseFloat(c.Query("long"), 64)
	if err != nil {
		return req, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"param": "long",
		})
	}

	serviceType, err := strconv.Atoi(c.Query("type"))
	if err != nil {
		return req, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"param": "type",
		})
	}

	rng, err := strconv.ParseFloat(c.Query("range"), 64)
	if err != nil {
		return req, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"param": "range",
		})
	}

	req = dto.NearestStationsRequest{
		Lat:   lat,
		Long:  long,
		Type:  serviceType,
		Range: rng,
	}
	return req, nil
}

// GetByID godoc
// @Summary Получить станцию
// @Tags service_stations
// @Produce json
// @Param id path string true "ID станции"
// @Success 200 {object} utils.SuccessResponse{data=domain.ServiceStation}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/service_stations/{id} [get]
func (h *ServiceStationHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	station, err := h.stationUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, station, nil)
}

// Update godoc
// @Summary Заменить станцию
// @Description Тип сервиса назначается при создании и не изменяется
// @Tags service_stations
// @Accept json
// @Produce json
// @Param id path string true "ID станции"
// @Param request body dto.UpdateServiceStationRequest true "Станция"
// @Success 200 {object} utils.SuccessResponse{data=domain.ServiceStation}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/service_stations/{id} [put]
func (h *ServiceStationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	var req dto.UpdateServiceStationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, station, nil)
}

// Delete godoc
// @Summary Удалить станцию
// @Tags service_stations
// @Param id path string true "ID станции"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/service_stations/{id} [delete]
func (h *ServiceStationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	if err := h.stationUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}

// GetSensors godoc
// @Summary Датчики станции
// @Tags service_stations
// @Produce json
// @Param id path string true "ID станции"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Sensor}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/service_stations/{id}/sensors [get]
func (h *ServiceStationHandler) GetSensors(c *fiber.Ctx) error {
	return h.getSensors(c, false)
}

// GetEmptySensors godoc
// @Summary Датчики станции со свободным местом
// @Tags service_stations
// @Produce json
// @Param id path string true "ID станции"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Sensor}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/service_stations/{id}/sensors/empty [get]
func (h *ServiceStationHandler) GetEmptySensors(c *fiber.Ctx) error {
	return h.getSensors(c, true)
}

func (h *ServiceStationHandler) getSensors(c *fiber.Ctx, onlyEmpty bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	sensors, err := h.stationUC.GetSensors(c.Context(), id, onlyEmpty)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sensors, &utils.Meta{Total: len(sensors)})
}

// GetType godoc
// @Summary Тип сервиса станции
// @Tags service_stations
// @Produce json
// @Param id path string true "ID станции"
// @Success 200 {object} utils.SuccessResponse{data=domain.ServiceType}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/service_stations/{id}/type [get]
func (h *ServiceStationHandler) GetType(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	serviceType, err := h.stationUC.GetType(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, serviceType, nil)
}
