package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/domain/repository"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/pkg/utils"
	"github.com/road-monitoring-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type ServiceStationUseCase struct {
	stationRepo     repository.ServiceStationRepository
	sensorRepo      repository.SensorRepository
	serviceTypeRepo repository.ServiceTypeRepository
	logger          *zap.Logger
}

func NewServiceStationUseCase(
	stationRepo repository.ServiceStationRepository,
	sensorRepo repository.SensorRepository,
	serviceTypeRepo repository.ServiceTypeRepository,
	logger *zap.Logger,
) *ServiceStationUseCase {
	return &ServiceStationUseCase{
		stationRepo:     stationRepo,
		sensorRepo:      sensorRepo,
		serviceTypeRepo: serviceTypeRepo,
		logger:          logger,
	}
}

func (uc *ServiceStationUseCase) Create(ctx context.Context, req dto.CreateServiceStationRequest) (*domain.ServiceStation, error) {
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	if _, err := uc.serviceTypeRepo.GetByID(ctx, req.Type); err != nil {
		if err == errors.ErrServiceTypeNotFound {
			return nil, errors.ErrServiceTypeReference
		}
		return nil, err
	}

	station := &domain.ServiceStation{
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Type:        req.Type,
	}

	return uc.stationRepo.Create(ctx, station)
}

func (uc *ServiceStationUseCase) GetAll(ctx context.Context) ([]*domain.ServiceStation, error) {
	return uc.stationRepo.GetAll(ctx)
}

func (uc *ServiceStationUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceStation, error) {
	return uc.stationRepo.GetByID(ctx, id)
}

// Update replaces the station's name, description and coordinates. The
// service type is fixed at creation and not touched here.
func (uc *ServiceStationUseCase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateServiceStationRequest) (*domain.ServiceStation, error) {
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	station := &domain.ServiceStation{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	return uc.stationRepo.Update(ctx, station)
}

// Delete removes the station only. Its sensors stay behind with a
// dangling owner reference.
func (uc *ServiceStationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.stationRepo.Delete(ctx, id)
}

// GetSensors возвращает датчики станции; onlyEmpty оставляет только
// датчики со свободным местом
func (uc *ServiceStationUseCase) GetSensors(ctx context.Context, stationID uuid.UUID, onlyEmpty bool) ([]*domain.Sensor, error) {
	if _, err := uc.stationRepo.GetByID(ctx, stationID); err != nil {
		return nil, err
	}

	return uc.sensorRepo.GetByOwnerID(ctx, stationID, onlyEmpty)
}

// GetType возвращает тип сервиса станции. После удаления типа ссылка
// станции повисает и запрос отвечает 404.
func (uc *ServiceStationUseCase) GetType(ctx context.Context, stationID uuid.UUID) (*domain.ServiceType, error) {
	station, err := uc.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		return nil, err
	}

	return uc.serviceTypeRepo.GetByID(ctx, station.Type)
}

// GetNearest returns stations of the requested type within rng kilometers
// of the given point, using great-circle distance.
func (uc *ServiceStationUseCase) GetNearest(ctx context.Context, req dto.NearestStationsRequest) ([]*domain.ServiceStation, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Long) {
		return nil, errors.ErrInvalidCoordinates
	}

	stations, err := uc.stationRepo.GetByType(ctx, req.Type)
	if err != nil {
		return nil, err
	}

	nearest := make([]*domain.ServiceStation, 0, len(stations))
	for _, station := range stations {
		distance := utils.HaversineDistance(req.Lat, req.Long, station.Latitude, station.Longitude)
		if distance <= req.Range {
			nearest = append(nearest, station)
		}
	}

	return nearest, nil
}
