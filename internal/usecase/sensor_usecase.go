package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/domain/repository"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type SensorUseCase struct {
	sensorRepo  repository.SensorRepository
	stationRepo repository.ServiceStationRepository
	logger      *zap.Logger
}

func NewSensorUseCase(
	sensorRepo repository.SensorRepository,
	stationRepo repository.ServiceStationRepository,
	logger *zap.Logger,
) *SensorUseCase {
	return &SensorUseCase{
		sensorRepo:  sensorRepo,
		stationRepo: stationRepo,
		logger:      logger,
	}
}

func (uc *SensorUseCase) Create(ctx context.Context, req dto.CreateSensorRequest) (*domain.Sensor, error) {
	// Owner station must exist; the schema carries no FK constraint
	if _, err := uc.stationRepo.GetByID(ctx, req.OwnerID); err != nil {
		if err == errors.ErrStationNotFound {
			return nil, errors.ErrStationReference
		}
		return nil, err
	}

	sensor := &domain.Sensor{
		IsEmptyPlace: req.IsEmptyPlace,
		OwnerID:      req.OwnerID,
	}

	return uc.sensorRepo.Create(ctx, sensor)
}

func (uc *SensorUseCase) GetAll(ctx context.Context) ([]*domain.Sensor, error) {
	return uc.sensorRepo.GetAll(ctx)
}

func (uc *SensorUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sensor, error) {
	return uc.sensorRepo.GetByID(ctx, id)
}

// Update replaces the occupancy flag. The owner station is fixed at
// creation and not touched here.
func (uc *SensorUseCase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSensorRequest) (*domain.Sensor, error) {
	sensor := &domain.Sensor{
		ID:           id,
		IsEmptyPlace: req.IsEmptyPlace,
	}

	return uc.sensorRepo.Update(ctx, sensor)
}

func (uc *SensorUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.sensorRepo.Delete(ctx, id)
}
