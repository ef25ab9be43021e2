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

type RoadSensorUseCase struct {
	roadSensorRepo repository.RoadSensorRepository
	roadRepo       repository.RoadRepository
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
}

func NewRoadSensorUseCase(
	roadSensorRepo repository.RoadSensorRepository,
	roadRepo repository.RoadRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *RoadSensorUseCase {
	return &RoadSensorUseCase{
		roadSensorRepo: roadSensorRepo,
		roadRepo:       roadRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
	}
}

func (uc *RoadSensorUseCase) Create(ctx context.Context, req dto.RoadSensorRequest) (*domain.RoadSensor, error) {
	// The road reference must resolve at creation time; there is no FK
	// constraint backing it up in the schema.
	if _, err := uc.roadRepo.GetByID(ctx, req.RoadID); err != nil {
		if err == errors.ErrRoadNotFound {
			return nil, errors.ErrRoadReference
		}
		return nil, err
	}

	sensor := &domain.RoadSensor{
		IsOverlaped:          req.IsOverlaped,
		RoadID:               req.RoadID,
		AmountOfStateChanges: req.AmountOfStateChanges,
	}

	created, err := uc.roadSensorRepo.Create(ctx, sensor)
	if err != nil {
		return nil, err
	}

	uc.invalidateRoadState(ctx, created.RoadID)
	return created, nil
}

func (uc *RoadSensorUseCase) GetAll(ctx context.Context) ([]*domain.RoadSensor, error) {
	return uc.roadSensorRepo.GetAll(ctx)
}

func (uc *RoadSensorUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoadSensor, error) {
	return uc.roadSensorRepo.GetByID(ctx, id)
}

// Reset zeroes the state-change counter. The overlap flag is untouched.
func (uc *RoadSensorUseCase) Reset(ctx context.Context, id uuid.UUID) (*domain.RoadSensor, error) {
	sensor, err := uc.roadSensorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sensor.ResetStateChanges()

	updated, err := uc.roadSensorRepo.UpdateState(ctx, sensor)
	if err != nil {
		return nil, err
	}

	uc.invalidateRoadState(ctx, updated.RoadID)
	return updated, nil
}

// SetOverlap applies the new overlap state. An overlapped sensor going
// clear counts one state change; the reverse transition counts nothing.
func (uc *RoadSensorUseCase) SetOverlap(ctx context.Context, id uuid.UUID, newState bool) (*domain.RoadSensor, error) {
	sensor, err := uc.roadSensorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sensor.ApplyOverlap(newState)

	updated, err := uc.roadSensorRepo.UpdateState(ctx, sensor)
	if err != nil {
		return nil, err
	}

	uc.invalidateRoadState(ctx, updated.RoadID)
	return updated, nil
}

func (uc *RoadSensorUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	sensor, err := uc.roadSensorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.roadSensorRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateRoadState(ctx, sensor.RoadID)
	return nil
}

func (uc *RoadSensorUseCase) invalidateRoadState(ctx context.Context, roadID uuid.UUID) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.InvalidateRoadState(ctx, roadID.String()); err != nil {
		uc.logger.Warn("Failed to invalidate road state cache", zap.String("road_id", roadID.String()))
	}
}
