package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/domain/repository"
	"github.com/road-monitoring-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type RoadUseCase struct {
	roadRepo       repository.RoadRepository
	roadSensorRepo repository.RoadSensorRepository
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	stateTTL       time.Duration
}

func NewRoadUseCase(
	roadRepo repository.RoadRepository,
	roadSensorRepo repository.RoadSensorRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	stateTTL time.Duration,
) *RoadUseCase {
	return &RoadUseCase{
		roadRepo:       roadRepo,
		roadSensorRepo: roadSensorRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		stateTTL:       stateTTL,
	}
}

func (uc *RoadUseCase) Create(ctx context.Context, req dto.RoadRequest) (*domain.Road, error) {
	road := &domain.Road{
		Address:         req.Address,
		Length:          req.Length,
		Description:     req.Description,
		MaxAllowedSpeed: req.MaxAllowedSpeed,
		AmountOfLines:   req.AmountOfLines,
		Bandwidth:       req.Bandwidth,
	}

	return uc.roadRepo.Create(ctx, road)
}

func (uc *RoadUseCase) GetAll(ctx context.Context) ([]*domain.Road, error) {
	return uc.roadRepo.GetAll(ctx)
}

func (uc *RoadUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Road, error) {
	return uc.roadRepo.GetByID(ctx, id)
}

// Update replaces all mutable fields of an existing road.
func (uc *RoadUseCase) Update(ctx context.Context, id uuid.UUID, req dto.RoadRequest) (*domain.Road, error) {
	road := &domain.Road{
		ID:              id,
		Address:         req.Address,
		Length:          req.Length,
		Description:     req.Description,
		MaxAllowedSpeed: req.MaxAllowedSpeed,
		AmountOfLines:   req.AmountOfLines,
		Bandwidth:       req.Bandwidth,
	}

	updated, err := uc.roadRepo.Update(ctx, road)
	if err != nil {
		return nil, err
	}

	// Bandwidth may have changed, so the cached classification is stale
	uc.invalidateState(ctx, id)

	return updated, nil
}

// Delete removes the road only. Its sensors stay behind with a dangling
// road reference.
func (uc *RoadUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.roadRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateState(ctx, id)
	return nil
}

// GetSensors возвращает все датчики дороги
func (uc *RoadUseCase) GetSensors(ctx context.Context, roadID uuid.UUID) ([]*domain.RoadSensor, error) {
	if _, err := uc.roadRepo.GetByID(ctx, roadID); err != nil {
		return nil, err
	}

	return uc.roadSensorRepo.GetByRoadID(ctx, roadID)
}

// GetState classifies the road as available or jammed against its
// bandwidth threshold.
func (uc *RoadUseCase) GetState(ctx context.Context, roadID uuid.UUID) (*dto.RoadStateResponse, error) {
	if uc.cacheRepo != nil {
		if state, err := uc.cacheRepo.GetRoadState(ctx, roadID.String()); err == nil && state != "" {
			return &dto.RoadStateResponse{State: state}, nil
		}
	}

	road, err := uc.roadRepo.GetByID(ctx, roadID)
	if err != nil {
		return nil, err
	}

	sensors, err := uc.roadSensorRepo.GetByRoadID(ctx, roadID)
	if err != nil {
		return nil, err
	}

	state := domain.RoadState(sensors, road.Bandwidth)

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetRoadState(ctx, roadID.String(), state, uc.stateTTL); err != nil {
			uc.logger.Warn("Failed to cache road state", zap.String("road_id", roadID.String()))
		}
	}

	return &dto.RoadStateResponse{State: state}, nil
}

func (uc *RoadUseCase) invalidateState(ctx context.Context, roadID uuid.UUID) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.InvalidateRoadState(ctx, roadID.String()); err != nil {
		uc.logger.Warn("Failed to invalidate road state cache", zap.String("road_id", roadID.String()))
	}
}
