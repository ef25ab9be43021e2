package usecase

import (
	"context"
	"time"

	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/domain/repository"
	"go.uber.org/zap"
)

// StatsUseCase собирает количество записей по всем сущностям
type StatsUseCase struct {
	roadRepo        repository.RoadRepository
	roadSensorRepo  repository.RoadSensorRepository
	stationRepo     repository.ServiceStationRepository
	sensorRepo      repository.SensorRepository
	serviceTypeRepo repository.ServiceTypeRepository
	userRepo        repository.UserRepository
	cacheRepo       repository.CacheRepository
	logger          *zap.Logger
	statsTTL        time.Duration
}

func NewStatsUseCase(
	roadRepo repository.RoadRepository,
	roadSensorRepo repository.RoadSensorRepository,
	stationRepo repository.ServiceStationRepository,
	sensorRepo repository.SensorRepository,
	serviceTypeRepo repository.ServiceTypeRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	statsTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		roadRepo:        roadRepo,
		roadSensorRepo:  roadSensorRepo,
		stationRepo:     stationRepo,
		sensorRepo:      sensorRepo,
		serviceTypeRepo: serviceTypeRepo,
		userRepo:        userRepo,
		cacheRepo:       cacheRepo,
		logger:          logger,
		statsTTL:        statsTTL,
	}
}

func (uc *StatsUseCase) GetStats(ctx context.Context) (*domain.Statistics, error) {
	if uc.cacheRepo != nil {
		if stats, err := uc.cacheRepo.GetStats(ctx); err == nil && stats != nil {
			return stats, nil
		}
	}

	stats := &domain.Statistics{}
	var err error

	if stats.Roads, err = uc.roadRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RoadSensors, err = uc.roadSensorRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ServiceStations, err = uc.stationRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Sensors, err = uc.sensorRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ServiceTypes, err = uc.serviceTypeRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Users, err = uc.userRepo.Count(ctx); err != nil {
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetStats(ctx, stats, uc.statsTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return stats, nil
}
