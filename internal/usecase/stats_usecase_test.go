package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/usecase"
)

func TestStatsUseCase_GetStats(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ttl := time.Minute

	t.Run("collects counts from all repositories", func(t *testing.T) {
		mockRoads := &MockRoadRepository{}
		mockRoadSensors := &MockRoadSensorRepository{}
		mockStations := &MockServiceStationRepository{}
		mockSensors := &MockSensorRepository{}
		mockTypes := &MockServiceTypeRepository{}
		mockUsers := &MockUserRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetStats", ctx).Return(nil, errors.ErrCacheError)
		mockRoads.On("Count", ctx).Return(3, nil)
		mockRoadSensors.On("Count", ctx).Return(7, nil)
		mockStations.On("Count", ctx).Return(2, nil)
		mockSensors.On("Count", ctx).Return(11, nil)
		mockTypes.On("Count", ctx).Return(4, nil)
		mockUsers.On("Count", ctx).Return(1, nil)
		mockCache.On("SetStats", ctx, &domain.Statistics{
			Roads:           3,
			RoadSensors:     7,
			ServiceStations: 2,
			Sensors:         11,
			ServiceTypes:    4,
			Users:           1,
		}, ttl).Return(nil)

		uc := usecase.NewStatsUseCase(
			mockRoads, mockRoadSensors, mockStations,
			mockSensors, mockTypes, mockUsers,
			mockCache, logger, ttl,
		)

		stats, err := uc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Roads)
		assert.Equal(t, 7, stats.RoadSensors)
		assert.Equal(t, 1, stats.Users)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips counting", func(t *testing.T) {
		mockRoads := &MockRoadRepository{}
		mockRoadSensors := &MockRoadSensorRepository{}
		mockStations := &MockServiceStationRepository{}
		mockSensors := &MockSensorRepository{}
		mockTypes := &MockServiceTypeRepository{}
		mockUsers := &MockUserRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetStats", ctx).Return(&domain.Statistics{Roads: 42}, nil)

		uc := usecase.NewStatsUseCase(
			mockRoads, mockRoadSensors, mockStations,
			mockSensors, mockTypes, mockUsers,
			mockCache, logger, ttl,
		)

		stats, err := uc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 42, stats.Roads)
		mockRoads.AssertNotCalled(t, "Count")
	})
}
