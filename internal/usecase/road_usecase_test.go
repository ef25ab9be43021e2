package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/usecase"
)

func TestRoadUseCase_GetState(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	roadID := uuid.New()
	ttl := 10 * time.Second

	t.Run("available when counters below bandwidth", func(t *testing.T) {
		mockRoads := &MockRoadRepository{}
		mockSensors := &MockRoadSensorRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetRoadState", ctx, roadID.String()).Return("", errors.ErrCacheError)
		mockRoads.On("GetByID", ctx, roadID).Return(&domain.Road{ID: roadID, Bandwidth: 3}, nil)
		mockSensors.On("GetByRoadID", ctx, roadID).Return([]*domain.RoadSensor{
			{AmountOfStateChanges: 1},
			{AmountOfStateChanges: 1},
		}, nil)
		mockCache.On("SetRoadState", ctx, roadID.String(), domain.RoadStateAvailable, ttl).Return(nil)

		uc := usecase.NewRoadUseCase(mockRoads, mockSensors, mockCache, logger, ttl)

		state, err := uc.GetState(ctx, roadID)
		require.NoError(t, err)
		assert.Equal(t, domain.RoadStateAvailable, state.State)
		mockCache.AssertExpectations(t)
	})

	t.Run("jam when counters reach bandwidth", func(t *testing.T) {
		mockRoads := &MockRoadRepository{}
		mockSensors := &MockRoadSensorRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetRoadState", ctx, roadID.String()).Return("", errors.ErrCacheError)
		mockRoads.On("GetByID", ctx, roadID).Return(&domain.Road{ID: roadID, Bandwidth: 2}, nil)
		mockSensors.On("GetByRoadID", ctx, roadID).Return([]*domain.RoadSensor{
			{AmountOfStateChanges: 1},
			{AmountOfStateChanges: 1},
		}, nil)
		mockCache.On("SetRoadState", ctx, roadID.String(), domain.RoadStateJam, ttl).Return(nil)

		uc := usecase.NewRoadUseCase(mockRoads, mockSensors, mockCache, logger, ttl)

		state, err := uc.GetState(ctx, roadID)
		require.NoError(t, err)
		assert.Equal(t, domain.RoadStateJam, state.State)
	})

	t.Run("cache hit skips repositories", func(t *testing.T) {
		mockRoads := &MockRoadRepository{}
		mockSensors := &MockRoadSensorRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetRoadState", ctx, roadID.String()).Return(domain.RoadStateJam, nil)

		uc := usecase.NewRoadUseCase(mockRoads, mockSensors, mockCache, logger, ttl)

		state, err := uc.GetState(ctx, roadID)
		require.NoError(t, err)
		assert.Equal(t, domain.RoadStateJam, state.State)
		mockRoads.AssertNotCalled(t, "GetByID")
		mockSensors.AssertNotCalled(t, "GetByRoadID")
	})

	t.Run("unknown road", func(t *testing.T) {
		mockRoads := &MockRoadRepository{}
		mockSensors := &MockRoadSensorRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetRoadState", ctx, roadID.String()).Return("", errors.ErrCacheError)
		mockRoads.On("GetByID", ctx, roadID).Return(nil, errors.ErrRoadNotFound)

		uc := usecase.NewRoadUseCase(mockRoads, mockSensors, mockCache, logger, ttl)

		_, err := uc.GetState(ctx, roadID)
		assert.Equal(t, errors.ErrRoadNotFound, err)
	})
}

func TestRoadUseCase_GetSensors(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	roadID := uuid.New()

	t.Run("unknown road is 404 not empty list", func(t *testing.T) {
		mockRoads := &MockRoadRepository{}
		mockSensors := &MockRoadSensorRepository{}

		mockRoads.On("GetByID", ctx, roadID).Return(nil, errors.ErrRoadNotFound)

		uc := usecase.NewRoadUseCase(mockRoads, mockSensors, nil, logger, time.Second)

		_, err := uc.GetSensors(ctx, roadID)
		assert.Equal(t, errors.ErrRoadNotFound, err)
		mockSensors.AssertNotCalled(t, "GetByRoadID")
	})

	t.Run("existing road returns its sensors", func(t *testing.T) {
		mockRoads := &MockRoadRepository{}
		mockSensors := &MockRoadSensorRepository{}

		mockRoads.On("GetByID", ctx, roadID).Return(&domain.Road{ID: roadID}, nil)
		mockSensors.On("GetByRoadID", ctx, roadID).Return([]*domain.RoadSensor{
			{ID: uuid.New(), RoadID: roadID},
			{ID: uuid.New(), RoadID: roadID},
		}, nil)

		uc := usecase.NewRoadUseCase(mockRoads, mockSensors, nil, logger, time.Second)

		sensors, err := uc.GetSensors(ctx, roadID)
		require.NoError(t, err)
		assert.Len(t, sensors, 2)
	})
}
