package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/usecase"
	"github.com/road-monitoring-service/internal/usecase/dto"
)

func TestRoadSensorUseCase_SetOverlap(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	sensorID := uuid.New()
	roadID := uuid.New()

	t.Run("overlapped to clear increments counter", func(t *testing.T) {
		mockSensors := &MockRoadSensorRepository{}
		mockRoads := &MockRoadRepository{}
		mockCache := &MockCacheRepository{}

		mockSensors.On("GetByID", ctx, sensorID).Return(&domain.RoadSensor{
			ID:                   sensorID,
			IsOverlaped:          true,
			RoadID:               roadID,
			AmountOfStateChanges: 5,
		}, nil)
		mockSensors.On("UpdateState", ctx, mock.MatchedBy(func(s *domain.RoadSensor) bool {
			return !s.IsOverlaped && s.AmountOfStateChanges == 6
		})).Return(&domain.RoadSensor{
			ID:                   sensorID,
			IsOverlaped:          false,
			RoadID:               roadID,
			AmountOfStateChanges: 6,
		}, nil)
		mockCache.On("InvalidateRoadState", ctx, roadID.String()).Return(nil)

		uc := usecase.NewRoadSensorUseCase(mockSensors, mockRoads, mockCache, logger)

		updated, err := uc.SetOverlap(ctx, sensorID, false)
		require.NoError(t, err)
		assert.False(t, updated.IsOverlaped)
		assert.Equal(t, 6, updated.AmountOfStateChanges)
		mockSensors.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("clear to overlapped leaves counter unchanged", func(t *testing.T) {
		mockSensors := &MockRoadSensorRepository{}
		mockRoads := &MockRoadRepository{}
		mockCache := &MockCacheRepository{}

		mockSensors.On("GetByID", ctx, sensorID).Return(&domain.RoadSensor{
			ID:                   sensorID,
			IsOverlaped:          false,
			RoadID:               roadID,
			AmountOfStateChanges: 5,
		}, nil)
		mockSensors.On("UpdateState", ctx, mock.MatchedBy(func(s *domain.RoadSensor) bool {
			return s.IsOverlaped && s.AmountOfStateChanges == 5
		})).Return(&domain.RoadSensor{
			ID:                   sensorID,
			IsOverlaped:          true,
			RoadID:               roadID,
			AmountOfStateChanges: 5,
		}, nil)
		mockCache.On("InvalidateRoadState", ctx, roadID.String()).Return(nil)

		uc := usecase.NewRoadSensorUseCase(mockSensors, mockRoads, mockCache, logger)

		updated, err := uc.SetOverlap(ctx, sensorID, true)
		require.NoError(t, err)
		assert.True(t, updated.IsOverlaped)
		assert.Equal(t, 5, updated.AmountOfStateChanges)
		mockSensors.AssertExpectations(t)
	})

	t.Run("unknown sensor", func(t *testing.T) {
		mockSensors := &MockRoadSensorRepository{}
		mockRoads := &MockRoadRepository{}
		mockCache := &MockCacheRepository{}

		mockSensors.On("GetByID", ctx, sensorID).Return(nil, errors.ErrRoadSensorNotFound)

		uc := usecase.NewRoadSensorUseCase(mockSensors, mockRoads, mockCache, logger)

		_, err := uc.SetOverlap(ctx, sensorID, true)
		assert.Equal(t, errors.ErrRoadSensorNotFound, err)
	})
}

func TestRoadSensorUseCase_Reset(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	sensorID := uuid.New()
	roadID := uuid.New()

	mockSensors := &MockRoadSensorRepository{}
	mockRoads := &MockRoadRepository{}
	mockCache := &MockCacheRepository{}

	mockSensors.On("GetByID", ctx, sensorID).Return(&domain.RoadSensor{
		ID:                   sensorID,
		IsOverlaped:          true,
		RoadID:               roadID,
		AmountOfStateChanges: 42,
	}, nil)
	mockSensors.On("UpdateState", ctx, mock.MatchedBy(func(s *domain.RoadSensor) bool {
		// Counter cleared, overlap flag untouched
		return s.IsOverlaped && s.AmountOfStateChanges == 0
	})).Return(&domain.RoadSensor{
		ID:          sensorID,
		IsOverlaped: true,
		RoadID:      roadID,
	}, nil)
	mockCache.On("InvalidateRoadState", ctx, roadID.String()).Return(nil)

	uc := usecase.NewRoadSensorUseCase(mockSensors, mockRoads, mockCache, logger)

	updated, err := uc.Reset(ctx, sensorID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.AmountOfStateChanges)
	assert.True(t, updated.IsOverlaped)
	mockSensors.AssertExpectations(t)
}

func TestRoadSensorUseCase_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	roadID := uuid.New()

	t.Run("dangling road reference rejected", func(t *testing.T) {
		mockSensors := &MockRoadSensorRepository{}
		mockRoads := &MockRoadRepository{}
		mockCache := &MockCacheRepository{}

		mockRoads.On("GetByID", ctx, roadID).Return(nil, errors.ErrRoadNotFound)

		uc := usecase.NewRoadSensorUseCase(mockSensors, mockRoads, mockCache, logger)

		_, err := uc.Create(ctx, dto.RoadSensorRequest{RoadID: roadID})
		assert.Equal(t, errors.ErrRoadReference, err)
		mockSensors.AssertNotCalled(t, "Create")
	})

	t.Run("existing road accepted", func(t *testing.T) {
		mockSensors := &MockRoadSensorRepository{}
		mockRoads := &MockRoadRepository{}
		mockCache := &MockCacheRepository{}

		mockRoads.On("GetByID", ctx, roadID).Return(&domain.Road{ID: roadID}, nil)
		mockSensors.On("Create", ctx, mock.AnythingOfType("*domain.RoadSensor")).Return(&domain.RoadSensor{
			ID:          uuid.New(),
			IsOverlaped: true,
			RoadID:      roadID,
		}, nil)
		mockCache.On("InvalidateRoadState", ctx, roadID.String()).Return(nil)

		uc := usecase.NewRoadSensorUseCase(mockSensors, mockRoads, mockCache, logger)

		created, err := uc.Create(ctx, dto.RoadSensorRequest{IsOverlaped: true, RoadID: roadID})
		require.NoError(t, err)
		assert.Equal(t, roadID, created.RoadID)
		mockSensors.AssertExpectations(t)
	})
}
