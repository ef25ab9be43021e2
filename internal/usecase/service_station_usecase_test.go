package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/usecase"
	"github.com/road-monitoring-service/internal/usecase/dto"
)

func TestServiceStationUseCase_GetNearest(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	// Barcelona city center as reference point
	center := dto.NearestStationsRequest{Lat: 41.3851, Long: 2.1734, Type: 1, Range: 5}

	near := &domain.ServiceStation{
		ID:        uuid.New(),
		Name:      "Near station",
		Latitude:  41.4036, // Sagrada Família, ~2 km away
		Longitude: 2.1744,
		Type:      1,
	}
	far := &domain.ServiceStation{
		ID:        uuid.New(),
		Name:      "Far station",
		Latitude:  41.5463, // Granollers, ~28 km away
		Longitude: 2.2874,
		Type:      1,
	}

	t.Run("filters by distance", func(t *testing.T) {
		mockStations := &MockServiceStationRepository{}
		mockSensors := &MockSensorRepository{}
		mockTypes := &MockServiceTypeRepository{}

		mockStations.On("GetByType", ctx, 1).Return([]*domain.ServiceStation{near, far}, nil)

		uc := usecase.NewServiceStationUseCase(mockStations, mockSensors, mockTypes, logger)

		result, err := uc.GetNearest(ctx, center)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, near.ID, result[0].ID)
	})

	t.Run("no stations of requested type", func(t *testing.T) {
		mockStations := &MockServiceStationRepository{}
		mockSensors := &MockSensorRepository{}
		mockTypes := &MockServiceTypeRepository{}

		mockStations.On("GetByType", ctx, 2).Return([]*domain.ServiceStation{}, nil)

		uc := usecase.NewServiceStationUseCase(mockStations, mockSensors, mockTypes, logger)

		req := center
		req.Type = 2
		result, err := uc.GetNearest(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		mockStations := &MockServiceStationRepository{}
		mockSensors := &MockSensorRepository{}
		mockTypes := &MockServiceTypeRepository{}

		uc := usecase.NewServiceStationUseCase(mockStations, mockSensors, mockTypes, logger)

		req := center
		req.Lat = 91
		_, err := uc.GetNearest(ctx, req)
		assert.Equal(t, errors.ErrInvalidCoordinates, err)
		mockStations.AssertNotCalled(t, "GetByType")
	})
}

func TestServiceStationUseCase_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	req := dto.CreateServiceStationRequest{
		Name:      "Fuel station",
		Latitude:  41.4,
		Longitude: 2.17,
		Type:      7,
	}

	t.Run("dangling service type rejected", func(t *testing.T) {
		mockStations := &MockServiceStationRepository{}
		mockSensors := &MockSensorRepository{}
		mockTypes := &MockServiceTypeRepository{}

		mockTypes.On("GetByID", ctx, 7).Return(nil, errors.ErrServiceTypeNotFound)

		uc := usecase.NewServiceStationUseCase(mockStations, mockSensors, mockTypes, logger)

		_, err := uc.Create(ctx, req)
		assert.Equal(t, errors.ErrServiceTypeReference, err)
		mockStations.AssertNotCalled(t, "Create")
	})

	t.Run("existing type accepted", func(t *testing.T) {
		mockStations := &MockServiceStationRepository{}
		mockSensors := &MockSensorRepository{}
		mockTypes := &MockServiceTypeRepository{}

		mockTypes.On("GetByID", ctx, 7).Return(&domain.ServiceType{ID: 7, TypeName: "fuel"}, nil)
		mockStations.On("Create", ctx, &domain.ServiceStation{
			Name:      req.Name,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Type:      req.Type,
		}).Return(&domain.ServiceStation{ID: uuid.New(), Name: req.Name, Type: 7}, nil)

		uc := usecase.NewServiceStationUseCase(mockStations, mockSensors, mockTypes, logger)

		created, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 7, created.Type)
	})
}

func TestServiceStationUseCase_GetType(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	stationID := uuid.New()

	t.Run("dangling type reference is 404", func(t *testing.T) {
		mockStations := &MockServiceStationRepository{}
		mockSensors := &MockSensorRepository{}
		mockTypes := &MockServiceTypeRepository{}

		mockStations.On("GetByID", ctx, stationID).Return(&domain.ServiceStation{ID: stationID, Type: 9}, nil)
		mockTypes.On("GetByID", ctx, 9).Return(nil, errors.ErrServiceTypeNotFound)

		uc := usecase.NewServiceStationUseCase(mockStations, mockSensors, mockTypes, logger)

		_, err := uc.GetType(ctx, stationID)
		assert.Equal(t, errors.ErrServiceTypeNotFound, err)
	})
}
