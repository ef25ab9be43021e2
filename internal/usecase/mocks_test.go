package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/road-monitoring-service/internal/domain"
)

// MockRoadRepository is a mock of RoadRepository
type MockRoadRepository struct {
	mock.Mock
}

func (m *MockRoadRepository) Create(ctx context.Context, road *domain.Road) (*domain.Road, error) {
	args := m.Called(ctx, road)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Road), args.Error(1)
}

func (m *MockRoadRepository) GetAll(ctx context.Context) ([]*domain.Road, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Road), args.Error(1)
}

func (m *MockRoadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Road, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Road), args.Error(1)
}

func (m *MockRoadRepository) Update(ctx context.Context, road *domain.Road) (*domain.Road, error) {
	args := m.Called(ctx, road)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Road), args.Error(1)
}

func (m *MockRoadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoadRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockRoadSensorRepository is a mock of RoadSensorRepository
type MockRoadSensorRepository struct {
	mock.Mock
}

func (m *MockRoadSensorRepository) Create(ctx context.Context, sensor *domain.RoadSensor) (*domain.RoadSensor, error) {
	args := m.Called(ctx, sensor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoadSensor), args.Error(1)
}

func (m *MockRoadSensorRepository) GetAll(ctx context.Context) ([]*domain.RoadSensor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RoadSensor), args.Error(1)
}

func (m *MockRoadSensorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoadSensor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoadSensor), args.Error(1)
}

func (m *MockRoadSensorRepository) GetByRoadID(ctx context.Context, roadID uuid.UUID) ([]*domain.RoadSensor, error) {
	args := m.Called(ctx, roadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RoadSensor), args.Error(1)
}

func (m *MockRoadSensorRepository) UpdateState(ctx context.Context, sensor *domain.RoadSensor) (*domain.RoadSensor, error) {
	args := m.Called(ctx, sensor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoadSensor), args.Error(1)
}

func (m *MockRoadSensorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoadSensorRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockServiceStationRepository is a mock of ServiceStationRepository
type MockServiceStationRepository struct {
	mock.Mock
}

func (m *MockServiceStationRepository) Create(ctx context.Context, station *domain.ServiceStation) (*domain.ServiceStation, error) {
	args := m.Called(ctx, station)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceStation), args.Error(1)
}

func (m *MockServiceStationRepository) GetAll(ctx context.Context) ([]*domain.ServiceStation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceStation), args.Error(1)
}

func (m *MockServiceStationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceStation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceStation), args.Error(1)
}

func (m *MockServiceStationRepository) GetByType(ctx context.Context, serviceTypeID int) ([]*domain.ServiceStation, error) {
	args := m.Called(ctx, serviceTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceStation), args.Error(1)
}

func (m *MockServiceStationRepository) Update(ctx context.Context, station *domain.ServiceStation) (*domain.ServiceStation, error) {
	args := m.Called(ctx, station)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceStation), args.Error(1)
}

func (m *MockServiceStationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceStationRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockSensorRepository is a mock of SensorRepository
type MockSensorRepository struct {
	mock.Mock
}

func (m *MockSensorRepository) Create(ctx context.Context, sensor *domain.Sensor) (*domain.Sensor, error) {
	args := m.Called(ctx, sensor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sensor), args.Error(1)
}

func (m *MockSensorRepository) GetAll(ctx context.Context) ([]*domain.Sensor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Sensor), args.Error(1)
}

func (m *MockSensorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sensor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sensor), args.Error(1)
}

func (m *MockSensorRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID, onlyEmpty bool) ([]*domain.Sensor, error) {
	args := m.Called(ctx, ownerID, onlyEmpty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Sensor), args.Error(1)
}

func (m *MockSensorRepository) Update(ctx context.Context, sensor *domain.Sensor) (*domain.Sensor, error) {
	args := m.Called(ctx, sensor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sensor), args.Error(1)
}

func (m *MockSensorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSensorRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockServiceTypeRepository is a mock of ServiceTypeRepository
type MockServiceTypeRepository struct {
	mock.Mock
}

func (m *MockServiceTypeRepository) Create(ctx context.Context, serviceType *domain.ServiceType) (*domain.ServiceType, error) {
	args := m.Called(ctx, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) GetAll(ctx context.Context) ([]*domain.ServiceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) GetByID(ctx context.Context, id int) (*domain.ServiceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) Update(ctx context.Context, serviceType *domain.ServiceType) (*domain.ServiceType, error) {
	args := m.Called(ctx, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceTypeRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetRoadState(ctx context.Context, roadID string) (string, error) {
	args := m.Called(ctx, roadID)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) SetRoadState(ctx context.Context, roadID, state string, ttl time.Duration) error {
	args := m.Called(ctx, roadID, state, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateRoadState(ctx context.Context, roadID string) error {
	args := m.Called(ctx, roadID)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}
