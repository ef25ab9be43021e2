package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/domain"
)

// RoadSensorRepository определяет методы для работы с дорожными датчиками
type RoadSensorRepository interface {
	// Create сохраняет новый датчик и возвращает его с присвоенным id
	Create(ctx context.Context, sensor *domain.RoadSensor) (*domain.RoadSensor, error)

	// GetAll возвращает все датчики в порядке создания
	GetAll(ctx context.Context) ([]*domain.RoadSensor, error)

	// GetByID возвращает датчик по id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RoadSensor, error)

	// GetByRoadID возвращает все датчики дороги в порядке создания
	GetByRoadID(ctx context.Context, roadID uuid.UUID) ([]*domain.RoadSensor, error)

	// UpdateState сохраняет флаг перекрытия и счетчик изменений состояния.
	// road_id не изменяется.
	UpdateState(ctx context.Context, sensor *domain.RoadSensor) (*domain.RoadSensor, error)

	// Delete удаляет датчик
	Delete(ctx context.Context, id uuid.UUID) error

	// Count возвращает количество датчиков
	Count(ctx context.Context) (int, error)
}
