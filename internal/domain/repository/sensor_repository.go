package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/domain"
)

// SensorRepository определяет методы для работы с датчиками станций
type SensorRepository interface {
	// Create сохраняет новый датчик и возвращает его с присвоенным id
	Create(ctx context.Context, sensor *domain.Sensor) (*domain.Sensor, error)

	// GetAll возвращает все датчики в порядке создания
	GetAll(ctx context.Context) ([]*domain.Sensor, error)

	// GetByID возвращает датчик по id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sensor, error)

	// GetByOwnerID возвращает датчики станции; onlyEmpty оставляет только
	// датчики со свободным местом
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID, onlyEmpty bool) ([]*domain.Sensor, error)

	// Update заменяет изменяемые поля датчика; owner_id не изменяется
	Update(ctx context.Context, sensor *domain.Sensor) (*domain.Sensor, error)

	// Delete удаляет датчик
	Delete(ctx context.Context, id uuid.UUID) error

	// Count возвращает количество датчиков
	Count(ctx context.Context) (int, error)
}
