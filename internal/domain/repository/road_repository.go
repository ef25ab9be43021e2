package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/domain"
)

// RoadRepository определяет методы для работы с дорогами
type RoadRepository interface {
	// Create сохраняет новую дорогу и возвращает её с присвоенным id
	Create(ctx context.Context, road *domain.Road) (*domain.Road, error)

	// GetAll возвращает все дороги в порядке создания
	GetAll(ctx context.Context) ([]*domain.Road, error)

	// GetByID возвращает дорогу по id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Road, error)

	// Update заменяет изменяемые поля существующей дороги
	Update(ctx context.Context, road *domain.Road) (*domain.Road, error)

	// Delete удаляет дорогу; датчики дороги не удаляются каскадно
	Delete(ctx context.Context, id uuid.UUID) error

	// Count возвращает количество дорог
	Count(ctx context.Context) (int, error)
}
