package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/domain"
)

// ServiceStationRepository определяет методы для работы с сервисными станциями
type ServiceStationRepository interface {
	// Create сохраняет новую станцию и возвращает её с присвоенным id
	Create(ctx context.Context, station *domain.ServiceStation) (*domain.ServiceStation, error)

	// GetAll возвращает все станции в порядке создания
	GetAll(ctx context.Context) ([]*domain.ServiceStation, error)

	// GetByID возвращает станцию по id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceStation, error)

	// GetByType возвращает станции заданного типа сервиса
	GetByType(ctx context.Context, serviceTypeID int) ([]*domain.ServiceStation, error)

	// Update заменяет изменяемые поля станции; тип сервиса не изменяется
	Update(ctx context.Context, station *domain.ServiceStation) (*domain.ServiceStation, error)

	// Delete удаляет станцию; датчики станции не удаляются каскадно
	Delete(ctx context.Context, id uuid.UUID) error

	// Count возвращает количество станций
	Count(ctx context.Context) (int, error)
}
