package repository

import (
	"context"

	"github.com/road-monitoring-service/internal/domain"
)

// ServiceTypeRepository определяет методы для работы с типами сервисов
type ServiceTypeRepository interface {
	// Create сохраняет новый тип и возвращает его с присвоенным id
	Create(ctx context.Context, serviceType *domain.ServiceType) (*domain.ServiceType, error)

	// GetAll возвращает все типы в порядке создания
	GetAll(ctx context.Context) ([]*domain.ServiceType, error)

	// GetByID возвращает тип по id
	GetByID(ctx context.Context, id int) (*domain.ServiceType, error)

	// Update заменяет название типа
	Update(ctx context.Context, serviceType *domain.ServiceType) (*domain.ServiceType, error)

	// Delete удаляет тип; станции этого типа не удаляются каскадно
	Delete(ctx context.Context, id int) error

	// Count возвращает количество типов
	Count(ctx context.Context) (int, error)
}
