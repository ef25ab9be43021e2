package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/domain"
)

// UserRepository определяет методы для работы с учетными записями
type UserRepository interface {
	// Create сохраняет нового пользователя и возвращает его с присвоенным id
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetAll возвращает всех пользователей в порядке создания
	GetAll(ctx context.Context) ([]*domain.User, error)

	// GetByEmail возвращает пользователя по email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Delete удаляет пользователя
	Delete(ctx context.Context, id uuid.UUID) error

	// Count возвращает количество пользователей
	Count(ctx context.Context) (int, error)
}
