package repository

import (
	"context"
	"time"

	"github.com/road-monitoring-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetRoadState возвращает закешированное состояние дороги, "" при промахе
	GetRoadState(ctx context.Context, roadID string) (string, error)

	// SetRoadState сохраняет состояние дороги
	SetRoadState(ctx context.Context, roadID, state string, ttl time.Duration) error

	// InvalidateRoadState сбрасывает закешированное состояние дороги
	InvalidateRoadState(ctx context.Context, roadID string) error

	// GetStats возвращает закешированную статистику, nil при промахе
	GetStats(ctx context.Context) (*domain.Statistics, error)

	// SetStats сохраняет статистику
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
