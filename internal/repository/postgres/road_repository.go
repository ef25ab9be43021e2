package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/domain/repository"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type roadRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRoadRepository(db *DB) repository.RoadRepository {
	return &roadRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *roadRepository) Create(ctx context.Context, road *domain.Road) (*domain.Road, error) {
	query := `
		INSERT INTO roads (id, address, length, description, max_allowed_speed, amount_of_lines, bandwidth)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, address, length, description, max_allowed_speed, amount_of_lines, bandwidth, created_at
	`

	road.ID = uuid.New()

	var created domain.Road
	err := r.db.QueryRowContext(ctx, query,
		road.ID, road.Address, road.Length, road.Description,
		road.MaxAllowedSpeed, road.AmountOfLines, road.Bandwidth,
	).Scan(
		&created.ID, &created.Address, &created.Length, &created.Description,
		&created.MaxAllowedSpeed, &created.AmountOfLines, &created.Bandwidth, &created.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create road", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *roadRepository) GetAll(ctx context.Context) ([]*domain.Road, error) {
	query := `
		SELECT id, address, length, description, max_allowed_speed, amount_of_lines, bandwidth, created_at
		FROM roads
		ORDER BY created_at, id
	`

	var roads []*domain.Road
	if err := r.db.SelectContext(ctx, &roads, query); err != nil {
		r.logger.Error("Failed to get roads", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return roads, nil
}

func (r *roadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Road, error) {
	query := `
		SELECT id, address, length, description, max_allowed_speed, amount_of_lines, bandwidth, created_at
		FROM roads
		WHERE id = $1
	`

	var road domain.Road
	err := r.db.GetContext(ctx, &road, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRoadNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get road by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &road, nil
}

func (r *roadRepository) Update(ctx context.Context, road *domain.Road) (*domain.Road, error) {
	query := `
		UPDATE roads
		SET address = $2, length = $3, description = $4, max_allowed_speed = $5, amount_of_lines = $6, bandwidth = $7
		WHERE id = $1
		RETURNING id, address, length, description, max_allowed_speed, amount_of_lines, bandwidth, created_at
	`

	var updated domain.Road
	err := r.db.QueryRowContext(ctx, query,
		road.ID, road.Address, road.Length, road.Description,
		road.MaxAllowedSpeed, road.AmountOfLines, road.Bandwidth,
	).Scan(
		&updated.ID, &updated.Address, &updated.Length, &updated.Description,
		&updated.MaxAllowedSpeed, &updated.AmountOfLines, &updated.Bandwidth, &updated.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRoadNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update road", zap.String("id", road.ID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &updated, nil
}

func (r *roadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roads WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete road", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrRoadNotFound
	}

	return nil
}

func (r *roadRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM roads`); err != nil {
		r.logger.Error("Failed to count roads", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
