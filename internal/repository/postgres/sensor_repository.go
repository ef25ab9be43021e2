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

type sensorRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSensorRepository(db *DB) repository.SensorRepository {
	return &sensorRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *sensorRepository) Create(ctx context.Context, sensor *domain.Sensor) (*domain.Sensor, error) {
	query := `
		INSERT INTO sensors (id, is_empty_place, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, is_empty_place, owner_id, created_at
	`

	sensor.ID = uuid.New()

	var created domain.Sensor
	err := r.db.QueryRowContext(ctx, query,
		sensor.ID, sensor.IsEmptyPlace, sensor.OwnerID,
	).Scan(
		&created.ID, &created.IsEmptyPlace, &created.OwnerID, &created.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create sensor", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *sensorRepository) GetAll(ctx context.Context) ([]*domain.Sensor, error) {
	query := `
		SELECT id, is_empty_place, owner_id, created_at
		FROM sensors
		ORDER BY created_at, id
	`

	var sensors []*domain.Sensor
	if err := r.db.SelectContext(ctx, &sensors, query); err != nil {
		r.logger.Error("Failed to get sensors", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return sensors, nil
}

func (r *sensorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sensor, error) {
	query := `
		SELECT id, is_empty_place, owner_id, created_at
		FROM sensors
		WHERE id = $1
	`

	var sensor domain.Sensor
	err := r.db.GetContext(ctx, &sensor, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrSensorNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get sensor by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &sensor, nil
}

func (r *sensorRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID, onlyEmpty bool) ([]*domain.Sensor, error) {
	query := `
		SELECT id, is_empty_place, owner_id, created_at
		FROM sensors
		WHERE owner_id = $1
	`
	if onlyEmpty {
		query += ` AND is_empty_place = true`
	}
	query += ` ORDER BY created_at, id`

	var sensors []*domain.Sensor
	if err := r.db.SelectContext(ctx, &sensors, query, ownerID); err != nil {
		r.logger.Error("Failed to get sensors by owner ID",
			zap.String("owner_id", ownerID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return sensors, nil
}

// Update does not touch the owner_id column.
func (r *sensorRepository) Update(ctx context.Context, sensor *domain.Sensor) (*domain.Sensor, error) {
	query := `
		UPDATE sensors
		SET is_empty_place = $2
		WHERE id = $1
		RETURNING id, is_empty_place, owner_id, created_at
	`

	var updated domain.Sensor
	err := r.db.QueryRowContext(ctx, query, sensor.ID, sensor.IsEmptyPlace).Scan(
		&updated.ID, &updated.IsEmptyPlace, &updated.OwnerID, &updated.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrSensorNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update sensor", zap.String("id", sensor.ID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &updated, nil
}

func (r *sensorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sensors WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete sensor", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrSensorNotFound
	}

	return nil
}

func (r *sensorRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sensors`); err != nil {
		r.logger.Error("Failed to count sensors", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
