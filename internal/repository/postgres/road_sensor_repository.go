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

type roadSensorRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRoadSensorRepository(db *DB) repository.RoadSensorRepository {
	return &roadSensorRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *roadSensorRepository) Create(ctx context.Context, sensor *domain.RoadSensor) (*domain.RoadSensor, error) {
	query := `
		INSERT INTO road_sensors (id, is_overlaped, road_id, amount_of_state_changes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_overlaped, road_id, amount_of_state_changes, created_at
	`

	sensor.ID = uuid.New()

	var created domain.RoadSensor
	err := r.db.QueryRowContext(ctx, query,
		sensor.ID, sensor.IsOverlaped, sensor.RoadID, sensor.AmountOfStateChanges,
	).Scan(
		&created.ID, &created.IsOverlaped, &created.RoadID, &created.AmountOfStateChanges, &created.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create road sensor", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *roadSensorRepository) GetAll(ctx context.Context) ([]*domain.RoadSensor, error) {
	query := `
		SELECT id, is_overlaped, road_id, amount_of_state_changes, created_at
		FROM road_sensors
		ORDER BY created_at, id
	`

	var sensors []*domain.RoadSensor
	if err := r.db.SelectContext(ctx, &sensors, query); err != nil {
		r.logger.Error("Failed to get road sensors", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return sensors, nil
}

func (r *roadSensorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoadSensor, error) {
	query := `
		SELECT id, is_overlaped, road_id, amount_of_state_changes, created_at
		FROM road_sensors
		WHERE id = $1
	`

	var sensor domain.RoadSensor
	err := r.db.GetContext(ctx, &sensor, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRoadSensorNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get road sensor by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &sensor, nil
}

func (r *roadSensorRepository) GetByRoadID(ctx context.Context, roadID uuid.UUID) ([]*domain.RoadSensor, error) {
	query := `
		SELECT id, is_overlaped, road_id, amount_of_state_changes, created_at
		FROM road_sensors
		WHERE road_id = $1
		ORDER BY created_at, id
	`

	var sensors []*domain.RoadSensor
	if err := r.db.SelectContext(ctx, &sensors, query, roadID); err != nil {
		r.logger.Error("Failed to get road sensors by road ID",
			zap.String("road_id", roadID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return sensors, nil
}

func (r *roadSensorRepository) UpdateState(ctx context.Context, sensor *domain.RoadSensor) (*domain.RoadSensor, error) {
	query := `
		UPDATE road_sensors
		SET is_overlaped = $2, amount_of_state_changes = $3
		WHERE id = $1
		RETURNING id, is_overlaped, road_id, amount_of_state_changes, created_at
	`

	var updated domain.RoadSensor
	err := r.db.QueryRowContext(ctx, query,
		sensor.ID, sensor.IsOverlaped, sensor.AmountOfStateChanges,
	).Scan(
		&updated.ID, &updated.IsOverlaped, &updated.RoadID, &updated.AmountOfStateChanges, &updated.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRoadSensorNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update road sensor state", zap.String("id", sensor.ID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &updated, nil
}

func (r *roadSensorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM road_sensors WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete road sensor", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrRoadSensorNotFound
	}

	return nil
}

func (r *roadSensorRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM road_sensors`); err != nil {
		r.logger.Error("Failed to count road sensors", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
