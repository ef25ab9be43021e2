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

type serviceStationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewServiceStationRepository(db *DB) repository.ServiceStationRepository {
	return &serviceStationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *serviceStationRepository) Create(ctx context.Context, station *domain.ServiceStation) (*domain.ServiceStation, error) {
	query := `
		INSERT INTO service_stations (id, name, description, latitude, longitude, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, latitude, longitude, type, created_at
	`

	station.ID = uuid.New()

	var created domain.ServiceStation
	err := r.db.QueryRowContext(ctx, query,
		station.ID, station.Name, station.Description,
		station.Latitude, station.Longitude, station.Type,
	).Scan(
		&created.ID, &created.Name, &created.Description,
		&created.Latitude, &created.Longitude, &created.Type, &created.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create service station", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *serviceStationRepository) GetAll(ctx context.Context) ([]*domain.ServiceStation, error) {
	query := `
		SELECT id, name, description, latitude, longitude, type, created_at
		FROM service_stations
		ORDER BY created_at, id
	`

	var stations []*domain.ServiceStation
	if err := r.db.SelectContext(ctx, &stations, query); err != nil {
		r.logger.Error("Failed to get service stations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stations, nil
}

func (r *serviceStationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceStation, error) {
	query := `
		SELECT id, name, description, latitude, longitude, type, created_at
		FROM service_stations
		WHERE id = $1
	`

	var station domain.ServiceStation
	err := r.db.GetContext(ctx, &station, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrStationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get service station by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &station, nil
}

func (r *serviceStationRepository) GetByType(ctx context.Context, serviceTypeID int) ([]*domain.ServiceStation, error) {
	query := `
		SELECT id, name, description, latitude, longitude, type, created_at
		FROM service_stations
		WHERE type = $1
		ORDER BY created_at, id
	`

	var stations []*domain.ServiceStation
	if err := r.db.SelectContext(ctx, &stations, query, serviceTypeID); err != nil {
		r.logger.Error("Failed to get service stations by type",
			zap.Int("type", serviceTypeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stations, nil
}

// Update does not touch the type column: the service type reference is
// fixed at creation.
func (r *serviceStationRepository) Update(ctx context.Context, station *domain.ServiceStation) (*domain.ServiceStation, error) {
	query := `
		UPDATE service_stations
		SET name = $2, description = $3, latitude = $4, longitude = $5
		WHERE id = $1
		RETURNING id, name, description, latitude, longitude, type, created_at
	`

	var updated domain.ServiceStation
	err := r.db.QueryRowContext(ctx, query,
		station.ID, station.Name, station.Description, station.Latitude, station.Longitude,
	).Scan(
		&updated.ID, &updated.Name, &updated.Description,
		&updated.Latitude, &updated.Longitude, &updated.Type, &updated.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrStationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update service station", zap.String("id", station.ID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &updated, nil
}

func (r *serviceStationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM service_stations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete service station", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrStationNotFound
	}

	return nil
}

func (r *serviceStationRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM service_stations`); err != nil {
		r.logger.Error("Failed to count service stations", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
