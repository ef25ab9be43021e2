package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/domain/repository"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type serviceTypeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewServiceTypeRepository(db *DB) repository.ServiceTypeRepository {
	return &serviceTypeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *serviceTypeRepository) Create(ctx context.Context, serviceType *domain.ServiceType) (*domain.ServiceType, error) {
	query := `
		INSERT INTO service_types (type_name)
		VALUES ($1)
		RETURNING id, type_name, created_at
	`

	var created domain.ServiceType
	err := r.db.QueryRowContext(ctx, query, serviceType.TypeName).Scan(
		&created.ID, &created.TypeName, &created.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create service type", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *serviceTypeRepository) GetAll(ctx context.Context) ([]*domain.ServiceType, error) {
	query := `
		SELECT id, type_name, created_at
		FROM service_types
		ORDER BY created_at, id
	`

	var types []*domain.ServiceType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		r.logger.Error("Failed to get service types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return types, nil
}

func (r *serviceTypeRepository) GetByID(ctx context.Context, id int) (*domain.ServiceType, error) {
	query := `
		SELECT id, type_name, created_at
		FROM service_types
		WHERE id = $1
	`

	var serviceType domain.ServiceType
	err := r.db.GetContext(ctx, &serviceType, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrServiceTypeNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get service type by ID", zap.Int("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &serviceType, nil
}

func (r *serviceTypeRepository) Update(ctx context.Context, serviceType *domain.ServiceType) (*domain.ServiceType, error) {
	query := `
		UPDATE service_types
		SET type_name = $2
		WHERE id = $1
		RETURNING id, type_name, created_at
	`

	var updated domain.ServiceType
	err := r.db.QueryRowContext(ctx, query, serviceType.ID, serviceType.TypeName).Scan(
		&updated.ID, &updated.TypeName, &updated.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrServiceTypeNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update service type", zap.Int("id", serviceType.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &updated, nil
}

func (r *serviceTypeRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM service_types WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete service type", zap.Int("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrServiceTypeNotFound
	}

	return nil
}

func (r *serviceTypeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM service_types`); err != nil {
		r.logger.Error("Failed to count service types", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
