package postgres

import (
	"context"

	"go.uber.org/zap"
)

// Foreign key columns deliberately carry no REFERENCES constraint: deleting
// a parent leaves its children in place with a dangling reference, and the
// parent check happens in the use case layer at creation time.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS service_types (
		id SERIAL PRIMARY KEY,
		type_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS service_stations (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		type INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS roads (
		id UUID PRIMARY KEY,
		address TEXT NOT NULL,
		length DOUBLE PRECISION NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		max_allowed_speed INTEGER NOT NULL,
		amount_of_lines INTEGER NOT NULL,
		bandwidth INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS road_sensors (
		id UUID PRIMARY KEY,
		is_overlaped BOOLEAN NOT NULL DEFAULT false,
		road_id UUID NOT NULL,
		amount_of_state_changes INTEGER NOT NULL DEFAULT 0 CHECK (amount_of_state_changes >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_road_sensors_road_id ON road_sensors (road_id)`,
	`CREATE TABLE IF NOT EXISTS sensors (
		id UUID PRIMARY KEY,
		is_empty_place BOOLEAN NOT NULL DEFAULT false,
		owner_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sensors_owner_id ON sensors (owner_id)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the schema. Safe to run on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.logger.Error("Migration statement failed", zap.Error(err))
			return err
		}
	}

	db.logger.Info("Schema migrated")
	return nil
}
