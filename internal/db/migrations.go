package db

import (
	"fmt"

	"gorm.io/gorm"

	"fleetops-service/internal/model"
)

// maintenance_records is managed with explicit SQL end to end, so its table
// is created here instead of through AutoMigrate.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS maintenance_records (
		id BIGSERIAL PRIMARY KEY,
		vehicle_id BIGINT NOT NULL,
		maintenance_date TIMESTAMPTZ NOT NULL,
		mileage NUMERIC NOT NULL DEFAULT 0,
		maintenance_type VARCHAR(100) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		cost NUMERIC NOT NULL DEFAULT 0,
		garage VARCHAR(100),
		next_maintenance_date TIMESTAMPTZ,
		next_maintenance_mileage NUMERIC,
		parts TEXT,
		technician_name VARCHAR(100),
		status VARCHAR(20) NOT NULL DEFAULT 'SCHEDULED',
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_records_vehicle ON maintenance_records (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_records_date ON maintenance_records (maintenance_date);`,
}

func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Vehicle{}, &model.FuelRecord{}, &model.User{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
