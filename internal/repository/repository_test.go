package repository

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"fleetops-service/internal/model"
)

const maintenanceTestDDL = `CREATE TABLE maintenance_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	vehicle_id INTEGER NOT NULL,
	maintenance_date DATETIME NOT NULL,
	mileage REAL NOT NULL DEFAULT 0,
	maintenance_type TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	cost REAL NOT NULL DEFAULT 0,
	garage TEXT,
	next_maintenance_date DATETIME,
	next_maintenance_mileage REAL,
	parts TEXT,
	technician_name TEXT,
	status TEXT NOT NULL DEFAULT 'SCHEDULED',
	notes TEXT,
	created_at DATETIME NOT NULL
)`

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fleetops_test.db")
	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", DSN: dbPath}, &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if err := db.AutoMigrate(&model.Vehicle{}, &model.FuelRecord{}, &model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec(maintenanceTestDDL).Error; err != nil {
		t.Fatalf("create maintenance table: %v", err)
	}
	return db
}
