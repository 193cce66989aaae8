package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"fleetops-service/internal/config"
	"fleetops-service/internal/model"
	"fleetops-service/internal/repository"
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

type fixture struct {
	db          *gorm.DB
	vehicles    *repository.VehicleRepository
	fuel        *repository.FuelRepository
	maintenance *repository.MaintenanceRepository
	users       *repository.UserRepository
}

func newFixture(t *testing.T) *fixture {
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

	return &fixture{
		db:          db,
		vehicles:    repository.NewVehicleRepository(db),
		fuel:        repository.NewFuelRepository(db),
		maintenance: repository.NewMaintenanceRepository(db),
		users:       repository.NewUserRepository(db),
	}
}

func defaultAlertsConfig() config.AlertsConfig {
	return config.AlertsConfig{
		MaintenanceDueDays:    30,
		InspectionExpiryDays:  60,
		InsuranceExpiryDays:   30,
		HighConsumptionFactor: 1.3,
	}
}

func defaultStatisticsConfig() config.StatisticsConfig {
	return config.StatisticsConfig{
		TrendDays:        30,
		MonthlyMonths:    12,
		PredictionMonths: 3,
		TopVehicles:      5,
		RecentMovements:  10,
	}
}

func (f *fixture) statisticsService(now time.Time) *StatisticsService {
	svc := NewStatisticsService(f.vehicles, f.fuel, f.maintenance, defaultAlertsConfig(), defaultStatisticsConfig())
	svc.now = func() time.Time { return now }
	return svc
}

func (f *fixture) addVehicle(t *testing.T, vehicle model.Vehicle) model.Vehicle {
	t.Helper()
	if vehicle.Status == "" {
		vehicle.Status = model.VehicleStatusActive
	}
	if vehicle.VehicleType == "" {
		vehicle.VehicleType = model.VehicleTypeCar
	}
	if vehicle.FuelType == "" {
		vehicle.FuelType = model.FuelTypeDiesel
	}
	if err := f.vehicles.Create(context.Background(), &vehicle); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return vehicle
}

func (f *fixture) addFuel(t *testing.T, record model.FuelRecord) model.FuelRecord {
	t.Helper()
	if err := f.fuel.Create(context.Background(), &record); err != nil {
		t.Fatalf("create fuel record: %v", err)
	}
	return record
}

func (f *fixture) addMaintenance(t *testing.T, record model.MaintenanceRecord) model.MaintenanceRecord {
	t.Helper()
	if record.Status == "" {
		record.Status = model.MaintenanceStatusCompleted
	}
	id, err := f.maintenance.Add(context.Background(), record)
	if err != nil {
		t.Fatalf("create maintenance record: %v", err)
	}
	record.ID = id
	return record
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
