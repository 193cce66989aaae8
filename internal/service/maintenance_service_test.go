package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetops-service/internal/model"
)

func TestMaintenanceAddValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewMaintenanceService(f.maintenance, f.vehicles)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	vehicle := f.addVehicle(t, model.Vehicle{RegistrationNumber: "AA-111-AA", Brand: "Renault", Model: "Master"})

	cases := []struct {
		name    string
		record  model.MaintenanceRecord
		wantErr error
	}{
		{"empty type", model.MaintenanceRecord{VehicleID: vehicle.ID, MaintenanceDate: now.AddDate(0, 0, -1)}, ErrInvalidInput},
		{"negative cost", model.MaintenanceRecord{VehicleID: vehicle.ID, MaintenanceDate: now.AddDate(0, 0, -1), MaintenanceType: "Oil", Cost: -5}, ErrInvalidInput},
		{"future date", model.MaintenanceRecord{VehicleID: vehicle.ID, MaintenanceDate: now.AddDate(0, 0, 2), MaintenanceType: "Oil"}, ErrInvalidInput},
		{"bad status", model.MaintenanceRecord{VehicleID: vehicle.ID, MaintenanceDate: now.AddDate(0, 0, -1), MaintenanceType: "Oil", Status: "PENDING"}, ErrInvalidInput},
		{"unknown vehicle", model.MaintenanceRecord{VehicleID: 999, MaintenanceDate: now.AddDate(0, 0, -1), MaintenanceType: "Oil"}, ErrNotFound},
	}
	for _, tc := range cases {
		if _, err := svc.Add(ctx, tc.record); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestMaintenanceAddDefaultsToScheduled(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewMaintenanceService(f.maintenance, f.vehicles)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	vehicle := f.addVehicle(t, model.Vehicle{RegistrationNumber: "AA-111-AA", Brand: "Renault", Model: "Master"})

	created, err := svc.Add(ctx, model.MaintenanceRecord{
		VehicleID:       vehicle.ID,
		MaintenanceDate: now.AddDate(0, 0, -1),
		MaintenanceType: "Inspection",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected generated id, got %d", created.ID)
	}
	if created.Status != model.MaintenanceStatusScheduled {
		t.Fatalf("expected SCHEDULED default, got %s", created.Status)
	}
}

func TestCompletedMaintenanceRaisesOdometer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewMaintenanceService(f.maintenance, f.vehicles)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	vehicle := f.addVehicle(t, model.Vehicle{RegistrationNumber: "AA-111-AA", Brand: "Renault", Model: "Master", CurrentMileage: 50000})

	if _, err := svc.Add(ctx, model.MaintenanceRecord{
		VehicleID:       vehicle.ID,
		MaintenanceDate: now.AddDate(0, 0, -1),
		MaintenanceType: "Service",
		Mileage:         51200,
		Status:          model.MaintenanceStatusCompleted,
	}); err != nil {
		t.Fatalf("add completed: %v", err)
	}

	reloaded, err := f.vehicles.GetByID(ctx, vehicle.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.CurrentMileage != 51200 {
		t.Fatalf("expected odometer 51200, got %v", reloaded.CurrentMileage)
	}

	// A scheduled job at a lower mileage must not move anything.
	if _, err := svc.Add(ctx, model.MaintenanceRecord{
		VehicleID:       vehicle.ID,
		MaintenanceDate: now.AddDate(0, 0, -1),
		MaintenanceType: "Tires",
		Mileage:         60000,
		Status:          model.MaintenanceStatusScheduled,
	}); err != nil {
		t.Fatalf("add scheduled: %v", err)
	}
	reloaded, _ = f.vehicles.GetByID(ctx, vehicle.ID)
	if reloaded.CurrentMileage != 51200 {
		t.Fatalf("scheduled job must not raise the odometer, got %v", reloaded.CurrentMileage)
	}
}

func TestMaintenanceUpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewMaintenanceService(f.maintenance, f.vehicles)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	vehicle := f.addVehicle(t, model.Vehicle{RegistrationNumber: "AA-111-AA", Brand: "Renault", Model: "Master"})

	missing := model.MaintenanceRecord{
		ID:              424242,
		VehicleID:       vehicle.ID,
		MaintenanceDate: now.AddDate(0, 0, -1),
		MaintenanceType: "Oil",
	}
	if err := svc.Update(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on missing update, got %v", err)
	}
	if err := svc.Delete(ctx, 424242); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on missing delete, got %v", err)
	}
}
