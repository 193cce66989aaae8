package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetops-service/internal/model"
)

func TestFuelCreateComputesDerivedFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewFuelService(f.fuel, f.vehicles)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	vehicle := f.addVehicle(t, model.Vehicle{RegistrationNumber: "AA-111-AA", Brand: "Renault", Model: "Master", CurrentMileage: 10000})

	first := model.FuelRecord{
		VehicleID:     vehicle.ID,
		RefuelDate:    now.AddDate(0, 0, -10),
		Liters:        45,
		PricePerLiter: 1.8,
		Mileage:       10000,
		IsFullTank:    true,
	}
	if err := svc.Create(ctx, &first); err != nil {
		t.Fatalf("create first fill: %v", err)
	}
	if first.TotalCost != 81 {
		t.Fatalf("expected total cost 81, got %v", first.TotalCost)
	}
	if first.Consumption != 0 {
		t.Fatalf("first fill has no baseline, expected consumption 0, got %v", first.Consumption)
	}

	second := model.FuelRecord{
		VehicleID:     vehicle.ID,
		RefuelDate:    now.AddDate(0, 0, -1),
		Liters:        40,
		PricePerLiter: 1.8,
		Mileage:       10500,
		IsFullTank:    true,
	}
	if err := svc.Create(ctx, &second); err != nil {
		t.Fatalf("create second fill: %v", err)
	}
	if second.Consumption != 8.0 {
		t.Fatalf("expected 8.0 L/100km between full tanks, got %v", second.Consumption)
	}

	reloaded, err := f.vehicles.GetByID(ctx, vehicle.ID)
	if err != nil {
		t.Fatalf("reload vehicle: %v", err)
	}
	if reloaded.CurrentMileage != 10500 {
		t.Fatalf("expected odometer raised to 10500, got %v", reloaded.CurrentMileage)
	}
	if reloaded.AverageConsumption != 8.0 {
		t.Fatalf("expected rollup consumption 8.0, got %v", reloaded.AverageConsumption)
	}
}

func TestFuelCreatePartialFillBreaksConsumptionChain(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewFuelService(f.fuel, f.vehicles)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	vehicle := f.addVehicle(t, model.Vehicle{RegistrationNumber: "AA-111-AA", Brand: "Renault", Model: "Master"})

	full := model.FuelRecord{VehicleID: vehicle.ID, RefuelDate: now.AddDate(0, 0, -20), Liters: 45, PricePerLiter: 1.8, Mileage: 10000, IsFullTank: true}
	if err := svc.Create(ctx, &full); err != nil {
		t.Fatalf("create full fill: %v", err)
	}

	partial := model.FuelRecord{VehicleID: vehicle.ID, RefuelDate: now.AddDate(0, 0, -10), Liters: 20, PricePerLiter: 1.8, Mileage: 10300, IsFullTank: false}
	if err := svc.Create(ctx, &partial); err != nil {
		t.Fatalf("create partial fill: %v", err)
	}
	if partial.Consumption != 0 {
		t.Fatalf("partial fill must not carry consumption, got %v", partial.Consumption)
	}

	afterPartial := model.FuelRecord{VehicleID: vehicle.ID, RefuelDate: now.AddDate(0, 0, -1), Liters: 40, PricePerLiter: 1.8, Mileage: 10600, IsFullTank: true}
	if err := svc.Create(ctx, &afterPartial); err != nil {
		t.Fatalf("create fill after partial: %v", err)
	}
	if afterPartial.Consumption != 0 {
		t.Fatalf("full fill after a partial has no anchor, got %v", afterPartial.Consumption)
	}
}

func TestFuelCreateValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewFuelService(f.fuel, f.vehicles)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	vehicle := f.addVehicle(t, model.Vehicle{RegistrationNumber: "AA-111-AA", Brand: "Renault", Model: "Master", CurrentMileage: 10000})

	zeroLiters := model.FuelRecord{VehicleID: vehicle.ID, RefuelDate: now, Liters: 0, Mileage: 10100}
	if err := svc.Create(ctx, &zeroLiters); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero liters, got %v", err)
	}

	futureDate := model.FuelRecord{VehicleID: vehicle.ID, RefuelDate: now.AddDate(0, 0, 1), Liters: 40, Mileage: 10100}
	if err := svc.Create(ctx, &futureDate); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for future date, got %v", err)
	}

	backwardOdometer := model.FuelRecord{VehicleID: vehicle.ID, RefuelDate: now, Liters: 40, Mileage: 9000}
	if err := svc.Create(ctx, &backwardOdometer); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for backward odometer, got %v", err)
	}

	unknownVehicle := model.FuelRecord{VehicleID: 999, RefuelDate: now, Liters: 40, Mileage: 100}
	if err := svc.Create(ctx, &unknownVehicle); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown vehicle, got %v", err)
	}
}

func TestFuelDeleteRecomputesRollup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewFuelService(f.fuel, f.vehicles)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	vehicle := f.addVehicle(t, model.Vehicle{RegistrationNumber: "AA-111-AA", Brand: "Renault", Model: "Master"})

	first := model.FuelRecord{VehicleID: vehicle.ID, RefuelDate: now.AddDate(0, 0, -20), Liters: 45, PricePerLiter: 1.8, Mileage: 10000, IsFullTank: true}
	if err := svc.Create(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}
	second := model.FuelRecord{VehicleID: vehicle.ID, RefuelDate: now.AddDate(0, 0, -1), Liters: 40, PricePerLiter: 1.8, Mileage: 10500, IsFullTank: true}
	if err := svc.Create(ctx, &second); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	reloaded, err := f.vehicles.GetByID(ctx, vehicle.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.AverageConsumption != 0 {
		t.Fatalf("expected rollup back to 0 after deleting the anchored fill, got %v", reloaded.AverageConsumption)
	}

	if err := svc.Delete(ctx, second.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
