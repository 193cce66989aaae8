package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"fleetops-service/internal/model"
	"fleetops-service/internal/repository"
)

type FuelService struct {
	fuel     *repository.FuelRepository
	vehicles *repository.VehicleRepository
	now      func() time.Time
}

func NewFuelService(fuel *repository.FuelRepository, vehicles *repository.VehicleRepository) *FuelService {
	return &FuelService{fuel: fuel, vehicles: vehicles, now: time.Now}
}

func (s *FuelService) List(ctx context.Context) ([]model.FuelRecord, error) {
	return s.fuel.List(ctx)
}

func (s *FuelService) ListByVehicle(ctx context.Context, vehicleID uint) ([]model.FuelRecord, error) {
	return s.fuel.ListByVehicle(ctx, vehicleID)
}

func (s *FuelService) Get(ctx context.Context, id uint) (*model.FuelRecord, error) {
	record, err := s.fuel.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// Create validates the fill, derives the total cost and the consumption
// against the previous full-tank fill, persists it, then rolls the derived
// vehicle fields (odometer, average consumption) forward.
func (s *FuelService) Create(ctx context.Context, record *model.FuelRecord) error {
	record.Station = strings.TrimSpace(record.Station)

	if record.Liters <= 0 || record.PricePerLiter < 0 || record.Mileage < 0 {
		return ErrInvalidInput
	}
	if record.RefuelDate.IsZero() {
		record.RefuelDate = s.now()
	}
	if record.RefuelDate.After(s.now()) {
		return ErrInvalidInput
	}

	vehicle, err := s.vehicles.GetByID(ctx, record.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if record.Mileage < vehicle.CurrentMileage {
		return ErrInvalidInput
	}

	previous, err := s.fuel.Latest(ctx, record.VehicleID)
	if err != nil {
		return err
	}

	record.TotalCost = model.ComputeTotalCost(record.Liters, record.PricePerLiter)
	record.Consumption = model.ComputeConsumption(*record, previous)

	if err := s.fuel.Create(ctx, record); err != nil {
		return err
	}

	if record.Mileage > vehicle.CurrentMileage {
		vehicle.CurrentMileage = record.Mileage
	}
	average, err := s.averageConsumption(ctx, record.VehicleID)
	if err != nil {
		return err
	}
	vehicle.AverageConsumption = average
	return s.vehicles.Update(ctx, vehicle)
}

func (s *FuelService) Delete(ctx context.Context, id uint) error {
	record, err := s.fuel.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.fuel.Delete(ctx, id); err != nil {
		return err
	}

	// The rollup is stale now; recompute from what is left.
	vehicle, err := s.vehicles.GetByID(ctx, record.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	average, err := s.averageConsumption(ctx, record.VehicleID)
	if err != nil {
		return err
	}
	vehicle.AverageConsumption = average
	return s.vehicles.Update(ctx, vehicle)
}

func (s *FuelService) averageConsumption(ctx context.Context, vehicleID uint) (float64, error) {
	records, err := s.fuel.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return 0, err
	}
	return averagePositiveConsumption(records), nil
}
