package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"fleetops-service/internal/model"
	"fleetops-service/internal/repository"
)

type VehicleService struct {
	vehicles *repository.VehicleRepository
}

func NewVehicleService(vehicles *repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

func (s *VehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *VehicleService) Get(ctx context.Context, id uint) (*model.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Search(ctx context.Context, term string) ([]model.Vehicle, error) {
	return s.vehicles.Search(ctx, strings.TrimSpace(term))
}

func (s *VehicleService) Create(ctx context.Context, vehicle *model.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}

	existing, err := s.vehicles.GetByRegistration(ctx, vehicle.RegistrationNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrDuplicateRegistration
	}

	return s.vehicles.Create(ctx, vehicle)
}

func (s *VehicleService) Update(ctx context.Context, vehicle *model.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}

	current, err := s.vehicles.GetByID(ctx, vehicle.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if current.RegistrationNumber != vehicle.RegistrationNumber {
		other, err := s.vehicles.GetByRegistration(ctx, vehicle.RegistrationNumber)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if other != nil && other.ID != vehicle.ID {
			return ErrDuplicateRegistration
		}
	}

	vehicle.CreatedAt = current.CreatedAt
	return s.vehicles.Update(ctx, vehicle)
}

func (s *VehicleService) Delete(ctx context.Context, id uint) error {
	if _, err := s.vehicles.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.vehicles.Delete(ctx, id)
}

// RaiseMileage bumps the odometer to the given value, never backwards. Fuel
// and completed maintenance entries call this so the vehicle row tracks the
// highest recorded mileage.
func (s *VehicleService) RaiseMileage(ctx context.Context, id uint, mileage float64) error {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if mileage <= vehicle.CurrentMileage {
		return nil
	}
	vehicle.CurrentMileage = mileage
	return s.vehicles.Update(ctx, vehicle)
}

func validateVehicle(vehicle *model.Vehicle) error {
	vehicle.RegistrationNumber = strings.ToUpper(strings.TrimSpace(vehicle.RegistrationNumber))
	vehicle.Brand = strings.TrimSpace(vehicle.Brand)
	vehicle.Model = strings.TrimSpace(vehicle.Model)

	if vehicle.RegistrationNumber == "" {
		return ErrInvalidInput
	}
	if !vehicle.VehicleType.Valid() || !vehicle.FuelType.Valid() {
		return ErrInvalidInput
	}
	if vehicle.Status == "" {
		vehicle.Status = model.VehicleStatusActive
	}
	if !vehicle.Status.Valid() {
		return ErrInvalidInput
	}
	if vehicle.CurrentMileage < 0 || vehicle.TankCapacity < 0 || vehicle.PurchasePrice < 0 {
		return ErrInvalidInput
	}
	return nil
}
