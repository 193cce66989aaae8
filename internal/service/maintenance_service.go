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

type MaintenanceService struct {
	maintenance *repository.MaintenanceRepository
	vehicles    *repository.VehicleRepository
	now         func() time.Time
}

func NewMaintenanceService(maintenance *repository.MaintenanceRepository, vehicles *repository.VehicleRepository) *MaintenanceService {
	return &MaintenanceService{maintenance: maintenance, vehicles: vehicles, now: time.Now}
}

func (s *MaintenanceService) List(ctx context.Context) ([]model.MaintenanceRecord, error) {
	return s.maintenance.GetAll(ctx)
}

func (s *MaintenanceService) ListByVehicle(ctx context.Context, vehicleID uint) ([]model.MaintenanceRecord, error) {
	return s.maintenance.GetByVehicleID(ctx, vehicleID)
}

func (s *MaintenanceService) ListSince(ctx context.Context, since time.Time) ([]model.MaintenanceRecord, error) {
	return s.maintenance.GetSinceDate(ctx, since)
}

func (s *MaintenanceService) Get(ctx context.Context, id int64) (*model.MaintenanceRecord, error) {
	record, err := s.maintenance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

func (s *MaintenanceService) Count(ctx context.Context) (int64, error) {
	return s.maintenance.Count(ctx)
}

func (s *MaintenanceService) Add(ctx context.Context, record model.MaintenanceRecord) (*model.MaintenanceRecord, error) {
	if err := s.validate(ctx, &record); err != nil {
		return nil, err
	}

	id, err := s.maintenance.Add(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = id

	if err := s.rollForward(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MaintenanceService) Update(ctx context.Context, record model.MaintenanceRecord) error {
	if err := s.validate(ctx, &record); err != nil {
		return err
	}

	updated, err := s.maintenance.Update(ctx, record)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return s.rollForward(ctx, record)
}

func (s *MaintenanceService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.maintenance.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *MaintenanceService) validate(ctx context.Context, record *model.MaintenanceRecord) error {
	record.MaintenanceType = strings.TrimSpace(record.MaintenanceType)
	record.Description = strings.TrimSpace(record.Description)

	if record.MaintenanceType == "" {
		return ErrInvalidInput
	}
	if record.Cost < 0 || record.Mileage < 0 {
		return ErrInvalidInput
	}
	if record.MaintenanceDate.IsZero() || record.MaintenanceDate.After(s.now()) {
		return ErrInvalidInput
	}
	if record.Status == "" {
		record.Status = model.MaintenanceStatusScheduled
	}
	if !record.Status.Valid() {
		return ErrInvalidInput
	}

	if _, err := s.vehicles.GetByID(ctx, record.VehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// rollForward bumps the vehicle odometer when a completed job recorded a
// higher mileage than the vehicle currently shows.
func (s *MaintenanceService) rollForward(ctx context.Context, record model.MaintenanceRecord) error {
	if record.Status != model.MaintenanceStatusCompleted {
		return nil
	}
	vehicle, err := s.vehicles.GetByID(ctx, record.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if record.Mileage <= vehicle.CurrentMileage {
		return nil
	}
	vehicle.CurrentMileage = record.Mileage
	return s.vehicles.Update(ctx, vehicle)
}
