package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleetops-service/internal/model"
)

type FuelRepository struct {
	db *gorm.DB
}

func NewFuelRepository(db *gorm.DB) *FuelRepository {
	return &FuelRepository{db: db}
}

func (r *FuelRepository) List(ctx context.Context) ([]model.FuelRecord, error) {
	records := make([]model.FuelRecord, 0)
	err := r.db.WithContext(ctx).
		Order("refuel_date DESC").
		Find(&records).Error
	return records, err
}

func (r *FuelRepository) ListByVehicle(ctx context.Context, vehicleID uint) ([]model.FuelRecord, error) {
	records := make([]model.FuelRecord, 0)
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("refuel_date DESC").
		Find(&records).Error
	return records, err
}

func (r *FuelRepository) ListSince(ctx context.Context, since time.Time) ([]model.FuelRecord, error) {
	records := make([]model.FuelRecord, 0)
	err := r.db.WithContext(ctx).
		Where("refuel_date >= ?", since).
		Order("refuel_date").
		Find(&records).Error
	return records, err
}

func (r *FuelRepository) GetByID(ctx context.Context, id uint) (*model.FuelRecord, error) {
	var record model.FuelRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Latest returns the most recent fill for a vehicle, nil when there is none.
func (r *FuelRepository) Latest(ctx context.Context, vehicleID uint) (*model.FuelRecord, error) {
	var record model.FuelRecord
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("refuel_date DESC, id DESC").
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *FuelRepository) Recent(ctx context.Context, limit int) ([]model.FuelRecord, error) {
	records := make([]model.FuelRecord, 0, limit)
	err := r.db.WithContext(ctx).
		Order("refuel_date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *FuelRepository) Create(ctx context.Context, record *model.FuelRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *FuelRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.FuelRecord{}, id).Error
}
