package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"fleetops-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	vehicles := make([]model.Vehicle, 0)
	err := r.db.WithContext(ctx).
		Order("registration_number").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) GetByRegistration(ctx context.Context, registration string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).
		Where("registration_number = ?", registration).
		First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Search matches a case-insensitive substring over registration, brand and
// model. An empty term lists everything.
func (r *VehicleRepository) Search(ctx context.Context, term string) ([]model.Vehicle, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.List(ctx)
	}

	like := "%" + strings.ToLower(term) + "%"
	vehicles := make([]model.Vehicle, 0)
	err := r.db.WithContext(ctx).
		Where("LOWER(registration_number) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ?", like, like, like).
		Order("registration_number").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Vehicle{}, id).Error
}
