package model

import "time"

type VehicleStatus string

const (
	VehicleStatusActive        VehicleStatus = "ACTIVE"
	VehicleStatusInMaintenance VehicleStatus = "IN_MAINTENANCE"
	VehicleStatusOutOfService  VehicleStatus = "OUT_OF_SERVICE"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusActive, VehicleStatusInMaintenance, VehicleStatusOutOfService:
		return true
	}
	return false
}

type VehicleType string

const (
	VehicleTypeCar     VehicleType = "CAR"
	VehicleTypeTruck   VehicleType = "TRUCK"
	VehicleTypeVan     VehicleType = "VAN"
	VehicleTypeUtility VehicleType = "UTILITY"
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeCar, VehicleTypeTruck, VehicleTypeVan, VehicleTypeUtility:
		return true
	}
	return false
}

type FuelType string

const (
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeGasoline FuelType = "GASOLINE"
	FuelTypeElectric FuelType = "ELECTRIC"
	FuelTypeHybrid   FuelType = "HYBRID"
	FuelTypeLPG      FuelType = "LPG"
)

func (t FuelType) Valid() bool {
	switch t {
	case FuelTypeDiesel, FuelTypeGasoline, FuelTypeElectric, FuelTypeHybrid, FuelTypeLPG:
		return true
	}
	return false
}

type Vehicle struct {
	ID                 uint          `json:"id" gorm:"primaryKey"`
	RegistrationNumber string        `json:"registration_number" gorm:"uniqueIndex;size:20;not null"`
	Brand              string        `json:"brand" gorm:"size:50"`
	Model              string        `json:"model" gorm:"size:50"`
	Year               int           `json:"year"`
	VehicleType        VehicleType   `json:"vehicle_type" gorm:"size:20"`
	FuelType           FuelType      `json:"fuel_type" gorm:"size:20"`
	CurrentMileage     float64       `json:"current_mileage"`
	TankCapacity       float64       `json:"tank_capacity"`
	AverageConsumption float64       `json:"average_consumption"`
	Status             VehicleStatus `json:"status" gorm:"size:20"`
	PurchaseDate       *time.Time    `json:"purchase_date,omitempty"`
	PurchasePrice      float64       `json:"purchase_price"`
	InsuranceExpiry    *time.Time    `json:"insurance_expiry,omitempty"`
	InspectionExpiry   *time.Time    `json:"inspection_expiry,omitempty"`
	Notes              string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt          time.Time     `json:"created_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// DisplayName is the label used in statistics and exports.
func (v Vehicle) DisplayName() string {
	return v.Brand + " " + v.Model
}
