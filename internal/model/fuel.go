package model

import (
	"math"
	"time"
)

type FuelRecord struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	VehicleID     uint      `json:"vehicle_id" gorm:"index;not null"`
	RefuelDate    time.Time `json:"refuel_date"`
	Liters        float64   `json:"liters"`
	PricePerLiter float64   `json:"price_per_liter"`
	TotalCost     float64   `json:"total_cost"`
	Mileage       float64   `json:"mileage"`
	IsFullTank    bool      `json:"is_full_tank"`
	Consumption   float64   `json:"consumption"`
	Station       string    `json:"station,omitempty" gorm:"size:100"`
	Notes         string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
}

func (FuelRecord) TableName() string {
	return "fuel_records"
}

// Round2 rounds a monetary or volume value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotalCost returns liters x price per liter, rounded to 2 decimals.
// Every saved record must satisfy TotalCost == ComputeTotalCost(...).
func ComputeTotalCost(liters, pricePerLiter float64) float64 {
	return Round2(liters * pricePerLiter)
}

// ComputeConsumption returns the L/100km consumption between two consecutive
// full-tank fills, rounded to 2 decimals. It is zero unless both the current
// and the previous record are full-tank and the odometer moved forward;
// partial fills never anchor a consumption value.
func ComputeConsumption(current FuelRecord, previous *FuelRecord) float64 {
	if !current.IsFullTank || current.Liters <= 0 {
		return 0
	}
	if previous == nil || !previous.IsFullTank {
		return 0
	}
	distance := current.Mileage - previous.Mileage
	if distance <= 0 {
		return 0
	}
	return Round2(current.Liters * 100 / distance)
}
