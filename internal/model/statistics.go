package model

import "time"

// Derived statistics. Nothing in this file is persisted; every struct is
// recomputed from the base tables on each load.

type FleetStatistics struct {
	TotalVehicles          int     `json:"total_vehicles"`
	ActiveVehicles         int     `json:"active_vehicles"`
	VehiclesInMaintenance  int     `json:"vehicles_in_maintenance"`
	OutOfServiceVehicles   int     `json:"out_of_service_vehicles"`
	TotalFuelCost          float64 `json:"total_fuel_cost"`
	TotalLiters            float64 `json:"total_liters"`
	AverageConsumption     float64 `json:"average_consumption"`
	MonthlyFuelCost        float64 `json:"monthly_fuel_cost"`
	TotalMaintenanceCost   float64 `json:"total_maintenance_cost"`
	MonthlyMaintenanceCost float64 `json:"monthly_maintenance_cost"`
	VehiclesDueMaintenance int     `json:"vehicles_due_maintenance"`
	TotalMileage           float64 `json:"total_mileage"`
	AverageVehicleMileage  float64 `json:"average_vehicle_mileage"`
}

type VehicleStatistics struct {
	VehicleID            uint        `json:"vehicle_id"`
	VehicleName          string      `json:"vehicle_name"`
	RegistrationNumber   string      `json:"registration_number"`
	VehicleType          VehicleType `json:"vehicle_type,omitempty"`
	CurrentMileage       float64     `json:"current_mileage"`
	TotalRefuels         int         `json:"total_refuels"`
	TotalLiters          float64     `json:"total_liters"`
	TotalFuelCost        float64     `json:"total_fuel_cost"`
	AverageConsumption   float64     `json:"average_consumption"`
	AveragePricePerLiter float64     `json:"average_price_per_liter"`
	TotalMaintenances    int         `json:"total_maintenances"`
	TotalMaintenanceCost float64     `json:"total_maintenance_cost"`
	LastMaintenanceDate  *time.Time  `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate  *time.Time  `json:"next_maintenance_date,omitempty"`
}

// TotalCost is the combined fuel and maintenance spend for the vehicle.
func (s VehicleStatistics) TotalCost() float64 {
	return s.TotalFuelCost + s.TotalMaintenanceCost
}

type MonthlyStatistics struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	FuelCost           float64 `json:"fuel_cost"`
	MaintenanceCost    float64 `json:"maintenance_cost"`
	TotalLiters        float64 `json:"total_liters"`
	AverageConsumption float64 `json:"average_consumption"`
	RefuelCount        int     `json:"refuel_count"`
	MaintenanceCount   int     `json:"maintenance_count"`
}

type VehicleTypeStatistics struct {
	VehicleType          VehicleType `json:"vehicle_type"`
	Count                int         `json:"count"`
	AverageConsumption   float64     `json:"average_consumption"`
	TotalFuelCost        float64     `json:"total_fuel_cost"`
	TotalMaintenanceCost float64     `json:"total_maintenance_cost"`
	AverageMileage       float64     `json:"average_mileage"`
}

type FuelTypeStatistics struct {
	FuelType             FuelType `json:"fuel_type"`
	VehicleCount         int      `json:"vehicle_count"`
	TotalLiters          float64  `json:"total_liters"`
	TotalCost            float64  `json:"total_cost"`
	AverageConsumption   float64  `json:"average_consumption"`
	AveragePricePerLiter float64  `json:"average_price_per_liter"`
	Percentage           float64  `json:"percentage"`
}

type AlertType string

const (
	AlertMaintenanceDue   AlertType = "MAINTENANCE_DUE"
	AlertInspectionExpiry AlertType = "INSPECTION_EXPIRY"
	AlertInsuranceExpiry  AlertType = "INSURANCE_EXPIRY"
	AlertHighConsumption  AlertType = "HIGH_CONSUMPTION"
)

type AlertPriority int

const (
	PriorityLow AlertPriority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

func (p AlertPriority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

type DashboardAlert struct {
	Type                AlertType     `json:"type"`
	Title               string        `json:"title"`
	Message             string        `json:"message"`
	VehicleRegistration string        `json:"vehicle_registration"`
	Date                time.Time     `json:"date"`
	Priority            AlertPriority `json:"priority"`
}

type TimeSeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Label string    `json:"label"`
}

type PredictionData struct {
	Category         string    `json:"category"`
	CurrentValue     float64   `json:"current_value"`
	PredictedValue   float64   `json:"predicted_value"`
	ChangePercentage float64   `json:"change_percentage"`
	Trend            string    `json:"trend"`
	PredictionDate   time.Time `json:"prediction_date"`
}

type MovementType string

const (
	MovementRefuel      MovementType = "REFUEL"
	MovementMaintenance MovementType = "MAINTENANCE"
)

type RecentMovement struct {
	VehicleName  string       `json:"vehicle_name"`
	MovementType MovementType `json:"movement_type"`
	Date         time.Time    `json:"date"`
	Description  string       `json:"description"`
	Cost         float64      `json:"cost"`
	Mileage      float64      `json:"mileage"`
}

// DashboardData is the composite payload behind the dashboard endpoint.
type DashboardData struct {
	FleetStats               FleetStatistics         `json:"fleet_stats"`
	TopVehiclesByConsumption []VehicleStatistics     `json:"top_vehicles_by_consumption"`
	TopVehiclesByCost        []VehicleStatistics     `json:"top_vehicles_by_cost"`
	MonthlyTrends            []MonthlyStatistics     `json:"monthly_trends"`
	TypeBreakdown            []VehicleTypeStatistics `json:"type_breakdown"`
	FuelBreakdown            []FuelTypeStatistics    `json:"fuel_breakdown"`
	Alerts                   []DashboardAlert        `json:"alerts"`
	ConsumptionTrend         []TimeSeriesPoint       `json:"consumption_trend"`
	CostTrend                []TimeSeriesPoint       `json:"cost_trend"`
	RecentMovements          []RecentMovement        `json:"recent_movements"`
}
