package model

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusCompleted  MaintenanceStatus = "COMPLETED"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusScheduled, MaintenanceStatusInProgress, MaintenanceStatusCompleted:
		return true
	}
	return false
}

// MaintenanceRecord is persisted through explicit SQL in the repository
// layer, not through gorm's model machinery; it carries no gorm tags on
// purpose.
type MaintenanceRecord struct {
	ID                     int64             `json:"id"`
	VehicleID              uint              `json:"vehicle_id"`
	MaintenanceDate        time.Time         `json:"maintenance_date"`
	Mileage                float64           `json:"mileage"`
	MaintenanceType        string            `json:"maintenance_type"`
	Description            string            `json:"description"`
	Cost                   float64           `json:"cost"`
	Garage                 *string           `json:"garage,omitempty"`
	NextMaintenanceDate    *time.Time        `json:"next_maintenance_date,omitempty"`
	NextMaintenanceMileage *float64          `json:"next_maintenance_mileage,omitempty"`
	Parts                  *string           `json:"parts,omitempty"`
	TechnicianName         *string           `json:"technician_name,omitempty"`
	Status                 MaintenanceStatus `json:"status"`
	Notes                  *string           `json:"notes,omitempty"`
	CreatedAt              time.Time         `json:"created_at"`
}
