package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"fleetops-service/internal/model"
)

// MaintenanceRepository issues explicit parameterized SQL for every
// operation instead of going through the ORM's model mapping. The table is
// deliberately kept outside AutoMigrate; see internal/db/migrations.go.
type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

const maintenanceColumns = `id, vehicle_id, maintenance_date, mileage, maintenance_type,
	description, cost, garage, next_maintenance_date, next_maintenance_mileage,
	parts, technician_name, status, notes, created_at`

// maintenanceRow mirrors the table with explicit nullable columns.
type maintenanceRow struct {
	ID                     int64
	VehicleID              uint
	MaintenanceDate        time.Time
	Mileage                float64
	MaintenanceType        string
	Description            string
	Cost                   float64
	Garage                 sql.NullString
	NextMaintenanceDate    sql.NullTime
	NextMaintenanceMileage sql.NullFloat64
	Parts                  sql.NullString
	TechnicianName         sql.NullString
	Status                 string
	Notes                  sql.NullString
	CreatedAt              time.Time
}

func (row maintenanceRow) toRecord() model.MaintenanceRecord {
	record := model.MaintenanceRecord{
		ID:              row.ID,
		VehicleID:       row.VehicleID,
		MaintenanceDate: row.MaintenanceDate,
		Mileage:         row.Mileage,
		MaintenanceType: row.MaintenanceType,
		Description:     row.Description,
		Cost:            row.Cost,
		Status:          model.MaintenanceStatus(row.Status),
		CreatedAt:       row.CreatedAt,
	}
	if row.Garage.Valid {
		record.Garage = &row.Garage.String
	}
	if row.NextMaintenanceDate.Valid {
		next := row.NextMaintenanceDate.Time
		record.NextMaintenanceDate = &next
	}
	if row.NextMaintenanceMileage.Valid {
		record.NextMaintenanceMileage = &row.NextMaintenanceMileage.Float64
	}
	if row.Parts.Valid {
		record.Parts = &row.Parts.String
	}
	if row.TechnicianName.Valid {
		record.TechnicianName = &row.TechnicianName.String
	}
	if row.Notes.Valid {
		record.Notes = &row.Notes.String
	}
	return record
}

func (r *MaintenanceRepository) load(ctx context.Context, where string, args ...interface{}) ([]model.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY maintenance_date DESC, id DESC`

	rows := make([]maintenanceRow, 0)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]model.MaintenanceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

func (r *MaintenanceRepository) GetAll(ctx context.Context) ([]model.MaintenanceRecord, error) {
	return r.load(ctx, "")
}

func (r *MaintenanceRepository) GetByVehicleID(ctx context.Context, vehicleID uint) ([]model.MaintenanceRecord, error) {
	return r.load(ctx, "vehicle_id = ?", vehicleID)
}

func (r *MaintenanceRepository) GetSinceDate(ctx context.Context, since time.Time) ([]model.MaintenanceRecord, error) {
	return r.load(ctx, "maintenance_date >= ?", since)
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id int64) (*model.MaintenanceRecord, error) {
	records, err := r.load(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &records[0], nil
}

// Add inserts a record and returns the generated id.
func (r *MaintenanceRepository) Add(ctx context.Context, record model.MaintenanceRecord) (int64, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	var id int64
	err := r.db.WithContext(ctx).Raw(`INSERT INTO maintenance_records
		(vehicle_id, maintenance_date, mileage, maintenance_type, description, cost,
		garage, next_maintenance_date, next_maintenance_mileage, parts, technician_name,
		status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		record.VehicleID, record.MaintenanceDate, record.Mileage, record.MaintenanceType,
		record.Description, record.Cost, nullString(record.Garage),
		nullTime(record.NextMaintenanceDate), nullFloat(record.NextMaintenanceMileage),
		nullString(record.Parts), nullString(record.TechnicianName),
		string(record.Status), nullString(record.Notes), record.CreatedAt,
	).Scan(&id).Error
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites every mutable column and reports whether a row changed.
func (r *MaintenanceRepository) Update(ctx context.Context, record model.MaintenanceRecord) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`UPDATE maintenance_records SET
		vehicle_id = ?, maintenance_date = ?, mileage = ?, maintenance_type = ?,
		description = ?, cost = ?, garage = ?, next_maintenance_date = ?,
		next_maintenance_mileage = ?, parts = ?, technician_name = ?, status = ?, notes = ?
		WHERE id = ?`,
		record.VehicleID, record.MaintenanceDate, record.Mileage, record.MaintenanceType,
		record.Description, record.Cost, nullString(record.Garage),
		nullTime(record.NextMaintenanceDate), nullFloat(record.NextMaintenanceMileage),
		nullString(record.Parts), nullString(record.TechnicianName),
		string(record.Status), nullString(record.Notes), record.ID,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM maintenance_records WHERE id = ?`, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *MaintenanceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM maintenance_records`).Scan(&count).Error
	return count, err
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}

func nullFloat(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}
