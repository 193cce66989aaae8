package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"fleetops-service/internal/config"
	"fleetops-service/internal/model"
	"fleetops-service/internal/repository"
)

// StatisticsService computes read-only analytical views over vehicles, fuel
// records and maintenance records. Everything is aggregated in memory from
// fresh loads; nothing here mutates state.
type StatisticsService struct {
	vehicles    *repository.VehicleRepository
	fuel        *repository.FuelRepository
	maintenance *repository.MaintenanceRepository
	alerts      config.AlertsConfig
	stats       config.StatisticsConfig
	now         func() time.Time
}

func NewStatisticsService(
	vehicles *repository.VehicleRepository,
	fuel *repository.FuelRepository,
	maintenance *repository.MaintenanceRepository,
	alerts config.AlertsConfig,
	stats config.StatisticsConfig,
) *StatisticsService {
	return &StatisticsService{
		vehicles:    vehicles,
		fuel:        fuel,
		maintenance: maintenance,
		alerts:      alerts,
		stats:       stats,
		now:         time.Now,
	}
}

// Defaults for callers that accept an optional override.
func (s *StatisticsService) DefaultMonthlyMonths() int { return s.stats.MonthlyMonths }
func (s *StatisticsService) DefaultTrendDays() int     { return s.stats.TrendDays }
func (s *StatisticsService) DefaultTopVehicles() int   { return s.stats.TopVehicles }
func (s *StatisticsService) DefaultMovements() int     { return s.stats.RecentMovements }

func (s *StatisticsService) Dashboard(ctx context.Context) (*model.DashboardData, error) {
	fleet, err := s.FleetStatistics(ctx)
	if err != nil {
		return nil, err
	}
	topConsumption, err := s.TopVehiclesByConsumption(ctx, s.stats.TopVehicles)
	if err != nil {
		return nil, err
	}
	topCost, err := s.TopVehiclesByCost(ctx, s.stats.TopVehicles)
	if err != nil {
		return nil, err
	}
	monthly, err := s.MonthlyTrends(ctx, s.stats.MonthlyMonths)
	if err != nil {
		return nil, err
	}
	typeBreakdown, err := s.VehicleTypeStatistics(ctx)
	if err != nil {
		return nil, err
	}
	fuelBreakdown, err := s.FuelTypeStatistics(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.DashboardAlerts(ctx)
	if err != nil {
		return nil, err
	}
	consumptionTrend, err := s.ConsumptionTrend(ctx, s.stats.TrendDays)
	if err != nil {
		return nil, err
	}
	costTrend, err := s.CostTrend(ctx, s.stats.TrendDays)
	if err != nil {
		return nil, err
	}
	movements, err := s.RecentMovements(ctx, s.stats.RecentMovements)
	if err != nil {
		return nil, err
	}

	return &model.DashboardData{
		FleetStats:               *fleet,
		TopVehiclesByConsumption: topConsumption,
		TopVehiclesByCost:        topCost,
		MonthlyTrends:            monthly,
		TypeBreakdown:            typeBreakdown,
		FuelBreakdown:            fuelBreakdown,
		Alerts:                   alerts,
		ConsumptionTrend:         consumptionTrend,
		CostTrend:                costTrend,
		RecentMovements:          movements,
	}, nil
}

func (s *StatisticsService) FleetStatistics(ctx context.Context) (*model.FleetStatistics, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	fuelRecords, err := s.fuel.List(ctx)
	if err != nil {
		return nil, err
	}
	maintenanceRecords, err := s.maintenance.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := model.FleetStatistics{TotalVehicles: len(vehicles)}

	for _, v := range vehicles {
		switch v.Status {
		case model.VehicleStatusActive:
			stats.ActiveVehicles++
		case model.VehicleStatusInMaintenance:
			stats.VehiclesInMaintenance++
		case model.VehicleStatusOutOfService:
			stats.OutOfServiceVehicles++
		}
		stats.TotalMileage += v.CurrentMileage
	}
	if len(vehicles) > 0 {
		stats.AverageVehicleMileage = stats.TotalMileage / float64(len(vehicles))
	}

	for _, f := range fuelRecords {
		stats.TotalFuelCost += f.TotalCost
		stats.TotalLiters += f.Liters
		if sameMonth(f.RefuelDate, now) {
			stats.MonthlyFuelCost += f.TotalCost
		}
	}
	stats.AverageConsumption = averagePositiveConsumption(fuelRecords)

	dueCutoff := now.AddDate(0, 0, s.alerts.MaintenanceDueDays)
	dueVehicles := make(map[uint]bool)
	for _, m := range maintenanceRecords {
		stats.TotalMaintenanceCost += m.Cost
		if sameMonth(m.MaintenanceDate, now) {
			stats.MonthlyMaintenanceCost += m.Cost
		}
		if m.NextMaintenanceDate != nil && !m.NextMaintenanceDate.After(dueCutoff) {
			dueVehicles[m.VehicleID] = true
		}
	}
	stats.VehiclesDueMaintenance = len(dueVehicles)

	return &stats, nil
}

func (s *StatisticsService) VehicleStatistics(ctx context.Context, vehicleID uint) (*model.VehicleStatistics, error) {
	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fuelRecords, err := s.fuel.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	maintenanceRecords, err := s.maintenance.GetByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	stats := rollupVehicle(*vehicle, fuelRecords, maintenanceRecords)
	return &stats, nil
}

func (s *StatisticsService) AllVehicleStatistics(ctx context.Context) ([]model.VehicleStatistics, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	fuelRecords, err := s.fuel.List(ctx)
	if err != nil {
		return nil, err
	}
	maintenanceRecords, err := s.maintenance.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	fuelByVehicle := groupFuelByVehicle(fuelRecords)
	maintenanceByVehicle := groupMaintenanceByVehicle(maintenanceRecords)

	statistics := make([]model.VehicleStatistics, 0, len(vehicles))
	for _, vehicle := range vehicles {
		statistics = append(statistics, rollupVehicle(vehicle, fuelByVehicle[vehicle.ID], maintenanceByVehicle[vehicle.ID]))
	}
	return statistics, nil
}

// TopVehiclesByConsumption ranks vehicles with a positive average
// consumption, descending. Ties keep input order.
func (s *StatisticsService) TopVehiclesByConsumption(ctx context.Context, limit int) ([]model.VehicleStatistics, error) {
	all, err := s.AllVehicleStatistics(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]model.VehicleStatistics, 0, len(all))
	for _, stats := range all {
		if stats.AverageConsumption > 0 {
			ranked = append(ranked, stats)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageConsumption > ranked[j].AverageConsumption
	})
	return takeStats(ranked, limit), nil
}

func (s *StatisticsService) TopVehiclesByCost(ctx context.Context, limit int) ([]model.VehicleStatistics, error) {
	all, err := s.AllVehicleStatistics(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]model.VehicleStatistics, len(all))
	copy(ranked, all)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalCost() > ranked[j].TotalCost()
	})
	return takeStats(ranked, limit), nil
}

// MonthlyTrends returns one bucket per calendar month for the trailing
// window including the current month, ascending by (year, month).
func (s *StatisticsService) MonthlyTrends(ctx context.Context, months int) ([]model.MonthlyStatistics, error) {
	if months <= 0 {
		return []model.MonthlyStatistics{}, nil
	}

	now := s.now()
	first := monthIndex(now.Year(), int(now.Month())) - (months - 1)
	firstYear, firstMonth := monthFromIndex(first)
	windowStart := time.Date(firstYear, time.Month(firstMonth), 1, 0, 0, 0, 0, now.Location())

	fuelRecords, err := s.fuel.ListSince(ctx, windowStart)
	if err != nil {
		return nil, err
	}
	maintenanceRecords, err := s.maintenance.GetSinceDate(ctx, windowStart)
	if err != nil {
		return nil, err
	}

	trends := make([]model.MonthlyStatistics, 0, months)
	for i := 0; i < months; i++ {
		year, month := monthFromIndex(first + i)

		bucket := model.MonthlyStatistics{Year: year, Month: month}
		var bucketFuel []model.FuelRecord
		for _, f := range fuelRecords {
			if f.RefuelDate.Year() == year && int(f.RefuelDate.Month()) == month {
				bucket.FuelCost += f.TotalCost
				bucket.TotalLiters += f.Liters
				bucket.RefuelCount++
				bucketFuel = append(bucketFuel, f)
			}
		}
		bucket.AverageConsumption = averagePositiveConsumption(bucketFuel)

		for _, m := range maintenanceRecords {
			if m.MaintenanceDate.Year() == year && int(m.MaintenanceDate.Month()) == month {
				bucket.MaintenanceCost += m.Cost
				bucket.MaintenanceCount++
			}
		}

		trends = append(trends, bucket)
	}
	return trends, nil
}

func (s *StatisticsService) VehicleTypeStatistics(ctx context.Context) ([]model.VehicleTypeStatistics, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	fuelRecords, err := s.fuel.List(ctx)
	if err != nil {
		return nil, err
	}
	maintenanceRecords, err := s.maintenance.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	fuelByVehicle := groupFuelByVehicle(fuelRecords)
	maintenanceByVehicle := groupMaintenanceByVehicle(maintenanceRecords)

	groups := make(map[model.VehicleType][]model.Vehicle)
	order := make([]model.VehicleType, 0)
	for _, v := range vehicles {
		if _, seen := groups[v.VehicleType]; !seen {
			order = append(order, v.VehicleType)
		}
		groups[v.VehicleType] = append(groups[v.VehicleType], v)
	}

	result := make([]model.VehicleTypeStatistics, 0, len(groups))
	for _, vehicleType := range order {
		group := groups[vehicleType]
		stats := model.VehicleTypeStatistics{VehicleType: vehicleType, Count: len(group)}

		var groupFuel []model.FuelRecord
		var mileage float64
		for _, v := range group {
			mileage += v.CurrentMileage
			groupFuel = append(groupFuel, fuelByVehicle[v.ID]...)
			for _, m := range maintenanceByVehicle[v.ID] {
				stats.TotalMaintenanceCost += m.Cost
			}
		}
		for _, f := range groupFuel {
			stats.TotalFuelCost += f.TotalCost
		}
		stats.AverageConsumption = averagePositiveConsumption(groupFuel)
		if len(group) > 0 {
			stats.AverageMileage = mileage / float64(len(group))
		}
		result = append(result, stats)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count < result[j].Count
	})
	return result, nil
}

func (s *StatisticsService) FuelTypeStatistics(ctx context.Context) ([]model.FuelTypeStatistics, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	fuelRecords, err := s.fuel.List(ctx)
	if err != nil {
		return nil, err
	}

	var totalCost float64
	for _, f := range fuelRecords {
		totalCost += f.TotalCost
	}
	fuelByVehicle := groupFuelByVehicle(fuelRecords)

	groups := make(map[model.FuelType][]model.Vehicle)
	order := make([]model.FuelType, 0)
	for _, v := range vehicles {
		if _, seen := groups[v.FuelType]; !seen {
			order = append(order, v.FuelType)
		}
		groups[v.FuelType] = append(groups[v.FuelType], v)
	}

	result := make([]model.FuelTypeStatistics, 0, len(groups))
	for _, fuelType := range order {
		group := groups[fuelType]
		stats := model.FuelTypeStatistics{FuelType: fuelType, VehicleCount: len(group)}

		var declared float64
		var priceSum float64
		var priceCount int
		for _, v := range group {
			declared += v.AverageConsumption
			for _, f := range fuelByVehicle[v.ID] {
				stats.TotalLiters += f.Liters
				stats.TotalCost += f.TotalCost
				priceSum += f.PricePerLiter
				priceCount++
			}
		}
		if len(group) > 0 {
			stats.AverageConsumption = declared / float64(len(group))
		}
		if priceCount > 0 {
			stats.AveragePricePerLiter = priceSum / float64(priceCount)
		}
		if totalCost > 0 {
			stats.Percentage = stats.TotalCost / totalCost * 100
		}
		result = append(result, stats)
	}
	return result, nil
}

func (s *StatisticsService) DashboardAlerts(ctx context.Context) ([]model.DashboardAlert, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	maintenanceRecords, err := s.maintenance.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	maintenanceByVehicle := groupMaintenanceByVehicle(maintenanceRecords)

	var fleetAverage float64
	var withConsumption int
	for _, v := range vehicles {
		if v.AverageConsumption > 0 {
			fleetAverage += v.AverageConsumption
			withConsumption++
		}
	}
	if withConsumption > 0 {
		fleetAverage /= float64(withConsumption)
	}

	alerts := make([]model.DashboardAlert, 0)
	for _, vehicle := range vehicles {
		if last := latestMaintenance(maintenanceByVehicle[vehicle.ID]); last != nil && last.NextMaintenanceDate != nil {
			due := *last.NextMaintenanceDate
			if !due.After(now.AddDate(0, 0, s.alerts.MaintenanceDueDays)) {
				priority := model.PriorityMedium
				if !due.After(now) {
					priority = model.PriorityHigh
				}
				alerts = append(alerts, model.DashboardAlert{
					Type:                model.AlertMaintenanceDue,
					Title:               "Maintenance due",
					Message:             fmt.Sprintf("Maintenance scheduled for %s", due.Format("02/01/2006")),
					VehicleRegistration: vehicle.RegistrationNumber,
					Date:                now,
					Priority:            priority,
				})
			}
		}

		if vehicle.InspectionExpiry != nil {
			expiry := *vehicle.InspectionExpiry
			if !expiry.After(now.AddDate(0, 0, s.alerts.InspectionExpiryDays)) {
				priority := model.PriorityHigh
				if !expiry.After(now) {
					priority = model.PriorityCritical
				}
				alerts = append(alerts, model.DashboardAlert{
					Type:                model.AlertInspectionExpiry,
					Title:               "Technical inspection",
					Message:             fmt.Sprintf("Technical inspection expires on %s", expiry.Format("02/01/2006")),
					VehicleRegistration: vehicle.RegistrationNumber,
					Date:                now,
					Priority:            priority,
				})
			}
		}

		if vehicle.InsuranceExpiry != nil {
			expiry := *vehicle.InsuranceExpiry
			if !expiry.After(now.AddDate(0, 0, s.alerts.InsuranceExpiryDays)) {
				priority := model.PriorityHigh
				if !expiry.After(now) {
					priority = model.PriorityCritical
				}
				alerts = append(alerts, model.DashboardAlert{
					Type:                model.AlertInsuranceExpiry,
					Title:               "Insurance expiry",
					Message:             fmt.Sprintf("Insurance expires on %s", expiry.Format("02/01/2006")),
					VehicleRegistration: vehicle.RegistrationNumber,
					Date:                now,
					Priority:            priority,
				})
			}
		}

		if vehicle.AverageConsumption > 0 && fleetAverage > 0 &&
			vehicle.AverageConsumption > fleetAverage*s.alerts.HighConsumptionFactor {
			alerts = append(alerts, model.DashboardAlert{
				Type:                model.AlertHighConsumption,
				Title:               "High consumption",
				Message:             fmt.Sprintf("Consumption: %.1f L/100km (fleet average: %.1f)", vehicle.AverageConsumption, fleetAverage),
				VehicleRegistration: vehicle.RegistrationNumber,
				Date:                now,
				Priority:            model.PriorityMedium,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Priority != alerts[j].Priority {
			return alerts[i].Priority > alerts[j].Priority
		}
		return alerts[i].Date.After(alerts[j].Date)
	})
	return alerts, nil
}

// ConsumptionTrend buckets fuel records with a positive computed consumption
// by day and averages within each day.
func (s *StatisticsService) ConsumptionTrend(ctx context.Context, days int) ([]model.TimeSeriesPoint, error) {
	records, err := s.fuel.ListSince(ctx, s.now().AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	type bucket struct {
		sum   float64
		count int
	}
	byDay := make(map[time.Time]*bucket)
	for _, f := range records {
		if f.Consumption <= 0 {
			continue
		}
		day := truncateDay(f.RefuelDate)
		if byDay[day] == nil {
			byDay[day] = &bucket{}
		}
		byDay[day].sum += f.Consumption
		byDay[day].count++
	}

	points := make([]model.TimeSeriesPoint, 0, len(byDay))
	for day, b := range byDay {
		points = append(points, model.TimeSeriesPoint{
			Date:  day,
			Value: b.sum / float64(b.count),
			Label: day.Format("02/01"),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}

// CostTrend buckets fuel cost by day over the trailing window.
func (s *StatisticsService) CostTrend(ctx context.Context, days int) ([]model.TimeSeriesPoint, error) {
	records, err := s.fuel.ListSince(ctx, s.now().AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]float64)
	for _, f := range records {
		byDay[truncateDay(f.RefuelDate)] += f.TotalCost
	}

	points := make([]model.TimeSeriesPoint, 0, len(byDay))
	for day, total := range byDay {
		points = append(points, model.TimeSeriesPoint{
			Date:  day,
			Value: total,
			Label: day.Format("02/01"),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}

// Predictions extrapolates one month forward from the trailing monthly
// buckets: delta is (latest - earliest) / window, trend follows its sign.
func (s *StatisticsService) Predictions(ctx context.Context) ([]model.PredictionData, error) {
	window := s.stats.PredictionMonths
	trends, err := s.MonthlyTrends(ctx, window)
	if err != nil {
		return nil, err
	}

	now := s.now()
	predictions := make([]model.PredictionData, 0, 3)

	if len(trends) >= window && window > 0 {
		latest := trends[len(trends)-1]
		earliest := trends[0]

		fuelDelta := (latest.FuelCost - earliest.FuelCost) / float64(window)
		predictions = append(predictions, model.PredictionData{
			Category:         "Monthly fuel cost",
			CurrentValue:     latest.FuelCost,
			PredictedValue:   latest.FuelCost + fuelDelta,
			ChangePercentage: changePercentage(fuelDelta, latest.FuelCost),
			Trend:            trendLabel(fuelDelta),
			PredictionDate:   now.AddDate(0, 1, 0),
		})

		maintenanceDelta := (latest.MaintenanceCost - earliest.MaintenanceCost) / float64(window)
		predictions = append(predictions, model.PredictionData{
			Category:         "Monthly maintenance cost",
			CurrentValue:     latest.MaintenanceCost,
			PredictedValue:   latest.MaintenanceCost + maintenanceDelta,
			ChangePercentage: changePercentage(maintenanceDelta, latest.MaintenanceCost),
			Trend:            trendLabel(maintenanceDelta),
			PredictionDate:   now.AddDate(0, 1, 0),
		})

		withConsumption := make([]model.MonthlyStatistics, 0, len(trends))
		for _, t := range trends {
			if t.AverageConsumption > 0 {
				withConsumption = append(withConsumption, t)
			}
		}
		if len(withConsumption) >= window {
			last := withConsumption[len(withConsumption)-1]
			delta := (last.AverageConsumption - withConsumption[0].AverageConsumption) / float64(window)
			predictions = append(predictions, model.PredictionData{
				Category:         "Average consumption",
				CurrentValue:     last.AverageConsumption,
				PredictedValue:   last.AverageConsumption + delta,
				ChangePercentage: delta,
				Trend:            trendLabel(delta),
				PredictionDate:   now.AddDate(0, 1, 0),
			})
		}
	}

	return predictions, nil
}

// RecentMovements merges the most recent fuel fills and maintenance events
// into a single feed, descending by date.
func (s *StatisticsService) RecentMovements(ctx context.Context, limit int) ([]model.RecentMovement, error) {
	if limit <= 0 {
		return []model.RecentMovement{}, nil
	}

	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(vehicles))
	for _, v := range vehicles {
		names[v.ID] = fmt.Sprintf("%s (%s)", v.DisplayName(), v.RegistrationNumber)
	}

	half := limit / 2
	if half == 0 {
		half = 1
	}

	fuelRecords, err := s.fuel.Recent(ctx, half)
	if err != nil {
		return nil, err
	}
	maintenanceRecords, err := s.maintenance.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(maintenanceRecords) > half {
		maintenanceRecords = maintenanceRecords[:half]
	}

	movements := make([]model.RecentMovement, 0, len(fuelRecords)+len(maintenanceRecords))
	for _, f := range fuelRecords {
		name := names[f.VehicleID]
		if name == "" {
			name = "Unknown vehicle"
		}
		movements = append(movements, model.RecentMovement{
			VehicleName:  name,
			MovementType: model.MovementRefuel,
			Date:         f.RefuelDate,
			Description:  fmt.Sprintf("%.1fL - %s", f.Liters, f.Station),
			Cost:         f.TotalCost,
			Mileage:      f.Mileage,
		})
	}
	for _, m := range maintenanceRecords {
		name := names[m.VehicleID]
		if name == "" {
			name = "Unknown vehicle"
		}
		movements = append(movements, model.RecentMovement{
			VehicleName:  name,
			MovementType: model.MovementMaintenance,
			Date:         m.MaintenanceDate,
			Description:  fmt.Sprintf("%s - %s", m.MaintenanceType, m.Description),
			Cost:         m.Cost,
			Mileage:      m.Mileage,
		})
	}

	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date.After(movements[j].Date)
	})
	if len(movements) > limit {
		movements = movements[:limit]
	}
	return movements, nil
}

func rollupVehicle(vehicle model.Vehicle, fuelRecords []model.FuelRecord, maintenanceRecords []model.MaintenanceRecord) model.VehicleStatistics {
	stats := model.VehicleStatistics{
		VehicleID:          vehicle.ID,
		VehicleName:        vehicle.DisplayName(),
		RegistrationNumber: vehicle.RegistrationNumber,
		VehicleType:        vehicle.VehicleType,
		CurrentMileage:     vehicle.CurrentMileage,
		TotalRefuels:       len(fuelRecords),
		TotalMaintenances:  len(maintenanceRecords),
	}

	var priceSum float64
	for _, f := range fuelRecords {
		stats.TotalLiters += f.Liters
		stats.TotalFuelCost += f.TotalCost
		priceSum += f.PricePerLiter
	}
	if len(fuelRecords) > 0 {
		stats.AveragePricePerLiter = priceSum / float64(len(fuelRecords))
	}
	stats.AverageConsumption = averagePositiveConsumption(fuelRecords)

	for _, m := range maintenanceRecords {
		stats.TotalMaintenanceCost += m.Cost
		if stats.LastMaintenanceDate == nil || m.MaintenanceDate.After(*stats.LastMaintenanceDate) {
			stats.LastMaintenanceDate = &m.MaintenanceDate
		}
		if m.NextMaintenanceDate != nil &&
			(stats.NextMaintenanceDate == nil || m.NextMaintenanceDate.After(*stats.NextMaintenanceDate)) {
			stats.NextMaintenanceDate = m.NextMaintenanceDate
		}
	}
	return stats
}

// averagePositiveConsumption is the mean of strictly positive computed
// consumption values. Empty input yields 0, never an error.
func averagePositiveConsumption(records []model.FuelRecord) float64 {
	var sum float64
	var count int
	for _, f := range records {
		if f.Consumption > 0 {
			sum += f.Consumption
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func groupFuelByVehicle(records []model.FuelRecord) map[uint][]model.FuelRecord {
	grouped := make(map[uint][]model.FuelRecord)
	for _, f := range records {
		grouped[f.VehicleID] = append(grouped[f.VehicleID], f)
	}
	return grouped
}

func groupMaintenanceByVehicle(records []model.MaintenanceRecord) map[uint][]model.MaintenanceRecord {
	grouped := make(map[uint][]model.MaintenanceRecord)
	for _, m := range records {
		grouped[m.VehicleID] = append(grouped[m.VehicleID], m)
	}
	return grouped
}

func latestMaintenance(records []model.MaintenanceRecord) *model.MaintenanceRecord {
	var latest *model.MaintenanceRecord
	for i := range records {
		if latest == nil || records[i].MaintenanceDate.After(latest.MaintenanceDate) {
			latest = &records[i]
		}
	}
	return latest
}

func takeStats(items []model.VehicleStatistics, limit int) []model.VehicleStatistics {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func sameMonth(t, reference time.Time) bool {
	return t.Year() == reference.Year() && t.Month() == reference.Month()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthIndex(year, month int) int {
	return year*12 + month - 1
}

func monthFromIndex(index int) (year, month int) {
	return index / 12, index%12 + 1
}

func trendLabel(delta float64) string {
	switch {
	case delta > 0:
		return "up"
	case delta < 0:
		return "down"
	default:
		return "stable"
	}
}

func changePercentage(delta, current float64) float64 {
	if current > 0 {
		return delta / current * 100
	}
	return 0
}
