package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"fleetops-service/internal/model"
)

// ReportService renders fleet reports in CSV, Excel and PDF form. The row
// data always comes from the statistics aggregator so every format shows the
// same numbers.
type ReportService struct {
	statistics *StatisticsService
	now        func() time.Time
}

func NewReportService(statistics *StatisticsService) *ReportService {
	return &ReportService{statistics: statistics, now: time.Now}
}

// Export is a rendered report ready to be sent as a download.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

var reportHeaders = []string{
	"Registration", "Vehicle", "Type", "Mileage (km)",
	"Refuels", "Liters", "Fuel cost", "Avg consumption (L/100km)",
	"Maintenances", "Maintenance cost", "Total cost",
}

type fleetReport struct {
	rows  []model.VehicleStatistics
	fleet model.FleetStatistics
}

func (s *ReportService) build(ctx context.Context) (*fleetReport, error) {
	rows, err := s.statistics.AllVehicleStatistics(ctx)
	if err != nil {
		return nil, err
	}
	fleet, err := s.statistics.FleetStatistics(ctx)
	if err != nil {
		return nil, err
	}
	return &fleetReport{rows: rows, fleet: *fleet}, nil
}

func reportRow(stats model.VehicleStatistics) []string {
	return []string{
		stats.RegistrationNumber,
		stats.VehicleName,
		string(stats.VehicleType),
		fmt.Sprintf("%.0f", stats.CurrentMileage),
		fmt.Sprintf("%d", stats.TotalRefuels),
		fmt.Sprintf("%.2f", stats.TotalLiters),
		fmt.Sprintf("%.2f", stats.TotalFuelCost),
		fmt.Sprintf("%.2f", stats.AverageConsumption),
		fmt.Sprintf("%d", stats.TotalMaintenances),
		fmt.Sprintf("%.2f", stats.TotalMaintenanceCost),
		fmt.Sprintf("%.2f", stats.TotalCost()),
	}
}

func (r *fleetReport) summary() [][2]string {
	return [][2]string{
		{"Vehicles", fmt.Sprintf("%d", r.fleet.TotalVehicles)},
		{"Total fuel cost", fmt.Sprintf("%.2f", r.fleet.TotalFuelCost)},
		{"Total maintenance cost", fmt.Sprintf("%.2f", r.fleet.TotalMaintenanceCost)},
		{"Total liters", fmt.Sprintf("%.2f", r.fleet.TotalLiters)},
		{"Fleet average consumption", fmt.Sprintf("%.2f L/100km", r.fleet.AverageConsumption)},
	}
}

func (s *ReportService) ExportCSV(ctx context.Context) (*Export, error) {
	report, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(reportHeaders); err != nil {
		return nil, err
	}
	for _, row := range report.rows {
		if err := writer.Write(reportRow(row)); err != nil {
			return nil, err
		}
	}
	if err := writer.Write([]string{}); err != nil {
		return nil, err
	}
	for _, pair := range report.summary() {
		if err := writer.Write([]string{pair[0], pair[1]}); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return &Export{
		Filename:    s.filename("csv"),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportService) ExportExcel(ctx context.Context) (*Export, error) {
	report, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Fleet report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	f.SetCellValue(sheet, "A1", "Fleet report")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetRowHeight(sheet, 1, 30)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Generated: %s", s.now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for col, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 4)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		name, _ := excelize.ColumnNumberToName(col + 1)
		f.SetColWidth(sheet, name, name, 18)
	}

	for rowIdx, stats := range report.rows {
		for col, value := range reportRow(stats) {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+5)
			f.SetCellValue(sheet, cell, value)
		}
	}

	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E7E6E6"}, Pattern: 1},
	})
	summaryRow := len(report.rows) + 7
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(sheet, cell, "Summary")
	f.SetCellStyle(sheet, cell, cell, summaryStyle)
	summaryRow++
	for _, pair := range report.summary() {
		keyCell, _ := excelize.CoordinatesToCellName(1, summaryRow)
		valueCell, _ := excelize.CoordinatesToCellName(2, summaryRow)
		f.SetCellValue(sheet, keyCell, pair[0])
		f.SetCellValue(sheet, valueCell, pair[1])
		summaryRow++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename:    s.filename("xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportService) ExportPDF(ctx context.Context) (*Export, error) {
	report, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Fleet report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", s.now().Format("2006-01-02 15:04:05")))
	pdf.Ln(10)

	widths := []float64{26, 38, 20, 24, 18, 22, 24, 30, 26, 28, 24}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range reportHeaders {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(235, 238, 245)
	for _, stats := range report.rows {
		for i, value := range reportRow(stats) {
			pdf.CellFormat(widths[i], 6, value, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 7, "Summary")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 9)
	for _, pair := range report.summary() {
		pdf.CellFormat(60, 6, pair[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, pair[1], "", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return &Export{
		Filename:    s.filename("pdf"),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportService) filename(extension string) string {
	return fmt.Sprintf("%s_%s.%s", sanitizeFilename("fleet_report"), s.now().Format("20060102_150405"), extension)
}

// sanitizeFilename keeps download filenames header-safe.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
