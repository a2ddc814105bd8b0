package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	unitsSheet   = "Units"
)

// ExportService builds spreadsheet exports of a project's inventory
type ExportService struct {
	repos    *repository.Repositories
	projects *ProjectService
}

func NewExportService(repos *repository.Repositories, projects *ProjectService) *ExportService {
	return &ExportService{repos: repos, projects: projects}
}

// InventoryXLSX writes a workbook with the per-wing status summary and a
// row for every unit, including the client holding it
func (s *ExportService) InventoryXLSX(ctx context.Context, projectID uint) ([]byte, string, error) {
	project, err := s.repos.Project.FindByID(ctx, projectID)
	if err != nil {
		return nil, "", notFound(err)
	}
	summary, err := s.projects.Summary(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	units, err := s.repos.Unit.FindByProject(ctx, projectID)
	if err != nil {
		return nil, "", err
	}

	query := repository.NewListQuery()
	query.PerPage = 0
	query.Filters["project_id"] = strconv.FormatUint(uint64(projectID), 10)
	bookings, _, err := s.repos.Booking.List(ctx, query)
	if err != nil {
		return nil, "", err
	}
	holders := make(map[uint]models.Booking, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			holders[b.UnitID] = b
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})

	_ = f.SetSheetName("Sheet1", summarySheet)
	_ = f.SetCellValue(summarySheet, "A1", fmt.Sprintf("%s (%s)", project.Name, project.ProjectCode))
	_ = f.SetCellStyle(summarySheet, "A1", "A1", titleStyle)
	_ = f.SetCellValue(summarySheet, "A2", "Generated "+time.Now().Format("2006-01-02 15:04"))

	writeRow(f, summarySheet, 4, []interface{}{"Wing", "Floors", "Vacant", "Booked", "Registered", "Total"})
	_ = f.SetCellStyle(summarySheet, "A4", "F4", headerStyle)
	row := 5
	for _, w := range summary.Wings {
		writeRow(f, summarySheet, row, []interface{}{w.WingName, w.NoOfFloors, w.Vacant, w.Booked, w.Registered, w.Total})
		row++
	}
	writeRow(f, summarySheet, row, []interface{}{"Total", "", summary.Totals.Vacant, summary.Totals.Booked, summary.Totals.Registered, summary.Totals.Total})
	_ = f.SetCellStyle(summarySheet, cell("A", row), cell("F", row), headerStyle)
	writeRow(f, summarySheet, row+2, []interface{}{"Booked value", summary.BookedValue})

	if _, err := f.NewSheet(unitsSheet); err != nil {
		return nil, "", err
	}
	writeRow(f, unitsSheet, 1, []interface{}{"Wing", "Floor", "Unit", "Type", "Configuration", "Area", "Status", "Client", "Booking Date", "Agreement Amount"})
	_ = f.SetCellStyle(unitsSheet, "A1", "J1", headerStyle)
	for i, u := range units {
		wing, floor := "", ""
		if u.Wing != nil {
			wing = u.Wing.WingName
		}
		if u.Floor != nil {
			floor = u.Floor.FloorName
		}
		values := []interface{}{wing, floor, u.UnitNumber, u.PropertyType, u.BHK, u.Area, u.Status}
		if b, ok := holders[u.ID]; ok {
			client := ""
			if b.Client != nil {
				client = b.Client.ClientName
			}
			values = append(values, client, b.BookingDate.Format(models.DateLayout), b.AgreementAmount.InexactFloat64())
		}
		writeRow(f, unitsSheet, i+2, values)
	}
	_ = f.SetColWidth(unitsSheet, "A", "J", 16)
	_ = f.SetColWidth(summarySheet, "A", "F", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("inventory_%s_%s.xlsx", project.ProjectCode, time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) {
	_ = f.SetSheetRow(sheet, cell("A", row), &values)
}

func cell(col string, row int) string {
	return col + strconv.Itoa(row)
}
