package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// bookedProject seeds a project with four units and books the second one
func bookedProject(t *testing.T, env *testEnv) (*models.Project, *models.Booking) {
	t.Helper()
	project, _, units := env.seedProject(t, 2, 2)
	client := env.seedClient(t, "Asha Patil")
	booking, err := newBookingService(env).Book(context.Background(), bookRequest(project.ID, units[1].ID, client.ID), testActor)
	require.NoError(t, err)
	return project, booking
}

func TestReportService_BookingReceiptPDF(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportService(env.repos, NewProjectService(env.repos, env.audit))
	_, booking := bookedProject(t, env)

	pdf, filename, err := svc.BookingReceiptPDF(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Contains(t, filename, "booking_receipt_")

	_, _, err = svc.BookingReceiptPDF(context.Background(), booking.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportService_ProjectDetailHTML(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportService(env.repos, NewProjectService(env.repos, env.audit))
	project, _ := bookedProject(t, env)
	require.NoError(t, env.repos.Resource.CreateBank(context.Background(), &models.BankInfo{
		ProjectID: project.ID, BankName: "HDFC Bank", BranchName: "Baner", AccountNo: "5010001",
	}))
	require.NoError(t, env.repos.Resource.CreateDisbursement(context.Background(), &models.Disbursement{
		ProjectID: project.ID, Title: "On booking", Percentage: decimal.NewFromInt(10),
	}))

	html, err := svc.ProjectDetailHTML(context.Background(), project.ID)
	require.NoError(t, err)
	page := string(html)
	assert.Contains(t, page, "Sunrise Heights")
	assert.Contains(t, page, "Wing A")
	assert.Contains(t, page, "HDFC Bank")
	assert.Contains(t, page, "10.00%")
	assert.Contains(t, page, "₹50,00,000.00")
}

func TestReportService_BookingsCSV(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReportService(env.repos, NewProjectService(env.repos, env.audit))
	_, booking := bookedProject(t, env)

	data, filename, err := svc.BookingsCSV(context.Background(), repository.NewListQuery())
	require.NoError(t, err)
	assert.Contains(t, filename, "bookings_")

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Booking ID", records[0][0])
	row := records[1]
	assert.Equal(t, "Asha Patil", row[3])
	assert.Equal(t, "5000000.00", row[5])
	assert.Equal(t, "900000.00", row[7])
	assert.Equal(t, "BOOKED", row[9])
	assert.Equal(t, booking.Unit.UnitNumber, row[2])
}

func TestExportService_InventoryXLSX(t *testing.T) {
	env := newTestEnv(t)
	svc := NewExportService(env.repos, NewProjectService(env.repos, env.audit))
	project, booking := bookedProject(t, env)

	data, filename, err := svc.InventoryXLSX(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Contains(t, filename, project.ProjectCode)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(unitsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Unit", rows[0][2])

	var booked []string
	for _, r := range rows[1:] {
		if r[2] == booking.Unit.UnitNumber {
			booked = r
		}
	}
	require.NotNil(t, booked)
	assert.Equal(t, models.UnitStatusBooked, booked[6])
	assert.Equal(t, "Asha Patil", booked[7])

	vacant, err := f.GetCellValue(summarySheet, "C6")
	require.NoError(t, err)
	assert.Equal(t, "3", vacant)

	_, _, err = svc.InventoryXLSX(context.Background(), project.ID+10)
	assert.ErrorIs(t, err, ErrNotFound)
}
