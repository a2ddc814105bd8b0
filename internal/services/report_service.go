package services

import (
	"bytes"
	"context"
	"embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"image/png"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/jung-kurt/gofpdf"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

//go:embed templates/report/*.html
var reportTemplates embed.FS

const reportDateLayout = "02/01/2006"

type ReportService struct {
	repos    *repository.Repositories
	projects *ProjectService
}

func NewReportService(repos *repository.Repositories, projects *ProjectService) *ReportService {
	return &ReportService{repos: repos, projects: projects}
}

// receiptCode is what the QR code on a receipt encodes
type receiptCode struct {
	BookingID   uint   `json:"booking_id"`
	ProjectCode string `json:"project_code"`
	Unit        string `json:"unit"`
	Agreement   string `json:"agreement_amount"`
	BookedOn    string `json:"booked_on"`
}

// BookingReceiptPDF renders the receipt handed to the client at booking.
// It carries the amounts in figures and words and a QR code of the booking.
func (s *ReportService) BookingReceiptPDF(ctx context.Context, bookingID uint) ([]byte, string, error) {
	booking, err := s.repos.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, "", notFound(err)
	}

	qr, err := receiptQRCode(booking)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking receipt", false)
	pdf.AddPage()

	projectName, projectCode := "", ""
	if booking.Project != nil {
		projectName, projectCode = booking.Project.Name, booking.Project.ProjectCode
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, projectName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "MahaRERA No. "+projectCode, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "BOOKING RECEIPT", "B", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qr))
	pdf.ImageOptions("qr", 160, 42, 35, 35, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	row := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(90, 7, value, "", "L", false)
	}

	row("Receipt No.", fmt.Sprintf("BK-%06d", booking.ID))
	row("Booking Date", booking.BookingDate.Format(reportDateLayout))
	if booking.Client != nil {
		row("Client", booking.Client.ClientName)
		row("Mobile", booking.Client.MobileNumber)
	}
	if booking.Unit != nil {
		unit := booking.Unit.UnitNumber
		if booking.Unit.Wing != nil {
			unit = fmt.Sprintf("Wing %s, %s", booking.Unit.Wing.WingName, unit)
		}
		row("Unit", unit)
		row("Configuration", strings.TrimSpace(booking.Unit.PropertyType+" "+booking.Unit.BHK))
	}
	pdf.Ln(4)

	gst := booking.GSTAmount()
	row("Agreement Value", pdfAmount(booking.AgreementAmount))
	row("GST", fmt.Sprintf("%s (%s%%)", pdfAmount(gst), booking.GSTPercentage.String()))
	row("Total", pdfAmount(booking.AgreementAmount.Add(gst)))
	row("Booking Amount", pdfAmount(booking.BookingAmount))
	row("In Words", AmountToWords(booking.BookingAmount))
	if booking.ChequeNo != "" {
		cheque := booking.ChequeNo
		if booking.ChequeDate != nil {
			cheque += " dated " + booking.ChequeDate.Format(reportDateLayout)
		}
		row("Cheque", cheque)
	}
	if booking.IsRegistered && booking.RegistrationDate != nil {
		row("Registration", fmt.Sprintf("%s on %s", booking.RegistrationNo, booking.RegistrationDate.Format(reportDateLayout)))
	}
	if booking.IsCancelled {
		row("Status", "CANCELLED: "+booking.CancellationReason)
	}

	pdf.Ln(16)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(90, 6, "Client Signature", "T", 0, "L", false, 0, "")
	pdf.CellFormat(10, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, "Authorised Signatory", "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write receipt: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("booking_receipt_%d.pdf", booking.ID), nil
}

// projectSheet is the data behind the project detail template
type projectSheet struct {
	Project       *models.Project
	Summary       *ProjectSummary
	Disbursements []disbursementLine
	BookedValue   string
	GeneratedAt   string
}

type disbursementLine struct {
	Title       string
	Description string
	Percentage  string
}

// ProjectDetailPDF renders the project fact sheet through wkhtmltopdf
func (s *ReportService) ProjectDetailPDF(ctx context.Context, projectID uint) ([]byte, string, error) {
	html, err := s.ProjectDetailHTML(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := htmlToPDF(html)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("project_%d.pdf", projectID), nil
}

// ProjectDetailHTML renders the project fact sheet as HTML
func (s *ReportService) ProjectDetailHTML(ctx context.Context, projectID uint) ([]byte, error) {
	project, err := s.repos.Project.FindByIDWithDetails(ctx, projectID)
	if err != nil {
		return nil, notFound(err)
	}
	for i := range project.Wings {
		models.SortFloors(project.Wings[i].Floors)
	}
	summary, err := s.projects.Summary(ctx, projectID)
	if err != nil {
		return nil, err
	}

	sheet := projectSheet{
		Project:     project,
		Summary:     summary,
		BookedValue: FormatINR(decimal.NewFromFloat(summary.BookedValue)),
		GeneratedAt: time.Now().Format(reportDateLayout + " 15:04"),
	}
	for _, d := range project.Disbursements {
		sheet.Disbursements = append(sheet.Disbursements, disbursementLine{
			Title:       d.Title,
			Description: d.Description,
			Percentage:  d.Percentage.StringFixed(2),
		})
	}

	tmpl, err := template.New("project_detail.html").Funcs(template.FuncMap{
		"date": func(t time.Time) string { return t.Format(reportDateLayout) },
	}).ParseFS(reportTemplates, "templates/report/project_detail.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, sheet); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// BookingsCSV lists the bookings matching query, one row per booking
func (s *ReportService) BookingsCSV(ctx context.Context, query *repository.ListQuery) ([]byte, string, error) {
	query.PerPage = 0
	bookings, _, err := s.repos.Booking.List(ctx, query)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	header := []string{"Booking ID", "Booking Date", "Unit", "Client", "Mobile",
		"Agreement Amount", "GST %", "GST Amount", "Booking Amount", "Status", "Registration No"}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for _, b := range bookings {
		client, mobile := "", ""
		if b.Client != nil {
			client, mobile = b.Client.ClientName, b.Client.MobileNumber
		}
		record := []string{
			fmt.Sprintf("%d", b.ID),
			b.BookingDate.Format(models.DateLayout),
			unitNumber(&b),
			client,
			mobile,
			b.AgreementAmount.StringFixed(2),
			b.GSTPercentage.StringFixed(2),
			b.GSTAmount().StringFixed(2),
			b.BookingAmount.StringFixed(2),
			bookingStatus(&b),
			b.RegistrationNo,
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("bookings_%s.csv", time.Now().Format("2006-01-02")), nil
}

func bookingStatus(b *models.Booking) string {
	switch {
	case b.IsCancelled:
		return "CANCELLED"
	case b.IsRegistered:
		return "REGISTERED"
	}
	return "BOOKED"
}

func receiptQRCode(b *models.Booking) ([]byte, error) {
	code := receiptCode{
		BookingID: b.ID,
		Unit:      unitNumber(b),
		Agreement: b.AgreementAmount.StringFixed(2),
		BookedOn:  b.BookingDate.Format(models.DateLayout),
	}
	if b.Project != nil {
		code.ProjectCode = b.Project.ProjectCode
	}
	data, err := json.Marshal(code)
	if err != nil {
		return nil, err
	}

	qr, err := qrcode.New(string(data), qrcode.Medium)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(256)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfAmount is FormatINR for the core PDF fonts, which have no rupee sign
func pdfAmount(amount decimal.Decimal) string {
	return strings.Replace(FormatINR(amount), "₹", "Rs. ", 1)
}

// htmlToPDF converts a rendered page with the wkhtmltopdf binary
func htmlToPDF(html []byte) ([]byte, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}
	return pdfg.Bytes(), nil
}
