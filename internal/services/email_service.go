package services

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/propease/propease-api/internal/config"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/pkg/logger"
	"github.com/resend/resend-go/v2"
)

//go:embed templates/email/*.html
var emailTemplates embed.FS

// emailSender is the part of the Resend client used here
type emailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailService struct {
	config *config.Config
	sender emailSender
}

func NewEmailService(cfg *config.Config) *EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &EmailService{
		config: cfg,
		sender: client.Emails,
	}
}

// checkEmailPreconditions reports whether an email should be sent. A
// disabled feature is not an error; a missing key or recipient is.
func (s *EmailService) checkEmailPreconditions(to, operation string) (bool, error) {
	if !s.config.EnableEmailNotifications {
		logger.Debug("email notifications disabled", "operation", operation)
		return false, nil
	}
	if s.config.ResendAPIKey == "" {
		return false, errors.New("RESEND_API_KEY is not set")
	}
	if strings.TrimSpace(to) == "" {
		return false, errors.New("email address is empty")
	}
	return true, nil
}

// SendBookingConfirmation mails the client the details of a new booking.
// The booking must have Client, Unit and Project loaded.
func (s *EmailService) SendBookingConfirmation(ctx context.Context, booking *models.Booking) error {
	if booking.Client == nil {
		return errors.New("booking has no client loaded")
	}
	ok, err := s.checkEmailPreconditions(booking.Client.Email, "booking confirmation")
	if !ok {
		return err
	}

	data := struct {
		Name            string
		ProjectName     string
		UnitNumber      string
		WingName        string
		BookingDate     string
		BookingAmount   string
		AgreementAmount string
		GSTPercentage   string
		GSTAmount       string
		AppURL          string
	}{
		Name:            booking.Client.ClientName,
		BookingDate:     booking.BookingDate.Format("02/01/2006"),
		BookingAmount:   FormatINR(booking.BookingAmount),
		AgreementAmount: FormatINR(booking.AgreementAmount),
		GSTPercentage:   booking.GSTPercentage.String(),
		GSTAmount:       FormatINR(booking.GSTAmount()),
		AppURL:          s.config.AppURL,
	}
	if booking.Project != nil {
		data.ProjectName = booking.Project.Name
	}
	if booking.Unit != nil {
		data.UnitNumber = booking.Unit.UnitNumber
		if booking.Unit.Wing != nil {
			data.WingName = booking.Unit.Wing.WingName
		}
	}

	subject := fmt.Sprintf("Booking confirmed: %s %s", data.ProjectName, data.UnitNumber)
	return s.send(booking.Client.Email, subject, "booking_confirmation.html", data)
}

// SendAccountCreated welcomes a new staff user
func (s *EmailService) SendAccountCreated(ctx context.Context, user *models.User) error {
	ok, err := s.checkEmailPreconditions(user.Email, "account created")
	if !ok {
		return err
	}

	data := struct {
		Name   string
		Email  string
		Role   string
		AppURL string
	}{
		Name:   user.FullName,
		Email:  user.Email,
		Role:   user.Role,
		AppURL: s.config.AppURL,
	}
	return s.send(user.Email, "Welcome to PropEase", "account_created.html", data)
}

// SendProjectsAssigned tells an employee which projects they can work on
func (s *EmailService) SendProjectsAssigned(ctx context.Context, user *models.User, projects []models.Project) error {
	ok, err := s.checkEmailPreconditions(user.Email, "projects assigned")
	if !ok {
		return err
	}

	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	data := struct {
		Name     string
		Projects []string
		AppURL   string
	}{
		Name:     user.FullName,
		Projects: names,
		AppURL:   s.config.AppURL,
	}
	return s.send(user.Email, "Your project assignments changed", "projects_assigned.html", data)
}

func (s *EmailService) send(to, subject, templateName string, data interface{}) error {
	body, err := s.renderTemplate(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}
	if _, err := s.sender.Send(params); err != nil {
		logger.Error("failed to send email", "to", to, "subject", subject, "error", err)
		return err
	}

	logger.Info("email sent", "to", to, "subject", subject)
	return nil
}

func (s *EmailService) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/email/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
