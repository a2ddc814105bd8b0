package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"gorm.io/gorm"
)

var (
	mobilePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	panPattern    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadharPattern = regexp.MustCompile(`^\d{12}$`)
)

// ClientInput is a client to create, either directly or as the new-client
// part of a booking
type ClientInput struct {
	ClientName   string  `json:"client_name"`
	Email        string  `json:"email"`
	MobileNumber string  `json:"mobile_number"`
	City         string  `json:"city"`
	Address      string  `json:"address"`
	Occupation   string  `json:"occupation"`
	Company      string  `json:"company"`
	PanNo        *string `json:"pan_no"`
	AadharNo     *string `json:"aadhar_no"`
}

// ValidateClientInput checks the fields a client needs before it is saved
func ValidateClientInput(in ClientInput) error {
	if strings.TrimSpace(in.ClientName) == "" {
		return apperrors.FieldValidation("client_name", "Client name is required")
	}
	if !mobilePattern.MatchString(strings.TrimSpace(in.MobileNumber)) {
		return apperrors.FieldValidation("mobile_number", "Mobile number must be 10 digits")
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		return apperrors.FieldValidation("email", "Please enter a valid email address")
	}
	if in.PanNo != nil && *in.PanNo != "" && !panPattern.MatchString(strings.ToUpper(*in.PanNo)) {
		return apperrors.FieldValidation("pan_no", "Invalid PAN number")
	}
	if in.AadharNo != nil && *in.AadharNo != "" && !aadharPattern.MatchString(*in.AadharNo) {
		return apperrors.FieldValidation("aadhar_no", "Aadhar number must be 12 digits")
	}
	return nil
}

// toModel builds the client record. Call ValidateClientInput first.
func (in ClientInput) toModel(createdBy uint) *models.Client {
	client := &models.Client{
		ClientName:   strings.TrimSpace(in.ClientName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		City:         strings.TrimSpace(in.City),
		Address:      in.Address,
		Occupation:   in.Occupation,
		Company:      in.Company,
		CreatedBy:    createdBy,
	}
	if in.PanNo != nil && *in.PanNo != "" {
		pan := strings.ToUpper(*in.PanNo)
		client.PanNo = &pan
	}
	if in.AadharNo != nil && *in.AadharNo != "" {
		client.AadharNo = in.AadharNo
	}
	return client
}

type ClientService struct {
	repo     repository.ClientRepository
	auditSvc *AuditService
}

func NewClientService(repo repository.ClientRepository, auditSvc *AuditService) *ClientService {
	return &ClientService{repo: repo, auditSvc: auditSvc}
}

func (s *ClientService) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return client, err
}

func (s *ClientService) List(ctx context.Context, query *repository.ListQuery) ([]models.Client, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *ClientService) Create(ctx context.Context, in ClientInput, actor Actor) (*models.Client, error) {
	if err := ValidateClientInput(in); err != nil {
		return nil, err
	}
	client := in.toModel(actor.UserID)
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditCreate, "Client", client.ID, client.ClientName, actor.IP, actor.UserAgent)
	return client, nil
}

// Update replaces the editable fields of a client
func (s *ClientService) Update(ctx context.Context, id uint, in ClientInput, actor Actor) (*models.Client, error) {
	if err := ValidateClientInput(in); err != nil {
		return nil, err
	}
	client, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := in.toModel(client.CreatedBy)
	updated.ID = client.ID
	updated.CreatedAt = client.CreatedAt
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditUpdate, "Client", client.ID, updated.ClientName, actor.IP, actor.UserAgent)
	return updated, nil
}
