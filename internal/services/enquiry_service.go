package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"gorm.io/gorm"
)

// EnquiryInput is a new enquiry. UnitID optionally pins the unit the client
// asked about.
type EnquiryInput struct {
	ClientID  uint   `json:"client_id"`
	ProjectID uint   `json:"project_id"`
	UnitID    *uint  `json:"unit_id"`
	Budget    string `json:"budget"`
	Status    string `json:"status"`
	Remark    string `json:"remark"`
}

type EnquiryService struct {
	repos    *repository.Repositories
	auditSvc *AuditService
	now      func() time.Time
}

func NewEnquiryService(repos *repository.Repositories, auditSvc *AuditService) *EnquiryService {
	return &EnquiryService{repos: repos, auditSvc: auditSvc, now: time.Now}
}

func (s *EnquiryService) FindByID(ctx context.Context, id uint) (*models.Enquiry, error) {
	enquiry, err := s.repos.Enquiry.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return enquiry, err
}

// List returns enquiries, limited to the actor's projects for employees
func (s *EnquiryService) List(ctx context.Context, query *repository.ListQuery, actor Actor) ([]models.Enquiry, int64, error) {
	if !actor.IsAdmin() {
		user, err := s.repos.User.FindByID(ctx, actor.UserID)
		if err != nil {
			return nil, 0, err
		}
		query.Filters["project_ids"] = repository.FormatIDList(user.ProjectIDs())
	}
	return s.repos.Enquiry.List(ctx, query)
}

func (s *EnquiryService) Create(ctx context.Context, in EnquiryInput, actor Actor) (*models.Enquiry, error) {
	if in.ClientID == 0 {
		return nil, apperrors.FieldValidation("client_id", "Please select or create a client")
	}
	if in.ProjectID == 0 {
		return nil, apperrors.FieldValidation("project_id", "Please select a project")
	}
	status := in.Status
	if status == "" {
		status = models.EnquiryStatusOngoing
	}
	if err := validateManualStatus(status); err != nil {
		return nil, err
	}

	if _, err := s.repos.Client.FindByID(ctx, in.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %d: %w", in.ClientID, ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.repos.Project.FindByID(ctx, in.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project %d: %w", in.ProjectID, ErrNotFound)
		}
		return nil, err
	}
	if in.UnitID != nil {
		unit, err := s.repos.Unit.FindByID(ctx, *in.UnitID)
		if err != nil || unit.ProjectID != in.ProjectID {
			return nil, apperrors.FieldValidation("unit_id", "Unit does not belong to the selected project")
		}
	}

	enquiry := &models.Enquiry{
		ClientID:  in.ClientID,
		ProjectID: in.ProjectID,
		UnitID:    in.UnitID,
		Budget:    strings.TrimSpace(in.Budget),
		Status:    status,
		Remark:    strings.TrimSpace(in.Remark),
		CreatedBy: actor.UserID,
	}
	// Every enquiry starts with a planned call
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Enquiry.Create(ctx, enquiry); err != nil {
			return err
		}
		return openFollowUp(ctx, tx, enquiry, actor.UserID, s.now())
	})
	if err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditCreate, "Enquiry", enquiry.ID,
		fmt.Sprintf("client %d, project %d", enquiry.ClientID, enquiry.ProjectID), actor.IP, actor.UserAgent)
	return s.FindByID(ctx, enquiry.ID)
}

// UpdateStatus moves an open enquiry between lead stages or cancels it.
// Converted and cancelled enquiries are closed.
func (s *EnquiryService) UpdateStatus(ctx context.Context, id uint, status, remark string, actor Actor) (*models.Enquiry, error) {
	if err := validateManualStatus(status); err != nil {
		return nil, err
	}
	enquiry, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !enquiry.MayConvert() {
		return nil, apperrors.Conflictf("Enquiry is already %s", strings.ToLower(enquiry.Status))
	}

	enquiry.Status = status
	if remark = strings.TrimSpace(remark); remark != "" {
		enquiry.Remark = remark
	}
	if err := s.repos.Enquiry.Update(ctx, enquiry); err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditUpdate, "Enquiry", enquiry.ID, "status "+status, actor.IP, actor.UserAgent)
	return enquiry, nil
}

// BOOKED is only ever set by a booking
func validateManualStatus(status string) error {
	if !models.ValidEnquiryStatus(status) {
		return apperrors.FieldValidation("status", "Invalid enquiry status")
	}
	if status == models.EnquiryStatusBooked {
		return apperrors.FieldValidation("status", "Enquiries are marked booked by booking a unit")
	}
	return nil
}
