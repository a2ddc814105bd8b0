package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/registration"
	"github.com/propease/propease-api/internal/repository"
	"gorm.io/gorm"
)

// ResourceService manages the banks, amenities, documents and disbursement
// milestones of a registered project. The rules are the ones the
// registration wizard applies to its draft.
type ResourceService struct {
	repos    *repository.Repositories
	images   *ImageService
	auditSvc *AuditService
}

func NewResourceService(repos *repository.Repositories, images *ImageService, auditSvc *AuditService) *ResourceService {
	return &ResourceService{repos: repos, images: images, auditSvc: auditSvc}
}

func (s *ResourceService) ListBanks(ctx context.Context, projectID uint) ([]models.BankInfo, error) {
	return s.repos.Resource.ListBanks(ctx, projectID)
}

func (s *ResourceService) AddBank(ctx context.Context, projectID uint, in registration.BankDraft, actor Actor) (*models.BankInfo, error) {
	_, b, err := registration.AddBank(registration.Draft{}, in)
	if err != nil {
		return nil, err
	}
	if err := s.projectExists(ctx, s.repos, projectID); err != nil {
		return nil, err
	}

	bank := &models.BankInfo{
		ProjectID:     projectID,
		BankName:      b.BankName,
		BranchName:    b.BranchName,
		ContactPerson: b.ContactPerson,
		ContactNumber: b.ContactNumber,
		IFSC:          b.IFSC,
		AccountNo:     b.AccountNo,
		AccountType:   b.AccountType,
	}
	if err := s.repos.Resource.CreateBank(ctx, bank); err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditCreate, "BankInfo", bank.ID, bank.BankName, actor.IP, actor.UserAgent)
	return bank, nil
}

// DeleteBank removes a bank account. A project keeps at least one.
func (s *ResourceService) DeleteBank(ctx context.Context, projectID, id uint, actor Actor) error {
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Project.FindByIDForUpdate(ctx, projectID); err != nil {
			return notFound(err)
		}
		banks, err := tx.Resource.ListBanks(ctx, projectID)
		if err != nil {
			return err
		}
		if len(banks) == 1 && banks[0].ID == id {
			return apperrors.Conflict("A project needs at least one bank account")
		}
		return notFound(tx.Resource.DeleteBank(ctx, projectID, id))
	})
	if err != nil {
		return err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditDelete, "BankInfo", id, "", actor.IP, actor.UserAgent)
	return nil
}

func (s *ResourceService) ListAmenities(ctx context.Context, projectID uint) ([]models.Amenity, error) {
	return s.repos.Resource.ListAmenities(ctx, projectID)
}

// AddAmenity adds a non-blank amenity the project does not have yet
func (s *ResourceService) AddAmenity(ctx context.Context, projectID uint, name string, actor Actor) (*models.Amenity, error) {
	var amenity *models.Amenity
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Project.FindByIDForUpdate(ctx, projectID); err != nil {
			return notFound(err)
		}
		existing, err := tx.Resource.ListAmenities(ctx, projectID)
		if err != nil {
			return err
		}
		d := registration.Draft{}
		for _, a := range existing {
			d.Amenities = append(d.Amenities, registration.AmenityDraft{Name: a.AmenityName})
		}
		_, a, err := registration.AddAmenity(d, name)
		if err != nil {
			return err
		}
		amenity = &models.Amenity{ProjectID: projectID, AmenityName: a.Name}
		return tx.Resource.CreateAmenity(ctx, amenity)
	})
	if err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditCreate, "Amenity", amenity.ID, amenity.AmenityName, actor.IP, actor.UserAgent)
	return amenity, nil
}

func (s *ResourceService) DeleteAmenity(ctx context.Context, projectID, id uint, actor Actor) error {
	if err := notFound(s.repos.Resource.DeleteAmenity(ctx, projectID, id)); err != nil {
		return err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditDelete, "Amenity", id, "", actor.IP, actor.UserAgent)
	return nil
}

func (s *ResourceService) ListDocuments(ctx context.Context, projectID uint) ([]models.Document, error) {
	return s.repos.Resource.ListDocuments(ctx, projectID)
}

func (s *ResourceService) FindDocument(ctx context.Context, projectID, id uint) (*models.Document, error) {
	doc, err := s.repos.Resource.FindDocument(ctx, projectID, id)
	if err != nil {
		return nil, notFound(err)
	}
	return doc, nil
}

// AddDocument stores an upload and records it against the project
func (s *ResourceService) AddDocument(ctx context.Context, projectID uint, documentType, title string, file multipart.File, header *multipart.FileHeader, actor Actor) (*models.Document, error) {
	if err := s.projectExists(ctx, s.repos, projectID); err != nil {
		return nil, err
	}

	path, thumb, err := s.images.SaveDocument(file, header)
	if err != nil {
		return nil, err
	}
	_, d, err := registration.AddDocument(registration.Draft{}, registration.DocumentDraft{
		DocumentType:  documentType,
		Title:         title,
		Path:          path,
		ThumbnailPath: thumb,
	})
	if err != nil {
		s.images.DeleteDocument(path, thumb)
		return nil, err
	}

	doc := &models.Document{
		ProjectID:     projectID,
		DocumentType:  d.DocumentType,
		DocumentTitle: d.Title,
		Path:          d.Path,
		ThumbnailPath: d.ThumbnailPath,
	}
	if err := s.repos.Resource.CreateDocument(ctx, doc); err != nil {
		s.images.DeleteDocument(path, thumb)
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditCreate, "Document", doc.ID, doc.DocumentTitle, actor.IP, actor.UserAgent)
	return doc, nil
}

// DeleteDocument removes the record, then its files
func (s *ResourceService) DeleteDocument(ctx context.Context, projectID, id uint, actor Actor) error {
	doc, err := s.FindDocument(ctx, projectID, id)
	if err != nil {
		return err
	}
	if err := notFound(s.repos.Resource.DeleteDocument(ctx, projectID, id)); err != nil {
		return err
	}
	s.images.DeleteDocument(doc.Path, doc.ThumbnailPath)
	s.auditSvc.Log(ctx, actor.UserID, AuditDelete, "Document", id, doc.DocumentTitle, actor.IP, actor.UserAgent)
	return nil
}

func (s *ResourceService) ListDisbursements(ctx context.Context, projectID uint) ([]models.Disbursement, error) {
	return s.repos.Resource.ListDisbursements(ctx, projectID)
}

// AddDisbursement adds a milestone as long as the project's total stays at
// or below 100%. The project row is locked while the total is checked.
func (s *ResourceService) AddDisbursement(ctx context.Context, projectID uint, in registration.DisbursementDraft, actor Actor) (*models.Disbursement, error) {
	var milestone *models.Disbursement
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Project.FindByIDForUpdate(ctx, projectID); err != nil {
			return notFound(err)
		}
		existing, err := tx.Resource.ListDisbursements(ctx, projectID)
		if err != nil {
			return err
		}
		d := registration.Draft{}
		for _, m := range existing {
			d.Disbursements = append(d.Disbursements, registration.DisbursementDraft{Title: m.Title, Percentage: m.Percentage})
		}
		_, m, err := registration.AddDisbursement(d, in)
		if err != nil {
			return err
		}
		milestone = &models.Disbursement{
			ProjectID:   projectID,
			Title:       m.Title,
			Description: m.Description,
			Percentage:  m.Percentage,
		}
		return tx.Resource.CreateDisbursement(ctx, milestone)
	})
	if err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditCreate, "Disbursement", milestone.ID,
		fmt.Sprintf("%s %s%%", milestone.Title, milestone.Percentage.String()), actor.IP, actor.UserAgent)
	return milestone, nil
}

func (s *ResourceService) DeleteDisbursement(ctx context.Context, projectID, id uint, actor Actor) error {
	if err := notFound(s.repos.Resource.DeleteDisbursement(ctx, projectID, id)); err != nil {
		return err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditDelete, "Disbursement", id, "", actor.IP, actor.UserAgent)
	return nil
}

func (s *ResourceService) projectExists(ctx context.Context, repos *repository.Repositories, projectID uint) error {
	_, err := repos.Project.FindByID(ctx, projectID)
	return notFound(err)
}

// notFound maps a missing row to ErrNotFound and passes anything else through
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
