package repository

import (
	"context"

	"github.com/propease/propease-api/internal/models"
	"gorm.io/gorm"
)

// ResourceRepository covers the project-scoped banks, amenities, documents
// and disbursement milestones
type ResourceRepository interface {
	ListBanks(ctx context.Context, projectID uint) ([]models.BankInfo, error)
	CreateBank(ctx context.Context, bank *models.BankInfo) error
	DeleteBank(ctx context.Context, projectID, id uint) error

	ListAmenities(ctx context.Context, projectID uint) ([]models.Amenity, error)
	CreateAmenity(ctx context.Context, amenity *models.Amenity) error
	DeleteAmenity(ctx context.Context, projectID, id uint) error

	ListDocuments(ctx context.Context, projectID uint) ([]models.Document, error)
	FindDocument(ctx context.Context, projectID, id uint) (*models.Document, error)
	CreateDocument(ctx context.Context, doc *models.Document) error
	DeleteDocument(ctx context.Context, projectID, id uint) error

	ListDisbursements(ctx context.Context, projectID uint) ([]models.Disbursement, error)
	CreateDisbursement(ctx context.Context, d *models.Disbursement) error
	DeleteDisbursement(ctx context.Context, projectID, id uint) error
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

// deleteScoped deletes the row only if it belongs to the project
func (r *resourceRepository) deleteScoped(ctx context.Context, model interface{}, projectID, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND project_id = ?", id, projectID).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *resourceRepository) ListBanks(ctx context.Context, projectID uint) ([]models.BankInfo, error) {
	var banks []models.BankInfo
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&banks).Error
	return banks, err
}

func (r *resourceRepository) CreateBank(ctx context.Context, bank *models.BankInfo) error {
	return r.db.WithContext(ctx).Create(bank).Error
}

func (r *resourceRepository) DeleteBank(ctx context.Context, projectID, id uint) error {
	return r.deleteScoped(ctx, &models.BankInfo{}, projectID, id)
}

func (r *resourceRepository) ListAmenities(ctx context.Context, projectID uint) ([]models.Amenity, error) {
	var amenities []models.Amenity
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("amenity_name ASC").Find(&amenities).Error
	return amenities, err
}

func (r *resourceRepository) CreateAmenity(ctx context.Context, amenity *models.Amenity) error {
	return r.db.WithContext(ctx).Create(amenity).Error
}

func (r *resourceRepository) DeleteAmenity(ctx context.Context, projectID, id uint) error {
	return r.deleteScoped(ctx, &models.Amenity{}, projectID, id)
}

func (r *resourceRepository) ListDocuments(ctx context.Context, projectID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&docs).Error
	return docs, err
}

func (r *resourceRepository) FindDocument(ctx context.Context, projectID, id uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).Where("id = ? AND project_id = ?", id, projectID).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *resourceRepository) CreateDocument(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *resourceRepository) DeleteDocument(ctx context.Context, projectID, id uint) error {
	return r.deleteScoped(ctx, &models.Document{}, projectID, id)
}

func (r *resourceRepository) ListDisbursements(ctx context.Context, projectID uint) ([]models.Disbursement, error) {
	var items []models.Disbursement
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *resourceRepository) CreateDisbursement(ctx context.Context, d *models.Disbursement) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *resourceRepository) DeleteDisbursement(ctx context.Context, projectID, id uint) error {
	return r.deleteScoped(ctx, &models.Disbursement{}, projectID, id)
}
