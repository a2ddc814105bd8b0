package repository

import (
	"context"

	"github.com/propease/propease-api/internal/models"
	"gorm.io/gorm"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	List(ctx context.Context, query *ListQuery) ([]models.Client, int64, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) List(ctx context.Context, query *ListQuery) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Client{}).Where("is_deleted = ?", false)

	if query.Search != "" {
		search := query.searchPattern()
		db = db.Where("LOWER(client_name) LIKE ? OR LOWER(email) LIKE ? OR mobile_number LIKE ?", search, search, search)
	}
	if val := query.Filters["city"]; val != "" {
		db = db.Where("LOWER(city) = LOWER(?)", val)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order(query.Order([]string{"client_name", "city", "created_at"}, "created_at DESC"))
	err := paginate(db, query).Find(&clients).Error
	return clients, total, err
}

// EnquiryRepository defines the interface for enquiry data access
type EnquiryRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Enquiry, error)
	Create(ctx context.Context, enquiry *models.Enquiry) error
	Update(ctx context.Context, enquiry *models.Enquiry) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	List(ctx context.Context, query *ListQuery) ([]models.Enquiry, int64, error)
}

type enquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (r *enquiryRepository) FindByID(ctx context.Context, id uint) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("is_deleted = ?", false).
		First(&enquiry, id).Error
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

func (r *enquiryRepository) Create(ctx context.Context, enquiry *models.Enquiry) error {
	return r.db.WithContext(ctx).Omit("Client", "Project").Create(enquiry).Error
}

func (r *enquiryRepository) Update(ctx context.Context, enquiry *models.Enquiry) error {
	return r.db.WithContext(ctx).Omit("Client", "Project").Save(enquiry).Error
}

func (r *enquiryRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Enquiry{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *enquiryRepository) List(ctx context.Context, query *ListQuery) ([]models.Enquiry, int64, error) {
	var enquiries []models.Enquiry
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Enquiry{}).Where("enquiries.is_deleted = ?", false)

	if val := query.Filters["project_id"]; val != "" {
		db = db.Where("enquiries.project_id = ?", val)
	}
	if ids, ok := query.Filters["project_ids"]; ok {
		db = db.Where("enquiries.project_id IN ?", parseIDList(ids))
	}
	if val := query.Filters["status"]; val != "" {
		db = db.Where("enquiries.status = ?", val)
	}
	if val := query.Filters["client_id"]; val != "" {
		db = db.Where("enquiries.client_id = ?", val)
	}
	if query.Search != "" {
		db = db.Joins("JOIN clients ON clients.id = enquiries.client_id").
			Where("LOWER(clients.client_name) LIKE ?", query.searchPattern())
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order(query.Order([]string{"status", "created_at"}, "enquiries.created_at DESC"))
	err := paginate(db, query).Preload("Client").Find(&enquiries).Error
	return enquiries, total, err
}
