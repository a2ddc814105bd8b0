package repository

import (
	"context"
	"time"

	"github.com/propease/propease-api/internal/models"
	"gorm.io/gorm"
)

// FollowUpRepository defines the interface for follow-up data access
type FollowUpRepository interface {
	Create(ctx context.Context, followUp *models.FollowUp) error
	CreateNote(ctx context.Context, note *models.FollowUpNote) error
	FindByID(ctx context.Context, id uint) (*models.FollowUp, error)
	FindByEnquiry(ctx context.Context, enquiryID uint) (*models.FollowUp, error)
	ListByProject(ctx context.Context, projectID uint, query *ListQuery) ([]models.FollowUp, int64, error)
	// ListDue returns follow-ups of open enquiries whose next date falls in
	// [from, to]. A zero from has no lower bound and a nil projectIDs means
	// every project.
	ListDue(ctx context.Context, projectIDs []uint, from, to time.Time) ([]models.FollowUp, error)
	// ListNeedingReminder returns follow-ups due on or before day that have
	// not been reminded about on day yet
	ListNeedingReminder(ctx context.Context, day time.Time) ([]models.FollowUp, error)
	UpdateNextDate(ctx context.Context, id uint, next time.Time) error
	MarkReminded(ctx context.Context, id uint, day time.Time) error
}

type followUpRepository struct {
	db *gorm.DB
}

func NewFollowUpRepository(db *gorm.DB) FollowUpRepository {
	return &followUpRepository{db: db}
}

// followUpDetails loads the client and the notes, oldest note first
func followUpDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Enquiry").
		Preload("Enquiry.Client").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("noted_at ASC, id ASC")
		}).
		Preload("Notes.User")
}

func (r *followUpRepository) Create(ctx context.Context, followUp *models.FollowUp) error {
	return r.db.WithContext(ctx).Omit("Enquiry", "Notes").Create(followUp).Error
}

func (r *followUpRepository) CreateNote(ctx context.Context, note *models.FollowUpNote) error {
	return r.db.WithContext(ctx).Omit("User").Create(note).Error
}

func (r *followUpRepository) FindByID(ctx context.Context, id uint) (*models.FollowUp, error) {
	var followUp models.FollowUp
	err := followUpDetails(r.db.WithContext(ctx)).
		Where("is_deleted = ?", false).
		First(&followUp, id).Error
	if err != nil {
		return nil, err
	}
	return &followUp, nil
}

func (r *followUpRepository) FindByEnquiry(ctx context.Context, enquiryID uint) (*models.FollowUp, error) {
	var followUp models.FollowUp
	err := followUpDetails(r.db.WithContext(ctx)).
		Where("enquiry_id = ? AND is_deleted = ?", enquiryID, false).
		First(&followUp).Error
	if err != nil {
		return nil, err
	}
	return &followUp, nil
}

func (r *followUpRepository) ListByProject(ctx context.Context, projectID uint, query *ListQuery) ([]models.FollowUp, int64, error) {
	var followUps []models.FollowUp
	var total int64

	db := r.db.WithContext(ctx).Model(&models.FollowUp{}).
		Where("follow_ups.project_id = ? AND follow_ups.is_deleted = ?", projectID, false)

	if query.Search != "" {
		db = db.Joins("JOIN enquiries ON enquiries.id = follow_ups.enquiry_id").
			Joins("JOIN clients ON clients.id = enquiries.client_id").
			Where("LOWER(clients.client_name) LIKE ?", query.searchPattern())
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order(query.Order([]string{"next_date", "created_at"}, "follow_ups.next_date ASC"))
	err := followUpDetails(paginate(db, query)).Find(&followUps).Error
	return followUps, total, err
}

func (r *followUpRepository) ListDue(ctx context.Context, projectIDs []uint, from, to time.Time) ([]models.FollowUp, error) {
	var followUps []models.FollowUp
	db := r.db.WithContext(ctx).
		Joins("JOIN enquiries ON enquiries.id = follow_ups.enquiry_id").
		Where("follow_ups.is_deleted = ? AND enquiries.is_deleted = ?", false, false).
		Where("enquiries.status NOT IN ?", closedEnquiryStatuses).
		Where("follow_ups.next_date <= ?", to)
	if !from.IsZero() {
		db = db.Where("follow_ups.next_date >= ?", from)
	}
	if projectIDs != nil {
		db = db.Where("follow_ups.project_id IN ?", projectIDs)
	}
	err := followUpDetails(db).Order("follow_ups.next_date ASC, follow_ups.id ASC").Find(&followUps).Error
	return followUps, err
}

func (r *followUpRepository) ListNeedingReminder(ctx context.Context, day time.Time) ([]models.FollowUp, error) {
	var followUps []models.FollowUp
	err := followUpDetails(r.db.WithContext(ctx)).
		Joins("JOIN enquiries ON enquiries.id = follow_ups.enquiry_id").
		Where("follow_ups.is_deleted = ? AND enquiries.is_deleted = ?", false, false).
		Where("enquiries.status NOT IN ?", closedEnquiryStatuses).
		Where("follow_ups.next_date <= ?", day).
		Where("(follow_ups.last_reminded_on IS NULL OR follow_ups.last_reminded_on < ?)", day).
		Order("follow_ups.id ASC").
		Find(&followUps).Error
	return followUps, err
}

// UpdateNextDate moves the follow-up and clears the reminder marker so the
// new date is reminded about again
func (r *followUpRepository) UpdateNextDate(ctx context.Context, id uint, next time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.FollowUp{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"next_date": next, "last_reminded_on": nil}).Error
}

func (r *followUpRepository) MarkReminded(ctx context.Context, id uint, day time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.FollowUp{}).
		Where("id = ?", id).
		Update("last_reminded_on", day).Error
}

// Converted and cancelled leads need no more calls
var closedEnquiryStatuses = []string{models.EnquiryStatusBooked, models.EnquiryStatusCancelled}
