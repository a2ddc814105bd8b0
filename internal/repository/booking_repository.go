package repository

import (
	"context"
	"fmt"

	"github.com/propease/propease-api/internal/models"
	"gorm.io/gorm"
)

// BookingRepository defines the interface for booking data access
type BookingRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindActiveByUnit(ctx context.Context, unitID uint) (*models.Booking, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	List(ctx context.Context, query *ListQuery) ([]models.Booking, int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Unit").
		Preload("Unit.Wing").
		Preload("Unit.Floor").
		Preload("Project").
		Where("is_deleted = ?", false).
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindActiveByUnit returns the one booking still holding the unit
func (r *bookingRepository) FindActiveByUnit(ctx context.Context, unitID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("unit_id = ? AND is_cancelled = ? AND is_deleted = ?", unitID, false, false).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIdempotencyKey(ctx context.Context, key string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("idempotency_key = ?", key).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	err := r.db.WithContext(ctx).
		Omit("Client", "Unit", "Project", "Enquiry").
		Create(booking).Error
	if err != nil {
		if isDuplicateKeyError(err, "idx_bookings_active_unit") || isDuplicateKeyError(err, "idx_bookings_idempotency_key") {
			return fmt.Errorf("%w: unit %d already has an active booking", ErrDuplicate, booking.UnitID)
		}
		return err
	}
	return nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).
		Omit("Client", "Unit", "Project", "Enquiry").
		Save(booking).Error
}

func (r *bookingRepository) List(ctx context.Context, query *ListQuery) ([]models.Booking, int64, error) {
	var bookings []models.Booking
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Booking{}).Where("bookings.is_deleted = ?", false)

	if val := query.Filters["project_id"]; val != "" {
		db = db.Where("bookings.project_id = ?", val)
	}
	if ids, ok := query.Filters["project_ids"]; ok {
		db = db.Where("bookings.project_id IN ?", parseIDList(ids))
	}
	if val := query.Filters["client_id"]; val != "" {
		db = db.Where("bookings.client_id = ?", val)
	}

	switch query.Filters["status"] {
	case "active":
		db = db.Where("bookings.is_cancelled = ? AND bookings.is_registered = ?", false, false)
	case "registered":
		db = db.Where("bookings.is_registered = ? AND bookings.is_cancelled = ?", true, false)
	case "cancelled":
		db = db.Where("bookings.is_cancelled = ?", true)
	}

	if query.Search != "" {
		search := query.searchPattern()
		db = db.Joins("JOIN clients ON clients.id = bookings.client_id").
			Joins("JOIN units ON units.id = bookings.unit_id").
			Where("LOWER(clients.client_name) LIKE ? OR LOWER(units.unit_number) LIKE ?", search, search)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order(query.Order([]string{"booking_date", "agreement_amount", "created_at"}, "bookings.created_at DESC"))
	err := paginate(db, query).
		Preload("Client").
		Preload("Unit").
		Find(&bookings).Error
	return bookings, total, err
}
