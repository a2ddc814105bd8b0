package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking records the sale of a unit to a client. At most one booking per
// unit may be active (neither cancelled nor deleted); the partial unique
// index on unit_id enforces it in the database.
type Booking struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	ProjectID          uint            `gorm:"not null;index" json:"project_id"`
	ClientID           uint            `gorm:"not null;index" json:"client_id"`
	UnitID             uint            `gorm:"not null;uniqueIndex:idx_bookings_active_unit,where:is_cancelled = false AND is_deleted = false" json:"unit_id"`
	EnquiryID          *uint           `gorm:"index" json:"enquiry_id"`
	BookingAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"booking_amount"`
	AgreementAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"agreement_amount"`
	GSTPercentage      decimal.Decimal `gorm:"column:gst_percentage;type:decimal(5,2);not null" json:"gst_percentage"`
	BookingDate        time.Time       `gorm:"type:date" json:"booking_date"`
	ChequeNo           string          `gorm:"size:50" json:"cheque_no"`
	ChequeDate         *time.Time      `gorm:"type:date" json:"cheque_date"`
	IsRegistered       bool            `gorm:"default:false" json:"is_registered"`
	RegistrationNo     string          `gorm:"size:50" json:"registration_no"`
	RegistrationDate   *time.Time      `gorm:"type:date" json:"registration_date"`
	IsCancelled        bool            `gorm:"default:false" json:"is_cancelled"`
	CancellationReason string          `gorm:"type:text" json:"cancellation_reason"`
	CancelledAt        *time.Time      `json:"cancelled_at"`
	IsDeleted          bool            `gorm:"default:false" json:"-"`
	IdempotencyKey     *string         `gorm:"size:64;uniqueIndex" json:"-"`
	CreatedBy          uint            `gorm:"index" json:"created_by"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`

	// Associations
	Client  *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Unit    *Unit    `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Enquiry *Enquiry `gorm:"foreignKey:EnquiryID" json:"-"`
}

// TableName specifies the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// DefaultGSTPercentage is applied when a booking request carries no GST rate
var DefaultGSTPercentage = decimal.NewFromInt(18)

// IsActive reports whether the booking still holds its unit
func (b *Booking) IsActive() bool {
	return !b.IsCancelled && !b.IsDeleted
}

// GSTAmount is the tax on the agreement value. It is never persisted.
func (b *Booking) GSTAmount() decimal.Decimal {
	return GSTAmount(b.AgreementAmount, b.GSTPercentage)
}

// GSTAmount returns agreement * percentage / 100 rounded to paise
func GSTAmount(agreement, percentage decimal.Decimal) decimal.Decimal {
	return agreement.Mul(percentage).Div(decimal.NewFromInt(100)).Round(2)
}

// BookingResponse is the JSON response format for bookings
type BookingResponse struct {
	ID                 uint            `json:"id"`
	ProjectID          uint            `json:"project_id"`
	ClientID           uint            `json:"client_id"`
	UnitID             uint            `json:"unit_id"`
	EnquiryID          *uint           `json:"enquiry_id"`
	BookingAmount      decimal.Decimal `json:"booking_amount"`
	AgreementAmount    decimal.Decimal `json:"agreement_amount"`
	GSTPercentage      decimal.Decimal `json:"gst_percentage"`
	GSTAmount          decimal.Decimal `json:"gst_amount"`
	BookingDate        string          `json:"booking_date"`
	ChequeNo           string          `json:"cheque_no"`
	IsRegistered       bool            `json:"is_registered"`
	RegistrationNo     string          `json:"registration_no"`
	RegistrationDate   *time.Time      `json:"registration_date"`
	IsCancelled        bool            `json:"is_cancelled"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	ClientName         string          `json:"client_name,omitempty"`
	UnitNumber         string          `json:"unit_number,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ToResponse converts Booking to BookingResponse
func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		ProjectID:          b.ProjectID,
		ClientID:           b.ClientID,
		UnitID:             b.UnitID,
		EnquiryID:          b.EnquiryID,
		BookingAmount:      b.BookingAmount,
		AgreementAmount:    b.AgreementAmount,
		GSTPercentage:      b.GSTPercentage,
		GSTAmount:          b.GSTAmount(),
		BookingDate:        b.BookingDate.Format(DateLayout),
		ChequeNo:           b.ChequeNo,
		IsRegistered:       b.IsRegistered,
		RegistrationNo:     b.RegistrationNo,
		RegistrationDate:   b.RegistrationDate,
		IsCancelled:        b.IsCancelled,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
	}
	if b.Client != nil {
		resp.ClientName = b.Client.ClientName
	}
	if b.Unit != nil {
		resp.UnitNumber = b.Unit.UnitNumber
	}
	return resp
}
