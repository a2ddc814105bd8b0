package models

import (
	"time"
)

// Client is a prospective or confirmed buyer
type Client struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ClientName   string    `gorm:"size:255;not null" json:"client_name"`
	Email        string    `gorm:"size:255;index" json:"email"`
	MobileNumber string    `gorm:"size:10;index" json:"mobile_number"`
	City         string    `gorm:"size:100" json:"city"`
	Address      string    `gorm:"type:text" json:"address"`
	Occupation   string    `gorm:"size:100" json:"occupation"`
	Company      string    `gorm:"size:255" json:"company"`
	PanNo        *string   `gorm:"size:10" json:"pan_no"`
	AadharNo     *string   `gorm:"size:12" json:"aadhar_no"`
	IsDeleted    bool      `gorm:"default:false;index" json:"-"`
	CreatedBy    uint      `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clients"
}

// Enquiry tracks a client's interest in a project
type Enquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	UnitID    *uint     `gorm:"index" json:"unit_id"`
	Budget    string    `gorm:"size:50" json:"budget"`
	Status    string    `gorm:"size:20;default:ONGOING;index" json:"status"`
	Remark    string    `gorm:"type:text" json:"remark"`
	IsDeleted bool      `gorm:"default:false;index" json:"-"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Client  *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
}

// TableName specifies the table name for Enquiry
func (Enquiry) TableName() string {
	return "enquiries"
}

// Enquiry status constants. BOOKED marks an enquiry converted into a booking.
const (
	EnquiryStatusOngoing   = "ONGOING"
	EnquiryStatusCancelled = "CANCELLED"
	EnquiryStatusBooked    = "BOOKED"
	EnquiryStatusHotLead   = "HOT_LEAD"
	EnquiryStatusWarmLead  = "WARM_LEAD"
	EnquiryStatusColdLead  = "COLD_LEAD"
)

// ValidEnquiryStatus reports whether status is a known enquiry status
func ValidEnquiryStatus(status string) bool {
	switch status {
	case EnquiryStatusOngoing, EnquiryStatusCancelled, EnquiryStatusBooked,
		EnquiryStatusHotLead, EnquiryStatusWarmLead, EnquiryStatusColdLead:
		return true
	}
	return false
}

// MayConvert checks if the enquiry can still turn into a booking
func (e *Enquiry) MayConvert() bool {
	return e.Status != EnquiryStatusBooked && e.Status != EnquiryStatusCancelled && !e.IsDeleted
}
