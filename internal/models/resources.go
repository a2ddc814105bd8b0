package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankInfo is an escrow or collection account attached to a project
type BankInfo struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProjectID     uint      `gorm:"not null;index" json:"project_id"`
	BankName      string    `gorm:"size:100;not null" json:"bank_name"`
	BranchName    string    `gorm:"size:100;not null" json:"branch_name"`
	ContactPerson string    `gorm:"size:100" json:"contact_person"`
	ContactNumber string    `gorm:"size:20" json:"contact_number"`
	IFSC          string    `gorm:"column:ifsc;size:11" json:"ifsc"`
	AccountNo     string    `gorm:"size:30;not null" json:"account_no"`
	AccountType   string    `gorm:"size:20;default:SAVINGS" json:"account_type"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for BankInfo
func (BankInfo) TableName() string {
	return "project_banks"
}

// Account type constants
const (
	AccountTypeSavings = "SAVINGS"
	AccountTypeCurrent = "CURRENT"
)

// Amenity is a project facility such as a gym or clubhouse
type Amenity struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   uint      `gorm:"not null;index" json:"project_id"`
	AmenityName string    `gorm:"size:100;not null" json:"amenity_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for Amenity
func (Amenity) TableName() string {
	return "project_amenities"
}

// Document is an uploaded project file
type Document struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProjectID     uint      `gorm:"not null;index" json:"project_id"`
	DocumentType  string    `gorm:"size:20;not null" json:"document_type"`
	DocumentTitle string    `gorm:"size:255;not null" json:"document_title"`
	Path          string    `gorm:"size:500;not null" json:"path"`
	ThumbnailPath string    `gorm:"size:500" json:"thumbnail_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for Document
func (Document) TableName() string {
	return "project_documents"
}

// Document type constants
const (
	DocumentTypeFloorPlan    = "FloorPlan"
	DocumentTypeBasementPlan = "BasementPlan"
	DocumentTypeLetterHead   = "LetterHead"
)

// ValidDocumentType reports whether t is a known document type
func ValidDocumentType(t string) bool {
	switch t {
	case DocumentTypeFloorPlan, DocumentTypeBasementPlan, DocumentTypeLetterHead:
		return true
	}
	return false
}

// Disbursement is one payment milestone. A project's milestones add up to 100%.
type Disbursement struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ProjectID   uint            `gorm:"not null;index" json:"project_id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Percentage  decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName specifies the table name for Disbursement
func (Disbursement) TableName() string {
	return "project_disbursements"
}

// DisbursementResponse is the JSON response format for disbursements
type DisbursementResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
}

// ToResponse converts Disbursement to DisbursementResponse
func (d *Disbursement) ToResponse() DisbursementResponse {
	return DisbursementResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Percentage:  d.Percentage.InexactFloat64(),
	}
}
