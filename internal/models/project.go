package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a real-estate project registered with MahaRERA
type Project struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	GUID           string    `gorm:"size:36;uniqueIndex;not null" json:"guid"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	ProjectCode    string    `gorm:"size:12;index;not null" json:"project_code"`
	Address        string    `gorm:"type:text" json:"address"`
	StartDate      time.Time `gorm:"type:date" json:"start_date"`
	CompletionDate time.Time `gorm:"type:date" json:"completion_date"`
	Status         string    `gorm:"size:20;default:UPCOMING;index" json:"status"`
	Progress       int       `gorm:"default:0" json:"progress"`
	IsDeleted      bool      `gorm:"default:false;index" json:"-"`
	CreatedBy      *uint     `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Associations
	Wings         []Wing         `gorm:"foreignKey:ProjectID" json:"wings,omitempty"`
	Banks         []BankInfo     `gorm:"foreignKey:ProjectID" json:"banks,omitempty"`
	Amenities     []Amenity      `gorm:"foreignKey:ProjectID" json:"amenities,omitempty"`
	Documents     []Document     `gorm:"foreignKey:ProjectID" json:"documents,omitempty"`
	Disbursements []Disbursement `gorm:"foreignKey:ProjectID" json:"disbursements,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// Project status constants
const (
	ProjectStatusUpcoming   = "UPCOMING"
	ProjectStatusInProgress = "IN_PROGRESS"
	ProjectStatusCompleted  = "COMPLETED"
)

// ValidProjectStatus reports whether status is a known project status
func ValidProjectStatus(status string) bool {
	switch status {
	case ProjectStatusUpcoming, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// BeforeCreate assigns the public GUID and default status
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.GUID == "" {
		p.GUID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = ProjectStatusUpcoming
	}
	return nil
}

// TotalUnits sums the derived unit counts of every loaded wing
func (p *Project) TotalUnits() int {
	total := 0
	for _, w := range p.Wings {
		total += w.NoOfProperties
	}
	return total
}

// ProjectResponse is the JSON response format for projects
type ProjectResponse struct {
	ID             uint                   `json:"id"`
	GUID           string                 `json:"guid"`
	Name           string                 `json:"name"`
	ProjectCode    string                 `json:"project_code"`
	Address        string                 `json:"address"`
	StartDate      string                 `json:"start_date"`
	CompletionDate string                 `json:"completion_date"`
	Status         string                 `json:"status"`
	Progress       int                    `json:"progress"`
	WingCount      int                    `json:"wing_count"`
	TotalUnits     int                    `json:"total_units"`
	Wings          []WingResponse         `json:"wings,omitempty"`
	Banks          []BankInfo             `json:"banks,omitempty"`
	Amenities      []Amenity              `json:"amenities,omitempty"`
	Documents      []Document             `json:"documents,omitempty"`
	Disbursements  []DisbursementResponse `json:"disbursements,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// ToResponse converts Project to ProjectResponse
func (p *Project) ToResponse() ProjectResponse {
	resp := ProjectResponse{
		ID:             p.ID,
		GUID:           p.GUID,
		Name:           p.Name,
		ProjectCode:    p.ProjectCode,
		Address:        p.Address,
		StartDate:      p.StartDate.Format(DateLayout),
		CompletionDate: p.CompletionDate.Format(DateLayout),
		Status:         p.Status,
		Progress:       p.Progress,
		WingCount:      len(p.Wings),
		TotalUnits:     p.TotalUnits(),
		Banks:          p.Banks,
		Amenities:      p.Amenities,
		Documents:      p.Documents,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	for i := range p.Wings {
		resp.Wings = append(resp.Wings, p.Wings[i].ToResponse())
	}
	for i := range p.Disbursements {
		resp.Disbursements = append(resp.Disbursements, p.Disbursements[i].ToResponse())
	}
	return resp
}

// DateLayout is the calendar date format used across the API
const DateLayout = "2006-01-02"
