package models

import (
	"sort"
	"strings"
	"time"
)

// Wing is a building block of a project. NoOfProperties is always derived
// from the committed floors and never taken from user input.
type Wing struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ProjectID      uint      `gorm:"not null;index" json:"project_id"`
	WingName       string    `gorm:"size:100;not null" json:"wing_name"`
	NoOfFloors     int       `gorm:"default:0" json:"no_of_floors"`
	NoOfProperties int       `gorm:"default:0" json:"no_of_properties"`
	IsDeleted      bool      `gorm:"default:false;index" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Associations
	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
	Floors  []Floor  `gorm:"foreignKey:WingID" json:"floors,omitempty"`
	Units   []Unit   `gorm:"foreignKey:WingID" json:"units,omitempty"`
}

// TableName specifies the table name for Wing
func (Wing) TableName() string {
	return "wings"
}

// Floor describes one level of a wing and how many units it holds
type Floor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WingID       uint      `gorm:"not null;index" json:"wing_id"`
	ProjectID    uint      `gorm:"not null;index" json:"project_id"`
	FloorNo      int       `gorm:"not null" json:"floor_no"`
	FloorName    string    `gorm:"size:100;not null" json:"floor_name"`
	PropertyType string    `gorm:"size:20;not null" json:"property_type"`
	Property     string    `gorm:"size:50" json:"property"`
	Area         float64   `gorm:"type:decimal(12,2);default:0" json:"area"`
	Quantity     int       `gorm:"default:0" json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for Floor
func (Floor) TableName() string {
	return "floors"
}

// Property type constants
const (
	PropertyTypeResidential = "Residential"
	PropertyTypeCommercial  = "Commercial"
	PropertyTypeIndustrial  = "Industrial"
)

// ValidPropertyType reports whether t is a known floor property type
func ValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeResidential, PropertyTypeCommercial, PropertyTypeIndustrial:
		return true
	}
	return false
}

// SortFloors orders floors with the ground floor first, then by floor number.
func SortFloors(floors []Floor) {
	sort.SliceStable(floors, func(i, j int) bool {
		gi := strings.Contains(strings.ToLower(floors[i].FloorName), "ground")
		gj := strings.Contains(strings.ToLower(floors[j].FloorName), "ground")
		if gi != gj {
			return gi
		}
		return floors[i].FloorNo < floors[j].FloorNo
	})
}

// WingResponse is the JSON response format for wings
type WingResponse struct {
	ID             uint           `json:"id"`
	ProjectID      uint           `json:"project_id"`
	WingName       string         `json:"wing_name"`
	NoOfFloors     int            `json:"no_of_floors"`
	NoOfProperties int            `json:"no_of_properties"`
	Floors         []Floor        `json:"floors"`
	Units          []UnitResponse `json:"units,omitempty"`
}

// ToResponse converts Wing to WingResponse
func (w *Wing) ToResponse() WingResponse {
	floors := make([]Floor, len(w.Floors))
	copy(floors, w.Floors)
	SortFloors(floors)

	resp := WingResponse{
		ID:             w.ID,
		ProjectID:      w.ProjectID,
		WingName:       w.WingName,
		NoOfFloors:     w.NoOfFloors,
		NoOfProperties: w.NoOfProperties,
		Floors:         floors,
	}
	for i := range w.Units {
		resp.Units = append(resp.Units, w.Units[i].ToResponse())
	}
	return resp
}
