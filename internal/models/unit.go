package models

import (
	"time"
)

// Unit is a single sellable flat or shop inside a wing
type Unit struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"not null;index" json:"project_id"`
	WingID       uint      `gorm:"not null;index" json:"wing_id"`
	FloorID      uint      `gorm:"not null;index" json:"floor_id"`
	UnitNumber   string    `gorm:"size:30;not null" json:"unit_number"`
	PropertyType string    `gorm:"size:20" json:"property_type"`
	BHK          string    `gorm:"column:bhk;size:50" json:"bhk"`
	Area         float64   `gorm:"type:decimal(12,2);default:0" json:"area"`
	Status       string    `gorm:"size:20;default:VACANT;index" json:"status"`
	IsDeleted    bool      `gorm:"default:false;index" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Associations
	Wing  *Wing  `gorm:"foreignKey:WingID" json:"wing,omitempty"`
	Floor *Floor `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
}

// TableName specifies the table name for Unit
func (Unit) TableName() string {
	return "units"
}

// Unit status constants
const (
	UnitStatusVacant     = "VACANT"
	UnitStatusBooked     = "BOOKED"
	UnitStatusRegistered = "REGISTERED"
)

// MayBook checks if the unit can receive a booking
func (u *Unit) MayBook() bool {
	return u.Status == UnitStatusVacant
}

// MayRegister checks if the unit's booking can be registered
func (u *Unit) MayRegister() bool {
	return u.Status == UnitStatusBooked
}

// MayCancel checks if the unit's booking can be cancelled
func (u *Unit) MayCancel() bool {
	return u.Status == UnitStatusBooked
}

// UnitResponse is the JSON response format for units
type UnitResponse struct {
	ID           uint    `json:"id"`
	ProjectID    uint    `json:"project_id"`
	WingID       uint    `json:"wing_id"`
	FloorID      uint    `json:"floor_id"`
	UnitNumber   string  `json:"unit_number"`
	PropertyType string  `json:"property_type"`
	BHK          string  `json:"bhk"`
	Area         float64 `json:"area"`
	Status       string  `json:"status"`
	WingName     string  `json:"wing_name,omitempty"`
	FloorName    string  `json:"floor_name,omitempty"`
}

// ToResponse converts Unit to UnitResponse
func (u *Unit) ToResponse() UnitResponse {
	resp := UnitResponse{
		ID:           u.ID,
		ProjectID:    u.ProjectID,
		WingID:       u.WingID,
		FloorID:      u.FloorID,
		UnitNumber:   u.UnitNumber,
		PropertyType: u.PropertyType,
		BHK:          u.BHK,
		Area:         u.Area,
		Status:       u.Status,
	}
	if u.Wing != nil {
		resp.WingName = u.Wing.WingName
	}
	if u.Floor != nil {
		resp.FloorName = u.Floor.FloorName
	}
	return resp
}
