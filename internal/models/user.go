package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff account. Employees work only on the projects assigned to them.
type User struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	EncryptedPassword string     `gorm:"column:encrypted_password;not null" json:"-"`
	FullName          string     `gorm:"size:255;not null" json:"full_name"`
	Phone             string     `gorm:"size:20" json:"phone"`
	Role              string     `gorm:"size:20;default:EMPLOYEE" json:"role"`
	Status            string     `gorm:"size:20;default:active" json:"status"`
	DiscardedAt       *time.Time `gorm:"index" json:"-"`
	CreatedBy         *uint      `json:"created_by"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Associations
	Projects      []Project      `gorm:"many2many:user_projects" json:"projects,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"notifications,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook for setting defaults
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleEmployee
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	return nil
}

// IsAdmin returns true if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive returns true if user status is active
func (u *User) IsActive() bool {
	return u.Status == StatusActive && u.DiscardedAt == nil
}

// ProjectIDs returns the ids of the loaded project assignments
func (u *User) ProjectIDs() []uint {
	ids := make([]uint, 0, len(u.Projects))
	for _, p := range u.Projects {
		ids = append(ids, p.ID)
	}
	return ids
}

// Role constants
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// ValidRole reports whether role is a known user role
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

// Status constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// UserResponse is the JSON response format for users
type UserResponse struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	ProjectIDs []uint    `json:"project_ids"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Phone:      u.Phone,
		Role:       u.Role,
		Status:     u.Status,
		ProjectIDs: u.ProjectIDs(),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
