package models

import (
	"time"
)

// AuditLog represents a system audit entry
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Action    string    `gorm:"size:50;not null" json:"action"` // CREATE, UPDATE, DELETE, BOOK, REGISTER, CANCEL
	Entity    string    `gorm:"size:50;not null;index:idx_audit_entity" json:"entity"`
	EntityID  uint      `gorm:"index:idx_audit_entity" json:"entity_id"`
	Details   string    `gorm:"type:text" json:"details"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	UserAgent string    `gorm:"size:255" json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&User{},
		&Project{},
		&Wing{},
		&Floor{},
		&Unit{},
		&Client{},
		&Enquiry{},
		&FollowUp{},
		&FollowUpNote{},
		&Booking{},
		&BankInfo{},
		&Amenity{},
		&Document{},
		&Disbursement{},
		&Notification{},
		&RefreshToken{},
		&AuditLog{},
	}
}
