package models

import (
	"time"
)

// FollowUp is the contact plan of one enquiry: when the client should be
// called next, plus the notes taken on every call so far.
type FollowUp struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	EnquiryID      uint       `gorm:"not null;uniqueIndex" json:"enquiry_id"`
	ProjectID      uint       `gorm:"not null;index" json:"project_id"`
	NextDate       time.Time  `gorm:"type:date;not null;index" json:"next_date"`
	Description    string     `gorm:"size:500" json:"description"`
	LastRemindedOn *time.Time `gorm:"type:date" json:"-"`
	IsDeleted      bool       `gorm:"default:false;index" json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Associations
	Enquiry *Enquiry       `gorm:"foreignKey:EnquiryID" json:"-"`
	Notes   []FollowUpNote `gorm:"foreignKey:FollowUpID" json:"-"`
}

// TableName specifies the table name for FollowUp
func (FollowUp) TableName() string {
	return "follow_ups"
}

// FollowUpNote is one timestamped entry on a follow-up
type FollowUpNote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowUpID uint      `gorm:"not null;index" json:"follow_up_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	NotedAt    time.Time `gorm:"not null" json:"noted_at"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	Tag        string    `gorm:"size:50" json:"tag"`
	IsDeleted  bool      `gorm:"default:false" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for FollowUpNote
func (FollowUpNote) TableName() string {
	return "follow_up_notes"
}

// FirstFollowUpDays is how long after an enquiry the first call is planned
const FirstFollowUpDays = 3

// LatestNote returns the most recent note, or nil when there is none. Notes
// taken at the same instant are ordered by their position.
func (f *FollowUp) LatestNote() *FollowUpNote {
	var latest *FollowUpNote
	for i := range f.Notes {
		if latest == nil || !f.Notes[i].NotedAt.Before(latest.NotedAt) {
			latest = &f.Notes[i]
		}
	}
	return latest
}

// FollowUpNoteResponse is the JSON response format for follow-up notes
type FollowUpNoteResponse struct {
	ID        uint      `json:"id"`
	NotedAt   time.Time `json:"noted_at"`
	Body      string    `json:"body"`
	Tag       string    `json:"tag"`
	AgentName string    `json:"agent_name"`
}

// FollowUpResponse is the JSON response format for follow-ups
type FollowUpResponse struct {
	ID           uint                   `json:"id"`
	EnquiryID    uint                   `json:"enquiry_id"`
	ProjectID    uint                   `json:"project_id"`
	NextDate     string                 `json:"next_date"`
	Description  string                 `json:"description"`
	ClientName   string                 `json:"client_name"`
	Email        string                 `json:"email"`
	MobileNumber string                 `json:"mobile_number"`
	AgentName    string                 `json:"agent_name,omitempty"`
	Notes        []FollowUpNoteResponse `json:"notes"`
}

// ToResponse converts FollowUp to FollowUpResponse. Notes are listed
// newest first.
func (f *FollowUp) ToResponse() FollowUpResponse {
	resp := FollowUpResponse{
		ID:          f.ID,
		EnquiryID:   f.EnquiryID,
		ProjectID:   f.ProjectID,
		NextDate:    f.NextDate.Format(DateLayout),
		Description: f.Description,
		Notes:       make([]FollowUpNoteResponse, 0, len(f.Notes)),
	}
	if f.Enquiry != nil && f.Enquiry.Client != nil {
		resp.ClientName = f.Enquiry.Client.ClientName
		resp.Email = f.Enquiry.Client.Email
		resp.MobileNumber = f.Enquiry.Client.MobileNumber
	}
	if latest := f.LatestNote(); latest != nil && latest.User != nil {
		resp.AgentName = latest.User.FullName
	}
	for i := len(f.Notes) - 1; i >= 0; i-- {
		n := f.Notes[i]
		note := FollowUpNoteResponse{ID: n.ID, NotedAt: n.NotedAt, Body: n.Body, Tag: n.Tag}
		if n.User != nil {
			note.AgentName = n.User.FullName
		}
		resp.Notes = append(resp.Notes, note)
	}
	return resp
}
