package services

import "github.com/propease/propease-api/internal/models"

// Actor is the authenticated user a service call is made on behalf of.
// IP and UserAgent only feed the audit log.
type Actor struct {
	UserID    uint
	Role      string
	IP        string
	UserAgent string
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
