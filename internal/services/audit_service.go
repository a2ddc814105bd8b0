package services

import (
	"context"

	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/pkg/logger"
	"gorm.io/gorm"
)

// Audit actions
const (
	AuditCreate   = "CREATE"
	AuditUpdate   = "UPDATE"
	AuditDelete   = "DELETE"
	AuditBook     = "BOOK"
	AuditRegister = "REGISTER"
	AuditCancel   = "CANCEL"
	AuditAssign   = "ASSIGN"
)

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Log records an audit entry. Failures are logged and otherwise ignored so
// an audit hiccup never undoes a committed change.
func (s *AuditService) Log(ctx context.Context, userID uint, action, entity string, entityID uint, details, ip, userAgent string) {
	entry := &models.AuditLog{
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Warn("failed to write audit log", "action", action, "entity", entity, "entity_id", entityID, "error", err)
	}
}

// List retrieves audit logs, optionally for one entity type
func (s *AuditService) List(ctx context.Context, entity string, limit, offset int) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	db := s.db.WithContext(ctx).Model(&models.AuditLog{})
	if entity != "" {
		db = db.Where("entity = ?", entity)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at desc").Limit(limit).Offset(offset).Find(&logs).Error
	return logs, total, err
}
