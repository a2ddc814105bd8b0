package services

import (
	"context"
	"errors"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/jobs"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/internal/statemachine"
	"github.com/propease/propease-api/pkg/logger"
)

// Notifier is the sink for user-facing success and error messages. Calls
// never block the caller and never fail it.
type Notifier interface {
	NotifySuccess(ctx context.Context, userID uint, title, message, notifType string)
	NotifyError(ctx context.Context, userID uint, title, message, notifType string)
}

type NotificationService struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
	worker   *jobs.Worker
}

func NewNotificationService(repo repository.NotificationRepository, userRepo repository.UserRepository, worker *jobs.Worker) *NotificationService {
	return &NotificationService{repo: repo, userRepo: userRepo, worker: worker}
}

func (s *NotificationService) FindByID(ctx context.Context, id uint) (*models.Notification, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NotificationService) FindByUser(ctx context.Context, userID uint, query *repository.ListQuery) ([]models.Notification, int64, error) {
	return s.repo.FindByUser(ctx, userID, query)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkAsRead marks one of the user's notifications as read
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id uint) error {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return ErrNotFound
	}
	notification.MarkAsRead()
	return s.repo.Update(ctx, notification)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uint) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

// Delete removes one of the user's notifications
func (s *NotificationService) Delete(ctx context.Context, userID, id uint) error {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *NotificationService) NotifySuccess(ctx context.Context, userID uint, title, message, notifType string) {
	s.push(userID, models.NotificationLevelSuccess, title, message, notifType)
}

func (s *NotificationService) NotifyError(ctx context.Context, userID uint, title, message, notifType string) {
	s.push(userID, models.NotificationLevelError, title, message, notifType)
}

// NotifyAdmins stores a notification for every active admin
func (s *NotificationService) NotifyAdmins(ctx context.Context, title, message, notifType string) error {
	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		s.push(admin.ID, models.NotificationLevelSuccess, title, message, notifType)
	}
	return nil
}

// push stores the notification on the worker pool
func (s *NotificationService) push(userID uint, level, title, message, notifType string) {
	if userID == 0 {
		return
	}
	notification := &models.Notification{
		UserID:           userID,
		Level:            level,
		Title:            title,
		Message:          message,
		NotificationType: &notifType,
	}
	s.worker.EnqueueAsync("notification", func(ctx context.Context) error {
		if err := s.repo.Create(ctx, notification); err != nil {
			logger.Warn("failed to store notification", "user_id", userID, "type", notifType, "error", err)
			return err
		}
		return nil
	})
}

// failureMessage is what the user is told about err. Errors that are not
// the user's doing get a generic message and are logged.
func failureMessage(title string, actor Actor, err error) string {
	if apperrors.IsValidation(err) || apperrors.IsConflict(err) || errors.Is(err, statemachine.ErrInvalidTransition) {
		return err.Error()
	}
	if !errors.Is(err, ErrNotFound) {
		logger.Error(title, "user_id", actor.UserID, "error", err)
	}
	return "Something went wrong, please try again"
}
