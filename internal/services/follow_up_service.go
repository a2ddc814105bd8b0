package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/pkg/logger"
	"gorm.io/gorm"
)

const (
	firstFollowUpNote = "First follow-up"
	maxTagLength      = 50
)

// FollowUpNoteInput records a call with the client and plans the next one
type FollowUpNoteInput struct {
	NextDate string `json:"next_date" example:"2026-11-02"`
	Body     string `json:"body"`
	Tag      string `json:"tag" example:"CALL"`
}

type FollowUpService struct {
	repos    *repository.Repositories
	notifier Notifier
	auditSvc *AuditService
	now      func() time.Time
}

func NewFollowUpService(repos *repository.Repositories, notifier Notifier, auditSvc *AuditService) *FollowUpService {
	return &FollowUpService{
		repos:    repos,
		notifier: notifier,
		auditSvc: auditSvc,
		now:      time.Now,
	}
}

// openFollowUp plans the first call on a new enquiry
func openFollowUp(ctx context.Context, tx *repository.Repositories, enquiry *models.Enquiry, userID uint, now time.Time) error {
	followUp := &models.FollowUp{
		EnquiryID:   enquiry.ID,
		ProjectID:   enquiry.ProjectID,
		NextDate:    dateOf(now).AddDate(0, 0, models.FirstFollowUpDays),
		Description: firstFollowUpNote,
	}
	if err := tx.FollowUp.Create(ctx, followUp); err != nil {
		return err
	}
	return tx.FollowUp.CreateNote(ctx, &models.FollowUpNote{
		FollowUpID: followUp.ID,
		UserID:     userID,
		NotedAt:    now,
		Body:       firstFollowUpNote,
		Tag:        "ENQUIRY",
	})
}

func (s *FollowUpService) FindByID(ctx context.Context, projectID, id uint) (*models.FollowUp, error) {
	followUp, err := s.repos.FollowUp.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if followUp.ProjectID != projectID {
		return nil, ErrNotFound
	}
	return followUp, nil
}

func (s *FollowUpService) ForEnquiry(ctx context.Context, projectID, enquiryID uint) (*models.FollowUp, error) {
	followUp, err := s.repos.FollowUp.FindByEnquiry(ctx, enquiryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if followUp.ProjectID != projectID {
		return nil, ErrNotFound
	}
	return followUp, nil
}

func (s *FollowUpService) ListByProject(ctx context.Context, projectID uint, query *repository.ListQuery) ([]models.FollowUp, int64, error) {
	return s.repos.FollowUp.ListByProject(ctx, projectID, query)
}

// AddNote logs a call and moves the follow-up to the next date, which has
// to lie in the future
func (s *FollowUpService) AddNote(ctx context.Context, projectID, id uint, in FollowUpNoteInput, actor Actor) (*models.FollowUp, error) {
	next, err := time.Parse(models.DateLayout, strings.TrimSpace(in.NextDate))
	if err != nil {
		return nil, apperrors.FieldValidation("next_date", "Please enter the next follow-up date")
	}
	if !next.After(s.today()) {
		return nil, apperrors.FieldValidation("next_date", "Next follow-up date must be in the future")
	}
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, apperrors.FieldValidation("body", "Please describe the conversation")
	}
	tag := strings.ToUpper(strings.TrimSpace(in.Tag))
	if tag == "" {
		return nil, apperrors.FieldValidation("tag", "Please select a tag")
	}
	if len(tag) > maxTagLength {
		return nil, apperrors.FieldValidation("tag", fmt.Sprintf("Tag cannot be longer than %d characters", maxTagLength))
	}

	followUp, err := s.FindByID(ctx, projectID, id)
	if err != nil {
		return nil, err
	}
	if followUp.Enquiry != nil && !followUp.Enquiry.MayConvert() {
		return nil, apperrors.Conflictf("Enquiry is already %s", strings.ToLower(followUp.Enquiry.Status))
	}

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.FollowUp.UpdateNextDate(ctx, followUp.ID, next); err != nil {
			return err
		}
		return tx.FollowUp.CreateNote(ctx, &models.FollowUpNote{
			FollowUpID: followUp.ID,
			UserID:     actor.UserID,
			NotedAt:    s.now(),
			Body:       body,
			Tag:        tag,
		})
	})
	if err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditUpdate, "FollowUp", followUp.ID,
		"next date "+next.Format(models.DateLayout), actor.IP, actor.UserAgent)
	return s.FindByID(ctx, projectID, id)
}

// Due lists the follow-ups planned between from and to, limited to the
// actor's projects for employees. An empty from lists everything overdue up
// to to, an empty to means today.
func (s *FollowUpService) Due(ctx context.Context, from, to string, actor Actor) ([]models.FollowUp, error) {
	var start, end time.Time
	var err error
	if from != "" {
		if start, err = time.Parse(models.DateLayout, from); err != nil {
			return nil, apperrors.FieldValidation("from_date", "Invalid from date")
		}
	}
	end = s.today()
	if to != "" {
		if end, err = time.Parse(models.DateLayout, to); err != nil {
			return nil, apperrors.FieldValidation("to_date", "Invalid to date")
		}
	}
	if !start.IsZero() && start.After(end) {
		return nil, apperrors.FieldValidation("from_date", "From date must be on or before to date")
	}

	var projectIDs []uint
	if !actor.IsAdmin() {
		user, err := s.repos.User.FindByID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		projectIDs = user.ProjectIDs()
	}
	return s.repos.FollowUp.ListDue(ctx, projectIDs, start, end)
}

// SendDueReminders notifies the agent behind every follow-up that is due
// today or overdue. Each follow-up is reminded about at most once a day.
func (s *FollowUpService) SendDueReminders(ctx context.Context) (int, error) {
	today := s.today()
	due, err := s.repos.FollowUp.ListNeedingReminder(ctx, today)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range due {
		followUp := &due[i]
		recipient := reminderRecipient(followUp)
		if recipient == 0 {
			logger.Warn("[FollowUp] No agent to remind", "follow_up_id", followUp.ID)
			continue
		}
		s.notifier.NotifySuccess(ctx, recipient, "Follow-up due", reminderMessage(followUp, today), models.NotificationTypeFollowUpDue)
		if err := s.repos.FollowUp.MarkReminded(ctx, followUp.ID, today); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

// reminderRecipient is whoever spoke to the client last, or the agent who
// took the enquiry
func reminderRecipient(f *models.FollowUp) uint {
	if latest := f.LatestNote(); latest != nil && latest.UserID != 0 {
		return latest.UserID
	}
	if f.Enquiry != nil {
		return f.Enquiry.CreatedBy
	}
	return 0
}

func reminderMessage(f *models.FollowUp, today time.Time) string {
	client := fmt.Sprintf("enquiry #%d", f.EnquiryID)
	if f.Enquiry != nil && f.Enquiry.Client != nil {
		client = f.Enquiry.Client.ClientName
	}
	if f.NextDate.Before(today) {
		return fmt.Sprintf("Follow-up with %s was due on %s", client, f.NextDate.Format(models.DateLayout))
	}
	return fmt.Sprintf("Follow-up with %s is due today", client)
}

func (s *FollowUpService) today() time.Time {
	return dateOf(s.now())
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
