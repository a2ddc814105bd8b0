package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/jobs"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/internal/statemachine"
	"github.com/propease/propease-api/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookUnitRequest is everything needed to book one unit. Exactly one of
// ClientID and NewClient may be set; with neither, the enquiry's client is used.
type BookUnitRequest struct {
	ProjectID       uint             `json:"-"`
	UnitID          uint             `json:"unit_id"`
	ClientID        *uint            `json:"client_id"`
	NewClient       *ClientInput     `json:"new_client"`
	EnquiryID       *uint            `json:"enquiry_id"`
	BookingAmount   decimal.Decimal  `json:"booking_amount"`
	AgreementAmount decimal.Decimal  `json:"agreement_amount"`
	GSTPercentage   *decimal.Decimal `json:"gst_percentage"`
	BookingDate     string           `json:"booking_date"`
	ChequeNo        string           `json:"cheque_no"`
	ChequeDate      string           `json:"cheque_date"`
	IdempotencyKey  string           `json:"-"`
}

// RegisterRequest carries the registration details of a booked unit
type RegisterRequest struct {
	RegistrationNo   string `json:"registration_no"`
	RegistrationDate string `json:"registration_date"`
}

// bookingInput is a BookUnitRequest after validation
type bookingInput struct {
	gst         decimal.Decimal
	bookingDate time.Time
	chequeDate  *time.Time
}

type BookingService struct {
	repos    *repository.Repositories
	notifier Notifier
	emailSvc *EmailService
	auditSvc *AuditService
	worker   *jobs.Worker
	now      func() time.Time
}

func NewBookingService(
	repos *repository.Repositories,
	notifier Notifier,
	emailSvc *EmailService,
	auditSvc *AuditService,
	worker *jobs.Worker,
) *BookingService {
	return &BookingService{
		repos:    repos,
		notifier: notifier,
		emailSvc: emailSvc,
		auditSvc: auditSvc,
		worker:   worker,
		now:      time.Now,
	}
}

func (s *BookingService) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.repos.Booking.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return booking, err
}

func (s *BookingService) List(ctx context.Context, query *repository.ListQuery) ([]models.Booking, int64, error) {
	return s.repos.Booking.List(ctx, query)
}

// FindActiveByUnit returns the booking currently holding the unit
func (s *BookingService) FindActiveByUnit(ctx context.Context, projectID, unitID uint) (*models.Booking, error) {
	if _, err := s.unitInProject(ctx, s.repos, projectID, unitID, false); err != nil {
		return nil, err
	}
	booking, err := s.repos.Booking.FindActiveByUnit(ctx, unitID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.FindByID(ctx, booking.ID)
}

// MaxIdempotencyKeyLength matches the idempotency_key column
const MaxIdempotencyKeyLength = 64

// Book reserves a vacant unit for a client. The client (when new), the
// booking, the unit status and the linked enquiry are written in one
// transaction: either all of them land or none do.
func (s *BookingService) Book(ctx context.Context, req BookUnitRequest, actor Actor) (*models.Booking, error) {
	in, err := s.validateBooking(req)
	if err != nil {
		return nil, err
	}

	if req.IdempotencyKey != "" {
		if existing, err := s.replay(ctx, req); existing != nil || err != nil {
			return existing, err
		}
	}

	var booking *models.Booking
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		unit, err := s.unitInProject(ctx, tx, req.ProjectID, req.UnitID, true)
		if err != nil {
			return err
		}
		if err := statemachine.NewUnitFSM(unit).Book(ctx); err != nil {
			return err
		}

		var enquiry *models.Enquiry
		if req.EnquiryID != nil {
			enquiry, err = s.convertibleEnquiry(ctx, tx, req.ProjectID, *req.EnquiryID)
			if err != nil {
				return err
			}
		}

		clientID, err := s.resolveClient(ctx, tx, req, enquiry, actor)
		if err != nil {
			return err
		}

		booking = &models.Booking{
			ProjectID:       req.ProjectID,
			ClientID:        clientID,
			UnitID:          unit.ID,
			EnquiryID:       req.EnquiryID,
			BookingAmount:   req.BookingAmount,
			AgreementAmount: req.AgreementAmount,
			GSTPercentage:   in.gst,
			BookingDate:     in.bookingDate,
			ChequeNo:        strings.TrimSpace(req.ChequeNo),
			ChequeDate:      in.chequeDate,
			CreatedBy:       actor.UserID,
		}
		if req.IdempotencyKey != "" {
			key := req.IdempotencyKey
			booking.IdempotencyKey = &key
		}
		if err := tx.Booking.Create(ctx, booking); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return apperrors.Conflict("This unit already has an active booking")
			}
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if err := tx.Unit.UpdateStatus(ctx, unit.ID, unit.Status); err != nil {
			return fmt.Errorf("failed to update unit status: %w", err)
		}

		if enquiry != nil {
			if err := tx.Enquiry.UpdateStatus(ctx, enquiry.ID, models.EnquiryStatusBooked); err != nil {
				return fmt.Errorf("failed to update enquiry status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		// A concurrent request with the same key may have won the race
		if req.IdempotencyKey != "" && apperrors.IsConflict(err) {
			if existing, rerr := s.replay(ctx, req); existing != nil {
				return existing, nil
			} else if rerr != nil {
				err = rerr
			}
		}
		s.notifyFailure(ctx, actor, "Booking failed", err, models.NotificationTypeBookingFailed)
		return nil, err
	}

	booking, err = s.FindByID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("unit booked", "booking_id", booking.ID, "unit_id", booking.UnitID, "client_id", booking.ClientID, "user_id", actor.UserID)
	s.auditSvc.Log(ctx, actor.UserID, AuditBook, "Booking", booking.ID,
		fmt.Sprintf("unit %d booked for client %d", booking.UnitID, booking.ClientID), actor.IP, actor.UserAgent)
	s.notifier.NotifySuccess(ctx, actor.UserID, "Unit booked",
		fmt.Sprintf("Unit %s booked successfully", unitNumber(booking)), models.NotificationTypeUnitBooked)

	if booking.Client != nil && booking.Client.Email != "" {
		confirmation := booking
		s.worker.EnqueueAsync("booking-confirmation-email", func(ctx context.Context) error {
			return s.emailSvc.SendBookingConfirmation(ctx, confirmation)
		})
	}

	return booking, nil
}

// Register marks the active booking of a booked unit as registered and
// moves the unit to its terminal state
func (s *BookingService) Register(ctx context.Context, projectID, unitID uint, req RegisterRequest, actor Actor) (*models.Booking, error) {
	regDate := s.today()
	if d := strings.TrimSpace(req.RegistrationDate); d != "" {
		parsed, err := time.Parse(models.DateLayout, d)
		if err != nil {
			return nil, apperrors.FieldValidation("registration_date", "Invalid registration date")
		}
		regDate = parsed
	}

	var bookingID uint
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		unit, err := s.unitInProject(ctx, tx, projectID, unitID, true)
		if err != nil {
			return err
		}
		if err := statemachine.NewUnitFSM(unit).Register(ctx); err != nil {
			return err
		}

		booking, err := activeBooking(ctx, tx, unit.ID)
		if err != nil {
			return err
		}
		booking.IsRegistered = true
		booking.RegistrationNo = strings.TrimSpace(req.RegistrationNo)
		booking.RegistrationDate = &regDate
		if err := tx.Booking.Update(ctx, booking); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}
		bookingID = booking.ID

		if err := tx.Unit.UpdateStatus(ctx, unit.ID, unit.Status); err != nil {
			return fmt.Errorf("failed to update unit status: %w", err)
		}
		return nil
	})
	if err != nil {
		s.notifyFailure(ctx, actor, "Registration failed", err, models.NotificationTypeSystemError)
		return nil, err
	}

	booking, err := s.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, actor.UserID, AuditRegister, "Booking", booking.ID,
		fmt.Sprintf("unit %d registered", booking.UnitID), actor.IP, actor.UserAgent)
	s.notifier.NotifySuccess(ctx, actor.UserID, "Unit registered",
		fmt.Sprintf("Unit %s registered successfully", unitNumber(booking)), models.NotificationTypeBookingRegistered)
	return booking, nil
}

// Cancel releases a booked unit. The booking is kept and only flagged as
// cancelled; a linked enquiry is left as it is.
func (s *BookingService) Cancel(ctx context.Context, projectID, unitID uint, reason string, actor Actor) (*models.Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.FieldValidation("reason", "Please provide a cancellation reason")
	}

	var bookingID uint
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		unit, err := s.unitInProject(ctx, tx, projectID, unitID, true)
		if err != nil {
			return err
		}
		if err := statemachine.NewUnitFSM(unit).Cancel(ctx); err != nil {
			return err
		}

		booking, err := activeBooking(ctx, tx, unit.ID)
		if err != nil {
			return err
		}
		now := s.now()
		booking.IsCancelled = true
		booking.CancellationReason = reason
		booking.CancelledAt = &now
		if err := tx.Booking.Update(ctx, booking); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}
		bookingID = booking.ID

		if err := tx.Unit.UpdateStatus(ctx, unit.ID, unit.Status); err != nil {
			return fmt.Errorf("failed to update unit status: %w", err)
		}
		return nil
	})
	if err != nil {
		s.notifyFailure(ctx, actor, "Cancellation failed", err, models.NotificationTypeSystemError)
		return nil, err
	}

	booking, err := s.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, actor.UserID, AuditCancel, "Booking", booking.ID, reason, actor.IP, actor.UserAgent)
	s.notifier.NotifySuccess(ctx, actor.UserID, "Booking cancelled",
		fmt.Sprintf("Booking for unit %s cancelled", unitNumber(booking)), models.NotificationTypeBookingCancelled)
	return booking, nil
}

func (s *BookingService) validateBooking(req BookUnitRequest) (bookingInput, error) {
	var in bookingInput

	if req.ClientID != nil && req.NewClient != nil {
		return in, apperrors.FieldValidation("client_id", "Select an existing client or create a new one, not both")
	}
	if req.ClientID == nil && req.NewClient == nil && req.EnquiryID == nil {
		return in, apperrors.FieldValidation("client_id", "Please select or create a client")
	}
	if req.NewClient != nil {
		if err := ValidateClientInput(*req.NewClient); err != nil {
			return in, err
		}
	}
	if req.UnitID == 0 {
		return in, apperrors.FieldValidation("unit_id", "Please select a flat")
	}
	if len(req.IdempotencyKey) > MaxIdempotencyKeyLength {
		return in, apperrors.FieldValidation("idempotency_key",
			fmt.Sprintf("Idempotency key cannot be longer than %d characters", MaxIdempotencyKeyLength))
	}
	if !req.BookingAmount.IsPositive() || !req.AgreementAmount.IsPositive() {
		return in, apperrors.FieldValidation("booking_amount", "Please fill booking and agreement amounts")
	}

	in.gst = models.DefaultGSTPercentage
	if req.GSTPercentage != nil {
		if req.GSTPercentage.IsNegative() {
			return in, apperrors.FieldValidation("gst_percentage", "GST percentage cannot be negative")
		}
		in.gst = *req.GSTPercentage
	}

	in.bookingDate = s.today()
	if d := strings.TrimSpace(req.BookingDate); d != "" {
		parsed, err := time.Parse(models.DateLayout, d)
		if err != nil {
			return in, apperrors.FieldValidation("booking_date", "Invalid booking date")
		}
		in.bookingDate = parsed
	}
	if d := strings.TrimSpace(req.ChequeDate); d != "" {
		parsed, err := time.Parse(models.DateLayout, d)
		if err != nil {
			return in, apperrors.FieldValidation("cheque_date", "Invalid cheque date")
		}
		in.chequeDate = &parsed
	}
	return in, nil
}

// replay returns the booking already created with the request's key, or
// nil when the key is unused
func (s *BookingService) replay(ctx context.Context, req BookUnitRequest) (*models.Booking, error) {
	existing, err := s.repos.Booking.FindByIdempotencyKey(ctx, req.IdempotencyKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if existing.UnitID != req.UnitID || existing.ProjectID != req.ProjectID {
		return nil, apperrors.Conflict("Idempotency-Key was already used for a different unit")
	}
	logger.Debug("replaying booking for idempotency key", "booking_id", existing.ID)
	return s.FindByID(ctx, existing.ID)
}

// unitInProject loads a unit, optionally locking its row, and hides units
// that belong to a different project
func (s *BookingService) unitInProject(ctx context.Context, repos *repository.Repositories, projectID, unitID uint, lock bool) (*models.Unit, error) {
	var unit *models.Unit
	var err error
	if lock {
		unit, err = repos.Unit.FindByIDForUpdate(ctx, unitID)
	} else {
		unit, err = repos.Unit.FindByID(ctx, unitID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("unit %d: %w", unitID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if unit.ProjectID != projectID {
		return nil, fmt.Errorf("unit %d: %w", unitID, ErrNotFound)
	}
	return unit, nil
}

func (s *BookingService) convertibleEnquiry(ctx context.Context, tx *repository.Repositories, projectID, enquiryID uint) (*models.Enquiry, error) {
	enquiry, err := tx.Enquiry.FindByID(ctx, enquiryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("enquiry %d: %w", enquiryID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if enquiry.ProjectID != projectID {
		return nil, apperrors.Conflict("Enquiry belongs to a different project")
	}
	if !enquiry.MayConvert() {
		return nil, apperrors.Conflictf("Enquiry is already %s", strings.ToLower(enquiry.Status))
	}
	return enquiry, nil
}

// resolveClient returns the id of the booking's client, creating it from the
// new-client draft when one was given
func (s *BookingService) resolveClient(ctx context.Context, tx *repository.Repositories, req BookUnitRequest, enquiry *models.Enquiry, actor Actor) (uint, error) {
	var clientID uint
	switch {
	case req.NewClient != nil:
		client := req.NewClient.toModel(actor.UserID)
		if err := tx.Client.Create(ctx, client); err != nil {
			return 0, fmt.Errorf("failed to create client: %w", err)
		}
		clientID = client.ID
	case req.ClientID != nil:
		if _, err := tx.Client.FindByID(ctx, *req.ClientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fmt.Errorf("client %d: %w", *req.ClientID, ErrNotFound)
			}
			return 0, err
		}
		clientID = *req.ClientID
	default:
		clientID = enquiry.ClientID
	}

	if enquiry != nil && req.NewClient == nil && enquiry.ClientID != clientID {
		return 0, apperrors.Conflict("Enquiry belongs to a different client")
	}
	return clientID, nil
}

func activeBooking(ctx context.Context, tx *repository.Repositories, unitID uint) (*models.Booking, error) {
	booking, err := tx.Booking.FindActiveByUnit(ctx, unitID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Conflict("No booking found for this unit")
	}
	return booking, err
}

func (s *BookingService) notifyFailure(ctx context.Context, actor Actor, title string, err error, notifType string) {
	s.notifier.NotifyError(ctx, actor.UserID, title, failureMessage(title, actor, err), notifType)
}

func (s *BookingService) today() time.Time {
	return dateOf(s.now())
}

func unitNumber(b *models.Booking) string {
	if b.Unit != nil {
		return b.Unit.UnitNumber
	}
	return fmt.Sprintf("#%d", b.UnitID)
}
