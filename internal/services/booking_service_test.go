package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/statemachine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService(env *testEnv) *BookingService {
	return NewBookingService(env.repos, env.notifier, env.email, env.audit, env.worker)
}

func bookRequest(projectID, unitID, clientID uint) BookUnitRequest {
	gst := decimal.NewFromInt(18)
	return BookUnitRequest{
		ProjectID:       projectID,
		UnitID:          unitID,
		ClientID:        &clientID,
		BookingAmount:   decimal.NewFromInt(500000),
		AgreementAmount: decimal.NewFromInt(5000000),
		GSTPercentage:   &gst,
		BookingDate:     "2024-03-01",
		ChequeNo:        "000123",
	}
}

func TestBookingService_Book_VacantUnit(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 0, 2)
	client := env.seedClient(t, "Asha Patil")
	enquiry := &models.Enquiry{ClientID: client.ID, ProjectID: project.ID, Status: models.EnquiryStatusHotLead}
	require.NoError(t, env.repos.Enquiry.Create(context.Background(), enquiry))

	booking, err := svc.Book(context.Background(), bookRequest(project.ID, units[0].ID, client.ID), testActor)
	require.NoError(t, err)

	assert.Equal(t, models.UnitStatusBooked, env.unitStatus(t, units[0].ID))
	assert.Equal(t, models.UnitStatusVacant, env.unitStatus(t, units[1].ID))
	assert.True(t, booking.BookingAmount.Equal(decimal.NewFromInt(500000)))
	assert.True(t, booking.AgreementAmount.Equal(decimal.NewFromInt(5000000)))
	assert.True(t, booking.GSTPercentage.Equal(decimal.NewFromInt(18)))
	assert.True(t, booking.GSTAmount().Equal(decimal.NewFromInt(900000)))
	assert.False(t, booking.IsCancelled)
	assert.False(t, booking.IsRegistered)
	assert.Nil(t, booking.EnquiryID)
	assert.Equal(t, int64(1), env.count(t, &models.Booking{}, "unit_id = ?", units[0].ID))

	// no enquiry was linked, so none was touched
	stored, err := env.repos.Enquiry.FindByID(context.Background(), enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusHotLead, stored.Status)

	assert.Equal(t, models.NotificationLevelSuccess, env.notifier.last().Level)
	assert.Equal(t, models.NotificationTypeUnitBooked, env.notifier.last().Type)
}

func TestBookingService_Book_ConvertsEnquiry(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")
	enquiry := &models.Enquiry{ClientID: client.ID, ProjectID: project.ID, Status: models.EnquiryStatusOngoing}
	require.NoError(t, env.repos.Enquiry.Create(context.Background(), enquiry))

	req := bookRequest(project.ID, units[0].ID, client.ID)
	req.EnquiryID = &enquiry.ID
	booking, err := svc.Book(context.Background(), req, testActor)
	require.NoError(t, err)
	require.NotNil(t, booking.EnquiryID)
	assert.Equal(t, enquiry.ID, *booking.EnquiryID)

	stored, err := env.repos.Enquiry.FindByID(context.Background(), enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusBooked, stored.Status)
}

func TestBookingService_Book_ClientFromEnquiry(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")
	enquiry := &models.Enquiry{ClientID: client.ID, ProjectID: project.ID, Status: models.EnquiryStatusWarmLead}
	require.NoError(t, env.repos.Enquiry.Create(context.Background(), enquiry))

	req := bookRequest(project.ID, units[0].ID, 0)
	req.ClientID = nil
	req.EnquiryID = &enquiry.ID
	booking, err := svc.Book(context.Background(), req, testActor)
	require.NoError(t, err)
	assert.Equal(t, client.ID, booking.ClientID)
}

func TestBookingService_Book_NewClient(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)

	req := bookRequest(project.ID, units[0].ID, 0)
	req.ClientID = nil
	req.NewClient = &ClientInput{ClientName: "Ravi Kumar", MobileNumber: "9123456780", Email: "Ravi@Example.com"}
	booking, err := svc.Book(context.Background(), req, testActor)
	require.NoError(t, err)

	require.NotNil(t, booking.Client)
	assert.Equal(t, "Ravi Kumar", booking.Client.ClientName)
	assert.Equal(t, "ravi@example.com", booking.Client.Email)
}

func TestBookingService_Book_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")

	tests := []struct {
		name    string
		mutate  func(r *BookUnitRequest)
		message string
	}{
		{
			name:    "no client",
			mutate:  func(r *BookUnitRequest) { r.ClientID = nil },
			message: "Please select or create a client",
		},
		{
			name:    "no unit",
			mutate:  func(r *BookUnitRequest) { r.UnitID = 0 },
			message: "Please select a flat",
		},
		{
			name:    "zero booking amount",
			mutate:  func(r *BookUnitRequest) { r.BookingAmount = decimal.Zero },
			message: "Please fill booking and agreement amounts",
		},
		{
			name:    "negative agreement amount",
			mutate:  func(r *BookUnitRequest) { r.AgreementAmount = decimal.NewFromInt(-1) },
			message: "Please fill booking and agreement amounts",
		},
		{
			name: "negative gst",
			mutate: func(r *BookUnitRequest) {
				gst := decimal.NewFromInt(-5)
				r.GSTPercentage = &gst
			},
			message: "GST percentage cannot be negative",
		},
		{
			name: "invalid new client mobile",
			mutate: func(r *BookUnitRequest) {
				r.ClientID = nil
				r.NewClient = &ClientInput{ClientName: "Ravi", MobileNumber: "12345", Email: "ravi@example.com"}
			},
			message: "Mobile number must be 10 digits",
		},
		{
			name: "invalid new client email",
			mutate: func(r *BookUnitRequest) {
				r.ClientID = nil
				r.NewClient = &ClientInput{ClientName: "Ravi", MobileNumber: "9123456780", Email: "ravi@"}
			},
			message: "Please enter a valid email address",
		},
		{
			name:    "idempotency key too long",
			mutate:  func(r *BookUnitRequest) { r.IdempotencyKey = strings.Repeat("k", 65) },
			message: "Idempotency key cannot be longer than 64 characters",
		},
		{
			name:    "bad booking date",
			mutate:  func(r *BookUnitRequest) { r.BookingDate = "01/03/2024" },
			message: "Invalid booking date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bookRequest(project.ID, units[0].ID, client.ID)
			tt.mutate(&req)

			_, err := svc.Book(context.Background(), req, testActor)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}

	assert.Equal(t, models.UnitStatusVacant, env.unitStatus(t, units[0].ID))
	assert.Equal(t, int64(0), env.count(t, &models.Booking{}, ""))
	assert.Equal(t, int64(1), env.count(t, &models.Client{}, ""))
}

func TestBookingService_Book_DefaultsGSTAndDate(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")

	req := bookRequest(project.ID, units[0].ID, client.ID)
	req.GSTPercentage = nil
	req.BookingDate = ""
	booking, err := svc.Book(context.Background(), req, testActor)
	require.NoError(t, err)

	assert.True(t, booking.GSTPercentage.Equal(models.DefaultGSTPercentage))
	assert.Equal(t, svc.today().Format(models.DateLayout), booking.BookingDate.Format(models.DateLayout))
}

func TestBookingService_Book_RejectsBookedUnit(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")

	_, err := svc.Book(context.Background(), bookRequest(project.ID, units[0].ID, client.ID), testActor)
	require.NoError(t, err)

	_, err = svc.Book(context.Background(), bookRequest(project.ID, units[0].ID, client.ID), testActor)
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	assert.Equal(t, int64(1), env.count(t, &models.Booking{}, ""))
	assert.Equal(t, models.NotificationLevelError, env.notifier.last().Level)
}

func TestBookingService_Book_UnitOfOtherProject(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")

	_, err := svc.Book(context.Background(), bookRequest(project.ID+1, units[0].ID, client.ID), testActor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingService_Book_RejectsClosedEnquiry(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")
	enquiry := &models.Enquiry{ClientID: client.ID, ProjectID: project.ID, Status: models.EnquiryStatusCancelled}
	require.NoError(t, env.repos.Enquiry.Create(context.Background(), enquiry))

	req := bookRequest(project.ID, units[0].ID, 0)
	req.ClientID = nil
	req.NewClient = &ClientInput{ClientName: "Ravi Kumar", MobileNumber: "9123456780", Email: "ravi@example.com"}
	req.EnquiryID = &enquiry.ID

	_, err := svc.Book(context.Background(), req, testActor)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	assert.Equal(t, models.UnitStatusVacant, env.unitStatus(t, units[0].ID))
	assert.Equal(t, int64(0), env.count(t, &models.Booking{}, ""))
	assert.Equal(t, int64(0), env.count(t, &models.Client{}, "client_name = ?", "Ravi Kumar"))
}

func TestBookingService_Book_RollsBackNewClient(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")

	// an active booking left on a unit marked vacant trips the unique index
	// after the client insert has already run
	stale := &models.Booking{
		ProjectID:       project.ID,
		ClientID:        client.ID,
		UnitID:          units[0].ID,
		BookingAmount:   decimal.NewFromInt(1),
		AgreementAmount: decimal.NewFromInt(1),
		GSTPercentage:   models.DefaultGSTPercentage,
	}
	require.NoError(t, env.repos.Booking.Create(context.Background(), stale))

	req := bookRequest(project.ID, units[0].ID, 0)
	req.ClientID = nil
	req.NewClient = &ClientInput{ClientName: "Ravi Kumar", MobileNumber: "9123456780", Email: "ravi@example.com"}

	_, err := svc.Book(context.Background(), req, testActor)
	require.Error(t, err)
	assert.Equal(t, "This unit already has an active booking", err.Error())

	assert.Equal(t, models.UnitStatusVacant, env.unitStatus(t, units[0].ID))
	assert.Equal(t, int64(1), env.count(t, &models.Booking{}, ""))
	assert.Equal(t, int64(0), env.count(t, &models.Client{}, "client_name = ?", "Ravi Kumar"))
}

func TestBookingService_Book_IdempotencyKey(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 2)
	client := env.seedClient(t, "Asha Patil")

	req := bookRequest(project.ID, units[0].ID, client.ID)
	req.IdempotencyKey = "booking-key-1"

	first, err := svc.Book(context.Background(), req, testActor)
	require.NoError(t, err)
	second, err := svc.Book(context.Background(), req, testActor)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), env.count(t, &models.Booking{}, ""))

	other := bookRequest(project.ID, units[1].ID, client.ID)
	other.IdempotencyKey = "booking-key-1"
	_, err = svc.Book(context.Background(), other, testActor)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, models.UnitStatusVacant, env.unitStatus(t, units[1].ID))
}

func TestBookingService_Book_ConcurrentRequests(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Book(context.Background(), bookRequest(project.ID, units[0].ID, client.ID), testActor); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(1), env.count(t, &models.Booking{}, "unit_id = ? AND is_cancelled = ?", units[0].ID, false))
}

func TestBookingService_Register(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")

	booked, err := svc.Book(context.Background(), bookRequest(project.ID, units[0].ID, client.ID), testActor)
	require.NoError(t, err)

	registered, err := svc.Register(context.Background(), project.ID, units[0].ID,
		RegisterRequest{RegistrationNo: "REG-42", RegistrationDate: "2024-04-10"}, testActor)
	require.NoError(t, err)

	assert.Equal(t, booked.ID, registered.ID)
	assert.True(t, registered.IsRegistered)
	assert.Equal(t, "REG-42", registered.RegistrationNo)
	require.NotNil(t, registered.RegistrationDate)
	assert.Equal(t, "2024-04-10", registered.RegistrationDate.Format(models.DateLayout))
	assert.Equal(t, models.UnitStatusRegistered, env.unitStatus(t, units[0].ID))
	assert.Equal(t, int64(1), env.count(t, &models.Booking{}, ""))

	// registered is terminal
	_, err = svc.Cancel(context.Background(), project.ID, units[0].ID, "Client withdrew", testActor)
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	_, err = svc.Register(context.Background(), project.ID, units[0].ID, RegisterRequest{}, testActor)
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
}

func TestBookingService_Register_VacantUnit(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)

	_, err := svc.Register(context.Background(), project.ID, units[0].ID, RegisterRequest{}, testActor)
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	assert.Equal(t, models.UnitStatusVacant, env.unitStatus(t, units[0].ID))
}

func TestBookingService_Register_WithoutBooking(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	require.NoError(t, env.repos.Unit.UpdateStatus(context.Background(), units[0].ID, models.UnitStatusBooked))

	_, err := svc.Register(context.Background(), project.ID, units[0].ID, RegisterRequest{}, testActor)
	require.Error(t, err)
	assert.Equal(t, "No booking found for this unit", err.Error())
	assert.Equal(t, models.UnitStatusBooked, env.unitStatus(t, units[0].ID))
}

func TestBookingService_Cancel(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")
	enquiry := &models.Enquiry{ClientID: client.ID, ProjectID: project.ID, Status: models.EnquiryStatusOngoing}
	require.NoError(t, env.repos.Enquiry.Create(context.Background(), enquiry))

	req := bookRequest(project.ID, units[0].ID, client.ID)
	req.EnquiryID = &enquiry.ID
	booked, err := svc.Book(context.Background(), req, testActor)
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), project.ID, units[0].ID, "   ", testActor)
	require.Error(t, err)
	assert.Equal(t, "Please provide a cancellation reason", err.Error())
	assert.Equal(t, models.UnitStatusBooked, env.unitStatus(t, units[0].ID))

	cancelled, err := svc.Cancel(context.Background(), project.ID, units[0].ID, "Client withdrew", testActor)
	require.NoError(t, err)
	assert.Equal(t, booked.ID, cancelled.ID)
	assert.True(t, cancelled.IsCancelled)
	assert.Equal(t, "Client withdrew", cancelled.CancellationReason)
	assert.Equal(t, models.UnitStatusVacant, env.unitStatus(t, units[0].ID))
	assert.Equal(t, int64(1), env.count(t, &models.Booking{}, "unit_id = ?", units[0].ID))

	// the enquiry keeps its converted status
	stored, err := env.repos.Enquiry.FindByID(context.Background(), enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusBooked, stored.Status)

	// the released unit can be booked again
	_, err = svc.Book(context.Background(), bookRequest(project.ID, units[0].ID, client.ID), testActor)
	require.NoError(t, err)
	assert.Equal(t, int64(2), env.count(t, &models.Booking{}, "unit_id = ?", units[0].ID))
}

func TestBookingService_FindActiveByUnit(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)
	project, _, units := env.seedProject(t, 1)
	client := env.seedClient(t, "Asha Patil")

	_, err := svc.FindActiveByUnit(context.Background(), project.ID, units[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	booked, err := svc.Book(context.Background(), bookRequest(project.ID, units[0].ID, client.ID), testActor)
	require.NoError(t, err)

	active, err := svc.FindActiveByUnit(context.Background(), project.ID, units[0].ID)
	require.NoError(t, err)
	assert.Equal(t, booked.ID, active.ID)
	assert.Equal(t, "Asha Patil", active.Client.ClientName)
}
