package services

import (
	"context"
	"testing"
	"time"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var followUpNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return followUpNow }

// newEnquiry creates an enquiry through the service so its first follow-up
// is planned
func (e *testEnv) newEnquiry(t *testing.T, projectID, clientID uint, actor Actor) *models.Enquiry {
	t.Helper()
	svc := NewEnquiryService(e.repos, e.audit)
	svc.now = fixedClock
	enquiry, err := svc.Create(context.Background(), EnquiryInput{ClientID: clientID, ProjectID: projectID}, actor)
	require.NoError(t, err)
	return enquiry
}

func newFollowUpService(env *testEnv) *FollowUpService {
	svc := NewFollowUpService(env.repos, env.notifier, env.audit)
	svc.now = fixedClock
	return svc
}

func TestEnquiryService_Create_PlansFirstFollowUp(t *testing.T) {
	env := newTestEnv(t)
	svc := newFollowUpService(env)
	project, _, _ := env.seedProject(t, 1)
	client := env.seedClient(t, "Meera Rao")
	enquiry := env.newEnquiry(t, project.ID, client.ID, testActor)

	followUp, err := svc.ForEnquiry(context.Background(), project.ID, enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-13", followUp.NextDate.Format(models.DateLayout))
	assert.Equal(t, "First follow-up", followUp.Description)

	resp := followUp.ToResponse()
	assert.Equal(t, "Meera Rao", resp.ClientName)
	assert.Equal(t, "9876543210", resp.MobileNumber)
	assert.Equal(t, "Admin", resp.AgentName)
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, "First follow-up", resp.Notes[0].Body)

	_, err = svc.ForEnquiry(context.Background(), project.ID+1, enquiry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollowUpService_AddNote(t *testing.T) {
	env := newTestEnv(t)
	svc := newFollowUpService(env)
	project, _, _ := env.seedProject(t, 1)
	client := env.seedClient(t, "Meera Rao")
	enquiry := env.newEnquiry(t, project.ID, client.ID, testActor)
	ctx := context.Background()

	followUp, err := svc.ForEnquiry(ctx, project.ID, enquiry.ID)
	require.NoError(t, err)

	agent := &models.User{Email: "agent@example.com", FullName: "Ravi Kumar", EncryptedPassword: "x", Role: models.RoleEmployee}
	require.NoError(t, env.repos.User.Create(ctx, agent))
	require.NoError(t, env.repos.FollowUp.MarkReminded(ctx, followUp.ID, dateOf(followUpNow)))

	updated, err := svc.AddNote(ctx, project.ID, followUp.ID, FollowUpNoteInput{
		NextDate: "2026-03-20",
		Body:     " Wants a site visit on the weekend ",
		Tag:      "call",
	}, Actor{UserID: agent.ID, Role: models.RoleEmployee})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-20", updated.NextDate.Format(models.DateLayout))
	assert.Nil(t, updated.LastRemindedOn)

	resp := updated.ToResponse()
	assert.Equal(t, "Ravi Kumar", resp.AgentName)
	require.Len(t, resp.Notes, 2)
	assert.Equal(t, "Wants a site visit on the weekend", resp.Notes[0].Body)
	assert.Equal(t, "CALL", resp.Notes[0].Tag)
	assert.Equal(t, "First follow-up", resp.Notes[1].Body)
}

func TestFollowUpService_AddNote_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := newFollowUpService(env)
	project, _, _ := env.seedProject(t, 1)
	client := env.seedClient(t, "Meera Rao")
	enquiry := env.newEnquiry(t, project.ID, client.ID, testActor)
	ctx := context.Background()

	followUp, err := svc.ForEnquiry(ctx, project.ID, enquiry.ID)
	require.NoError(t, err)

	tests := []struct {
		name  string
		in    FollowUpNoteInput
		field string
	}{
		{"missing date", FollowUpNoteInput{Body: "x", Tag: "CALL"}, "next_date"},
		{"bad date", FollowUpNoteInput{NextDate: "20/03/2026", Body: "x", Tag: "CALL"}, "next_date"},
		{"today", FollowUpNoteInput{NextDate: "2026-03-10", Body: "x", Tag: "CALL"}, "next_date"},
		{"past", FollowUpNoteInput{NextDate: "2026-03-01", Body: "x", Tag: "CALL"}, "next_date"},
		{"blank body", FollowUpNoteInput{NextDate: "2026-03-11", Body: "  ", Tag: "CALL"}, "body"},
		{"missing tag", FollowUpNoteInput{NextDate: "2026-03-11", Body: "x"}, "tag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddNote(ctx, project.ID, followUp.ID, tt.in, testActor)
			require.True(t, apperrors.IsValidation(err), "got %v", err)
			var v *apperrors.ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.field, v.Field)
		})
	}

	assert.Equal(t, int64(1), env.count(t, &models.FollowUpNote{}, "follow_up_id = ?", followUp.ID))

	_, err = svc.AddNote(ctx, project.ID+1, followUp.ID, FollowUpNoteInput{NextDate: "2026-03-11", Body: "x", Tag: "CALL"}, testActor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollowUpService_AddNote_ClosedEnquiry(t *testing.T) {
	env := newTestEnv(t)
	svc := newFollowUpService(env)
	project, _, _ := env.seedProject(t, 1)
	client := env.seedClient(t, "Meera Rao")
	enquiry := env.newEnquiry(t, project.ID, client.ID, testActor)
	ctx := context.Background()

	require.NoError(t, env.repos.Enquiry.UpdateStatus(ctx, enquiry.ID, models.EnquiryStatusCancelled))
	followUp, err := svc.ForEnquiry(ctx, project.ID, enquiry.ID)
	require.NoError(t, err)

	_, err = svc.AddNote(ctx, project.ID, followUp.ID, FollowUpNoteInput{NextDate: "2026-03-11", Body: "x", Tag: "CALL"}, testActor)
	assert.True(t, apperrors.IsConflict(err))
}

func TestFollowUpService_Due(t *testing.T) {
	env := newTestEnv(t)
	svc := newFollowUpService(env)
	first, _, _ := env.seedProject(t, 1)
	second, _, _ := env.seedProject(t, 1)
	client := env.seedClient(t, "Meera Rao")
	ctx := context.Background()

	// planned for 2026-03-13 by default
	a := env.newEnquiry(t, first.ID, client.ID, testActor)
	b := env.newEnquiry(t, second.ID, client.ID, testActor)
	cancelled := env.newEnquiry(t, first.ID, client.ID, testActor)
	require.NoError(t, env.repos.Enquiry.UpdateStatus(ctx, cancelled.ID, models.EnquiryStatusCancelled))

	fa, err := env.repos.FollowUp.FindByEnquiry(ctx, a.ID)
	require.NoError(t, err)
	require.NoError(t, env.repos.FollowUp.UpdateNextDate(ctx, fa.ID, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))

	due, err := svc.Due(ctx, "", "", testActor)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, a.ID, due[0].EnquiryID)

	due, err = svc.Due(ctx, "2026-03-12", "2026-03-14", testActor)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, b.ID, due[0].EnquiryID)

	employee := &models.User{Email: "emp@example.com", FullName: "Emp", EncryptedPassword: "x", Role: models.RoleEmployee}
	require.NoError(t, env.repos.User.Create(ctx, employee))
	require.NoError(t, env.repos.User.ReplaceProjects(ctx, employee.ID, []uint{first.ID}))

	due, err = svc.Due(ctx, "2026-03-01", "2026-03-31", Actor{UserID: employee.ID, Role: models.RoleEmployee})
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, a.ID, due[0].EnquiryID)

	_, err = svc.Due(ctx, "2026-03-14", "2026-03-12", testActor)
	assert.True(t, apperrors.IsValidation(err))
	_, err = svc.Due(ctx, "yesterday", "", testActor)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFollowUpService_SendDueReminders(t *testing.T) {
	env := newTestEnv(t)
	svc := newFollowUpService(env)
	project, _, _ := env.seedProject(t, 1)
	client := env.seedClient(t, "Meera Rao")
	ctx := context.Background()

	agent := &models.User{Email: "agent@example.com", FullName: "Ravi Kumar", EncryptedPassword: "x", Role: models.RoleEmployee}
	require.NoError(t, env.repos.User.Create(ctx, agent))

	overdue := env.newEnquiry(t, project.ID, client.ID, Actor{UserID: agent.ID, Role: models.RoleEmployee})
	env.newEnquiry(t, project.ID, client.ID, testActor)

	fu, err := env.repos.FollowUp.FindByEnquiry(ctx, overdue.ID)
	require.NoError(t, err)
	require.NoError(t, env.repos.FollowUp.UpdateNextDate(ctx, fu.ID, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)))

	sent, err := svc.SendDueReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	n := env.notifier.last()
	assert.Equal(t, agent.ID, n.UserID)
	assert.Equal(t, models.NotificationTypeFollowUpDue, n.Type)
	assert.Equal(t, "Follow-up with Meera Rao was due on 2026-03-08", n.Message)

	// once a day
	sent, err = svc.SendDueReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	svc.now = func() time.Time { return followUpNow.AddDate(0, 0, 3) }
	sent, err = svc.SendDueReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}
