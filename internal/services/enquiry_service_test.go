package services

import (
	"context"
	"testing"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnquiryService_CreateAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEnquiryService(env.repos, env.audit)
	project, _, units := env.seedProject(t, 2)
	client := env.seedClient(t, "Meera Rao")
	ctx := context.Background()

	enquiry, err := svc.Create(ctx, EnquiryInput{
		ClientID:  client.ID,
		ProjectID: project.ID,
		UnitID:    &units[1].ID,
		Budget:    " 60-70L ",
	}, testActor)
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusOngoing, enquiry.Status)
	assert.Equal(t, "60-70L", enquiry.Budget)
	require.NotNil(t, enquiry.Client)
	assert.Equal(t, "Meera Rao", enquiry.Client.ClientName)

	updated, err := svc.UpdateStatus(ctx, enquiry.ID, models.EnquiryStatusHotLead, "Site visit done", testActor)
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusHotLead, updated.Status)
	assert.Equal(t, "Site visit done", updated.Remark)

	_, err = svc.UpdateStatus(ctx, enquiry.ID, models.EnquiryStatusBooked, "", testActor)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.UpdateStatus(ctx, enquiry.ID, models.EnquiryStatusCancelled, "", testActor)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, enquiry.ID, models.EnquiryStatusOngoing, "", testActor)
	assert.True(t, apperrors.IsConflict(err))
}

func TestEnquiryService_Create_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEnquiryService(env.repos, env.audit)
	project, _, _ := env.seedProject(t, 1)
	other, _, otherUnits := env.seedProject(t, 1)
	client := env.seedClient(t, "Meera Rao")
	ctx := context.Background()

	_, err := svc.Create(ctx, EnquiryInput{ProjectID: project.ID}, testActor)
	require.Error(t, err)
	assert.Equal(t, "Please select or create a client", err.Error())

	_, err = svc.Create(ctx, EnquiryInput{ClientID: client.ID, ProjectID: project.ID, Status: "MAYBE"}, testActor)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, EnquiryInput{ClientID: client.ID + 50, ProjectID: project.ID}, testActor)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, EnquiryInput{ClientID: client.ID, ProjectID: project.ID, UnitID: &otherUnits[0].ID}, testActor)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, EnquiryInput{ClientID: client.ID, ProjectID: other.ID, UnitID: &otherUnits[0].ID}, testActor)
	assert.NoError(t, err)
}

func TestEnquiryService_List_RestrictsEmployees(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEnquiryService(env.repos, env.audit)
	first, _, _ := env.seedProject(t, 1)
	second, _, _ := env.seedProject(t, 1)
	client := env.seedClient(t, "Meera Rao")
	ctx := context.Background()

	for _, p := range []uint{first.ID, second.ID} {
		_, err := svc.Create(ctx, EnquiryInput{ClientID: client.ID, ProjectID: p}, testActor)
		require.NoError(t, err)
	}

	employee := &models.User{Email: "emp@example.com", FullName: "Emp", EncryptedPassword: "x", Role: models.RoleEmployee}
	require.NoError(t, env.repos.User.Create(ctx, employee))
	require.NoError(t, env.repos.User.ReplaceProjects(ctx, employee.ID, []uint{second.ID}))

	enquiries, total, err := svc.List(ctx, repository.NewListQuery(), Actor{UserID: employee.ID, Role: models.RoleEmployee})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, enquiries, 1)
	assert.Equal(t, second.ID, enquiries[0].ProjectID)
}
