package services

import (
	"context"
	"testing"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(env *testEnv) *UserService {
	return NewUserService(env.repos, env.worker, env.email, env.notifier, env.audit)
}

func createEmployee(t *testing.T, svc *UserService) *models.User {
	t.Helper()
	user, err := svc.Create(context.Background(), UserInput{
		Email:    " Sales@Example.com ",
		FullName: "Priya Sales",
		Role:     models.RoleEmployee,
		Password: "welcome123",
	}, testActor)
	require.NoError(t, err)
	return user
}

func TestUserService_Create(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	user := createEmployee(t, svc)
	assert.Equal(t, "sales@example.com", user.Email)
	assert.True(t, VerifyPassword("welcome123", user.EncryptedPassword))
	assert.Equal(t, models.StatusActive, user.Status)

	_, err := svc.Create(context.Background(), UserInput{
		Email: "sales@example.com", FullName: "Copy", Role: models.RoleEmployee, Password: "welcome123",
	}, testActor)
	assert.True(t, apperrors.IsConflict(err))

	_, err = svc.Create(context.Background(), UserInput{
		Email: "x@example.com", FullName: "Weak", Role: models.RoleEmployee, Password: "short",
	}, testActor)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(context.Background(), UserInput{
		Email: "x@example.com", FullName: "Boss", Role: "OWNER", Password: "welcome123",
	}, testActor)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserService_AssignProjects(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)
	user := createEmployee(t, svc)
	first, _, _ := env.seedProject(t, 1)
	second, _, _ := env.seedProject(t, 1)
	ctx := context.Background()

	_, err := svc.AssignProjects(ctx, user.ID, nil, testActor)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "At least one project must be assigned", err.Error())

	_, err = svc.AssignProjects(ctx, user.ID, []uint{first.ID, 999}, testActor)
	assert.True(t, apperrors.IsValidation(err))

	updated, err := svc.AssignProjects(ctx, user.ID, []uint{first.ID, second.ID, first.ID}, testActor)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{first.ID, second.ID}, updated.ProjectIDs())
	assert.Equal(t, models.NotificationTypeProjectAssigned, env.notifier.last().Type)
	assert.Equal(t, user.ID, env.notifier.last().UserID)

	employee := Actor{UserID: user.ID, Role: models.RoleEmployee}
	ok, err := svc.CanAccessProject(ctx, employee, second.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.AssignProjects(ctx, user.ID, []uint{second.ID}, testActor)
	require.NoError(t, err)
	ok, err = svc.CanAccessProject(ctx, employee, first.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.CanAccessProject(ctx, testActor, first.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserService_PasswordsAndStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)
	user := createEmployee(t, svc)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, user.ID, "wrong", "newpass123")
	assert.True(t, apperrors.IsValidation(err))
	require.NoError(t, svc.ChangePassword(ctx, user.ID, "welcome123", "newpass123"))

	temp, err := svc.ResetPassword(ctx, user.ID, testActor)
	require.NoError(t, err)
	assert.Len(t, temp, 12)
	reloaded, err := svc.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(temp, reloaded.EncryptedPassword))

	toggled, err := svc.ToggleStatus(ctx, user.ID, testActor)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, toggled.Status)

	_, err = svc.ToggleStatus(ctx, testActor.UserID, testActor)
	assert.True(t, apperrors.IsConflict(err))

	require.NoError(t, svc.Delete(ctx, user.ID, testActor))
	_, err = svc.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateTempPassword(t *testing.T) {
	for i := 0; i < 20; i++ {
		p, err := GenerateTempPassword(4)
		require.NoError(t, err)
		assert.Len(t, p, 8)
		assert.NoError(t, ValidatePassword(p))
	}
}
