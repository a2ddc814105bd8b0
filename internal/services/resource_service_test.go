package services

import (
	"context"
	"testing"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/registration"
	"github.com/propease/propease-api/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResourceService(t *testing.T, env *testEnv) (*ResourceService, *storage.LocalStorage) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewResourceService(env.repos, NewImageService(store), env.audit), store
}

func TestResourceService_Disbursements(t *testing.T) {
	env := newTestEnv(t)
	svc, _ := newResourceService(t, env)
	project, _, _ := env.seedProject(t, 1)
	ctx := context.Background()

	for _, p := range []string{"20", "30"} {
		_, err := svc.AddDisbursement(ctx, project.ID, registration.DisbursementDraft{
			Title:      "Slab " + p,
			Percentage: decimal.RequireFromString(p),
		}, testActor)
		require.NoError(t, err)
	}

	_, err := svc.AddDisbursement(ctx, project.ID, registration.DisbursementDraft{
		Title:      "Possession",
		Percentage: decimal.NewFromInt(51),
	}, testActor)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	milestones, err := svc.ListDisbursements(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 2)

	_, err = svc.AddDisbursement(ctx, project.ID, registration.DisbursementDraft{
		Title:      "Possession",
		Percentage: decimal.RequireFromString("50.00"),
	}, testActor)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDisbursement(ctx, project.ID, milestones[0].ID, testActor))
	assert.ErrorIs(t, svc.DeleteDisbursement(ctx, project.ID, milestones[0].ID, testActor), ErrNotFound)
}

func TestResourceService_Banks(t *testing.T) {
	env := newTestEnv(t)
	svc, _ := newResourceService(t, env)
	project, _, _ := env.seedProject(t, 1)
	ctx := context.Background()

	_, err := svc.AddBank(ctx, project.ID, registration.BankDraft{BankName: "SBI"}, testActor)
	assert.True(t, apperrors.IsValidation(err))

	bank := registration.BankDraft{
		BankName:      "SBI",
		BranchName:    "Kothrud",
		ContactPerson: "A. Joshi",
		ContactNumber: "9822012345",
		IFSC:          "sbin0001234",
		AccountNo:     "30012345678",
	}
	first, err := svc.AddBank(ctx, project.ID, bank, testActor)
	require.NoError(t, err)
	assert.Equal(t, "SBIN0001234", first.IFSC)
	assert.Equal(t, models.AccountTypeSavings, first.AccountType)

	err = svc.DeleteBank(ctx, project.ID, first.ID, testActor)
	assert.True(t, apperrors.IsConflict(err), "last bank stays")

	bank.AccountType = models.AccountTypeCurrent
	second, err := svc.AddBank(ctx, project.ID, bank, testActor)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteBank(ctx, project.ID, first.ID, testActor))

	banks, err := svc.ListBanks(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, second.ID, banks[0].ID)

	_, err = svc.AddBank(ctx, project.ID+99, bank, testActor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResourceService_Amenities(t *testing.T) {
	env := newTestEnv(t)
	svc, _ := newResourceService(t, env)
	project, _, _ := env.seedProject(t, 1)
	ctx := context.Background()

	gym, err := svc.AddAmenity(ctx, project.ID, " Gym ", testActor)
	require.NoError(t, err)
	assert.Equal(t, "Gym", gym.AmenityName)

	_, err = svc.AddAmenity(ctx, project.ID, "gym", testActor)
	assert.True(t, apperrors.IsConflict(err))
	_, err = svc.AddAmenity(ctx, project.ID, "  ", testActor)
	assert.True(t, apperrors.IsValidation(err))

	require.NoError(t, svc.DeleteAmenity(ctx, project.ID, gym.ID, testActor))
	amenities, err := svc.ListAmenities(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, amenities)
}

func TestResourceService_Documents(t *testing.T) {
	env := newTestEnv(t)
	svc, store := newResourceService(t, env)
	project, _, _ := env.seedProject(t, 1)
	ctx := context.Background()

	file, header := multipartFile(t, "basement.pdf", "application/pdf", []byte("%PDF-1.4"))
	doc, err := svc.AddDocument(ctx, project.ID, models.DocumentTypeBasementPlan, "Basement", file, header, testActor)
	require.NoError(t, err)
	assert.True(t, store.Exists(doc.Path))

	_, err = svc.FindDocument(ctx, project.ID+1, doc.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.DeleteDocument(ctx, project.ID, doc.ID, testActor))
	assert.False(t, store.Exists(doc.Path))
}
