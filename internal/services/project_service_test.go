package services

import (
	"context"
	"testing"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/inventory"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/registration"
	"github.com/propease/propease-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWingService(env *testEnv) *WingService {
	return NewWingService(env.repos, inventory.FloorDefaults{Area: "650", Quantity: "2"}, env.notifier, env.audit)
}

func TestWingService_Create_GeneratesFloors(t *testing.T) {
	env := newTestEnv(t)
	svc := newWingService(env)
	project, _, _ := env.seedProject(t, 1)

	wing, err := svc.Create(context.Background(), project.ID, WingInput{
		Form: inventory.WingForm{WingName: " B ", NoOfFloors: 3, NoOfProperties: 999},
	}, testActor)
	require.NoError(t, err)

	assert.Equal(t, "B", wing.WingName)
	require.Len(t, wing.Floors, 4)
	assert.Equal(t, "Ground Floor", wing.Floors[0].FloorName)
	assert.Equal(t, "Floor 3", wing.Floors[3].FloorName)
	assert.Equal(t, 650.0, wing.Floors[1].Area)
	assert.Equal(t, 8, wing.NoOfProperties)
	require.Len(t, wing.Units, 8)
	assert.Equal(t, "F0-1", wing.Units[0].UnitNumber)
	for _, u := range wing.Units {
		assert.Equal(t, models.UnitStatusVacant, u.Status)
		assert.Equal(t, project.ID, u.ProjectID)
	}
}

func TestWingService_Create_ManualEntryNeedsFloors(t *testing.T) {
	env := newTestEnv(t)
	svc := newWingService(env)
	project, _, _ := env.seedProject(t, 1)

	_, err := svc.Create(context.Background(), project.ID, WingInput{
		Form: inventory.WingForm{WingName: "B", NoOfFloors: 3, ManualFloorEntry: true},
	}, testActor)
	require.Error(t, err)
	assert.Equal(t, "At least one floor required", err.Error())
	assert.Equal(t, int64(1), env.count(t, &models.Wing{}, ""))
}

func TestWingService_Create_UnknownProject(t *testing.T) {
	env := newTestEnv(t)
	svc := newWingService(env)

	_, err := svc.Create(context.Background(), 42, WingInput{
		Form: inventory.WingForm{WingName: "B", NoOfFloors: 1},
	}, testActor)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), env.count(t, &models.Floor{}, ""))
}

func TestWingService_Update_ReplacesFloorsAndUnits(t *testing.T) {
	env := newTestEnv(t)
	svc := newWingService(env)
	project, wing, units := env.seedProject(t, 2, 2)

	updated, err := svc.Update(context.Background(), project.ID, wing.ID, WingInput{
		Form: inventory.WingForm{WingName: "A1", NoOfFloors: 0, ManualFloorEntry: true},
		Floors: []inventory.FloorRow{
			{FloorNo: "0", FloorName: "Ground Floor", PropertyType: "Commercial", Property: "Shop", Quantity: "3"},
		},
	}, testActor)
	require.NoError(t, err)

	assert.Equal(t, "A1", updated.WingName)
	assert.Equal(t, 3, updated.NoOfProperties)
	require.Len(t, updated.Floors, 1)
	assert.Equal(t, models.PropertyTypeCommercial, updated.Floors[0].PropertyType)
	require.Len(t, updated.Units, 3)

	_, err = env.repos.Unit.FindByID(context.Background(), units[0].ID)
	assert.Error(t, err, "old units are soft deleted")
	assert.Equal(t, int64(1), env.count(t, &models.Floor{}, "wing_id = ?", wing.ID))
}

func TestWingService_Update_RejectsBookedWing(t *testing.T) {
	env := newTestEnv(t)
	svc := newWingService(env)
	project, wing, units := env.seedProject(t, 2)
	require.NoError(t, env.repos.Unit.UpdateStatus(context.Background(), units[1].ID, models.UnitStatusBooked))

	_, err := svc.Update(context.Background(), project.ID, wing.ID, WingInput{
		Form: inventory.WingForm{WingName: "A", NoOfFloors: 2},
	}, testActor)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	err = svc.Delete(context.Background(), project.ID, wing.ID, testActor)
	assert.True(t, apperrors.IsConflict(err))

	// nothing changed
	assert.Equal(t, int64(1), env.count(t, &models.Floor{}, "wing_id = ?", wing.ID))
	assert.Equal(t, int64(2), env.count(t, &models.Unit{}, "wing_id = ? AND is_deleted = ?", wing.ID, false))
}

// bookUnitBeforeRemoval flips the unit to BOOKED right before the first
// UPDATE on units, the way a booking committed after the lock check would
func bookUnitBeforeRemoval(t *testing.T, env *testEnv, unitID uint) {
	t.Helper()
	done := false
	err := env.db.Callback().Update().Before("gorm:update").Register("test:book_unit", func(db *gorm.DB) {
		if done || db.Statement.Table != "units" {
			return
		}
		done = true
		db.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE units SET status = ? WHERE id = ?", models.UnitStatusBooked, unitID)
	})
	require.NoError(t, err)
}

func TestWingService_Update_KeepsUnitBookedMeanwhile(t *testing.T) {
	env := newTestEnv(t)
	svc := newWingService(env)
	project, wing, units := env.seedProject(t, 2)
	bookUnitBeforeRemoval(t, env, units[0].ID)

	_, err := svc.Update(context.Background(), project.ID, wing.ID, WingInput{
		Form: inventory.WingForm{WingName: "A", NoOfFloors: 1},
	}, testActor)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	assert.Equal(t, int64(2), env.count(t, &models.Unit{}, "wing_id = ? AND is_deleted = ?", wing.ID, false))
	assert.Equal(t, int64(1), env.count(t, &models.Floor{}, "wing_id = ?", wing.ID))
}

func TestWingService_Delete_KeepsUnitBookedMeanwhile(t *testing.T) {
	env := newTestEnv(t)
	svc := newWingService(env)
	project, wing, units := env.seedProject(t, 3)
	bookUnitBeforeRemoval(t, env, units[2].ID)

	err := svc.Delete(context.Background(), project.ID, wing.ID, testActor)
	assert.True(t, apperrors.IsConflict(err))

	wings, err := svc.List(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Len(t, wings, 1)
	assert.Equal(t, int64(3), env.count(t, &models.Unit{}, "wing_id = ? AND is_deleted = ?", wing.ID, false))
}

func TestWingService_Delete(t *testing.T) {
	env := newTestEnv(t)
	svc := newWingService(env)
	project, wing, _ := env.seedProject(t, 2)

	require.NoError(t, svc.Delete(context.Background(), project.ID, wing.ID, testActor))

	wings, err := svc.List(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Empty(t, wings)
	assert.Equal(t, int64(0), env.count(t, &models.Unit{}, "wing_id = ? AND is_deleted = ?", wing.ID, false))

	err = svc.Delete(context.Background(), project.ID, wing.ID, testActor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWingService_WingOfOtherProject(t *testing.T) {
	env := newTestEnv(t)
	svc := newWingService(env)
	project, wing, _ := env.seedProject(t, 1)

	_, err := svc.FindByID(context.Background(), project.ID+1, wing.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWingService_PreviewFloors(t *testing.T) {
	svc := NewWingService(nil, inventory.DefaultFloorDefaults(), nil, nil)

	rows, err := svc.PreviewFloors(nil, 4)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	rows[1].Quantity = "6"
	shrunk, err := svc.PreviewFloors(rows, 2)
	require.NoError(t, err)
	assert.Equal(t, rows[:3], shrunk)

	_, err = svc.PreviewFloors(rows, -1)
	assert.True(t, apperrors.IsValidation(err))
}

func TestProjectService_SummaryAndDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProjectService(env.repos, env.audit)
	project, _, units := env.seedProject(t, 1, 2)

	summary, err := svc.Summary(context.Background(), project.ID)
	require.NoError(t, err)
	require.Len(t, summary.Wings, 1)
	assert.Equal(t, 3, summary.Totals.Vacant)
	assert.Equal(t, 3, summary.Totals.Total)

	require.NoError(t, env.repos.Unit.UpdateStatus(context.Background(), units[2].ID, models.UnitStatusBooked))
	summary, err = svc.Summary(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Wings[0].Booked)
	assert.Equal(t, 2, summary.Wings[0].Vacant)

	err = svc.Delete(context.Background(), project.ID, testActor)
	assert.True(t, apperrors.IsConflict(err))

	require.NoError(t, env.repos.Unit.UpdateStatus(context.Background(), units[2].ID, models.UnitStatusVacant))
	require.NoError(t, svc.Delete(context.Background(), project.ID, testActor))
	_, err = svc.FindByID(context.Background(), project.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_Update(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProjectService(env.repos, env.audit)
	project, _, _ := env.seedProject(t, 1)

	info := registration.BasicInfo{
		ProjectName:    "Sunrise Heights Phase 2",
		ProjectCode:    "p51800099999",
		StartDate:      "2024-01-01",
		CompletionDate: "2026-12-31",
		Status:         models.ProjectStatusInProgress,
		Progress:       40,
	}
	updated, err := svc.Update(context.Background(), project.ID, info, testActor)
	require.NoError(t, err)
	assert.Equal(t, "P51800099999", updated.ProjectCode)
	assert.Equal(t, models.ProjectStatusInProgress, updated.Status)
	assert.Equal(t, 40, updated.Progress)

	info.CompletionDate = "2023-01-01"
	_, err = svc.Update(context.Background(), project.ID, info, testActor)
	assert.True(t, apperrors.IsValidation(err))
}

func TestProjectService_List_RestrictsEmployees(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProjectService(env.repos, env.audit)
	first, _, _ := env.seedProject(t, 1)
	env.seedProject(t, 1)

	employee := &models.User{Email: "emp@example.com", FullName: "Emp", EncryptedPassword: "x", Role: models.RoleEmployee}
	require.NoError(t, env.repos.User.Create(context.Background(), employee))
	require.NoError(t, env.repos.User.ReplaceProjects(context.Background(), employee.ID, []uint{first.ID}))

	all, total, err := svc.List(context.Background(), repository.NewListQuery(), testActor)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	own, total, err := svc.List(context.Background(), repository.NewListQuery(),
		Actor{UserID: employee.ID, Role: models.RoleEmployee})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, own, 1)
	assert.Equal(t, first.ID, own[0].ID)
}
