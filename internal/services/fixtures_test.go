package services

import (
	"context"
	"sync"
	"testing"

	"github.com/propease/propease-api/internal/config"
	"github.com/propease/propease-api/internal/database/dbtest"
	"github.com/propease/propease-api/internal/inventory"
	"github.com/propease/propease-api/internal/jobs"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/pkg/logger"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type notice struct {
	UserID  uint
	Level   string
	Title   string
	Message string
	Type    string
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (f *fakeNotifier) NotifySuccess(ctx context.Context, userID uint, title, message, notifType string) {
	f.add(notice{userID, models.NotificationLevelSuccess, title, message, notifType})
}

func (f *fakeNotifier) NotifyError(ctx context.Context, userID uint, title, message, notifType string) {
	f.add(notice{userID, models.NotificationLevelError, title, message, notifType})
}

func (f *fakeNotifier) add(n notice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, n)
}

func (f *fakeNotifier) last() notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.notices) == 0 {
		return notice{}
	}
	return f.notices[len(f.notices)-1]
}

// testEnv is a migrated database, seeded with the testActor admin, plus the collaborators most services need
type testEnv struct {
	db       *gorm.DB
	repos    *repository.Repositories
	worker   *jobs.Worker
	notifier *fakeNotifier
	audit    *AuditService
	email    *EmailService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger.Setup("test", "error")

	db := dbtest.Open(t)
	worker := jobs.NewWorker(1)
	t.Cleanup(worker.Shutdown)

	repos := repository.NewRepositories(db)
	admin := &models.User{ID: testActor.UserID, Email: "admin@example.com", FullName: "Admin", EncryptedPassword: "x", Role: models.RoleAdmin}
	require.NoError(t, repos.User.Create(context.Background(), admin))

	return &testEnv{
		db:       db,
		repos:    repos,
		worker:   worker,
		notifier: &fakeNotifier{},
		audit:    NewAuditService(db),
		email:    NewEmailService(&config.Config{}),
	}
}

var testActor = Actor{UserID: 1, Role: models.RoleAdmin, IP: "127.0.0.1", UserAgent: "test"}

// seedProject creates a project with one wing "A" whose floors hold the
// given quantities, and lays out its units
func (e *testEnv) seedProject(t *testing.T, quantities ...int) (*models.Project, *models.Wing, []models.Unit) {
	t.Helper()
	ctx := context.Background()

	project := &models.Project{Name: "Sunrise Heights", ProjectCode: "P51800012345"}
	require.NoError(t, e.repos.Project.Create(ctx, project))

	wing := &models.Wing{ProjectID: project.ID, WingName: "A", NoOfFloors: len(quantities) - 1}
	for i, q := range quantities {
		wing.Floors = append(wing.Floors, models.Floor{
			FloorNo:      i,
			FloorName:    inventory.DefaultRow(i, inventory.DefaultFloorDefaults()).FloorName,
			PropertyType: models.PropertyTypeResidential,
			Property:     "2 BHK",
			Quantity:     q,
		})
		wing.NoOfProperties += q
	}
	require.NoError(t, e.repos.Wing.Create(ctx, wing))

	units := inventory.LayoutUnits(wing)
	require.NoError(t, e.repos.Unit.CreateBatch(ctx, units))
	return project, wing, units
}

func (e *testEnv) seedClient(t *testing.T, name string) *models.Client {
	t.Helper()
	client := &models.Client{ClientName: name, Email: "client@example.com", MobileNumber: "9876543210"}
	require.NoError(t, e.repos.Client.Create(context.Background(), client))
	return client
}

func (e *testEnv) unitStatus(t *testing.T, id uint) string {
	t.Helper()
	unit, err := e.repos.Unit.FindByID(context.Background(), id)
	require.NoError(t, err)
	return unit.Status
}

func (e *testEnv) count(t *testing.T, model interface{}, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := e.db.Model(model)
	if where != "" {
		q = q.Where(where, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
