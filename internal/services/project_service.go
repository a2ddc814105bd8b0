package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/inventory"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/registration"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/pkg/logger"
	"gorm.io/gorm"
)

// ProjectSummary is the inventory overview of a project, one row per wing
type ProjectSummary struct {
	ProjectID   uint                   `json:"project_id"`
	Wings       []repository.WingStats `json:"wings"`
	Totals      inventory.StatusCounts `json:"totals"`
	BookedValue float64                `json:"booked_value"`
}

type ProjectService struct {
	repos    *repository.Repositories
	auditSvc *AuditService
}

func NewProjectService(repos *repository.Repositories, auditSvc *AuditService) *ProjectService {
	return &ProjectService{repos: repos, auditSvc: auditSvc}
}

// List returns live projects. Employees only see the projects assigned to them.
func (s *ProjectService) List(ctx context.Context, query *repository.ListQuery, actor Actor) ([]models.Project, int64, error) {
	if !actor.IsAdmin() {
		user, err := s.repos.User.FindByID(ctx, actor.UserID)
		if err != nil {
			return nil, 0, err
		}
		query.Filters["project_ids"] = repository.FormatIDList(user.ProjectIDs())
	}
	return s.repos.Project.List(ctx, query)
}

// FindByID loads a project with its wings, floors and resources
func (s *ProjectService) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.repos.Project.FindByIDWithDetails(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	for i := range project.Wings {
		models.SortFloors(project.Wings[i].Floors)
	}
	return project, nil
}

// Update changes the basic details of a project. The same rules as the
// first registration step apply.
func (s *ProjectService) Update(ctx context.Context, id uint, info registration.BasicInfo, actor Actor) (*models.Project, error) {
	info = registration.SetBasicInfo(registration.Draft{}, info).Basic
	if err := registration.ValidateBasicInfo(info); err != nil {
		return nil, err
	}

	project, err := s.repos.Project.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	project.Name = info.ProjectName
	project.ProjectCode = info.ProjectCode
	project.Address = strings.TrimSpace(info.Address)
	project.StartDate, _ = time.Parse(models.DateLayout, info.StartDate)
	project.CompletionDate, _ = time.Parse(models.DateLayout, info.CompletionDate)
	project.Progress = info.Progress
	if info.Status != "" {
		project.Status = info.Status
	}

	if err := s.repos.Project.Update(ctx, project); err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditUpdate, "Project", project.ID, project.Name, actor.IP, actor.UserAgent)
	return s.FindByID(ctx, id)
}

// Delete soft deletes a project that has no booked or registered units
func (s *ProjectService) Delete(ctx context.Context, id uint, actor Actor) error {
	project, err := s.repos.Project.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	stats, err := s.repos.Stats.WingStats(ctx, id)
	if err != nil {
		return err
	}
	for _, w := range stats {
		if w.Booked+w.Registered > 0 {
			return apperrors.Conflict("Project has booked units and cannot be deleted")
		}
	}

	if err := s.repos.Project.SoftDelete(ctx, id); err != nil {
		return err
	}
	logger.Info("project deleted", "project_id", id, "user_id", actor.UserID)
	s.auditSvc.Log(ctx, actor.UserID, AuditDelete, "Project", id, project.Name, actor.IP, actor.UserAgent)
	return nil
}

// Summary returns the per-wing unit status counts and the project totals
func (s *ProjectService) Summary(ctx context.Context, id uint) (*ProjectSummary, error) {
	if _, err := s.repos.Project.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	wings, err := s.repos.Stats.WingStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load wing stats: %w", err)
	}
	value, err := s.repos.Stats.BookedValue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked value: %w", err)
	}

	summary := &ProjectSummary{ProjectID: id, Wings: wings, BookedValue: value}
	for _, w := range wings {
		summary.Totals.Vacant += w.Vacant
		summary.Totals.Booked += w.Booked
		summary.Totals.Registered += w.Registered
		summary.Totals.Total += w.Total
	}
	return summary, nil
}

// Units lists the units of a project
func (s *ProjectService) Units(ctx context.Context, projectID uint, query *repository.ListQuery) ([]models.Unit, int64, error) {
	return s.repos.Unit.List(ctx, projectID, query)
}

// WingInput is a wing submitted for an existing project. With no rows and
// manual entry off, the floors are generated from NoOfFloors.
type WingInput struct {
	Form   inventory.WingForm   `json:"form"`
	Floors []inventory.FloorRow `json:"floors"`
}

type WingService struct {
	repos    *repository.Repositories
	defaults inventory.FloorDefaults
	notifier Notifier
	auditSvc *AuditService
}

func NewWingService(repos *repository.Repositories, defaults inventory.FloorDefaults, notifier Notifier, auditSvc *AuditService) *WingService {
	return &WingService{repos: repos, defaults: defaults, notifier: notifier, auditSvc: auditSvc}
}

// List returns the live wings of a project with floors in display order
func (s *WingService) List(ctx context.Context, projectID uint) ([]models.Wing, error) {
	wings, err := s.repos.Wing.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for i := range wings {
		models.SortFloors(wings[i].Floors)
	}
	return wings, nil
}

// FindByID returns a wing of the project with its floors and units
func (s *WingService) FindByID(ctx context.Context, projectID, wingID uint) (*models.Wing, error) {
	wing, err := s.wingInProject(ctx, s.repos, projectID, wingID)
	if err != nil {
		return nil, err
	}
	models.SortFloors(wing.Floors)
	units, err := s.repos.Unit.FindByWing(ctx, wing.ID)
	if err != nil {
		return nil, err
	}
	wing.Units = units
	return wing, nil
}

// PreviewFloors resizes rows to count+1 floors without saving anything
func (s *WingService) PreviewFloors(rows []inventory.FloorRow, count int) ([]inventory.FloorRow, error) {
	return inventory.ReconcileFloors(rows, count, s.defaults)
}

// Create adds a wing with its floors and lays out its vacant units
func (s *WingService) Create(ctx context.Context, projectID uint, in WingInput, actor Actor) (*models.Wing, error) {
	wing, err := s.buildWing(in)
	if err != nil {
		return nil, err
	}
	wing.ProjectID = projectID

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Project.FindByID(ctx, projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Wing.Create(ctx, &wing); err != nil {
			return fmt.Errorf("failed to create wing: %w", err)
		}
		return tx.Unit.CreateBatch(ctx, inventory.LayoutUnits(&wing))
	})
	if err != nil {
		return nil, err
	}

	s.saved(ctx, &wing, AuditCreate, actor)
	return s.FindByID(ctx, projectID, wing.ID)
}

// Update replaces the header and the whole floor list of a wing and lays
// its units out again. Only wings whose units are all vacant can change.
func (s *WingService) Update(ctx context.Context, projectID, wingID uint, in WingInput, actor Actor) (*models.Wing, error) {
	next, err := s.buildWing(in)
	if err != nil {
		return nil, err
	}

	var wing *models.Wing
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		found, err := s.wingInProject(ctx, tx, projectID, wingID)
		if err != nil {
			return err
		}
		wing = found
		locked, err := ensureAllVacant(ctx, tx, wing, "changed")
		if err != nil {
			return err
		}

		wing.WingName = next.WingName
		wing.NoOfFloors = next.NoOfFloors
		wing.NoOfProperties = next.NoOfProperties
		if err := tx.Wing.Update(ctx, wing); err != nil {
			return fmt.Errorf("failed to update wing: %w", err)
		}

		floors, err := tx.Wing.ReplaceFloors(ctx, wing.ID, next.Floors)
		if err != nil {
			return fmt.Errorf("failed to replace floors: %w", err)
		}
		wing.Floors = floors

		if err := removeUnits(ctx, tx, wing, locked, "changed"); err != nil {
			return err
		}
		return tx.Unit.CreateBatch(ctx, inventory.LayoutUnits(wing))
	})
	if err != nil {
		return nil, err
	}

	s.saved(ctx, wing, AuditUpdate, actor)
	return s.FindByID(ctx, projectID, wingID)
}

// Delete soft deletes a wing and its units
func (s *WingService) Delete(ctx context.Context, projectID, wingID uint, actor Actor) error {
	var name string
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		wing, err := s.wingInProject(ctx, tx, projectID, wingID)
		if err != nil {
			return err
		}
		locked, err := ensureAllVacant(ctx, tx, wing, "deleted")
		if err != nil {
			return err
		}
		name = wing.WingName
		if err := removeUnits(ctx, tx, wing, locked, "deleted"); err != nil {
			return err
		}
		return tx.Wing.SoftDelete(ctx, wing.ID)
	})
	if err != nil {
		return err
	}

	s.auditSvc.Log(ctx, actor.UserID, AuditDelete, "Wing", wingID, name, actor.IP, actor.UserAgent)
	return nil
}

// buildWing generates missing floors and runs the wing validation
func (s *WingService) buildWing(in WingInput) (models.Wing, error) {
	rows := in.Floors
	if len(rows) == 0 && !in.Form.ManualFloorEntry {
		generated, err := inventory.GenerateFloors(in.Form.NoOfFloors, s.defaults)
		if err != nil {
			return models.Wing{}, err
		}
		rows = generated
	}
	return inventory.ValidateWing(in.Form, rows)
}

func (s *WingService) wingInProject(ctx context.Context, repos *repository.Repositories, projectID, wingID uint) (*models.Wing, error) {
	wing, err := repos.Wing.FindByID(ctx, wingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("wing %d: %w", wingID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if wing.ProjectID != projectID {
		return nil, fmt.Errorf("wing %d: %w", wingID, ErrNotFound)
	}
	return wing, nil
}

func (s *WingService) saved(ctx context.Context, wing *models.Wing, action string, actor Actor) {
	logger.Info("wing saved", "wing_id", wing.ID, "project_id", wing.ProjectID, "units", wing.NoOfProperties)
	s.auditSvc.Log(ctx, actor.UserID, action, "Wing", wing.ID,
		fmt.Sprintf("%s: %d floors, %d units", wing.WingName, len(wing.Floors), wing.NoOfProperties), actor.IP, actor.UserAgent)
	s.notifier.NotifySuccess(ctx, actor.UserID, "Wing saved",
		fmt.Sprintf("Wing %s saved with %d units", wing.WingName, wing.NoOfProperties), models.NotificationTypeWingSaved)
}

// ensureAllVacant locks the wing's units and returns how many there are.
// A booking on any of them has to wait for the transaction to end.
func ensureAllVacant(ctx context.Context, tx *repository.Repositories, wing *models.Wing, verb string) (int64, error) {
	units, err := tx.Unit.LockByWing(ctx, wing.ID)
	if err != nil {
		return 0, err
	}
	taken := inventory.CountStatuses(units)
	if n := taken.Booked + taken.Registered; n > 0 {
		return 0, apperrors.Conflictf("Wing %s has %d booked or registered units and cannot be %s", wing.WingName, n, verb)
	}
	return int64(len(units)), nil
}

// removeUnits soft deletes the vacant units of a wing. Fewer rows than were
// locked means a unit left VACANT in between, so the whole change is undone.
func removeUnits(ctx context.Context, tx *repository.Repositories, wing *models.Wing, locked int64, verb string) error {
	n, err := tx.Unit.DeleteVacantByWing(ctx, wing.ID)
	if err != nil {
		return fmt.Errorf("failed to remove units: %w", err)
	}
	if n != locked {
		return apperrors.Conflictf("Wing %s has units that were booked meanwhile and cannot be %s", wing.WingName, verb)
	}
	return nil
}
