package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/inventory"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/registration"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/pkg/logger"
)

// RegistrationService drives the project registration wizard. Drafts live in
// memory until they are submitted or expire.
type RegistrationService struct {
	store    *registration.Store
	repos    *repository.Repositories
	images   *ImageService
	defaults inventory.FloorDefaults
	notifier Notifier
	auditSvc *AuditService
	ttl      time.Duration
	now      func() time.Time
}

func NewRegistrationService(
	store *registration.Store,
	repos *repository.Repositories,
	images *ImageService,
	defaults inventory.FloorDefaults,
	notifier Notifier,
	auditSvc *AuditService,
	ttl time.Duration,
) *RegistrationService {
	return &RegistrationService{
		store:    store,
		repos:    repos,
		images:   images,
		defaults: defaults,
		notifier: notifier,
		auditSvc: auditSvc,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Start opens a new draft owned by the actor
func (s *RegistrationService) Start(actor Actor) registration.Draft {
	d := s.store.Create(actor.UserID)
	logger.Debug("registration draft started", "draft_id", d.ID, "user_id", actor.UserID)
	return d
}

// Get returns a draft the actor may see. Other users' drafts are reported
// as not found.
func (s *RegistrationService) Get(id string, actor Actor) (registration.Draft, error) {
	d, err := s.store.Get(id)
	if err != nil {
		return registration.Draft{}, err
	}
	if !canEditDraft(d, actor) {
		return registration.Draft{}, fmt.Errorf("registration draft %s: %w", id, ErrNotFound)
	}
	return d, nil
}

// ListOwn returns the actor's open drafts
func (s *RegistrationService) ListOwn(actor Actor) []registration.Draft {
	return s.store.ListByOwner(actor.UserID)
}

// Discard drops a draft and the files uploaded into it
func (s *RegistrationService) Discard(id string, actor Actor) error {
	d, err := s.Get(id, actor)
	if err != nil {
		return err
	}
	if d.Submitting {
		return apperrors.Conflict("Submission already in progress")
	}
	s.store.Delete(id)
	s.deleteFiles(d.Documents)
	return nil
}

func (s *RegistrationService) SetBasicInfo(id string, info registration.BasicInfo, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.SetBasicInfo(d, info), nil
	})
}

// Next validates the current step and moves the draft forward
func (s *RegistrationService) Next(ctx context.Context, id string, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.Next(ctx, d)
	})
}

func (s *RegistrationService) Prev(ctx context.Context, id string, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.Prev(ctx, d)
	})
}

// OpenWing opens the wing editor, empty when wingID is blank
func (s *RegistrationService) OpenWing(id, wingID string, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.OpenWing(d, wingID)
	})
}

func (s *RegistrationService) SetWingForm(id string, form inventory.WingForm, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.SetWingForm(d, form, s.defaults)
	})
}

func (s *RegistrationService) SetPendingRow(id string, row inventory.FloorRow, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.SetPendingRow(d, row)
	})
}

// CommitRow adds a floor row, or replaces the row at editingIndex when it
// is not negative
func (s *RegistrationService) CommitRow(id string, row inventory.FloorRow, editingIndex int, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.CommitRow(d, row, editingIndex)
	})
}

func (s *RegistrationService) EditRow(id string, index int, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.EditRow(d, index)
	})
}

func (s *RegistrationService) DeleteRow(id string, index int, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.DeleteRow(d, index)
	})
}

// SaveWing stores the open wing into the draft and closes the editor
func (s *RegistrationService) SaveWing(id string, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		next, _, err := registration.SaveWing(d)
		return next, err
	})
}

func (s *RegistrationService) CloseWing(id string, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.CloseWing(d), nil
	})
}

func (s *RegistrationService) RemoveWing(id, wingID string, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.RemoveWing(d, wingID)
	})
}

func (s *RegistrationService) AddBank(id string, bank registration.BankDraft, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		next, _, err := registration.AddBank(d, bank)
		return next, err
	})
}

func (s *RegistrationService) RemoveBank(id, bankID string, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.RemoveBank(d, bankID)
	})
}

func (s *RegistrationService) AddAmenity(id, name string, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		next, _, err := registration.AddAmenity(d, name)
		return next, err
	})
}

func (s *RegistrationService) RemoveAmenity(id, amenityID string, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.RemoveAmenity(d, amenityID)
	})
}

// AddDocument stores the uploaded file and attaches it to the draft. The
// file is removed again if the draft rejects it.
func (s *RegistrationService) AddDocument(id, documentType, title string, file multipart.File, header *multipart.FileHeader, actor Actor) (registration.Draft, error) {
	if _, err := s.Get(id, actor); err != nil {
		return registration.Draft{}, err
	}

	path, thumb, err := s.images.SaveDocument(file, header)
	if err != nil {
		return registration.Draft{}, err
	}

	d, err := s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		next, _, err := registration.AddDocument(d, registration.DocumentDraft{
			DocumentType:  documentType,
			Title:         title,
			Path:          path,
			ThumbnailPath: thumb,
		})
		return next, err
	})
	if err != nil {
		s.images.DeleteDocument(path, thumb)
		return registration.Draft{}, err
	}
	return d, nil
}

// RemoveDocument detaches a document and deletes its files
func (s *RegistrationService) RemoveDocument(id, documentID string, actor Actor) (registration.Draft, error) {
	var removed registration.DocumentDraft
	d, err := s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		next, doc, err := registration.RemoveDocument(d, documentID)
		removed = doc
		return next, err
	})
	if err != nil {
		return d, err
	}
	s.deleteFiles([]registration.DocumentDraft{removed})
	return d, nil
}

func (s *RegistrationService) AddDisbursement(id string, m registration.DisbursementDraft, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		next, _, err := registration.AddDisbursement(d, m)
		return next, err
	})
}

func (s *RegistrationService) RemoveDisbursement(id, disbursementID string, actor Actor) (registration.Draft, error) {
	return s.mutate(id, actor, func(d registration.Draft) (registration.Draft, error) {
		return registration.RemoveDisbursement(d, disbursementID)
	})
}

// Submit turns the draft into a project. Project, wings, floors, units and
// resources are written in one transaction; nothing is written when any
// check fails. The draft is removed on success and unlocked on failure.
func (s *RegistrationService) Submit(ctx context.Context, id string, actor Actor) (*models.Project, error) {
	if _, err := s.Get(id, actor); err != nil {
		return nil, err
	}
	d, err := s.store.BeginSubmit(id)
	if err != nil {
		return nil, err
	}

	project, err := s.persist(ctx, d, actor)
	if err != nil {
		s.store.EndSubmit(id)
		s.notifier.NotifyError(ctx, actor.UserID, "Project registration failed",
			failureMessage("Project registration failed", actor, err), models.NotificationTypeProjectRegistered)
		return nil, err
	}

	s.store.Delete(id)
	logger.Info("project registered", "project_id", project.ID, "code", project.ProjectCode,
		"wings", len(project.Wings), "user_id", actor.UserID)
	s.auditSvc.Log(ctx, actor.UserID, AuditCreate, "Project", project.ID,
		fmt.Sprintf("%s (%s), %d units", project.Name, project.ProjectCode, d.TotalUnits()), actor.IP, actor.UserAgent)
	s.notifier.NotifySuccess(ctx, actor.UserID, "Project registered",
		fmt.Sprintf("%s has been registered", project.Name), models.NotificationTypeProjectRegistered)
	return project, nil
}

func (s *RegistrationService) persist(ctx context.Context, d registration.Draft, actor Actor) (*models.Project, error) {
	project, err := registration.BuildProject(d)
	if err != nil {
		return nil, err
	}
	createdBy := actor.UserID
	project.CreatedBy = &createdBy

	// Wings go in after the project so their floors pick up the project id
	wings := project.Wings
	project.Wings = nil

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Project.Create(ctx, project); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		for i := range wings {
			wings[i].ProjectID = project.ID
			if err := tx.Wing.Create(ctx, &wings[i]); err != nil {
				return fmt.Errorf("failed to create wing %s: %w", wings[i].WingName, err)
			}
			if err := tx.Unit.CreateBatch(ctx, inventory.LayoutUnits(&wings[i])); err != nil {
				return fmt.Errorf("failed to create units of wing %s: %w", wings[i].WingName, err)
			}
		}
		if actor.IsAdmin() {
			return nil
		}
		// Employees keep access to what they registered
		user, err := tx.User.FindByID(ctx, actor.UserID)
		if err != nil {
			return err
		}
		return tx.User.ReplaceProjects(ctx, user.ID, append(user.ProjectIDs(), project.ID))
	})
	if err != nil {
		return nil, err
	}

	project.Wings = wings
	return project, nil
}

// PurgeIdle drops drafts that have not been touched within the TTL and
// deletes their uploads. It returns how many drafts were removed.
func (s *RegistrationService) PurgeIdle(ctx context.Context) int {
	removed := s.store.PurgeIdle(s.now().Add(-s.ttl))
	for _, d := range removed {
		s.deleteFiles(d.Documents)
		name := d.Basic.ProjectName
		if name == "" {
			name = "Untitled project"
		}
		s.notifier.NotifyError(ctx, d.OwnerID, "Registration expired",
			fmt.Sprintf("The registration draft for %s expired after %s of inactivity", name, s.ttl), models.NotificationTypeRegistrationExpired)
	}
	if len(removed) > 0 {
		logger.Info("purged idle registration drafts", "count", len(removed))
	}
	return len(removed)
}

// mutate applies fn to a draft the actor owns. The ownership check runs
// under the store lock together with the change.
func (s *RegistrationService) mutate(id string, actor Actor, fn registration.Mutation) (registration.Draft, error) {
	d, err := s.store.Update(id, func(d registration.Draft) (registration.Draft, error) {
		if !canEditDraft(d, actor) {
			return d, fmt.Errorf("registration draft %s: %w", id, ErrNotFound)
		}
		if d.Submitting {
			return d, apperrors.Conflict("Submission already in progress")
		}
		return fn(d)
	})
	if err != nil {
		return registration.Draft{}, err
	}
	return d, nil
}

func (s *RegistrationService) deleteFiles(docs []registration.DocumentDraft) {
	for _, doc := range docs {
		s.images.DeleteDocument(doc.Path, doc.ThumbnailPath)
	}
}

func canEditDraft(d registration.Draft, actor Actor) bool {
	return actor.IsAdmin() || d.OwnerID == actor.UserID
}
