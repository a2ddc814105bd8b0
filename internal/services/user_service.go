package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/jobs"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/pkg/logger"
	"gorm.io/gorm"
)

// UserInput carries the editable fields of a staff account
type UserInput struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

// UserService handles staff accounts and their project assignments
type UserService struct {
	repos        *repository.Repositories
	worker       *jobs.Worker
	emailService *EmailService
	notifier     Notifier
	auditSvc     *AuditService
}

func NewUserService(repos *repository.Repositories, worker *jobs.Worker, emailService *EmailService, notifier Notifier, auditSvc *AuditService) *UserService {
	return &UserService{
		repos:        repos,
		worker:       worker,
		emailService: emailService,
		notifier:     notifier,
		auditSvc:     auditSvc,
	}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repos.User.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *UserService) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	return s.repos.User.List(ctx, query)
}

// Create adds a staff account and sends the welcome email in the background
func (s *UserService) Create(ctx context.Context, in UserInput, actor Actor) (*models.User, error) {
	if err := validateUserInput(in); err != nil {
		return nil, err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	createdBy := actor.UserID
	user := &models.User{
		Email:             strings.ToLower(strings.TrimSpace(in.Email)),
		FullName:          strings.TrimSpace(in.FullName),
		Phone:             strings.TrimSpace(in.Phone),
		Role:              in.Role,
		EncryptedPassword: hashed,
		CreatedBy:         &createdBy,
	}
	if err := s.repos.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("A user with this email already exists")
		}
		return nil, err
	}

	s.worker.EnqueueAsync("account-created-email", func(ctx context.Context) error {
		return s.emailService.SendAccountCreated(ctx, user)
	})
	s.auditSvc.Log(ctx, actor.UserID, AuditCreate, "User", user.ID,
		fmt.Sprintf("%s (%s), role %s", user.FullName, user.Email, user.Role), actor.IP, actor.UserAgent)
	return user, nil
}

// Update changes profile fields and role. The password is left alone.
func (s *UserService) Update(ctx context.Context, id uint, in UserInput, actor Actor) (*models.User, error) {
	if err := validateUserInput(in); err != nil {
		return nil, err
	}
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID == actor.UserID && in.Role != user.Role {
		return nil, apperrors.Conflict("You cannot change your own role")
	}

	user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	user.FullName = strings.TrimSpace(in.FullName)
	user.Phone = strings.TrimSpace(in.Phone)
	user.Role = in.Role
	if err := s.repos.User.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("A user with this email already exists")
		}
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditUpdate, "User", user.ID, user.Email, actor.IP, actor.UserAgent)
	return user, nil
}

// Delete discards the account and signs it out everywhere
func (s *UserService) Delete(ctx context.Context, id uint, actor Actor) error {
	if id == actor.UserID {
		return apperrors.Conflict("You cannot delete your own account")
	}
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.User.SoftDelete(ctx, id); err != nil {
			return err
		}
		return tx.RefreshToken.DeleteByUser(ctx, id)
	})
	if err != nil {
		return err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditDelete, "User", id, "", actor.IP, actor.UserAgent)
	return nil
}

// ToggleStatus switches an account between active and inactive
func (s *UserService) ToggleStatus(ctx context.Context, id uint, actor Actor) (*models.User, error) {
	if id == actor.UserID {
		return nil, apperrors.Conflict("You cannot deactivate your own account")
	}
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Status == models.StatusActive {
		user.Status = models.StatusInactive
	} else {
		user.Status = models.StatusActive
	}
	if err := s.repos.User.Update(ctx, user); err != nil {
		return nil, err
	}
	if user.Status == models.StatusInactive {
		if err := s.repos.RefreshToken.DeleteByUser(ctx, id); err != nil {
			logger.Warn("failed to revoke refresh tokens", "user_id", id, "error", err)
		}
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditUpdate, "User", id, "status "+user.Status, actor.IP, actor.UserAgent)
	return user, nil
}

// ChangePassword lets users change their own password
func (s *UserService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(currentPassword, user.EncryptedPassword) {
		return apperrors.FieldValidation("current_password", "Current password is incorrect")
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	return s.setPassword(ctx, user, newPassword)
}

// ResetPassword gives the user a new random password, revokes their
// sessions and returns the password so an admin can hand it over
func (s *UserService) ResetPassword(ctx context.Context, id uint, actor Actor) (string, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	password, err := GenerateTempPassword(12)
	if err != nil {
		return "", err
	}
	if err := s.setPassword(ctx, user, password); err != nil {
		return "", err
	}
	if err := s.repos.RefreshToken.DeleteByUser(ctx, id); err != nil {
		return "", err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditUpdate, "User", id, "password reset", actor.IP, actor.UserAgent)
	return password, nil
}

// AssignProjects replaces an employee's project list. Every id must name a
// live project and the list may not be empty.
func (s *UserService) AssignProjects(ctx context.Context, userID uint, projectIDs []uint, actor Actor) (*models.User, error) {
	ids := uniqueIDs(projectIDs)
	if len(ids) == 0 {
		return nil, apperrors.Conflict("At least one project must be assigned")
	}
	if _, err := s.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		n, err := tx.Project.CountExisting(ctx, ids)
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return apperrors.FieldValidation("project_ids", "One or more projects do not exist")
		}
		return tx.User.ReplaceProjects(ctx, userID, ids)
	})
	if err != nil {
		return nil, err
	}

	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, actor.UserID, AuditAssign, "User", userID,
		"projects "+repository.FormatIDList(ids), actor.IP, actor.UserAgent)
	s.notifier.NotifySuccess(ctx, userID, "Projects assigned",
		fmt.Sprintf("You now have access to %d project(s)", len(user.Projects)), models.NotificationTypeProjectAssigned)
	s.worker.EnqueueAsync("projects-assigned-email", func(ctx context.Context) error {
		return s.emailService.SendProjectsAssigned(ctx, user, user.Projects)
	})
	return user, nil
}

// CanAccessProject reports whether the actor may work on the project.
// Admins may access every project.
func (s *UserService) CanAccessProject(ctx context.Context, actor Actor, projectID uint) (bool, error) {
	if actor.IsAdmin() {
		return true, nil
	}
	return s.repos.User.HasProject(ctx, actor.UserID, projectID)
}

func (s *UserService) setPassword(ctx context.Context, user *models.User, password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.EncryptedPassword = hashed
	return s.repos.User.Update(ctx, user)
}

func validateUserInput(in UserInput) error {
	if strings.TrimSpace(in.FullName) == "" {
		return apperrors.FieldValidation("full_name", "Full name is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		return apperrors.FieldValidation("email", "Please enter a valid email address")
	}
	if !models.ValidRole(in.Role) {
		return apperrors.FieldValidation("role", "Role must be ADMIN or EMPLOYEE")
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
