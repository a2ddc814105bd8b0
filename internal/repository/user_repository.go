package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/propease/propease-api/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.User, int64, error)
	FindAdmins(ctx context.Context) ([]models.User, error)
	ReplaceProjects(ctx context.Context, userID uint, projectIDs []uint) error
	HasProject(ctx context.Context, userID, projectID uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Projects", "is_deleted = ?", false).
		Where("discarded_at IS NULL").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Projects", "is_deleted = ?", false).
		Where("LOWER(email) = LOWER(?) AND discarded_at IS NULL", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Omit("Projects.*").Create(user).Error; err != nil {
		if isDuplicateKeyError(err, "idx_users_email") {
			return fmt.Errorf("%w: a user with this email already exists", ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Omit("Projects").Save(user).Error; err != nil {
		if isDuplicateKeyError(err, "idx_users_email") {
			return fmt.Errorf("%w: a user with this email already exists", ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *userRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("discarded_at", time.Now()).Error
}

func (r *userRepository) Restore(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("discarded_at", nil).Error
}

func (r *userRepository) List(ctx context.Context, query *ListQuery) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	db := r.db.WithContext(ctx).Model(&models.User{}).Where("discarded_at IS NULL")

	// Apply search
	if query.Search != "" {
		search := query.searchPattern()
		db = db.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			search, search, search)
	}

	// Apply role filter
	if query.Filters["role"] != "" {
		db = db.Where("role = ?", query.Filters["role"])
	}

	// Apply status filter
	if query.Filters["status"] != "" {
		db = db.Where("status = ?", query.Filters["status"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order(query.Order([]string{"full_name", "email", "role", "created_at"}, "created_at DESC"))
	err := paginate(db, query).Preload("Projects", "is_deleted = ?", false).Find(&users).Error
	return users, total, err
}

func (r *userRepository) FindAdmins(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND status = ? AND discarded_at IS NULL", models.RoleAdmin, models.StatusActive).
		Find(&users).Error
	return users, err
}

// ReplaceProjects swaps the user's project assignments for projectIDs
func (r *userRepository) ReplaceProjects(ctx context.Context, userID uint, projectIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_projects WHERE user_id = ?", userID).Error; err != nil {
			return err
		}
		for _, projectID := range projectIDs {
			if err := tx.Exec("INSERT INTO user_projects (user_id, project_id) VALUES (?, ?)", userID, projectID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *userRepository) HasProject(ctx context.Context, userID, projectID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("user_projects").
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	return count > 0, err
}
