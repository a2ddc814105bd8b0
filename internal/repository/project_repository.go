package repository

import (
	"context"

	"github.com/propease/propease-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*models.Project, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	SoftDelete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Project, int64, error)
	CountExisting(ctx context.Context, ids []uint) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDForUpdate locks the project row for the rest of the transaction.
// Resource writes that check a project-wide total take this lock first.
func (r *projectRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("is_deleted = ?", false).
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDWithDetails loads the project with every live wing and resource
func (r *projectRepository) FindByIDWithDetails(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Wings", "is_deleted = ?", false).
		Preload("Wings.Floors").
		Preload("Banks").
		Preload("Amenities").
		Preload("Documents").
		Preload("Disbursements").
		Where("is_deleted = ?", false).
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Create inserts the project together with the associations it carries
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).
		Omit("Wings", "Banks", "Amenities", "Documents", "Disbursements").
		Save(project).Error
}

func (r *projectRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

// List supports the "project_ids" filter, a restriction set by the service
// for employees, passed as a comma separated id list.
func (r *projectRepository) List(ctx context.Context, query *ListQuery) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Project{}).Where("is_deleted = ?", false)

	if query.Search != "" {
		search := query.searchPattern()
		db = db.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(project_code) LIKE ?", search, search, search)
	}

	if val := query.Filters["status"]; val != "" {
		db = db.Where("status = ?", val)
	}

	if ids, ok := query.Filters["project_ids"]; ok {
		db = db.Where("id IN ?", parseIDList(ids))
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order(query.Order([]string{"name", "project_code", "start_date", "completion_date", "created_at"}, "created_at DESC"))
	err := paginate(db, query).
		Preload("Wings", "is_deleted = ?", false).
		Find(&projects).Error
	return projects, total, err
}

// CountExisting counts how many of ids are live projects
func (r *projectRepository) CountExisting(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id IN ? AND is_deleted = ?", ids, false).
		Count(&count).Error
	return count, err
}
