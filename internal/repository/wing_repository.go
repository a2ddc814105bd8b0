package repository

import (
	"context"

	"github.com/propease/propease-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WingRepository defines the interface for wing and floor data access
type WingRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Wing, error)
	FindByProject(ctx context.Context, projectID uint) ([]models.Wing, error)
	Create(ctx context.Context, wing *models.Wing) error
	Update(ctx context.Context, wing *models.Wing) error
	SoftDelete(ctx context.Context, id uint) error
	ReplaceFloors(ctx context.Context, wingID uint, floors []models.Floor) ([]models.Floor, error)
	FindFloors(ctx context.Context, wingID uint) ([]models.Floor, error)
}

type wingRepository struct {
	db *gorm.DB
}

func NewWingRepository(db *gorm.DB) WingRepository {
	return &wingRepository{db: db}
}

func (r *wingRepository) FindByID(ctx context.Context, id uint) (*models.Wing, error) {
	var wing models.Wing
	err := r.db.WithContext(ctx).
		Preload("Floors").
		Where("is_deleted = ?", false).
		First(&wing, id).Error
	if err != nil {
		return nil, err
	}
	return &wing, nil
}

func (r *wingRepository) FindByProject(ctx context.Context, projectID uint) ([]models.Wing, error) {
	var wings []models.Wing
	err := r.db.WithContext(ctx).
		Preload("Floors").
		Where("project_id = ? AND is_deleted = ?", projectID, false).
		Order("wing_name ASC").
		Find(&wings).Error
	return wings, err
}

// Create inserts the wing and its floors. Floor ids are filled in on return.
func (r *wingRepository) Create(ctx context.Context, wing *models.Wing) error {
	for i := range wing.Floors {
		wing.Floors[i].ProjectID = wing.ProjectID
	}
	return r.db.WithContext(ctx).Omit("Units", "Project").Create(wing).Error
}

func (r *wingRepository) Update(ctx context.Context, wing *models.Wing) error {
	return r.db.WithContext(ctx).
		Omit("Floors", "Units", "Project").
		Save(wing).Error
}

func (r *wingRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Wing{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

// ReplaceFloors deletes the wing's floors and inserts the given ones
func (r *wingRepository) ReplaceFloors(ctx context.Context, wingID uint, floors []models.Floor) ([]models.Floor, error) {
	db := r.db.WithContext(ctx)

	var wing models.Wing
	if err := db.Select("id", "project_id").First(&wing, wingID).Error; err != nil {
		return nil, err
	}
	if err := db.Where("wing_id = ?", wingID).Delete(&models.Floor{}).Error; err != nil {
		return nil, err
	}
	if len(floors) == 0 {
		return floors, nil
	}
	for i := range floors {
		floors[i].ID = 0
		floors[i].WingID = wingID
		floors[i].ProjectID = wing.ProjectID
	}
	if err := db.Create(&floors).Error; err != nil {
		return nil, err
	}
	return floors, nil
}

func (r *wingRepository) FindFloors(ctx context.Context, wingID uint) ([]models.Floor, error) {
	var floors []models.Floor
	err := r.db.WithContext(ctx).
		Where("wing_id = ?", wingID).
		Order("floor_no ASC").
		Find(&floors).Error
	if err != nil {
		return nil, err
	}
	models.SortFloors(floors)
	return floors, nil
}

// UnitRepository defines the interface for unit data access
type UnitRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Unit, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Unit, error)
	FindByWing(ctx context.Context, wingID uint) ([]models.Unit, error)
	List(ctx context.Context, projectID uint, query *ListQuery) ([]models.Unit, int64, error)
	CreateBatch(ctx context.Context, units []models.Unit) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	LockByWing(ctx context.Context, wingID uint) ([]models.Unit, error)
	DeleteVacantByWing(ctx context.Context, wingID uint) (int64, error)
	FindByProject(ctx context.Context, projectID uint) ([]models.Unit, error)
}

type unitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) FindByID(ctx context.Context, id uint) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.WithContext(ctx).
		Preload("Wing").
		Preload("Floor").
		Where("is_deleted = ?", false).
		First(&unit, id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// FindByIDForUpdate loads the unit with a row lock held until the
// surrounding transaction ends. Dialects without row locks ignore it.
func (r *unitRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("is_deleted = ?", false).
		First(&unit, id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) FindByWing(ctx context.Context, wingID uint) ([]models.Unit, error) {
	var units []models.Unit
	err := r.db.WithContext(ctx).
		Where("wing_id = ? AND is_deleted = ?", wingID, false).
		Order("id ASC").
		Find(&units).Error
	return units, err
}

func (r *unitRepository) FindByProject(ctx context.Context, projectID uint) ([]models.Unit, error) {
	var units []models.Unit
	err := r.db.WithContext(ctx).
		Preload("Wing").
		Preload("Floor").
		Where("project_id = ? AND is_deleted = ?", projectID, false).
		Order("wing_id ASC, id ASC").
		Find(&units).Error
	return units, err
}

func (r *unitRepository) List(ctx context.Context, projectID uint, query *ListQuery) ([]models.Unit, int64, error) {
	var units []models.Unit
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Unit{}).
		Where("project_id = ? AND is_deleted = ?", projectID, false)

	if query.Search != "" {
		db = db.Where("LOWER(unit_number) LIKE ?", query.searchPattern())
	}
	if val := query.Filters["wing_id"]; val != "" {
		db = db.Where("wing_id = ?", val)
	}
	if val := query.Filters["floor_id"]; val != "" {
		db = db.Where("floor_id = ?", val)
	}
	if val := query.Filters["status"]; val != "" {
		db = db.Where("status = ?", val)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order(query.Order([]string{"unit_number", "status", "area"}, "wing_id ASC, id ASC"))
	err := paginate(db, query).Preload("Wing").Preload("Floor").Find(&units).Error
	return units, total, err
}

func (r *unitRepository) CreateBatch(ctx context.Context, units []models.Unit) error {
	if len(units) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Wing", "Floor").CreateInBatches(units, 200).Error
}

func (r *unitRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Unit{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// LockByWing loads the live units of a wing with row locks held until the
// transaction ends
func (r *unitRepository) LockByWing(ctx context.Context, wingID uint) ([]models.Unit, error) {
	var units []models.Unit
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("wing_id = ? AND is_deleted = ?", wingID, false).
		Order("id ASC").
		Find(&units).Error
	return units, err
}

// DeleteVacantByWing soft deletes the vacant units of a wing and reports
// how many rows it touched. Booked and registered units are left alone.
func (r *unitRepository) DeleteVacantByWing(ctx context.Context, wingID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Unit{}).
		Where("wing_id = ? AND is_deleted = ? AND status = ?", wingID, false, models.UnitStatusVacant).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
