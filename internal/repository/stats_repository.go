package repository

import (
	"context"

	"github.com/propease/propease-api/internal/models"
	"gorm.io/gorm"
)

// WingStats is the unit status breakdown of one wing
type WingStats struct {
	WingID     uint   `json:"wing_id"`
	WingName   string `json:"wing_name"`
	NoOfFloors int    `json:"no_of_floors"`
	Vacant     int    `json:"vacant"`
	Booked     int    `json:"booked"`
	Registered int    `json:"registered"`
	Total      int    `json:"total"`
}

// StatsRepository aggregates unit and booking figures in the database
type StatsRepository interface {
	WingStats(ctx context.Context, projectID uint) ([]WingStats, error)
	BookedValue(ctx context.Context, projectID uint) (float64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// WingStats returns one row per live wing of the project, including wings
// that have no units yet.
func (r *statsRepository) WingStats(ctx context.Context, projectID uint) ([]WingStats, error) {
	var wings []models.Wing
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND is_deleted = ?", projectID, false).
		Order("wing_name ASC").
		Find(&wings).Error
	if err != nil {
		return nil, err
	}

	var rows []struct {
		WingID uint
		Status string
		Count  int
	}
	err = r.db.WithContext(ctx).Model(&models.Unit{}).
		Select("wing_id, status, COUNT(*) as count").
		Where("project_id = ? AND is_deleted = ?", projectID, false).
		Group("wing_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byWing := make(map[uint]*WingStats, len(wings))
	stats := make([]WingStats, len(wings))
	for i, w := range wings {
		stats[i] = WingStats{WingID: w.ID, WingName: w.WingName, NoOfFloors: w.NoOfFloors}
		byWing[w.ID] = &stats[i]
	}
	for _, row := range rows {
		s, ok := byWing[row.WingID]
		if !ok {
			continue
		}
		switch row.Status {
		case models.UnitStatusVacant:
			s.Vacant += row.Count
		case models.UnitStatusBooked:
			s.Booked += row.Count
		case models.UnitStatusRegistered:
			s.Registered += row.Count
		}
		s.Total += row.Count
	}
	return stats, nil
}

// BookedValue sums the agreement amounts of the project's active bookings
func (r *statsRepository) BookedValue(ctx context.Context, projectID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Select("COALESCE(SUM(agreement_amount), 0)").
		Where("project_id = ? AND is_cancelled = ? AND is_deleted = ?", projectID, false, false).
		Scan(&total).Error
	return total, err
}
