package inventory

import (
	"fmt"

	"github.com/propease/propease-api/internal/models"
)

// UnitNumber formats the number of the n-th unit (1-based) on a floor
func UnitNumber(floorNo, n int) string {
	return fmt.Sprintf("F%d-%d", floorNo, n)
}

// LayoutUnits expands the persisted floors of a wing into vacant units, one
// per quantity slot. Floors must already carry their database ids. Rows that
// share a floor number continue the same counter.
func LayoutUnits(wing *models.Wing) []models.Unit {
	units := make([]models.Unit, 0, wing.NoOfProperties)
	next := make(map[int]int)
	for _, f := range wing.Floors {
		for i := 0; i < f.Quantity; i++ {
			next[f.FloorNo]++
			n := next[f.FloorNo]
			units = append(units, models.Unit{
				ProjectID:    wing.ProjectID,
				WingID:       wing.ID,
				FloorID:      f.ID,
				UnitNumber:   UnitNumber(f.FloorNo, n),
				PropertyType: f.PropertyType,
				BHK:          f.Property,
				Area:         f.Area,
				Status:       models.UnitStatusVacant,
			})
		}
	}
	return units
}

// StatusCounts tallies units per status
type StatusCounts struct {
	Vacant     int `json:"vacant"`
	Booked     int `json:"booked"`
	Registered int `json:"registered"`
	Total      int `json:"total"`
}

// CountStatuses tallies the given units
func CountStatuses(units []models.Unit) StatusCounts {
	var c StatusCounts
	for _, u := range units {
		switch u.Status {
		case models.UnitStatusVacant:
			c.Vacant++
		case models.UnitStatusBooked:
			c.Booked++
		case models.UnitStatusRegistered:
			c.Registered++
		}
		c.Total++
	}
	return c
}
