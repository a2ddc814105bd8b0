package inventory

import (
	"testing"

	"github.com/propease/propease-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutUnits(t *testing.T) {
	wing := &models.Wing{
		ID:             4,
		ProjectID:      2,
		NoOfProperties: 3,
		Floors: []models.Floor{
			{ID: 10, FloorNo: 0, PropertyType: "Shop", Area: 320, Quantity: 1},
			{ID: 11, FloorNo: 1, PropertyType: "Flat", Property: "2 BHK", Area: 650, Quantity: 2},
			{ID: 12, FloorNo: 2, PropertyType: "Flat", Quantity: 0},
		},
	}

	units := LayoutUnits(wing)

	require.Len(t, units, 3)
	assert.Equal(t, "F0-1", units[0].UnitNumber)
	assert.Equal(t, "F1-1", units[1].UnitNumber)
	assert.Equal(t, "F1-2", units[2].UnitNumber)
	for _, u := range units {
		assert.Equal(t, uint(2), u.ProjectID)
		assert.Equal(t, uint(4), u.WingID)
		assert.Equal(t, models.UnitStatusVacant, u.Status)
	}
	assert.Equal(t, uint(11), units[2].FloorID)
	assert.Equal(t, "2 BHK", units[2].BHK)
	assert.Equal(t, 650.0, units[2].Area)
}

func TestLayoutUnits_SharedFloorNumber(t *testing.T) {
	wing := &models.Wing{
		ID:        1,
		ProjectID: 1,
		Floors: []models.Floor{
			{ID: 1, FloorNo: 1, PropertyType: "Residential", Quantity: 2},
			{ID: 2, FloorNo: 1, PropertyType: "Commercial", Quantity: 1},
		},
	}

	units := LayoutUnits(wing)

	require.Len(t, units, 3)
	assert.Equal(t, "F1-3", units[2].UnitNumber)
	assert.Equal(t, uint(2), units[2].FloorID)
}

func TestCountStatuses(t *testing.T) {
	units := []models.Unit{
		{Status: models.UnitStatusVacant},
		{Status: models.UnitStatusVacant},
		{Status: models.UnitStatusBooked},
		{Status: models.UnitStatusRegistered},
	}

	assert.Equal(t, StatusCounts{Vacant: 2, Booked: 1, Registered: 1, Total: 4}, CountStatuses(units))
	assert.Equal(t, StatusCounts{}, CountStatuses(nil))
}
