package inventory

import (
	"testing"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFloors_ThreeFloors(t *testing.T) {
	rows, err := GenerateFloors(3, DefaultFloorDefaults())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	names := []string{"Ground Floor", "Floor 1", "Floor 2", "Floor 3"}
	for i, r := range rows {
		assert.Equal(t, names[i], r.FloorName)
		assert.Equal(t, []string{"0", "1", "2", "3"}[i], r.FloorNo)
		assert.Equal(t, "Residential", r.PropertyType)
		assert.Equal(t, "2 BHK", r.Property)
		assert.Equal(t, "0", r.Area)
		assert.Equal(t, "0", r.Quantity)
	}
	assert.Equal(t, 0, ComputeTotalUnits(rows))
}

func TestGenerateFloors_ZeroGivesGroundOnly(t *testing.T) {
	rows, err := GenerateFloors(0, DefaultFloorDefaults())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ground Floor", rows[0].FloorName)
}

func TestGenerateFloors_CustomDefaults(t *testing.T) {
	rows, err := GenerateFloors(1, FloorDefaults{Area: "1", Quantity: "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, ComputeTotalUnits(rows))
	assert.Equal(t, "1", rows[1].Area)
}

func TestGenerateFloors_Negative(t *testing.T) {
	_, err := GenerateFloors(-1, DefaultFloorDefaults())
	assert.True(t, apperrors.IsValidation(err))
}

func TestGenerateFloors_OverLimit(t *testing.T) {
	_, err := GenerateFloors(MaxFloors+1, DefaultFloorDefaults())
	assert.True(t, apperrors.IsValidation(err))

	_, err = ReconcileFloors(nil, MaxFloors+1, DefaultFloorDefaults())
	assert.True(t, apperrors.IsValidation(err))

	rows, err := GenerateFloors(MaxFloors, DefaultFloorDefaults())
	require.NoError(t, err)
	assert.Len(t, rows, MaxFloors+1)
}

func TestReconcileFloors_ShrinkKeepsUserEdits(t *testing.T) {
	rows, _ := GenerateFloors(3, DefaultFloorDefaults())
	rows[1].Property = "3 BHK"
	rows[1].Quantity = "4"

	out, err := ReconcileFloors(rows, 1, DefaultFloorDefaults())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Ground Floor", out[0].FloorName)
	assert.Equal(t, "Floor 1", out[1].FloorName)
	assert.Equal(t, "3 BHK", out[1].Property)
	assert.Equal(t, "4", out[1].Quantity)

	// input untouched
	assert.Len(t, rows, 4)
}

func TestReconcileFloors_GrowAppendsDefaults(t *testing.T) {
	rows, _ := GenerateFloors(1, DefaultFloorDefaults())
	rows[0].FloorName = "Podium"

	out, err := ReconcileFloors(rows, 3, DefaultFloorDefaults())
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, "Podium", out[0].FloorName)
	assert.Equal(t, "Floor 2", out[2].FloorName)
	assert.Equal(t, "3", out[3].FloorNo)
}

func TestReconcileFloors_Idempotent(t *testing.T) {
	for count := 0; count <= 12; count++ {
		for start := 0; start <= 12; start++ {
			rows, _ := GenerateFloors(start, DefaultFloorDefaults())
			rows[0].Quantity = "7"

			once, err := ReconcileFloors(rows, count, DefaultFloorDefaults())
			require.NoError(t, err)
			twice, err := ReconcileFloors(once, count, DefaultFloorDefaults())
			require.NoError(t, err)

			assert.Equal(t, once, twice)
			assert.Len(t, once, count+1)
			assert.Equal(t, "7", once[0].Quantity, "existing rows are never regenerated")
		}
	}
}

func TestReconcileFloors_FromEmpty(t *testing.T) {
	out, err := ReconcileFloors(nil, 2, DefaultFloorDefaults())
	require.NoError(t, err)
	generated, _ := GenerateFloors(2, DefaultFloorDefaults())
	assert.Equal(t, generated, out)
}
