package inventory

import (
	"testing"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"  ", 0},
		{"abc", 0},
		{"4", 4},
		{" 12 ", 12},
		{"3.7", 3},
		{"8 units", 8},
		{"+2", 2},
		{"-3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuantity(tt.in))
		})
	}
}

func TestComputeTotalUnits(t *testing.T) {
	rows := []FloorRow{
		{Quantity: "4"},
		{Quantity: ""},
		{Quantity: "x"},
		{Quantity: "6"},
	}
	assert.Equal(t, 10, ComputeTotalUnits(rows))
	assert.Equal(t, 0, ComputeTotalUnits(nil))
}

func TestValidateWing_OverridesPropertyCount(t *testing.T) {
	rows := []FloorRow{
		{FloorNo: "0", FloorName: "Ground Floor", PropertyType: "Commercial", Property: "Shop", Area: "350", Quantity: "4"},
		{FloorNo: "1", FloorName: "Floor 1", PropertyType: "Residential", Property: "2 BHK", Area: "650.5", Quantity: "6"},
	}
	wing, err := ValidateWing(WingForm{WingName: " A ", NoOfFloors: 1, NoOfProperties: 999}, rows)
	require.NoError(t, err)

	assert.Equal(t, "A", wing.WingName)
	assert.Equal(t, 10, wing.NoOfProperties)
	assert.Equal(t, 1, wing.NoOfFloors)
	require.Len(t, wing.Floors, 2)
	assert.Equal(t, 650.5, wing.Floors[1].Area)
	assert.Equal(t, 6, wing.Floors[1].Quantity)
	assert.Equal(t, models.PropertyTypeCommercial, wing.Floors[0].PropertyType)
}

func TestValidateWing_Errors(t *testing.T) {
	rows := []FloorRow{{FloorName: "Ground Floor", Quantity: "1"}}

	tests := []struct {
		name    string
		form    WingForm
		rows    []FloorRow
		message string
	}{
		{"blank name", WingForm{WingName: "  "}, rows, "Wing Name is required"},
		{"no floors", WingForm{WingName: "A"}, nil, "At least one floor required"},
		{"bad property type", WingForm{WingName: "A"}, []FloorRow{{FloorName: "G", PropertyType: "Warehouse"}}, "Invalid property type for floor G"},
		{"bad area", WingForm{WingName: "A"}, []FloorRow{{FloorName: "G", Area: "big"}}, "Invalid area for floor G"},
		{"quantity over cap", WingForm{WingName: "A"}, []FloorRow{{FloorName: "Ground Floor", Quantity: "5000000000"}}, "Quantity for floor Ground Floor cannot exceed 1000"},
		{"too many floors", WingForm{WingName: "A", NoOfFloors: 201}, rows, "A wing can have at most 200 floors above ground"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateWing(tt.form, tt.rows)
			require.Error(t, err)
			var v *apperrors.ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.message, v.Message)
		})
	}
}

func TestValidateWing_BlankFieldsDefaulted(t *testing.T) {
	wing, err := ValidateWing(WingForm{WingName: "B"}, []FloorRow{{FloorName: "Ground Floor"}})
	require.NoError(t, err)
	f := wing.Floors[0]
	assert.Equal(t, 0, f.FloorNo)
	assert.Equal(t, models.PropertyTypeResidential, f.PropertyType)
	assert.Equal(t, 0.0, f.Area)
	assert.Equal(t, 0, wing.NoOfProperties)
}

func TestValidateWing_QuantityAtCap(t *testing.T) {
	wing, err := ValidateWing(WingForm{WingName: "A"}, []FloorRow{{FloorName: "Ground Floor", Quantity: "1000"}})
	require.NoError(t, err)
	assert.Equal(t, MaxFloorQuantity, wing.NoOfProperties)
}

func TestRowsFromFloors_RoundTrip(t *testing.T) {
	floors := []models.Floor{{FloorNo: 2, FloorName: "Floor 2", PropertyType: "Residential", Property: "1 BHK", Area: 420.5, Quantity: 3}}
	rows := RowsFromFloors(floors)
	require.Len(t, rows, 1)
	assert.Equal(t, FloorRow{FloorNo: "2", FloorName: "Floor 2", PropertyType: "Residential", Property: "1 BHK", Area: "420.5", Quantity: "3"}, rows[0])
}
