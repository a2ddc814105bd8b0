// Package inventory holds the floor and unit rules of a wing: generating
// default floor rows, editing them one row at a time, aggregating the unit
// count and laying out the units a committed wing contains.
package inventory

import (
	"fmt"
	"strconv"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
)

// Values every generated row starts with
const (
	DefaultProperty   = "2 BHK"
	GroundFloorName   = "Ground Floor"
	DefaultAreaValue  = "0"
	DefaultUnitsValue = "0"
)

// FloorRow is a floor as entered in a form. Numeric fields stay strings
// until the wing is validated, since users can leave them blank.
type FloorRow struct {
	FloorNo      string `json:"floor_no"`
	FloorName    string `json:"floor_name"`
	PropertyType string `json:"property_type"`
	Property     string `json:"property"`
	Area         string `json:"area"`
	Quantity     string `json:"quantity"`
}

// FloorDefaults are the area and quantity given to generated rows
type FloorDefaults struct {
	Area     string
	Quantity string
}

// DefaultFloorDefaults returns the "0"/"0" defaults
func DefaultFloorDefaults() FloorDefaults {
	return FloorDefaults{Area: DefaultAreaValue, Quantity: DefaultUnitsValue}
}

// DefaultRow builds the generated row for position i
func DefaultRow(i int, d FloorDefaults) FloorRow {
	name := GroundFloorName
	if i > 0 {
		name = fmt.Sprintf("Floor %d", i)
	}
	return FloorRow{
		FloorNo:      strconv.Itoa(i),
		FloorName:    name,
		PropertyType: models.PropertyTypeResidential,
		Property:     DefaultProperty,
		Area:         d.Area,
		Quantity:     d.Quantity,
	}
}

// MaxFloors caps the floors above ground of one wing
const MaxFloors = 200

func checkFloorCount(count int) error {
	if count < 0 {
		return apperrors.FieldValidation("no_of_floors", "No. of floors cannot be negative")
	}
	if count > MaxFloors {
		return apperrors.FieldValidation("no_of_floors",
			fmt.Sprintf("A wing can have at most %d floors above ground", MaxFloors))
	}
	return nil
}

// GenerateFloors returns count+1 rows: the ground floor followed by floors 1..count.
func GenerateFloors(count int, d FloorDefaults) ([]FloorRow, error) {
	if err := checkFloorCount(count); err != nil {
		return nil, err
	}
	rows := make([]FloorRow, 0, count+1)
	for i := 0; i <= count; i++ {
		rows = append(rows, DefaultRow(i, d))
	}
	return rows, nil
}

// ReconcileFloors resizes rows to hold floors 0..count. Extra rows are cut
// from the tail and missing ones are appended with defaults; rows that stay
// are returned untouched. The input slice is never modified.
func ReconcileFloors(rows []FloorRow, count int, d FloorDefaults) ([]FloorRow, error) {
	if err := checkFloorCount(count); err != nil {
		return nil, err
	}
	target := count + 1
	out := make([]FloorRow, 0, target)
	for i := 0; i < len(rows) && i < target; i++ {
		out = append(out, rows[i])
	}
	for i := len(out); i < target; i++ {
		out = append(out, DefaultRow(i, d))
	}
	return out, nil
}
