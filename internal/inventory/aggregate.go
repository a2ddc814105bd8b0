package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/models"
)

// WingForm is the header of the wing modal. NoOfProperties is accepted for
// round-tripping but ignored: the total always comes from the floor rows.
type WingForm struct {
	WingName         string `json:"wing_name"`
	NoOfFloors       int    `json:"no_of_floors"`
	ManualFloorEntry bool   `json:"manual_floor_entry"`
	NoOfProperties   int    `json:"no_of_properties"`
}

// MaxFloorQuantity caps the units a single floor row may hold
const MaxFloorQuantity = 1000

// ParseQuantity reads the leading integer of s. Blank or non-numeric input
// counts as 0 and so does a negative number.
func ParseQuantity(s string) int {
	n, ok := leadingInt(s)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// ComputeTotalUnits sums the quantity of every row
func ComputeTotalUnits(rows []FloorRow) int {
	total := 0
	for _, r := range rows {
		total += ParseQuantity(r.Quantity)
	}
	return total
}

// ValidateWing checks the form and rows and builds the wing to persist.
// The returned wing carries typed floors and the computed unit total.
func ValidateWing(form WingForm, rows []FloorRow) (models.Wing, error) {
	name := strings.TrimSpace(form.WingName)
	if name == "" {
		return models.Wing{}, apperrors.FieldValidation("wing_name", "Wing Name is required")
	}
	if len(rows) == 0 {
		return models.Wing{}, apperrors.FieldValidation("floors", "At least one floor required")
	}
	if form.NoOfFloors < 0 {
		return models.Wing{}, apperrors.FieldValidation("no_of_floors", "No. of floors cannot be negative")
	}
	if form.NoOfFloors > MaxFloors || len(rows) > MaxFloors+1 {
		return models.Wing{}, apperrors.FieldValidation("no_of_floors",
			fmt.Sprintf("A wing can have at most %d floors above ground", MaxFloors))
	}

	floors := make([]models.Floor, 0, len(rows))
	for i, r := range rows {
		f, err := toFloor(r)
		if err != nil {
			return models.Wing{}, fmt.Errorf("floor row %d: %w", i+1, err)
		}
		floors = append(floors, f)
	}

	return models.Wing{
		WingName:       name,
		NoOfFloors:     form.NoOfFloors,
		NoOfProperties: ComputeTotalUnits(rows),
		Floors:         floors,
	}, nil
}

func toFloor(r FloorRow) (models.Floor, error) {
	if strings.TrimSpace(r.FloorName) == "" {
		return models.Floor{}, apperrors.FieldValidation("floor_name", "Floor Name is required")
	}

	propertyType := strings.TrimSpace(r.PropertyType)
	if propertyType == "" {
		propertyType = models.PropertyTypeResidential
	}
	if !models.ValidPropertyType(propertyType) {
		return models.Floor{}, apperrors.FieldValidation("property_type",
			fmt.Sprintf("Invalid property type for floor %s", r.FloorName))
	}

	floorNo, _ := strconv.Atoi(strings.TrimSpace(r.FloorNo))

	area := 0.0
	if a := strings.TrimSpace(r.Area); a != "" {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || v < 0 {
			return models.Floor{}, apperrors.FieldValidation("area",
				fmt.Sprintf("Invalid area for floor %s", r.FloorName))
		}
		area = v
	}

	quantity := ParseQuantity(r.Quantity)
	if quantity > MaxFloorQuantity {
		return models.Floor{}, apperrors.FieldValidation("quantity",
			fmt.Sprintf("Quantity for floor %s cannot exceed %d", r.FloorName, MaxFloorQuantity))
	}

	return models.Floor{
		FloorNo:      floorNo,
		FloorName:    strings.TrimSpace(r.FloorName),
		PropertyType: propertyType,
		Property:     strings.TrimSpace(r.Property),
		Area:         area,
		Quantity:     quantity,
	}, nil
}

// RowsFromFloors converts persisted floors back into editable rows
func RowsFromFloors(floors []models.Floor) []FloorRow {
	rows := make([]FloorRow, 0, len(floors))
	for _, f := range floors {
		rows = append(rows, FloorRow{
			FloorNo:      strconv.Itoa(f.FloorNo),
			FloorName:    f.FloorName,
			PropertyType: f.PropertyType,
			Property:     f.Property,
			Area:         strconv.FormatFloat(f.Area, 'f', -1, 64),
			Quantity:     strconv.Itoa(f.Quantity),
		})
	}
	return rows
}

// leadingInt parses an optional sign followed by digits at the start of s,
// ignoring surrounding whitespace and anything after the digits.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
