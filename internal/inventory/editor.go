package inventory

import (
	"strconv"
	"strings"

	"github.com/propease/propease-api/internal/apperrors"
)

// NoEdit marks an editor with no row selected for editing
const NoEdit = -1

// FloorEditor holds the committed rows of a wing form plus the row currently
// being typed. Every method returns a new editor and leaves the receiver
// unchanged, so an editor can be shared as an immutable snapshot.
type FloorEditor struct {
	Rows         []FloorRow `json:"rows"`
	Pending      FloorRow   `json:"pending"`
	EditingIndex int        `json:"editing_index"`
}

// NewFloorEditor starts an editor over a copy of rows
func NewFloorEditor(rows []FloorRow) FloorEditor {
	return FloorEditor{Rows: cloneRows(rows), EditingIndex: NoEdit}
}

// Clone returns a deep copy
func (e FloorEditor) Clone() FloorEditor {
	e.Rows = cloneRows(e.Rows)
	return e
}

// IsEditing reports whether a committed row is loaded into the buffer
func (e FloorEditor) IsEditing() bool {
	return e.EditingIndex != NoEdit
}

// SetPending replaces the input buffer
func (e FloorEditor) SetPending(row FloorRow) FloorEditor {
	out := e.Clone()
	out.Pending = row
	return out
}

// AddOrUpdate commits row. With editingIndex >= 0 it replaces that row,
// otherwise it appends. A blank floor number is taken from the replaced row,
// or from the row's position when appending. On success the buffer and the
// edit target are cleared; on error nothing changes.
func (e FloorEditor) AddOrUpdate(row FloorRow, editingIndex int) (FloorEditor, error) {
	if strings.TrimSpace(row.FloorName) == "" {
		return e, apperrors.FieldValidation("floor_name", "Floor Name is required")
	}
	if editingIndex >= len(e.Rows) || editingIndex < NoEdit {
		return e, apperrors.Validation("Selected floor row does not exist")
	}

	out := e.Clone()
	if editingIndex >= 0 {
		if strings.TrimSpace(row.FloorNo) == "" {
			row.FloorNo = out.Rows[editingIndex].FloorNo
		}
		out.Rows[editingIndex] = row
	} else {
		if strings.TrimSpace(row.FloorNo) == "" {
			row.FloorNo = strconv.Itoa(len(out.Rows))
		}
		out.Rows = append(out.Rows, row)
	}

	out.Pending = FloorRow{}
	out.EditingIndex = NoEdit
	return out, nil
}

// Commit applies AddOrUpdate to the editor's own buffer and edit target
func (e FloorEditor) Commit() (FloorEditor, error) {
	return e.AddOrUpdate(e.Pending, e.EditingIndex)
}

// Edit loads row index into the buffer and marks it as the edit target
func (e FloorEditor) Edit(index int) (FloorEditor, error) {
	if index < 0 || index >= len(e.Rows) {
		return e, apperrors.Validation("Selected floor row does not exist")
	}
	out := e.Clone()
	out.Pending = out.Rows[index]
	out.EditingIndex = index
	return out, nil
}

// Delete removes row index. Deleting the edit target clears the buffer; a
// target after the removed row moves down so it keeps pointing at the same row.
func (e FloorEditor) Delete(index int) (FloorEditor, error) {
	if index < 0 || index >= len(e.Rows) {
		return e, apperrors.Validation("Selected floor row does not exist")
	}
	out := e.Clone()
	out.Rows = append(out.Rows[:index], out.Rows[index+1:]...)

	switch {
	case out.EditingIndex == index:
		out.Pending = FloorRow{}
		out.EditingIndex = NoEdit
	case out.EditingIndex > index:
		out.EditingIndex--
	}
	return out, nil
}

// Resize reconciles the committed rows with a new floor count. An edit
// target that no longer exists is dropped along with the buffer.
func (e FloorEditor) Resize(count int, d FloorDefaults) (FloorEditor, error) {
	rows, err := ReconcileFloors(e.Rows, count, d)
	if err != nil {
		return e, err
	}
	out := e.Clone()
	out.Rows = rows
	if out.EditingIndex >= len(rows) {
		out.Pending = FloorRow{}
		out.EditingIndex = NoEdit
	}
	return out, nil
}

func cloneRows(rows []FloorRow) []FloorRow {
	if rows == nil {
		return []FloorRow{}
	}
	out := make([]FloorRow, len(rows))
	copy(out, rows)
	return out
}
