package inventory

import (
	"testing"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeRowEditor(t *testing.T) FloorEditor {
	t.Helper()
	rows, err := GenerateFloors(2, DefaultFloorDefaults())
	require.NoError(t, err)
	return NewFloorEditor(rows)
}

func TestFloorEditor_AppendAssignsFloorNo(t *testing.T) {
	e := threeRowEditor(t)

	out, err := e.AddOrUpdate(FloorRow{FloorName: "Terrace", Quantity: "1"}, NoEdit)
	require.NoError(t, err)
	require.Len(t, out.Rows, 4)
	assert.Equal(t, "3", out.Rows[3].FloorNo)
	assert.Equal(t, FloorRow{}, out.Pending)
	assert.Equal(t, NoEdit, out.EditingIndex)
	assert.Len(t, e.Rows, 3, "receiver is not modified")
}

func TestFloorEditor_ReplaceKeepsFloorNo(t *testing.T) {
	e := threeRowEditor(t)

	e, err := e.Edit(1)
	require.NoError(t, err)
	assert.Equal(t, "Floor 1", e.Pending.FloorName)
	assert.True(t, e.IsEditing())

	e = e.SetPending(FloorRow{FloorName: "Mezzanine", Quantity: "2"})
	e, err = e.Commit()
	require.NoError(t, err)

	require.Len(t, e.Rows, 3)
	assert.Equal(t, "Mezzanine", e.Rows[1].FloorName)
	assert.Equal(t, "1", e.Rows[1].FloorNo)
	assert.False(t, e.IsEditing())
	assert.Equal(t, FloorRow{}, e.Pending)
}

func TestFloorEditor_ExplicitFloorNoWins(t *testing.T) {
	e := threeRowEditor(t)
	out, err := e.AddOrUpdate(FloorRow{FloorNo: "10", FloorName: "Sky Lounge"}, NoEdit)
	require.NoError(t, err)
	assert.Equal(t, "10", out.Rows[3].FloorNo)
}

func TestFloorEditor_EmptyNameRejected(t *testing.T) {
	e := threeRowEditor(t)
	e = e.SetPending(FloorRow{FloorName: "   ", Quantity: "3"})

	out, err := e.Commit()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "Floor Name is required", err.Error())
	assert.Equal(t, e, out, "no mutation on error")
	assert.Equal(t, "3", out.Pending.Quantity)
}

func TestFloorEditor_OutOfRangeTarget(t *testing.T) {
	e := threeRowEditor(t)
	_, err := e.AddOrUpdate(FloorRow{FloorName: "X"}, 3)
	assert.True(t, apperrors.IsValidation(err))
	_, err = e.Edit(5)
	assert.True(t, apperrors.IsValidation(err))
	_, err = e.Delete(-1)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFloorEditor_DeleteEditTargetClearsBuffer(t *testing.T) {
	e := threeRowEditor(t)
	e, _ = e.Edit(2)

	out, err := e.Delete(2)
	require.NoError(t, err)
	assert.Len(t, out.Rows, 2)
	assert.Equal(t, NoEdit, out.EditingIndex)
	assert.Equal(t, FloorRow{}, out.Pending)
}

func TestFloorEditor_DeleteBeforeTargetShiftsIt(t *testing.T) {
	e := threeRowEditor(t)
	e, _ = e.Edit(2)

	out, err := e.Delete(0)
	require.NoError(t, err)
	assert.Equal(t, 1, out.EditingIndex)
	assert.Equal(t, "Floor 2", out.Rows[out.EditingIndex].FloorName)
	assert.Equal(t, "Floor 2", out.Pending.FloorName)
}

func TestFloorEditor_DeleteAfterTargetKeepsIt(t *testing.T) {
	e := threeRowEditor(t)
	e, _ = e.Edit(0)

	out, err := e.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, 0, out.EditingIndex)
	assert.Equal(t, "Ground Floor", out.Pending.FloorName)
}

func TestFloorEditor_ResizeDropsVanishedTarget(t *testing.T) {
	e := threeRowEditor(t)
	e, _ = e.Edit(2)

	out, err := e.Resize(0, DefaultFloorDefaults())
	require.NoError(t, err)
	assert.Len(t, out.Rows, 1)
	assert.False(t, out.IsEditing())

	_, err = e.Resize(-2, DefaultFloorDefaults())
	assert.Error(t, err)
}

func TestFloorEditor_SuccessfulOpsAlwaysResetBuffer(t *testing.T) {
	e := threeRowEditor(t)
	ops := []func(FloorEditor) (FloorEditor, error){
		func(e FloorEditor) (FloorEditor, error) {
			return e.AddOrUpdate(FloorRow{FloorName: "A"}, NoEdit)
		},
		func(e FloorEditor) (FloorEditor, error) {
			return e.AddOrUpdate(FloorRow{FloorName: "B"}, 0)
		},
		func(e FloorEditor) (FloorEditor, error) {
			e, _ = e.Edit(1)
			return e.Commit()
		},
	}
	for _, op := range ops {
		dirty := e.SetPending(FloorRow{FloorName: "typed"})
		out, err := op(dirty)
		require.NoError(t, err)
		assert.Equal(t, FloorRow{}, out.Pending)
		assert.Equal(t, NoEdit, out.EditingIndex)
	}
}
