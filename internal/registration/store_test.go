package registration

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UpdateFailureKeepsSnapshot(t *testing.T) {
	s := NewStore()
	d := s.Create(7)

	d, err := s.Update(d.ID, func(d Draft) (Draft, error) {
		d, _, err := AddAmenity(d, "Gym")
		return d, err
	})
	require.NoError(t, err)
	require.Len(t, d.Amenities, 1)

	_, err = s.Update(d.ID, func(d Draft) (Draft, error) {
		d.Amenities = nil
		return d, errors.New("boom")
	})
	require.Error(t, err)

	stored, err := s.Get(d.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Amenities, 1)
	assert.Equal(t, uint(7), stored.OwnerID)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore()
	d := s.Create(1)
	_, err := s.Update(d.ID, func(d Draft) (Draft, error) {
		d, _, err := AddAmenity(d, "Pool")
		return d, err
	})
	require.NoError(t, err)

	got, _ := s.Get(d.ID)
	got.Amenities[0].Name = "changed"

	again, _ := s.Get(d.ID)
	assert.Equal(t, "Pool", again.Amenities[0].Name)
}

func TestStore_UnknownDraft(t *testing.T) {
	s := NewStore()
	_, err := s.Get("nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = s.Update("nope", func(d Draft) (Draft, error) { return d, nil })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_ConcurrentUpdatesAreSerialised(t *testing.T) {
	s := NewStore()
	d := s.Create(1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(d.ID, func(d Draft) (Draft, error) {
				d, _, err := AddBank(d, BankDraft{BankName: "B", BranchName: "X", ContactPerson: "P", ContactNumber: "1", AccountNo: "2"})
				return d, err
			})
		}()
	}
	wg.Wait()

	got, err := s.Get(d.ID)
	require.NoError(t, err)
	assert.Len(t, got.Banks, 50)
}

func TestStore_BeginSubmitIsExclusive(t *testing.T) {
	s := NewStore()
	d := s.Create(1)

	_, err := s.BeginSubmit(d.ID)
	require.NoError(t, err)

	_, err = s.BeginSubmit(d.ID)
	assert.True(t, apperrors.IsConflict(err))

	s.EndSubmit(d.ID)
	_, err = s.BeginSubmit(d.ID)
	assert.NoError(t, err)
}

func TestStore_PurgeIdle(t *testing.T) {
	s := NewStore()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	old := s.Create(1)
	busy := s.Create(1)
	_, err := s.BeginSubmit(busy.ID)
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(48 * time.Hour) }
	fresh := s.Create(1)

	removed := s.PurgeIdle(base.Add(24 * time.Hour))
	require.Len(t, removed, 1)
	assert.Equal(t, old.ID, removed[0].ID)

	stats := s.Stats()
	assert.Equal(t, 2, stats.Open)
	assert.Equal(t, 1, stats.Submitting)
	require.NotNil(t, stats.OldestIdle)
	assert.True(t, stats.OldestIdle.Equal(base))

	owned := s.ListByOwner(1)
	require.Len(t, owned, 2)
	assert.Equal(t, fresh.ID, owned[0].ID)
}
