package registration

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/propease/propease-api/internal/apperrors"
)

// Mutation turns one draft snapshot into the next
type Mutation func(Draft) (Draft, error)

// Store owns every open wizard draft. Drafts are immutable snapshots: a
// mutation receives a private copy and its result replaces the stored value
// in one step, so concurrent requests never observe a half-applied change.
type Store struct {
	mu     sync.Mutex
	drafts map[string]Draft
	now    func() time.Time
}

// NewStore creates an empty draft store
func NewStore() *Store {
	return &Store{
		drafts: make(map[string]Draft),
		now:    time.Now,
	}
}

// Create starts a new draft for ownerID
func (s *Store) Create(ownerID uint) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := NewDraft(ownerID, s.now())
	s.drafts[d.ID] = d
	return d.Clone()
}

// Get returns a copy of the draft
func (s *Store) Get(id string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return Draft{}, fmt.Errorf("registration draft %s: %w", id, apperrors.ErrNotFound)
	}
	return d.Clone(), nil
}

// Update applies fn to the current snapshot. If fn fails the stored draft is
// left exactly as it was.
func (s *Store) Update(id string, fn Mutation) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.drafts[id]
	if !ok {
		return Draft{}, fmt.Errorf("registration draft %s: %w", id, apperrors.ErrNotFound)
	}

	next, err := fn(current.Clone())
	if err != nil {
		return current.Clone(), err
	}
	next.ID = current.ID
	next.OwnerID = current.OwnerID
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = s.now()
	s.drafts[id] = next
	return next.Clone(), nil
}

// BeginSubmit flags the draft as being submitted. A second caller gets a
// ConflictError until EndSubmit or Delete runs.
func (s *Store) BeginSubmit(id string) (Draft, error) {
	return s.Update(id, func(d Draft) (Draft, error) {
		if d.Submitting {
			return d, apperrors.Conflict("Submission already in progress")
		}
		d.Submitting = true
		return d, nil
	})
}

// EndSubmit clears the submitting flag after a failed submission
func (s *Store) EndSubmit(id string) {
	_, _ = s.Update(id, func(d Draft) (Draft, error) {
		d.Submitting = false
		return d, nil
	})
}

// Delete removes the draft
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

// ListByOwner returns the owner's drafts, newest first
func (s *Store) ListByOwner(ownerID uint) []Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Draft, 0)
	for _, d := range s.drafts {
		if d.OwnerID == ownerID {
			out = append(out, d.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

// PurgeIdle removes drafts not touched since cutoff, skipping ones that are
// being submitted, and returns what was removed.
func (s *Store) PurgeIdle(cutoff time.Time) []Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []Draft
	for id, d := range s.drafts {
		if !d.Submitting && d.UpdatedAt.Before(cutoff) {
			removed = append(removed, d)
			delete(s.drafts, id)
		}
	}
	return removed
}

// StoreStats summarises the open drafts
type StoreStats struct {
	Open       int        `json:"open"`
	Submitting int        `json:"submitting"`
	OldestIdle *time.Time `json:"oldest_idle,omitempty"`
}

// Stats counts open drafts and finds the least recently touched one
func (s *Store) Stats() StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := StoreStats{Open: len(s.drafts)}
	for _, d := range s.drafts {
		if d.Submitting {
			stats.Submitting++
		}
		if stats.OldestIdle == nil || d.UpdatedAt.Before(*stats.OldestIdle) {
			updated := d.UpdatedAt
			stats.OldestIdle = &updated
		}
	}
	return stats
}
