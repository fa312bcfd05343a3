package service_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yalrayes/rihla/internal/domain"
	"github.com/yalrayes/rihla/internal/repo"
)

// memPreferenceRepo is an in-memory PreferenceRepo used to exercise the
// record lifecycle across many operations without a database.
type memPreferenceRepo struct {
	nextID  int64
	records map[int64]*domain.Preference
}

func newMemPreferenceRepo() *memPreferenceRepo {
	return &memPreferenceRepo{nextID: 1, records: make(map[int64]*domain.Preference)}
}

var _ repo.PreferenceRepo = (*memPreferenceRepo)(nil)

func (m *memPreferenceRepo) Replace(_ context.Context, pref domain.Preference) (domain.Preference, error) {
	for _, r := range m.records {
		if r.UserID == pref.UserID {
			r.Active = false
		}
	}
	pref.ID = m.nextID
	m.nextID++
	pref.Active = true
	pref.CreatedAt = time.Now()
	stored := pref
	m.records[stored.ID] = &stored
	return stored, nil
}

func (m *memPreferenceRepo) GetByID(_ context.Context, id int64) (domain.Preference, error) {
	r, ok := m.records[id]
	if !ok {
		return domain.Preference{}, domain.ErrNotFound
	}
	return *r, nil
}

func (m *memPreferenceRepo) GetActiveByUserID(_ context.Context, userID int64) (domain.Preference, error) {
	for _, r := range m.records {
		if r.UserID == userID && r.Active {
			return *r, nil
		}
	}
	return domain.Preference{}, domain.ErrNotFound
}

func (m *memPreferenceRepo) DeactivateForUser(_ context.Context, userID int64) error {
	for _, r := range m.records {
		if r.UserID == userID {
			r.Active = false
		}
	}
	return nil
}

func (m *memPreferenceRepo) MarkRevealed(_ context.Context, id int64) (domain.Preference, error) {
	r, ok := m.records[id]
	if !ok {
		return domain.Preference{}, domain.ErrNotFound
	}
	r.Revealed = true
	return *r, nil
}

// activeCount reports how many active records a user holds.
func (m *memPreferenceRepo) activeCount(userID int64) int {
	n := 0
	for _, r := range m.records {
		if r.UserID == userID && r.Active {
			n++
		}
	}
	return n
}

// TestPreferenceLifecycle_SingleActiveInvariant drives a random sequence of
// submit, reveal, and cancel operations for several users and checks after
// every step that no user ever holds more than one active record, and that
// revealed never flips back to false.
func TestPreferenceLifecycle_SingleActiveInvariant(t *testing.T) {
	const (
		users = 4
		steps = 500
	)

	mem := newMemPreferenceRepo()
	svc := newPrefService(mem)
	rng := rand.New(rand.NewSource(1))
	ctx := context.Background()

	// last submitted record id per user, for reveal and cancel targets
	lastID := make(map[int64]int64)
	revealedIDs := make(map[int64]bool)

	for step := 0; step < steps; step++ {
		userID := int64(rng.Intn(users) + 1)

		switch rng.Intn(3) {
		case 0: // submit
			in := validInput()
			in.Budget = 200 + rng.Intn(9801)
			if rng.Intn(2) == 0 {
				in.RevealPreference = domain.RevealNow
			}
			pref, err := svc.Submit(ctx, userID, in)
			require.NoError(t, err)
			lastID[userID] = pref.ID
			if pref.Revealed {
				revealedIDs[pref.ID] = true
			}

		case 1: // reveal
			id, ok := lastID[userID]
			if !ok {
				continue
			}
			pref, err := svc.Reveal(ctx, userID, id)
			require.NoError(t, err)
			assert.True(t, pref.Revealed)
			revealedIDs[id] = true

		case 2: // cancel
			id, ok := lastID[userID]
			if !ok {
				continue
			}
			err := svc.Cancel(ctx, userID, id)
			require.NoError(t, err)
			_, err = svc.GetActive(ctx, userID)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		}

		for u := int64(1); u <= users; u++ {
			require.LessOrEqual(t, mem.activeCount(u), 1,
				fmt.Sprintf("user %d holds multiple active records after step %d", u, step))
		}
		for id := range revealedIDs {
			pref, err := mem.GetByID(ctx, id)
			require.NoError(t, err)
			assert.True(t, pref.Revealed, "record %d lost its revealed flag", id)
		}
	}
}

// TestPreferenceLifecycle_SupersededRecordsStayReadable verifies that a
// superseded record remains fetchable by id, just no longer active.
func TestPreferenceLifecycle_SupersededRecordsStayReadable(t *testing.T) {
	mem := newMemPreferenceRepo()
	svc := newPrefService(mem)
	ctx := context.Background()

	first, err := svc.Submit(ctx, 1, validInput())
	require.NoError(t, err)
	second, err := svc.Submit(ctx, 1, validInput())
	require.NoError(t, err)

	old, err := mem.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, old.Active)

	active, err := svc.GetActive(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

// TestPreferenceLifecycle_RevealIdempotent reveals the same record twice and
// expects identical outcomes.
func TestPreferenceLifecycle_RevealIdempotent(t *testing.T) {
	mem := newMemPreferenceRepo()
	svc := newPrefService(mem)
	ctx := context.Background()

	in := validInput()
	in.RevealPreference = domain.RevealLater
	pref, err := svc.Submit(ctx, 1, in)
	require.NoError(t, err)
	assert.False(t, pref.Revealed)

	once, err := svc.Reveal(ctx, 1, pref.ID)
	require.NoError(t, err)
	twice, err := svc.Reveal(ctx, 1, pref.ID)
	require.NoError(t, err)

	assert.True(t, once.Revealed)
	assert.Equal(t, once, twice)
}
