package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yalrayes/rihla/internal/domain"
)

// PreferenceRepo defines the persistence operations for travel-preference
// records. Records are never physically deleted: cancel and supersede both
// flip active to false.
type PreferenceRepo interface {
	// Replace deactivates every active preference the user has, then inserts
	// pref as the new active record, inside a single transaction. Returns the
	// persisted record with DB-generated id and created_at populated.
	Replace(ctx context.Context, pref domain.Preference) (domain.Preference, error)

	// GetByID retrieves a preference by primary key, active or not.
	// Returns domain.ErrNotFound if no preference with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Preference, error)

	// GetActiveByUserID returns the user's current active preference.
	// Returns domain.ErrNotFound when the user has none.
	GetActiveByUserID(ctx context.Context, userID int64) (domain.Preference, error)

	// DeactivateForUser flips active to false on every active preference the
	// user has. Deactivating a user with no active records is not an error.
	DeactivateForUser(ctx context.Context, userID int64) error

	// MarkRevealed sets revealed to true and returns the updated record.
	// Setting it on an already-revealed record is a no-op that still
	// returns the record. Returns domain.ErrNotFound for unknown ids.
	MarkRevealed(ctx context.Context, id int64) (domain.Preference, error)
}

// pgPreferenceRepo is the Postgres implementation of PreferenceRepo.
type pgPreferenceRepo struct {
	db db
}

// NewPreferenceRepo constructs a PreferenceRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation (Replace then runs inside a savepoint).
func NewPreferenceRepo(db db) PreferenceRepo {
	return &pgPreferenceRepo{db: db}
}

const preferenceColumns = `id, user_id, budget, start_date, end_date, interests,
	companions, muslim_requirements, reveal_preference, reveal_timing,
	destination_id, revealed, active, created_at`

// Replace runs deactivate-then-insert as one transaction so a crash between
// the two statements cannot strand the user without an active record.
func (r *pgPreferenceRepo) Replace(ctx context.Context, pref domain.Preference) (domain.Preference, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Preference{}, fmt.Errorf("repo.PreferenceRepo.Replace: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	const deactivate = `
		UPDATE travel_preferences
		SET active = false
		WHERE user_id = @user_id AND active`

	if _, err := tx.Exec(ctx, deactivate, pgx.NamedArgs{"user_id": pref.UserID}); err != nil {
		return domain.Preference{}, fmt.Errorf("repo.PreferenceRepo.Replace: deactivate: %w", err)
	}

	const insert = `
		INSERT INTO travel_preferences (user_id, budget, start_date, end_date,
			interests, companions, muslim_requirements, reveal_preference,
			reveal_timing, destination_id, revealed, active)
		VALUES (@user_id, @budget, @start_date, @end_date, @interests,
			@companions, @muslim_requirements, @reveal_preference,
			@reveal_timing, @destination_id, @revealed, true)
		RETURNING ` + preferenceColumns

	args := pgx.NamedArgs{
		"user_id":             pref.UserID,
		"budget":              pref.Budget,
		"start_date":          pref.StartDate,
		"end_date":            pref.EndDate,
		"interests":           pref.Interests,
		"companions":          pref.Companions,
		"muslim_requirements": pref.MuslimRequirements,
		"reveal_preference":   pref.RevealPreference,
		"reveal_timing":       pref.RevealTiming,
		"destination_id":      pref.DestinationID,
		"revealed":            pref.Revealed,
	}

	result, err := scanPreference(tx.QueryRow(ctx, insert, args))
	if err != nil {
		return domain.Preference{}, fmt.Errorf("repo.PreferenceRepo.Replace: insert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Preference{}, fmt.Errorf("repo.PreferenceRepo.Replace: commit: %w", err)
	}
	return result, nil
}

// GetByID retrieves a preference by primary key.
func (r *pgPreferenceRepo) GetByID(ctx context.Context, id int64) (domain.Preference, error) {
	const q = `
		SELECT ` + preferenceColumns + `
		FROM travel_preferences
		WHERE id = @id`

	result, err := scanPreference(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Preference{}, fmt.Errorf("repo.PreferenceRepo.GetByID: %w", err)
	}
	return result, nil
}

// GetActiveByUserID returns the newest active preference for the user.
// The ORDER BY guards against the transient duplicate-active state the
// non-transactional write path could historically produce.
func (r *pgPreferenceRepo) GetActiveByUserID(ctx context.Context, userID int64) (domain.Preference, error) {
	const q = `
		SELECT ` + preferenceColumns + `
		FROM travel_preferences
		WHERE user_id = @user_id AND active
		ORDER BY created_at DESC
		LIMIT 1`

	result, err := scanPreference(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}))
	if err != nil {
		return domain.Preference{}, fmt.Errorf("repo.PreferenceRepo.GetActiveByUserID: %w", err)
	}
	return result, nil
}

// DeactivateForUser flips active to false for all of the user's active records.
func (r *pgPreferenceRepo) DeactivateForUser(ctx context.Context, userID int64) error {
	const q = `
		UPDATE travel_preferences
		SET active = false
		WHERE user_id = @user_id AND active`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID}); err != nil {
		return fmt.Errorf("repo.PreferenceRepo.DeactivateForUser: %w", err)
	}
	return nil
}

// MarkRevealed sets revealed on the record and returns the updated row.
func (r *pgPreferenceRepo) MarkRevealed(ctx context.Context, id int64) (domain.Preference, error) {
	const q = `
		UPDATE travel_preferences
		SET revealed = true
		WHERE id = @id
		RETURNING ` + preferenceColumns

	result, err := scanPreference(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Preference{}, fmt.Errorf("repo.PreferenceRepo.MarkRevealed: %w", err)
	}
	return result, nil
}

// scanPreference maps a single database row into a domain.Preference.
// interests and muslim_requirements are Postgres text[] columns; pgx v5
// scans them into []string directly.
func scanPreference(s scanner) (domain.Preference, error) {
	var p domain.Preference
	err := s.Scan(
		&p.ID, &p.UserID, &p.Budget, &p.StartDate, &p.EndDate, &p.Interests,
		&p.Companions, &p.MuslimRequirements, &p.RevealPreference,
		&p.RevealTiming, &p.DestinationID, &p.Revealed, &p.Active, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Preference{}, domain.ErrNotFound
		}
		return domain.Preference{}, err
	}
	return p, nil
}
