package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yalrayes/rihla/internal/catalog"
	"github.com/yalrayes/rihla/internal/domain"
	"github.com/yalrayes/rihla/internal/engine"
	"github.com/yalrayes/rihla/internal/repo"
)

// Budget bounds accepted on submission, in Bahraini Dinar.
const (
	minBudget = 200
	maxBudget = 10000
)

// DestinationSelector is the slice of the scoring engine this service
// depends on. Defined here, in the consumer package, so tests can inject a
// canned selector.
type DestinationSelector interface {
	Select(in domain.PreferenceInput) engine.Recommendation
}

// PreferenceService implements the travel-preference record lifecycle:
// submit (supersede any prior active record), reveal, and cancel.
// Every operation that takes a preference id checks ownership before
// touching state; a mismatch returns domain.ErrForbidden with the record
// untouched.
type PreferenceService struct {
	prefs    repo.PreferenceRepo
	selector DestinationSelector
}

// NewPreferenceService constructs a PreferenceService.
func NewPreferenceService(prefs repo.PreferenceRepo, selector DestinationSelector) *PreferenceService {
	return &PreferenceService{prefs: prefs, selector: selector}
}

// Submit validates the payload, scores it against the catalog, and persists
// a new active preference record, superseding any prior active record the
// user had. The record starts revealed when the reveal preference is "now".
func (s *PreferenceService) Submit(ctx context.Context, userID int64, in domain.PreferenceInput) (domain.Preference, error) {
	if err := validateInput(in); err != nil {
		return domain.Preference{}, err
	}

	rec := s.selector.Select(in)
	if rec.Fallback {
		// The submission still goes through with the default destination;
		// the reason is only visible server-side.
		slog.WarnContext(ctx, "scoring fell back to default destination",
			"user_id", userID,
			"reason", rec.Reason,
		)
	}

	timing := in.RevealTiming
	if timing == "" {
		timing = domain.DefaultRevealTiming
	}

	pref := domain.Preference{
		UserID:             userID,
		Budget:             in.Budget,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		Interests:          emptyIfNil(in.Interests),
		Companions:         in.Companions,
		MuslimRequirements: emptyIfNil(in.MuslimRequirements),
		RevealPreference:   in.RevealPreference,
		RevealTiming:       timing,
		DestinationID:      rec.DestinationID,
		Revealed:           in.RevealPreference == domain.RevealNow,
	}

	result, err := s.prefs.Replace(ctx, pref)
	if err != nil {
		return domain.Preference{}, fmt.Errorf("service.PreferenceService.Submit: %w", err)
	}
	return result, nil
}

// GetActive returns the user's current active preference record.
// Returns domain.ErrNotFound when the user has none.
func (s *PreferenceService) GetActive(ctx context.Context, userID int64) (domain.Preference, error) {
	result, err := s.prefs.GetActiveByUserID(ctx, userID)
	if err != nil {
		return domain.Preference{}, fmt.Errorf("service.PreferenceService.GetActive: %w", err)
	}
	return result, nil
}

// Destination resolves the destination chosen for the given preference
// record, after checking the caller owns it. A stored destination id that
// no longer resolves against the catalog falls back to the default entry
// rather than erroring, so old records survive catalog edits.
func (s *PreferenceService) Destination(ctx context.Context, userID, prefID int64) (catalog.Destination, error) {
	pref, err := s.getOwned(ctx, userID, prefID)
	if err != nil {
		return catalog.Destination{}, fmt.Errorf("service.PreferenceService.Destination: %w", err)
	}

	dest, ok := catalog.ByID(pref.DestinationID)
	if !ok {
		dest = catalog.Default()
	}
	return dest, nil
}

// Reveal flips the record to revealed and returns it. Revealing an
// already-revealed record is a harmless no-op returning the same state.
func (s *PreferenceService) Reveal(ctx context.Context, userID, prefID int64) (domain.Preference, error) {
	if _, err := s.getOwned(ctx, userID, prefID); err != nil {
		return domain.Preference{}, fmt.Errorf("service.PreferenceService.Reveal: %w", err)
	}

	result, err := s.prefs.MarkRevealed(ctx, prefID)
	if err != nil {
		return domain.Preference{}, fmt.Errorf("service.PreferenceService.Reveal: %w", err)
	}
	return result, nil
}

// Cancel deactivates the caller's active preference records. The path id
// is used for lookup and the ownership check only; the deactivation is
// owner-scoped ("cancel my current plan"), not record-scoped. See DESIGN.md.
func (s *PreferenceService) Cancel(ctx context.Context, userID, prefID int64) error {
	if _, err := s.getOwned(ctx, userID, prefID); err != nil {
		return fmt.Errorf("service.PreferenceService.Cancel: %w", err)
	}

	if err := s.prefs.DeactivateForUser(ctx, userID); err != nil {
		return fmt.Errorf("service.PreferenceService.Cancel: %w", err)
	}
	return nil
}

// getOwned fetches a preference and verifies it belongs to userID.
// The ownership check runs before any state transition so a forbidden
// request can never modify the target record.
func (s *PreferenceService) getOwned(ctx context.Context, userID, prefID int64) (domain.Preference, error) {
	pref, err := s.prefs.GetByID(ctx, prefID)
	if err != nil {
		return domain.Preference{}, err
	}
	if pref.UserID != userID {
		return domain.Preference{}, domain.ErrForbidden
	}
	return pref, nil
}

// validateInput enforces the submission business rules. The handler already
// runs structural validation; repeating the checks here keeps the rules
// intact for non-HTTP callers.
func validateInput(in domain.PreferenceInput) error {
	if in.Budget < minBudget || in.Budget > maxBudget {
		return fmt.Errorf("%w: budget must be between %d and %d", domain.ErrValidation, minBudget, maxBudget)
	}
	if strings.TrimSpace(in.Companions) == "" {
		return fmt.Errorf("%w: companions is required", domain.ErrValidation)
	}
	if in.RevealPreference != domain.RevealNow && in.RevealPreference != domain.RevealLater {
		return fmt.Errorf("%w: reveal_preference must be %q or %q", domain.ErrValidation, domain.RevealNow, domain.RevealLater)
	}
	return nil
}

// emptyIfNil normalizes nil tag slices to empty ones before persistence,
// so stored records and JSON responses never carry null arrays.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
