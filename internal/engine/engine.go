// Package engine implements the destination-matching engine: a weighted-sum
// score over the static matching profiles, picking the best fit for a
// submitted set of travel preferences.
//
// Scoring is pure arithmetic over in-memory tables. Each of the five
// components contributes a bounded maximum (20+25+30+15+10 = 100); the
// accommodation-requirement component carries the largest weight because
// it is the product's primary differentiator.
package engine

import (
	"fmt"
	"slices"
	"time"

	"github.com/yalrayes/rihla/internal/catalog"
	"github.com/yalrayes/rihla/internal/domain"
)

// Component weight caps.
const (
	maxBudgetScore      = 20
	maxInterestScore    = 25
	maxRequirementScore = 30
	maxSeasonScore      = 15
	maxCompanionScore   = 10
)

// nearBudgetFactor widens the profile budget range to [min*0.8, max*1.2]
// for the half-credit band.
const nearBudgetFactor = 0.2

// Recommendation is the outcome of a selection. Fallback is true when the
// engine could not score (empty profile table, internal scoring failure)
// and substituted the default destination instead; Reason says why. The
// HTTP layer only ships DestinationID, but callers and tests can tell the
// two paths apart.
type Recommendation struct {
	DestinationID string
	Score         float64
	Fallback      bool
	Reason        string
}

// Engine scores preferences against the matching-profile table.
// Construct with New, which validates the tables; the zero value is unusable.
type Engine struct {
	profiles []catalog.Profile
}

// New builds an Engine after checking that the destination catalog and the
// profile table are in lockstep: every destination has exactly one profile
// and every profile resolves to a destination. A mismatch is a fatal
// configuration error — callers should exit, not recover.
func New(destinations []catalog.Destination, profiles []catalog.Profile) (*Engine, error) {
	byID := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if byID[p.DestinationID] {
			return nil, fmt.Errorf("engine.New: duplicate profile for %q", p.DestinationID)
		}
		byID[p.DestinationID] = true
	}
	for _, d := range destinations {
		if !byID[d.ID] {
			return nil, fmt.Errorf("engine.New: destination %q has no matching profile", d.ID)
		}
		delete(byID, d.ID)
	}
	for id := range byID {
		return nil, fmt.Errorf("engine.New: profile %q has no destination in the catalog", id)
	}
	return &Engine{profiles: profiles}, nil
}

// Select returns the highest-scoring destination for the given preferences.
//
// Selection is deterministic: profiles are scored in table order and only a
// strictly higher score displaces the current best, so the earlier profile
// wins ties. A scoring failure never blocks the user's submission — the
// engine falls back to the default destination and says so in the result.
func (e *Engine) Select(in domain.PreferenceInput) (rec Recommendation) {
	defer func() {
		if r := recover(); r != nil {
			rec = Recommendation{
				DestinationID: catalog.DefaultID,
				Fallback:      true,
				Reason:        fmt.Sprintf("scoring panic: %v", r),
			}
		}
	}()

	if len(e.profiles) == 0 {
		return Recommendation{
			DestinationID: catalog.DefaultID,
			Fallback:      true,
			Reason:        "empty profile table",
		}
	}

	best := Recommendation{DestinationID: e.profiles[0].DestinationID, Score: -1}
	for _, p := range e.profiles {
		if s := score(p, in); s > best.Score {
			best = Recommendation{DestinationID: p.DestinationID, Score: s}
		}
	}
	return best
}

// score computes the total match score for one profile.
func score(p catalog.Profile, in domain.PreferenceInput) float64 {
	total := budgetScore(in.Budget, p.Budget)
	total += overlapScore(in.Interests, p.Interests, maxInterestScore)
	total += overlapScore(in.MuslimRequirements, p.Requirements, maxRequirementScore)
	total += seasonScore(in.StartDate, p.Season)
	total += companionScore(in.Companions, p.Companions)
	return total
}

// budgetScore gives full credit inside the profile range (inclusive), half
// credit inside the widened [min*0.8, max*1.2] band, and zero outside.
func budgetScore(budget int, r catalog.Range) float64 {
	b := float64(budget)
	switch {
	case b >= r.Min && b <= r.Max:
		return maxBudgetScore
	case b >= r.Min*(1-nearBudgetFactor) && b <= r.Max*(1+nearBudgetFactor):
		return maxBudgetScore / 2
	default:
		return 0
	}
}

// overlapScore scores a user tag list against a profile tag set:
// weight × (matched tags / user tags). An empty user list scores zero —
// absence of preference is deliberately treated as no match rather than
// skipping the component.
func overlapScore(user, profile []string, weight float64) float64 {
	if len(user) == 0 {
		return 0
	}
	matched := 0
	for _, tag := range user {
		if slices.Contains(profile, tag) {
			matched++
		}
	}
	return weight * float64(matched) / float64(len(user))
}

// seasonScore scales the profile's 1-10 desirability for the trip's season.
func seasonScore(startDate string, s catalog.SeasonScores) float64 {
	var rating int
	switch seasonOf(startDate) {
	case "spring":
		rating = s.Spring
	case "summer":
		rating = s.Summer
	case "fall":
		rating = s.Fall
	default:
		rating = s.Winter
	}
	return maxSeasonScore * float64(rating) / 10
}

// companionScore ranks the user's companion type against the profile's
// preference-ranked list: weight × (len − index) / len, so the first entry
// scores full weight. Absent companion types score zero.
func companionScore(companion string, ranked []string) float64 {
	idx := slices.Index(ranked, companion)
	if idx < 0 {
		return 0
	}
	return maxCompanionScore * float64(len(ranked)-idx) / float64(len(ranked))
}

// seasonOf derives the season from a "YYYY-MM-DD" start date:
// Mar-May spring, Jun-Aug summer, Sep-Nov fall, Dec-Feb winter.
// A missing or unparseable date defaults to summer.
func seasonOf(startDate string) string {
	if startDate == "" {
		return "summer"
	}
	t, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return "summer"
	}
	switch t.Month() {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "fall"
	default:
		return "winter"
	}
}
