package domain

import "time"

// Reveal preference values accepted on submission.
// "now" discloses the matched destination immediately; "later" keeps it a
// surprise until the user explicitly reveals it.
const (
	RevealNow   = "now"
	RevealLater = "later"
)

// DefaultRevealTiming is the number of days before the trip at which a
// "later" destination is suggested for reveal, stored as text alongside the
// rest of the preference payload.
const DefaultRevealTiming = "7"

// PreferenceInput is the transient travel-preference payload submitted by a
// user. Validator tags cover the structural rules; the service layer
// re-checks the business rules so it cannot be bypassed from other callers.
//
// StartDate and EndDate are free-form "YYYY-MM-DD" strings. They are kept
// as text end to end: the only consumer is the scoring engine's season
// derivation, which tolerates absent or malformed values.
type PreferenceInput struct {
	Budget             int      `json:"budget" validate:"required,min=200,max=10000"`
	StartDate          string   `json:"start_date,omitempty"`
	EndDate            string   `json:"end_date,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	Companions         string   `json:"companions" validate:"required"`
	MuslimRequirements []string `json:"muslim_requirements,omitempty"`
	RevealPreference   string   `json:"reveal_preference" validate:"required,oneof=now later"`
	RevealTiming       string   `json:"reveal_timing,omitempty"`
}

// Preference is a persisted travel-preference record: the submitted payload
// plus ownership, the matched destination, and the reveal/active state.
//
// At most one Preference per user has Active=true at any time. Revealed is
// set at creation when the reveal preference was "now"; otherwise it starts
// false and is flipped true exactly once by the reveal action. A cancelled
// record keeps its row with Active=false; nothing is physically deleted.
type Preference struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	Budget             int       `json:"budget"`
	StartDate          string    `json:"start_date,omitempty"`
	EndDate            string    `json:"end_date,omitempty"`
	Interests          []string  `json:"interests"`
	Companions         string    `json:"companions"`
	MuslimRequirements []string  `json:"muslim_requirements"`
	RevealPreference   string    `json:"reveal_preference"`
	RevealTiming       string    `json:"reveal_timing"`
	DestinationID      string    `json:"destination_id"`
	Revealed           bool      `json:"revealed"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
}
