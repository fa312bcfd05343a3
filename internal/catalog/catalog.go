// Package catalog holds the static destination reference data and the
// per-destination matching profiles used by the scoring engine.
//
// Both tables are package-level values populated at init and never mutated
// afterwards: treat them as process-wide read-only configuration. The two
// tables are keyed by the same destination id; engine.New validates at
// startup that they stay in lockstep.
package catalog

import "math/rand"

// DefaultID is the destination used when scoring cannot produce a match
// and when a stored destination id no longer resolves against the catalog.
const DefaultID = "istanbul"

// Document status values.
const (
	DocRequired    = "required"
	DocRecommended = "recommended"
	DocInfo        = "info"
)

// Range is an inclusive numeric range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Facilities flags describe Muslim-friendly amenities at a destination.
// Alcohol is true when alcohol is effectively absent from public life,
// mirroring how the matching requirement tag of the same name is used.
type Facilities struct {
	Prayer  bool `json:"prayer"`
	Halal   bool `json:"halal"`
	Alcohol bool `json:"alcohol"`
	Privacy bool `json:"privacy"`
}

// CostIndicators gives rough per-item daily price ranges in Bahraini Dinar.
type CostIndicators struct {
	Meal       Range `json:"meal"`
	Transport  Range `json:"transport"`
	Hotel      Range `json:"hotel"`
	Attraction Range `json:"attraction"`
}

// Embassy is the Bahraini embassy contact closest to the destination.
type Embassy struct {
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Emergency string `json:"emergency"`
}

// Document is one entry in a destination's travel-document checklist.
// Status is one of DocRequired, DocRecommended, DocInfo.
type Document struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// Destination is an immutable catalog entry with everything the trip views
// need: display metadata, visa and document requirements, cost indicators,
// and the fixed BHD exchange rate for the budget estimate.
type Destination struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Country        string         `json:"country"`
	Description    string         `json:"description"`
	ImageURL       string         `json:"image_url"`
	Rating         float64        `json:"rating"`
	ReviewCount    int            `json:"review_count"`
	FlightTime     string         `json:"flight_time"`
	BestSeason     string         `json:"best_season"`
	Languages      []string       `json:"languages"`
	Currency       string         `json:"currency"`
	CurrencyCode   string         `json:"currency_code"`
	ExchangeRate   float64        `json:"exchange_rate"`
	TimeDifference string         `json:"time_difference"`
	VisaStatus     string         `json:"visa_status"`
	VisaInfo       string         `json:"visa_info"`
	MuslimFriendly Facilities     `json:"muslim_friendly"`
	Costs          CostIndicators `json:"cost_indicators"`
	Embassy        *Embassy       `json:"embassy,omitempty"`
	Documents      []Document     `json:"documents"`
}

// SeasonScores rates how desirable a destination is in each season, 1-10.
type SeasonScores struct {
	Winter int
	Spring int
	Summer int
	Fall   int
}

// Profile is the scoring metadata for one destination.
// Companions is preference-ranked: earlier entries are a better fit.
type Profile struct {
	DestinationID string
	Budget        Range
	Interests     []string
	Requirements  []string
	Season        SeasonScores
	Companions    []string
	FlightHours   float64
}

// All returns the full catalog in its fixed order.
// Callers must treat the result as read-only.
func All() []Destination {
	return destinations
}

// ByID looks up a destination by id.
func ByID(id string) (Destination, bool) {
	for _, d := range destinations {
		if d.ID == id {
			return d, true
		}
	}
	return Destination{}, false
}

// Default returns the fallback destination. The catalog is defined with
// DefaultID present, so the lookup cannot miss.
func Default() Destination {
	d, _ := ByID(DefaultID)
	return d
}

// Random returns an arbitrary catalog entry, used by the unauthenticated
// preview endpoint.
func Random() Destination {
	return destinations[rand.Intn(len(destinations))]
}

// Recommended returns the fixed subset shown on the explore page: the
// catalog minus the default destination, capped at three entries.
func Recommended() []Destination {
	out := make([]Destination, 0, 3)
	for _, d := range destinations {
		if d.ID == DefaultID {
			continue
		}
		out = append(out, d)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// Profiles returns the matching-profile table in its fixed order.
// The order doubles as the scoring tie-break: on equal scores the earlier
// profile wins, so results are deterministic for identical inputs.
func Profiles() []Profile {
	return profiles
}
