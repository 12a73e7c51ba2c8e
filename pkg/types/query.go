// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Intent labels produced by the entity extractor. The label is a coarse hint
// for the conversational layer; matching itself only consumes the filter
// dimensions. Per prd002-extraction R3.1-R3.3.
const (
	IntentSearch       = "search"
	IntentReserve      = "reserve"
	IntentDietaryCheck = "dietary_check"
	IntentRecommend    = "recommend"
)

// SearchFilters is the structured search intent extracted from one free-text
// query. Produced fresh per query and never persisted. Zero values mean
// "filter not set": empty strings for tags, 0 for the price tier — a price is
// never defaulted (prd002-extraction R2.4).
type SearchFilters struct {
	// Cuisine is the canonical cuisine tag, e.g. "italian".
	Cuisine string `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`

	// Dietary is the canonical dietary tag, e.g. "vegetarian".
	Dietary string `json:"dietary,omitempty" yaml:"dietary,omitempty"`

	// PriceLevel is the requested price tier, 1-4. Zero means unset.
	PriceLevel int `json:"price_level,omitempty" yaml:"price_level,omitempty"`

	// Amenity is the canonical amenity tag, e.g. "outdoor_seating".
	Amenity string `json:"amenity,omitempty" yaml:"amenity,omitempty"`

	// Intent is the coarse intent label (IntentSearch when nothing else matched).
	Intent string `json:"intent" yaml:"intent"`

	// Remainder is the normalized (lowercased, space-collapsed) query text.
	// The matcher runs its name/dish/feature substring checks against it.
	Remainder string `json:"remainder,omitempty" yaml:"remainder,omitempty"`
}

// IsEmpty reports whether no filter dimension was recognized. The remainder
// and intent label do not count: an unmatched query is a valid,
// low-information result, not an error (prd002-extraction R2.5).
func (f SearchFilters) IsEmpty() bool {
	return f.Cuisine == "" && f.Dietary == "" && f.PriceLevel == 0 && f.Amenity == ""
}

// DietaryProfile is a user's restriction and allergy set, supplied by a
// collaborator per user. The engine treats it as a read-only value; slice
// order drives the deterministic ordering of analyzer messages
// (prd003-dietary R1.2, R6.1).
type DietaryProfile struct {
	// Restrictions lists dietary restriction tags, e.g. "vegan", "halal".
	Restrictions []string `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`

	// Allergies lists allergy tags, e.g. "nuts", "shellfish".
	Allergies []string `json:"allergies,omitempty" yaml:"allergies,omitempty"`
}

// IsEmpty reports whether the profile carries no restrictions or allergies.
func (p DietaryProfile) IsEmpty() bool {
	return len(p.Restrictions) == 0 && len(p.Allergies) == 0
}
