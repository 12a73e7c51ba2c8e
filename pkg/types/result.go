// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CompatibilityResult is the outcome of analyzing one restaurant against one
// dietary profile. One instance per (restaurant, profile) pair; the engine
// never caches results across calls. Per prd003-dietary R5.1-R5.4.
type CompatibilityResult struct {
	// Compatible is false when a critical restriction has no available
	// accommodation entry on the restaurant.
	Compatible bool `json:"compatible" yaml:"compatible"`

	// Score is the compatibility score, clamped to [0,100].
	Score int `json:"score" yaml:"score"`

	// Warnings lists problems in pass order: missing accommodations first,
	// then cuisine-risk and allergen-overlap warnings.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Recommendations lists positive and informational notes in pass order.
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`

	// CompatibleTags lists requested restriction tags the restaurant
	// accommodates, in request order.
	CompatibleTags []string `json:"compatible_tags,omitempty" yaml:"compatible_tags,omitempty"`

	// IncompatibleTags lists requested restriction tags with no available
	// accommodation, in request order.
	IncompatibleTags []string `json:"incompatible_tags,omitempty" yaml:"incompatible_tags,omitempty"`
}

// RankedMatch pairs a catalog record with its match score and the reasons
// that contributed to it. Result ordering is the externally visible contract:
// score descending, ties broken by rating descending, then catalog order.
// Per prd004-matching R4.1-R4.3.
type RankedMatch struct {
	// Restaurant is the matched catalog record.
	Restaurant RestaurantRecord `json:"restaurant" yaml:"restaurant"`

	// Score is the accumulated match score.
	Score float64 `json:"score" yaml:"score"`

	// MatchedReasons names each contributing factor in evaluation order.
	MatchedReasons []string `json:"matched_reasons,omitempty" yaml:"matched_reasons,omitempty"`
}
