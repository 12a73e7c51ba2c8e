// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RestaurantType labels the service style inferred from a venue name.
// Per prd005-inference R2.1.
type RestaurantType string

const (
	TypeFineDining    RestaurantType = "fine_dining"
	TypeFastCasual    RestaurantType = "fast_casual"
	TypeCafe          RestaurantType = "cafe"
	TypeBarRestaurant RestaurantType = "bar_restaurant"
	TypeCasualDining  RestaurantType = "casual_dining"
)

// InferredAttributes is the output of the attribute-inference heuristics:
// catalog attributes guessed from a venue's name and address. Confidence is
// advisory metadata for downstream human review and never drives exclusion
// (prd005-inference R3.1-R3.5).
type InferredAttributes struct {
	// Cuisines holds the inferred cuisine tags. Name-based inference yields
	// a single primary cuisine; ambiguous names are not multi-labeled.
	Cuisines []string `json:"cuisines" yaml:"cuisines"`

	// PriceLevelBase is the inferred price tier, 1-4.
	PriceLevelBase int `json:"price_level_base" yaml:"price_level_base"`

	// RestaurantType is the inferred service style.
	RestaurantType RestaurantType `json:"restaurant_type" yaml:"restaurant_type"`

	// ExpectedQuality is the predicted diner rating, 0.0-5.0, derived from
	// the service style.
	ExpectedQuality float64 `json:"expected_quality" yaml:"expected_quality"`

	// Confidence scores the inference in [0,100]: base 75, -20 when no
	// cuisine indicator matched, +10 per additional indicator hit, capped at 95.
	Confidence int `json:"confidence" yaml:"confidence"`

	// PriceMultiplier is the location-derived price factor (suburban 1.0,
	// urban 1.3, upscale 1.5). Applied downstream to menu-item base prices,
	// never to the integer price tier.
	PriceMultiplier float64 `json:"price_multiplier" yaml:"price_multiplier"`
}
