// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inference guesses catalog attributes from a venue's name and
// address. It backs the synthetic catalog generator; confidence is advisory
// and never excludes a venue.
// Implements: prd005-inference (R1-R3);
//
//	docs/ARCHITECTURE § Attribute Inference.
package inference

import (
	"strings"

	"github.com/pdiddy/concierge-engine/pkg/types"
)

const (
	confidenceBase    = 75
	noCuisinePenalty  = 20
	extraHitBonus     = 10
	confidenceCeiling = 95
)

// Infer derives cuisine, service style, price tier, and a location price
// multiplier from a name/address pair (R1-R3). It is pure and total; empty
// inputs fall through to the declared defaults.
func Infer(name, address string) types.InferredAttributes {
	loweredName := strings.ToLower(name)

	cuisine, confidence := inferCuisine(loweredName)
	style, tier := inferStyle(loweredName)

	return types.InferredAttributes{
		Cuisines:        []string{cuisine},
		PriceLevelBase:  tier,
		RestaurantType:  style,
		ExpectedQuality: expectedQuality[style],
		Confidence:      confidence,
		PriceMultiplier: locationMultiplier(strings.ToLower(address)),
	}
}

// inferCuisine scans the indicator table in order and picks the FIRST
// cuisine with a name hit as primary; only one cuisine is ever inferred
// from a name (R1.1, R1.2). Additional table entries that also hit raise
// confidence; no hit at all falls back to "american" with a penalty (R1.3).
func inferCuisine(loweredName string) (string, int) {
	primary := ""
	hits := 0

	for _, entry := range cuisineIndicators {
		for _, indicator := range entry.indicators {
			if strings.Contains(loweredName, indicator) {
				if primary == "" {
					primary = entry.cuisine
				}
				hits++
				break
			}
		}
	}

	if primary == "" {
		return "american", confidenceBase - noCuisinePenalty
	}

	confidence := confidenceBase + extraHitBonus*(hits-1)
	if confidence > confidenceCeiling {
		confidence = confidenceCeiling
	}
	return primary, confidence
}

// inferStyle resolves the service style and base price tier from name
// markers, checked in a fixed order with first match winning (R2.1, R2.2).
func inferStyle(loweredName string) (types.RestaurantType, int) {
	for _, check := range styleChecks {
		for _, marker := range check.markers {
			if strings.Contains(loweredName, marker) {
				return check.style, check.tier
			}
		}
	}
	return types.TypeCasualDining, 2
}

// locationMultiplier derives the menu price factor from address markers:
// urban 1.3, upscale 1.5 overriding urban, suburban baseline 1.0 (R3.1).
// The multiplier applies to menu base prices downstream, never to the tier.
func locationMultiplier(loweredAddress string) float64 {
	multiplier := 1.0
	for _, marker := range urbanMarkers {
		if strings.Contains(loweredAddress, marker) {
			multiplier = 1.3
			break
		}
	}
	for _, marker := range upscaleMarkers {
		if strings.Contains(loweredAddress, marker) {
			return 1.5
		}
	}
	return multiplier
}
