// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dietary scores how well a restaurant accommodates a user's
// restrictions and allergies.
// Implements: prd003-dietary (R1-R6);
//
//	docs/ARCHITECTURE § Dietary Compatibility.
package dietary

import (
	"fmt"
	"strings"

	"github.com/pdiddy/concierge-engine/pkg/types"
)

// Critical restrictions flip the compatible verdict when unaccommodated,
// on top of the usual score penalty (R2.3). Medical and religious needs
// are not preferences.
var criticalTags = map[string]bool{
	"vegan":          true,
	"gluten-free":    true,
	"nut-free":       true,
	"shellfish-free": true,
	"halal":          true,
	"kosher":         true,
}

// Scoring constants. Each pass contributes independently (R2-R6).
const (
	missingPenalty     = 30 // unaccommodated restriction
	criticalPenalty    = 20 // additional penalty when the restriction is critical
	allergyPenalty     = 10 // per cuisine tag with an allergen overlap
	extensiveBonus     = 10 // more than extensiveThreshold available options
	extensiveThreshold = 5
)

// Analyze computes a compatibility verdict for one restaurant against the
// given restriction and allergy sets. It is pure: the same inputs always
// produce the same result, including message order (R6.1). Passes run in a
// fixed sequence, and within each pass restrictions iterate in caller order
// and cuisines in catalog order.
func Analyze(r types.RestaurantRecord, restrictions, allergies []string) types.CompatibilityResult {
	result := types.CompatibilityResult{
		Compatible: true,
		Score:      100,
	}

	if len(restrictions) == 0 && len(allergies) == 0 {
		result.Recommendations = append(result.Recommendations, "no restrictions specified")
		return result
	}

	accommodationPass(r, restrictions, &result)
	conflictPass(restrictions, &result)
	cuisineRiskPass(r, restrictions, &result)
	allergyRiskPass(r, allergies, &result)
	bonusPass(r, &result)

	result.Score = clampScore(result.Score)
	return result
}

// accommodationPass resolves each restriction against the restaurant's
// declared accommodation entries (R2.1-R2.3). An explicit entry with
// available = true is the only way a tag lands in CompatibleTags; anything
// else, including an entry explicitly marked unavailable, is incompatible.
func accommodationPass(r types.RestaurantRecord, restrictions []string, result *types.CompatibilityResult) {
	for _, tag := range restrictions {
		entry, found := r.DietaryOption(tag)
		if found && entry.Available {
			result.CompatibleTags = append(result.CompatibleTags, tag)
			if entry.Note != "" {
				result.Recommendations = append(result.Recommendations,
					fmt.Sprintf("%s options are available: %s", tag, entry.Note))
			} else {
				result.Recommendations = append(result.Recommendations,
					fmt.Sprintf("%s options are available", tag))
			}
			continue
		}

		result.IncompatibleTags = append(result.IncompatibleTags, tag)
		result.Score -= missingPenalty
		if found && entry.Note != "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s is not accommodated: %s", tag, entry.Note))
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("no %s accommodation listed", tag))
		}

		if criticalTags[strings.ToLower(tag)] {
			result.Compatible = false
			result.Score -= criticalPenalty
		}
	}
}

// conflictPass annotates redundant restriction combinations (R3). It never
// touches the score or the verdict.
func conflictPass(restrictions []string, result *types.CompatibilityResult) {
	for _, rel := range subsumptions {
		if containsFold(restrictions, rel.broader) && containsFold(restrictions, rel.narrower) {
			result.Recommendations = append(result.Recommendations, rel.note)
		}
	}
}

// cuisineRiskPass annotates how each of the restaurant's cuisines usually
// treats each requested restriction (R4). Messages only; the accommodation
// pass alone decides verdicts and tag sets.
func cuisineRiskPass(r types.RestaurantRecord, restrictions []string, result *types.CompatibilityResult) {
	for _, cuisine := range r.Cuisines {
		suitability, ok := suitabilityTable[strings.ToLower(cuisine)]
		if !ok {
			continue
		}
		for _, tag := range restrictions {
			score, ok := suitability[strings.ToLower(tag)]
			if !ok {
				continue
			}
			switch {
			case score >= 80:
				result.Recommendations = append(result.Recommendations,
					fmt.Sprintf("%s cuisine is a strong fit for %s diets", cuisine, tag))
			case score >= 60:
				result.Recommendations = append(result.Recommendations,
					fmt.Sprintf("%s cuisine usually offers %s choices", cuisine, tag))
			case score < 40:
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s cuisine can be difficult for %s diets", cuisine, tag))
			}
		}
	}
}

// allergyRiskPass warns when a cuisine's commonly-present allergens overlap
// the user's allergy set (R5). The penalty applies once per matching cuisine
// tag regardless of how many allergens overlap.
func allergyRiskPass(r types.RestaurantRecord, allergies []string, result *types.CompatibilityResult) {
	if len(allergies) == 0 {
		return
	}
	for _, cuisine := range r.Cuisines {
		common := allergenTable[strings.ToLower(cuisine)]
		var overlap []string
		for _, allergen := range common {
			if containsFold(allergies, allergen) {
				overlap = append(overlap, allergen)
			}
		}
		if len(overlap) == 0 {
			continue
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s cuisine commonly contains %s", cuisine, strings.Join(overlap, ", ")))
		result.Score -= allergyPenalty
	}
}

// bonusPass rewards restaurants with broad accommodation coverage (R6.3).
func bonusPass(r types.RestaurantRecord, result *types.CompatibilityResult) {
	n := r.AvailableDietaryCount()
	if n > extensiveThreshold {
		result.Score += extensiveBonus
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("extensive dietary accommodation (%d options)", n))
	}
}

// containsFold reports whether list contains s, case-insensitively.
func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// clampScore bounds a score into [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
