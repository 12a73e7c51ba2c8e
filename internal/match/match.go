// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match ranks catalog restaurants against extracted search filters.
// Implements: prd004-matching (R1-R5);
//
//	docs/ARCHITECTURE § Matching.
package match

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/concierge-engine/internal/dietary"
	"github.com/pdiddy/concierge-engine/pkg/types"
)

// Scoring constants (R2.1-R2.6). Each factor contributes independently;
// the amenity filter bonus stacks with the feature substring match when
// one feature string satisfies both.
const (
	namePoints    = 10 // restaurant name appears in the query text
	cuisinePoints = 8  // cuisine tag matched via filter or query text
	dishPoints    = 6  // popular dish mentioned in the query text
	featurePoints = 4  // feature string mentioned in the query text
	dietaryPoints = 5  // analyzer-confirmed compatibility with the profile
	amenityPoints = 3  // amenity filter satisfied by a feature string
)

// Match scores every catalog restaurant against the filters, applies hard
// filters, deduplicates, and returns matches sorted by score descending with
// rating and catalog order as tie-breaks (R1.1, R4.1-R4.3).
//
// Cuisine, price, and dietary-availability filters are pass/fail: a
// restaurant that misses one never appears, regardless of score (R3.1-R3.3).
// Amenity filters only affect ranking. profile may be nil; it enables the
// dietary compatibility bonus but is not required for the dietary hard
// filter.
func Match(catalog []types.RestaurantRecord, filters types.SearchFilters, profile *types.DietaryProfile) []types.RankedMatch {
	var matches []types.RankedMatch

	for _, r := range dedupe(catalog) {
		if !passesFilters(r, filters) {
			continue
		}

		score, reasons, dims := scoreRestaurant(r, filters, profile)

		// Never return rows that matched nothing (R3.4). A zero score
		// survives only when an explicitly requested dimension was
		// satisfied, as in a price-only query.
		if score == 0 && dims == 0 {
			continue
		}

		matches = append(matches, types.RankedMatch{
			Restaurant:     r,
			Score:          score,
			MatchedReasons: reasons,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Restaurant.Rating > matches[j].Restaurant.Rating
	})

	return matches
}

// passesFilters applies the hard filters: cuisine, price tier, and dietary
// availability (R3.1-R3.3). A stated dietary need is never traded off
// against score.
func passesFilters(r types.RestaurantRecord, filters types.SearchFilters) bool {
	if filters.Cuisine != "" && !r.HasCuisine(filters.Cuisine) {
		return false
	}
	if filters.PriceLevel != 0 && r.PriceLevel != filters.PriceLevel {
		return false
	}
	if filters.Dietary != "" && !r.AccommodatesDietary(filters.Dietary) {
		return false
	}
	return true
}

// scoreRestaurant accumulates the additive factors (R2.1-R2.6) and reports
// how many explicitly requested filter dimensions this restaurant satisfied.
// Reasons are appended in evaluation order so output is reproducible.
func scoreRestaurant(r types.RestaurantRecord, filters types.SearchFilters, profile *types.DietaryProfile) (float64, []string, int) {
	var score float64
	var reasons []string
	dims := 0

	text := filters.Remainder

	if name := strings.ToLower(r.Name); name != "" && strings.Contains(text, name) {
		score += namePoints
		reasons = append(reasons, "name match")
	}

	if cuisineMatched(r, filters, text) {
		score += cuisinePoints
		reasons = append(reasons, "cuisine match")
	}
	if filters.Cuisine != "" {
		dims++ // hard filter already passed
	}

	if dish := firstMention(r.PopularDishes, text); dish != "" {
		score += dishPoints
		reasons = append(reasons, fmt.Sprintf("popular dish: %s", dish))
	}

	if feature := firstMention(r.Features, text); feature != "" {
		score += featurePoints
		reasons = append(reasons, fmt.Sprintf("feature: %s", feature))
	}

	if filters.Dietary != "" {
		dims++ // hard filter already passed
		if profile != nil {
			analysis := dietary.Analyze(r, profile.Restrictions, profile.Allergies)
			if containsFold(analysis.CompatibleTags, filters.Dietary) {
				score += dietaryPoints
				reasons = append(reasons, fmt.Sprintf("dietary compatible: %s", filters.Dietary))
			} else {
				reasons = append(reasons, "dietary filter satisfied")
			}
		} else {
			reasons = append(reasons, "dietary filter satisfied")
		}
	}

	if filters.Amenity != "" {
		if feature := amenityFeature(r, filters.Amenity); feature != "" {
			score += amenityPoints
			reasons = append(reasons, fmt.Sprintf("amenity: %s", feature))
			dims++
		}
	}

	if filters.PriceLevel != 0 {
		dims++ // hard filter already passed
		reasons = append(reasons, "price filter satisfied")
	}

	return score, reasons, dims
}

// cuisineMatched reports a cuisine hit either through the explicit filter
// or through a cuisine tag mentioned in the query text (R2.2). The factor
// fires at most once however many tags match.
func cuisineMatched(r types.RestaurantRecord, filters types.SearchFilters, text string) bool {
	if filters.Cuisine != "" && r.HasCuisine(filters.Cuisine) {
		return true
	}
	for _, tag := range r.Cuisines {
		if tag != "" && strings.Contains(text, strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

// firstMention returns the first list entry mentioned in the query text,
// or "" when none is. List order is catalog order, keeping reasons stable.
func firstMention(list []string, text string) string {
	for _, item := range list {
		lowered := strings.ToLower(item)
		if lowered != "" && strings.Contains(text, lowered) {
			return item
		}
	}
	return ""
}

// amenityFeature returns the restaurant feature satisfying the amenity
// filter tag, comparing with the tag's underscores folded to spaces, so
// "outdoor_seating" matches a "outdoor seating" feature string.
func amenityFeature(r types.RestaurantRecord, tag string) string {
	want := strings.ReplaceAll(strings.ToLower(tag), "_", " ")
	for _, feature := range r.Features {
		if strings.Contains(strings.ToLower(feature), want) {
			return feature
		}
	}
	return ""
}

// dedupe removes duplicate catalog entries, keeping the first occurrence.
// Records are considered duplicates when they share an ID or a normalized
// name+address pair (R1.2).
func dedupe(catalog []types.RestaurantRecord) []types.RestaurantRecord {
	seen := make(map[string]bool)
	var out []types.RestaurantRecord

	for _, r := range catalog {
		idKey := ""
		if r.ID != "" {
			idKey = "id:" + r.ID
		}
		nameKey := "name:" + normalizeKey(r.Name) + "|" + normalizeKey(r.Address)

		if (idKey != "" && seen[idKey]) || (nameKey != "name:|" && seen[nameKey]) {
			continue
		}
		if idKey != "" {
			seen[idKey] = true
		}
		if nameKey != "name:|" {
			seen[nameKey] = true
		}
		out = append(out, r)
	}
	return out
}

// normalizeKey lowercases and strips punctuation for duplicate detection.
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
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
