// Package extract turns free-text concierge queries into structured search filters.
// Implements: prd002-extraction (R1-R4);
//
//	docs/ARCHITECTURE § Query Understanding.
package extract

import (
	"strings"

	"github.com/pdiddy/concierge-engine/pkg/types"
)

// Extract parses a raw query into SearchFilters. It is pure and total:
// any input, including the empty string, yields a valid result, and the same
// input always yields the same filters (R1.1-R1.3).
//
// Each filter dimension is resolved independently against its own keyword
// table, so a single query may set cuisine, dietary, price, and amenity at
// once; the matcher resolves the AND composition later (R2.1-R2.3).
func Extract(text string) types.SearchFilters {
	norm := normalize(text)

	filters := types.SearchFilters{
		Intent:    types.IntentSearch,
		Remainder: norm,
	}
	if norm == "" {
		return filters
	}

	filters.Cuisine = firstMatch(norm, cuisineTable)
	filters.Dietary = firstMatch(norm, dietaryTable)
	filters.PriceLevel = matchPriceLevel(norm)
	filters.Amenity = firstMatch(norm, amenityTable)

	if intent := firstMatch(norm, intentTable); intent != "" {
		filters.Intent = intent
	}

	return filters
}

// normalize lowercases the text and collapses runs of whitespace to single
// spaces. The result doubles as the free-text remainder the matcher scans.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// firstMatch returns the canonical tag of the first table entry, in
// declaration order, whose keyword set has a substring hit in norm.
// No hit leaves the dimension unset (R2.2).
func firstMatch(norm string, table []keywordEntry) string {
	for _, entry := range table {
		for _, kw := range entry.keywords {
			if strings.Contains(norm, kw) {
				return entry.tag
			}
		}
	}
	return ""
}

// matchPriceLevel resolves the price tier with a fixed precedence: budget
// keywords first, then fine-dining, then moderate. No keyword hit leaves
// the tier unset; a price is never defaulted (R2.4).
func matchPriceLevel(norm string) int {
	for _, entry := range priceTable {
		for _, kw := range entry.keywords {
			if strings.Contains(norm, kw) {
				return entry.level
			}
		}
	}
	return 0
}
