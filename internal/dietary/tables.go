// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dietary

import "strings"

// subsumption records a pair of restrictions where the broader one already
// implies the narrower one. Requesting both earns an informational note,
// nothing more (R3.1).
type subsumption struct {
	broader  string
	narrower string
	note     string
}

var subsumptions = []subsumption{
	{broader: "vegan", narrower: "vegetarian", note: "vegan already covers vegetarian"},
	{broader: "keto", narrower: "low-carb", note: "keto and low-carb overlap; treating them as one requirement"},
	{broader: "paleo", narrower: "gluten-free", note: "paleo already excludes gluten"},
}

// suitabilityTable maps cuisine tag to expected per-restriction suitability
// on a 0-100 scale (R4.1). Absent entries are neutral: no message is
// emitted. Thresholds: >=80 strong fit, 60-79 usually workable, <40
// difficult.
var suitabilityTable = map[string]map[string]int{
	"italian": {
		"vegetarian":  85,
		"vegan":       55,
		"gluten-free": 35,
		"dairy-free":  30,
	},
	"chinese": {
		"vegetarian":     70,
		"vegan":          60,
		"gluten-free":    30,
		"nut-free":       35,
		"shellfish-free": 45,
	},
	"japanese": {
		"vegetarian":     55,
		"vegan":          45,
		"gluten-free":    50,
		"nut-free":       80,
		"shellfish-free": 30,
	},
	"mexican": {
		"vegetarian":  80,
		"vegan":       65,
		"gluten-free": 70,
		"dairy-free":  45,
	},
	"indian": {
		"vegetarian":  90,
		"vegan":       70,
		"gluten-free": 65,
		"halal":       70,
		"nut-free":    25,
		"dairy-free":  35,
	},
	"thai": {
		"vegetarian":     75,
		"vegan":          65,
		"gluten-free":    70,
		"nut-free":       20,
		"shellfish-free": 35,
	},
	"french": {
		"vegetarian":  45,
		"vegan":       25,
		"gluten-free": 30,
		"dairy-free":  20,
	},
	"mediterranean": {
		"vegetarian":  85,
		"vegan":       75,
		"gluten-free": 60,
		"halal":       80,
		"dairy-free":  65,
	},
	"korean": {
		"vegetarian":     55,
		"vegan":          45,
		"gluten-free":    35,
		"shellfish-free": 40,
	},
	"vietnamese": {
		"vegetarian":     70,
		"vegan":          60,
		"gluten-free":    75,
		"nut-free":       30,
		"shellfish-free": 35,
	},
	"american": {
		"vegetarian":  60,
		"vegan":       45,
		"gluten-free": 50,
		"keto":        75,
		"paleo":       70,
	},
}

// Suitability reports the expected suitability of a cuisine for a
// restriction on a 0-100 scale. The second return is false when the rule
// table has no entry for the pair, which callers treat as neutral.
func Suitability(cuisine, restriction string) (int, bool) {
	perRestriction, ok := suitabilityTable[strings.ToLower(cuisine)]
	if !ok {
		return 0, false
	}
	score, ok := perRestriction[strings.ToLower(restriction)]
	return score, ok
}

// allergenTable maps cuisine tag to allergen categories commonly present
// in that cuisine's kitchens (R5.1). Used only to warn; explicit
// accommodation entries remain authoritative for verdicts.
var allergenTable = map[string][]string{
	"chinese":       {"soy", "sesame", "shellfish", "nuts"},
	"thai":          {"nuts", "shellfish", "fish"},
	"japanese":      {"fish", "shellfish", "soy"},
	"italian":       {"dairy", "gluten"},
	"indian":        {"dairy", "nuts"},
	"french":        {"dairy", "eggs", "gluten"},
	"korean":        {"soy", "sesame", "shellfish"},
	"vietnamese":    {"fish", "shellfish", "nuts"},
	"mediterranean": {"sesame", "nuts"},
	"american":      {"dairy", "gluten"},
	"mexican":       {"dairy"},
}
