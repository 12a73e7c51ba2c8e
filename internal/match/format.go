// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/concierge-engine/pkg/types"
)

// FormatTable writes matches as a human-readable table to w (R5.1).
func FormatTable(matches []types.RankedMatch, w io.Writer) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-24s  %-6s  %-6s  %-5s  %s\n",
		"Rank", "Name", "Cuisines", "Price", "Rating", "Score", "Matched")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, m := range matches {
		r := m.Restaurant
		name := r.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		cuisines := strings.Join(r.Cuisines, ",")
		if len(cuisines) > 24 {
			cuisines = cuisines[:21] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-30s  %-24s  %-6s  %-6.1f  %-5.0f  %s\n",
			i+1, name, cuisines, priceMarker(r.PriceLevel), r.Rating, m.Score,
			strings.Join(m.MatchedReasons, "; "))
	}

	fmt.Fprintf(w, "\n%d matches\n", len(matches))
}

// FormatJSON writes matches as indented JSON to w (R5.2).
func FormatJSON(matches []types.RankedMatch, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}

// FormatCompatibility writes one analyzer verdict in a readable block (R5.3).
func FormatCompatibility(name string, result types.CompatibilityResult, w io.Writer) {
	verdict := "compatible"
	if !result.Compatible {
		verdict = "NOT compatible"
	}
	fmt.Fprintf(w, "%s: %s (score %d/100)\n", name, verdict, result.Score)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
	for _, rec := range result.Recommendations {
		fmt.Fprintf(w, "  note: %s\n", rec)
	}
}

// priceMarker renders a 1-4 price tier as dollar signs.
func priceMarker(level int) string {
	if level < 1 || level > 4 {
		return "?"
	}
	return strings.Repeat("$", level)
}
