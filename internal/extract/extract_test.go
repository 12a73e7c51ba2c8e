package extract

import (
	"reflect"
	"testing"

	"github.com/pdiddy/concierge-engine/pkg/types"
)

// --- Extract ---

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  types.SearchFilters
	}{
		{
			name:  "cuisine dietary and price in one query",
			query: "Find cheap vegetarian Italian restaurants",
			want: types.SearchFilters{
				Cuisine:    "italian",
				Dietary:    "vegetarian",
				PriceLevel: 1,
				Intent:     types.IntentSearch,
				Remainder:  "find cheap vegetarian italian restaurants",
			},
		},
		{
			name:  "dish name implies cuisine",
			query: "sushi place with outdoor seating",
			want: types.SearchFilters{
				Cuisine:   "japanese",
				Amenity:   "outdoor_seating",
				Intent:    types.IntentSearch,
				Remainder: "sushi place with outdoor seating",
			},
		},
		{
			name:  "reservation intent",
			query: "book a table for two at a French bistro",
			want: types.SearchFilters{
				Cuisine:   "french",
				Intent:    types.IntentReserve,
				Remainder: "book a table for two at a french bistro",
			},
		},
		{
			name:  "recommendation intent",
			query: "recommend the best halal options nearby",
			want: types.SearchFilters{
				Dietary:   "halal",
				Intent:    types.IntentRecommend,
				Remainder: "recommend the best halal options nearby",
			},
		},
		{
			name:  "dietary check intent",
			query: "is it safe with a shellfish allergy",
			want: types.SearchFilters{
				Intent:    types.IntentDietaryCheck,
				Remainder: "is it safe with a shellfish allergy",
			},
		},
		{
			name:  "no keywords leaves dimensions unset",
			query: "somewhere nice tonight",
			want: types.SearchFilters{
				Intent:    types.IntentSearch,
				Remainder: "somewhere nice tonight",
			},
		},
		{
			name:  "empty query",
			query: "",
			want: types.SearchFilters{
				Intent: types.IntentSearch,
			},
		},
		{
			name:  "mixed case and extra whitespace",
			query: "  VEGAN   Ramen\tPlease ",
			want: types.SearchFilters{
				Cuisine:   "japanese",
				Dietary:   "vegan",
				Intent:    types.IntentSearch,
				Remainder: "vegan ramen please",
			},
		},
		{
			name:  "dimension independence",
			query: "cheap vegan food",
			want: types.SearchFilters{
				Dietary:    "vegan",
				PriceLevel: 1,
				Intent:     types.IntentSearch,
				Remainder:  "cheap vegan food",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	query := "romantic upscale Italian with live music"
	first := Extract(query)
	second := Extract(query)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same query produced different filters: %+v vs %+v", first, second)
	}
}

// --- price precedence ---

func TestMatchPriceLevel(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"cheap eats", 1},
		{"fine dining experience", 4},
		{"something moderate", 2},
		{"cheap but upscale", 1},
		{"upscale yet moderate", 4},
		{"no price words at all", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := matchPriceLevel(normalize(tt.query))
			if got != tt.want {
				t.Errorf("matchPriceLevel(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

// --- firstMatch ---

func TestFirstMatchDeclarationOrder(t *testing.T) {
	// italian precedes thai in cuisineTable, so a query naming both
	// resolves to italian.
	got := firstMatch("italian or thai", cuisineTable)
	if got != "italian" {
		t.Errorf("firstMatch = %q, want %q", got, "italian")
	}
}

func TestFirstMatchNoHit(t *testing.T) {
	if got := firstMatch("nothing relevant here", cuisineTable); got != "" {
		t.Errorf("firstMatch = %q, want empty", got)
	}
}

// --- normalize ---

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello   World  ", "hello world"},
		{"TABS\tAND\nNEWLINES", "tabs and newlines"},
		{"", ""},
		{"already clean", "already clean"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := normalize(tt.in); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
