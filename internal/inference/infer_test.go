package inference

import (
	"reflect"
	"testing"

	"github.com/pdiddy/concierge-engine/pkg/types"
)

// --- full inference ---

func TestInferDragonPalace(t *testing.T) {
	got := Infer("Dragon Palace", "456 Broadway")

	if !reflect.DeepEqual(got.Cuisines, []string{"chinese"}) {
		t.Errorf("Cuisines = %v, want [chinese]", got.Cuisines)
	}
	if got.PriceMultiplier != 1.3 {
		t.Errorf("PriceMultiplier = %v, want 1.3", got.PriceMultiplier)
	}
	if got.RestaurantType != types.TypeCasualDining {
		t.Errorf("RestaurantType = %s, want %s", got.RestaurantType, types.TypeCasualDining)
	}
	if got.PriceLevelBase != 2 {
		t.Errorf("PriceLevelBase = %d, want 2", got.PriceLevelBase)
	}
	if got.Confidence != 75 {
		t.Errorf("Confidence = %d, want 75", got.Confidence)
	}
}

func TestInferDeterministic(t *testing.T) {
	first := Infer("Golden Wok Express", "12 Downtown Plaza")
	second := Infer("Golden Wok Express", "12 Downtown Plaza")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same inputs produced different results:\n%+v\n%+v", first, second)
	}
}

// --- cuisine inference ---

func TestInferCuisine(t *testing.T) {
	tests := []struct {
		name           string
		venue          string
		wantCuisine    string
		wantConfidence int
	}{
		{
			name:           "single entry hit",
			venue:          "Mario's Pizzeria",
			wantCuisine:    "italian",
			wantConfidence: 75,
		},
		{
			name:           "two indicators in one entry count once",
			venue:          "Thai Basil",
			wantCuisine:    "thai",
			wantConfidence: 75,
		},
		{
			name:           "first table entry wins on multi-hit",
			venue:          "Golden Dragon Curry House",
			wantCuisine:    "chinese",
			wantConfidence: 85,
		},
		{
			name:           "confidence capped",
			venue:          "Golden Dragon Sushi Taco Curry House",
			wantCuisine:    "chinese",
			wantConfidence: 95,
		},
		{
			name:           "no hit defaults to american with penalty",
			venue:          "The Local Spot",
			wantCuisine:    "american",
			wantConfidence: 55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(tt.venue, "")
			if len(got.Cuisines) != 1 {
				t.Fatalf("Cuisines = %v, want exactly one", got.Cuisines)
			}
			if got.Cuisines[0] != tt.wantCuisine {
				t.Errorf("cuisine = %q, want %q", got.Cuisines[0], tt.wantCuisine)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %d, want %d", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

// --- style inference ---

func TestInferStyle(t *testing.T) {
	tests := []struct {
		venue     string
		wantStyle types.RestaurantType
		wantTier  int
	}{
		{"Prime Cut Chophouse", types.TypeFineDining, 4},
		{"Noodle Express", types.TypeFastCasual, 1},
		{"Morning Coffee House", types.TypeCafe, 2},
		{"The Rusty Tavern", types.TypeBarRestaurant, 2},
		{"Family Table", types.TypeCasualDining, 2},
		{"Fine Fast Cafe", types.TypeFineDining, 4}, // first check wins
	}

	for _, tt := range tests {
		t.Run(tt.venue, func(t *testing.T) {
			got := Infer(tt.venue, "")
			if got.RestaurantType != tt.wantStyle {
				t.Errorf("RestaurantType = %s, want %s", got.RestaurantType, tt.wantStyle)
			}
			if got.PriceLevelBase != tt.wantTier {
				t.Errorf("PriceLevelBase = %d, want %d", got.PriceLevelBase, tt.wantTier)
			}
		})
	}
}

// --- location multiplier ---

func TestLocationMultiplier(t *testing.T) {
	tests := []struct {
		address string
		want    float64
	}{
		{"456 Broadway", 1.3},
		{"12 Beverly Hills Blvd", 1.5},
		{"88 Plaza, Downtown", 1.5}, // upscale overrides urban
		{"9 Maple Lane", 1.0},
		{"", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			got := Infer("Dragon Palace", tt.address)
			if got.PriceMultiplier != tt.want {
				t.Errorf("PriceMultiplier = %v, want %v", got.PriceMultiplier, tt.want)
			}
		})
	}
}

// --- advisory fields ---

func TestInferExpectedQualityRange(t *testing.T) {
	venues := []string{
		"Prime Steak Room", "Taco Express", "Corner Coffee",
		"The Dockside Pub", "Dragon Palace", "Anything Else",
	}
	for _, venue := range venues {
		got := Infer(venue, "")
		if got.ExpectedQuality < 0 || got.ExpectedQuality > 5 {
			t.Errorf("Infer(%q).ExpectedQuality = %v, want within [0,5]", venue, got.ExpectedQuality)
		}
		if got.Confidence < 0 || got.Confidence > 100 {
			t.Errorf("Infer(%q).Confidence = %d, want within [0,100]", venue, got.Confidence)
		}
	}
}
