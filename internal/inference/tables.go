// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inference

import "github.com/pdiddy/concierge-engine/pkg/types"

// cuisineIndicators maps name substrings to cuisine tags. Scanned in
// declaration order; the first entry with a hit supplies the primary
// cuisine (R1.1). Indicators must be lowercase fragments long enough not
// to embed in common words, so tokens like "el" or "le" stay out.
var cuisineIndicators = []struct {
	cuisine    string
	indicators []string
}{
	{cuisine: "italian", indicators: []string{"italia", "pizz", "pasta", "trattoria", "osteria", "roma", "luigi", "mario"}},
	{cuisine: "chinese", indicators: []string{"china", "chinese", "dragon", "golden", "wok", "panda", "bamboo", "szechuan"}},
	{cuisine: "japanese", indicators: []string{"sushi", "tokyo", "sakura", "ramen", "fuji", "izakaya", "zen "}},
	{cuisine: "mexican", indicators: []string{"taco", "taqueria", "cantina", "azteca", "fiesta", "jalisco"}},
	{cuisine: "indian", indicators: []string{"india", "taj", "curry", "tandoor", "bombay", "delhi", "masala"}},
	{cuisine: "thai", indicators: []string{"thai", "bangkok", "siam", "basil"}},
	{cuisine: "french", indicators: []string{"chez", "bistro", "brasserie", "paris", "provence", "petit"}},
	{cuisine: "korean", indicators: []string{"korea", "seoul", "kimchi", "gogi"}},
	{cuisine: "vietnamese", indicators: []string{"saigon", "hanoi", "viet", "pho "}},
	{cuisine: "mediterranean", indicators: []string{"mediterran", "olive", "santorini", "athens", "falafel", "aegean"}},
	{cuisine: "american", indicators: []string{"grill", "diner", "burger", "smokehouse", "roadhouse", "steak"}},
}

// styleChecks resolves service style and base price tier from name markers.
// Order is fixed: fine dining outranks fast casual outranks cafe outranks
// bar (R2.1); casual dining is the fallback.
var styleChecks = []struct {
	style   types.RestaurantType
	tier    int
	markers []string
}{
	{style: types.TypeFineDining, tier: 4, markers: []string{"fine", "prime"}},
	{style: types.TypeFastCasual, tier: 1, markers: []string{"fast", "express"}},
	{style: types.TypeCafe, tier: 2, markers: []string{"cafe", "coffee"}},
	{style: types.TypeBarRestaurant, tier: 2, markers: []string{"bar", "pub", "tavern"}},
}

// expectedQuality predicts a diner rating per service style. Advisory only;
// the generator samples actual ratings around these anchors.
var expectedQuality = map[types.RestaurantType]float64{
	types.TypeFineDining:    4.4,
	types.TypeFastCasual:    3.5,
	types.TypeCafe:          4.0,
	types.TypeBarRestaurant: 3.6,
	types.TypeCasualDining:  3.8,
}

// urbanMarkers flag city-core addresses (price multiplier 1.3).
var urbanMarkers = []string{
	"downtown", "broadway", "main st", "market st", "city center",
	"midtown", "5th ave", "union square",
}

// upscaleMarkers flag premium districts (price multiplier 1.5, overriding
// urban).
var upscaleMarkers = []string{
	"hills", "heights", "park ave", "plaza", "waterfront", "marina",
	"country club",
}
