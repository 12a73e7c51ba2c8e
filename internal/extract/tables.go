package extract

import "github.com/pdiddy/concierge-engine/pkg/types"

// keywordEntry maps a set of trigger keywords to one canonical filter tag.
// Tables are ordered: the first entry with a hit wins, so more specific
// entries must precede broader ones (R2.3).
type keywordEntry struct {
	tag      string
	keywords []string
}

// priceEntry maps trigger keywords to a price tier (1 = cheapest, 4 = most
// expensive). Ordering encodes precedence: budget beats fine-dining beats
// moderate when a query mentions several.
type priceEntry struct {
	level    int
	keywords []string
}

// cuisineTable resolves cuisine mentions, including dish names that imply
// a cuisine ("pizza" means italian, "sushi" means japanese).
var cuisineTable = []keywordEntry{
	{tag: "italian", keywords: []string{"italian", "pizza", "pasta", "trattoria", "risotto"}},
	{tag: "chinese", keywords: []string{"chinese", "dim sum", "szechuan", "sichuan", "wok"}},
	{tag: "japanese", keywords: []string{"japanese", "sushi", "ramen", "izakaya", "tempura"}},
	{tag: "mexican", keywords: []string{"mexican", "taco", "burrito", "cantina", "quesadilla"}},
	{tag: "indian", keywords: []string{"indian", "curry", "tandoori", "masala", "biryani"}},
	{tag: "thai", keywords: []string{"thai", "pad thai", "tom yum"}},
	{tag: "french", keywords: []string{"french", "bistro", "brasserie"}},
	{tag: "korean", keywords: []string{"korean", "kimchi", "bibimbap", "bulgogi"}},
	{tag: "vietnamese", keywords: []string{"vietnamese", "pho", "banh mi"}},
	{tag: "mediterranean", keywords: []string{"mediterranean", "greek", "falafel", "gyro", "hummus", "mezze"}},
	{tag: "american", keywords: []string{"american", "burger", "steakhouse", "steak", "bbq", "barbecue"}},
}

// dietaryTable resolves dietary restriction mentions. "vegan" precedes
// "vegetarian" in specificity terms but the keywords do not overlap, so
// declaration order only matters for mixed queries.
var dietaryTable = []keywordEntry{
	{tag: "vegan", keywords: []string{"vegan", "plant-based", "plant based"}},
	{tag: "vegetarian", keywords: []string{"vegetarian", "veggie", "meatless"}},
	{tag: "gluten-free", keywords: []string{"gluten-free", "gluten free", "celiac", "coeliac"}},
	{tag: "halal", keywords: []string{"halal"}},
	{tag: "kosher", keywords: []string{"kosher"}},
	{tag: "dairy-free", keywords: []string{"dairy-free", "dairy free", "lactose"}},
	{tag: "nut-free", keywords: []string{"nut-free", "nut free", "no nuts"}},
	{tag: "shellfish-free", keywords: []string{"shellfish-free", "shellfish free", "no shellfish"}},
	{tag: "keto", keywords: []string{"keto", "low-carb", "low carb"}},
	{tag: "paleo", keywords: []string{"paleo"}},
}

// priceTable resolves price tier mentions. Budget keywords take precedence
// over fine-dining, which takes precedence over moderate (R2.4).
var priceTable = []priceEntry{
	{level: 1, keywords: []string{"cheap", "budget", "affordable", "inexpensive"}},
	{level: 4, keywords: []string{"expensive", "upscale", "fine dining", "high-end", "high end", "fancy"}},
	{level: 2, keywords: []string{"moderate", "mid-range", "mid range", "reasonably priced"}},
}

// amenityTable resolves amenity and ambiance mentions to snake_case feature
// tags. The matcher compares these against catalog feature strings with
// underscores folded to spaces.
var amenityTable = []keywordEntry{
	{tag: "outdoor_seating", keywords: []string{"outdoor", "patio", "terrace", "al fresco", "rooftop"}},
	{tag: "live_music", keywords: []string{"live music", "live band", "jazz night"}},
	{tag: "parking", keywords: []string{"parking", "valet"}},
	{tag: "wifi", keywords: []string{"wifi", "wi-fi", "wireless internet"}},
	{tag: "delivery", keywords: []string{"delivery", "deliver to"}},
	{tag: "takeout", keywords: []string{"takeout", "take-out", "take out", "take away", "takeaway"}},
	{tag: "family_friendly", keywords: []string{"family", "kids", "kid-friendly", "kid friendly", "children"}},
	{tag: "romantic", keywords: []string{"romantic", "date night", "anniversary"}},
	{tag: "pet_friendly", keywords: []string{"pet friendly", "pet-friendly", "dog friendly", "dog-friendly", "dogs allowed"}},
	{tag: "private_dining", keywords: []string{"private dining", "private room", "private event"}},
	{tag: "bar", keywords: []string{"full bar", "cocktails", "happy hour"}},
	{tag: "reservations", keywords: []string{"reservations accepted"}},
}

// intentTable resolves the conversational intent. Unset means plain search;
// the extractor then leaves IntentSearch in place.
var intentTable = []keywordEntry{
	{tag: types.IntentReserve, keywords: []string{"book", "reserve", "reservation", "table for"}},
	{tag: types.IntentDietaryCheck, keywords: []string{"allerg", "can i eat", "safe for", "is it safe", "compatible with"}},
	{tag: types.IntentRecommend, keywords: []string{"recommend", "suggest", "best", "top rated", "top-rated"}},
}
