// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

// Name part tables. Stems carry the cuisine signal the inference heuristics
// look for; prefixes and suffixes only add texture. Composition is driven by
// the seeded RNG so a fixed seed reproduces the same catalog.
var namePrefixes = []string{
	"Golden", "Blue", "Royal", "Rustic", "Little", "Old Town",
	"Silver", "Sunny", "Corner", "Grand",
}

var nameStems = []string{
	"Dragon", "Trattoria", "Taqueria", "Sushi", "Curry", "Bistro",
	"Wok", "Pasta", "Tandoor", "Saigon", "Falafel", "Seoul",
	"Bangkok", "Sakura", "Burger", "Steak", "Olive",
}

var nameSuffixes = []string{
	"House", "Kitchen", "Palace", "Garden", "Room", "Table",
	"Express", "Cafe", "Tavern", "Grill",
}

// Street names mix urban and upscale markers with plain suburban streets
// so the location multiplier varies across a catalog.
var streets = []string{
	"Broadway", "Main St", "Market St", "Maple Lane", "Oak Ave",
	"Beverly Hills Blvd", "Plaza Way", "Park Ave", "Cedar Rd",
	"Union Square", "Willow Ct", "Harbor Marina Dr",
}

// dish is a menu seed with a base price in the catalog's currency; the
// generator multiplies base prices by the inferred location multiplier.
type dish struct {
	name      string
	category  string
	basePrice float64
}

// dishesByCuisine seeds menus and popular-dish lists per primary cuisine.
var dishesByCuisine = map[string][]dish{
	"italian": {
		{name: "margherita pizza", category: "mains", basePrice: 12},
		{name: "spaghetti carbonara", category: "mains", basePrice: 14},
		{name: "caprese salad", category: "starters", basePrice: 9},
		{name: "tiramisu", category: "desserts", basePrice: 7},
	},
	"chinese": {
		{name: "kung pao chicken", category: "mains", basePrice: 11},
		{name: "mapo tofu", category: "mains", basePrice: 10},
		{name: "dim sum platter", category: "starters", basePrice: 9},
		{name: "fried rice", category: "mains", basePrice: 8},
	},
	"japanese": {
		{name: "salmon nigiri", category: "sushi", basePrice: 13},
		{name: "tonkotsu ramen", category: "mains", basePrice: 12},
		{name: "edamame", category: "starters", basePrice: 5},
		{name: "california roll", category: "sushi", basePrice: 10},
	},
	"mexican": {
		{name: "carnitas tacos", category: "mains", basePrice: 9},
		{name: "chicken burrito", category: "mains", basePrice: 10},
		{name: "guacamole", category: "starters", basePrice: 6},
		{name: "churros", category: "desserts", basePrice: 5},
	},
	"indian": {
		{name: "butter chicken", category: "mains", basePrice: 12},
		{name: "chana masala", category: "mains", basePrice: 10},
		{name: "garlic naan", category: "sides", basePrice: 4},
		{name: "samosa", category: "starters", basePrice: 5},
	},
	"thai": {
		{name: "pad thai", category: "mains", basePrice: 11},
		{name: "green curry", category: "mains", basePrice: 12},
		{name: "tom yum soup", category: "starters", basePrice: 8},
		{name: "mango sticky rice", category: "desserts", basePrice: 6},
	},
	"french": {
		{name: "coq au vin", category: "mains", basePrice: 18},
		{name: "onion soup", category: "starters", basePrice: 9},
		{name: "duck confit", category: "mains", basePrice: 20},
		{name: "creme brulee", category: "desserts", basePrice: 8},
	},
	"korean": {
		{name: "bibimbap", category: "mains", basePrice: 11},
		{name: "bulgogi", category: "mains", basePrice: 13},
		{name: "kimchi pancake", category: "starters", basePrice: 8},
	},
	"vietnamese": {
		{name: "pho bo", category: "mains", basePrice: 10},
		{name: "banh mi", category: "mains", basePrice: 8},
		{name: "spring rolls", category: "starters", basePrice: 6},
	},
	"mediterranean": {
		{name: "falafel plate", category: "mains", basePrice: 10},
		{name: "lamb gyro", category: "mains", basePrice: 11},
		{name: "hummus", category: "starters", basePrice: 6},
		{name: "baklava", category: "desserts", basePrice: 5},
	},
	"american": {
		{name: "cheeseburger", category: "mains", basePrice: 11},
		{name: "bbq ribs", category: "mains", basePrice: 16},
		{name: "caesar salad", category: "starters", basePrice: 8},
		{name: "apple pie", category: "desserts", basePrice: 6},
	},
}

// featurePool is the canonical feature vocabulary; entries line up with the
// amenity tags the extractor produces, underscores folded to spaces.
var featurePool = []string{
	"outdoor seating", "live music", "parking", "wifi", "delivery",
	"takeout", "family friendly", "romantic", "pet friendly",
	"private dining", "full bar", "reservations accepted",
}

// dietaryTagPool is the candidate accommodation vocabulary for generated
// records.
var dietaryTagPool = []string{
	"vegetarian", "vegan", "gluten-free", "dairy-free", "nut-free",
	"halal", "kosher",
}

// unavailableNotes are attached to accommodation entries a generated
// restaurant explicitly declines.
var unavailableNotes = []string{
	"shared kitchen prep", "on request only", "seasonal menu dependent",
}
