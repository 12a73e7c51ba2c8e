// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate builds synthetic restaurant catalogs for demos and for
// exercising the matcher at realistic scale. Records are labeled with the
// full inference output so a reviewer can audit how each attribute was
// derived.
// Implements: prd006-generation (R1-R4);
//
//	docs/ARCHITECTURE § Catalog Generation.
package generate

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"

	"github.com/pdiddy/concierge-engine/internal/catalog"
	"github.com/pdiddy/concierge-engine/internal/dietary"
	"github.com/pdiddy/concierge-engine/internal/inference"
	"github.com/pdiddy/concierge-engine/pkg/types"
)

const (
	defaultCity      = "Springfield"
	defaultLatitude  = 40.7128
	defaultLongitude = -74.006

	// jitterDegrees spreads venues around the city center, roughly 9 km
	// at the equator.
	jitterDegrees = 0.08
)

// Generate builds cfg.Count synthetic restaurant records. The same seed
// always reproduces the same catalog (R1.1). Venue names are composed from
// seed tables, attributes come from the inference heuristics, and menu
// prices carry the inferred location multiplier (R2.1-R2.4). Progress lines
// go to w.
func Generate(cfg types.GeneratorConfig, w io.Writer) (*catalog.CatalogFile, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", cfg.Count)
	}

	city := cfg.City
	if city == "" {
		city = defaultCity
	}
	centerLat, centerLng := cfg.CenterLatitude, cfg.CenterLongitude
	if centerLat == 0 && centerLng == 0 {
		centerLat, centerLng = defaultLatitude, defaultLongitude
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	cf := &catalog.CatalogFile{
		SchemaVersion: types.CatalogSchemaVersion,
		GeneratedAt:   time.Now(),
		City:          city,
		Restaurants:   make([]types.RestaurantRecord, 0, cfg.Count),
	}

	for i := 0; i < cfg.Count; i++ {
		name := composeName(rng)
		address := composeAddress(rng)
		attrs := inference.Infer(name, address)

		r := buildRecord(rng, i, name, address, attrs, centerLat, centerLng)
		catalog.Normalize(&r)
		cf.Restaurants = append(cf.Restaurants, r)

		fmt.Fprintf(w, "generated %s (%s, %s)\n",
			name, strings.Join(attrs.Cuisines, ","), attrs.RestaurantType)
	}

	return cf, nil
}

// composeName builds a venue name from the part tables. Stems carry the
// cuisine signal; one of three patterns keeps names from looking stamped
// out.
func composeName(rng *rand.Rand) string {
	stem := nameStems[rng.Intn(len(nameStems))]
	prefix := namePrefixes[rng.Intn(len(namePrefixes))]
	suffix := nameSuffixes[rng.Intn(len(nameSuffixes))]

	switch rng.Intn(3) {
	case 0:
		return fmt.Sprintf("%s %s %s", prefix, stem, suffix)
	case 1:
		return fmt.Sprintf("%s %s", stem, suffix)
	default:
		return fmt.Sprintf("%s %s", prefix, stem)
	}
}

// composeAddress builds a street address from the street table.
func composeAddress(rng *rand.Rand) string {
	return fmt.Sprintf("%d %s", 1+rng.Intn(999), streets[rng.Intn(len(streets))])
}

// buildRecord assembles one catalog record from the inferred attributes.
// The ID is a name-based UUID so regeneration with the same seed yields
// stable identifiers (R1.2).
func buildRecord(rng *rand.Rand, seq int, name, address string, attrs types.InferredAttributes, centerLat, centerLng float64) types.RestaurantRecord {
	lat := centerLat + (rng.Float64()-0.5)*jitterDegrees
	lng := centerLng + (rng.Float64()-0.5)*jitterDegrees

	id := uuid.NewSHA1(uuid.NameSpaceURL,
		[]byte(fmt.Sprintf("concierge-engine/%s/%d", name, seq)))

	inferred := attrs
	r := types.RestaurantRecord{
		ID:             id.String(),
		Name:           name,
		Address:        address,
		Location:       types.GeoPoint{Latitude: lat, Longitude: lng},
		Geohash:        geohash.Encode(lat, lng),
		Rating:         sampleRating(rng, attrs.ExpectedQuality),
		PriceLevel:     attrs.PriceLevelBase,
		Cuisines:       attrs.Cuisines,
		DietaryOptions: sampleDietaryOptions(rng, attrs.Cuisines),
		Inferred:       &inferred,
	}
	r.PopularDishes, r.Menu = sampleMenu(rng, attrs.Cuisines, attrs.PriceMultiplier)
	r.Features = sampleFeatures(rng)
	return r
}

// sampleRating draws a rating near the style's expected quality, rounded
// to one decimal and clamped into [0,5].
func sampleRating(rng *rand.Rand, expected float64) float64 {
	rating := expected + (rng.Float64()-0.5)*0.8
	rating = math.Round(rating*10) / 10
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// sampleDietaryOptions rolls an accommodation entry per candidate tag. The
// suitability rule table biases the odds: cuisines that suit a restriction
// accommodate it more often (R2.3). A miss either omits the tag or declares
// it explicitly unavailable with a note.
func sampleDietaryOptions(rng *rand.Rand, cuisines []string) []types.DietaryOption {
	primary := ""
	if len(cuisines) > 0 {
		primary = cuisines[0]
	}

	var options []types.DietaryOption
	for _, tag := range dietaryTagPool {
		p := 0.3
		if score, ok := dietary.Suitability(primary, tag); ok {
			p = float64(score) / 100 * 0.9
		}

		roll := rng.Float64()
		switch {
		case roll < p:
			options = append(options, types.DietaryOption{Tag: tag, Available: true})
		case roll < p+0.15:
			options = append(options, types.DietaryOption{
				Tag:       tag,
				Available: false,
				Note:      unavailableNotes[rng.Intn(len(unavailableNotes))],
			})
		}
	}
	return options
}

// sampleMenu picks dishes for the primary cuisine and prices them with the
// location multiplier (R2.4). The first two picks double as the
// popular-dish list.
func sampleMenu(rng *rand.Rand, cuisines []string, multiplier float64) ([]string, []types.MenuItem) {
	primary := "american"
	if len(cuisines) > 0 && dishesByCuisine[cuisines[0]] != nil {
		primary = cuisines[0]
	}
	dishes := dishesByCuisine[primary]

	count := 3
	if count > len(dishes) {
		count = len(dishes)
	}

	var popular []string
	var menu []types.MenuItem
	for _, idx := range rng.Perm(len(dishes))[:count] {
		d := dishes[idx]
		menu = append(menu, types.MenuItem{
			Name:     d.name,
			Category: d.category,
			Price:    math.Round(d.basePrice*multiplier*100) / 100,
		})
		if len(popular) < 2 {
			popular = append(popular, d.name)
		}
	}
	return popular, menu
}

// sampleFeatures draws from the canonical feature vocabulary.
func sampleFeatures(rng *rand.Rand) []string {
	var features []string
	for _, feature := range featurePool {
		if rng.Float64() < 0.35 {
			features = append(features, feature)
		}
	}
	return features
}
