// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the concierge-engine pipeline.
// Implements: prd001-catalog (RestaurantRecord, R1.1-R1.6);
//
//	prd002-extraction (SearchFilters, R4.1);
//	prd003-dietary (DietaryProfile, CompatibilityResult, R1.2, R5.1-R5.4);
//	prd004-matching (RankedMatch, R4.1);
//	prd005-inference (InferredAttributes, R3.1-R3.5).
//
// See docs/ARCHITECTURE.md § Data Structures.
package types

import "strings"

// CatalogSchemaVersion is the current version of the catalog record schema.
// Catalog files carry it so downstream consumers can reject snapshots written
// by an incompatible generator (prd001-catalog R1.6).
const CatalogSchemaVersion = 1

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// IsZero reports whether the point carries no coordinates.
func (p GeoPoint) IsZero() bool {
	return p.Latitude == 0 && p.Longitude == 0
}

// DietaryOption is a restaurant-declared accommodation entry: whether a
// dietary tag (e.g. "vegan") is supported, with an optional kitchen note.
// Per prd001-catalog R1.3.
type DietaryOption struct {
	// Tag is the canonical dietary tag, lowercased (e.g. "gluten-free").
	Tag string `json:"tag" yaml:"tag"`

	// Available reports whether the kitchen accommodates the tag.
	Available bool `json:"available" yaml:"available"`

	// Note is optional free text shown to the diner (e.g. "separate fryer").
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// MenuItem is a single dish on a generated menu. Base prices already include
// the location multiplier applied by the generator (prd006-generation R4.3).
type MenuItem struct {
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Price    float64 `json:"price" yaml:"price"`
}

// RestaurantRecord is an immutable catalog entry. Records are created by a
// collaborator (loaded from a snapshot file or produced by the generator);
// the engine never mutates them. Optional fields default to empty collections
// when absent (prd001-catalog R2.1-R2.3).
type RestaurantRecord struct {
	// ID is the stable record identifier (a UUID for generated records).
	ID string `json:"id" yaml:"id"`

	// Name is the restaurant's display name.
	Name string `json:"name" yaml:"name"`

	// Address is the street address as free text.
	Address string `json:"address" yaml:"address"`

	// Location is the venue coordinate.
	Location GeoPoint `json:"location" yaml:"location"`

	// Geohash is the encoded location key derived from Location. Collaborators
	// use it for proximity lookups; the engine treats it as opaque.
	Geohash string `json:"geohash,omitempty" yaml:"geohash,omitempty"`

	// Rating is the aggregate diner rating, 0.0 to 5.0.
	Rating float64 `json:"rating" yaml:"rating"`

	// PriceLevel is the price tier, 1 (budget) to 4 (fine dining).
	PriceLevel int `json:"price_level" yaml:"price_level"`

	// Cuisines lists cuisine tags in declaration order (e.g. "italian").
	Cuisines []string `json:"cuisines" yaml:"cuisines"`

	// DietaryOptions lists the declared accommodation entries in catalog order.
	DietaryOptions []DietaryOption `json:"dietary_options,omitempty" yaml:"dietary_options,omitempty"`

	// PopularDishes lists signature dish names, if known.
	PopularDishes []string `json:"popular_dishes,omitempty" yaml:"popular_dishes,omitempty"`

	// Features lists amenity strings such as "outdoor seating" or "live music".
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`

	// Menu holds generated menu items; empty for records from other sources.
	Menu []MenuItem `json:"menu,omitempty" yaml:"menu,omitempty"`

	// Inferred carries the attribute-inference metadata for generated records.
	// Advisory only: nothing in matching or dietary analysis reads it
	// (prd005-inference R5.2).
	Inferred *InferredAttributes `json:"inferred,omitempty" yaml:"inferred,omitempty"`
}

// DietaryOption returns the accommodation entry for tag, matching
// case-insensitively. The second return value reports whether an entry exists.
func (r *RestaurantRecord) DietaryOption(tag string) (DietaryOption, bool) {
	for _, opt := range r.DietaryOptions {
		if strings.EqualFold(opt.Tag, tag) {
			return opt, true
		}
	}
	return DietaryOption{}, false
}

// AccommodatesDietary reports whether the restaurant declares tag as available.
func (r *RestaurantRecord) AccommodatesDietary(tag string) bool {
	opt, ok := r.DietaryOption(tag)
	return ok && opt.Available
}

// AvailableDietaryCount returns the number of accommodation entries declared
// available. Used by the analyzer's accommodation-breadth bonus (prd003-dietary R3.4).
func (r *RestaurantRecord) AvailableDietaryCount() int {
	n := 0
	for _, opt := range r.DietaryOptions {
		if opt.Available {
			n++
		}
	}
	return n
}

// HasCuisine reports whether tag appears among the record's cuisine tags,
// matching case-insensitively.
func (r *RestaurantRecord) HasCuisine(tag string) bool {
	for _, c := range r.Cuisines {
		if strings.EqualFold(c, tag) {
			return true
		}
	}
	return false
}
