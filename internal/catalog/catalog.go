// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads and saves restaurant catalog snapshots. A snapshot
// is the read-only input the matcher and analyzer operate on; the core
// never mutates records after Normalize.
// Implements: prd001-catalog (R1-R4);
//
//	docs/ARCHITECTURE § Catalog.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/concierge-engine/pkg/types"
)

// CatalogFile is the on-disk representation of a catalog snapshot. YAML is
// the default encoding; a .json extension switches to JSON.
type CatalogFile struct {
	SchemaVersion int                      `yaml:"schema_version" json:"schema_version"`
	GeneratedAt   time.Time                `yaml:"generated_at" json:"generated_at"`
	City          string                   `yaml:"city,omitempty" json:"city,omitempty"`
	Restaurants   []types.RestaurantRecord `yaml:"restaurants" json:"restaurants"`
}

// Load reads a catalog snapshot from disk and normalizes every record.
// A schema version newer than this build understands is rejected; version
// zero is tolerated as the original unversioned layout (R1.3).
func Load(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var cf CatalogFile
	if isJSONPath(path) {
		if err := json.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
		}
	}

	if cf.SchemaVersion > types.CatalogSchemaVersion {
		return nil, fmt.Errorf("catalog file %s: unsupported schema version %d (this build understands up to %d)",
			path, cf.SchemaVersion, types.CatalogSchemaVersion)
	}
	if cf.SchemaVersion == 0 {
		cf.SchemaVersion = types.CatalogSchemaVersion
	}

	for i := range cf.Restaurants {
		Normalize(&cf.Restaurants[i])
	}
	return &cf, nil
}

// Save writes a catalog snapshot to disk, choosing the encoding from the
// path extension as Load does.
func Save(path string, cf *CatalogFile) error {
	var data []byte
	var err error
	if isJSONPath(path) {
		data, err = json.MarshalIndent(cf, "", "  ")
	} else {
		data, err = yaml.Marshal(cf)
	}
	if err != nil {
		return fmt.Errorf("marshaling catalog file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Normalize clamps required numerics into their documented ranges and fills
// derivable fields so downstream code never re-checks them (R2.1-R2.4):
// Rating into [0,5], PriceLevel into [1,4], absent optional lists become
// empty, and a missing Geohash is computed from the coordinates.
func Normalize(r *types.RestaurantRecord) {
	if r.Rating < 0 {
		r.Rating = 0
	}
	if r.Rating > 5 {
		r.Rating = 5
	}

	if r.PriceLevel < 1 {
		r.PriceLevel = 1
	}
	if r.PriceLevel > 4 {
		r.PriceLevel = 4
	}

	if r.Cuisines == nil {
		r.Cuisines = []string{}
	}
	if r.DietaryOptions == nil {
		r.DietaryOptions = []types.DietaryOption{}
	}
	if r.PopularDishes == nil {
		r.PopularDishes = []string{}
	}
	if r.Features == nil {
		r.Features = []string{}
	}
	if r.Menu == nil {
		r.Menu = []types.MenuItem{}
	}

	if r.Geohash == "" && !r.Location.IsZero() {
		r.Geohash = geohash.Encode(r.Location.Latitude, r.Location.Longitude)
	}
}

// FindRestaurant resolves an identifier or (case-insensitive) name to a
// record in the snapshot. ID matches are checked first.
func (cf *CatalogFile) FindRestaurant(idOrName string) (types.RestaurantRecord, bool) {
	for _, r := range cf.Restaurants {
		if r.ID == idOrName {
			return r, true
		}
	}
	for _, r := range cf.Restaurants {
		if strings.EqualFold(r.Name, idOrName) {
			return r, true
		}
	}
	return types.RestaurantRecord{}, false
}

func isJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
