// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/concierge-engine/pkg/types"
)

func sampleFile() *CatalogFile {
	return &CatalogFile{
		SchemaVersion: types.CatalogSchemaVersion,
		GeneratedAt:   time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		City:          "Springfield",
		Restaurants: []types.RestaurantRecord{
			{
				ID:         "r-001",
				Name:       "Mario's Italian Bistro",
				Address:    "12 Main St",
				Location:   types.GeoPoint{Latitude: 40.7128, Longitude: -74.006},
				Rating:     4.5,
				PriceLevel: 1,
				Cuisines:   []string{"italian"},
				DietaryOptions: []types.DietaryOption{
					{Tag: "vegetarian", Available: true, Note: "separate menu"},
				},
				PopularDishes: []string{"margherita pizza"},
				Features:      []string{"outdoor seating"},
				Menu: []types.MenuItem{
					{Name: "margherita pizza", Category: "mains", Price: 12.5},
				},
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, ext := range []string{"yaml", "json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog."+ext)
			want := sampleFile()

			require.NoError(t, Save(path, want))

			got, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, want.SchemaVersion, got.SchemaVersion)
			assert.Equal(t, want.City, got.City)
			assert.WithinDuration(t, want.GeneratedAt, got.GeneratedAt, 0)
			require.Len(t, got.Restaurants, 1)

			r := got.Restaurants[0]
			assert.Equal(t, "Mario's Italian Bistro", r.Name)
			assert.Equal(t, []string{"italian"}, r.Cuisines)
			assert.Equal(t, want.Restaurants[0].DietaryOptions, r.DietaryOptions)
			assert.Equal(t, want.Restaurants[0].Menu, r.Menu)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog file")
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{[not yaml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog file")
}

func TestLoadUnsupportedSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.yaml")
	cf := sampleFile()
	cf.SchemaVersion = 99
	require.NoError(t, Save(path, cf))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema version 99")
}

func TestLoadTreatsZeroSchemaAsCurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.yaml")
	cf := sampleFile()
	cf.SchemaVersion = 0
	require.NoError(t, Save(path, cf))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.CatalogSchemaVersion, got.SchemaVersion)
}

func TestLoadNormalizesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.yaml")
	cf := &CatalogFile{
		SchemaVersion: types.CatalogSchemaVersion,
		Restaurants: []types.RestaurantRecord{
			{
				ID:         "r-raw",
				Name:       "Rough Edges",
				Location:   types.GeoPoint{Latitude: 40.7128, Longitude: -74.006},
				Rating:     7.2,
				PriceLevel: 9,
			},
		},
	}
	require.NoError(t, Save(path, cf))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got.Restaurants, 1)

	r := got.Restaurants[0]
	assert.Equal(t, 5.0, r.Rating)
	assert.Equal(t, 4, r.PriceLevel)
	assert.NotNil(t, r.Cuisines)
	assert.NotNil(t, r.DietaryOptions)
	assert.Equal(t, geohash.Encode(40.7128, -74.006), r.Geohash)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		in     types.RestaurantRecord
		verify func(t *testing.T, r types.RestaurantRecord)
	}{
		{
			name: "negative rating floors at zero",
			in:   types.RestaurantRecord{Rating: -1},
			verify: func(t *testing.T, r types.RestaurantRecord) {
				assert.Equal(t, 0.0, r.Rating)
			},
		},
		{
			name: "zero price level becomes cheapest tier",
			in:   types.RestaurantRecord{PriceLevel: 0},
			verify: func(t *testing.T, r types.RestaurantRecord) {
				assert.Equal(t, 1, r.PriceLevel)
			},
		},
		{
			name: "zero location leaves geohash empty",
			in:   types.RestaurantRecord{},
			verify: func(t *testing.T, r types.RestaurantRecord) {
				assert.Empty(t, r.Geohash)
			},
		},
		{
			name: "existing geohash preserved",
			in: types.RestaurantRecord{
				Geohash:  "dr5regw3p",
				Location: types.GeoPoint{Latitude: 1, Longitude: 1},
			},
			verify: func(t *testing.T, r types.RestaurantRecord) {
				assert.Equal(t, "dr5regw3p", r.Geohash)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.in
			Normalize(&r)
			tt.verify(t, r)
		})
	}
}

func TestFindRestaurant(t *testing.T) {
	cf := sampleFile()

	byID, ok := cf.FindRestaurant("r-001")
	require.True(t, ok)
	assert.Equal(t, "Mario's Italian Bistro", byID.Name)

	byName, ok := cf.FindRestaurant("mario's italian bistro")
	require.True(t, ok)
	assert.Equal(t, "r-001", byName.ID)

	_, ok = cf.FindRestaurant("no such place")
	assert.False(t, ok)
}
