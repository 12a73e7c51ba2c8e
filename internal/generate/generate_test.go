// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/concierge-engine/pkg/types"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := types.GeneratorConfig{Count: 10, Seed: 7, City: "Testville"}

	first, err := Generate(cfg, io.Discard)
	require.NoError(t, err)
	second, err := Generate(cfg, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, first.Restaurants, second.Restaurants,
		"same seed must reproduce the same catalog")
	assert.Equal(t, first.City, second.City)
}

func TestGenerateSeedChangesCatalog(t *testing.T) {
	a, err := Generate(types.GeneratorConfig{Count: 10, Seed: 1}, io.Discard)
	require.NoError(t, err)
	b, err := Generate(types.GeneratorConfig{Count: 10, Seed: 2}, io.Discard)
	require.NoError(t, err)

	assert.NotEqual(t, a.Restaurants, b.Restaurants)
}

func TestGenerateCount(t *testing.T) {
	cf, err := Generate(types.GeneratorConfig{Count: 25, Seed: 3}, io.Discard)
	require.NoError(t, err)
	assert.Len(t, cf.Restaurants, 25)
}

func TestGenerateRejectsNonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -5} {
		_, err := Generate(types.GeneratorConfig{Count: count, Seed: 1}, io.Discard)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "count must be positive")
	}
}

func TestGenerateDefaultsCity(t *testing.T) {
	cf, err := Generate(types.GeneratorConfig{Count: 1, Seed: 1}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "Springfield", cf.City)
}

func TestGenerateRecordsWellFormed(t *testing.T) {
	cfg := types.GeneratorConfig{Count: 40, Seed: 42}
	cf, err := Generate(cfg, io.Discard)
	require.NoError(t, err)

	for _, r := range cf.Restaurants {
		assert.Len(t, r.ID, 36, "ID should be a UUID: %q", r.ID)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Address)
		assert.NotEmpty(t, r.Geohash)
		assert.GreaterOrEqual(t, r.Rating, 0.0, "%s", r.Name)
		assert.LessOrEqual(t, r.Rating, 5.0, "%s", r.Name)
		assert.GreaterOrEqual(t, r.PriceLevel, 1, "%s", r.Name)
		assert.LessOrEqual(t, r.PriceLevel, 4, "%s", r.Name)
		assert.Len(t, r.Cuisines, 1, "single primary cuisine per record")

		require.NotNil(t, r.Inferred, "%s", r.Name)
		assert.GreaterOrEqual(t, r.Inferred.Confidence, 0)
		assert.LessOrEqual(t, r.Inferred.Confidence, 100)

		// Venues stay near the configured center.
		assert.InDelta(t, 40.7128, r.Location.Latitude, jitterDegrees)
		assert.InDelta(t, -74.006, r.Location.Longitude, jitterDegrees)

		for _, item := range r.Menu {
			assert.Greater(t, item.Price, 0.0, "%s: %s", r.Name, item.Name)
		}

		// Popular dishes are always drawn from the menu.
		for _, dish := range r.PopularDishes {
			found := false
			for _, item := range r.Menu {
				if item.Name == dish {
					found = true
				}
			}
			assert.True(t, found, "%s: popular dish %q missing from menu", r.Name, dish)
		}
	}
}

func TestGenerateCustomCenter(t *testing.T) {
	cfg := types.GeneratorConfig{
		Count:           5,
		Seed:            9,
		CenterLatitude:  51.5072,
		CenterLongitude: -0.1276,
	}
	cf, err := Generate(cfg, io.Discard)
	require.NoError(t, err)

	for _, r := range cf.Restaurants {
		assert.InDelta(t, 51.5072, r.Location.Latitude, jitterDegrees)
		assert.InDelta(t, -0.1276, r.Location.Longitude, jitterDegrees)
	}
}

func TestGenerateProgress(t *testing.T) {
	var buf bytes.Buffer
	_, err := Generate(types.GeneratorConfig{Count: 3, Seed: 5}, &buf)
	require.NoError(t, err)

	lines := strings.Count(buf.String(), "generated ")
	assert.Equal(t, 3, lines, "one progress line per record:\n%s", buf.String())
}
