package repository

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rupeess_backend/internals/configs"
	helper "rupeess_backend/internals/helpers"
)

var testPolicy = configs.NearbyPolicy{
	RadiusKm:        50,
	FallbackEnabled: true,
	HeroLimit:       5,
	RailLimit:       2,
	DefaultLimit:    100,
}

func TestResolveRailLimit(t *testing.T) {
	assert.Equal(t, 5, ResolveRailLimit("hero", testPolicy))
	assert.Equal(t, 2, ResolveRailLimit("left", testPolicy))
	assert.Equal(t, 2, ResolveRailLimit("right", testPolicy))
	assert.Equal(t, 100, ResolveRailLimit("", testPolicy))
}

func TestRailFilterHeroRequiresPlan(t *testing.T) {
	sql, args := railFilterSQL("hero")
	assert.NotContains(t, sql, "IS NULL", "hero rail must not admit untagged shops")
	assert.Len(t, args, 4)
	assert.Contains(t, args, "HERO")
	assert.Contains(t, args, "BASIC")
}

func TestRailFilterSideRailsAreInclusive(t *testing.T) {
	for _, rail := range []string{"left", "right"} {
		sql, args := railFilterSQL(rail)
		assert.True(t, strings.Contains(sql, "IS NULL"), "%s rail keeps untagged shops eligible", rail)
		assert.Len(t, args, 3)
	}
	_, leftArgs := railFilterSQL("left")
	assert.Contains(t, leftArgs, "LEFT_BAR")
	_, rightArgs := railFilterSQL("right")
	assert.Contains(t, rightArgs, "RIGHT_SIDE")
}

func TestNoRailMeansNoPlanFilter(t *testing.T) {
	sql, args := railFilterSQL("")
	assert.Empty(t, sql)
	assert.Empty(t, args)
}

func TestNearbyQueryOrdersByDistanceWithinRadius(t *testing.T) {
	r := NewShopRepository(nil, testPolicy)
	query, _, args := r.nearbyQuery(28.6139, 77.2090, "")

	// ranking ascending, dibatasi radius + limit
	assert.Contains(t, query, "ORDER BY ranked.distance ASC")
	assert.Contains(t, query, "ranked.distance <= @radius")
	assert.Contains(t, query, "LIMIT @limit")

	// ekspresi jarak = bentuk acos ber-clamp yang sama dengan helper.Haversine
	assert.Contains(t, query, "6371 * acos(LEAST(1.0, GREATEST(-1.0")
	assert.Contains(t, query, "ROUND(CAST(")

	assert.Equal(t, 28.6139, args["lat"])
	assert.Equal(t, 77.2090, args["lng"])
	assert.Equal(t, 50.0, args["radius"])
	assert.Equal(t, 100, args["limit"])
}

func TestNearbyQueryBindsRailPlansAsNamedArgs(t *testing.T) {
	r := NewShopRepository(nil, testPolicy)
	query, railSQL, args := r.nearbyQuery(28.61, 77.20, "hero")

	assert.NotContains(t, railSQL, "?", "rail values must be named args, not positional")
	for i, plan := range []string{"HERO", "PREMIUM", "FEATURED", "BASIC"} {
		key := "plan" + string(rune('0'+i))
		assert.Contains(t, query, "@"+key)
		assert.Equal(t, plan, args[key])
	}
	assert.Equal(t, 5, args["limit"])
}

func TestDistanceOracleOrderingIsNonDecreasing(t *testing.T) {
	// viewpoint New Delhi; jarak helper.Haversine adalah oracle untuk
	// ekspresi SQL yang sama (bentuk acos identik, lihat nearbySelect)
	viewLat, viewLng := 28.6139, 77.2090
	points := []struct {
		name     string
		lat, lng float64
	}{
		{"Gurugram", 28.4595, 77.0266},
		{"Jaipur", 26.9124, 75.7873},
		{"Mumbai", 19.0760, 72.8777},
		{"Noida", 28.5355, 77.3910},
	}

	distances := make([]float64, 0, len(points))
	for _, p := range points {
		distances = append(distances, helper.Round2(helper.Haversine(viewLat, viewLng, p.lat, p.lng)))
	}
	sort.Float64s(distances)

	for i := 1; i < len(distances); i++ {
		assert.GreaterOrEqual(t, distances[i], distances[i-1])
	}
	// sanity anchor: Noida < Jaipur < Mumbai dari Delhi
	require.Len(t, distances, 4)
	assert.Less(t, distances[0], 50.0, "Gurugram/Noida must fall inside the default radius")
	assert.Greater(t, distances[3], 1000.0, "Mumbai must fall outside any radius")
}

func TestNearbyWithoutDatabase(t *testing.T) {
	r := NewShopRepository(nil, testPolicy)
	_, err := r.Nearby(28.61, 77.20, "")
	assert.ErrorIs(t, err, ErrNoDatabase)
	_, err = r.Search("", "", "", 10)
	assert.ErrorIs(t, err, ErrNoDatabase)
	_, err = r.Categories()
	assert.ErrorIs(t, err, ErrNoDatabase)
}
