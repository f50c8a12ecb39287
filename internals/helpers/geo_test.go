package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineZeroDistance(t *testing.T) {
	assert.InDelta(t, 0, Haversine(28.6139, 77.2090, 28.6139, 77.2090), 0.001)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Delhi → Mumbai, jarak great-circle ±1150 km.
	d := Haversine(28.6139, 77.2090, 19.0760, 72.8777)
	assert.InDelta(t, 1150, d, 15)
}

func TestHaversineSymmetry(t *testing.T) {
	a := Haversine(12.9716, 77.5946, 13.0827, 80.2707)
	b := Haversine(13.0827, 80.2707, 12.9716, 77.5946)
	assert.InDelta(t, a, b, 1e-9)
}

func TestHaversineAntipodalNoNaN(t *testing.T) {
	// titik hampir antipodal: cosine bisa keluar domain karena rounding
	d := Haversine(0, 0, 0, 180)
	assert.False(t, d != d, "distance must not be NaN")
	assert.InDelta(t, EarthRadiusKm*3.14159265, d, 1)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, Round2(12.345678))
	assert.Equal(t, 0.0, Round2(0.0001))
}
