package location

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDummies_Count(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	points := Dummies(Point{Lat: 52.52, Lon: 13.405}, 7, 0.01, src)
	assert.Len(t, points, 7)
}

func TestDummies_WithinRadius(t *testing.T) {
	real := Point{Lat: 52.52, Lon: 13.405}
	radius := 0.05

	src := rand.New(rand.NewSource(2))
	points := Dummies(real, 200, radius, src)

	for _, p := range points {
		assert.LessOrEqual(t, math.Abs(p.Lat-real.Lat), radius)
		assert.LessOrEqual(t, math.Abs(p.Lon-real.Lon), radius)
	}
}

func TestDummies_Reproducible(t *testing.T) {
	real := Point{Lat: -33.87, Lon: 151.21}

	first := Dummies(real, 10, 0.02, rand.New(rand.NewSource(42)))
	second := Dummies(real, 10, 0.02, rand.New(rand.NewSource(42)))

	require.Equal(t, first, second)
}

func TestDummies_ZeroRadius(t *testing.T) {
	real := Point{Lat: 1.5, Lon: 2.5}

	src := rand.New(rand.NewSource(3))
	points := Dummies(real, 3, 0, src)

	for _, p := range points {
		assert.Equal(t, real, p)
	}
}

func TestDummies_ZeroCount(t *testing.T) {
	src := rand.New(rand.NewSource(4))
	points := Dummies(Point{}, 0, 0.01, src)
	assert.Empty(t, points)
}
