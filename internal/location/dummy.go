// Package location generates dummy coordinates around a real position so the
// true location hides among plausible decoys.
package location

// Point is a geographic coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// Source supplies uniform random values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Dummies returns n points, each offset from the real point by an independent
// uniform draw in [-radius, radius] on both axes. Dummies may coincide with
// each other or with the real point. Offsets are applied in plain degrees
// with no wraparound at the poles or the antimeridian; callers near those
// boundaries get out-of-range coordinates.
func Dummies(real Point, n int, radius float64, src Source) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, Point{
			Lat: real.Lat + (src.Float64()*2-1)*radius,
			Lon: real.Lon + (src.Float64()*2-1)*radius,
		})
	}
	return points
}
