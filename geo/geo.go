// Package geo provides the coordinate and distance primitives the
// reconstruction engine needs: a point carrier (reused from orb, a
// third-party geometry library already present in the retrieval pack) and
// the exact equirectangular-approximation distance formula the spec
// requires for proximity checks.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// Point is a (longitude, latitude) pair. orb.Point is reused purely as the
// coordinate carrier; the distance formula below is this package's own,
// not orb/geo's haversine implementation, so the 150 m proximity boundary
// matches the specification exactly.
type Point = orb.Point

// Bound is an axis-aligned bounding box in (longitude, latitude) space.
type Bound = orb.Bound

// EarthRadius is the sphere radius (meters) used by the equirectangular
// approximation below.
const EarthRadius = 6378137.0

// NewBound builds a Bound from city-expectation corners already in
// (minLon, minLat, maxLon, maxLat) order.
func NewBound(minLon, minLat, maxLon, maxLat float64) Bound {
	return orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}
}

// Contains reports whether p falls within b, inclusive of the boundary.
func Contains(b Bound, p Point) bool {
	return b.Min[0] <= p[0] && p[0] <= b.Max[0] &&
		b.Min[1] <= p[1] && p[1] <= b.Max[1]
}

// Distance returns the equirectangular-approximation distance, in meters,
// between two points. Callers holding a possibly-absent center (a nil
// *Point) must check it before calling.
//
//	d = R * sqrt((Δλ*cos(mean_φ))^2 + Δφ^2)
func Distance(p1, p2 Point) float64 {
	dx := radians(p1[0]-p2[0]) * math.Cos(0.5*radians(p1[1]+p2[1]))
	dy := radians(p1[1] - p2[1])
	return EarthRadius * math.Sqrt(dx*dx+dy*dy)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Mean returns the arithmetic mean of a set of points. Returns the zero
// Point if pts is empty; callers must check len(pts) themselves when the
// zero value is not an acceptable fallback.
func Mean(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range pts {
		sum[0] += p[0]
		sum[1] += p[1]
	}
	return Point{sum[0] / float64(len(pts)), sum[1] / float64(len(pts))}
}
