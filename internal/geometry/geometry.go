// Package geometry holds the distance and angle primitives shared by terrain
// stamping and the radiative heat integral.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Distance returns the Euclidean distance between two equal-length vectors.
// It panics if the lengths differ.
func Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Distance3 returns the Euclidean distance between two points in space.
func Distance3(p, q r3.Vec) float64 {
	a := [3]float64{p.X, p.Y, p.Z}
	b := [3]float64{q.X, q.Y, q.Z}
	return Distance(a[:], b[:])
}

// HorizontalDistance returns the distance between p and q projected onto the
// ground plane (z ignored).
func HorizontalDistance(p, q r3.Vec) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// RayAngle returns the elevation angle of the ray from p to q in radians,
// within [-π/2, π/2]. A vertical ray yields ±π/2 and identical points yield 0.
func RayAngle(p, q r3.Vec) float64 {
	return math.Atan2(q.Z-p.Z, HorizontalDistance(p, q))
}

// WithinRadius reports whether the offset (dx, dy) lies inside or on a circle
// of radius r.
func WithinRadius(dx, dy, r float64) bool {
	return dx*dx+dy*dy <= r*r
}
