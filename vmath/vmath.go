// Package vmath holds the 2D vector helpers and the circle/line
// intersection used to lay out the figure.
package vmath

import (
	"math"

	"github.com/jbeda/geom"
)

// Comparing floating point is only ever approximate here.  Good enough for
// points that come out of a handful of trig and sqrt calls.
const FloatEqualThresh = 1e-8

func FloatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < FloatEqualThresh
}

func AlmostEqualsCoord(a, b geom.Coord) bool {
	return FloatAlmostEqual(a.X, b.X) && FloatAlmostEqual(a.Y, b.Y)
}

func Add(a, b geom.Coord) geom.Coord { return a.Plus(b) }
func Sub(a, b geom.Coord) geom.Coord { return a.Minus(b) }

// Scale multiplies v by s.
func Scale(s float64, v geom.Coord) geom.Coord { return v.Times(s) }

func Dot(a, b geom.Coord) float64 { return a.X*b.X + a.Y*b.Y }

// Cross is the z component of the 3D cross product.  Only the sign is
// meaningful to callers: positive when b is counter-clockwise from a.
func Cross(a, b geom.Coord) float64 { return a.X*b.Y - a.Y*b.X }

func Magnitude(v geom.Coord) float64 { return v.Magnitude() }

// Neg returns the point reflected through the origin.
func Neg(v geom.Coord) geom.Coord { return v.Times(-1) }

// Polar returns the point at distance r from the origin along angle theta.
func Polar(r, theta float64) geom.Coord {
	return geom.Coord{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// AngleOf is the angle of p as seen from center, in (-π, π].
func AngleOf(center, p geom.Coord) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}
