package vmath

import (
	"math"

	"github.com/jbeda/geom"
)

type Circle struct {
	Center geom.Coord
	Radius float64
}

// Contains reports whether p lies on the circle, within FloatEqualThresh
// scaled by the radius.
func (c Circle) Contains(p geom.Coord) bool {
	return math.Abs(p.DistanceFrom(c.Center)-c.Radius) < FloatEqualThresh*math.Max(1, c.Radius)
}

// Line is an infinite line through Point.  Direction is expected to be unit
// length; nothing here normalizes it.
type Line struct {
	Point, Direction geom.Coord
}

// Contains reports whether p is collinear with the line.
func (l Line) Contains(p geom.Coord) bool {
	d := Cross(l.Direction, p.Minus(l.Point))
	return math.Abs(d) < FloatEqualThresh*math.Max(1, p.DistanceFrom(l.Point))
}

// Segment is a line given by its two end points.
type Segment struct {
	Start, End geom.Coord
}

func (s Segment) Midpoint() geom.Coord {
	return s.Start.Plus(s.End).Times(0.5)
}

func (s Segment) Length() float64 {
	return s.Start.DistanceFrom(s.End)
}

// Line returns the infinite line through the segment, anchored on its
// midpoint, with a unit direction from Start to End.
func (s Segment) Line() Line {
	return Line{Point: s.Midpoint(), Direction: s.End.Minus(s.Start).Unit()}
}

// IntersectCircleLine returns the two points where l crosses c, ordered as
// closest+h·dir then closest−h·dir.  When the line misses the circle ok is
// false.  A tangent line yields two identical points.
func IntersectCircleLine(c Circle, l Line) (pts [2]geom.Coord, ok bool) {
	pointToCenter := Sub(c.Center, l.Point)
	closest := Add(l.Point, Scale(Dot(pointToCenter, l.Direction), l.Direction))
	dist := Magnitude(Sub(closest, c.Center))
	if dist > c.Radius {
		return pts, false
	}

	h := math.Sqrt(c.Radius*c.Radius - dist*dist)
	pts[0] = Add(closest, Scale(h, l.Direction))
	pts[1] = Add(closest, Scale(-h, l.Direction))
	return pts, true
}
