package vmath

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestOps(t *testing.T) {
	a := geom.Coord{X: 3, Y: 4}
	b := geom.Coord{X: -1, Y: 2}

	if got := Add(a, b); !AlmostEqualsCoord(got, geom.Coord{X: 2, Y: 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := Sub(a, b); !AlmostEqualsCoord(got, geom.Coord{X: 4, Y: 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := Scale(-2, a); !AlmostEqualsCoord(got, geom.Coord{X: -6, Y: -8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := Dot(a, b); !FloatAlmostEqual(got, 5) {
		t.Errorf("Dot = %v, want 5", got)
	}
	if got := Cross(a, b); !FloatAlmostEqual(got, 10) {
		t.Errorf("Cross = %v, want 10", got)
	}
	if got := Magnitude(a); !FloatAlmostEqual(got, 5) {
		t.Errorf("Magnitude = %v, want 5", got)
	}
	if got := Neg(a); !AlmostEqualsCoord(got, geom.Coord{X: -3, Y: -4}) {
		t.Errorf("Neg = %v", got)
	}
}

func TestCrossSign(t *testing.T) {
	x := geom.Coord{X: 1, Y: 0}
	y := geom.Coord{X: 0, Y: 1}
	if Cross(x, y) <= 0 {
		t.Errorf("Cross(x, y) = %v, want > 0", Cross(x, y))
	}
	if Cross(y, x) >= 0 {
		t.Errorf("Cross(y, x) = %v, want < 0", Cross(y, x))
	}
	if Cross(x, x) != 0 {
		t.Errorf("Cross(x, x) = %v, want 0", Cross(x, x))
	}
}

func TestPolarAndAngle(t *testing.T) {
	for _, theta := range []float64{0, 0.3, math.Pi / 2, 2.5, -1.2} {
		p := Polar(150, theta)
		if !FloatAlmostEqual(Magnitude(p), 150) {
			t.Errorf("Polar(150, %v) magnitude = %v", theta, Magnitude(p))
		}
		if got := AngleOf(geom.Coord{}, p); !FloatAlmostEqual(got, theta) {
			t.Errorf("AngleOf(Polar(%v)) = %v", theta, got)
		}
	}
}

func TestIntersectCircleLine_Miss(t *testing.T) {
	tests := []struct {
		name string
		c    Circle
		l    Line
	}{
		{"far horizontal", Circle{geom.Coord{}, 10}, Line{geom.Coord{X: 0, Y: 20}, geom.Coord{X: 1, Y: 0}}},
		{"far vertical", Circle{geom.Coord{X: 5, Y: 5}, 1}, Line{geom.Coord{X: 7, Y: 0}, geom.Coord{X: 0, Y: 1}}},
		{"just outside", Circle{geom.Coord{}, 1}, Line{geom.Coord{X: 0, Y: 1.0000001}, geom.Coord{X: 1, Y: 0}}},
		{"zero radius off line", Circle{geom.Coord{X: 1, Y: 1}, 0}, Line{geom.Coord{}, geom.Coord{X: 1, Y: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pts, ok := IntersectCircleLine(tt.c, tt.l); ok {
				t.Errorf("IntersectCircleLine = %v, want no intersection", pts)
			}
		})
	}
}

func TestIntersectCircleLine_Tangent(t *testing.T) {
	c := Circle{geom.Coord{X: 2, Y: 3}, 4}
	l := Line{geom.Coord{X: -10, Y: 7}, geom.Coord{X: 1, Y: 0}}

	pts, ok := IntersectCircleLine(c, l)
	if !ok {
		t.Fatal("tangent line reported no intersection")
	}
	want := geom.Coord{X: 2, Y: 7}
	for i, p := range pts {
		if !AlmostEqualsCoord(p, want) {
			t.Errorf("pts[%d] = %v, want %v", i, p, want)
		}
	}
}

func TestIntersectCircleLine_OnCircleAndLine(t *testing.T) {
	tests := []struct {
		name string
		c    Circle
		l    Line
	}{
		{"through center", Circle{geom.Coord{}, 5}, Line{geom.Coord{X: -3, Y: 0}, geom.Coord{X: 1, Y: 0}}},
		{"offset chord", Circle{geom.Coord{X: 150, Y: 0}, 50}, Line{geom.Coord{X: 0, Y: -30}, geom.Coord{X: 1, Y: 0}}},
		{"diagonal", Circle{geom.Coord{X: 1, Y: 2}, 3}, Line{geom.Coord{X: 0, Y: 0}, geom.Coord{X: 1, Y: 1}.Unit()}},
		{"zero radius on line", Circle{geom.Coord{X: 4, Y: 0}, 0}, Line{geom.Coord{}, geom.Coord{X: 1, Y: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, ok := IntersectCircleLine(tt.c, tt.l)
			if !ok {
				t.Fatal("expected intersection")
			}
			for i, p := range pts {
				if !tt.c.Contains(p) {
					t.Errorf("pts[%d] = %v not on circle (dist %v, r %v)", i, p, p.DistanceFrom(tt.c.Center), tt.c.Radius)
				}
				if !tt.l.Contains(p) {
					t.Errorf("pts[%d] = %v not on line", i, p)
				}
			}
			// First point is further along the direction than the second.
			if Dot(Sub(pts[0], pts[1]), tt.l.Direction) < -FloatEqualThresh {
				t.Errorf("points out of order: %v", pts)
			}
		})
	}
}

func TestIntersectCircleLine_Ordering(t *testing.T) {
	c := Circle{geom.Coord{}, 5}
	l := Line{geom.Coord{X: 0, Y: 3}, geom.Coord{X: 1, Y: 0}}

	pts, ok := IntersectCircleLine(c, l)
	if !ok {
		t.Fatal("expected intersection")
	}
	if !AlmostEqualsCoord(pts[0], geom.Coord{X: 4, Y: 3}) || !AlmostEqualsCoord(pts[1], geom.Coord{X: -4, Y: 3}) {
		t.Errorf("pts = %v, want [(4,3) (-4,3)]", pts)
	}
}

func TestSegmentLine(t *testing.T) {
	s := Segment{geom.Coord{X: -3, Y: 1}, geom.Coord{X: 5, Y: 1}}
	l := s.Line()
	if !AlmostEqualsCoord(l.Point, geom.Coord{X: 1, Y: 1}) {
		t.Errorf("Point = %v, want (1,1)", l.Point)
	}
	if !AlmostEqualsCoord(l.Direction, geom.Coord{X: 1, Y: 0}) {
		t.Errorf("Direction = %v, want (1,0)", l.Direction)
	}
	if !FloatAlmostEqual(s.Length(), 8) {
		t.Errorf("Length = %v, want 8", s.Length())
	}
}
