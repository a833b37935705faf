// Package shape turns an animation progress value into the drawing
// directives for one figure: a rotating reference line and the ring of
// secondary circles it cuts through.
package shape

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"circle-crossings/vmath"
)

// Generator maps progress in [0, 1) to an ordered list of directives.
type Generator interface {
	Generate(progress float64) []Directive
}

// New validates cfg and returns the generator its Mark mode asks for.
func New(cfg Config) (Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := newLayout(cfg)
	switch cfg.Mark {
	case MarkArc:
		return &ArcGenerator{l}, nil
	case MarkBowtie:
		return &BowtieGenerator{l}, nil
	}
	return nil, fmt.Errorf("%w: unknown mark mode %d", ErrInvalidConfig, cfg.Mark)
}

// layout is the geometry shared by every strategy.  Everything that only
// depends on the config is computed once here.
type layout struct {
	cfg       Config
	outer     vmath.Circle
	halfChord float64
	circles   []vmath.Circle
}

func newLayout(cfg Config) layout {
	l := layout{
		cfg:       cfg,
		outer:     vmath.Circle{Radius: cfg.OuterRadius},
		halfChord: math.Sqrt(cfg.OuterRadius*cfg.OuterRadius - cfg.InnerRadius*cfg.InnerRadius),
		circles:   make([]vmath.Circle, cfg.Circles),
	}
	for i := range l.circles {
		angle := 2 * math.Pi * float64(i) / float64(cfg.Circles)
		l.circles[i] = vmath.Circle{
			Center: vmath.Polar(cfg.RingRadius(), angle),
			Radius: cfg.CircleRadius(),
		}
	}
	return l
}

// Config returns the layout the generator was built from.
func (l *layout) Config() Config { return l.cfg }

// Circles returns the secondary circles in drawing order.
func (l *layout) Circles() []vmath.Circle {
	return append([]vmath.Circle(nil), l.circles...)
}

// ReferenceLine returns the rotating line for progress.  The line's Point
// is always the point at angle θ-π/2 on the inner circle.
func (l *layout) ReferenceLine(progress float64) vmath.Line {
	theta := 2 * math.Pi * progress
	dir := geom.Coord{X: math.Cos(theta), Y: math.Sin(theta)}
	point := geom.Coord{X: l.cfg.InnerRadius * dir.Y, Y: l.cfg.InnerRadius * -dir.X}

	if l.cfg.Line == LineChord {
		half := dir.Times(l.halfChord)
		return vmath.Segment{Start: point.Minus(half), End: point.Plus(half)}.Line()
	}
	return vmath.Line{Point: point, Direction: dir}
}

// begin emits the boundary circles, if asked for, and the reference line
// clipped to the outer circle.
func (l *layout) begin(line vmath.Line) []Directive {
	r := make([]Directive, 0, 2+2*len(l.circles))
	if l.cfg.ShowBoundary {
		r = append(r,
			Circle(geom.Coord{}, l.cfg.OuterRadius, l.cfg.Stroke),
			Circle(geom.Coord{}, l.cfg.InnerRadius, l.cfg.Stroke))
	}

	ends, ok := vmath.IntersectCircleLine(l.outer, line)
	if !ok {
		// Validate guarantees the inner radius is inside the outer circle.
		panic(fmt.Sprintf("shape: reference line %v misses outer circle r=%v", line, l.cfg.OuterRadius))
	}
	return append(r, Line(ends[0], ends[1], l.cfg.Stroke.WithOpacity(l.cfg.GuideOpacity)))
}

// ArcGenerator draws the part of each secondary circle between its two
// crossings and marks one crossing with a dot.
type ArcGenerator struct {
	layout
}

func (g *ArcGenerator) Generate(progress float64) []Directive {
	line := g.ReferenceLine(progress)
	r := g.begin(line)

	for _, c := range g.circles {
		pts, ok := vmath.IntersectCircleLine(c, line)
		if !ok {
			continue
		}
		end, start := pts[0], pts[1]
		r = append(r, Arc(c.Center, c.Radius,
			vmath.AngleOf(c.Center, start), vmath.AngleOf(c.Center, end), g.cfg.Stroke))

		// Relies on the line point being the figure's center of symmetry
		// for this rotation.
		mark := end
		if vmath.Cross(c.Center, line.Point) > 0 {
			mark = start
		}
		r = append(r, Dot(mark, g.cfg.DotRadius, g.cfg.Stroke))
	}
	return r
}

// BowtieGenerator draws, for each crossing, the diameter of the secondary
// circle that starts at it.
type BowtieGenerator struct {
	layout
}

func (g *BowtieGenerator) Generate(progress float64) []Directive {
	line := g.ReferenceLine(progress)
	r := g.begin(line)

	for _, c := range g.circles {
		pts, ok := vmath.IntersectCircleLine(c, line)
		if !ok {
			continue
		}
		for _, p := range pts {
			opposite := c.Center.Times(2).Minus(p)
			r = append(r, Line(p, opposite, g.cfg.Stroke))
		}
	}
	return r
}
