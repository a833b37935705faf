package shape

import (
	"image/color"

	"github.com/jbeda/geom"
)

// Kind selects which drawing primitive a Directive describes.
type Kind int

const (
	StrokeLine Kind = iota
	StrokeArc
	FillDot
	StrokeCircle
)

func (k Kind) String() string {
	switch k {
	case StrokeLine:
		return "StrokeLine"
	case StrokeArc:
		return "StrokeArc"
	case FillDot:
		return "FillDot"
	case StrokeCircle:
		return "StrokeCircle"
	}
	return "Kind(?)"
}

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Style is the complete paint state for one directive.  Surfaces must not
// carry anything over from one directive to the next.
type Style struct {
	Color     color.NRGBA
	Opacity   float64
	LineWidth float64
	Cap       LineCap
	Join      LineJoin
}

// Alpha is the effective alpha in [0, 1] after applying Opacity.
func (s Style) Alpha() float64 {
	return float64(s.Color.A) / 255 * s.Opacity
}

// WithOpacity returns a copy of s with Opacity replaced.
func (s Style) WithOpacity(o float64) Style {
	s.Opacity = o
	return s
}

// Directive is one drawing instruction in world coordinates.
//
//	StrokeLine:   P1 -> P2
//	StrokeArc:    Center, Radius, StartAngle -> EndAngle, increasing angle
//	FillDot:      Center, Radius
//	StrokeCircle: Center, Radius
type Directive struct {
	Kind       Kind
	P1, P2     geom.Coord
	Center     geom.Coord
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Style      Style
}

func Line(p1, p2 geom.Coord, s Style) Directive {
	return Directive{Kind: StrokeLine, P1: p1, P2: p2, Style: s}
}

func Arc(c geom.Coord, r, start, end float64, s Style) Directive {
	return Directive{Kind: StrokeArc, Center: c, Radius: r, StartAngle: start, EndAngle: end, Style: s}
}

func Dot(c geom.Coord, r float64, s Style) Directive {
	return Directive{Kind: FillDot, Center: c, Radius: r, Style: s}
}

func Circle(c geom.Coord, r float64, s Style) Directive {
	return Directive{Kind: StrokeCircle, Center: c, Radius: r, Style: s}
}
