package shape

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

var (
	ErrInvalidConfig  = errors.New("invalid shape config")
	ErrUnknownVariant = errors.New("unknown variant")
)

// LineMode is how the reference line is parameterized.
type LineMode int

const (
	// LineTangent is a point on the inner circle with a direction
	// perpendicular to its radius.
	LineTangent LineMode = iota
	// LineChord is the outer-circle chord of half-length
	// sqrt(R_out² - R_in²) centered on the inner circle.
	LineChord
)

// MarkMode is what each secondary circle draws where the reference line
// crosses it.
type MarkMode int

const (
	MarkArc MarkMode = iota
	MarkBowtie
)

// Tunable constants shared by the built-in variants
const (
	OuterRadius  = 200
	DotRadius    = 3
	GuideOpacity = 0.1
)

var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// DefaultStroke is white, one unit wide, with round caps and joins.
var DefaultStroke = Style{
	Color:     White,
	Opacity:   1,
	LineWidth: 1,
	Cap:       CapRound,
	Join:      JoinRound,
}

// Config is the immutable layout of one figure.
type Config struct {
	OuterRadius  float64
	InnerRadius  float64
	Circles      int
	Line         LineMode
	Mark         MarkMode
	DotRadius    float64
	GuideOpacity float64
	ShowBoundary bool
	Stroke       Style
}

// Validate checks the layout invariants.  The reference line always has to
// reach the outer circle, which holds as long as the inner radius is
// smaller than the outer one.
func (c Config) Validate() error {
	switch {
	case c.OuterRadius <= 0:
		return fmt.Errorf("%w: outer radius %v must be positive", ErrInvalidConfig, c.OuterRadius)
	case c.InnerRadius < 0:
		return fmt.Errorf("%w: inner radius %v must not be negative", ErrInvalidConfig, c.InnerRadius)
	case c.InnerRadius >= c.OuterRadius:
		return fmt.Errorf("%w: inner radius %v must be smaller than outer radius %v", ErrInvalidConfig, c.InnerRadius, c.OuterRadius)
	case c.Circles < 1:
		return fmt.Errorf("%w: need at least one secondary circle, got %d", ErrInvalidConfig, c.Circles)
	case c.DotRadius < 0:
		return fmt.Errorf("%w: dot radius %v must not be negative", ErrInvalidConfig, c.DotRadius)
	}
	return nil
}

// RingRadius is the distance from the origin to each secondary circle's center.
func (c Config) RingRadius() float64 {
	return (c.InnerRadius + c.OuterRadius) / 2
}

// CircleRadius is the radius of each secondary circle.
func (c Config) CircleRadius() float64 {
	return (c.OuterRadius - c.InnerRadius) / 2
}

// Variant is a named animation style: a figure layout plus the timing the
// controller runs it at.
type Variant struct {
	Name      string
	Period    float64
	SubShapes int
	Shape     Config
}

func (v Variant) Validate() error {
	if v.Period <= 0 {
		return fmt.Errorf("%w: period %v must be positive", ErrInvalidConfig, v.Period)
	}
	if v.SubShapes < 1 {
		return fmt.Errorf("%w: sub-shape count %d must be at least 1", ErrInvalidConfig, v.SubShapes)
	}
	return v.Shape.Validate()
}

func baseConfig(inner float64, circles int, line LineMode, mark MarkMode) Config {
	return Config{
		OuterRadius:  OuterRadius,
		InnerRadius:  inner,
		Circles:      circles,
		Line:         line,
		Mark:         mark,
		DotRadius:    DotRadius,
		GuideOpacity: GuideOpacity,
		Stroke:       DefaultStroke,
	}
}

// DefaultVariant is used when no variant is asked for.
const DefaultVariant = "classic"

var variants = map[string]Variant{
	"classic": {
		Name:      "classic",
		Period:    10,
		SubShapes: 1,
		Shape:     baseConfig(100, 8, LineTangent, MarkArc),
	},
	"bowtie": {
		Name:      "bowtie",
		Period:    5,
		SubShapes: 1,
		Shape:     baseConfig(50, 16, LineChord, MarkBowtie),
	},
	"triple": {
		Name:      "triple",
		Period:    3,
		SubShapes: 3,
		Shape:     baseConfig(75, 48, LineTangent, MarkArc),
	},
}

// Lookup returns the built-in variant with the given name.
func Lookup(name string) (Variant, error) {
	v, ok := variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q (have %v)", ErrUnknownVariant, name, Names())
	}
	return v, nil
}

// Names lists the built-in variants in sorted order.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variants returns every built-in variant, sorted by name.
func Variants() []Variant {
	names := Names()
	r := make([]Variant, len(names))
	for i, name := range names {
		r[i] = variants[name]
	}
	return r
}
