package render

import (
	"math"

	"github.com/jbeda/geom"
)

// ViewExtent is how many world units fit across the shorter side of the
// output.  The figure's outer radius is 200, leaving a border.
const ViewExtent = 500

// Viewport maps world coordinates, origin in the middle, onto a
// width x height pixel grid.
type Viewport struct {
	Width, Height int
	Extent        float64
}

func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height, Extent: ViewExtent}
}

// Scale is device pixels per world unit.
func (v Viewport) Scale() float64 {
	return math.Min(float64(v.Width), float64(v.Height)) / v.Extent
}

// Origin is where world (0, 0) lands on the device.
func (v Viewport) Origin() geom.Coord {
	return geom.Coord{X: float64(v.Width) / 2, Y: float64(v.Height) / 2}
}

func (v Viewport) ToDevice(p geom.Coord) geom.Coord {
	return p.Times(v.Scale()).Plus(v.Origin())
}

// WorldBounds is the visible area in world coordinates.
func (v Viewport) WorldBounds() geom.Rect {
	s := v.Scale()
	half := geom.Coord{X: float64(v.Width) / 2 / s, Y: float64(v.Height) / 2 / s}
	return geom.Rect{Min: half.Times(-1), Max: half}
}
