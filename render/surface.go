// Package render rasterizes shape directives and blends sub-frames into
// motion-blurred frames.
package render

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"circle-crossings/shape"
)

// Surface executes directives onto a pixel grid.
type Surface interface {
	// Clear fills the whole surface with bg.
	Clear(bg color.Color)
	Draw(d shape.Directive) error
	// Pixels returns a copy of the current contents.
	Pixels() (*PixelBuffer, error)
	// Load replaces the current contents with b.
	Load(b *PixelBuffer) error
}

// Canvas is a Surface drawn by gg's software rasterizer.  Directives are
// mapped to device space by the viewport before they reach gg, so the gg
// transform stays at identity.
type Canvas struct {
	dc   *gg.Context
	view Viewport
}

var _ Surface = (*Canvas)(nil)

func NewCanvas(view Viewport) *Canvas {
	return &Canvas{dc: gg.NewContext(view.Width, view.Height), view: view}
}

func (c *Canvas) Viewport() Viewport { return c.view }

func (c *Canvas) Clear(bg color.Color) {
	c.dc.ClearPath()
	c.dc.ClearWithColor(gg.FromColor(bg))
}

func (c *Canvas) Draw(d shape.Directive) error {
	c.applyStyle(d.Style)
	c.dc.ClearPath()

	s := c.view.Scale()
	switch d.Kind {
	case shape.StrokeLine:
		p1, p2 := c.view.ToDevice(d.P1), c.view.ToDevice(d.P2)
		c.dc.MoveTo(p1.X, p1.Y)
		c.dc.LineTo(p2.X, p2.Y)
		return c.dc.Stroke()
	case shape.StrokeArc:
		if d.StartAngle == d.EndAngle {
			return nil
		}
		ctr := c.view.ToDevice(d.Center)
		c.dc.DrawArc(ctr.X, ctr.Y, d.Radius*s, d.StartAngle, d.EndAngle)
		return c.dc.Stroke()
	case shape.FillDot:
		ctr := c.view.ToDevice(d.Center)
		c.dc.DrawCircle(ctr.X, ctr.Y, d.Radius*s)
		return c.dc.Fill()
	case shape.StrokeCircle:
		ctr := c.view.ToDevice(d.Center)
		c.dc.DrawCircle(ctr.X, ctr.Y, d.Radius*s)
		return c.dc.Stroke()
	}
	return fmt.Errorf("render: unknown directive kind %v", d.Kind)
}

func (c *Canvas) applyStyle(st shape.Style) {
	c.dc.SetRGBA(
		float64(st.Color.R)/255,
		float64(st.Color.G)/255,
		float64(st.Color.B)/255,
		st.Alpha())
	c.dc.SetLineWidth(st.LineWidth * c.view.Scale())
	c.dc.SetLineCap(lineCaps[st.Cap])
	c.dc.SetLineJoin(lineJoins[st.Join])
}

var lineCaps = map[shape.LineCap]gg.LineCap{
	shape.CapButt:   gg.LineCapButt,
	shape.CapRound:  gg.LineCapRound,
	shape.CapSquare: gg.LineCapSquare,
}

var lineJoins = map[shape.LineJoin]gg.LineJoin{
	shape.JoinMiter: gg.LineJoinMiter,
	shape.JoinRound: gg.LineJoinRound,
	shape.JoinBevel: gg.LineJoinBevel,
}

func (c *Canvas) Pixels() (*PixelBuffer, error) {
	if err := c.dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("render: flush: %w", err)
	}
	pm := c.dc.ResizeTarget()
	b := NewPixelBuffer(pm.Width(), pm.Height())
	copy(b.Pix, pm.Data())
	return b, nil
}

func (c *Canvas) Load(b *PixelBuffer) error {
	pm := c.dc.ResizeTarget()
	if b.Width != pm.Width() || b.Height != pm.Height() {
		return fmt.Errorf("%w: loading %dx%d into %dx%d canvas",
			ErrSizeMismatch, b.Width, b.Height, pm.Width(), pm.Height())
	}
	copy(pm.Data(), b.Pix)
	return nil
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}
