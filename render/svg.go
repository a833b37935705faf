package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/jbeda/geom"

	"circle-crossings/shape"
	"circle-crossings/vmath"
)

// WriteSVG writes directives as a standalone SVG document.  The view box is
// the viewport's world bounds so coordinates go out untransformed.
func WriteSVG(w io.Writer, view Viewport, bg color.Color, ds []shape.Directive) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	b := view.WorldBounds()
	canvas.Start(view.Width, view.Height,
		fmt.Sprintf(`viewBox="%f %f %f %f"`, b.Min.X, b.Min.Y, b.Width(), b.Height()))
	canvas.Path(fmt.Sprintf("M%f,%f H%f V%f H%f Z", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, b.Min.X),
		"fill:"+cssColor(bg)+";stroke:none")

	for _, d := range ds {
		switch d.Kind {
		case shape.StrokeLine:
			canvas.Path(fmt.Sprintf("M%f,%f L%f,%f", d.P1.X, d.P1.Y, d.P2.X, d.P2.Y), strokeStyle(d.Style))
		case shape.StrokeArc:
			canvas.Path(arcPath(d.Center, d.Radius, d.StartAngle, d.EndAngle), strokeStyle(d.Style))
		case shape.FillDot:
			canvas.Path(circlePath(d.Center, d.Radius), fillStyle(d.Style))
		case shape.StrokeCircle:
			canvas.Path(circlePath(d.Center, d.Radius), strokeStyle(d.Style))
		default:
			return fmt.Errorf("render: unknown directive kind %v", d.Kind)
		}
	}
	canvas.End()
	return ew.err
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// arcPath goes from start to end with increasing angle, matching canvas
// arc() without the anticlockwise flag.
func arcPath(c geom.Coord, r, start, end float64) string {
	sweep := math.Mod(end-start, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	p1 := c.Plus(vmath.Polar(r, start))
	p2 := c.Plus(vmath.Polar(r, end))
	return fmt.Sprintf("M%f,%f A%f,%f 0 %s,1 %f,%f",
		p1.X, p1.Y, r, r, onezero(sweep > math.Pi), p2.X, p2.Y)
}

func circlePath(c geom.Coord, r float64) string {
	return fmt.Sprintf("M%f,%f A%f,%f 0 1,1 %f,%f A%f,%f 0 1,1 %f,%f Z",
		c.X+r, c.Y, r, r, c.X-r, c.Y, r, r, c.X+r, c.Y)
}

func cssColor(col color.Color) string {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
}

var svgCaps = map[shape.LineCap]string{
	shape.CapButt:   "butt",
	shape.CapRound:  "round",
	shape.CapSquare: "square",
}

var svgJoins = map[shape.LineJoin]string{
	shape.JoinMiter: "miter",
	shape.JoinRound: "round",
	shape.JoinBevel: "bevel",
}

func strokeStyle(st shape.Style) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%g;stroke-width:%g;stroke-linecap:%s;stroke-linejoin:%s",
		cssColor(st.Color), st.Alpha(), st.LineWidth, svgCaps[st.Cap], svgJoins[st.Join])
}

func fillStyle(st shape.Style) string {
	return fmt.Sprintf("stroke:none;fill:%s;fill-opacity:%g", cssColor(st.Color), st.Alpha())
}
