// Package anim owns simulated time for one animation run.
package anim

import (
	"math"

	"circle-crossings/shape"
)

// Controller advances progress through a looping period and renders the
// figure for it.  Progress is always in [0, 1).
type Controller struct {
	progress  float64
	period    float64
	subShapes int
	gen       shape.Generator
}

// New builds a controller for v, starting at progress 0.
func New(v shape.Variant) (*Controller, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	gen, err := shape.New(v.Shape)
	if err != nil {
		return nil, err
	}
	return &Controller{period: v.Period, subShapes: v.SubShapes, gen: gen}, nil
}

func (c *Controller) Progress() float64 { return c.progress }
func (c *Controller) Period() float64   { return c.period }
func (c *Controller) SubShapes() int    { return c.subShapes }

// Update simulates dt seconds passing.
func (c *Controller) Update(dt float64) {
	c.progress = wrap(c.progress + dt/c.period)
}

// Render returns the directives for the current progress.
func (c *Controller) Render() []shape.Directive {
	return c.RenderAt(c.progress)
}

// RenderAt returns the directives for an arbitrary progress without
// touching the controller's state.  With more than one sub-shape, copies
// evenly phase-shifted across the period are drawn on top of each other.
func (c *Controller) RenderAt(progress float64) []shape.Directive {
	if c.subShapes <= 1 {
		return c.gen.Generate(progress)
	}
	var r []shape.Directive
	for i := 0; i < c.subShapes; i++ {
		r = append(r, c.gen.Generate(wrap(progress+float64(i)/float64(c.subShapes)))...)
	}
	return r
}

func wrap(p float64) float64 {
	p = math.Mod(p, 1)
	if p < 0 {
		p++
	}
	// p++ on a tiny negative rounds to exactly 1.
	if p >= 1 {
		p = 0
	}
	return p
}
