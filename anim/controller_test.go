package anim

import (
	"math"
	"testing"

	"circle-crossings/shape"
)

func newController(t *testing.T, name string) *Controller {
	t.Helper()
	v, err := shape.Lookup(name)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	c, err := New(v)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// loopDist is the distance between two progress values on the unit loop.
func loopDist(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func TestUpdateWraps(t *testing.T) {
	c := newController(t, "classic")
	tests := []struct {
		dt   float64
		want float64
	}{
		{2.5, 0.25},
		{5, 0.75},
		{3, 0.05},
		{-1, 0.95},
		{-25, 0.45},
		{100, 0.45},
	}
	for _, tt := range tests {
		c.Update(tt.dt)
		got := c.Progress()
		if got < 0 || got >= 1 {
			t.Fatalf("Update(%v): progress %v out of [0,1)", tt.dt, got)
		}
		if loopDist(got, tt.want) > 1e-9 {
			t.Errorf("Update(%v): progress %v, want %v", tt.dt, got, tt.want)
		}
	}
}

func TestLoopClosure(t *testing.T) {
	c := newController(t, "classic")
	if c.Period() != 10 {
		t.Fatalf("period %v, want 10", c.Period())
	}
	for i := 0; i < 4; i++ {
		c.Update(2.5)
	}
	if loopDist(c.Progress(), 0) > 1e-9 {
		t.Errorf("after 4 x 2.5s progress = %v, want 0", c.Progress())
	}
}

func TestPeriodicity(t *testing.T) {
	for _, v := range shape.Variants() {
		for _, k := range []int{1, 2, 3, 7, 30, 97, 300} {
			c, err := New(v)
			if err != nil {
				t.Fatal(err)
			}
			c.Update(0.123 * v.Period)
			start := c.Progress()

			dt := c.Period() / float64(k)
			for i := 0; i < k; i++ {
				c.Update(dt)
			}
			if loopDist(c.Progress(), start) > 1e-9 {
				t.Errorf("%s k=%d: progress %v, want %v", v.Name, k, c.Progress(), start)
			}
		}
	}
}

func TestRenderIsPure(t *testing.T) {
	c := newController(t, "classic")
	c.Update(1.7)
	before := c.Progress()
	a := c.Render()
	b := c.RenderAt(before)
	if c.Progress() != before {
		t.Errorf("Render moved progress %v -> %v", before, c.Progress())
	}
	if len(a) != len(b) {
		t.Fatalf("Render %d directives, RenderAt %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("directive %d differs", i)
		}
	}
}

func TestSubShapes(t *testing.T) {
	c := newController(t, "triple")
	if c.SubShapes() != 3 {
		t.Fatalf("sub-shapes %d, want 3", c.SubShapes())
	}

	v, _ := shape.Lookup("triple")
	gen, err := shape.New(v.Shape)
	if err != nil {
		t.Fatal(err)
	}

	p := 0.8
	var want []shape.Directive
	for _, q := range []float64{0.8, 0.8 + 1.0/3, 0.8 + 2.0/3 - 1} {
		want = append(want, gen.Generate(q)...)
	}
	got := c.RenderAt(p)
	if len(got) != len(want) {
		t.Fatalf("got %d directives, want %d", len(got), len(want))
	}

	lines := 0
	for _, d := range got {
		if d.Kind == shape.StrokeLine {
			lines++
		}
	}
	if lines != 3 {
		t.Errorf("reference lines = %d, want 3", lines)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	v, _ := shape.Lookup("classic")
	v.Period = 0
	if _, err := New(v); err == nil {
		t.Error("New accepted zero period")
	}
	v.Period = 1
	v.SubShapes = 0
	if _, err := New(v); err == nil {
		t.Error("New accepted zero sub-shapes")
	}
}
