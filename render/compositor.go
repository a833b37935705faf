package render

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"sync"

	"circle-crossings/anim"
)

// Compositor turns a span of simulated time into one motion-blurred frame
// by rendering SubFrames samples across it and averaging them.
type Compositor struct {
	SubFrames  int
	Workers    int
	Background color.Color
	// NewSurface makes a blank surface of the output size.  One is kept
	// for the lifetime of the compositor, plus one per extra worker.
	NewSurface func() Surface
	Logger     *slog.Logger

	primary Surface
	extra   []Surface
}

// NewCompositor renders onto gg canvases covering view.
func NewCompositor(view Viewport, subFrames int) *Compositor {
	return &Compositor{
		SubFrames:  subFrames,
		Workers:    1,
		Background: color.Black,
		NewSurface: func() Surface { return NewCanvas(view) },
	}
}

func (c *Compositor) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Surface is the compositor's main surface.  After Compose it holds the
// averaged frame.
func (c *Compositor) Surface() Surface {
	if c.primary == nil {
		c.primary = c.NewSurface()
	}
	return c.primary
}

// RenderOnce renders the controller's current state without advancing it.
func (c *Compositor) RenderOnce(ctrl *anim.Controller) (*PixelBuffer, error) {
	return c.renderAt(c.Surface(), ctrl, ctrl.Progress())
}

// Compose samples ctrl SubFrames times, advancing it by dt/SubFrames after
// each sample, so ctrl ends exactly dt further along.  The samples are
// rendered and averaged channel-wise.
func (c *Compositor) Compose(ctrl *anim.Controller, dt float64) (*PixelBuffer, error) {
	n := c.SubFrames
	if n < 1 {
		n = 1
	}

	progress := make([]float64, n)
	for i := range progress {
		progress[i] = ctrl.Progress()
		ctrl.Update(dt / float64(n))
	}

	var (
		bufs []*PixelBuffer
		err  error
	)
	if c.Workers > 1 && n > 1 {
		bufs, err = c.renderParallel(ctrl, progress)
	} else {
		bufs, err = c.renderSerial(ctrl, progress)
	}
	if err != nil {
		return nil, err
	}

	out, err := Average(bufs)
	if err != nil {
		return nil, err
	}
	if err := c.Surface().Load(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Compositor) renderSerial(ctrl *anim.Controller, progress []float64) ([]*PixelBuffer, error) {
	bufs := make([]*PixelBuffer, len(progress))
	for i, p := range progress {
		b, err := c.renderAt(c.Surface(), ctrl, p)
		if err != nil {
			return nil, fmt.Errorf("sub-frame %d: %w", i, err)
		}
		bufs[i] = b
	}
	return bufs, nil
}

// renderParallel hands sub-frames out to Workers goroutines, each drawing
// on its own surface.  Results land in their own slot so the average sees
// them in sampling order.
func (c *Compositor) renderParallel(ctrl *anim.Controller, progress []float64) ([]*PixelBuffer, error) {
	workers := min(c.Workers, len(progress))
	bufs := make([]*PixelBuffer, len(progress))
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		mutex    sync.Mutex
		firstErr error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(s Surface) {
			defer wg.Done()
			for i := range jobs {
				b, err := c.renderAt(s, ctrl, progress[i])
				if err != nil {
					mutex.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("sub-frame %d: %w", i, err)
					}
					mutex.Unlock()
					continue
				}
				bufs[i] = b
			}
		}(c.workerSurface(w))
	}
	for i := range progress {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	c.logger().Debug("rendered sub-frames", "count", len(progress), "workers", workers)
	return bufs, firstErr
}

// workerSurface is the primary surface for worker 0 and a cached private
// one for every other worker.
func (c *Compositor) workerSurface(w int) Surface {
	if w == 0 {
		return c.Surface()
	}
	for len(c.extra) < w {
		c.extra = append(c.extra, c.NewSurface())
	}
	return c.extra[w-1]
}

func (c *Compositor) renderAt(s Surface, ctrl *anim.Controller, progress float64) (*PixelBuffer, error) {
	s.Clear(c.Background)
	for _, d := range ctrl.RenderAt(progress) {
		if err := s.Draw(d); err != nil {
			return nil, err
		}
	}
	return s.Pixels()
}

// Close releases every surface the compositor created.
func (c *Compositor) Close() error {
	var firstErr error
	for _, s := range append([]Surface{c.primary}, c.extra...) {
		if cl, ok := s.(io.Closer); ok {
			if err := cl.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	c.primary, c.extra = nil, nil
	return firstErr
}
