// Package sequence walks simulated time across an animation and hands each
// finished frame to a sink.
package sequence

import (
	"errors"
	"fmt"
	"log/slog"

	"circle-crossings/anim"
	"circle-crossings/render"
)

// Fixed timing for generated sequences
const (
	DefaultFPS       = 30
	DefaultSubFrames = 4
)

type Driver struct {
	Controller *anim.Controller
	Compositor *render.Compositor
	Sink       Sink
	FPS        int
	// Length is how many simulated seconds to cover; zero means one period.
	Length    float64
	StartTime float64
	Progress  *Progress
	Logger    *slog.Logger
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

func (d *Driver) check() error {
	switch {
	case d.Controller == nil:
		return errors.New("sequence: no controller")
	case d.Compositor == nil:
		return errors.New("sequence: no compositor")
	case d.Sink == nil:
		return errors.New("sequence: no sink")
	}
	return nil
}

func (d *Driver) length() float64 {
	if d.Length > 0 {
		return d.Length
	}
	return d.Controller.Period()
}

// FrameCount is how many frames Run writes.
func (d *Driver) FrameCount() int {
	dt := 1 / float64(d.fps())
	n := 0
	for float64(n)*dt < d.length() {
		n++
	}
	return n
}

func (d *Driver) fps() int {
	if d.FPS > 0 {
		return d.FPS
	}
	return DefaultFPS
}

// Run advances the controller by StartTime and then writes one composited
// frame per 1/FPS seconds until Length is covered.  It returns the number
// of frames written.
func (d *Driver) Run() (int, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	log := d.logger()
	d.Controller.Update(d.StartTime)

	dt := 1 / float64(d.fps())
	length := d.length()
	log.Info("generating frames", "length", length, "fps", d.fps(),
		"sub_frames", d.Compositor.SubFrames, "start", d.StartTime)

	frame := 0
	for ; float64(frame)*dt < length; frame++ {
		buf, err := d.Compositor.Compose(d.Controller, dt)
		if err != nil {
			return frame, fmt.Errorf("frame %d: %w", frame, err)
		}
		if err := d.Sink.WriteFrame(frame, buf); err != nil {
			return frame, fmt.Errorf("writing frame %d: %w", frame, err)
		}
		log.Debug("wrote frame", "frame", frame, "progress", d.Controller.Progress())
		d.Progress.Update(float64(frame) * dt / length)
	}
	d.Progress.Done()
	return frame, nil
}

// RunSingle advances the controller by StartTime and writes exactly one
// frame, rendered once with no averaging, as index 0.
func (d *Driver) RunSingle() error {
	if err := d.check(); err != nil {
		return err
	}
	d.Controller.Update(d.StartTime)
	d.logger().Info("generating single frame", "start", d.StartTime, "progress", d.Controller.Progress())

	buf, err := d.Compositor.RenderOnce(d.Controller)
	if err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	if err := d.Sink.WriteFrame(0, buf); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
