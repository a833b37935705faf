// Command circle-crossings renders the crossing-circles animation to a
// numbered PNG sequence, or a single still image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"

	"circle-crossings/anim"
	"circle-crossings/render"
	"circle-crossings/sequence"
	"circle-crossings/shape"
)

var (
	ErrInvalidSize = errors.New("width and height must be positive integers")
	ErrNoOutput    = errors.New("no output given (-out)")
)

// Config is everything the command line controls.
type Config struct {
	Width       int
	Height      int
	Out         string
	Start       float64
	SingleFrame bool
	Variant     string
	Format      string
	Workers     int
	Verbose     bool
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Out == "" {
		return ErrNoOutput
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := shape.Lookup(c.Variant); err != nil {
		return err
	}
	if c.Format != "" {
		if _, err := sequence.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	return nil
}

// IsSVG reports whether a single frame should be exported as vectors.
func (c Config) IsSVG() bool {
	return c.SingleFrame && strings.EqualFold(filepath.Ext(c.Out), ".svg")
}

// ImageFormat is the raster encoding to write.  An explicit -format wins;
// a single frame otherwise goes by its extension, and sequences default to
// PNG.
func (c Config) ImageFormat() (sequence.Format, error) {
	if c.Format != "" {
		return sequence.ParseFormat(c.Format)
	}
	if c.SingleFrame {
		if f, err := sequence.FormatFromPath(c.Out); err == nil {
			return f, nil
		}
	}
	return sequence.PNG, nil
}

func parseFlags(args []string) (Config, error) {
	var c Config
	fs := flag.NewFlagSet("circle-crossings", flag.ContinueOnError)
	fs.IntVar(&c.Width, "width", 0, "output width in pixels (required)")
	fs.IntVar(&c.Height, "height", 0, "output height in pixels (required)")
	fs.StringVar(&c.Out, "out", "", "output directory, or output file with -single_frame (required)")
	fs.Float64Var(&c.Start, "start", 0, "simulated start time in seconds")
	fs.BoolVar(&c.SingleFrame, "single_frame", false, "render one frame to -out instead of a sequence")
	fs.StringVar(&c.Variant, "variant", shape.DefaultVariant,
		fmt.Sprintf("animation style, one of %s", strings.Join(shape.Names(), ", ")))
	fs.StringVar(&c.Format, "format", "", "image format: png, bmp or tiff")
	fs.IntVar(&c.Workers, "workers", 1, "goroutines rendering sub-frames")
	fs.BoolVar(&c.Verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(c Config, log *slog.Logger) error {
	v, err := shape.Lookup(c.Variant)
	if err != nil {
		return err
	}
	ctrl, err := anim.New(v)
	if err != nil {
		return err
	}
	view := render.NewViewport(c.Width, c.Height)

	if c.IsSVG() {
		return writeSVG(c, ctrl, view, log)
	}

	format, err := c.ImageFormat()
	if err != nil {
		return err
	}

	comp := render.NewCompositor(view, sequence.DefaultSubFrames)
	comp.Workers = c.Workers
	comp.Logger = log
	defer comp.Close()

	d := &sequence.Driver{
		Controller: ctrl,
		Compositor: comp,
		FPS:        sequence.DefaultFPS,
		Length:     ctrl.Period(),
		StartTime:  c.Start,
		Logger:     log,
	}

	if c.SingleFrame {
		d.Sink = &sequence.FileSink{Path: c.Out, Format: format}
		return d.RunSingle()
	}

	d.Sink = sequence.NewDirSink(c.Out, format)
	d.Progress = sequence.NewProgress(os.Stderr)
	n, err := d.Run()
	if err != nil {
		return err
	}
	log.Info("done", "frames", n, "dir", c.Out)
	return nil
}

func writeSVG(c Config, ctrl *anim.Controller, view render.Viewport, log *slog.Logger) (err error) {
	ctrl.Update(c.Start)
	log.Info("writing svg", "path", c.Out, "progress", ctrl.Progress())

	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render.WriteSVG(f, view, color.Black, ctrl.Render())
}

func main() {
	c, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log := newLogger(c.Verbose)
	if c.Verbose {
		gg.SetLogger(log)
	}

	if err := run(c, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
