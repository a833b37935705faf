package sequence

import (
	"fmt"
	"os"
	"path/filepath"

	"circle-crossings/render"
)

// Sink receives finished frames.  Indices start at 0 and go up by one.
type Sink interface {
	WriteFrame(index int, buf *render.PixelBuffer) error
}

// DirSink writes each frame to its own file in Dir, named Prefix plus the
// index padded to four digits.
type DirSink struct {
	Dir    string
	Prefix string
	Format Format

	made bool
}

func NewDirSink(dir string, f Format) *DirSink {
	return &DirSink{Dir: dir, Prefix: "frame", Format: f}
}

func (s *DirSink) Path(index int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s%04d.%s", s.Prefix, index, s.Format.Ext()))
}

func (s *DirSink) WriteFrame(index int, buf *render.PixelBuffer) error {
	if !s.made {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		s.made = true
	}
	return writeImage(s.Path(index), buf, s.Format)
}

// FileSink writes whatever frame it is given to Path.
type FileSink struct {
	Path   string
	Format Format
}

func (s *FileSink) WriteFrame(_ int, buf *render.PixelBuffer) error {
	return writeImage(s.Path, buf, s.Format)
}

func writeImage(path string, buf *render.PixelBuffer, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Encode(file, buf.Image(), f); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
