package render

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrNoBuffers    = errors.New("no buffers to average")
	ErrSizeMismatch = errors.New("buffer size mismatch")
)

// PixelBuffer is a row-major grid of 8-bit RGBA samples, four bytes per
// pixel with no row padding.
type PixelBuffer struct {
	Width, Height int
	Pix           []uint8
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{Width: width, Height: height, Pix: make([]uint8, 4*width*height)}
}

func (b *PixelBuffer) Clone() *PixelBuffer {
	return &PixelBuffer{Width: b.Width, Height: b.Height, Pix: append([]uint8(nil), b.Pix...)}
}

// At returns the four channels of pixel (x, y).
func (b *PixelBuffer) At(x, y int) [4]uint8 {
	i := 4 * (y*b.Width + x)
	return [4]uint8{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// Image wraps the buffer without copying.
func (b *PixelBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

func (b *PixelBuffer) sameSize(o *PixelBuffer) bool {
	return b.Width == o.Width && b.Height == o.Height && len(b.Pix) == len(o.Pix)
}

// Equal reports whether both buffers have the same size and samples.
func (b *PixelBuffer) Equal(o *PixelBuffer) bool {
	if !b.sameSize(o) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// Average returns a new buffer whose every channel is the mean of the
// corresponding channel across bufs, rounded to nearest.  Sums are exact
// integers so the result does not depend on the order of bufs.
func Average(bufs []*PixelBuffer) (*PixelBuffer, error) {
	if len(bufs) == 0 {
		return nil, ErrNoBuffers
	}
	first := bufs[0]
	for i, b := range bufs[1:] {
		if !first.sameSize(b) {
			return nil, fmt.Errorf("%w: buffer %d is %dx%d, want %dx%d",
				ErrSizeMismatch, i+1, b.Width, b.Height, first.Width, first.Height)
		}
	}
	if len(bufs) == 1 {
		return first.Clone(), nil
	}

	n := uint32(len(bufs))
	out := NewPixelBuffer(first.Width, first.Height)
	for i := range out.Pix {
		var sum uint32
		for _, b := range bufs {
			sum += uint32(b.Pix[i])
		}
		out.Pix[i] = uint8((sum + n/2) / n)
	}
	return out, nil
}
