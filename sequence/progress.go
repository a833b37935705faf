package sequence

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Progress keeps a single status line up to date by rewriting it in place.
// A nil *Progress is a valid no-op.
type Progress struct {
	w io.Writer
	p *message.Printer
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w, p: message.NewPrinter(language.English)}
}

// Update shows done, a fraction in [0, 1], as a percentage.
func (p *Progress) Update(done float64) {
	if p == nil {
		return
	}
	p.p.Fprintf(p.w, "\rGenerating frames: %v", number.Percent(done))
}

func (p *Progress) Done() {
	if p == nil {
		return
	}
	// Pad over whatever is left of the last percentage line.
	p.p.Fprintf(p.w, "\r%-28s\n", "Generating Done!")
}
