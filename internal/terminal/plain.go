package terminal

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"eca/internal/sims/elementary"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Plain writes one line per generation to w. Lines end in "\r\n" so they
// stay aligned when the terminal is in raw mode.
type Plain struct {
	w io.Writer
}

// NewPlain returns a Plain display writing to w.
func NewPlain(w io.Writer) *Plain { return &Plain{w: w} }

// ShowGeneration writes c followed by a line break.
func (p *Plain) ShowGeneration(c elementary.Cells) error {
	_, err := io.WriteString(p.w, c.String()+"\r\n")
	return err
}

// NopInput never reports input. Poll only waits out the timeout and WaitKey
// returns at once.
type NopInput struct{}

func (NopInput) Poll(timeout time.Duration) (bool, error) {
	if timeout > 0 {
		time.Sleep(timeout)
	}
	return false, nil
}

func (NopInput) WaitKey() error { return nil }

// Size reports the size of the terminal behind f, or 80x24 when f is not a
// terminal.
func Size(f *os.File) (width, height int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}
