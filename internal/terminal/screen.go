// Package terminal shows generations on a text terminal and reads the
// keyboard.
package terminal

import (
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"eca/internal/sims/elementary"
)

// ErrClosed is returned once the terminal stops delivering events.
var ErrClosed = errors.New("terminal: event stream closed")

// Screen takes over the terminal: alternate screen, raw keyboard, hidden
// cursor. Generations are drawn top to bottom and scroll upward once the
// screen is full.
type Screen struct {
	scr   tcell.Screen
	style tcell.Style
	lines []string

	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
}

// NewScreen initializes the controlling terminal. Close restores it.
func NewScreen() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := scr.Init(); err != nil {
		return nil, err
	}
	return newScreen(scr), nil
}

func newScreen(scr tcell.Screen) *Screen {
	scr.HideCursor()
	scr.Clear()
	s := &Screen{
		scr:    scr,
		style:  tcell.StyleDefault,
		events: make(chan tcell.Event),
		quit:   make(chan struct{}),
	}
	go s.pump()
	return s
}

// pump forwards terminal events until the screen is finalized.
func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.scr.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.quit)
		s.scr.Fini()
	})
}

// ShowGeneration draws c on the next row.
func (s *Screen) ShowGeneration(c elementary.Cells) error {
	s.lines = append(s.lines, c.String())
	s.redraw(false)
	return nil
}

func (s *Screen) redraw(full bool) {
	_, h := s.scr.Size()
	if extra := len(s.lines) - h; extra > 0 {
		n := copy(s.lines, s.lines[extra:])
		s.lines = s.lines[:n]
	}
	s.scr.Clear()
	for y, line := range s.lines {
		x := 0
		for _, r := range line {
			s.scr.SetContent(x, y, r, nil, s.style)
			x++
		}
	}
	if full {
		s.scr.Sync()
		return
	}
	s.scr.Show()
}

// Poll waits up to timeout for input and consumes it. Resize events redraw
// the screen and do not count as input.
func (s *Screen) Poll(timeout time.Duration) (bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		ev, err := s.next(time.Until(deadline))
		if err != nil || ev == nil {
			return false, err
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			s.redraw(true)
			continue
		}
		return true, nil
	}
}

// WaitKey blocks until a key is pressed.
func (s *Screen) WaitKey() error {
	for {
		ev, ok := <-s.events
		if !ok {
			return ErrClosed
		}
		switch ev.(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			s.redraw(true)
		}
	}
}

// next returns the next event, waiting at most timeout. A nil event means
// the timeout expired.
func (s *Screen) next(timeout time.Duration) (tcell.Event, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return nil, ErrClosed
		}
		return ev, nil
	default:
	}
	if timeout <= 0 {
		return nil, nil
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case ev, ok := <-s.events:
		if !ok {
			return nil, ErrClosed
		}
		return ev, nil
	case <-t.C:
		return nil, nil
	}
}
