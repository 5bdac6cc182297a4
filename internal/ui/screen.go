// Package ui draws a town in the terminal and reads the player's keys.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal the town is drawn on.
type Screen struct {
	screen tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(s)
}

// Wrap initializes an existing tcell screen, such as a simulation screen.
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// NextKey blocks until a key is pressed. Resizes are redrawn in place.
// It returns false once the screen has been closed.
func (s *Screen) NextKey() (*tcell.EventKey, bool) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return nil, false
		case *tcell.EventKey:
			return ev, true
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// Frame clears the buffer, lets draw fill it and flushes it to the terminal.
func (s *Screen) Frame(draw func()) {
	s.screen.Clear()
	draw()
	s.screen.Show()
}

// Cell sets one glyph.
func (s *Screen) Cell(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Text writes msg left to right from x, y, clipped at the screen edge.
func (s *Screen) Text(x, y int, msg string, style tcell.Style) {
	width, _ := s.screen.Size()
	for _, ch := range msg {
		if x >= width {
			return
		}
		s.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
