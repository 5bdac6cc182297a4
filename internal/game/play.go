package game

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/townmap/internal/ui"
	"github.com/samdwyer/townmap/internal/world"
)

// Play runs the interactive loop on screen until the player quits or ctx is
// done. The screen is closed on return.
func (s *Session) Play(ctx context.Context, screen *ui.Screen) error {
	defer screen.Close()

	renderer := ui.NewRenderer(screen)
	msgs := []string{"Welcome to " + s.town.Name + ". Arrows move, e talks, q quits."}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		renderer.Render(s.town, msgs)

		ev, ok := screen.NextKey()
		if !ok {
			return nil
		}
		var quit bool
		msgs, quit = s.handleKeyEvent(ctx, ev)
		if quit {
			return nil
		}
	}
}

// handleKeyEvent processes keyboard input and returns the messages to show.
func (s *Session) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) ([]string, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyUp:
		return s.tryMove(ctx, 0, -1), false
	case tcell.KeyDown:
		return s.tryMove(ctx, 0, 1), false
	case tcell.KeyLeft:
		return s.tryMove(ctx, -1, 0), false
	case tcell.KeyRight:
		return s.tryMove(ctx, 1, 0), false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return nil, true
		case 'e', 'E':
			return s.Interact(), false
		}
	}
	return nil, false
}

// tryMove moves the player and turns refusals into messages.
func (s *Session) tryMove(ctx context.Context, dx, dy int) []string {
	msgs, err := s.Move(ctx, dx, dy)
	switch {
	case errors.Is(err, world.ErrBlocked):
		return []string{"Something is in the way."}
	case errors.Is(err, world.ErrOutOfBounds):
		return []string{"You cannot leave town that way."}
	case err != nil:
		s.log.Warn("move failed", "error", err)
		return nil
	}
	return msgs
}
