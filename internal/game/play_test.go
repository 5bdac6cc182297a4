package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/townmap/internal/entity"
	"github.com/samdwyer/townmap/internal/ui"
	"github.com/samdwyer/townmap/internal/world"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleKeyEvent(t *testing.T) {
	s := handmadeSession(t)
	s.town.Name = "Testford"
	s.npcs = []*entity.NPC{entity.NewNPC("Mira", 1, 1, entity.ActionGreet, nil)}
	ctx := context.Background()

	msgs, quit := s.handleKeyEvent(ctx, key(tcell.KeyUp))
	assert.False(t, quit)
	assert.Equal(t, []string{"You cannot leave town that way."}, msgs)

	msgs, _ = s.handleKeyEvent(ctx, key(tcell.KeyRight))
	assert.Empty(t, msgs)

	msgs, _ = s.handleKeyEvent(ctx, runeKey('e'))
	assert.Equal(t, []string{"Mira: Hello player!"}, msgs)

	_, quit = s.handleKeyEvent(ctx, runeKey('q'))
	assert.True(t, quit)
	_, quit = s.handleKeyEvent(ctx, key(tcell.KeyEscape))
	assert.True(t, quit)
}

func TestHandleKeyEventBlocked(t *testing.T) {
	s := handmadeSession(t)
	s.player.MoveTo(3, 0)
	require.NoError(t, s.town.Grid.Unregister(s.town.Spawn, s.player))
	require.NoError(t, s.town.Grid.Register(world.Point{X: 3, Y: 0}, s.player))

	msgs, _ := s.handleKeyEvent(context.Background(), key(tcell.KeyRight))
	assert.Equal(t, []string{"Something is in the way."}, msgs)
}

func TestPlayQuits(t *testing.T) {
	s := handmadeSession(t)
	s.town.Name = "Testford"

	sim := tcell.NewSimulationScreen("")
	screen, err := ui.Wrap(sim)
	require.NoError(t, err)
	sim.SetSize(20, 10)
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, s.Play(context.Background(), screen))

	x, _ := s.Player().Position()
	assert.Equal(t, 1, x)
}
