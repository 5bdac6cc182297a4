package game

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/townmap/internal/entity"
	"github.com/samdwyer/townmap/internal/gamedata"
	"github.com/samdwyer/townmap/internal/world"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSession(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	s, err := NewSession(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	town := s.Town()
	require.NotNil(t, town)
	assert.Equal(t, world.StateDone, town.State)
	assert.Len(t, town.Rooms, 2)

	player := s.Player()
	x, y := player.Position()
	assert.Equal(t, town.Spawn, world.Point{X: x, Y: y})
	assert.Contains(t, town.Grid.At(town.Spawn).Occupants, world.Occupant(player))

	require.Len(t, s.NPCs(), cfg.Traders)
	for _, npc := range s.NPCs() {
		assert.Equal(t, entity.ActionTrade, npc.Action)
		p := world.Point{X: npc.X, Y: npc.Y}
		room := town.RoomAt(p)
		require.NotNil(t, room)
		assert.Equal(t, gamedata.KindTradingPost, room.Kind())
		assert.Contains(t, town.Grid.At(p).Occupants, world.Occupant(npc))
	}
}

func TestNewSessionReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 9
	cfg.Traders = 0

	a, err := NewSession(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	b, err := NewSession(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, a.Town().Dump(), b.Town().Dump())
}

func TestNewSessionWeightedBuildings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.Buildings = nil
	cfg.BuildingCount = 3
	cfg.Traders = 0

	s, err := NewSession(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	assert.Len(t, s.Town().Rooms, 3)
}

func TestNewSessionErrors(t *testing.T) {
	t.Run("unknown building", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Buildings = []gamedata.BuildingKind{"castle"}
		_, err := NewSession(context.Background(), cfg, discardLogger())
		require.ErrorIs(t, err, gamedata.ErrUnknownBuilding)
	})

	t.Run("no buildings", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Buildings = nil
		_, err := NewSession(context.Background(), cfg, discardLogger())
		require.ErrorIs(t, err, world.ErrNoBuildings)
	})

	t.Run("missing catalog", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.CatalogPath = t.TempDir()
		_, err := NewSession(context.Background(), cfg, discardLogger())
		require.Error(t, err)
	})
}

// handmadeSession builds a session on a small fixed map:
//
//	row 0: path path path door water
//
// with the player on (0,0).
func handmadeSession(t *testing.T) *Session {
	t.Helper()
	g := world.NewGrid(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			g.SetTerrain(x, y, world.TerrainPath)
		}
	}
	g.SetTerrain(3, 0, world.TerrainDoor)
	g.Tile(3, 0).Door = &world.Door{Pos: world.Point{X: 3, Y: 0}, Closed: true}
	g.SetTerrain(4, 0, world.TerrainWater)

	s := &Session{
		log:    discardLogger(),
		town:   &world.Town{Grid: g},
		player: entity.NewPlayer(0, 0),
	}
	require.NoError(t, g.Register(world.Point{}, s.player))
	return s
}

func TestMove(t *testing.T) {
	s := handmadeSession(t)
	ctx := context.Background()

	msgs, err := s.Move(ctx, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	_, err = s.Move(ctx, 1, 0)
	require.NoError(t, err)

	msgs, err = s.Move(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"This door is closed", "This door is now open"}, msgs)

	_, err = s.Move(ctx, 1, 0)
	require.ErrorIs(t, err, world.ErrBlocked)
	_, err = s.Move(ctx, 0, -1)
	require.ErrorIs(t, err, world.ErrOutOfBounds)

	x, y := s.Player().Position()
	assert.Equal(t, 3, x)
	assert.Equal(t, 0, y)
}

func TestMoveIntoNPC(t *testing.T) {
	s := handmadeSession(t)
	npc := entity.NewNPC("Guard", 0, 1, entity.ActionGreet, nil)
	require.NoError(t, s.town.Grid.Register(world.Point{X: 0, Y: 1}, npc))
	s.npcs = append(s.npcs, npc)

	_, err := s.Move(context.Background(), 0, 1)
	require.ErrorIs(t, err, world.ErrBlocked)
}

func TestInteract(t *testing.T) {
	s := handmadeSession(t)
	greeter := entity.NewNPC("Mira", 1, 0, entity.ActionGreet, nil)
	trader := entity.NewNPC("Tam", 0, 1, entity.ActionTrade, nil)
	far := entity.NewNPC("Far", 4, 2, entity.ActionGreet, nil)
	s.npcs = []*entity.NPC{greeter, trader, far}

	msgs := s.Interact()
	assert.Equal(t, []string{"Mira: Hello player!", "Tam has nothing to trade."}, msgs)
	assert.Equal(t, entity.ActionNone, greeter.Action)

	msgs = s.Interact()
	assert.Equal(t, []string{"Tam has nothing to trade."}, msgs)
	assert.Equal(t, entity.ActionGreet, far.Action)
}

func TestTradeOutsideShop(t *testing.T) {
	s := handmadeSession(t)
	post := gamedata.MustLoadBuildingRegistry().GetByKind(gamedata.KindTradingPost)
	trader := entity.NewNPC("Tam", 1, 0, entity.ActionTrade, post)
	s.npcs = []*entity.NPC{trader}

	msgs := s.Interact()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Tam only trades inside the "+post.Name+".", msgs[0])
}

func TestTradeInsideShop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Traders = 1

	s, err := NewSession(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	require.Len(t, s.NPCs(), 1)

	trader := s.NPCs()[0]
	assert.Equal(t, "Trader 1 offers the wares of the "+trader.Building.Name+".", trade(s, trader))
}

func TestNewSessionCountFlag(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 17
	cfg.Traders = 0
	cfg.BuildingCount = 5
	fromEnv := cfg

	Merge(&cfg, &fromEnv, map[string]bool{"count": true})

	s, err := NewSession(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	assert.Len(t, s.Town().Rooms, 5)
	assert.Equal(t, world.MediumTownSize, s.Town().Grid.Width)
}
