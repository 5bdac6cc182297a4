package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOccupant struct {
	id       string
	blocking bool
}

func (s *stubOccupant) ID() string     { return s.id }
func (s *stubOccupant) Blocking() bool { return s.blocking }

func filledGrid(w, h int, t Terrain) *Grid {
	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.SetTerrain(x, y, t)
		}
	}
	return g
}

func TestAdjacencyMask(t *testing.T) {
	g := filledGrid(5, 5, TerrainFloor)

	assert.Equal(t, MaskAll, g.AdjacencyMask(2, 2, floorTerrain))
	assert.Equal(t, 0, g.AdjacencyMask(2, 2, TerrainSet{TerrainWater}))

	// Corner tiles only see the two in-bounds neighbours.
	assert.Equal(t, MaskEast|MaskSouth, g.AdjacencyMask(0, 0, floorTerrain))
	assert.Equal(t, MaskNorth|MaskWest, g.AdjacencyMask(4, 4, floorTerrain))

	g.SetTerrain(2, 1, TerrainWall)
	assert.Equal(t, MaskEast|MaskSouth|MaskWest, g.AdjacencyMask(2, 2, floorTerrain))
	assert.Equal(t, MaskAll, g.AdjacencyMask(2, 2, roomTerrain))
}

func TestTerrainReadsOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)

	assert.Equal(t, TerrainUnknown, g.Terrain(-1, 0))
	assert.Nil(t, g.Tile(3, 0))
	assert.True(t, g.IsBlocking(0, -1))

	g.SetTerrain(10, 10, TerrainWater) // ignored
	assert.Equal(t, 0, g.Count(TerrainWater))
}

func TestTerrainBlocking(t *testing.T) {
	tests := []struct {
		terrain  Terrain
		blocking bool
	}{
		{TerrainWater, true},
		{TerrainWall, true},
		{TerrainRock, true},
		{TerrainFloor, false},
		{TerrainPath, false},
		{TerrainGrass, false},
		{TerrainDirt, false},
		{TerrainDoor, false},
		{TerrainUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.terrain.String(), func(t *testing.T) {
			assert.Equal(t, tt.blocking, tt.terrain.IsBlocking())
		})
	}
}

func TestTileBlocking(t *testing.T) {
	g := filledGrid(3, 3, TerrainGrass)
	tile := g.Tile(1, 1)
	assert.False(t, tile.Blocking())

	tile.DecorationBlocking = true
	assert.True(t, tile.Blocking())
	tile.DecorationBlocking = false

	ghost := &stubOccupant{id: "ghost"}
	tile.Register(ghost)
	assert.False(t, tile.Blocking())

	wall := &stubOccupant{id: "wall", blocking: true}
	tile.Register(wall)
	assert.True(t, tile.Blocking())

	assert.True(t, tile.Unregister(wall))
	assert.False(t, tile.Unregister(wall))
	assert.False(t, tile.Blocking())
}

func TestGridRegistration(t *testing.T) {
	g := filledGrid(3, 3, TerrainGrass)
	o := &stubOccupant{id: "o", blocking: true}

	require.NoError(t, g.Register(Point{1, 1}, o))
	require.ErrorIs(t, g.Register(Point{5, 5}, o), ErrOutOfBounds)
	require.ErrorIs(t, g.Unregister(Point{0, 0}, o), ErrNotOccupant)
	require.NoError(t, g.Unregister(Point{1, 1}, o))
	assert.Empty(t, g.Tile(1, 1).Occupants)
}

func TestMoveOccupant(t *testing.T) {
	g := filledGrid(4, 1, TerrainPath)
	g.SetTerrain(3, 0, TerrainWater)
	door := &Door{Pos: Point{2, 0}, Closed: true}
	g.SetTerrain(2, 0, TerrainDoor)
	g.Tile(2, 0).Door = door

	o := &stubOccupant{id: "walker", blocking: true}
	require.NoError(t, g.Register(Point{0, 0}, o))

	msgs, err := g.MoveOccupant(o, Point{0, 0}, Point{1, 0})
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.Empty(t, g.Tile(0, 0).Occupants)
	assert.Len(t, g.Tile(1, 0).Occupants, 1)

	msgs, err = g.MoveOccupant(o, Point{1, 0}, Point{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"This door is closed", "This door is now open"}, msgs)
	assert.False(t, door.Closed)

	_, err = g.MoveOccupant(o, Point{2, 0}, Point{3, 0})
	require.ErrorIs(t, err, ErrBlocked)
	_, err = g.MoveOccupant(o, Point{2, 0}, Point{2, -1})
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Len(t, g.Tile(2, 0).Occupants, 1)
}

func TestGridResetAndString(t *testing.T) {
	g := filledGrid(3, 2, TerrainGrass)
	g.SetTerrain(1, 0, TerrainWater)
	assert.Equal(t, "\"~\"\n\"\"\"\n", g.String())

	g.Tile(0, 0).Register(&stubOccupant{id: "o"})
	g.Reset()
	assert.Equal(t, 6, g.Count(TerrainUnknown))
	assert.Empty(t, g.Tile(0, 0).Occupants)
	assert.Equal(t, Point{2, 1}, g.Tile(2, 1).Position())
}

func TestSynthesizeTerrain(t *testing.T) {
	g := NewGrid(SmallTownSize, SmallTownSize)
	SynthesizeTerrain(g, rand.New(rand.NewSource(7)))

	allowed := TerrainSet{TerrainGrass, TerrainDirt, TerrainWater, TerrainRock}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			require.Truef(t, allowed.Has(g.Terrain(x, y)), "unexpected %s at %d,%d", g.Terrain(x, y), x, y)
		}
	}
	assert.Positive(t, g.Count(TerrainGrass))
}

func TestSynthesizeTerrainReproducible(t *testing.T) {
	g1 := NewGrid(30, 30)
	g2 := NewGrid(30, 30)
	SynthesizeTerrain(g1, rand.New(rand.NewSource(99)))
	SynthesizeTerrain(g2, rand.New(rand.NewSource(99)))
	assert.Equal(t, g1.String(), g2.String())
}
