// Package world provides town map generation and tile management.
package world

import "github.com/samdwyer/townmap/internal/gamedata"

// Terrain is the ground kind of a tile. Its value doubles as the debug glyph.
type Terrain rune

const (
	TerrainUnknown Terrain = ' '
	TerrainFloor   Terrain = '.'
	TerrainWall    Terrain = '#'
	TerrainPath    Terrain = ':'
	TerrainGrass   Terrain = '"'
	TerrainDirt    Terrain = ','
	TerrainWater   Terrain = '~'
	TerrainRock    Terrain = '^'
	TerrainDoor    Terrain = '+'
)

// String returns the terrain name.
func (t Terrain) String() string {
	switch t {
	case TerrainFloor:
		return "floor"
	case TerrainWall:
		return "wall"
	case TerrainPath:
		return "path"
	case TerrainGrass:
		return "grass"
	case TerrainDirt:
		return "dirt"
	case TerrainWater:
		return "water"
	case TerrainRock:
		return "rock"
	case TerrainDoor:
		return "door"
	default:
		return "unknown"
	}
}

// Rune returns the terrain's display character.
func (t Terrain) Rune() rune {
	return rune(t)
}

// IsBlocking returns true for terrain that nothing can stand on or walk through.
func (t Terrain) IsBlocking() bool {
	return t == TerrainWater || t == TerrainWall || t == TerrainRock
}

// TerrainSet is a small set of terrain kinds used for adjacency tests.
type TerrainSet []Terrain

// Has reports whether t is a member of the set.
func (s TerrainSet) Has(t Terrain) bool {
	for _, member := range s {
		if member == t {
			return true
		}
	}
	return false
}

var (
	roomTerrain  = TerrainSet{TerrainFloor, TerrainWall}
	floorTerrain = TerrainSet{TerrainFloor}
)

// Occupant is anything that can stand on a tile: the player, NPCs, objects.
type Occupant interface {
	ID() string
	Blocking() bool
}

// Tile is a single map cell.
type Tile struct {
	X, Y    int
	Terrain Terrain

	// Decoration is set by the decoration pass; DecorationBlocking is copied from it.
	Decoration         *gamedata.DecorationDef
	DecorationBlocking bool

	Room      *Room // Owning room, nil outside buildings
	Door      *Door // Non-nil on door tiles
	Occupants []Occupant
}

// Position returns the tile coordinates.
func (t *Tile) Position() Point {
	return Point{X: t.X, Y: t.Y}
}

// Blocking returns true if the tile prevents movement and placement.
func (t *Tile) Blocking() bool {
	if t.Terrain.IsBlocking() || t.DecorationBlocking {
		return true
	}
	for _, o := range t.Occupants {
		if o.Blocking() {
			return true
		}
	}
	return false
}

// Register adds an occupant to the tile.
func (t *Tile) Register(o Occupant) {
	t.Occupants = append(t.Occupants, o)
}

// Unregister removes an occupant by identity. It returns false if the
// occupant was not on the tile.
func (t *Tile) Unregister(o Occupant) bool {
	for i, other := range t.Occupants {
		if other == o {
			t.Occupants = append(t.Occupants[:i], t.Occupants[i+1:]...)
			return true
		}
	}
	return false
}

// Action returns the kind of action triggered by stepping on the tile.
func (t *Tile) Action() ActionKind {
	if t.Door != nil {
		return ActionDoor
	}
	return ActionNone
}

// Glyph returns the character used by the debug dump: the top occupant,
// then the decoration, then the terrain.
func (t *Tile) Glyph() rune {
	for i := len(t.Occupants) - 1; i >= 0; i-- {
		if g, ok := t.Occupants[i].(interface{ Glyph() rune }); ok {
			return g.Glyph()
		}
	}
	if t.Decoration != nil {
		return t.Decoration.GlyphRune()
	}
	return t.Terrain.Rune()
}

func (t *Tile) reset() {
	*t = Tile{X: t.X, Y: t.Y, Terrain: TerrainUnknown}
}
