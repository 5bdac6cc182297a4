package world

import (
	"fmt"
	"strings"
)

// Adjacency bits for the four cardinal neighbours.
const (
	MaskNorth = 1 << iota
	MaskEast
	MaskSouth
	MaskWest

	MaskAll = MaskNorth | MaskEast | MaskSouth | MaskWest
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// cardinals lists neighbour offsets in mask order: north, east, south, west.
var cardinals = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Neighbors returns the four cardinal neighbours in mask order.
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, d := range cardinals {
		out[i] = p.Add(d.X, d.Y)
	}
	return out
}

// Manhattan returns the 4-connected distance between two points.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a dense tile store covering [0,Width) x [0,Height).
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewGrid creates a grid with every tile set to TerrainUnknown.
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{X: x, Y: y, Terrain: TerrainUnknown}
		}
	}
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// InBounds reports whether x, y lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Tile returns the tile at x, y, or nil if out of bounds.
func (g *Grid) Tile(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.Tiles[y][x]
}

// At returns the tile at p, or nil if out of bounds.
func (g *Grid) At(p Point) *Tile {
	return g.Tile(p.X, p.Y)
}

// Terrain returns the terrain at x, y. Out-of-bounds reads return TerrainUnknown.
func (g *Grid) Terrain(x, y int) Terrain {
	if !g.InBounds(x, y) {
		return TerrainUnknown
	}
	return g.Tiles[y][x].Terrain
}

// SetTerrain sets the terrain at x, y. Out-of-bounds writes are ignored.
func (g *Grid) SetTerrain(x, y int, t Terrain) {
	if g.InBounds(x, y) {
		g.Tiles[y][x].Terrain = t
	}
}

// AdjacencyMask returns a 4-bit code of the cardinal neighbours whose terrain
// is in set: north=1, east=2, south=4, west=8. Out-of-bounds neighbours never match.
func (g *Grid) AdjacencyMask(x, y int, set TerrainSet) int {
	mask := 0
	for i, d := range cardinals {
		nx, ny := x+d.X, y+d.Y
		if g.InBounds(nx, ny) && set.Has(g.Tiles[ny][nx].Terrain) {
			mask |= 1 << i
		}
	}
	return mask
}

// IsBlocking returns true if the position blocks movement. Off-grid positions block.
func (g *Grid) IsBlocking(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.Tiles[y][x].Blocking()
}

// Register places an occupant on the tile at p.
func (g *Grid) Register(p Point, o Occupant) error {
	tile := g.At(p)
	if tile == nil {
		return fmt.Errorf("register %s at %s: %w", o.ID(), p, ErrOutOfBounds)
	}
	tile.Register(o)
	return nil
}

// Unregister removes an occupant from the tile at p.
func (g *Grid) Unregister(p Point, o Occupant) error {
	tile := g.At(p)
	if tile == nil {
		return fmt.Errorf("unregister %s at %s: %w", o.ID(), p, ErrOutOfBounds)
	}
	if !tile.Unregister(o) {
		return fmt.Errorf("unregister %s at %s: %w", o.ID(), p, ErrNotOccupant)
	}
	return nil
}

// MoveOccupant moves o from one tile to another and runs the destination
// tile's action. The move is refused if the destination is off-grid or blocking.
func (g *Grid) MoveOccupant(o Occupant, from, to Point) ([]string, error) {
	dst := g.At(to)
	if dst == nil {
		return nil, fmt.Errorf("move %s to %s: %w", o.ID(), to, ErrOutOfBounds)
	}
	if dst.Blocking() {
		return nil, fmt.Errorf("move %s to %s: %w", o.ID(), to, ErrBlocked)
	}
	if err := g.Unregister(from, o); err != nil {
		return nil, err
	}
	dst.Register(o)
	return Interact(dst, o), nil
}

// Count returns the number of tiles with the given terrain.
func (g *Grid) Count(t Terrain) int {
	n := 0
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			if g.Tiles[y][x].Terrain == t {
				n++
			}
		}
	}
	return n
}

// Reset returns every tile to TerrainUnknown and drops rooms, doors,
// decorations and occupants.
func (g *Grid) Reset() {
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			g.Tiles[y][x].reset()
		}
	}
}

// String renders the grid one glyph per tile, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.Tiles[y][x].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
