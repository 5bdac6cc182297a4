package world

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/townmap/internal/gamedata"
)

// Room footprint parameters
const (
	baseRoomSize = 10 // Nominal base rectangle side, jittered by [-3, +1]
	minAnnexSize = 3  // Smallest side of an appended sub-rectangle
	maxAnnexes   = 4
	clearance    = 2 // Free tiles required around every footprint tile
)

// Rect is an axis-aligned rectangle of tiles.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the rectangle
}

// Room is a building footprint: a base rectangle plus appended annexes.
type Room struct {
	Building *gamedata.BuildingDef
	Base     Rect
	Annexes  []Rect
	Places   []Point // Member coordinates in insertion order
	Doors    []*Door

	members mapset.Set[Point]
}

func newRoom(building *gamedata.BuildingDef, base Rect) *Room {
	r := &Room{
		Building: building,
		Base:     base,
		members:  mapset.New[Point](),
	}
	r.addRect(base)
	return r
}

// addRect appends every coordinate of rect not already in the footprint.
func (r *Room) addRect(rect Rect) {
	for x := rect.X; x < rect.X+rect.Width; x++ {
		for y := rect.Y; y < rect.Y+rect.Height; y++ {
			p := Point{X: x, Y: y}
			if r.members.Has(p) {
				continue
			}
			r.members.Put(p)
			r.Places = append(r.Places, p)
		}
	}
}

// Contains returns true if p is part of the footprint.
func (r *Room) Contains(p Point) bool {
	return r.members.Has(p)
}

// Kind returns the building kind the room was placed for.
func (r *Room) Kind() gamedata.BuildingKind {
	if r.Building == nil {
		return gamedata.KindUnknown
	}
	return r.Building.Kind
}

// Door returns the room's first door, or nil before door placement.
func (r *Room) Door() *Door {
	if len(r.Doors) == 0 {
		return nil
	}
	return r.Doors[0]
}

// randomPlace returns a uniformly drawn member coordinate.
func (r *Room) randomPlace(rng *rand.Rand) Point {
	return r.Places[rng.Intn(len(r.Places))]
}

// proposeRoom draws a footprint for building. The base rectangle's top-left
// corner lies in the inner three fifths of the grid.
func proposeRoom(g *Grid, rng *rand.Rand, building *gamedata.BuildingDef) *Room {
	width := baseRoomSize + rng.Intn(5) - 3
	height := baseRoomSize + rng.Intn(5) - 3
	x := g.Width/5 + rng.Intn(g.Width-2*(g.Width/5)+1)
	y := g.Height/5 + rng.Intn(g.Height-2*(g.Height/5)+1)

	room := newRoom(building, Rect{X: x, Y: y, Width: width, Height: height})

	annexes := 1 + rng.Intn(maxAnnexes)
	for i := 0; i < annexes; i++ {
		origin := room.randomPlace(rng)
		annex := Rect{
			X:      origin.X,
			Y:      origin.Y,
			Width:  max(width+rng.Intn(4)-3, minAnnexSize),
			Height: max(height+rng.Intn(4)-3, minAnnexSize),
		}
		room.Annexes = append(room.Annexes, annex)
		room.addRect(annex)
	}
	return room
}

// CanPlace reports whether the footprint and its clearance ring are on the
// grid and free of blocking tiles and other rooms. It does not modify the grid.
func (r *Room) CanPlace(g *Grid) bool {
	for _, p := range r.Places {
		if taken(g, p) {
			return false
		}
	}
	for _, p := range r.Places {
		for dy := -clearance; dy <= clearance; dy++ {
			for dx := -clearance; dx <= clearance; dx++ {
				q := p.Add(dx, dy)
				if r.members.Has(q) {
					continue
				}
				if taken(g, q) {
					return false
				}
			}
		}
	}
	return true
}

// taken reports whether p is off-grid, blocking or owned by a room.
func taken(g *Grid, p Point) bool {
	if g.IsBlocking(p.X, p.Y) {
		return true
	}
	return g.At(p).Room != nil
}

// carve turns the footprint into floor owned by the room, then walls off
// every footprint tile that is not surrounded by floor or wall.
func (r *Room) carve(g *Grid) {
	for _, p := range r.Places {
		tile := g.At(p)
		tile.Terrain = TerrainFloor
		tile.Room = r
	}
	for _, p := range r.Places {
		if g.AdjacencyMask(p.X, p.Y, roomTerrain) != MaskAll {
			g.At(p).Terrain = TerrainWall
		}
	}
}

// placeRooms places one room per building, carving and fitting a door to each
// as it goes. It gives up after trials proposals.
func placeRooms(g *Grid, rng *rand.Rand, buildings []*gamedata.BuildingDef, trials int) ([]*Room, error) {
	rooms := make([]*Room, 0, len(buildings))
	for trial := 0; trial < trials && len(rooms) < len(buildings); trial++ {
		room := proposeRoom(g, rng, buildings[len(rooms)])
		if !room.CanPlace(g) {
			continue
		}
		room.carve(g)
		if err := room.placeDoor(g, rng); err != nil {
			return rooms, err
		}
		rooms = append(rooms, room)
	}
	if len(rooms) < len(buildings) {
		return rooms, ErrPlacementExhausted
	}
	return rooms, nil
}
