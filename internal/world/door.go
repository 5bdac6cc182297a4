package world

import (
	"fmt"
	"math/rand"
)

const (
	doorsPerRoom    = 1
	doorSampleLimit = 1000 // Member draws before a room is declared doorless
)

// Orientation is the direction a door's wall run follows.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// DoorOrientation maps a {floor, wall} adjacency mask to a door orientation.
// Only masks with exactly one non-matching side qualify: 7 and 13 open west
// or east (vertical), 11 and 14 open south or north (horizontal).
func DoorOrientation(mask int) (Orientation, bool) {
	switch mask {
	case MaskNorth | MaskEast | MaskSouth, MaskNorth | MaskSouth | MaskWest:
		return OrientationVertical, true
	case MaskNorth | MaskEast | MaskWest, MaskEast | MaskSouth | MaskWest:
		return OrientationHorizontal, true
	default:
		return 0, false
	}
}

// Door is a room ingress point. Doors start closed.
type Door struct {
	Pos         Point
	Orientation Orientation
	Closed      bool
}

// placeDoor samples member tiles until doorsPerRoom boundary tiles with a door
// signature have been turned into doors.
func (r *Room) placeDoor(g *Grid, rng *rand.Rand) error {
	placed := 0
	for draw := 0; placed < doorsPerRoom; draw++ {
		if draw >= doorSampleLimit {
			return fmt.Errorf("room at %d,%d: %w", r.Base.X, r.Base.Y, ErrDoorNotPlaced)
		}
		p := r.randomPlace(rng)
		orientation, ok := DoorOrientation(g.AdjacencyMask(p.X, p.Y, roomTerrain))
		if !ok {
			continue
		}
		door := &Door{Pos: p, Orientation: orientation, Closed: true}
		tile := g.At(p)
		tile.Terrain = TerrainDoor
		tile.Door = door
		r.Doors = append(r.Doors, door)
		placed++
	}
	return nil
}
