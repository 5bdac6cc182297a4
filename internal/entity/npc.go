package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/townmap/internal/gamedata"
)

// Action is what an NPC does when the player is next to it.
type Action int

const (
	ActionNone Action = iota
	ActionGreet
	ActionTrade
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionGreet:
		return "greet"
	case ActionTrade:
		return "trade"
	default:
		return "unknown"
	}
}

// NPC is a non-player character standing in the town.
type NPC struct {
	id       string
	Name     string
	X, Y     int
	Symbol   rune
	Action   Action
	Building *gamedata.BuildingDef // Where the NPC works, may be nil
}

// NewNPC creates an NPC at the given position.
func NewNPC(name string, x, y int, action Action, building *gamedata.BuildingDef) *NPC {
	return &NPC{
		id:       uuid.NewString(),
		Name:     name,
		X:        x,
		Y:        y,
		Symbol:   'N',
		Action:   action,
		Building: building,
	}
}

// ID returns the NPC's unique identifier.
func (n *NPC) ID() string {
	return n.id
}

// Blocking returns true; NPCs occupy their whole tile.
func (n *NPC) Blocking() bool {
	return true
}

// Glyph returns the display symbol.
func (n *NPC) Glyph() rune {
	return n.Symbol
}

// Position returns the current x, y coordinates.
func (n *NPC) Position() (int, int) {
	return n.X, n.Y
}
