// Package entity provides the occupants of a town: the player and NPCs.
package entity

import "github.com/google/uuid"

// Player represents the player character walking the town.
type Player struct {
	id     string
	X, Y   int  // Current position in the town
	Symbol rune // Display symbol
}

// NewPlayer creates a new player at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		id:     uuid.NewString(),
		X:      x,
		Y:      y,
		Symbol: '@',
	}
}

// ID returns the player's unique identifier.
func (p *Player) ID() string {
	return p.id
}

// Blocking returns true; nothing else can share the player's tile.
func (p *Player) Blocking() bool {
	return true
}

// Glyph returns the display symbol.
func (p *Player) Glyph() rune {
	return p.Symbol
}

// MoveTo updates the player position.
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
