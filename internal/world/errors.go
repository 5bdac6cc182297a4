package world

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBuildings indicates a town was asked to generate without buildings.
	ErrNoBuildings = errors.New("world: town has no buildings")
	// ErrPlacementExhausted indicates the room trial budget ran out.
	ErrPlacementExhausted = errors.New("world: room placement trials exhausted")
	// ErrDoorNotPlaced indicates no boundary tile with a door signature was found.
	ErrDoorNotPlaced = errors.New("world: no door position found")
	// ErrPathNotFound indicates two doors could not be connected.
	ErrPathNotFound = errors.New("world: no path between doors")
	// ErrOutOfBounds indicates a position off the grid.
	ErrOutOfBounds = errors.New("world: position out of bounds")
	// ErrBlocked indicates a move onto a blocking tile.
	ErrBlocked = errors.New("world: position is blocked")
	// ErrNotOccupant indicates an occupant was not registered on the tile.
	ErrNotOccupant = errors.New("world: occupant not on tile")
)

// GenerationFailedError is returned when every generation attempt failed.
type GenerationFailedError struct {
	Attempts int
	Last     error // Cause of the final failed attempt
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("world: town generation failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *GenerationFailedError) Unwrap() error {
	return e.Last
}
