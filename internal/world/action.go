package world

// ActionKind identifies what happens when an occupant steps onto a tile.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDoor
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionDoor:
		return "door"
	default:
		return "unknown"
	}
}

type tileAction func(tile *Tile, o Occupant) []string

var tileActions = map[ActionKind]tileAction{
	ActionDoor: openDoor,
}

// Interact runs the tile's action for the occupant and returns the messages it produced.
func Interact(tile *Tile, o Occupant) []string {
	action, ok := tileActions[tile.Action()]
	if !ok {
		return nil
	}
	return action(tile, o)
}

// openDoor reports the door state and leaves it open.
func openDoor(tile *Tile, _ Occupant) []string {
	if tile.Door == nil {
		return nil
	}
	msgs := make([]string, 0, 2)
	if tile.Door.Closed {
		msgs = append(msgs, "This door is closed")
	} else {
		msgs = append(msgs, "This door is open")
	}
	tile.Door.Closed = false
	return append(msgs, "This door is now open")
}
