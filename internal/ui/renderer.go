package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/townmap/internal/world"
)

// Renderer handles drawing the town to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the town with its occupants, then the messages below the map.
func (r *Renderer) Render(town *world.Town, msgs []string) {
	r.screen.Frame(func() {
		g := town.Grid
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				tile := g.Tile(x, y)
				r.screen.Cell(x, y, tile.Glyph(), tileStyle(tile))
			}
		}
		for i, msg := range msgs {
			r.screen.Text(0, g.Height+1+i, msg, messageStyle)
		}
	})
}

var messageStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)

// tileStyle picks the style for the topmost thing drawn on a tile.
func tileStyle(tile *world.Tile) tcell.Style {
	if len(tile.Occupants) > 0 {
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	}
	if tile.Decoration != nil {
		return tcell.StyleDefault.Foreground(tile.Decoration.TCellColor())
	}
	switch tile.Terrain {
	case world.TerrainWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TerrainFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TerrainDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	case world.TerrainPath:
		return tcell.StyleDefault.Foreground(tcell.ColorTan)
	case world.TerrainGrass:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TerrainDirt:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case world.TerrainWater:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case world.TerrainRock:
		return tcell.StyleDefault.Foreground(tcell.ColorSilver)
	default:
		return tcell.StyleDefault
	}
}
