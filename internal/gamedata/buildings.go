package gamedata

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// BuildingKind identifies a type of town building.
type BuildingKind string

const (
	KindUnknown        BuildingKind = "unknown"
	KindGate           BuildingKind = "gate"
	KindTradingPost    BuildingKind = "trading_post"
	KindBank           BuildingKind = "bank"
	KindTavern         BuildingKind = "tavern"
	KindMercenaryGuild BuildingKind = "mercenary_guild"
	KindBlacksmith     BuildingKind = "blacksmith"
	KindStables        BuildingKind = "stables"
	KindTownhouse      BuildingKind = "townhouse"
)

// Decoration footprint shapes used as catalog keys.
const (
	ShapeSingle = "1x1"
	ShapeLong   = "1x3"
)

// DecorationDef defines a piece of furniture or clutter a building can hold.
type DecorationDef struct {
	ID       string `json:"id"`       // Unique identifier (e.g., "crate")
	Name     string `json:"name"`     // Display name (e.g., "Crate")
	Glyph    string `json:"glyph"`    // Single character for the debug dump
	Color    string `json:"color"`    // Hex color code (e.g., "#8B5A2B")
	Blocking bool   `json:"blocking"` // Whether the decoration blocks movement
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *DecorationDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (d *DecorationDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// BuildingDef defines a building kind loaded from JSON.
type BuildingDef struct {
	Kind        BuildingKind               `json:"kind"`
	Name        string                     `json:"name"`
	SpawnWeight int                        `json:"spawnWeight"` // Relative frequency when buildings are drawn at random
	Decorations map[string][]DecorationDef `json:"decorations"` // Catalog keyed by footprint shape
}

// DecorationsFor returns the decoration catalog for a footprint shape.
func (b *BuildingDef) DecorationsFor(shape string) []DecorationDef {
	return b.Decorations[shape]
}

// BuildingsFile represents the structure of buildings.json.
type BuildingsFile struct {
	Buildings []BuildingDef `json:"buildings"`
}

// BuildingsFilename is the catalog file name, embedded or on disk.
const BuildingsFilename = "buildings.json"

// LoadBuildings loads building definitions from the embedded buildings.json file.
func LoadBuildings() ([]BuildingDef, error) {
	return LoadBuildingsFrom(dataFS, BuildingsFilename)
}

// LoadBuildingsFrom loads and validates building definitions from fsys.
func LoadBuildingsFrom(fsys fs.FS, filename string) ([]BuildingDef, error) {
	file, err := LoadFrom[BuildingsFile](fsys, filename)
	if err != nil {
		return nil, err
	}
	for _, b := range file.Buildings {
		for shape, decorations := range b.Decorations {
			for _, d := range decorations {
				if _, err := ParseHexColor(d.Color); err != nil {
					return nil, fmt.Errorf("building %s decoration %s (%s): %w", b.Kind, d.ID, shape, err)
				}
			}
		}
	}
	return file.Buildings, nil
}

// ParseBuildingKinds parses a comma-separated list such as "tavern,bank".
// Blank entries are skipped.
func ParseBuildingKinds(s string) []BuildingKind {
	var kinds []BuildingKind
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kinds = append(kinds, BuildingKind(strings.ToLower(part)))
	}
	return kinds
}
