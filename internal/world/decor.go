package world

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/townmap/internal/gamedata"
)

// decorate makes between minDraws and maxDraws random draws over the room
// and decorates the fully interior floor tiles it hits. Tiles that already
// carry a decoration are never overwritten. It returns the number placed.
func (r *Room) decorate(g *Grid, rng *rand.Rand, minDraws, maxDraws int) int {
	if r.Building == nil {
		return 0
	}
	catalog := r.Building.DecorationsFor(gamedata.ShapeSingle)
	if len(catalog) == 0 {
		return 0
	}

	nearDoor := mapset.New[Point]()
	for _, door := range r.Doors {
		for _, n := range door.Pos.Neighbors() {
			nearDoor.Put(n)
		}
	}

	draws := minDraws
	if maxDraws > minDraws {
		draws += rng.Intn(maxDraws - minDraws + 1)
	}

	placed := 0
	for i := 0; i < draws; i++ {
		p := r.randomPlace(rng)
		tile := g.At(p)
		if tile.Terrain != TerrainFloor || tile.Decoration != nil {
			continue
		}
		if g.AdjacencyMask(p.X, p.Y, floorTerrain) != MaskAll || nearDoor.Has(p) {
			continue
		}
		decoration := catalog[rng.Intn(len(catalog))]
		tile.Decoration = &decoration
		tile.DecorationBlocking = decoration.Blocking
		placed++
	}
	return placed
}
