package world

import "math/rand"

// Terrain synthesis parameters
const (
	grassChance      = 55   // Percent chance a tile starts as grass
	smoothIterations = 4000 // Random cells re-evaluated by the smoothing pass
	smoothThreshold  = 4    // Grass in the 3x3 block (self included) must exceed this to become grass
	blobSteps        = 100  // Steps in one water/rock random walk
	blobMoveChance   = 4    // One in N chance to move along each direction per step
	maxBlobPasses    = 3
)

// SynthesizeTerrain fills the grid with grass and dirt, smooths it, then
// scatters water and rock blobs over it. Every tile is overwritten.
func SynthesizeTerrain(g *Grid, rng *rand.Rand) {
	fillBase(g, rng)
	smooth(g, rng, smoothIterations)

	passes := 1 + rng.Intn(maxBlobPasses)
	for i := 0; i < passes; i++ {
		carveBlob(g, rng, Point{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}, TerrainWater)
		carveBlob(g, rng, Point{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}, TerrainRock)
	}
}

// fillBase independently assigns grass or dirt to every tile.
func fillBase(g *Grid, rng *rand.Rand) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if rng.Intn(100) < grassChance {
				g.Tiles[y][x].Terrain = TerrainGrass
			} else {
				g.Tiles[y][x].Terrain = TerrainDirt
			}
		}
	}
}

// countGrass counts grass tiles in the in-bounds 3x3 block centred on x, y.
func countGrass(g *Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if g.Terrain(x+dx, y+dy) == TerrainGrass {
				count++
			}
		}
	}
	return count
}

// smooth re-evaluates random cells in place for a fixed number of iterations.
func smooth(g *Grid, rng *rand.Rand, iterations int) {
	for i := 0; i < iterations; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		if countGrass(g, x, y) > smoothThreshold {
			g.Tiles[y][x].Terrain = TerrainGrass
		} else {
			g.Tiles[y][x].Terrain = TerrainDirt
		}
	}
}

// carveBlob random-walks from origin, stamping kind on every cell it moves to.
// The origin itself is left untouched.
func carveBlob(g *Grid, rng *rand.Rand, origin Point, kind Terrain) {
	x, y := origin.X, origin.Y
	for step := 0; step < blobSteps; step++ {
		// West, east, north, south: each rolls independently.
		if rng.Intn(blobMoveChance) == 0 && x-1 >= 0 {
			x--
			g.SetTerrain(x, y, kind)
		}
		if rng.Intn(blobMoveChance) == 0 && x+1 < g.Width {
			x++
			g.SetTerrain(x, y, kind)
		}
		if rng.Intn(blobMoveChance) == 0 && y-1 >= 0 {
			y--
			g.SetTerrain(x, y, kind)
		}
		if rng.Intn(blobMoveChance) == 0 && y+1 < g.Height {
			y++
			g.SetTerrain(x, y, kind)
		}
	}
}
