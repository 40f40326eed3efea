package gen

import "conquest/game"

func (g *Generator) generateTerrain(world *game.World, factions []*game.Faction, kind Kind) {
	switch kind {
	case Islands:
		g.generateIslands(world, factions)
	case MountainMadness:
		g.generateMountainMadness(world, factions)
	case Wasteland:
		g.fill(world, game.Empty)
	default:
		g.generateStandard(world, factions)
	}
}

func (g *Generator) fill(world *game.World, t game.Terrain) {
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			world.SetTerrain(game.Coord{X: x, Y: y}, t)
		}
	}
}

func (g *Generator) generateStandard(world *game.World, factions []*game.Faction) {
	g.fill(world, game.Empty)
	total := g.Width * g.Height
	g.growPatches(world, factions, game.Water, int(float64(total)*g.WaterCoverage))
	g.growPatches(world, factions, game.Mountain, int(float64(total)*g.MountainCoverage))
}

func (g *Generator) generateIslands(world *game.World, factions []*game.Faction) {
	g.fill(world, game.Water)
	for _, f := range factions {
		g.carveIsland(world, f.Base, 3)
	}
	// Scatter sandbars between the bases.
	for i := 0; i < len(factions)*3; i++ {
		center := game.Coord{X: g.rng.Intn(g.Width), Y: g.rng.Intn(g.Height)}
		g.carveIsland(world, center, 1)
	}
}

func (g *Generator) generateMountainMadness(world *game.World, factions []*game.Faction) {
	g.generateStandard(world, factions)

	total := g.Width * g.Height
	target := total / 2
	count := 0
	attempts := 0
	for count < target && attempts < total*10 {
		attempts++
		c := game.Coord{X: g.rng.Intn(g.Width), Y: g.rng.Intn(g.Height)}
		if world.TerrainAt(c) == game.Empty {
			world.SetTerrain(c, game.Mountain)
			count++
		}
	}
}

// growPatches places terrain via short random walks, leaving base safe zones
// untouched.
func (g *Generator) growPatches(world *game.World, factions []*game.Faction, tile game.Terrain, target int) {
	count := 0
	attempts := 0
	maxAttempts := target * 10

	for count < target && attempts < maxAttempts {
		attempts++
		c := game.Coord{X: g.rng.Intn(g.Width), Y: g.rng.Intn(g.Height)}
		if inSafeZone(c, factions) {
			continue
		}

		patchSize := 5 + g.rng.Intn(16)
		for i := 0; i < patchSize && count < target; i++ {
			if !inSafeZone(c, factions) && world.TerrainAt(c) == game.Empty {
				world.SetTerrain(c, tile)
				count++
			}
			c = g.step(c)
		}
	}
}

// step takes one clamped random-walk step.
func (g *Generator) step(c game.Coord) game.Coord {
	dirs := [4]game.Coord{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}
	d := dirs[g.rng.Intn(4)]
	next := game.Coord{X: c.X + d.X, Y: c.Y + d.Y}
	if next.X < 0 {
		next.X = 0
	}
	if next.X >= g.Width {
		next.X = g.Width - 1
	}
	if next.Y < 0 {
		next.Y = 0
	}
	if next.Y >= g.Height {
		next.Y = g.Height - 1
	}
	return next
}

func (g *Generator) carveIsland(world *game.World, center game.Coord, radius int) {
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			c := game.Coord{X: center.X + dx, Y: center.Y + dy}
			if world.InBounds(c) && abs(dx)+abs(dy) <= radius {
				world.SetTerrain(c, game.Empty)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
