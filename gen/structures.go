package gen

import "conquest/game"

func (g *Generator) placeTowers(world *game.World, factions []*game.Faction, kind Kind) {
	total := g.Width * g.Height
	target := TowerCount(total)

	placed := 0
	attempts := 0
	maxAttempts := total * 2
	for placed < target && attempts < maxAttempts {
		attempts++
		c := game.Coord{X: g.rng.Intn(g.Width), Y: g.rng.Intn(g.Height)}
		if world.TerrainAt(c) != game.Empty {
			continue
		}
		if (kind == Standard || kind == Wasteland) && inSafeZone(c, factions) {
			continue
		}
		world.AddTower(c)
		placed++
	}
}

func (g *Generator) placePortals(world *game.World, factions []*game.Faction, pairs int) {
	wanted := pairs * 2
	var endpoints []game.Coord
	attempts := 0
	maxAttempts := g.Width * g.Height * 2

	for len(endpoints) < wanted && attempts < maxAttempts {
		attempts++
		c := game.Coord{X: g.rng.Intn(g.Width), Y: g.rng.Intn(g.Height)}
		if world.TerrainAt(c) != game.Empty || inSafeZone(c, factions) {
			continue
		}
		taken := false
		for _, e := range endpoints {
			if e == c {
				taken = true
				break
			}
		}
		if taken {
			continue
		}
		endpoints = append(endpoints, c)
	}

	g.rng.Shuffle(len(endpoints), func(i, j int) {
		endpoints[i], endpoints[j] = endpoints[j], endpoints[i]
	})
	for i := 0; i+1 < len(endpoints); i += 2 {
		world.AddPortalPair(endpoints[i], endpoints[i+1])
	}
}
