package gen

import (
	"fmt"

	"conquest/game"
)

// InitFactions places bases with minimum spacing and creates the factions.
// Spacing decays when placement stalls rather than failing outright.
func (g *Generator) InitFactions(count int) ([]*game.Faction, error) {
	coords, err := g.baseCoords(count)
	if err != nil {
		return nil, err
	}

	factions := make([]*game.Faction, 0, count)
	for i, base := range coords {
		factions = append(factions, game.NewFaction(fmt.Sprintf("BOT %d", i+1), base))
	}
	return factions, nil
}

func (g *Generator) baseCoords(count int) ([]game.Coord, error) {
	var coords []game.Coord
	required := g.MinBaseDistance
	attempts := 0
	maxAttempts := g.Width * g.Height * 10

	for len(coords) < count {
		if attempts >= maxAttempts {
			if required <= 1 {
				break
			}
			attempts = 0
			required--
		}
		attempts++

		candidate := game.Coord{X: g.rng.Intn(g.Width), Y: g.rng.Intn(g.Height)}
		ok := true
		for _, existing := range coords {
			if candidate.ManhattanDistance(existing) < required {
				ok = false
				break
			}
		}
		if ok {
			coords = append(coords, candidate)
		}
	}

	if len(coords) < count {
		return nil, fmt.Errorf("unable to place %d bases on a %dx%d board", count, g.Width, g.Height)
	}
	g.rng.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})
	return coords, nil
}
