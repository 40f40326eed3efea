// Package gen procedurally generates boards: terrain, neutral structures and
// faction bases. Everything draws from one injected rng so a seed reproduces
// the exact same world.
package gen

import (
	"golang.org/x/exp/rand"

	"conquest/game"
)

// Kind selects the terrain style of a generated world.
type Kind int

const (
	Standard Kind = iota
	Islands
	MountainMadness
	Wasteland
)

// safeZoneRadius keeps hostile terrain and structures away from bases.
const safeZoneRadius = 3

type Generator struct {
	Width  int
	Height int

	// Coverage fractions for standard terrain.
	WaterCoverage    float64
	MountainCoverage float64
	// Minimum Manhattan spacing between faction bases; decays when placement
	// stalls.
	MinBaseDistance int

	rng *rand.Rand
}

func New(width, height int, rng *rand.Rand) *Generator {
	return &Generator{
		Width:            width,
		Height:           height,
		WaterCoverage:    0.10,
		MountainCoverage: 0.15,
		MinBaseDistance:  10,
		rng:              rng,
	}
}

// Generate populates the world with terrain and structures for the given
// kind. Factions must already have bases so safe zones can be respected.
func (g *Generator) Generate(world *game.World, factions []*game.Faction, kind Kind, portalPairs int) {
	g.generateTerrain(world, factions, kind)
	g.placeTowers(world, factions, kind)
	if portalPairs > 0 {
		g.placePortals(world, factions, portalPairs)
	}
}

// TowerCount is one tower per 400 cells, minimum one.
func TowerCount(totalCells int) int {
	count := totalCells / 400
	if count < 1 {
		count = 1
	}
	return count
}

// PortalPairCount is one pair per 1600 cells, minimum one.
func PortalPairCount(totalCells int) int {
	count := totalCells / 1600
	if count < 1 {
		count = 1
	}
	return count
}

func inSafeZone(c game.Coord, factions []*game.Faction) bool {
	for _, f := range factions {
		if c.ManhattanDistance(f.Base) <= safeZoneRadius {
			return true
		}
	}
	return false
}
