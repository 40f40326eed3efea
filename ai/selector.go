// Package ai is the turn-decision core: pick a strategic target, enumerate
// and score legal frontier moves, and apply the chosen one. One action per
// TakeTurn call; the multi-action budget lives in the engine.
package ai

import (
	"sort"

	"golang.org/x/exp/rand"

	"conquest/game"
	"conquest/vision"
)

// baseDefenseRadius is the Manhattan distance inside which an enemy holding
// counts as a threat to the base.
const baseDefenseRadius = 3

// Selector decides the single strategic aim cell for a turn.
type Selector struct {
	Vision *vision.Service
}

func NewSelector(gp game.Gameplay) *Selector {
	return &Selector{Vision: vision.NewService(gp)}
}

// NeedsBaseDefense reports whether any enemy holding sits within the defense
// radius of the faction's base. Pure snapshot check, no mutation.
func (s *Selector) NeedsBaseDefense(me *game.Faction, factions []*game.Faction, world *game.World) bool {
	_, threatened := s.nearestThreat(me, factions)
	return threatened
}

// nearestThreat finds the closest enemy cell inside the defense radius,
// breaking distance ties by (x, y).
func (s *Selector) nearestThreat(me *game.Faction, factions []*game.Faction) (game.Coord, bool) {
	var best game.Coord
	bestDist := -1
	for _, f := range factions {
		if f == me || !f.Alive {
			continue
		}
		for c := range f.Territory() {
			dist := c.ManhattanDistance(me.Base)
			if dist > baseDefenseRadius {
				continue
			}
			if bestDist < 0 || dist < bestDist || (dist == bestDist && c.Less(best)) {
				best = c
				bestDist = dist
			}
		}
	}
	return best, bestDist >= 0
}

// FindPriorityTarget returns the unowned tower or portal endpoint closest to
// the base, ties broken by ascending (x, y). ok is false when every strategic
// point is already held by the faction or none exist.
func (s *Selector) FindPriorityTarget(me *game.Faction, world *game.World) (game.Coord, bool) {
	var best game.Coord
	bestDist := -1

	consider := func(c game.Coord) {
		if me.OwnsCell(c) {
			return
		}
		dist := c.ManhattanDistance(me.Base)
		if bestDist < 0 || dist < bestDist || (dist == bestDist && c.Less(best)) {
			best = c
			bestDist = dist
		}
	}

	for _, c := range world.TowerCoords() {
		consider(c)
	}
	for _, c := range world.PortalCoords() {
		consider(c)
	}
	return best, bestDist >= 0
}

// SelectRoamingTarget samples a frontier cell uniformly with the injected
// rng, skipping water always and mountains unless mountain efficiency is on.
// With no usable frontier it falls back to a uniform draw over visible cells.
func (s *Selector) SelectRoamingTarget(me *game.Faction, world *game.World, flags game.GameModeFlags, rng *rand.Rand) game.Coord {
	var pool []game.Coord
	for _, c := range frontier(me, world) {
		switch world.TerrainAt(c) {
		case game.Water:
			continue
		case game.Mountain:
			if !flags.MountainEfficiency {
				continue
			}
		}
		pool = append(pool, c)
	}

	if len(pool) == 0 {
		visible := s.Vision.VisibleCells(me, world)
		pool = make([]game.Coord, 0, len(visible))
		for c := range visible {
			pool = append(pool, c)
		}
		sort.Slice(pool, func(i, j int) bool { return pool[i].Less(pool[j]) })
	}
	if len(pool) == 0 {
		return me.Base
	}
	return pool[rng.Intn(len(pool))]
}

// SelectTarget picks the strategic aim for this turn. Priority order: a
// strategic point to seize, then base defense, then roaming. Exactly one
// branch fires.
func (s *Selector) SelectTarget(me *game.Faction, factions []*game.Faction, world *game.World, flags game.GameModeFlags, rng *rand.Rand) game.Coord {
	if target, ok := s.FindPriorityTarget(me, world); ok {
		return target
	}
	if threat, ok := s.nearestThreat(me, factions); ok {
		return threat
	}
	return s.SelectRoamingTarget(me, world, flags, rng)
}

// frontier lists the in-bounds cells adjacent to the faction's territory but
// not in it, in (x, y) order.
func frontier(f *game.Faction, world *game.World) []game.Coord {
	seen := make(map[game.Coord]struct{})
	for c := range f.Territory() {
		for _, n := range c.Neighbors() {
			if !world.InBounds(n) || f.OwnsCell(n) {
				continue
			}
			seen[n] = struct{}{}
		}
	}
	cells := make([]game.Coord, 0, len(seen))
	for c := range seen {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}
