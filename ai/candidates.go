package ai

import (
	"conquest/build"
	"conquest/game"
)

// Scoring weights. Lower score wins; the target pull and the cost push up,
// blocking and defending pull down.
const (
	targetWeight      = 1.0
	costWeight        = 2.0
	blockingBonus     = 3.0
	defendingBonus    = 2.4
	corridorHalfWidth = 3
)

// Engine enumerates legal frontier moves and ranks them against the target.
type Engine struct {
	Validator *build.Validator
}

func NewEngine(gp game.Gameplay) *Engine {
	return &Engine{Validator: build.NewValidator(gp)}
}

// CollectCandidates validates every frontier cell and keeps the legal ones.
// Work is proportional to the territory perimeter, not the board area.
func (e *Engine) CollectCandidates(
	me *game.Faction,
	factions []*game.Faction,
	world *game.World,
	flags game.GameModeFlags,
	converted game.ConvertedMountains,
) []game.Candidate {
	var candidates []game.Candidate
	for _, cell := range frontier(me, world) {
		result := e.Validator.Validate(cell, me, factions, world, flags, converted)
		if !result.Allowed {
			continue
		}
		candidates = append(candidates, game.Candidate{Cell: cell, Result: result})
	}
	return candidates
}

// ChooseCandidate scores the candidates against the target and returns the
// best one. Ties break by lower cost, then ascending (x, y). ok is false for
// an empty candidate list.
func (e *Engine) ChooseCandidate(
	candidates []game.Candidate,
	target game.Coord,
	me *game.Faction,
	factions []*game.Faction,
	world *game.World,
) (game.Candidate, bool) {
	if len(candidates) == 0 {
		return game.Candidate{}, false
	}

	var best game.Candidate
	chosen := false
	for _, cand := range candidates {
		cand.Score = e.score(cand, target, me, factions, world)
		if !chosen || better(cand, best) {
			best = cand
			chosen = true
		}
	}
	return best, true
}

func (e *Engine) score(cand game.Candidate, target game.Coord, me *game.Faction, factions []*game.Faction, world *game.World) float64 {
	score := targetWeight * float64(cand.Cell.ManhattanDistance(target))
	if isBlockingEnemy(cand.Cell, me, factions) {
		score -= blockingBonus
	}
	if isDefendingImportant(cand.Cell, me, world) {
		score -= defendingBonus
	}
	score += costWeight * float64(cand.Result.Cost)
	return score
}

func better(a, b game.Candidate) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	if a.Result.Cost != b.Result.Cost {
		return a.Result.Cost < b.Result.Cost
	}
	return a.Cell.Less(b.Cell)
}

// isBlockingEnemy reports whether taking the cell interposes the faction
// between an enemy and a valuable target: the cell lies inside the corridor
// from the enemy base toward the faction's base or one of its fortresses.
func isBlockingEnemy(cell game.Coord, me *game.Faction, factions []*game.Faction) bool {
	targets := make([]game.Coord, 0, 1+len(me.Fortresses()))
	targets = append(targets, me.Base)
	for c := range me.Fortresses() {
		targets = append(targets, c)
	}

	for _, f := range factions {
		if f == me || !f.Alive {
			continue
		}
		for _, goal := range targets {
			if inCorridor(cell, f.Base, goal) {
				return true
			}
		}
	}
	return false
}

// inCorridor checks that the cell is close to the segment from origin to
// goal: small cross product and a dot product within the segment span.
func inCorridor(cell, origin, goal game.Coord) bool {
	dx := goal.X - origin.X
	dy := goal.Y - origin.Y
	if dx == 0 && dy == 0 {
		return false
	}
	cdx := cell.X - origin.X
	cdy := cell.Y - origin.Y

	cross := cdx*dy - cdy*dx
	if cross < 0 {
		cross = -cross
	}
	dot := cdx*dx + cdy*dy
	return cross < corridorHalfWidth && dot >= 0 && dot <= dx*dx+dy*dy
}

// isDefendingImportant reports whether the cell is, or touches, a fortress,
// tower or portal endpoint the faction already holds.
func isDefendingImportant(cell game.Coord, me *game.Faction, world *game.World) bool {
	check := func(c game.Coord) bool {
		if me.HasFortress(c) {
			return true
		}
		if _, held := me.Towers()[c]; held {
			return true
		}
		if _, held := me.Portals()[c]; held {
			return true
		}
		return false
	}

	if check(cell) {
		return true
	}
	for _, n := range cell.Neighbors() {
		if check(n) {
			return true
		}
	}
	return false
}
