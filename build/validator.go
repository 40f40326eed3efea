// Package build validates claim/capture attempts against terrain, ownership
// and the active game mode rules. It is the sole source of legality, cost and
// fortress eligibility for the decision pipeline.
package build

import "conquest/game"

type Validator struct {
	Gameplay game.Gameplay
}

func NewValidator(gp game.Gameplay) *Validator {
	return &Validator{Gameplay: gp}
}

// Validate judges a single cell for the acting faction. It never mutates
// state; out-of-bounds and own cells come back disallowed.
func (v *Validator) Validate(
	cell game.Coord,
	me *game.Faction,
	factions []*game.Faction,
	world *game.World,
	flags game.GameModeFlags,
	converted game.ConvertedMountains,
) game.BuildResult {
	if !world.InBounds(cell) {
		return game.BuildResult{}
	}

	terrain := world.TerrainAt(cell)
	if terrain.MoveCost() >= game.ImpassableCost && terrain != game.Water {
		return game.BuildResult{}
	}

	if me.OwnsCell(cell) {
		return game.BuildResult{}
	}

	info := resolveOwner(cell, me, factions, world)

	if !flags.Classic && !hasActiveSource(cell, me, world) {
		return game.BuildResult{Owner: info.owner, IsFortress: info.isFortress}
	}

	supplyLen := 0
	if flags.Supply {
		length, ok := supplyLineLength(cell, me, world)
		if !ok {
			return game.BuildResult{Owner: info.owner, IsFortress: info.isFortress}
		}
		supplyLen = length
	}

	cost := baseCost(terrain, info, v.Gameplay)
	if flags.MountainEfficiency && terrain == game.Mountain && converted.Has(cell) {
		if cost > 1 {
			cost = 1
		}
	}
	if flags.Supply {
		cost += supplyLen / supplyCostStep
	}

	return game.BuildResult{
		Allowed:    true,
		Cost:       cost,
		Owner:      info.owner,
		IsFortress: fortressEligible(terrain, info),
	}
}

// fortressEligible reports whether claiming the cell turns it into a fortress
// of the claimant: any capture from an alive owner does, as does claiming
// structural terrain.
func fortressEligible(terrain game.Terrain, info ownerInfo) bool {
	if info.owner != nil && info.owner.Alive {
		return true
	}
	switch terrain {
	case game.Water, game.Bridge, game.Tower, game.Portal:
		return true
	}
	return false
}
