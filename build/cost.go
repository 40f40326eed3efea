package build

import "conquest/game"

// supplyCostStep: every this many supply-line steps add one action to the
// cost under the supply rules.
const supplyCostStep = 6

// baseCost computes the default action cost for claiming a cell before any
// mode adjustments.
func baseCost(terrain game.Terrain, info ownerInfo, gp game.Gameplay) int {
	owned := info.owner != nil && info.owner.Alive

	if terrain == game.Water && !owned {
		return gp.BridgeBuildCost
	}
	if terrain == game.Bridge && owned {
		return gp.BridgeCaptureCost
	}
	if terrain == game.Tower || terrain == game.Portal {
		return 1
	}
	if info.isFortress {
		return gp.FortressCaptureCost
	}
	return terrain.MoveCost()
}
