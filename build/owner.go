package build

import "conquest/game"

// ownerInfo describes who controls a cell and whether it counts as a fortress
// for capture-cost purposes.
type ownerInfo struct {
	owner      *game.Faction
	isFortress bool
}

// resolveOwner finds the faction holding a cell, preferring alive factions
// over eliminated ones whose leftovers are still on the board.
func resolveOwner(cell game.Coord, me *game.Faction, factions []*game.Faction, world *game.World) ownerInfo {
	if info, ok := findOwner(cell, me, factions, world, true); ok {
		return info
	}
	if info, ok := findOwner(cell, me, factions, world, false); ok {
		return info
	}
	return ownerInfo{}
}

func findOwner(cell game.Coord, me *game.Faction, factions []*game.Faction, world *game.World, alive bool) (ownerInfo, bool) {
	for _, f := range factions {
		if f == me || f.Alive != alive {
			continue
		}
		if info, ok := classifyOwner(cell, f, world); ok {
			return info, true
		}
	}
	return ownerInfo{}, false
}

func classifyOwner(cell game.Coord, f *game.Faction, world *game.World) (ownerInfo, bool) {
	if cell == f.Base {
		return ownerInfo{owner: f, isFortress: false}, true
	}
	if f.HasFortress(cell) {
		return ownerInfo{owner: f, isFortress: true}, true
	}
	if f.OwnsCell(cell) {
		switch world.TerrainAt(cell) {
		case game.Bridge, game.Tower, game.Portal:
			return ownerInfo{owner: f, isFortress: true}, true
		}
		return ownerInfo{owner: f, isFortress: false}, true
	}
	return ownerInfo{}, false
}
