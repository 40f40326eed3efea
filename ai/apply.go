package ai

import (
	"fmt"

	"conquest/game"
)

// Applier mutates world and faction state to realize a chosen move.
type Applier struct{}

// ApplyMove performs the capture/build as one logical step and reports every
// side effect for the event log. Exactly one territory change happens.
func (a *Applier) ApplyMove(
	cand game.Candidate,
	me *game.Faction,
	factions []*game.Faction,
	world *game.World,
	flags game.GameModeFlags,
	converted game.ConvertedMountains,
) (*game.MoveReport, error) {
	if !me.Alive {
		return nil, fmt.Errorf("apply move for %s: %w", me.Name, game.ErrFactionEliminated)
	}

	cell := cand.Cell
	terrain := world.TerrainAt(cell)
	report := &game.MoveReport{Cell: cell, Cost: cand.Result.Cost}

	owner := cand.Result.Owner
	if owner != nil && owner.Alive {
		isBase := cell == owner.Base
		owner.RemoveTerritory(cell)
		report.Captured = true
		if isBase {
			owner.Eliminate()
			report.BaseDestroyed = true
			report.DefeatedFaction = owner.Name
		}
	} else {
		// Lazily sweep leftovers of eliminated factions off the cell.
		for _, f := range factions {
			if f != me && !f.Alive && f.OwnsCell(cell) {
				f.RemoveTerritory(cell)
			}
		}
	}

	me.AddTerritory(cell)

	if cand.Result.IsFortress {
		me.AddFortress(cell)
		report.FortressBuilt = true
	}

	if world.IsTower(cell) {
		me.AddTower(cell)
		report.TowerCaptured = true
	}
	// Portal endpoints change hands one at a time; the linked endpoint keeps
	// its current owner.
	if world.IsPortal(cell) {
		me.AddPortal(cell)
		report.PortalCaptured = true
	}

	if terrain == game.Water {
		world.BuildBridge(cell)
		me.AddBridge(cell)
		report.BridgeBuilt = true
	}

	if terrain == game.Mountain && flags.MountainEfficiency {
		converted.Add(cell)
		report.MountainConverted = true
	}

	return report, nil
}
