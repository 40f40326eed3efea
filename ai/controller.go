package ai

import (
	"fmt"

	"golang.org/x/exp/rand"

	"conquest/game"
)

// Controller sequences one faction's turn: target, candidates, choice,
// application. Zero or one territory change per call.
type Controller struct {
	Selector *Selector
	Engine   *Engine
	Applier  *Applier
}

func NewController(gp game.Gameplay) *Controller {
	return &Controller{
		Selector: NewSelector(gp),
		Engine:   NewEngine(gp),
		Applier:  &Applier{},
	}
}

// TakeTurn runs one decision pass for the faction at idx. A nil report with a
// nil error is a passed turn: eliminated faction, or no legal candidate.
func (c *Controller) TakeTurn(
	idx int,
	factions []*game.Faction,
	world *game.World,
	flags game.GameModeFlags,
	converted game.ConvertedMountains,
	rng *rand.Rand,
) (*game.MoveReport, error) {
	if idx < 0 || idx >= len(factions) {
		return nil, fmt.Errorf("take turn for index %d of %d factions: %w", idx, len(factions), game.ErrBadFactionIndex)
	}
	me := factions[idx]
	if !me.Alive {
		return nil, nil
	}

	target := c.Selector.SelectTarget(me, factions, world, flags, rng)

	candidates := c.Engine.CollectCandidates(me, factions, world, flags, converted)
	if len(candidates) == 0 {
		return nil, nil
	}

	chosen, ok := c.Engine.ChooseCandidate(candidates, target, me, factions, world)
	if !ok {
		return nil, nil
	}

	report, err := c.Applier.ApplyMove(chosen, me, factions, world, flags, converted)
	if err != nil {
		return nil, err
	}

	// Every fortress held before this move ages by one turn.
	if report.FortressBuilt {
		me.AgeFortresses(report.Cell)
	} else {
		me.AgeFortresses()
	}

	return report, nil
}
