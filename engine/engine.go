// Package engine runs local matches: round-robin turns over shared state,
// event logging and per-move records. Single-threaded; the decision core
// assumes exclusive access during a call.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"conquest/ai"
	"conquest/game"
)

// TurnRecord captures one applied move for metrics.
type TurnRecord struct {
	Round   int
	Faction string
	Cell    game.Coord
	Cost    int
	Report  game.MoveReport
}

type Engine struct {
	ID        uuid.UUID
	World     *game.World
	Factions  []*game.Faction
	Flags     game.GameModeFlags
	Converted game.ConvertedMountains
	Events    *EventLog

	controller *ai.Controller
	budget     *TurnBudget
	rng        *rand.Rand
}

func New(world *game.World, factions []*game.Faction, flags game.GameModeFlags, gp game.Gameplay, seed uint64) *Engine {
	if len(factions) < 2 {
		panic("need at least two factions")
	}
	return &Engine{
		ID:         uuid.New(),
		World:      world,
		Factions:   factions,
		Flags:      flags,
		Converted:  game.NewConvertedMountains(),
		Events:     NewEventLog(20),
		controller: ai.NewController(gp),
		budget:     NewTurnBudget(gp.ActionsPerTurn),
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Run loops rounds until one faction remains or maxRounds is hit. Each
// faction spends its action budget on repeated single-action turns.
func (e *Engine) Run(maxRounds int) (winner string, records []TurnRecord, err error) {
	log.Info().Str("match", e.ID.String()).Int("factions", len(e.Factions)).Msg("match started")

	for round := 1; round <= maxRounds; round++ {
		for idx := range e.Factions {
			if !e.Factions[idx].Alive {
				continue
			}
			e.budget.SetIndex(idx)
			for !e.budget.NeedsAdvance() {
				report, turnErr := e.controller.TakeTurn(idx, e.Factions, e.World, e.Flags, e.Converted, e.rng)
				if turnErr != nil {
					return "", records, fmt.Errorf("round %d, faction %s: %w", round, e.Factions[idx].Name, turnErr)
				}
				if report == nil {
					break
				}

				e.Events.Record(e.Factions[idx].Name, report)
				records = append(records, TurnRecord{
					Round:   round,
					Faction: e.Factions[idx].Name,
					Cell:    report.Cell,
					Cost:    report.Cost,
					Report:  *report,
				})
				if report.BaseDestroyed {
					log.Info().Str("match", e.ID.String()).Str("by", e.Factions[idx].Name).
						Str("defeated", report.DefeatedFaction).Msg("faction eliminated")
				}

				cost := report.Cost
				if cost < 1 {
					cost = 1
				}
				e.budget.Consume(cost)
			}

			if name, over := e.winner(); over {
				log.Info().Str("match", e.ID.String()).Str("winner", name).Int("rounds", round).Msg("match over")
				return name, records, nil
			}
		}
	}

	log.Info().Str("match", e.ID.String()).Int("rounds", maxRounds).Msg("round cap reached")
	return "", records, nil
}

// winner reports the last faction standing.
func (e *Engine) winner() (string, bool) {
	alive := ""
	count := 0
	for _, f := range e.Factions {
		if f.Alive {
			alive = f.Name
			count++
		}
	}
	if count == 1 {
		return alive, true
	}
	return "", false
}
