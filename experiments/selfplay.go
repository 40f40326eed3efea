// Package experiments drives seeded self-play matches and records their
// outcomes as CSV for offline analysis.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"conquest/config"
	"conquest/engine"
	"conquest/experiments/metrics"
	"conquest/game"
	"conquest/gen"
)

// RunSelfPlay plays cfg.Matches seeded matches and writes match and move
// records. Match i uses seed cfg.Seed+i, so a run is fully reproducible.
func RunSelfPlay(cfg config.Config) error {
	kind, err := cfg.Kind()
	if err != nil {
		return err
	}
	gp := cfg.GameplaySettings()
	flags := cfg.GameModeFlags()

	writer, err := metrics.NewWriter()
	if err != nil {
		return fmt.Errorf("create metrics writer: %w", err)
	}

	var matchRecords []metrics.MatchRecord
	var moveRecords []metrics.MoveRecord

	for i := 0; i < cfg.Matches; i++ {
		seed := cfg.Seed + uint64(i)
		world, factions, err := buildMatch(cfg, kind, seed)
		if err != nil {
			return fmt.Errorf("match %d setup: %w", i+1, err)
		}

		e := engine.New(world, factions, flags, gp, seed)
		start := time.Now()
		winner, turns, err := e.Run(cfg.MaxRounds)
		if err != nil {
			return fmt.Errorf("match %d: %w", i+1, err)
		}

		rounds := 0
		if len(turns) > 0 {
			rounds = turns[len(turns)-1].Round
		}
		matchRecords = append(matchRecords, metrics.MatchRecord{
			ID:        e.ID.String(),
			Seed:      seed,
			Winner:    winner,
			Rounds:    rounds,
			Moves:     len(turns),
			StartTime: start,
			Duration:  time.Since(start),
		})
		for _, t := range turns {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Match:             e.ID.String(),
				Round:             t.Round,
				Faction:           t.Faction,
				X:                 t.Cell.X,
				Y:                 t.Cell.Y,
				Cost:              t.Cost,
				Captured:          t.Report.Captured,
				FortressBuilt:     t.Report.FortressBuilt,
				TowerCaptured:     t.Report.TowerCaptured,
				PortalCaptured:    t.Report.PortalCaptured,
				BridgeBuilt:       t.Report.BridgeBuilt,
				MountainConverted: t.Report.MountainConverted,
			})
		}
		log.Info().Int("match", i+1).Uint64("seed", seed).Str("winner", winner).Msg("match finished")
	}

	if err := writer.WriteMatches(matchRecords); err != nil {
		return err
	}
	return writer.WriteMoves(moveRecords)
}

// buildMatch generates a fresh world and faction set for one seed.
func buildMatch(cfg config.Config, kind gen.Kind, seed uint64) (*game.World, []*game.Faction, error) {
	rng := rand.New(rand.NewSource(seed))
	generator := gen.New(cfg.Width, cfg.Height, rng)

	factions, err := generator.InitFactions(cfg.Factions)
	if err != nil {
		return nil, nil, err
	}

	world := game.NewWorld(cfg.Width, cfg.Height)
	generator.Generate(world, factions, kind, cfg.PortalPairs)
	return world, factions, nil
}
