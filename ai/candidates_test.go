package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"conquest/game"
)

func TestCollectCandidatesFrontierOnly(t *testing.T) {
	e := NewEngine(game.DefaultGameplay())
	world := game.NewWorld(5, 5)
	me := game.NewFaction("A", game.Coord{X: 2, Y: 2})

	candidates := e.CollectCandidates(me, []*game.Faction{me}, world, game.GameModeFlags{}, game.NewConvertedMountains())

	require.Len(t, candidates, 4, "a single-cell territory has a four-cell frontier")
	cells := make(map[game.Coord]struct{})
	for _, c := range candidates {
		cells[c.Cell] = struct{}{}
	}
	require.Contains(t, cells, game.Coord{X: 1, Y: 2})
	require.Contains(t, cells, game.Coord{X: 3, Y: 2})
	require.Contains(t, cells, game.Coord{X: 2, Y: 1})
	require.Contains(t, cells, game.Coord{X: 2, Y: 3})
}

func TestCollectCandidatesFiltersDisallowed(t *testing.T) {
	e := NewEngine(game.DefaultGameplay())
	world := game.NewWorld(2, 1)
	me := game.NewFaction("A", game.Coord{X: 0, Y: 0})
	me.AddTerritory(game.Coord{X: 1, Y: 0})

	candidates := e.CollectCandidates(me, []*game.Faction{me}, world, game.GameModeFlags{}, game.NewConvertedMountains())

	require.Empty(t, candidates, "a fully owned board offers no candidates")
}

func TestChooseCandidateScenarioTowerChase(t *testing.T) {
	// Base at the origin, tower at (3,3): both frontier cells are five steps
	// from the tower, so the tie breaks to (0,1) by ascending x.
	e := NewEngine(game.DefaultGameplay())
	world := game.NewWorld(6, 6)
	world.AddTower(game.Coord{X: 3, Y: 3})
	me := game.NewFaction("A", game.Coord{X: 0, Y: 0})

	candidates := e.CollectCandidates(me, []*game.Faction{me}, world, game.GameModeFlags{}, game.NewConvertedMountains())
	require.Len(t, candidates, 2)

	chosen, ok := e.ChooseCandidate(candidates, game.Coord{X: 3, Y: 3}, me, []*game.Faction{me}, world)

	require.True(t, ok)
	require.Equal(t, game.Coord{X: 0, Y: 1}, chosen.Cell)
}

func TestChooseCandidateEmpty(t *testing.T) {
	e := NewEngine(game.DefaultGameplay())
	world := game.NewWorld(5, 5)
	me := game.NewFaction("A", game.Coord{X: 0, Y: 0})

	_, ok := e.ChooseCandidate(nil, game.Coord{X: 1, Y: 1}, me, []*game.Faction{me}, world)

	require.False(t, ok)
}

func TestChooseCandidatePrefersCheaper(t *testing.T) {
	e := NewEngine(game.DefaultGameplay())
	world := game.NewWorld(5, 5)
	me := game.NewFaction("A", game.Coord{X: 0, Y: 0})
	target := game.Coord{X: 0, Y: 0}

	// Equidistant from the target, different costs.
	candidates := []game.Candidate{
		{Cell: game.Coord{X: 1, Y: 0}, Result: game.BuildResult{Allowed: true, Cost: 2}},
		{Cell: game.Coord{X: 0, Y: 1}, Result: game.BuildResult{Allowed: true, Cost: 1}},
	}

	chosen, ok := e.ChooseCandidate(candidates, target, me, []*game.Faction{me}, world)

	require.True(t, ok)
	require.Equal(t, game.Coord{X: 0, Y: 1}, chosen.Cell, "cost feeds the score, cheaper wins")
}

func TestIsDefendingImportant(t *testing.T) {
	world := game.NewWorld(5, 5)
	me := game.NewFaction("A", game.Coord{X: 0, Y: 0})
	me.AddFortress(game.Coord{X: 2, Y: 2})

	require.True(t, isDefendingImportant(game.Coord{X: 2, Y: 2}, me, world), "the fortress cell itself")
	require.True(t, isDefendingImportant(game.Coord{X: 2, Y: 3}, me, world), "adjacent to the fortress")
	require.False(t, isDefendingImportant(game.Coord{X: 4, Y: 4}, me, world), "far from anything important")
}

func TestIsBlockingEnemyCorridor(t *testing.T) {
	me := game.NewFaction("A", game.Coord{X: 0, Y: 0})
	enemy := game.NewFaction("B", game.Coord{X: 8, Y: 0})
	factions := []*game.Faction{me, enemy}

	require.True(t, isBlockingEnemy(game.Coord{X: 4, Y: 0}, me, factions),
		"a cell on the line between the bases blocks")
	require.False(t, isBlockingEnemy(game.Coord{X: 4, Y: 4}, me, factions),
		"a cell far off the corridor does not block")
}
