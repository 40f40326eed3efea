package build

import (
	"testing"

	"github.com/stretchr/testify/require"

	"conquest/game"
)

func makeValidator() *Validator {
	return NewValidator(game.DefaultGameplay())
}

func TestValidateRejectsOwnCell(t *testing.T) {
	v := makeValidator()
	world := game.NewWorld(5, 5)
	me := game.NewFaction("Blue", game.Coord{X: 0, Y: 0})
	target := game.Coord{X: 1, Y: 0}
	me.AddTerritory(target)

	result := v.Validate(target, me, []*game.Faction{me}, world, game.GameModeFlags{}, game.NewConvertedMountains())

	require.False(t, result.Allowed, "own cells are never claimable")
}

func TestValidateRejectsOutOfBounds(t *testing.T) {
	v := makeValidator()
	world := game.NewWorld(5, 5)
	me := game.NewFaction("Blue", game.Coord{X: 0, Y: 0})

	result := v.Validate(game.Coord{X: -1, Y: 0}, me, []*game.Faction{me}, world, game.GameModeFlags{}, game.NewConvertedMountains())

	require.False(t, result.Allowed, "out-of-bounds cells are never claimable")
}

func TestValidateFrontierCell(t *testing.T) {
	v := makeValidator()
	world := game.NewWorld(5, 5)
	me := game.NewFaction("Blue", game.Coord{X: 0, Y: 0})

	result := v.Validate(game.Coord{X: 1, Y: 0}, me, []*game.Faction{me}, world, game.GameModeFlags{}, game.NewConvertedMountains())

	require.True(t, result.Allowed)
	require.Equal(t, 1, result.Cost, "plain terrain costs one action")
	require.Nil(t, result.Owner)
	require.False(t, result.IsFortress, "claiming empty terrain does not build a fortress")
}

func TestValidateEnemyFortressCapture(t *testing.T) {
	v := makeValidator()
	world := game.NewWorld(5, 5)
	me := game.NewFaction("Blue", game.Coord{X: 0, Y: 0})
	me.AddTerritory(game.Coord{X: 1, Y: 0})

	enemy := game.NewFaction("Red", game.Coord{X: 4, Y: 4})
	target := game.Coord{X: 2, Y: 0}
	enemy.AddFortress(target)

	result := v.Validate(target, me, []*game.Faction{me, enemy}, world, game.GameModeFlags{}, game.NewConvertedMountains())

	require.True(t, result.Allowed)
	require.Same(t, enemy, result.Owner)
	require.True(t, result.IsFortress)
	require.Equal(t, 3, result.Cost, "fortress capture uses the fortress capture cost")
}

func TestClassicSkipsReachability(t *testing.T) {
	v := makeValidator()
	world := game.NewWorld(6, 1)
	me := game.NewFaction("Blue", game.Coord{X: 0, Y: 0})
	// A fortress island with no chain back to territory: inactive source by
	// default rules.
	island := game.Coord{X: 3, Y: 0}
	me.AddFortress(island)
	target := game.Coord{X: 4, Y: 0}

	defaultResult := v.Validate(target, me, []*game.Faction{me}, world, game.GameModeFlags{}, game.NewConvertedMountains())
	require.False(t, defaultResult.Allowed, "isolated fortress cannot source a build by default")

	classicResult := v.Validate(target, me, []*game.Faction{me}, world, game.GameModeFlags{Classic: true}, game.NewConvertedMountains())
	require.True(t, classicResult.Allowed, "classic mode bypasses the reachability requirement")
}

func TestSupplyRequiresConnectedChain(t *testing.T) {
	v := makeValidator()
	world := game.NewWorld(5, 5)
	me := game.NewFaction("Blue", game.Coord{X: 0, Y: 0})
	disconnected := game.Coord{X: 2, Y: 0}
	me.AddTerritory(disconnected)
	target := game.Coord{X: 3, Y: 0}

	defaultResult := v.Validate(target, me, []*game.Faction{me}, world, game.GameModeFlags{}, game.NewConvertedMountains())
	require.True(t, defaultResult.Allowed, "default rules only need an adjacent active source")

	supplyResult := v.Validate(target, me, []*game.Faction{me}, world, game.GameModeFlags{Supply: true}, game.NewConvertedMountains())
	require.False(t, supplyResult.Allowed, "supply rules need an unbroken chain from the base")
}

func TestSupplyCostGrowsWithLineLength(t *testing.T) {
	v := makeValidator()
	world := game.NewWorld(20, 1)
	me := game.NewFaction("Blue", game.Coord{X: 0, Y: 0})
	for x := 1; x <= 13; x++ {
		me.AddTerritory(game.Coord{X: x, Y: 0})
	}
	target := game.Coord{X: 14, Y: 0}

	result := v.Validate(target, me, []*game.Faction{me}, world, game.GameModeFlags{Supply: true}, game.NewConvertedMountains())

	require.True(t, result.Allowed)
	// Base cost 1 plus one action per six supply steps (13 steps here).
	require.Equal(t, 3, result.Cost)
}

func TestMountainEfficiencyReducesCost(t *testing.T) {
	v := makeValidator()
	world := game.NewWorld(5, 5)
	target := game.Coord{X: 1, Y: 1}
	world.SetTerrain(target, game.Mountain)

	me := game.NewFaction("Blue", game.Coord{X: 0, Y: 0})
	me.AddTerritory(game.Coord{X: 1, Y: 0})

	base := v.Validate(target, me, []*game.Faction{me}, world, game.GameModeFlags{}, game.NewConvertedMountains())
	require.True(t, base.Allowed)
	require.Equal(t, 2, base.Cost)

	converted := game.NewConvertedMountains()
	converted.Add(target)
	reduced := v.Validate(target, me, []*game.Faction{me}, world, game.GameModeFlags{MountainEfficiency: true}, converted)
	require.True(t, reduced.Allowed)
	require.Equal(t, 1, reduced.Cost, "converted mountains cost a single action")
}

func TestValidateWaterCosts(t *testing.T) {
	v := makeValidator()
	world := game.NewWorld(5, 5)
	water := game.Coord{X: 1, Y: 0}
	world.SetTerrain(water, game.Water)
	me := game.NewFaction("Blue", game.Coord{X: 0, Y: 0})

	result := v.Validate(water, me, []*game.Faction{me}, world, game.GameModeFlags{}, game.NewConvertedMountains())

	require.True(t, result.Allowed, "water is claimable by bridging")
	require.Equal(t, 5, result.Cost, "bridging uses the bridge build cost")
	require.True(t, result.IsFortress, "a new bridge becomes a fortress")
}

func TestResolveOwnerPrefersAliveFactions(t *testing.T) {
	world := game.NewWorld(5, 5)
	me := game.NewFaction("Blue", game.Coord{X: 0, Y: 0})
	dead := game.NewFaction("Red", game.Coord{X: 4, Y: 4})
	alive := game.NewFaction("Green", game.Coord{X: 0, Y: 4})
	cell := game.Coord{X: 2, Y: 2}
	dead.AddTerritory(cell)
	dead.Eliminate()
	alive.AddTerritory(cell)

	info := resolveOwner(cell, me, []*game.Faction{me, dead, alive}, world)

	require.Same(t, alive, info.owner, "alive holders win over eliminated leftovers")
}
