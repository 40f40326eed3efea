package game

// GameModeFlags aggregates the rule toggles that influence build validation.
// One configuration value replaces the boolean parameter lists the checks
// would otherwise take.
type GameModeFlags struct {
	// Classic bypasses the reachability-to-source requirement: any frontier
	// cell adjacent to own territory is buildable.
	Classic bool
	// Supply adjusts build cost by the length of the supply line back to the
	// base, and refuses builds with no supply line at all.
	Supply bool
	// MountainEfficiency permanently converts captured mountains to a reduced
	// claim cost.
	MountainEfficiency bool
}

// Gameplay holds the tunable gameplay constants.
type Gameplay struct {
	FogRadius           int
	TowerVisionRadius   int
	FortressCaptureCost int
	BridgeBuildCost     int
	BridgeCaptureCost   int
	ActionsPerTurn      int
}

func DefaultGameplay() Gameplay {
	return Gameplay{
		FogRadius:           5,
		TowerVisionRadius:   15,
		FortressCaptureCost: 3,
		BridgeBuildCost:     5,
		BridgeCaptureCost:   1,
		ActionsPerTurn:      6,
	}
}
