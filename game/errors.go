package game

import "errors"

// Configuration errors. These indicate a setup bug in the caller, not a game
// outcome, and are propagated fatally.
var (
	ErrBadFactionIndex   = errors.New("faction index out of range")
	ErrFactionEliminated = errors.New("faction is eliminated")
)
