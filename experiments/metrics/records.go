package metrics

import "time"

// MatchRecord summarizes one self-play match.
type MatchRecord struct {
	ID        string // match UUID
	Seed      uint64
	Winner    string // empty when the round cap hit first
	Rounds    int
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}

// MoveRecord is one applied move inside a match.
type MoveRecord struct {
	Match             string // MatchRecord.ID
	Round             int
	Faction           string
	X, Y              int
	Cost              int
	Captured          bool
	FortressBuilt     bool
	TowerCaptured     bool
	PortalCaptured    bool
	BridgeBuilt       bool
	MountainConverted bool
}
