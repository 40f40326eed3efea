package game

// BuildResult is the validator's verdict for one cell. Produced fresh per
// frontier cell every turn, never cached.
type BuildResult struct {
	Allowed bool
	Cost    int
	// Owner is the faction currently holding the cell, nil if unowned.
	// Eliminated owners are reported too so the mover can sweep their
	// leftover holdings.
	Owner *Faction
	// IsFortress reports fortress eligibility: claiming this cell turns it
	// into a fortress of the claimant.
	IsFortress bool
}

// Candidate is a scored legal frontier move under consideration this turn.
type Candidate struct {
	Cell   Coord
	Result BuildResult
	Score  float64
}

// MoveReport enumerates the side effects of one applied move, for the event
// log and turn metrics.
type MoveReport struct {
	Cell Coord
	Cost int

	Captured          bool
	BaseDestroyed     bool
	FortressBuilt     bool
	TowerCaptured     bool
	PortalCaptured    bool
	BridgeBuilt       bool
	MountainConverted bool

	// DefeatedFaction is set when BaseDestroyed eliminated an owner.
	DefeatedFaction string
}

// ConvertedMountains is the permanent record of mountain cells captured under
// mountain efficiency. It only ever grows.
type ConvertedMountains map[Coord]struct{}

func NewConvertedMountains() ConvertedMountains {
	return make(ConvertedMountains)
}

func (m ConvertedMountains) Add(c Coord) {
	m[c] = struct{}{}
}

func (m ConvertedMountains) Has(c Coord) bool {
	_, ok := m[c]
	return ok
}
