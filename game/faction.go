package game

// Faction is one player's holdings. Territory always contains the base while
// the faction is alive; fortresses, towers, bridges and portals are capture
// records over cells that are also territory. All mutation goes through
// methods so the territory/fortress invariants hold at every boundary.
type Faction struct {
	Name  string
	Base  Coord
	Alive bool

	territory  map[Coord]struct{}
	fortresses map[Coord]struct{}
	ages       map[Coord]int
	towers     map[Coord]struct{}
	bridges    map[Coord]struct{}
	portals    map[Coord]struct{}
}

func NewFaction(name string, base Coord) *Faction {
	f := &Faction{
		Name:       name,
		Base:       base,
		Alive:      true,
		territory:  make(map[Coord]struct{}),
		fortresses: make(map[Coord]struct{}),
		ages:       make(map[Coord]int),
		towers:     make(map[Coord]struct{}),
		bridges:    make(map[Coord]struct{}),
		portals:    make(map[Coord]struct{}),
	}
	f.territory[base] = struct{}{}
	return f
}

// Territory returns the live territory set. Callers must treat it as
// read-only; use the mutation methods to change holdings.
func (f *Faction) Territory() map[Coord]struct{} { return f.territory }

func (f *Faction) Fortresses() map[Coord]struct{} { return f.fortresses }

func (f *Faction) Towers() map[Coord]struct{} { return f.towers }

func (f *Faction) Bridges() map[Coord]struct{} { return f.bridges }

func (f *Faction) Portals() map[Coord]struct{} { return f.portals }

func (f *Faction) OwnsCell(c Coord) bool {
	_, ok := f.territory[c]
	return ok
}

func (f *Faction) HasFortress(c Coord) bool {
	_, ok := f.fortresses[c]
	return ok
}

// FortressAge reports how many turns the fortress at c has been held.
func (f *Faction) FortressAge(c Coord) (int, bool) {
	age, ok := f.ages[c]
	return age, ok
}

func (f *Faction) AddTerritory(c Coord) {
	f.territory[c] = struct{}{}
}

// RemoveTerritory drops the cell from every holding record in one step, so a
// lost fortress cell leaves both the fortress set and its age record with it.
func (f *Faction) RemoveTerritory(c Coord) {
	delete(f.territory, c)
	delete(f.fortresses, c)
	delete(f.ages, c)
	delete(f.towers, c)
	delete(f.bridges, c)
	delete(f.portals, c)
}

// AddFortress marks c as a fortress with age zero. Fortresses are always
// territory.
func (f *Faction) AddFortress(c Coord) {
	f.territory[c] = struct{}{}
	f.fortresses[c] = struct{}{}
	f.ages[c] = 0
}

func (f *Faction) RemoveFortress(c Coord) {
	delete(f.fortresses, c)
	delete(f.ages, c)
}

// AgeFortresses increments the age of every held fortress except the listed
// cells (the fortress built this turn, if any).
func (f *Faction) AgeFortresses(except ...Coord) {
	for c := range f.fortresses {
		skip := false
		for _, e := range except {
			if c == e {
				skip = true
				break
			}
		}
		if !skip {
			f.ages[c]++
		}
	}
}

func (f *Faction) AddTower(c Coord) {
	f.territory[c] = struct{}{}
	f.towers[c] = struct{}{}
}

func (f *Faction) AddBridge(c Coord) {
	f.territory[c] = struct{}{}
	f.bridges[c] = struct{}{}
}

func (f *Faction) AddPortal(c Coord) {
	f.territory[c] = struct{}{}
	f.portals[c] = struct{}{}
}

// Eliminate marks the faction as defeated. Terminal: an eliminated faction
// takes no further turns and its leftover holdings are swept lazily as other
// factions claim them.
func (f *Faction) Eliminate() {
	f.Alive = false
}

// Power is the simple strength measure used by the targeting heuristics.
func (f *Faction) Power() int {
	return len(f.territory) + len(f.fortresses)
}
