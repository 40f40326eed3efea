package game

import "sort"

// World holds the static board: terrain per cell, tower locations and portal
// links. The only mutation after generation is the one-way water-to-bridge
// conversion.
type World struct {
	Width  int
	Height int

	terrain     map[Coord]Terrain
	towers      map[Coord]struct{}
	portalLinks map[Coord]Coord
}

func NewWorld(width, height int) *World {
	return &World{
		Width:       width,
		Height:      height,
		terrain:     make(map[Coord]Terrain),
		towers:      make(map[Coord]struct{}),
		portalLinks: make(map[Coord]Coord),
	}
}

func (w *World) InBounds(c Coord) bool {
	return c.InBounds(w.Width, w.Height)
}

// TerrainAt returns Empty for unset in-bounds cells.
func (w *World) TerrainAt(c Coord) Terrain {
	return w.terrain[c]
}

func (w *World) SetTerrain(c Coord, t Terrain) {
	if w.InBounds(c) {
		w.terrain[c] = t
	}
}

func (w *World) IsWater(c Coord) bool {
	return w.terrain[c] == Water
}

// MoveCost is the base claim cost of the tile at c.
func (w *World) MoveCost(c Coord) int {
	return w.terrain[c].MoveCost()
}

// BuildBridge converts a water cell into a bridge. The conversion is
// permanent; calling it on anything but water is a no-op.
func (w *World) BuildBridge(c Coord) {
	if w.IsWater(c) {
		w.terrain[c] = Bridge
	}
}

// AddTower registers a tower cell. Tower locations are permanent; capture is
// tracked on the factions, not by removing the tower from the world.
func (w *World) AddTower(c Coord) {
	w.towers[c] = struct{}{}
	w.SetTerrain(c, Tower)
}

func (w *World) IsTower(c Coord) bool {
	_, ok := w.towers[c]
	return ok
}

// TowerCoords returns all tower cells in (x, y) order.
func (w *World) TowerCoords() []Coord {
	coords := make([]Coord, 0, len(w.towers))
	for c := range w.towers {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}

// AddPortalPair links two portal endpoints bidirectionally. The link is
// non-transitive: capturing one endpoint never captures its pair.
func (w *World) AddPortalPair(a, b Coord) {
	w.portalLinks[a] = b
	w.portalLinks[b] = a
	w.SetTerrain(a, Portal)
	w.SetTerrain(b, Portal)
}

// PortalLink returns the linked endpoint for a portal cell.
func (w *World) PortalLink(c Coord) (Coord, bool) {
	link, ok := w.portalLinks[c]
	return link, ok
}

func (w *World) IsPortal(c Coord) bool {
	_, ok := w.portalLinks[c]
	return ok
}

// PortalCoords returns all portal endpoints in (x, y) order.
func (w *World) PortalCoords() []Coord {
	coords := make([]Coord, 0, len(w.portalLinks))
	for c := range w.portalLinks {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}

// Neighbors returns the in-bounds orthogonal neighbors of c.
func (w *World) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, n := range c.Neighbors() {
		if w.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

func (w *World) Clone() *World {
	clone := NewWorld(w.Width, w.Height)
	for c, t := range w.terrain {
		clone.terrain[c] = t
	}
	for c := range w.towers {
		clone.towers[c] = struct{}{}
	}
	for c, link := range w.portalLinks {
		clone.portalLinks[c] = link
	}
	return clone
}
