package build

import "conquest/game"

// hasActiveSource reports whether the target cell touches a holding that can
// project a build. Plain territory and the base always can; a fortress only
// if it is a portal endpoint or chains through fortresses back to territory.
func hasActiveSource(target game.Coord, f *game.Faction, world *game.World) bool {
	for _, n := range target.Neighbors() {
		if !f.OwnsCell(n) {
			continue
		}
		if sourceActive(n, f, world) {
			return true
		}
	}
	return false
}

func sourceActive(cell game.Coord, f *game.Faction, world *game.World) bool {
	if cell == f.Base {
		return true
	}
	if f.HasFortress(cell) {
		if world.IsPortal(cell) {
			return true
		}
		return fortressConnected(cell, f)
	}
	// Plain territory, or a tower/bridge/portal holding.
	return true
}

// fortressConnected walks a chain of fortresses looking for any non-fortress
// territory or the base.
func fortressConnected(start game.Coord, f *game.Faction) bool {
	visited := map[game.Coord]struct{}{start: {}}
	queue := []game.Coord{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors() {
			if n == f.Base {
				return true
			}
			if f.OwnsCell(n) && !f.HasFortress(n) {
				return true
			}
			if f.HasFortress(n) {
				if _, seen := visited[n]; !seen {
					visited[n] = struct{}{}
					queue = append(queue, n)
				}
			}
		}
	}
	return false
}

// supplyLineLength is the shortest path from the base through own holdings to
// any cell adjacent to the target, counting one per step with portal links as
// single hops. Returns false when no supply line reaches the target at all.
func supplyLineLength(target game.Coord, f *game.Faction, world *game.World) (int, bool) {
	type entry struct {
		cell game.Coord
		dist int
	}

	adjacent := func(c game.Coord) bool {
		return c.ManhattanDistance(target) == 1
	}

	if adjacent(f.Base) {
		return 0, true
	}

	visited := map[game.Coord]struct{}{f.Base: {}}
	queue := []entry{{f.Base, 0}}

	push := func(c game.Coord, dist int, queue []entry) []entry {
		if _, seen := visited[c]; seen {
			return queue
		}
		visited[c] = struct{}{}
		return append(queue, entry{c, dist})
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range current.cell.Neighbors() {
			if !f.OwnsCell(n) {
				continue
			}
			if adjacent(n) {
				return current.dist + 1, true
			}
			queue = push(n, current.dist+1, queue)
		}
		if link, ok := world.PortalLink(current.cell); ok && f.OwnsCell(link) {
			if adjacent(link) {
				return current.dist + 1, true
			}
			queue = push(link, current.dist+1, queue)
		}
	}
	return 0, false
}
