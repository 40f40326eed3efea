// Package vision computes fog-of-war visibility. Base and territory grant a
// normal radius; held towers grant an extended one.
package vision

import "conquest/game"

type Service struct {
	Gameplay game.Gameplay
}

func NewService(gp game.Gameplay) *Service {
	return &Service{Gameplay: gp}
}

// VisibleCells returns every in-bounds cell the faction can currently see.
func (s *Service) VisibleCells(f *game.Faction, world *game.World) map[game.Coord]struct{} {
	visible := make(map[game.Coord]struct{})

	normal := precomputeOffsets(s.Gameplay.FogRadius)
	paint(f.Base, normal, visible, world)
	for c := range f.Territory() {
		if _, held := f.Towers()[c]; held {
			continue
		}
		paint(c, normal, visible, world)
	}

	if len(f.Towers()) > 0 {
		extended := precomputeOffsets(s.Gameplay.TowerVisionRadius)
		for c := range f.Towers() {
			paint(c, extended, visible, world)
		}
	}
	return visible
}

// precomputeOffsets lists the (dx, dy) pairs inside a circular radius.
func precomputeOffsets(radius int) []game.Coord {
	var offsets []game.Coord
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx*dx+dy*dy <= radius*radius {
				offsets = append(offsets, game.Coord{X: dx, Y: dy})
			}
		}
	}
	return offsets
}

func paint(center game.Coord, offsets []game.Coord, visible map[game.Coord]struct{}, world *game.World) {
	for _, off := range offsets {
		c := game.Coord{X: center.X + off.X, Y: center.Y + off.Y}
		if world.InBounds(c) {
			visible[c] = struct{}{}
		}
	}
}
