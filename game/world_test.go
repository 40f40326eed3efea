package game

import "testing"

func TestBuildBridgeOnlyOnWater(t *testing.T) {
	w := NewWorld(3, 3)
	water := Coord{X: 1, Y: 1}
	plain := Coord{X: 0, Y: 0}
	w.SetTerrain(water, Water)

	w.BuildBridge(water)
	w.BuildBridge(plain)

	if w.TerrainAt(water) != Bridge {
		t.Errorf("expected water converted to bridge, got %v", w.TerrainAt(water))
	}
	if w.TerrainAt(plain) != Empty {
		t.Errorf("expected plain cell untouched, got %v", w.TerrainAt(plain))
	}

	// Conversion is one-way: bridging a bridge changes nothing.
	w.BuildBridge(water)
	if w.TerrainAt(water) != Bridge {
		t.Error("expected bridge to stay a bridge")
	}
}

func TestPortalPairLinksBothWays(t *testing.T) {
	w := NewWorld(10, 10)
	a := Coord{X: 1, Y: 1}
	b := Coord{X: 8, Y: 8}
	w.AddPortalPair(a, b)

	if link, ok := w.PortalLink(a); !ok || link != b {
		t.Errorf("expected %v linked to %v, got %v (ok=%v)", a, b, link, ok)
	}
	if link, ok := w.PortalLink(b); !ok || link != a {
		t.Errorf("expected %v linked to %v, got %v (ok=%v)", b, a, link, ok)
	}
	if w.TerrainAt(a) != Portal || w.TerrainAt(b) != Portal {
		t.Error("expected both endpoints to have portal terrain")
	}
}

func TestTowerCoordsSorted(t *testing.T) {
	w := NewWorld(10, 10)
	w.AddTower(Coord{X: 5, Y: 1})
	w.AddTower(Coord{X: 1, Y: 7})
	w.AddTower(Coord{X: 1, Y: 2})

	coords := w.TowerCoords()
	want := []Coord{{X: 1, Y: 2}, {X: 1, Y: 7}, {X: 5, Y: 1}}
	if len(coords) != len(want) {
		t.Fatalf("expected %d towers, got %d", len(want), len(coords))
	}
	for i := range want {
		if coords[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], coords[i])
		}
	}
}

func TestMoveCost(t *testing.T) {
	w := NewWorld(3, 3)
	w.SetTerrain(Coord{X: 0, Y: 0}, Water)
	w.SetTerrain(Coord{X: 1, Y: 0}, Mountain)

	if got := w.MoveCost(Coord{X: 0, Y: 0}); got != ImpassableCost {
		t.Errorf("expected water cost %d, got %d", ImpassableCost, got)
	}
	if got := w.MoveCost(Coord{X: 1, Y: 0}); got != 2 {
		t.Errorf("expected mountain cost 2, got %d", got)
	}
	if got := w.MoveCost(Coord{X: 2, Y: 0}); got != 1 {
		t.Errorf("expected empty cost 1, got %d", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	w := NewWorld(4, 4)
	w.SetTerrain(Coord{X: 1, Y: 1}, Water)
	clone := w.Clone()

	clone.BuildBridge(Coord{X: 1, Y: 1})

	if w.TerrainAt(Coord{X: 1, Y: 1}) != Water {
		t.Error("expected original world unchanged by clone mutation")
	}
}
