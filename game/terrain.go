package game

// Terrain is the kind of tile at a single world cell.
type Terrain int

const (
	Empty Terrain = iota
	Water
	Mountain
	Bridge
	Tower
	Portal
)

// ImpassableCost marks terrain that cannot be claimed directly.
const ImpassableCost = 999

func (t Terrain) String() string {
	switch t {
	case Empty:
		return "empty"
	case Water:
		return "water"
	case Mountain:
		return "mountain"
	case Bridge:
		return "bridge"
	case Tower:
		return "tower"
	case Portal:
		return "portal"
	default:
		return "unknown"
	}
}

// MoveCost is the base action cost of claiming a tile of this terrain.
// Water is impassable until bridged.
func (t Terrain) MoveCost() int {
	switch t {
	case Water:
		return ImpassableCost
	case Mountain:
		return 2
	default:
		return 1
	}
}
