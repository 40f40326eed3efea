package game

import "fmt"

// Coord is an integer (x, y) grid position. Comparable, so it can key maps.
type Coord struct {
	X, Y int
}

// Neighbors returns the four orthogonal neighbors, bounds not checked.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

func (c Coord) ManhattanDistance(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

func (c Coord) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Less orders coordinates by x, then y. All deterministic tie-breaks in the
// decision pipeline go through this ordering.
func (c Coord) Less(other Coord) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
