// Package sim implements the snake simulation engine: grid bounds, occupancy,
// input arbitration, tick resolution, food spawning and the game lifecycle.
// It has no external dependencies so the rules stay pure and testable; the
// platform layer drives it one frame at a time and only reads its output.
package sim

import "fmt"

// Coord is an integer cell address on the grid.
// X grows to the right, Y grows upward.
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a fixed-size discrete coordinate space.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid. Panics on non-positive dimensions.
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("sim: invalid grid size %dx%d", width, height))
	}
	return Grid{Width: width, Height: height}
}

// InBounds reports whether c lies inside [0,Width) x [0,Height).
// Out-of-range coordinates are never normalized here.
func (g Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap folds c back onto the grid modulo its size.
// Only used under WallsWrap.
func (g Grid) Wrap(c Coord) Coord {
	return Coord{X: mod(c.X, g.Width), Y: mod(c.Y, g.Height)}
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Cells returns every in-bounds coordinate in row-major order.
func (g Grid) Cells() []Coord {
	cells := make([]Coord, 0, g.Area())
	for y := range g.Height {
		for x := range g.Width {
			cells = append(cells, Coord{X: x, Y: y})
		}
	}
	return cells
}

// Border returns the ring of cells just outside the grid.
// Corners are left out; nothing can reach them in one step.
func (g Grid) Border() []Coord {
	border := make([]Coord, 0, 2*(g.Width+g.Height))
	for x := range g.Width {
		border = append(border, Coord{X: x, Y: -1}, Coord{X: x, Y: g.Height})
	}
	for y := range g.Height {
		border = append(border, Coord{X: -1, Y: y}, Coord{X: g.Width, Y: y})
	}
	return border
}

func mod(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

// WallPolicy decides what happens when the head leaves the grid.
type WallPolicy string

const (
	// WallsFatal ends the game on leaving the grid.
	WallsFatal WallPolicy = "fatal"
	// WallsWrap teleports the head to the opposite edge.
	WallsWrap WallPolicy = "wrap"
)

// Valid reports whether p is a known policy.
func (p WallPolicy) Valid() bool {
	return p == WallsFatal || p == WallsWrap
}
