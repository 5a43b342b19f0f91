package sim

import "fmt"

// Direction represents the snake's movement direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		panic(fmt.Sprintf("sim: invalid direction %d", int(d)))
	}
}

// Delta returns the unit vector for d. Up is +Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	default:
		panic(fmt.Sprintf("sim: invalid direction %d", int(d)))
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "up" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("sim: unknown direction %q", s)
}
