package sim

// Snake holds the ordered body and heading of the snake.
type Snake struct {
	Segments []Coord // Head at index 0, tail last
	Facing   Direction
	TurnLock bool // Set once a turn is accepted, cleared each movement tick
}

// NewSnake spawns a two-segment snake with its neck directly behind the head.
func NewSnake(head Coord, facing Direction) Snake {
	return Snake{
		Segments: []Coord{head, head.Step(facing.Opposite())},
		Facing:   facing,
	}
}

// Head returns the head cell. Panics on an empty snake.
func (s Snake) Head() Coord {
	if len(s.Segments) == 0 {
		panic("sim: snake has no segments")
	}
	return s.Segments[0]
}

// Tail returns the last segment. Panics on an empty snake.
func (s Snake) Tail() Coord {
	if len(s.Segments) == 0 {
		panic("sim: snake has no segments")
	}
	return s.Segments[len(s.Segments)-1]
}

// Len returns the number of segments.
func (s Snake) Len() int {
	return len(s.Segments)
}

// Steer applies one direction event.
// Events are dropped while the turn lock is held and when they would
// reverse the snake into its neck. Returns true if the event was accepted.
func (s *Snake) Steer(d Direction) bool {
	if s.TurnLock {
		return false
	}
	if d == s.Facing.Opposite() {
		return false
	}
	s.Facing = d
	s.TurnLock = true
	return true
}

// Clone returns a deep copy.
func (s Snake) Clone() Snake {
	s.Segments = append([]Coord(nil), s.Segments...)
	return s
}
