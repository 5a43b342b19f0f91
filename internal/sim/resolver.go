package sim

// OutcomeKind classifies the result of one movement tick.
type OutcomeKind int

const (
	// NoMove means the movement timer did not fire this frame.
	NoMove OutcomeKind = iota
	// MoveFree is a normal step; the tail drops one cell.
	MoveFree
	// MoveGrow is a step onto food; the tail stays.
	MoveGrow
	// HitWall is a step off the grid under WallsFatal.
	HitWall
	// HitSelf is a step into the snake's own body.
	HitSelf
)

func (k OutcomeKind) String() string {
	switch k {
	case NoMove:
		return "none"
	case MoveFree:
		return "move"
	case MoveGrow:
		return "grow"
	case HitWall:
		return "wall"
	case HitSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Outcome is the single per-tick result slot. It carries the candidate
// head cell and what the resolver decided about it.
type Outcome struct {
	Kind      OutcomeKind
	Candidate Coord
}

// Moved reports whether the snake advanced this tick.
func (o Outcome) Moved() bool {
	return o.Kind == MoveFree || o.Kind == MoveGrow
}

// Grew reports whether the snake ate this tick.
func (o Outcome) Grew() bool {
	return o.Kind == MoveGrow
}

// Terminal reports whether the tick ended the session.
func (o Outcome) Terminal() bool {
	return o.Kind == HitWall || o.Kind == HitSelf
}

// NextHead computes the candidate head cell for the current facing.
// Under WallsWrap the candidate is folded back onto the grid.
func NextHead(g Grid, walls WallPolicy, s Snake) Coord {
	next := s.Head().Step(s.Facing)
	if walls == WallsWrap {
		next = g.Wrap(next)
	}
	return next
}

// Classify decides what a step onto candidate means without mutating
// anything. Precedence: wall, self, food, free.
//
// The last segment only counts as an obstacle when the snake is growing:
// on a normal step it vacates its cell this same tick.
func Classify(g Grid, walls WallPolicy, s Snake, food []Food, candidate Coord) OutcomeKind {
	if walls != WallsWrap && !g.InBounds(candidate) {
		return HitWall
	}

	growing := foodAt(food, candidate) >= 0

	body := s.Segments[1:]
	if !growing && len(body) > 0 {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == candidate {
			return HitSelf
		}
	}

	if growing {
		return MoveGrow
	}
	return MoveFree
}

// Advance builds the post-move segment list from a snapshot of the
// pre-move body, so no segment reads an already shifted neighbour.
func Advance(old []Coord, candidate Coord, grow bool) []Coord {
	keep := len(old)
	if !grow {
		keep--
	}
	next := make([]Coord, 0, keep+1)
	next = append(next, candidate)
	next = append(next, old[:keep]...)
	return next
}

// Resolve runs one movement tick against the snake and food list.
// Terminal outcomes leave both untouched. On success the snake is
// committed in one assignment and eaten food is removed. The returned
// tail is the pre-move tail cell.
//
// Panics if the snake has no segments.
func Resolve(g Grid, walls WallPolicy, s *Snake, food []Food) (Outcome, []Food, Coord) {
	if len(s.Segments) == 0 {
		panic("sim: resolve called on an empty snake")
	}

	candidate := NextHead(g, walls, *s)
	kind := Classify(g, walls, *s, food, candidate)
	out := Outcome{Kind: kind, Candidate: candidate}
	lastTail := s.Tail()

	if out.Terminal() {
		return out, food, lastTail
	}

	if out.Grew() {
		i := foodAt(food, candidate)
		food = append(food[:i:i], food[i+1:]...)
	}

	s.Segments = Advance(s.Segments, candidate, out.Grew())
	return out, food, lastTail
}
