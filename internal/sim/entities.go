package sim

// EntityKind tags what occupies a cell in the render list.
type EntityKind int

const (
	KindHead EntityKind = iota
	KindBody
	KindFood
	KindBorder
)

func (k EntityKind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindBody:
		return "body"
	case KindFood:
		return "food"
	case KindBorder:
		return "border"
	default:
		return "unknown"
	}
}

// Entity is one read-only (cell, kind) pair for renderers.
type Entity struct {
	Pos  Coord
	Kind EntityKind
}

// Entities lists everything a renderer needs to draw this frame: border
// ring (fatal walls only), food, then the snake tail-to-head so the head
// is drawn last. The slice is freshly allocated on every call.
func (l *Lifecycle) Entities() []Entity {
	var border []Coord
	if l.cfg.Walls == WallsFatal {
		border = l.grid.Border()
	}

	out := make([]Entity, 0, len(border)+len(l.food)+len(l.snake.Segments))
	for _, c := range border {
		out = append(out, Entity{Pos: c, Kind: KindBorder})
	}
	for _, f := range l.food {
		out = append(out, Entity{Pos: f.Pos, Kind: KindFood})
	}
	for i := len(l.snake.Segments) - 1; i >= 0; i-- {
		kind := KindBody
		if i == 0 {
			kind = KindHead
		}
		out = append(out, Entity{Pos: l.snake.Segments[i], Kind: kind})
	}
	return out
}
