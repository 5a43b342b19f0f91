package snake

import "github.com/vovakirdan/tui-snake/internal/sim"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Variant   string
	Phase     sim.Phase
	Tick      uint64
	Moves     uint64
	Score     uint
	HighScore uint
	Segments  []sim.Coord // Head first
	Facing    sim.Direction
	Food      []sim.Coord
	Outcome   sim.OutcomeKind
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	g.ensure()

	s := g.life.Snake()
	food := g.life.Food()
	pos := make([]sim.Coord, len(food))
	for i, f := range food {
		pos[i] = f.Pos
	}

	return Snapshot{
		Variant:   g.variant.ID,
		Phase:     g.life.Phase(),
		Tick:      g.life.Tick(),
		Moves:     g.life.Moves(),
		Score:     g.life.Score(),
		HighScore: g.life.HighScore(),
		Segments:  s.Segments,
		Facing:    s.Facing,
		Food:      pos,
		Outcome:   g.life.LastOutcome().Kind,
	}
}
