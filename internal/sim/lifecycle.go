package sim

import (
	"fmt"
	"time"
)

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Frame carries the inbound events for one scheduling pass.
type Frame struct {
	steers []Direction

	Start   bool // Menu -> Playing
	Restart bool // Reset and play again
	Exit    bool // Back to the menu
}

// Steer queues a direction event. Events are arbitrated in order.
func (f *Frame) Steer(d Direction) {
	f.steers = append(f.steers, d)
}

// Steers returns the queued direction events.
func (f Frame) Steers() []Direction {
	return f.steers
}

// Lifecycle owns the whole simulation state: snake, food, timers,
// score and phase. Callers drive it with Step and read it back through
// accessors that return copies.
type Lifecycle struct {
	cfg     Config
	grid    Grid
	spawner *Spawner

	phase     Phase
	snake     Snake
	food      []Food
	lastTail  *Coord
	moveTimer Timer
	foodTimer Timer

	score     uint
	highScore uint
	tick      uint64 // Frames stepped while playing
	moves     uint64 // Movement ticks resolved
	last      Outcome
}

// NewLifecycle creates a game in the Menu phase.
// Returns an error if the config does not validate.
func NewLifecycle(cfg Config, seed int64) (*Lifecycle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Lifecycle{
		cfg:       cfg,
		grid:      NewGrid(cfg.Width, cfg.Height),
		spawner:   NewSpawner(seed),
		moveTimer: NewTimer(cfg.MoveInterval),
		foodTimer: NewTimer(cfg.FoodInterval),
	}
	l.reset()
	l.phase = PhaseMenu
	return l, nil
}

// MustLifecycle is NewLifecycle for configs known to be valid.
func MustLifecycle(cfg Config, seed int64) *Lifecycle {
	l, err := NewLifecycle(cfg, seed)
	if err != nil {
		panic(err)
	}
	return l
}

// Start leaves the menu and begins a fresh session.
func (l *Lifecycle) Start() {
	if l.phase == PhasePlaying {
		return
	}
	l.reset()
	l.phase = PhasePlaying
}

// Restart resets the session and plays again. The high score is kept.
// From the menu it behaves like Start.
func (l *Lifecycle) Restart() {
	l.reset()
	l.phase = PhasePlaying
}

// Exit returns to the menu. Simulation state is discarded on the next Start.
func (l *Lifecycle) Exit() {
	l.phase = PhaseMenu
}

// reset restores the spawn layout, clears food and score, and zeroes the
// timers. Phase is left to the caller.
func (l *Lifecycle) reset() {
	l.snake = NewSnake(l.cfg.SpawnHead, l.cfg.SpawnFacing)
	l.food = nil
	l.lastTail = nil
	l.moveTimer.Reset()
	l.foodTimer.Reset()
	l.score = 0
	l.tick = 0
	l.moves = 0
	l.last = Outcome{}
}

// Step advances the simulation by one frame of dt simulated time.
//
// Order within a frame: lifecycle actions, direction arbitration,
// movement tick (unlock, resolve, commit), food spawn. A terminal tick
// freezes the game before the food timer runs.
func (l *Lifecycle) Step(f Frame, dt time.Duration) Outcome {
	switch l.phase {
	case PhaseMenu:
		if f.Start || f.Restart {
			l.Start()
		}
		return Outcome{}
	case PhaseGameOver:
		switch {
		case f.Exit:
			l.Exit()
		case f.Restart || f.Start:
			l.Restart()
		}
		return Outcome{}
	case PhasePlaying:
	default:
		panic(fmt.Sprintf("sim: invalid phase %d", int(l.phase)))
	}

	switch {
	case f.Exit:
		l.Exit()
		return Outcome{}
	case f.Restart:
		l.Restart()
		return Outcome{}
	}

	l.tick++

	for _, d := range f.steers {
		l.snake.Steer(d)
	}

	out := Outcome{}
	if l.moveTimer.Tick(dt) {
		out = l.moveTick()
		l.last = out
		if out.Terminal() {
			l.gameOver()
			return out
		}
	}

	if l.foodTimer.Tick(dt) {
		l.food, _ = l.spawner.Spawn(l.grid, l.snake, l.food, l.cfg.MaxFood)
	}

	return out
}

// moveTick resolves one movement step and applies its score effect.
func (l *Lifecycle) moveTick() Outcome {
	l.snake.TurnLock = false

	out, food, tail := Resolve(l.grid, l.cfg.Walls, &l.snake, l.food)
	if out.Terminal() {
		return out
	}

	l.moves++
	l.food = food
	l.lastTail = &tail
	if out.Grew() {
		l.score += l.cfg.Reward
	}
	return out
}

// gameOver records the high score and freezes the session.
func (l *Lifecycle) gameOver() {
	l.highScore = max(l.highScore, l.score)
	l.phase = PhaseGameOver
}

// Phase returns the current lifecycle phase.
func (l *Lifecycle) Phase() Phase { return l.phase }

// Score returns the score of the current session.
func (l *Lifecycle) Score() uint { return l.score }

// HighScore returns the best score seen by this lifecycle.
func (l *Lifecycle) HighScore() uint { return l.highScore }

// Config returns the constants the lifecycle was built with.
func (l *Lifecycle) Config() Config { return l.cfg }

// Grid returns the playfield.
func (l *Lifecycle) Grid() Grid { return l.grid }

// Snake returns a copy of the snake.
func (l *Lifecycle) Snake() Snake { return l.snake.Clone() }

// Food returns a copy of the outstanding food items.
func (l *Lifecycle) Food() []Food { return append([]Food(nil), l.food...) }

// LastTail returns the cell the tail vacated on the last committed move.
func (l *Lifecycle) LastTail() (Coord, bool) {
	if l.lastTail == nil {
		return Coord{}, false
	}
	return *l.lastTail, true
}

// LastOutcome returns the result of the most recent movement tick.
func (l *Lifecycle) LastOutcome() Outcome { return l.last }

// Tick returns the number of frames stepped in the current session.
func (l *Lifecycle) Tick() uint64 { return l.tick }

// Moves returns the number of committed movement ticks this session.
func (l *Lifecycle) Moves() uint64 { return l.moves }
