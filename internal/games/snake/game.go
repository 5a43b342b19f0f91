package snake

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

// Variant is a registered flavor of the game.
type Variant struct {
	ID    string
	Title string
	Walls sim.WallPolicy // Empty keeps the configured policy
}

var (
	// Classic plays with the configured wall policy (fatal by default).
	Classic = Variant{ID: "snake", Title: "Snake"}
	// Wrap folds the grid edges onto each other.
	Wrap = Variant{ID: "snake_wrap", Title: "Snake (Wrap)", Walls: sim.WallsWrap}
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the config file used by games created after the call.
func SetConfigPath(path string) {
	configPath = path
}

// logger reports config problems hit during Reset.
var logger = log.New(io.Discard)

// SetLogger sets the logger used by games. nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	for _, v := range []Variant{Classic, Wrap} {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game adapts a sim.Lifecycle to the platform's registry.Game interface.
type Game struct {
	variant Variant
	life    *sim.Lifecycle
	dt      time.Duration // Simulated time per frame
}

// New creates a game of the given variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.variant.Title }

// Reset builds a fresh lifecycle in the menu phase. The config file is
// re-read each time; if it is unusable the stock constants are used and
// the problem is logged.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	simCfg, err := loadSimConfig()
	if err == nil {
		err = g.ResetWith(cfg, simCfg)
	}
	if err != nil {
		logger.Warn("invalid snake config, using defaults",
			"game", g.variant.ID, "path", configPath, "error", err)
		g.life = sim.MustLifecycle(g.variant.apply(sim.DefaultConfig()), cfg.Seed)
		g.dt = frameDelta(cfg.TickRate)
	}
}

// ResetWith is Reset with explicit simulation constants. A variant with its
// own wall policy overrides simCfg.Walls.
func (g *Game) ResetWith(cfg core.RuntimeConfig, simCfg sim.Config) error {
	life, err := sim.NewLifecycle(g.variant.apply(simCfg), cfg.Seed)
	if err != nil {
		return err
	}
	g.life = life
	g.dt = frameDelta(cfg.TickRate)
	return nil
}

// apply sets the variant's wall policy on c, if it has one.
func (v Variant) apply(c sim.Config) sim.Config {
	if v.Walls != "" {
		c.Walls = v.Walls
	}
	return c
}

// frameDelta is the simulated time of one frame at the given rate.
func frameDelta(tickRate int) time.Duration {
	return time.Second / time.Duration(max(tickRate, 1))
}

func loadSimConfig() (sim.Config, error) {
	c, err := config.LoadSnake(configPath)
	if err != nil {
		return sim.Config{}, err
	}
	return c.ToSim()
}

func (g *Game) ensure() {
	if g.life == nil {
		g.Reset(core.DefaultConfig())
	}
}

// Step maps one input frame onto the simulation and advances it by one
// frame of simulated time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ensure()

	frame := sim.Frame{
		Start:   in.Has(core.ActionConfirm),
		Restart: in.Has(core.ActionRestart),
		Exit:    in.Has(core.ActionBack),
	}
	for _, a := range in.Directions() {
		if d, ok := toDirection(a); ok {
			frame.Steer(d)
		}
	}

	out := g.life.Step(frame, g.dt)

	return core.StepResult{
		State: g.State(),
		Ended: out.Terminal(),
	}
}

func toDirection(a core.Action) (sim.Direction, bool) {
	switch a {
	case core.ActionUp:
		return sim.Up, true
	case core.ActionDown:
		return sim.Down, true
	case core.ActionLeft:
		return sim.Left, true
	case core.ActionRight:
		return sim.Right, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.ensure()

	phase := g.life.Phase()
	s := core.GameState{
		Score:     int(g.life.Score()),
		HighScore: int(g.life.HighScore()),
		Length:    g.life.Snake().Len(),
		Phase:     phase.String(),
		InMenu:    phase == sim.PhaseMenu,
		GameOver:  phase == sim.PhaseGameOver,
	}
	if s.GameOver {
		s.Reason = g.life.LastOutcome().Kind.String()
	}
	return s
}

// Moves returns the number of movement ticks in the current session.
func (g *Game) Moves() int {
	g.ensure()
	return int(g.life.Moves())
}

// Elapsed returns the simulated play time of the current session.
func (g *Game) Elapsed() time.Duration {
	g.ensure()
	return time.Duration(g.life.Tick()) * g.dt
}

// Lifecycle exposes the underlying simulation for read-only inspection.
func (g *Game) Lifecycle() *sim.Lifecycle {
	g.ensure()
	return g.life
}

// reasonText is the game-over subtitle for an outcome kind name.
func reasonText(reason string) string {
	switch reason {
	case sim.HitWall.String():
		return "You hit the wall"
	case sim.HitSelf.String():
		return "You ran into yourself"
	default:
		return fmt.Sprintf("Run ended (%s)", reason)
	}
}
