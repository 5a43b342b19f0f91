package snake

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

// newTestGame builds a game with stock constants, bypassing config files.
// At 5 frames per second every frame is one 200ms movement tick.
func newTestGame(t *testing.T, v Variant, tickRate int) *Game {
	t.Helper()
	g := New(v)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate, Seed: 42}
	if err := g.ResetWith(cfg, sim.DefaultConfig()); err != nil {
		t.Fatalf("ResetWith() failed: %v", err)
	}
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, Classic, 60)
	g2 := newTestGame(t, Classic, 60)

	script := map[int]core.Action{
		0:   core.ActionConfirm,
		30:  core.ActionRight,
		90:  core.ActionUp,
		150: core.ActionRight,
		200: core.ActionDown,
		260: core.ActionLeft,
	}

	for i := range 400 {
		in := core.NewInputFrame()
		if a, ok := script[i]; ok {
			in.Set(a)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestStartsInMenu(t *testing.T) {
	g := newTestGame(t, Classic, 5)

	if st := g.State(); !st.InMenu || st.Phase != "menu" {
		t.Fatalf("Expected menu state, got %+v", st)
	}

	// Steering in the menu does nothing.
	g.Step(press(core.ActionLeft))
	if snap := g.Snapshot(); snap.Moves != 0 || snap.Facing != sim.Up {
		t.Errorf("Menu should not simulate, got %+v", snap)
	}

	g.Step(press(core.ActionConfirm))
	if st := g.State(); st.InMenu || st.Phase != "playing" || st.Length != 2 {
		t.Errorf("Confirm should start play, got %+v", st)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(t, Classic, 5)
	g.Step(press(core.ActionConfirm))

	g.Step(press(core.ActionDown))
	if snap := g.Snapshot(); snap.Facing != sim.Up {
		t.Errorf("Reversal should be rejected, facing %s", snap.Facing)
	}
	if head := g.Snapshot().Segments[0]; head != sim.C(3, 4) {
		t.Errorf("Head = %s, expected (3,4) after one upward move", head)
	}
}

func TestWallEndsRun(t *testing.T) {
	g := newTestGame(t, Classic, 5)
	g.Step(press(core.ActionConfirm))

	// Spawn head (3,3): three moves reach x=0, the fourth leaves the grid.
	var res core.StepResult
	for i := range 4 {
		in := core.NewInputFrame()
		if i == 0 {
			in.Set(core.ActionLeft)
		}
		res = g.Step(in)
		if i < 3 && res.Ended {
			t.Fatalf("Run ended early on move %d", i+1)
		}
	}

	if !res.Ended {
		t.Fatal("Expected the fourth move to end the run")
	}
	if st := res.State; !st.GameOver || st.Reason != "wall" {
		t.Errorf("Expected game over by wall, got %+v", st)
	}

	// Game over is frozen until an action arrives.
	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("Game over state should not change without input")
	}

	g.Step(press(core.ActionBack))
	if !g.State().InMenu {
		t.Error("Back should return to the menu")
	}
}

func TestWrapVariantSurvivesEdge(t *testing.T) {
	g := newTestGame(t, Wrap, 5)
	g.Step(press(core.ActionConfirm))

	g.Step(press(core.ActionLeft))
	for range 3 {
		if res := g.Step(core.NewInputFrame()); res.Ended {
			t.Fatal("Wrap variant should not end at the edge")
		}
	}

	if head := g.Snapshot().Segments[0]; head != sim.C(14, 3) {
		t.Errorf("Head = %s, expected (14,3)", head)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, Classic, 5)
	g.Step(press(core.ActionConfirm))
	for !g.State().GameOver {
		g.Step(core.NewInputFrame())
	}

	g.Step(press(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Phase != sim.PhasePlaying || snap.Score != 0 || len(snap.Segments) != 2 {
		t.Errorf("Restart should begin a fresh session, got %+v", snap)
	}
	if snap.Segments[0] != sim.C(3, 3) || snap.Facing != sim.Up {
		t.Errorf("Restart should restore the spawn layout, got %+v", snap)
	}
}

func TestRegisteredVariants(t *testing.T) {
	for _, v := range []Variant{Classic, Wrap} {
		if !registry.Exists(v.ID) {
			t.Errorf("%s should be registered", v.ID)
			continue
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatal(err)
		}
		if g.Title() != v.Title {
			t.Errorf("Title = %q, expected %q", g.Title(), v.Title)
		}
	}
}

func TestRenderMenu(t *testing.T) {
	g := newTestGame(t, Classic, 60)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	for _, want := range []string{"Snake  Score: 0", "Press Enter to start"} {
		if !strings.Contains(content, want) {
			t.Errorf("Menu render should contain %q", want)
		}
	}
}

func TestRenderPlayingLayout(t *testing.T) {
	g := newTestGame(t, Classic, 60)
	g.Step(press(core.ActionConfirm))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 15x15 grid plus frame is 34x17 cells, centered below the HUD.
	boardX, boardY := (80-34)/2, 2+(24-2-17)/2

	// Head (3,3): Y grows upward, so it sits 11 rows above the bottom row.
	head := screen.GetCell(boardX+4*cellW, boardY+1+11)
	if head.Rune != '█' || head.Color != core.ColorHead {
		t.Errorf("Head cell = %+v", head)
	}
	tail := screen.GetCell(boardX+4*cellW, boardY+1+12)
	if tail.Rune != '▓' || tail.Color != core.ColorBody {
		t.Errorf("Tail cell = %+v", tail)
	}
	if c := screen.GetCell(boardX, boardY); c.Rune != '░' {
		t.Errorf("Top-left frame cell = %+v", c)
	}
	if c := screen.GetCell(boardX+2*cellW, boardY+1); c.Rune != '·' {
		t.Errorf("Empty cell (1,14) = %+v", c)
	}
}

func TestRenderWrapFrame(t *testing.T) {
	g := newTestGame(t, Wrap, 60)
	g.Step(press(core.ActionConfirm))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	boardX, boardY := (80-34)/2, 2+(24-2-17)/2
	if c := screen.GetCell(boardX, boardY); c.Rune != '┌' {
		t.Errorf("Wrap variant should draw an open frame, got %+v", c)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, Classic, 5)
	g.Step(press(core.ActionConfirm))
	for !g.State().GameOver {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	for _, want := range []string{"Game Over", "You hit the wall", "R restart"} {
		if !strings.Contains(content, want) {
			t.Errorf("Game over render should contain %q", want)
		}
	}
}

func TestRenderWindowTooSmall(t *testing.T) {
	g := newTestGame(t, Classic, 60)
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Small screens should show a resize hint")
	}
}

func TestResetWithRejectsBadConfig(t *testing.T) {
	g := New(Classic)
	bad := sim.DefaultConfig()
	bad.Width = 0

	if err := g.ResetWith(core.DefaultConfig(), bad); err == nil {
		t.Error("ResetWith() should fail for an invalid config")
	}
}

// useConfigFile points Reset at a custom config with the given body and
// isolates the search path from the user's files.
func useConfigFile(t *testing.T, body string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func TestResetHonorsConfiguredWalls(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		walls   string
		want    sim.WallPolicy
	}{
		{"classic uses wrap from config", Classic, "wrap", sim.WallsWrap},
		{"classic uses fatal from config", Classic, "fatal", sim.WallsFatal},
		{"wrap variant overrides config", Wrap, "fatal", sim.WallsWrap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfigFile(t, "walls: "+tt.walls+"\n")

			g := New(tt.variant)
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

			if got := g.Lifecycle().Config().Walls; got != tt.want {
				t.Errorf("Walls = %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestResetLogsInvalidConfig(t *testing.T) {
	useConfigFile(t, "grid:\n  width: 0\n")

	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	t.Cleanup(func() { SetLogger(nil) })

	g := New(Classic)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if got := g.Lifecycle().Config(); got != sim.DefaultConfig() {
		t.Errorf("Config = %+v, expected defaults", got)
	}
	if out := buf.String(); !strings.Contains(out, "invalid snake config") || !strings.Contains(out, "grid size") {
		t.Errorf("expected a warning naming the problem, got %q", out)
	}
}
