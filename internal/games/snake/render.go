package snake

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

const (
	hudHeight = 2
	// cellW is the screen columns per grid cell; terminal cells are about
	// twice as tall as they are wide.
	cellW = 2
)

// glyph is how one grid cell is drawn.
type glyph struct {
	left, right rune
	color       core.Color
}

var glyphs = map[sim.EntityKind]glyph{
	sim.KindHead:   {'█', '█', core.ColorHead},
	sim.KindBody:   {'▓', '▓', core.ColorBody},
	sim.KindFood:   {'●', ' ', core.ColorFood},
	sim.KindBorder: {'░', '░', core.ColorBorder},
}

var emptyGlyph = glyph{'·', ' ', core.ColorDim}

// layout maps grid coordinates to screen cells. Grid Y grows upward, so
// rows are flipped.
type layout struct {
	board  core.Rect // Includes the one-cell frame around the grid
	height int       // Grid height in cells
}

func newLayout(g sim.Grid, screenW, screenH int) (layout, bool) {
	w := (g.Width + 2) * cellW
	h := g.Height + 2
	if screenW < w || screenH < hudHeight+h {
		return layout{}, false
	}
	x := (screenW - w) / 2
	y := hudHeight + (screenH-hudHeight-h)/2
	return layout{board: core.NewRect(x, y, w, h), height: g.Height}, true
}

// cell returns the screen position of a grid coordinate. Frame cells at
// x=-1, x=W, y=-1 and y=H are valid inputs.
func (l layout) cell(c sim.Coord) (int, int) {
	return l.board.X + (c.X+1)*cellW, l.board.Y + 1 + (l.height - 1 - c.Y)
}

func (l layout) draw(dst *core.Screen, c sim.Coord, gl glyph) {
	x, y := l.cell(c)
	dst.SetColored(x, y, gl.left, gl.color)
	dst.SetColored(x+1, y, gl.right, gl.color)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.ensure()
	dst.Clear()

	g.renderHUD(dst)

	grid := g.life.Grid()
	lay, ok := newLayout(grid, dst.Width(), dst.Height())
	if !ok {
		renderOverlay(dst, core.ColorAlert, "Window too small",
			fmt.Sprintf("Need %dx%d", (grid.Width+2)*cellW, grid.Height+2+hudHeight))
		return
	}

	for _, c := range grid.Cells() {
		lay.draw(dst, c, emptyGlyph)
	}

	if g.life.Config().Walls == sim.WallsFatal {
		corners := []sim.Coord{
			sim.C(-1, -1), sim.C(grid.Width, -1),
			sim.C(-1, grid.Height), sim.C(grid.Width, grid.Height),
		}
		for _, c := range corners {
			lay.draw(dst, c, glyphs[sim.KindBorder])
		}
	} else {
		dst.DrawBox(lay.board, core.ColorDim)
	}

	for _, e := range g.life.Entities() {
		lay.draw(dst, e.Pos, glyphs[e.Kind])
	}

	switch g.life.Phase() {
	case sim.PhaseMenu:
		renderOverlay(dst, core.ColorHUD, g.variant.Title,
			"Press Enter to start",
			"Arrows / WASD / HJKL to steer",
			"Tab scores  ·  Q quit")
	case sim.PhaseGameOver:
		st := g.State()
		renderOverlay(dst, core.ColorAlert, "Game Over",
			reasonText(st.Reason),
			fmt.Sprintf("Score %d  ·  Best %d", st.Score, st.HighScore),
			"R restart  ·  Esc menu")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d  Length: %d", g.variant.Title, st.Score, st.HighScore, st.Length)
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDim)
}

// renderOverlay draws a centered box with a title and text lines.
func renderOverlay(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	maxLen := utf8.RuneCountInString(title)
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(maxLen+4, len(lines)+4)
	dst.FillRect(box)
	dst.DrawBox(box, core.ColorBorder)

	dst.DrawTextCentered(box.Y+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorDefault)
	}
}
