package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
	engine "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

const (
	cellWidth    = 2 // screen columns per board cell
	hudHeight    = 1
	footerHeight = 1
	panelGap     = 2
	panelWidth   = 16
)

// kindColors maps a cell value to its color.
var kindColors = map[int]core.Color{
	int(engine.KindI): core.ColorCyan,
	int(engine.KindJ): core.ColorBlue,
	int(engine.KindL): core.ColorOrange,
	int(engine.KindO): core.ColorYellow,
	int(engine.KindS): core.ColorGreen,
	int(engine.KindT): core.ColorMagenta,
	int(engine.KindZ): core.ColorRed,
}

type layout struct {
	box    core.Rect // board including its border
	well   core.Rect // playable cells, box.Inset(1)
	panelX int
	width  int
	height int
}

func (g *Game) layout() layout {
	boxW := g.rules.Cols*cellWidth + 2
	boxH := g.rules.Rows + 2

	l := layout{
		width:  boxW + panelGap + panelWidth,
		height: hudHeight + boxH + footerHeight,
	}
	l.box = core.NewRect(max(0, (g.screenW-l.width)/2), hudHeight, boxW, boxH)
	l.well = l.box.Inset(1)
	l.panelX = l.box.Right() + panelGap
	return l
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		l := g.layout()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", l.width, l.height))
		return
	}

	l := g.layout()
	view := g.ctrl.ViewData()

	g.renderBoard(dst, l, view)
	g.renderPanel(dst, l, view)
	dst.DrawText(l.box.X, l.box.Bottom(), "←→ move  ↑ rotate  ↓ soft  ␣ drop  c hold  p pause")

	switch {
	case g.gameOver && g.timeUp:
		g.renderOverlay(dst, "Time's up!", g.gameOverLine())
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", g.gameOverLine())
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) gameOverLine() string {
	if g.newHigh {
		return fmt.Sprintf("New high score %d! R to restart", g.ctrl.Score().Value())
	}
	return "Press R to restart"
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	score := g.ctrl.Score()
	hud := fmt.Sprintf(" %s  Score: %d  High: %d", g.Title(), score.Value(), score.HighScore())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
}

// screenRow maps a board row to a screen row inside the box. Bottoms-up
// mode flips the board vertically.
func (g *Game) screenRow(l layout, row int) int {
	if g.mode == engine.ModeBottomsUp {
		row = g.rules.Rows - 1 - row
	}
	return l.well.Y + row
}

func (g *Game) drawCell(dst *core.Screen, l layout, row, col int, glyph rune, c core.Color) {
	x := l.well.X + col*cellWidth
	y := g.screenRow(l, row)
	if !l.well.Contains(x, y) {
		return
	}
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(x+i, y, glyph, c)
	}
}

func (g *Game) renderBoard(dst *core.Screen, l layout, view engine.ViewData) {
	dst.DrawBox(l.box, core.ColorGray)

	bg := g.ctrl.Matrix()
	for r, row := range bg {
		for c, v := range row {
			if v == 0 {
				g.drawCell(dst, l, r, c, ' ', core.ColorDefault)
				dst.SetCell(l.well.X+c*cellWidth+1, g.screenRow(l, r), '·', core.ColorGray)
				continue
			}
			g.drawCell(dst, l, r, c, '█', kindColors[v])
		}
	}

	if g.gameOver {
		return
	}

	for r, row := range view.Brick {
		for c, v := range row {
			if v != 0 {
				g.drawCell(dst, l, view.Ghost+r, view.X+c, '░', core.ColorGray)
			}
		}
	}
	for r, row := range view.Brick {
		for c, v := range row {
			if v != 0 {
				g.drawCell(dst, l, view.Y+r, view.X+c, '█', kindColors[v])
			}
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, l layout, view engine.ViewData) {
	x, y := l.panelX, l.box.Y

	dst.DrawTextColor(x, y, "NEXT", core.ColorBrightWhite)
	y++
	for _, m := range view.Next {
		y = drawPreview(dst, x, y, m) + 1
	}

	dst.DrawTextColor(x, y, "HOLD", core.ColorBrightWhite)
	y++
	if isEmpty(view.Held) {
		dst.DrawTextColor(x, y, "-", core.ColorGray)
		y += 2
	} else {
		y = drawPreview(dst, x, y, view.Held) + 1
	}

	score := g.ctrl.Score()
	dst.DrawText(x, y, fmt.Sprintf("Lines %d", score.Lines()))
	dst.DrawText(x, y+1, fmt.Sprintf("Level %d", score.Level()))
	if g.modes.Timed() {
		dst.DrawTextColor(x, y+2, "Time "+engine.FormatRemaining(g.Remaining()), core.ColorBrightYellow)
	}
}

// drawPreview draws the non-empty rows of m at (x, y) and returns the row
// after the last one drawn.
func drawPreview(dst *core.Screen, x, y int, m engine.Matrix) int {
	for _, row := range m {
		if isEmptyRow(row) {
			continue
		}
		for c, v := range row {
			if v == 0 {
				continue
			}
			for i := 0; i < cellWidth; i++ {
				dst.SetCell(x+c*cellWidth+i, y, '█', kindColors[v])
			}
		}
		y++
	}
	return y
}

func isEmptyRow(row []int) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}

func isEmpty(m engine.Matrix) bool {
	for _, row := range m {
		if !isEmptyRow(row) {
			return false
		}
	}
	return true
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	inner := box.Inset(1)
	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < inner.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
