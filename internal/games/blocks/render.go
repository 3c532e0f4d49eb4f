package blocks

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/playfield"
	"github.com/vovakirdan/blockfall/internal/tetromino"
)

const (
	blockRune  = '█'
	shadowRune = '░'
)

// cellColors maps the opaque playfield color tokens to screen colors.
var cellColors = map[playfield.Color]core.Color{
	tetromino.ColorCyan:   core.ColorCyan,
	tetromino.ColorYellow: core.ColorYellow,
	tetromino.ColorPurple: core.ColorMagenta,
	tetromino.ColorGreen:  core.ColorGreen,
	tetromino.ColorRed:    core.ColorRed,
	tetromino.ColorBlue:   core.ColorBlue,
	tetromino.ColorOrange: core.ColorOrange,
}

func screenColor(c playfield.Color) core.Color {
	if sc, ok := cellColors[c]; ok {
		return sc
	}
	return core.ColorWhite
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	if !g.gameOver {
		g.renderShadow(dst)
	}
	g.renderPiece(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Blockfall — Lines: %d", g.lines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the border and the settled cells. Rows above
// g.visibleTop are cropped spawn-buffer rows and stay off screen.
func (g *Game) renderBoard(dst *core.Screen) {
	visibleH := g.grid.Height() - g.visibleTop
	border := core.NewRect(g.boardOffsetX-1, g.boardOffsetY-1, g.grid.Width()+2, visibleH+2)
	dst.DrawBox(border)

	for row := g.visibleTop; row < g.grid.Height(); row++ {
		for col := 0; col < g.grid.Width(); col++ {
			cell := g.grid.CellAt(playfield.At(row, col))
			if !cell.Filled {
				continue
			}
			dst.SetCell(g.boardOffsetX+col, g.boardOffsetY+row-g.visibleTop, blockRune, screenColor(cell.Color))
		}
	}
}

// renderPiece draws the falling piece. Cells above the visible top row are
// clipped by the board rather than drawn over the HUD.
func (g *Game) renderPiece(dst *core.Screen) {
	for _, c := range g.piece.Cells(g.table) {
		if c.Row < g.visibleTop {
			continue
		}
		dst.SetCell(g.boardOffsetX+c.Col, g.boardOffsetY+c.Row-g.visibleTop, blockRune, screenColor(g.piece.Color))
	}
}

// renderShadow draws the ghost piece at its projected resting position.
// Style is display-only and never affects the projection itself.
func (g *Game) renderShadow(dst *core.Screen) {
	if g.shadow == config.ShadowOff {
		return
	}

	_, resting := playfield.Drop(g.grid, g.table, g.piece)

	color := core.ColorGray
	if g.shadow == config.ShadowPiece {
		color = screenColor(g.piece.Color)
	}

	for _, c := range resting.Cells(g.table) {
		if c.Row < g.visibleTop {
			continue
		}
		dst.SetCell(g.boardOffsetX+c.Col, g.boardOffsetY+c.Row-g.visibleTop, shadowRune, color)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	drawCenteredText(dst, line1, boxY+1)
	drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
