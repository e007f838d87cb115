package pentix

import (
	"fmt"

	"github.com/vovakirdan/pentix/internal/core"
)

const (
	cellWidth = 2  // Screen columns per board column
	hudGap    = 2  // Space between well and HUD
	hudWidth  = 20 // Width reserved for the HUD
	blockRune = '█'
	emptyRune = '·'
)

// wellSize returns the screen size of the bordered well.
func (g *Game) wellSize() (w, h int) {
	return g.cfg.Board.Columns*cellWidth + 2, g.cfg.Board.Rows + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	wellW, wellH := g.wellSize()
	totalW := wellW
	if dst.Width() >= wellW+hudGap+hudWidth {
		totalW += hudGap + hudWidth
	}
	well := core.NewRect((dst.Width()-totalW)/2, (dst.Height()-wellH)/2, wellW, wellH)

	g.renderWell(dst, well)
	if totalW > wellW {
		g.renderHUD(dst, well.Right()+hudGap, well.Y)
	}
	g.renderOverlays(dst, well)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.wellSize()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need at least %dx%d", w, h))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderWell draws the border, the landed cells and the active piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well)

	originX, originY := well.X+1, well.Y+1
	for row := 0; row < g.board.Rows(); row++ {
		for col := 0; col < g.board.Columns(); col++ {
			x := originX + col*cellWidth
			y := originY + row
			if c := g.board.Cell(row, col); c != core.ColorDefault {
				drawBlock(dst, x, y, c)
			} else {
				dst.SetCell(x+1, y, emptyRune, core.ColorGray)
			}
		}
	}

	if g.board.GameOver() || g.board.AwaitingPiece() || !g.piece.Spawned() {
		return
	}
	pos := g.piece.Position()
	for y, row := range g.piece.cells {
		for x, v := range row {
			if v == 0 {
				continue
			}
			r, c := pos.Row+y, pos.Col+x
			if !g.board.InBounds(r, c) {
				continue
			}
			drawBlock(dst, originX+c*cellWidth, originY+r, g.piece.Color())
		}
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(x+i, y, blockRune, c)
	}
}

// renderHUD draws title, score and control hints to the right of the well.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	lines := []string{
		"PENTIX",
		"",
		fmt.Sprintf("Score: %d", g.board.Score()),
		fmt.Sprintf("Lines: %d", g.board.Lines()),
		"",
		"←/→   move",
		"↓     soft drop",
		"↑     rotate",
		"Space hard drop",
		"P     pause",
		"Q     quit",
	}
	for i, line := range lines {
		dst.DrawText(x, y+i, line)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	cx, cy := well.Center()

	if g.board.GameOver() {
		g.drawOverlay(dst, cx, cy, "GAME OVER", fmt.Sprintf("Score: %d", g.board.Score()), "R to restart")
		return
	}
	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "P to resume")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len([]rune(line))/2, box.Y+1+i, line)
	}
}
