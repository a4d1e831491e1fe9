package neotris

import (
	"fmt"
	"time"

	"github.com/teodorv/neotris/internal/core"
)

// Each board cell is drawn two runes wide so the well looks square-ish in
// a terminal.
const (
	cellWidth    = 2
	sidebarWidth = 22
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	theme := g.theme()
	boardX := 2
	boardY := 1

	// Well border
	dst.DrawBoxColored(core.NewRect(
		boardX-1, boardY-1,
		g.board.Width()*cellWidth+2, g.board.Height()+2,
	), theme.Border)

	// Settled cells
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if g.board.Occupied(x, y) {
				g.drawCell(dst, boardX, boardY, x, y, '█', g.board.ColorAt(x, y))
			}
		}
	}

	if !g.gameOver {
		// Ghost first, advisor second, live piece last so overlaps resolve
		// in favor of the real piece.
		if g.ghostOn {
			g.drawPiece(dst, boardX, boardY, g.advisor.Ghost(g.board, g.current), '░', theme.Ghost)
		}
		if g.advisorOn && g.suggestionPiece != nil {
			g.drawPiece(dst, boardX, boardY, g.suggestionPiece, '▒', theme.Accent)
		}
		g.drawPiece(dst, boardX, boardY, g.current, '█', g.current.Color)
	}

	g.renderSidebar(dst, boardX+g.board.Width()*cellWidth+3, boardY)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawCell paints one board cell (cellWidth runes) at board coords (x, y).
func (g *Game) drawCell(dst *core.Screen, boardX, boardY, x, y int, r rune, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(boardX+x*cellWidth+i, boardY+y, r, c)
	}
}

// drawPiece paints every occupied, on-screen cell of a piece. Rows above
// the well (negative y) are clipped.
func (g *Game) drawPiece(dst *core.Screen, boardX, boardY int, p *Piece, r rune, c core.Color) {
	for dy, row := range p.Shape() {
		for dx, ch := range row {
			if ch != shapeFilled {
				continue
			}
			x := p.X + dx
			y := p.Y + dy
			if y < 0 || y >= g.board.Height() || x < 0 || x >= g.board.Width() {
				continue
			}
			g.drawCell(dst, boardX, boardY, x, y, r, c)
		}
	}
}

// renderSidebar draws session stats, the next-piece preview and toggles.
func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	theme := g.theme()

	dst.DrawTextColored(x, y, "NEOTRIS", theme.Accent)

	dst.DrawTextColored(x, y+2, fmt.Sprintf("Score  %d", g.score), theme.Text)
	dst.DrawTextColored(x, y+3, fmt.Sprintf("Level  %d", g.level), theme.Text)
	dst.DrawTextColored(x, y+4, fmt.Sprintf("Lines  %d", g.lines), theme.Text)
	dst.DrawTextColored(x, y+5, fmt.Sprintf("Speed  %dms", g.dropInterval/time.Millisecond), theme.Text)

	// Next piece preview
	dst.DrawTextColored(x, y+7, "Next", theme.Text)
	if g.next != nil {
		for dy, row := range g.next.Shape() {
			for dx, ch := range row {
				if ch != shapeFilled {
					continue
				}
				for i := 0; i < cellWidth; i++ {
					dst.SetCell(x+dx*cellWidth+i, y+8+dy, '█', g.next.Color)
				}
			}
		}
	}

	dst.DrawTextColored(x, y+13, fmt.Sprintf("Theme   %s", theme.Name), theme.Text)
	dst.DrawTextColored(x, y+14, fmt.Sprintf("Advisor %s", onOff(g.advisorOn)), theme.Text)
	dst.DrawTextColored(x, y+15, fmt.Sprintf("Ghost   %s", onOff(g.ghostOn)), theme.Text)

	help := []string{
		"←/→ move  ↓ drop",
		"↑ rotate  ⎵ slam",
		"a advisor g ghost",
		"t theme   p pause",
	}
	for i, line := range help {
		dst.DrawTextColored(x, y+17+i, line, core.ColorGray)
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// renderOverlay draws a centered two-line message box.
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

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
