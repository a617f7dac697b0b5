package gridmatch

import (
	"fmt"

	"github.com/vovakirdan/gridmatch/internal/core"
	"github.com/vovakirdan/gridmatch/internal/games/gridmatch/board"
)

const (
	cellWidth    = 3 // Characters per board cell
	hudHeight    = 2
	footerHeight = 1
)

// Glyphs for each piece kind.
var kindGlyphs = map[board.Kind]rune{
	board.KindNormal:     '●',
	board.KindAreaClear:  '✚',
	board.KindColorClear: '✺',
}

// layout is the screen placement of the board frame.
type layout struct {
	frame   core.Rect // Border included
	columns int
	rows    int
}

func (g *Game) layout() layout {
	var columns, rows int
	if g.engine != nil && g.engine.Grid() != nil {
		columns, rows = g.engine.Grid().Dimensions()
	}
	w := columns*cellWidth + 2
	h := rows + 2
	return layout{
		frame:   core.NewRect((g.screenW-w)/2, hudHeight, w, h),
		columns: columns,
		rows:    rows,
	}
}

// inner returns the area covered by cells.
func (l layout) inner() core.Rect {
	return core.NewRect(l.frame.X+1, l.frame.Y+1, l.columns*cellWidth, l.rows)
}

// screenPos returns the left character of a cell. Row 0 is drawn at the bottom.
func (l layout) screenPos(c board.Coord) (int, int) {
	in := l.inner()
	return in.X + c.Column*cellWidth, in.Y + (l.rows - 1 - c.Row)
}

// cellAtScreen maps a pointer position to a board cell.
func (g *Game) cellAtScreen(x, y int) (board.Coord, bool) {
	l := g.layout()
	in := l.inner()
	if !in.Contains(x, y) {
		return board.Coord{}, false
	}
	return board.C((x-in.X)/cellWidth, l.rows-1-(y-in.Y)), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst, l)
	if g.engine != nil && g.engine.Grid() != nil {
		g.renderBoard(dst, l)
	}
	g.renderFooter(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	l := g.layout()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", l.frame.W, l.frame.H+hudHeight+footerHeight))
}

// renderHUD draws the title, score and clock.
func (g *Game) renderHUD(dst *core.Screen, l layout) {
	dst.DrawTextCenteredColor(0, g.Title(), core.ColorBrightWhite)

	left := fmt.Sprintf("Score: %d", g.score.total)
	dst.DrawTextColor(l.frame.X, 1, left, core.ColorBrightYellow)

	var right string
	color := core.ColorCyan
	if g.clock.enabled {
		right = fmt.Sprintf("Time: %4.1fs", g.clock.remaining)
		if g.clock.remaining < 10 {
			color = core.ColorBrightRed
		}
	} else {
		right = fmt.Sprintf("Moves: %d", g.moves)
	}
	x := l.frame.Right() - len(right)
	if x < l.frame.X+len(left)+1 {
		x = l.frame.X + len(left) + 1
	}
	dst.DrawTextColor(x, 1, right, color)
}

// renderBoard draws the frame and every cell.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	dst.DrawBox(l.frame, core.ColorGray)

	g.engine.Grid().Each(func(cell board.Cell) {
		if !cell.Alive {
			return
		}
		x, y := l.screenPos(cell.Position)
		color := core.ColorWhite
		if cell.Color >= 0 && cell.Color < len(g.colors) {
			color = g.colors[cell.Color]
		}
		glyph, ok := kindGlyphs[cell.Kind]
		if !ok {
			glyph = '?'
		}

		left, right := ' ', ' '
		if g.hint != nil && *g.hint == cell.Position {
			left, right = '[', ']'
		}
		reverse := cell.Position == g.cursor && !g.life.over
		dst.SetCell(x, y, core.Cell{Rune: left, Color: color, Reverse: reverse})
		dst.SetCell(x+1, y, core.Cell{Rune: glyph, Color: color, Reverse: reverse})
		dst.SetCell(x+2, y, core.Cell{Rune: right, Color: color, Reverse: reverse})
	})
}

// renderFooter draws key help under the board.
func (g *Game) renderFooter(dst *core.Screen, l layout) {
	help := "arrows move  enter pick  ? hint  p pause  q quit"
	if len(help) > g.screenW {
		help = "enter pick  ? hint  q quit"
	}
	dst.DrawTextCenteredColor(l.frame.Bottom(), help, core.ColorGray)
}

// renderOverlays draws pause and game over panels.
func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	switch {
	case g.life.over:
		title := "GAME OVER"
		var detail string
		switch g.reason {
		case EndTime:
			detail = "Time's up!"
		case EndDeadlock:
			detail = "No more moves"
		case EndFault:
			detail = "Board error"
		}
		lines := []string{title, detail, fmt.Sprintf("Final Score: %d", g.score.total), "R restart  B menu"}
		g.drawPanel(dst, l, lines, core.ColorBrightRed)
	case g.paused:
		g.drawPanel(dst, l, []string{"PAUSED", "P to resume"}, core.ColorBrightYellow)
	}
}

// drawPanel draws a bordered message box centered on the board.
func (g *Game) drawPanel(dst *core.Screen, l layout, lines []string, color core.Color) {
	w := 0
	for _, line := range lines {
		w = core.Max(w, len([]rune(line)))
	}
	w += 4
	h := len(lines) + 2
	r := l.frame.Centered(w, h)

	for y := r.Y; y < r.Bottom(); y++ {
		dst.DrawHLine(r.X, y, r.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(r, color)
	for i, line := range lines {
		x := r.X + (r.W-len([]rune(line)))/2
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		dst.DrawTextColor(x, r.Y+1+i, line, c)
	}
}
