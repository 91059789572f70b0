package crush

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/games/crush/engine"
)

const (
	cellWidth  = 4 // Screen columns per board column
	cellHeight = 2 // Screen rows per board row
	hudHeight  = 3
)

// tileColors maps tile types to screen colors.
var tileColors = map[engine.TileType]core.Color{
	engine.TypeA:        core.ColorBrightRed,
	engine.TypeB:        core.ColorBrightGreen,
	engine.TypeC:        core.ColorBrightYellow,
	engine.TypeD:        core.ColorBrightBlue,
	engine.TypeE:        core.ColorBrightMagenta,
	engine.TypeF:        core.ColorBrightCyan,
	engine.TypeWildcard: core.ColorBrightWhite,
}

// glyph returns the rune drawn for a tile status.
func glyph(s engine.Status) rune {
	switch s {
	case engine.StatusRowClear:
		return '═'
	case engine.StatusColumnClear:
		return '║'
	case engine.StatusAreaClear:
		return '✦'
	case engine.StatusColorBomb:
		return '◎'
	default:
		return '●'
	}
}

// boardRect returns the framed board area, centered below the HUD.
func (g *Game) boardRect() core.Rect {
	w := g.cfg.Board.Width*cellWidth + 1
	h := g.cfg.Board.Height*cellHeight + 1
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// minSize returns the smallest screen that fits the HUD, board and help line.
func (g *Game) minSize() (int, int) {
	r := g.boardRect()
	return max(r.W+2, len(g.Controls())), hudHeight + r.H + 1
}

// cellOrigin returns the screen position of the glyph for a board position.
func (g *Game) cellOrigin(col, row float64) (int, int) {
	r := g.boardRect()
	x := r.X + 2 + int(math.Round((col-1)*cellWidth))
	y := r.Y + 1 + int(math.Round((float64(g.cfg.Board.Height)-row)*cellHeight))
	return x, y
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(x, y int) (engine.Coord, bool) {
	r := g.boardRect()
	inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	if !inner.Contains(x, y) {
		return engine.Coord{}, false
	}
	col := (x-inner.X)/cellWidth + 1
	row := g.cfg.Board.Height - (y-inner.Y)/cellHeight
	if col < 1 || col > g.cfg.Board.Width || row < 1 || row > g.cfg.Board.Height {
		return engine.Coord{}, false
	}
	return engine.C(col, row), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	r := g.boardRect()
	g.renderHUD(dst, r)
	dst.DrawBox(r, core.ColorGray)

	if g.play != nil {
		g.renderPlayback(dst, r)
	} else {
		g.renderCells(dst)
	}

	g.renderOverlays(dst, r)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, r core.Rect) {
	title := g.Title()
	dst.DrawTextColor(r.X+(r.W-len(title))/2, 0, title, core.ColorBrightWhite)
	if best := max(g.best, g.score); best > 0 {
		s := fmt.Sprintf("Best %d", best)
		dst.DrawTextColor(max(r.Right()-len(s), r.X), 0, s, core.ColorGray)
	}

	dst.DrawText(r.X, 1, fmt.Sprintf("Score: %d", g.score))

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Lv %d  Target %d  Moves %d", g.level.Index+1, g.level.Target, g.movesLeft)
	} else {
		info = fmt.Sprintf("Best chain x%d", g.chain)
	}
	infoX := r.Right() - len(info)
	if infoX < r.X {
		infoX = r.X
	}
	dst.DrawText(infoX, 1, info)

	if g.message != "" {
		dst.DrawTextColor(r.X+(r.W-len(g.message))/2, 2, g.message, core.ColorOrange)
	} else if g.lastChain > 1 {
		chain := fmt.Sprintf("Chain x%d!", g.lastChain)
		dst.DrawTextColor(r.X+(r.W-len(chain))/2, 2, chain, core.ColorBrightYellow)
	}

	help := g.Controls()
	dst.DrawTextColor((g.screenW-len(help))/2, r.Bottom(), help, core.ColorGray)
}

// renderCells draws the settled board with cursor, selection and hint.
func (g *Game) renderCells(dst *core.Screen) {
	sel, hasSel := g.eng.Selection()

	for row := 1; row <= g.cells.Height; row++ {
		for col := 1; col <= g.cells.Width; col++ {
			c := engine.C(col, row)
			v := g.cells.At(c)
			if v.Type == engine.TypeNone {
				continue
			}
			x, y := g.cellOrigin(float64(col), float64(row))

			cell := core.Cell{Rune: glyph(v.Status), Color: tileColors[v.Type]}
			if hasSel && sel == c {
				cell.Attr |= core.AttrReverse
			}
			if g.hasHint && (g.hint[0] == c || g.hint[1] == c) && g.tick/15%2 == 0 {
				cell.Attr |= core.AttrBold
				dst.SetColor(x+1, y, '·', core.ColorBrightWhite)
			}
			dst.SetCell(x, y, cell)
		}
	}

	x, y := g.cellOrigin(float64(g.cursor.Col), float64(g.cursor.Row))
	dst.SetColor(x-1, y, '[', core.ColorBrightWhite)
	dst.SetColor(x+1, y, ']', core.ColorBrightWhite)
}

// renderPlayback draws the animated frame and effect flashes.
func (g *Game) renderPlayback(dst *core.Screen, r core.Rect) {
	inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)

	for _, s := range g.play.sprites() {
		x, y := g.cellOrigin(s.Col, s.Row)
		x += s.Shake
		if !inner.Contains(x, y) {
			continue
		}
		dst.SetColor(x, y, glyph(s.Status), tileColors[s.Type])
	}

	for _, ef := range g.play.flashes() {
		switch ef.Action {
		case engine.ActionClear:
			x, y := g.cellOrigin(float64(ef.Pos.Col), float64(ef.Pos.Row))
			dst.SetColor(x, y, '✶', core.ColorBrightWhite)
		case engine.ActionRowDetonate:
			_, y := g.cellOrigin(1, float64(ef.Pos.Row))
			for x := inner.X; x < inner.Right(); x++ {
				dst.SetColor(x, y, '─', core.ColorBrightYellow)
			}
		case engine.ActionColumnDetonate:
			x, _ := g.cellOrigin(float64(ef.Pos.Col), 1)
			for y := inner.Y; y < inner.Bottom(); y++ {
				dst.SetColor(x, y, '│', core.ColorBrightYellow)
			}
		case engine.ActionAreaDetonate:
			for dc := -2; dc <= 2; dc++ {
				for dr := -2; dr <= 2; dr++ {
					if absInt(dc)+absInt(dr) > 2 {
						continue
					}
					x, y := g.cellOrigin(float64(ef.Pos.Col+dc), float64(ef.Pos.Row+dr))
					if inner.Contains(x, y) {
						dst.SetColor(x, y, '+', core.ColorOrange)
					}
				}
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, r core.Rect) {
	centerX := r.X + r.W/2
	centerY := r.Y + r.H/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		head := fmt.Sprintf("Target %d reached!", g.level.Target)
		if g.level.Index >= len(g.cfg.Levels)-1 {
			g.drawOverlay(dst, centerX, centerY, head, "Final level complete!")
		} else {
			g.drawOverlay(dst, centerX, centerY, head, fmt.Sprintf("Next: Level %d", g.level.Index+2))
		}
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.gameOver:
		reason := "Out of moves"
		if g.mode == ModeEndless {
			reason = "No swaps left"
		}
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", reason, fmt.Sprintf("Best chain x%d", g.chain), "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Pick | ?: Hint | P: Pause | Q: Quit"
}
