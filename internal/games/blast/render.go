package blast

import (
	"fmt"
	"math"

	platformcore "github.com/tuigames/blastgrid/internal/core"
	"github.com/tuigames/blastgrid/internal/games/blast/core"
)

const (
	cellWidth = 2 // Screen columns per board column
	hudHeight = 3 // Lines above the board
)

const (
	bombRune = '●'
	tileRune = '■'
)

// boardOrigin returns the screen position of the board's top-left border.
func (g *Game) boardOrigin() (int, int) {
	boardW := g.width*cellWidth + 2
	return (g.screenW - boardW) / 2, hudHeight
}

// cellAt maps a screen coordinate to a board cell, if it hits one.
func (g *Game) cellAt(sx, sy int) (int, int, bool) {
	ox, oy := g.boardOrigin()
	x := (sx - ox - 1) / cellWidth
	y := sy - oy - 1
	if sx <= ox || x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, 0, false
	}
	return x, y, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	ox, oy := g.boardOrigin()
	boardW := g.width*cellWidth + 2
	boardH := g.height + 2

	g.renderHUD(dst, ox, boardW)
	dst.DrawBox(platformcore.NewRect(ox, oy, boardW, boardH))
	g.renderCells(dst, ox, oy)
	g.renderParticles(dst, ox, oy)
	g.renderCursor(dst, ox, oy)
	g.renderOverlays(dst, ox, oy, boardW, boardH)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	dst.DrawTextCentered(g.screenH/2, "Window too small")
	dst.DrawTextCentered(g.screenH/2+1, "Please resize terminal")
}

// renderHUD draws the title, the chasing score counter and the mode line.
func (g *Game) renderHUD(dst *platformcore.Screen, ox, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	shown := g.scoreView.Frame()
	dst.DrawTextColored(ox, 1, fmt.Sprintf("Score: %d", shown), platformcore.ColorBrightYellow)

	var info string
	if g.mode == ModeHard {
		info = fmt.Sprintf("Lv %d  %s", g.hard.level, g.hard.elapsed())
	} else {
		info = fmt.Sprintf("Bombs: %d/%d", g.bombsRemoved, g.bombsLimit)
	}
	infoX := ox + boardW - len(info)
	if infoX < ox {
		infoX = ox
	}
	dst.DrawText(infoX, 1, info)
}

// renderCells draws the last sampled animation frame. Coordinates are
// fractional while cells slide or fall; they are rounded to the nearest
// screen cell. Fading cells drop through dimmer color tiers.
func (g *Game) renderCells(dst *platformcore.Screen, ox, oy int) {
	for _, cell := range g.frameCells {
		if cell.Opacity <= 0 {
			continue
		}
		sx := ox + 1 + int(math.Round(cell.X))*cellWidth
		sy := oy + 1 + int(math.Round(cell.Y))
		if sy <= oy || sy >= oy+g.height+1 {
			continue
		}
		dst.SetCell(sx, sy, cellRune(cell.Kind), cellColor(cell.Kind, cell.Opacity))
	}
}

func cellRune(kind core.Kind) rune {
	if kind == core.KindBomb {
		return bombRune
	}
	return tileRune
}

func cellColor(kind core.Kind, opacity float64) platformcore.Color {
	switch {
	case opacity > 0.75:
		if kind == core.KindBomb {
			return platformcore.ColorBrightRed
		}
		return platformcore.ColorBrightCyan
	case opacity > 0.35:
		if kind == core.KindBomb {
			return platformcore.ColorRed
		}
		return platformcore.ColorCyan
	default:
		return platformcore.ColorGray
	}
}

// renderParticles draws blast rings expanding around removed cells.
// Particles may overdraw cells but stay inside the board frame.
func (g *Game) renderParticles(dst *platformcore.Screen, ox, oy int) {
	for _, p := range g.board.Particles() {
		if p.Opacity <= 0 {
			continue
		}
		r := int(math.Round(p.Expansion))
		cx := ox + 1 + int(math.Round(p.X))*cellWidth
		cy := oy + 1 + int(math.Round(p.Y))

		if r == 0 {
			g.setParticle(dst, cx, cy, ox, oy, '*', p.Color)
			continue
		}
		for _, d := range [8][2]int{
			{-1, -1}, {0, -1}, {1, -1},
			{-1, 0}, {1, 0},
			{-1, 1}, {0, 1}, {1, 1},
		} {
			g.setParticle(dst, cx+d[0]*r*cellWidth, cy+d[1]*r, ox, oy, '·', p.Color)
		}
	}
}

func (g *Game) setParticle(dst *platformcore.Screen, sx, sy, ox, oy int, r rune, c platformcore.Color) {
	if sx <= ox || sx >= ox+g.width*cellWidth+1 || sy <= oy || sy >= oy+g.height+1 {
		return
	}
	dst.SetCell(sx, sy, r, c)
}

// renderCursor draws selection brackets around the cell under the cursor.
func (g *Game) renderCursor(dst *platformcore.Screen, ox, oy int) {
	sx := ox + 1 + g.cursorX*cellWidth
	sy := oy + 1 + g.cursorY
	dst.SetCell(sx-1, sy, '[', platformcore.ColorBrightWhite)
	dst.SetCell(sx+1, sy, ']', platformcore.ColorBrightWhite)
}

// renderOverlays draws the paused and game over banners.
func (g *Game) renderOverlays(dst *platformcore.Screen, ox, oy, boardW, boardH int) {
	center := oy + boardH/2

	if g.paused {
		dst.DrawTextCentered(center, "PAUSED")
		dst.DrawTextCentered(center+1, "Press P to resume")
		return
	}

	if g.isOver() && !g.board.IsAnimating() {
		if g.board.IsFilled() {
			dst.DrawTextColored(ox+(boardW-9)/2, center, "GAME OVER", platformcore.ColorBrightRed)
		} else {
			dst.DrawTextColored(ox+(boardW-8)/2, center, "YOU WIN!", platformcore.ColorBrightGreen)
		}
		dst.DrawTextCentered(center+1, "Press R to restart")
	}
}
