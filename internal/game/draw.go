package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette.
var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 30, A: 255}
	gridColor       = color.RGBA{R: 48, G: 52, B: 58, A: 255}
	axisColor       = color.RGBA{R: 72, G: 78, B: 86, A: 255}
	crossColor      = color.RGBA{R: 235, G: 106, B: 80, A: 255} // player A
	ringColor       = color.RGBA{R: 86, G: 156, B: 235, A: 255} // player B
	winFillColor    = color.RGBA{R: 252, G: 211, B: 77, A: 50}
	winLineColor    = color.RGBA{R: 252, G: 211, B: 77, A: 220}
	hoverColor      = color.RGBA{R: 255, G: 255, B: 255, A: 48}
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w := float64(a.cfg.WindowWidth)
	h := float64(a.cfg.WindowHeight)
	minX, maxX, minY, maxY := a.vp.VisibleRange(w, h)

	a.drawGrid(screen, minX, maxX, minY, maxY)
	a.drawMarks(screen, minX, maxX, minY, maxY)
	a.drawWinningLine(screen)
	a.drawHover(screen)

	if a.showHUD {
		a.drawHUD(screen)
	}
	if a.view.State == StateWon {
		a.drawWinnerBanner(screen)
	}
}

// drawGrid strokes the cell lattice over the visible range. The two lines
// through the world origin are drawn brighter so there is a fixed landmark
// while panning an otherwise featureless plane.
func (a *App) drawGrid(screen *ebiten.Image, minX, maxX, minY, maxY int) {
	cp := a.vp.cellPx()
	left := float32(a.vp.OffsetX + float64(minX)*cp)
	right := float32(a.vp.OffsetX + float64(maxX+1)*cp)
	top := float32(a.vp.OffsetY + float64(minY)*cp)
	bottom := float32(a.vp.OffsetY + float64(maxY+1)*cp)

	for x := minX; x <= maxX+1; x++ {
		sx := float32(a.vp.OffsetX + float64(x)*cp)
		c := color.Color(gridColor)
		if x == 0 {
			c = axisColor
		}
		vector.StrokeLine(screen, sx, top, sx, bottom, 1.0, c, false)
	}
	for y := minY; y <= maxY+1; y++ {
		sy := float32(a.vp.OffsetY + float64(y)*cp)
		c := color.Color(gridColor)
		if y == 0 {
			c = axisColor
		}
		vector.StrokeLine(screen, left, sy, right, sy, 1.0, c, false)
	}
}

// drawMarks renders every mark inside the visible range: a cross for
// player A, a ring for player B.
func (a *App) drawMarks(screen *ebiten.Image, minX, maxX, minY, maxY int) {
	cp := a.vp.cellPx()
	lw := float32(3.0 * a.vp.Zoom)
	if lw < 1.5 {
		lw = 1.5
	}
	inset := cp * 0.28

	for cell, p := range a.view.Cells {
		if cell.X < minX || cell.X > maxX || cell.Y < minY || cell.Y > maxY {
			continue
		}
		sx, sy := a.vp.WorldToScreen(cell)
		switch p {
		case PlayerA:
			x0 := float32(sx + inset)
			y0 := float32(sy + inset)
			x1 := float32(sx + cp - inset)
			y1 := float32(sy + cp - inset)
			vector.StrokeLine(screen, x0, y0, x1, y1, lw, crossColor, true)
			vector.StrokeLine(screen, x0, y1, x1, y0, lw, crossColor, true)
		case PlayerB:
			cx := float32(sx + cp/2)
			cy := float32(sy + cp/2)
			r := float32(cp/2 - inset)
			vector.StrokeCircle(screen, cx, cy, r, lw, ringColor, true)
		}
	}
}

// drawWinningLine tints the five winning cells and strokes a line through
// their centers.
func (a *App) drawWinningLine(screen *ebiten.Image) {
	line := a.view.WinningLine
	if len(line) == 0 {
		return
	}
	cp := a.vp.cellPx()
	for _, cell := range line {
		sx, sy := a.vp.WorldToScreen(cell)
		vector.FillRect(screen, float32(sx), float32(sy), float32(cp), float32(cp), winFillColor, false)
	}
	fx, fy := a.vp.WorldToScreen(line[0])
	lx, ly := a.vp.WorldToScreen(line[len(line)-1])
	half := cp / 2
	vector.StrokeLine(screen,
		float32(fx+half), float32(fy+half),
		float32(lx+half), float32(ly+half),
		float32(4.0*a.vp.Zoom), winLineColor, true)
}

// drawHover outlines the empty cell under the cursor while the game is
// running and no pan is in progress.
func (a *App) drawHover(screen *ebiten.Image) {
	if a.view.State != StateInProgress || a.gestures.Dragging() {
		return
	}
	mx, my := ebiten.CursorPosition()
	cell := a.vp.ScreenToWorld(float64(mx), float64(my))
	if _, occupied := a.view.Cells[cell]; occupied {
		return
	}
	cp := a.vp.cellPx()
	sx, sy := a.vp.WorldToScreen(cell)
	vector.StrokeRect(screen, float32(sx)+1, float32(sy)+1, float32(cp)-2, float32(cp)-2, 1.5, hoverColor, false)
}
