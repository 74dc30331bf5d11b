package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var bannerFace text.Face

func ensureBannerFace() {
	if bannerFace != nil {
		return
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to parse banner font: %v", err)
	}
	bannerFace = &text.GoTextFace{Source: src, Size: 28}
}

// drawHUD renders the status panel in the top-left corner.
func (a *App) drawHUD(screen *ebiten.Image) {
	var status string
	switch a.view.State {
	case StateWon:
		status = fmt.Sprintf("player %s wins in %d moves", a.view.Winner, a.view.MoveCount)
	default:
		status = fmt.Sprintf("player %s to move  (move %d)", a.view.Turn, a.view.MoveCount+1)
	}

	lines := []string{
		status,
		fmt.Sprintf("zoom: %.2fx", a.vp.Zoom),
		"drag=pan  wheel=zoom  click=place",
		"[R] reset  [C] center  [T] copy  [H] hud",
	}
	if a.confirmReset {
		lines = append(lines, "discard this game? press R again")
	}

	// Debug-font metrics, same as the battlefield HUD panel this is
	// modelled on.
	const lineH = 14
	const charW = 6
	const padX = 6
	const padY = 5

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)

	vector.FillRect(screen, 4, 4, boxW, boxH, color.RGBA{R: 10, G: 12, B: 14, A: 215}, false)
	vector.StrokeRect(screen, 4, 4, boxW, boxH, 1.0, color.RGBA{R: 70, G: 76, B: 84, A: 180}, false)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 4+padX, 4+padY+i*lineH)
	}
}

// drawWinnerBanner renders the end-of-game banner across the window centre.
func (a *App) drawWinnerBanner(screen *ebiten.Image) {
	ensureBannerFace()

	msg := fmt.Sprintf("Player %s wins - press R for a new game", a.view.Winner)
	tw, th := text.Measure(msg, bannerFace, 0)

	w := float64(a.cfg.WindowWidth)
	h := float64(a.cfg.WindowHeight)
	bx := (w - tw) / 2
	by := h*0.18 - th/2

	pad := 16.0
	vector.FillRect(screen,
		float32(bx-pad), float32(by-pad/2),
		float32(tw+pad*2), float32(th+pad),
		color.RGBA{R: 10, G: 12, B: 14, A: 230}, false)
	vector.StrokeRect(screen,
		float32(bx-pad), float32(by-pad/2),
		float32(tw+pad*2), float32(th+pad),
		1.5, winLineColor, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(bx, by)
	winCol := crossColor
	if a.view.Winner == PlayerB {
		winCol = ringColor
	}
	op.ColorScale.ScaleWithColor(winCol)
	text.Draw(screen, msg, bannerFace, op)
}
