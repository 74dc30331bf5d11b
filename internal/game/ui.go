package game

import (
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// wheelZoomStep is the multiplicative zoom change per wheel notch.
const wheelZoomStep = 1.12

// App is the ebiten shell around the session and viewport. It owns the raw
// input plumbing (mouse, touch, wheel, keys), feeds pointer events into the
// gesture tracker, and renders from session snapshots.
type App struct {
	cfg     *Config
	log     *slog.Logger
	session *Session
	view    View
	vp      *Viewport

	gestures    GestureTracker
	liveTouches map[ebiten.TouchID]bool
	touchIDs    []ebiten.TouchID // reused scratch buffer

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	showHUD      bool
	confirmReset bool
}

func NewApp(cfg *Config, logger *slog.Logger) *App {
	a := &App{
		cfg:         cfg,
		log:         logger,
		session:     NewSession(),
		vp:          NewViewport(),
		liveTouches: make(map[ebiten.TouchID]bool),
		prevKeys:    make(map[ebiten.Key]bool),
		showHUD:     true,
	}
	a.vp.Zoom = clampZoom(cfg.InitialZoom)
	a.vp.CenterOn(Coord{}, Coord{}, false, float64(cfg.WindowWidth), float64(cfg.WindowHeight))
	a.view = a.session.View()
	return a
}

func (a *App) Update() error {
	a.handleKeys()
	a.handleWheel()
	a.handleMouse()
	a.handleTouches()
	return nil
}

// handleKeys processes edge-triggered shortcuts.
func (a *App) handleKeys() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !a.prevKeys[k]
	}

	// R: reset. A running game with marks on the board asks for a second
	// press before throwing it away.
	if pressed(ebiten.KeyR) {
		if a.view.State == StateInProgress && a.view.MoveCount > 0 && !a.confirmReset {
			a.confirmReset = true
		} else {
			a.view = a.session.Reset()
			a.confirmReset = false
			a.log.Info("game reset")
		}
	}

	// C: center the view on the marks played so far.
	if pressed(ebiten.KeyC) {
		min, max, ok := a.session.Bounds()
		a.vp.CenterOn(min, max, ok, float64(a.cfg.WindowWidth), float64(a.cfg.WindowHeight))
	}

	// H: toggle the HUD panel.
	if pressed(ebiten.KeyH) {
		a.showHUD = !a.showHUD
	}

	// T: copy the move transcript to the clipboard.
	if pressed(ebiten.KeyT) {
		if err := a.session.CopyTranscript(); err != nil {
			a.log.Error("transcript copy failed", "error", err)
		} else {
			a.log.Info("transcript copied", "moves", a.view.MoveCount)
		}
	}

	a.prevKeys = currentKeys
}

// handleWheel zooms about the cursor so the cell under it stays put.
func (a *App) handleWheel() {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	cx, cy := ebiten.CursorPosition()
	a.vp.ZoomAt(float64(cx), float64(cy), a.vp.Zoom*math.Pow(wheelZoomStep, wy))
}

// handleMouse feeds the left button through the gesture tracker: press
// starts a gesture, movement pans, release places a mark unless the
// gesture turned into a pan.
func (a *App) handleMouse() {
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	switch {
	case down && !a.prevMouseLeft:
		a.gestures.Begin(MousePointer, x, y)
	case down && a.prevMouseLeft:
		if dx, dy, ok := a.gestures.Move(MousePointer, x, y); ok {
			a.vp.Pan(dx, dy)
		}
	case !down && a.prevMouseLeft:
		if px, py, clicked := a.gestures.End(MousePointer); clicked {
			a.placeAt(px, py)
		}
	}
	a.prevMouseLeft = down
}

// handleTouches mirrors handleMouse for touch input. The gesture token
// means a second finger while one is already panning is simply ignored.
func (a *App) handleTouches() {
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])

	for _, id := range a.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		x, y := float64(tx), float64(ty)
		if !a.liveTouches[id] {
			a.liveTouches[id] = true
			a.gestures.Begin(PointerID(id), x, y)
			continue
		}
		if dx, dy, ok := a.gestures.Move(PointerID(id), x, y); ok {
			a.vp.Pan(dx, dy)
		}
	}

	// Touches that disappeared this frame have been released.
	for id := range a.liveTouches {
		still := false
		for _, cur := range a.touchIDs {
			if cur == id {
				still = true
				break
			}
		}
		if still {
			continue
		}
		delete(a.liveTouches, id)
		if px, py, clicked := a.gestures.End(PointerID(id)); clicked {
			a.placeAt(px, py)
		}
	}
}

// placeAt resolves a click position to a cell and applies the move.
func (a *App) placeAt(px, py float64) {
	a.confirmReset = false
	cell := a.vp.ScreenToWorld(px, py)
	view, err := a.session.ApplyMove(cell)
	a.view = view
	switch {
	case err != nil:
		a.log.Debug("move rejected", "x", cell.X, "y", cell.Y, "reason", err)
	case view.State == StateWon:
		a.log.Info("five in a row", "winner", view.Winner.String(), "moves", view.MoveCount)
	default:
		a.log.Debug("move placed", "player", view.Turn.opponent().String(), "x", cell.X, "y", cell.Y)
	}
}

func (a *App) Layout(_, _ int) (int, int) {
	return a.cfg.WindowWidth, a.cfg.WindowHeight
}
