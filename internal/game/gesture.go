package game

// PointerID identifies one pointer (mouse button or touch) across the
// down/move/up events of a single gesture.
type PointerID int

// MousePointer is the pointer ID the shell uses for the mouse; touch IDs
// are non-negative so they never collide with it.
const MousePointer PointerID = -1

// dragThresholdPx is the cumulative movement (either axis) past which a
// gesture counts as a pan and no longer produces a click on release.
const dragThresholdPx = 3

// GestureTracker turns raw pointer events into pan deltas and clicks. Only
// one gesture is live at a time: a pointer-down while another pointer holds
// the token is ignored, which keeps a second finger from fighting the pan.
// Up or cancel events for pointers that never took the token are no-ops.
type GestureTracker struct {
	active   bool
	id       PointerID
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
}

// Begin starts a gesture for id at (x, y). It reports whether the pointer
// took the gesture token.
func (t *GestureTracker) Begin(id PointerID, x, y float64) bool {
	if t.active {
		return false
	}
	t.active = true
	t.id = id
	t.startX, t.startY = x, y
	t.lastX, t.lastY = x, y
	t.dragging = false
	return true
}

// Move advances the active gesture to (x, y) and returns the pan delta
// since the previous event. Once cumulative movement from the start point
// exceeds the drag threshold on either axis, the gesture is locked in as a
// pan. Moves for a pointer that does not hold the token return ok=false.
func (t *GestureTracker) Move(id PointerID, x, y float64) (dx, dy float64, ok bool) {
	if !t.active || t.id != id {
		return 0, 0, false
	}
	dx = x - t.lastX
	dy = y - t.lastY
	t.lastX, t.lastY = x, y
	if abs(x-t.startX) > dragThresholdPx || abs(y-t.startY) > dragThresholdPx {
		t.dragging = true
	}
	return dx, dy, true
}

// End finishes the gesture for id and releases the token. clicked is true
// only when the pointer held the token and never crossed the drag
// threshold; x and y are the pointer's last known position.
func (t *GestureTracker) End(id PointerID) (x, y float64, clicked bool) {
	if !t.active || t.id != id {
		return 0, 0, false
	}
	t.active = false
	return t.lastX, t.lastY, !t.dragging
}

// Cancel terminates the gesture for id without producing a click.
func (t *GestureTracker) Cancel(id PointerID) {
	if !t.active || t.id != id {
		return
	}
	t.active = false
}

// Active reports whether a gesture currently holds the token.
func (t *GestureTracker) Active() bool {
	return t.active
}

// Dragging reports whether the live gesture has been classified as a pan.
func (t *GestureTracker) Dragging() bool {
	return t.active && t.dragging
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
