package game

import "math"

// CellSize is the edge length of one board cell in screen pixels at zoom 1.
const CellSize = 48

// Zoom clamp range. The lower bound keeps cells large enough to hit with a
// pointer, the upper bound keeps drawing sane.
const (
	ZoomMin = 0.3
	ZoomMax = 2.0
)

// visibleMargin is the number of extra cell columns/rows materialized on
// every side of the screen rectangle, so cells exist for interaction just
// before they scroll into view.
const visibleMargin = 2

// Viewport maps the infinite board plane onto the window. OffsetX/OffsetY
// is the screen-pixel position of world origin (0,0) at the current zoom;
// world distances scale to screen distances by Zoom.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

func NewViewport() *Viewport {
	return &Viewport{Zoom: 1}
}

// cellPx is the on-screen edge length of one cell.
func (v *Viewport) cellPx() float64 {
	return CellSize * v.Zoom
}

// WorldToScreen returns the screen position of the top-left corner of cell c.
func (v *Viewport) WorldToScreen(c Coord) (float64, float64) {
	return v.OffsetX + float64(c.X)*v.cellPx(), v.OffsetY + float64(c.Y)*v.cellPx()
}

// ScreenToWorld returns the cell enclosing the screen point (px, py).
func (v *Viewport) ScreenToWorld(px, py float64) Coord {
	cp := v.cellPx()
	return Coord{
		X: int(math.Floor((px - v.OffsetX) / cp)),
		Y: int(math.Floor((py - v.OffsetY) / cp)),
	}
}

// VisibleRange returns the inclusive cell bounds intersecting a w x h
// screen rectangle, padded by visibleMargin on every side.
func (v *Viewport) VisibleRange(w, h float64) (minX, maxX, minY, maxY int) {
	cp := v.cellPx()
	minX = int(math.Floor(-v.OffsetX/cp)) - visibleMargin
	maxX = int(math.Ceil((w-v.OffsetX)/cp)) + visibleMargin
	minY = int(math.Floor(-v.OffsetY/cp)) - visibleMargin
	maxY = int(math.Ceil((h-v.OffsetY)/cp)) + visibleMargin
	return minX, maxX, minY, maxY
}

func clampZoom(z float64) float64 {
	if z < ZoomMin {
		return ZoomMin
	}
	if z > ZoomMax {
		return ZoomMax
	}
	return z
}

// ZoomAt sets the zoom to newZoom (clamped) while keeping the world point
// currently under the screen point (px, py) fixed in place.
func (v *Viewport) ZoomAt(px, py, newZoom float64) {
	newZoom = clampZoom(newZoom)
	// World position (in zoom-1 pixels) under the anchor point.
	wx := (px - v.OffsetX) / v.Zoom
	wy := (py - v.OffsetY) / v.Zoom
	v.Zoom = newZoom
	v.OffsetX = px - wx*newZoom
	v.OffsetY = py - wy*newZoom
}

// Pan translates the view by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// CenterOn centers the view on the occupied-cell bounding box [min, max]
// within a w x h window at the current zoom. When ok is false (empty
// board) the world origin is placed at the window center instead.
func (v *Viewport) CenterOn(min, max Coord, ok bool, w, h float64) {
	if !ok {
		v.OffsetX = w / 2
		v.OffsetY = h / 2
		return
	}
	// Midpoint of the bounding box in zoom-1 pixels. The +1 accounts for
	// cell (max.X, max.Y) spanning a full cell past its own origin.
	midX := (float64(min.X) + float64(max.X) + 1) / 2 * CellSize
	midY := (float64(min.Y) + float64(max.Y) + 1) / 2 * CellSize
	v.OffsetX = w/2 - midX*v.Zoom
	v.OffsetY = h/2 - midY*v.Zoom
}
