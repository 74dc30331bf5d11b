package game

import (
	"math"
	"testing"
)

func TestViewportWorldToScreen(t *testing.T) {
	v := &Viewport{OffsetX: 100, OffsetY: 50, Zoom: 1}
	px, py := v.WorldToScreen(Coord{2, -1})
	if px != 100+2*CellSize || py != 50-CellSize {
		t.Fatalf("got (%v,%v)", px, py)
	}

	v.Zoom = 0.5
	px, py = v.WorldToScreen(Coord{2, -1})
	if px != 100+2*CellSize*0.5 || py != 50-CellSize*0.5 {
		t.Fatalf("at zoom 0.5 got (%v,%v)", px, py)
	}
}

func TestViewportScreenToWorldRoundTrip(t *testing.T) {
	zooms := []float64{ZoomMin, 0.5, 1, 1.37, ZoomMax}
	coords := []Coord{{0, 0}, {3, 5}, {-4, 2}, {-9, -9}, {120, -73}}
	for _, z := range zooms {
		v := &Viewport{OffsetX: 33.5, OffsetY: -17.25, Zoom: z}
		for _, c := range coords {
			px, py := v.WorldToScreen(c)
			// Probe just inside the cell so floor lands in the right one.
			got := v.ScreenToWorld(px+1e-6, py+1e-6)
			if got != c {
				t.Fatalf("zoom %v: round trip of %v gave %v", z, c, got)
			}
			// The cell centre must resolve to the same cell as well.
			half := v.cellPx() / 2
			if got := v.ScreenToWorld(px+half, py+half); got != c {
				t.Fatalf("zoom %v: centre of %v resolved to %v", z, c, got)
			}
		}
	}
}

func TestViewportVisibleRange(t *testing.T) {
	// 480x480 window, origin at the window centre, zoom 1.
	v := &Viewport{OffsetX: 240, OffsetY: 240, Zoom: 1}
	minX, maxX, minY, maxY := v.VisibleRange(480, 480)
	if minX != -7 || maxX != 7 || minY != -7 || maxY != 7 {
		t.Fatalf("range = (%d..%d, %d..%d), want (-7..7, -7..7)", minX, maxX, minY, maxY)
	}
}

func TestViewportVisibleRangeCoversScreen(t *testing.T) {
	v := &Viewport{OffsetX: -123.4, OffsetY: 77.7, Zoom: 1.6}
	w, h := 800.0, 600.0
	minX, maxX, minY, maxY := v.VisibleRange(w, h)
	corners := [][2]float64{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}}
	for _, p := range corners {
		c := v.ScreenToWorld(p[0], p[1])
		if c.X < minX || c.X > maxX || c.Y < minY || c.Y > maxY {
			t.Fatalf("corner %v resolves to %v outside range (%d..%d, %d..%d)",
				p, c, minX, maxX, minY, maxY)
		}
	}
}

func TestViewportZoomAtKeepsCursorCellFixed(t *testing.T) {
	v := &Viewport{OffsetX: 240, OffsetY: 240, Zoom: 1}
	px, py := 123.0, 321.0
	before := v.ScreenToWorld(px, py)
	v.ZoomAt(px, py, 1.7)
	if v.Zoom != 1.7 {
		t.Fatalf("zoom = %v, want 1.7", v.Zoom)
	}
	after := v.ScreenToWorld(px, py)
	if before != after {
		t.Fatalf("cell under cursor changed: %v -> %v", before, after)
	}
	// And back down again.
	v.ZoomAt(px, py, 0.4)
	if got := v.ScreenToWorld(px, py); got != before {
		t.Fatalf("cell under cursor changed on zoom out: %v -> %v", before, got)
	}
}

func TestViewportZoomClamped(t *testing.T) {
	v := NewViewport()
	v.ZoomAt(0, 0, 100)
	if v.Zoom != ZoomMax {
		t.Fatalf("zoom = %v, want clamped to %v", v.Zoom, ZoomMax)
	}
	v.ZoomAt(0, 0, 0.0001)
	if v.Zoom != ZoomMin {
		t.Fatalf("zoom = %v, want clamped to %v", v.Zoom, ZoomMin)
	}
}

func TestViewportPan(t *testing.T) {
	v := &Viewport{OffsetX: 10, OffsetY: 20, Zoom: 1.3}
	v.Pan(-5, 12.5)
	if v.OffsetX != 5 || v.OffsetY != 32.5 {
		t.Fatalf("offset = (%v,%v), want (5,32.5)", v.OffsetX, v.OffsetY)
	}
	if v.Zoom != 1.3 {
		t.Fatalf("pan changed zoom to %v", v.Zoom)
	}
}

func TestViewportCenterOnEmptyBoard(t *testing.T) {
	v := NewViewport()
	v.CenterOn(Coord{}, Coord{}, false, 800, 600)
	if v.OffsetX != 400 || v.OffsetY != 300 {
		t.Fatalf("offset = (%v,%v), want (400,300)", v.OffsetX, v.OffsetY)
	}
	// Origin cell's top-left corner sits exactly at the window centre.
	px, py := v.WorldToScreen(Coord{0, 0})
	if px != 400 || py != 300 {
		t.Fatalf("origin drawn at (%v,%v)", px, py)
	}
}

func TestViewportCenterOnMarks(t *testing.T) {
	v := NewViewport()
	// Bounding box (0,0)..(4,0): midpoint is the centre of cell (2,0).
	v.CenterOn(Coord{0, 0}, Coord{4, 0}, true, 480, 480)
	cx, cy := v.WorldToScreen(Coord{2, 0})
	gotX := cx + v.cellPx()/2
	gotY := cy + v.cellPx()/2
	if math.Abs(gotX-240) > 1e-9 || math.Abs(gotY-240) > 1e-9 {
		t.Fatalf("centre cell midpoint at (%v,%v), want (240,240)", gotX, gotY)
	}
}
