package ebitenwarp

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/meshwarp"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func newTestView() *View {
	return NewView(meshwarp.Rect{Width: 800, Height: 600})
}

func TestNewViewIsIdentity(t *testing.T) {
	v := newTestView()
	if v.X != 400 || v.Y != 300 || v.Zoom != 1 {
		t.Fatalf("view = (%v, %v) zoom %v", v.X, v.Y, v.Zoom)
	}
	if got := v.Matrix(); got != meshwarp.IdentityAffine {
		t.Errorf("matrix = %v, want identity", got)
	}
	wx, wy := v.ScreenToWorld(123, 45)
	if !approx(wx, 123) || !approx(wy, 45) {
		t.Errorf("ScreenToWorld = (%v, %v)", wx, wy)
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := newTestView()
	v.X, v.Y, v.Zoom = 50, -20, 2.5
	v.MarkDirty()

	sx, sy := v.WorldToScreen(10, 30)
	wx, wy := v.ScreenToWorld(sx, sy)
	if !approx(wx, 10) || !approx(wy, 30) {
		t.Errorf("round trip = (%v, %v), want (10, 30)", wx, wy)
	}
	// The view center maps to the viewport center.
	cx, cy := v.WorldToScreen(50, -20)
	if !approx(cx, 400) || !approx(cy, 300) {
		t.Errorf("center = (%v, %v)", cx, cy)
	}
}

func TestViewPan(t *testing.T) {
	v := newTestView()
	v.Zoom = 2
	v.MarkDirty()
	v.Pan(20, -10)
	if !approx(v.X, 390) || !approx(v.Y, 305) {
		t.Errorf("pan = (%v, %v), want (390, 305)", v.X, v.Y)
	}
}

func TestViewZoomAt(t *testing.T) {
	v := newTestView()
	wx, wy := v.ScreenToWorld(100, 100)

	v.ZoomAt(100, 100, 2)
	if v.Zoom != 2 {
		t.Fatalf("zoom = %v", v.Zoom)
	}
	nx, ny := v.ScreenToWorld(100, 100)
	if !approx(nx, wx) || !approx(ny, wy) {
		t.Errorf("point under cursor moved from (%v, %v) to (%v, %v)", wx, wy, nx, ny)
	}

	v.ZoomAt(0, 0, 1000)
	if v.Zoom != MaxZoom {
		t.Errorf("zoom = %v, want clamp to %v", v.Zoom, MaxZoom)
	}
	v.ZoomAt(0, 0, 1e-6)
	if v.Zoom != MinZoom {
		t.Errorf("zoom = %v, want clamp to %v", v.Zoom, MinZoom)
	}
	v.ZoomAt(0, 0, -1)
	if v.Zoom != MinZoom {
		t.Error("negative factor changed the zoom")
	}
}

func TestViewScrollTo(t *testing.T) {
	v := newTestView()
	v.ScrollTo(0, 0, 1, ease.Linear)

	v.Update(0.5)
	if !approx(v.X, 200) || !approx(v.Y, 150) {
		t.Errorf("halfway = (%v, %v), want (200, 150)", v.X, v.Y)
	}
	v.Update(0.6)
	if v.X != 0 || v.Y != 0 {
		t.Errorf("end = (%v, %v), want (0, 0)", v.X, v.Y)
	}
	if v.scrollTween != nil {
		t.Error("scroll tween not cleared")
	}
	sx, _ := v.WorldToScreen(0, 0)
	if !approx(sx, 400) {
		t.Errorf("matrix not refreshed after scroll: sx = %v", sx)
	}
}
