package ebitenwarp

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/meshwarp"
)

// scrollAnim holds active scroll-to tweens for the view X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// View maps between screen and world space: pan and zoom around a viewport.
type View struct {
	// X and Y are the world-space position the view centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle the view renders into.
	Viewport meshwarp.Rect

	viewMatrix    meshwarp.Affine
	invViewMatrix meshwarp.Affine
	dirty         bool

	scrollTween *scrollAnim
}

// Zoom limits for ZoomAt.
const (
	MinZoom = 0.1
	MaxZoom = 16.0
)

// NewView creates a View centered on the viewport center at zoom 1.
func NewView(viewport meshwarp.Rect) *View {
	return &View{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// ScrollTo animates the view to center on (x, y) over duration seconds.
func (v *View) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.Y), float32(y), duration, easeFn),
	}
}

// Update advances an active scroll animation by dt seconds.
func (v *View) Update(dt float32) {
	st := v.scrollTween
	if st == nil {
		return
	}
	if !st.doneX {
		x, done := st.tweenX.Update(dt)
		v.X = float64(x)
		st.doneX = done
	}
	if !st.doneY {
		y, done := st.tweenY.Update(dt)
		v.Y = float64(y)
		st.doneY = done
	}
	if st.doneX && st.doneY {
		v.scrollTween = nil
	}
	v.dirty = true
}

// Pan moves the view by (dx, dy) screen pixels.
func (v *View) Pan(dx, dy float64) {
	v.X -= dx / v.Zoom
	v.Y -= dy / v.Zoom
	v.dirty = true
}

// ZoomAt multiplies the zoom by factor, keeping the world point under the
// screen position (sx, sy) fixed. The result is clamped to [MinZoom, MaxZoom].
func (v *View) ZoomAt(sx, sy, factor float64) {
	if factor <= 0 {
		return
	}
	wx, wy := v.ScreenToWorld(sx, sy)
	v.Zoom = math.Max(MinZoom, math.Min(MaxZoom, v.Zoom*factor))
	v.dirty = true
	nx, ny := v.ScreenToWorld(sx, sy)
	v.X += wx - nx
	v.Y += wy - ny
	v.dirty = true
}

// Matrix returns the world to screen matrix.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (v *View) Matrix() meshwarp.Affine {
	if !v.dirty {
		return v.viewMatrix
	}
	v.dirty = false

	cx := v.Viewport.X + v.Viewport.Width/2
	cy := v.Viewport.Y + v.Viewport.Height/2
	z := v.Zoom

	v.viewMatrix = meshwarp.Affine{z, 0, 0, z, cx - z*v.X, cy - z*v.Y}
	v.invViewMatrix = v.viewMatrix.Invert()
	return v.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *View) WorldToScreen(wx, wy float64) (sx, sy float64) {
	p := v.Matrix().Apply(meshwarp.Vec2{X: wx, Y: wy})
	return p.X, p.Y
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *View) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	v.Matrix()
	p := v.invViewMatrix.Apply(meshwarp.Vec2{X: sx, Y: sy})
	return p.X, p.Y
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// changing X, Y, Zoom or Viewport directly.
func (v *View) MarkDirty() {
	v.dirty = true
}
