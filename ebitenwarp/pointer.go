package ebitenwarp

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/meshwarp"
)

// wheelZoomStep is the zoom factor per wheel notch.
const wheelZoomStep = 1.1

// PointerSource polls the mouse each frame and feeds a Controller with
// world-space pointer events. The wheel zooms the view around the cursor.
type PointerSource struct {
	View *View

	pressed bool
	lastX   float64
	lastY   float64
}

// NewPointerSource creates a pointer source using view for screen to world
// conversion.
func NewPointerSource(view *View) *PointerSource {
	return &PointerSource{View: view}
}

// Update reads the mouse state and dispatches to c. Call it from
// ebiten.Game.Update.
func (p *PointerSource) Update(c *meshwarp.Controller) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	if _, wy := ebiten.Wheel(); wy != 0 && p.View != nil {
		factor := wheelZoomStep
		if wy < 0 {
			factor = 1 / wheelZoomStep
		}
		p.View.ZoomAt(sx, sy, factor)
	}
	p.process(c, sx, sy, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// process converts one frame of pointer state into controller calls.
func (p *PointerSource) process(c *meshwarp.Controller, sx, sy float64, pressed bool) {
	wx, wy := sx, sy
	if p.View != nil {
		wx, wy = p.View.ScreenToWorld(sx, sy)
		c.SetZoom(p.View.Zoom)
	}
	world := meshwarp.Vec2{X: wx, Y: wy}

	switch {
	case pressed && !p.pressed:
		c.PointerDown(world)
	case pressed && (sx != p.lastX || sy != p.lastY):
		c.PointerMove(world)
	case !pressed && p.pressed:
		c.PointerUp()
	}
	p.pressed = pressed
	p.lastX, p.lastY = sx, sy
}
