package ebitenwarp

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/meshwarp"
)

// Overlay draws the lattice lines and control point handles of a mesh.
type Overlay struct {
	LineColor   color.Color
	HandleColor color.Color
	ActiveColor color.Color // handle being dragged
	LineWidth   float32
	// HandleRadius is in screen pixels regardless of zoom.
	HandleRadius float32
	View         *View
}

// NewOverlay returns an overlay with the default editor colors.
func NewOverlay(view *View) *Overlay {
	return &Overlay{
		LineColor:    color.RGBA{R: 0x40, G: 0xa0, B: 0xff, A: 0xc0},
		HandleColor:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		ActiveColor:  color.RGBA{R: 0xff, G: 0x80, B: 0x20, A: 0xff},
		LineWidth:    1,
		HandleRadius: 4,
		View:         view,
	}
}

// Draw renders obj's mesh when its ShowGrid flag is set. state highlights
// the dragged handle; pass meshwarp.Idle{} when obj is not being edited.
func (o *Overlay) Draw(dst *ebiten.Image, obj *meshwarp.TextObject, state meshwarp.DragState) {
	g := obj.Grid()
	if g == nil || !g.ShowGrid {
		return
	}
	for _, seg := range g.Segments() {
		x0, y0 := o.toScreen(obj, seg.From)
		x1, y1 := o.toScreen(obj, seg.To)
		vector.StrokeLine(dst, x0, y0, x1, y1, o.LineWidth, o.LineColor, true)
	}

	active := -1
	if d, ok := state.(meshwarp.Dragging); ok {
		active = d.Index
	}
	for i, p := range g.Points() {
		x, y := o.toScreen(obj, p)
		clr := o.HandleColor
		if i == active {
			clr = o.ActiveColor
		}
		vector.DrawFilledCircle(dst, x, y, o.HandleRadius, clr, true)
		vector.StrokeCircle(dst, x, y, o.HandleRadius, o.LineWidth, o.LineColor, true)
	}
}

func (o *Overlay) toScreen(obj *meshwarp.TextObject, p meshwarp.Vec2) (float32, float32) {
	w := obj.GridToWorld(p)
	if o.View == nil {
		return float32(w.X), float32(w.Y)
	}
	sx, sy := o.View.WorldToScreen(w.X, w.Y)
	return float32(sx), float32(sy)
}
