package ebitenwarp

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/meshwarp"
)

// outlineOffsets are the eight directions an outline is stamped in.
var outlineOffsets = [8][2]float64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Renderer draws warped glyphs onto an Ebitengine image with text/v2.
// It implements meshwarp.GlyphRenderer.
type Renderer struct {
	Target   *ebiten.Image
	Measurer *Measurer
	// View maps world to screen. nil draws in world space.
	View *View
}

// NewRenderer creates a renderer drawing onto dst with faces from m.
func NewRenderer(dst *ebiten.Image, m *Measurer, view *View) *Renderer {
	return &Renderer{Target: dst, Measurer: m, View: view}
}

// DrawGlyph draws one glyph centered on its placement. The shadow is drawn
// first, then the outline, then the fill.
func (r *Renderer) DrawGlyph(p meshwarp.GlyphPlacement, style meshwarp.GlyphStyle) {
	if r.Target == nil || r.Measurer == nil || p.Font.Size <= 0 {
		return
	}
	face := r.Measurer.Face(p.Font)
	s := string(p.Char)

	m := p.World
	if p.Font.Italic && !r.Measurer.HasItalic(p.Font) {
		m = m.Multiply(meshwarp.ShearX(meshwarp.ItalicShear))
	}
	if r.View != nil {
		m = r.View.Matrix().Multiply(m)
	}

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = r.Measurer.LineHeight(p.Font)

	if sh := style.Shadow; sh != nil {
		r.draw(s, face, op, m, sh.Offset.X, sh.Offset.Y, sh.Color)
	}
	if ol := style.Outline; ol != nil && ol.Thickness > 0 {
		for _, d := range outlineOffsets {
			r.draw(s, face, op, m, d[0]*ol.Thickness, d[1]*ol.Thickness, ol.Color)
		}
	}
	r.draw(s, face, op, m, 0, 0, style.Fill)
}

// draw renders s with m, offset by (dx, dy) screen pixels.
func (r *Renderer) draw(s string, face text.Face, op *text.DrawOptions, m meshwarp.Affine, dx, dy float64, c meshwarp.Color) {
	op.GeoM = geoM(m)
	op.GeoM.Translate(dx, dy)
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	text.Draw(r.Target, s, face, op)
}

// geoM converts an affine [a, b, c, d, tx, ty] to an ebiten.GeoM.
func geoM(m meshwarp.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}
