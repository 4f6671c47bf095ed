package rasterwarp

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/phanxgames/meshwarp"
)

// Canvas renders warped glyphs and grid overlays on the CPU with gg. It
// implements meshwarp.GlyphRenderer.
type Canvas struct {
	ctx       *gg.Context
	measurer  *Measurer
	extractor *text.OutlineExtractor

	// View maps world to canvas pixels. The zero value is treated as identity.
	View meshwarp.Affine

	// Overlay style.
	LineColor    meshwarp.Color
	HandleColor  meshwarp.Color
	HandleRadius float64
}

// NewCanvas creates a width×height canvas drawing glyphs from m.
func NewCanvas(width, height int, m *Measurer) *Canvas {
	return &Canvas{
		ctx:          gg.NewContext(width, height),
		measurer:     m,
		extractor:    text.NewOutlineExtractor(),
		View:         meshwarp.IdentityAffine,
		LineColor:    meshwarp.Color{R: 0.25, G: 0.63, B: 1, A: 0.75},
		HandleColor:  meshwarp.Color{R: 1, G: 0.5, B: 0.12, A: 1},
		HandleRadius: 4,
	}
}

// Clear fills the canvas with c.
func (cv *Canvas) Clear(c meshwarp.Color) {
	cv.ctx.ClearWithColor(gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (cv *Canvas) view() meshwarp.Affine {
	if cv.View == (meshwarp.Affine{}) {
		return meshwarp.IdentityAffine
	}
	return cv.View
}

// DrawGlyph fills the outline of one glyph centered on its placement. The
// shadow is drawn first, then the outline stroke, then the fill.
func (cv *Canvas) DrawGlyph(p meshwarp.GlyphPlacement, style meshwarp.GlyphStyle) {
	if cv.measurer == nil || p.Font.Size <= 0 {
		return
	}
	face := cv.measurer.Face(p.Font)
	parsed := face.Source().Parsed()
	gid := parsed.GlyphIndex(p.Char)
	if gid == 0 {
		return
	}
	outline, err := cv.extractor.ExtractOutline(parsed, text.GlyphID(gid), p.Font.Size)
	if err != nil {
		meshwarp.Logger().Debug("rasterwarp: glyph outline unavailable",
			slog.String("char", string(p.Char)), slog.String("err", err.Error()))
		return
	}
	if outline == nil || outline.IsEmpty() {
		return
	}

	// The outline origin is the left baseline; move it so the glyph's
	// advance box is centered on (0, 0).
	metrics := face.Metrics()
	ox := -p.Advance / 2
	oy := (metrics.Ascent - metrics.Descent) / 2

	m := p.World
	if p.Font.Italic && !cv.measurer.HasItalic(p.Font) {
		m = m.Multiply(meshwarp.ShearX(meshwarp.ItalicShear))
	}
	m = cv.view().Multiply(m)

	if sh := style.Shadow; sh != nil {
		shifted := m
		shifted[4] += sh.Offset.X
		shifted[5] += sh.Offset.Y
		cv.tracePath(shifted, outline, ox, oy)
		cv.setColor(sh.Color)
		cv.fill()
	}
	if ol := style.Outline; ol != nil && ol.Thickness > 0 {
		cv.tracePath(m, outline, ox, oy)
		cv.setColor(ol.Color)
		cv.ctx.SetLineWidth(ol.Thickness * 2)
		cv.stroke()
	}
	cv.tracePath(m, outline, ox, oy)
	cv.setColor(style.Fill)
	cv.fill()
}

// tracePath appends outline to the current path under m.
func (cv *Canvas) tracePath(m meshwarp.Affine, outline *text.GlyphOutline, ox, oy float64) {
	ctx := cv.ctx
	ctx.Push()
	ctx.SetTransform(toMatrix(m))
	ctx.ClearPath()
	pt := func(p text.OutlinePoint) (float64, float64) {
		return float64(p.X) + ox, float64(p.Y) + oy
	}
	open := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				ctx.ClosePath()
			}
			ctx.MoveTo(pt(seg.Points[0]))
			open = true
		case text.OutlineOpLineTo:
			ctx.LineTo(pt(seg.Points[0]))
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			x, y := pt(seg.Points[1])
			ctx.QuadraticTo(cx, cy, x, y)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			x, y := pt(seg.Points[2])
			ctx.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		ctx.ClosePath()
	}
	ctx.Pop()
}

// DrawGrid draws obj's lattice and handles when its ShowGrid flag is set.
// The handle of state's dragged point, if any, is drawn larger.
func (cv *Canvas) DrawGrid(obj *meshwarp.TextObject, state meshwarp.DragState) {
	g := obj.Grid()
	if g == nil || !g.ShowGrid {
		return
	}
	ctx := cv.ctx
	v := cv.view()
	screen := func(p meshwarp.Vec2) meshwarp.Vec2 {
		return v.Apply(obj.GridToWorld(p))
	}

	ctx.SetLineWidth(1)
	cv.setColor(cv.LineColor)
	for _, seg := range g.Segments() {
		a, b := screen(seg.From), screen(seg.To)
		ctx.DrawLine(a.X, a.Y, b.X, b.Y)
		cv.stroke()
	}

	active := -1
	if d, ok := state.(meshwarp.Dragging); ok {
		active = d.Index
	}
	cv.setColor(cv.HandleColor)
	for i, p := range g.Points() {
		s := screen(p)
		r := cv.HandleRadius
		if i == active {
			r *= 1.5
		}
		ctx.DrawCircle(s.X, s.Y, r)
		cv.fill()
	}
}

func (cv *Canvas) setColor(c meshwarp.Color) {
	cv.ctx.SetRGBA(c.R, c.G, c.B, c.A)
}

func (cv *Canvas) fill() {
	if err := cv.ctx.Fill(); err != nil {
		meshwarp.Logger().Warn("rasterwarp: fill failed", slog.String("err", err.Error()))
	}
}

func (cv *Canvas) stroke() {
	if err := cv.ctx.Stroke(); err != nil {
		meshwarp.Logger().Warn("rasterwarp: stroke failed", slog.String("err", err.Error()))
	}
}

// Image returns the rendered image.
func (cv *Canvas) Image() image.Image {
	return cv.ctx.Image()
}

// EncodePNG writes the canvas to w as PNG.
func (cv *Canvas) EncodePNG(w io.Writer) error {
	if err := cv.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("rasterwarp: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path as PNG.
func (cv *Canvas) SavePNG(path string) error {
	if err := cv.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("rasterwarp: save png: %w", err)
	}
	return nil
}

// Close releases the drawing context.
func (cv *Canvas) Close() error {
	return cv.ctx.Close()
}

// toMatrix converts an affine [a, b, c, d, tx, ty] to a gg.Matrix.
func toMatrix(m meshwarp.Affine) gg.Matrix {
	return gg.Matrix{A: m[0], B: m[2], C: m[4], D: m[1], E: m[3], F: m[5]}
}
