package meshwarp

import "iter"

// --- Glyph styling ---

// Outline defines a glyph stroke rendered behind the fill.
type Outline struct {
	Color     Color
	Thickness float64
}

// Shadow defines a glyph drop shadow.
type Shadow struct {
	Color  Color
	Offset Vec2
}

// GlyphStyle is passed through to the GlyphRenderer untouched. The placer
// never interprets it.
type GlyphStyle struct {
	Fill    Color
	Outline *Outline
	Shadow  *Shadow
}

// --- Placement ---

// GlyphPlacement is where and how stretched one glyph is drawn.
type GlyphPlacement struct {
	Char  rune
	Index int // rune index in the text
	Font  FontStyle

	// Advance is the undistorted advance width of the glyph.
	Advance float64
	// Local places the glyph center inside the object's rotated frame.
	Local GlyphTransform
	// World is Translate(object) * Rotate(object) * Local.Matrix().
	World Affine
	// Warped is false when the mesh could not be evaluated and the glyph
	// sits at its undistorted position.
	Warped bool
}

// GlyphRenderer draws one glyph. Implementations apply the style's fill,
// outline and shadow with their own rules; the glyph origin is its center.
type GlyphRenderer interface {
	DrawGlyph(p GlyphPlacement, style GlyphStyle)
}

// GlyphPlacer walks the characters of a text object and derives each
// glyph's transform from the object's mesh.
type GlyphPlacer struct {
	engine   *Engine
	renderer GlyphRenderer
}

// NewGlyphPlacer creates a placer. r may be nil when only Place is used.
func NewGlyphPlacer(e *Engine, r GlyphRenderer) *GlyphPlacer {
	return &GlyphPlacer{engine: e, renderer: r}
}

// Place returns the glyph placements of obj, left to right. The mesh is
// created on first use. The layout is computed lazily as the sequence is
// ranged over, and the sequence can be ranged over only once; later ranges
// yield nothing.
func (p *GlyphPlacer) Place(obj *TextObject) iter.Seq[GlyphPlacement] {
	used := false
	return func(yield func(GlyphPlacement) bool) {
		if used {
			return
		}
		used = true

		g := p.engine.Grid(obj)
		run := layoutRun(p.engine.measurer, obj.Content, obj.Style, obj.LetterSpacing)
		frame := objectFrame(obj)
		origin := g.Origin()
		center := obj.Position()
		minScale := p.engine.config.MinScale

		x := -run.width / 2
		for i, r := range run.chars {
			adv := run.advances[i]
			charX := x + adv/2
			x += adv + obj.LetterSpacing

			local := IdentityGlyph(charX)
			s := g.evaluate(origin.Add(Vec2{X: charX}), minScale)
			if s.Valid {
				local = GlyphTransform{
					Translate: s.Position.Sub(center),
					ScaleX:    s.ScaleX,
					ScaleY:    s.ScaleY,
				}
			}

			gp := GlyphPlacement{
				Char:    r,
				Index:   i,
				Font:    obj.Style,
				Advance: adv,
				Local:   local,
				World:   frame.Multiply(local.Matrix()),
				Warped:  s.Valid,
			}
			if !yield(gp) {
				return
			}
		}
	}
}

// Draw places every glyph of obj and hands it to the renderer. Returns the
// number of glyphs drawn.
func (p *GlyphPlacer) Draw(obj *TextObject, style GlyphStyle) int {
	if p.renderer == nil {
		return 0
	}
	n := 0
	for gp := range p.Place(obj) {
		p.renderer.DrawGlyph(gp, style)
		n++
	}
	return n
}
