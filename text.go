package meshwarp

import "unicode/utf8"

// FontStyle selects the face a text run is measured and drawn with.
type FontStyle struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Measurer is the interface for text measurement. Implementations return
// the advance width and line height of s set in style.
type Measurer interface {
	MeasureString(s string, style FontStyle) (width, height float64)
}

// TextObject is the host text run a warp is attached to. X and Y are the
// object center; Rotation is in radians.
type TextObject struct {
	Content       string
	Style         FontStyle
	X, Y          float64
	Rotation      float64
	LetterSpacing float64

	// Warp is the persisted mirror of the attached mesh, rewritten after
	// every lifecycle operation. nil when no warp is attached.
	Warp *Record

	mesh *meshState
}

// Position returns the object center.
func (t *TextObject) Position() Vec2 { return Vec2{t.X, t.Y} }

// HasWarp reports whether a live mesh is attached.
func (t *TextObject) HasWarp() bool { return t.mesh != nil }

// Grid returns the live mesh, or nil if none is attached.
func (t *TextObject) Grid() *Grid {
	if t.mesh == nil {
		return nil
	}
	return t.mesh.grid
}

// GridToWorld maps a grid-space point to world space by applying the
// object rotation about its center.
func (t *TextObject) GridToWorld(p Vec2) Vec2 {
	return rotateAbout(p, t.Position(), t.Rotation)
}

// WorldToGrid is the inverse of GridToWorld.
func (t *TextObject) WorldToGrid(p Vec2) Vec2 {
	return rotateAbout(p, t.Position(), -t.Rotation)
}

// --- Layout helpers ---

// glyphRun is the undistorted horizontal layout of a single line of text.
type glyphRun struct {
	chars    []rune
	advances []float64
	width    float64 // total width including letter spacing, may be negative
	height   float64
}

// layoutRun measures content glyph by glyph. Letter spacing is added between
// glyphs (not after the last one) and may be negative. The width is not
// clamped so the centered walk stays symmetric about the object center.
func layoutRun(m Measurer, content string, style FontStyle, spacing float64) glyphRun {
	run := glyphRun{
		chars:    make([]rune, 0, utf8.RuneCountInString(content)),
		advances: make([]float64, 0, utf8.RuneCountInString(content)),
	}
	if m == nil {
		return run
	}
	for _, r := range content {
		w, h := m.MeasureString(string(r), style)
		run.chars = append(run.chars, r)
		run.advances = append(run.advances, w)
		run.width += w
		if h > run.height {
			run.height = h
		}
	}
	if n := len(run.chars); n > 1 {
		run.width += spacing * float64(n-1)
	}
	if len(run.chars) == 0 {
		_, run.height = m.MeasureString(" ", style)
	}
	return run
}

// measureObject returns the visible width and height of obj's text.
func measureObject(m Measurer, obj *TextObject) (width, height float64) {
	run := layoutRun(m, obj.Content, obj.Style, obj.LetterSpacing)
	return max(run.width, 0), run.height
}
