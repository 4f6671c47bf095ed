package ebitenwarp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/meshwarp"
)

type faceKey struct {
	family       string
	bold, italic bool
}

type sizedKey struct {
	faceKey
	size float64
}

// Measurer measures and resolves faces with Ebitengine's text/v2. Sources
// are registered per family, weight and slant; styles with no registered
// source use the fallback.
type Measurer struct {
	fallback *text.GoTextFaceSource
	sources  map[faceKey]*text.GoTextFaceSource
	faces    map[sizedKey]*text.GoTextFace
}

// NewMeasurer creates a measurer whose fallback face is parsed from ttfData.
func NewMeasurer(ttfData []byte) (*Measurer, error) {
	source, err := parseSource(ttfData)
	if err != nil {
		return nil, err
	}
	return &Measurer{
		fallback: source,
		sources:  make(map[faceKey]*text.GoTextFaceSource),
		faces:    make(map[sizedKey]*text.GoTextFace),
	}, nil
}

func parseSource(ttfData []byte) (*text.GoTextFaceSource, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ebitenwarp: failed to parse TTF data: %w", err)
	}
	return source, nil
}

// AddFace registers a face for family with the given weight and slant.
func (m *Measurer) AddFace(family string, bold, italic bool, ttfData []byte) error {
	source, err := parseSource(ttfData)
	if err != nil {
		return err
	}
	m.sources[faceKey{strings.ToLower(family), bold, italic}] = source
	clear(m.faces)
	return nil
}

// HasItalic reports whether style resolves to a registered italic face.
// Renderers shear glyphs when it does not.
func (m *Measurer) HasItalic(style meshwarp.FontStyle) bool {
	_, ok := m.sources[keyOf(style)]
	return ok && style.Italic
}

func keyOf(style meshwarp.FontStyle) faceKey {
	return faceKey{strings.ToLower(style.Family), style.Bold, style.Italic}
}

func (m *Measurer) source(style meshwarp.FontStyle) *text.GoTextFaceSource {
	key := keyOf(style)
	if s, ok := m.sources[key]; ok {
		return s
	}
	// Drop the slant, then the weight.
	if s, ok := m.sources[faceKey{key.family, key.bold, false}]; ok {
		return s
	}
	if s, ok := m.sources[faceKey{key.family, false, false}]; ok {
		return s
	}
	return m.fallback
}

// Face returns the text/v2 face for style, cached per size.
func (m *Measurer) Face(style meshwarp.FontStyle) *text.GoTextFace {
	key := sizedKey{keyOf(style), style.Size}
	if f, ok := m.faces[key]; ok {
		return f
	}
	f := &text.GoTextFace{Source: m.source(style), Size: style.Size}
	m.faces[key] = f
	return f
}

// LineHeight returns the vertical distance between baselines for style.
func (m *Measurer) LineHeight(style meshwarp.FontStyle) float64 {
	metrics := m.Face(style).Metrics()
	return metrics.HAscent + metrics.HDescent + metrics.HLineGap
}

// MeasureString returns the width and height of s set in style.
func (m *Measurer) MeasureString(s string, style meshwarp.FontStyle) (width, height float64) {
	if style.Size <= 0 {
		return 0, 0
	}
	return text.Measure(s, m.Face(style), m.LineHeight(style))
}
