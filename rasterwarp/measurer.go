package rasterwarp

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg/text"

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

// Measurer measures text with gg/text. Sources are registered per family,
// weight and slant; styles with no registered source use the fallback.
type Measurer struct {
	fallback *text.FontSource
	sources  map[faceKey]*text.FontSource
	faces    map[sizedKey]text.Face
}

// NewMeasurer creates a measurer whose fallback face is parsed from ttfData.
func NewMeasurer(ttfData []byte) (*Measurer, error) {
	source, err := text.NewFontSource(ttfData)
	if err != nil {
		return nil, fmt.Errorf("rasterwarp: failed to parse font data: %w", err)
	}
	return &Measurer{
		fallback: source,
		sources:  make(map[faceKey]*text.FontSource),
		faces:    make(map[sizedKey]text.Face),
	}, nil
}

// AddFace registers a face for family with the given weight and slant.
func (m *Measurer) AddFace(family string, bold, italic bool, ttfData []byte) error {
	source, err := text.NewFontSource(ttfData)
	if err != nil {
		return fmt.Errorf("rasterwarp: failed to parse font data: %w", err)
	}
	m.sources[faceKey{strings.ToLower(family), bold, italic}] = source
	clear(m.faces)
	return nil
}

// Close releases every font source.
func (m *Measurer) Close() error {
	for _, s := range m.sources {
		_ = s.Close()
	}
	return m.fallback.Close()
}

func keyOf(style meshwarp.FontStyle) faceKey {
	return faceKey{strings.ToLower(style.Family), style.Bold, style.Italic}
}

// HasItalic reports whether style resolves to a registered italic face.
func (m *Measurer) HasItalic(style meshwarp.FontStyle) bool {
	_, ok := m.sources[keyOf(style)]
	return ok && style.Italic
}

func (m *Measurer) source(style meshwarp.FontStyle) *text.FontSource {
	key := keyOf(style)
	if s, ok := m.sources[key]; ok {
		return s
	}
	if s, ok := m.sources[faceKey{key.family, key.bold, false}]; ok {
		return s
	}
	if s, ok := m.sources[faceKey{key.family, false, false}]; ok {
		return s
	}
	return m.fallback
}

// Face returns the gg face for style, cached per size.
func (m *Measurer) Face(style meshwarp.FontStyle) text.Face {
	key := sizedKey{keyOf(style), style.Size}
	if f, ok := m.faces[key]; ok {
		return f
	}
	f := m.source(style).Face(style.Size)
	m.faces[key] = f
	return f
}

// MeasureString returns the advance width and line height of s in style.
func (m *Measurer) MeasureString(s string, style meshwarp.FontStyle) (width, height float64) {
	if style.Size <= 0 {
		return 0, 0
	}
	return text.Measure(s, m.Face(style))
}
