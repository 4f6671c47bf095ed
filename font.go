package meshwarp

import (
	"fmt"
	"math"
	"strings"

	etxtfont "github.com/tinne26/etxt/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTMeasurer measures text with golang.org/x/image/font/sfnt. Faces are
// resolved by family, bold and italic from an optional font library, and
// fall back to a default font when no library face matches.
type SFNTMeasurer struct {
	fallback *sfnt.Font
	library  *etxtfont.Library
	resolved map[faceKey]*sfnt.Font
	buf      sfnt.Buffer
}

type faceKey struct {
	family       string
	bold, italic bool
}

// NewSFNTMeasurer creates a measurer that uses f for every style.
func NewSFNTMeasurer(f *sfnt.Font) *SFNTMeasurer {
	return &SFNTMeasurer{fallback: f, resolved: make(map[faceKey]*sfnt.Font)}
}

// ParseSFNTMeasurer parses raw TTF/OTF data into a measurer.
func ParseSFNTMeasurer(ttfData []byte) (*SFNTMeasurer, error) {
	f, err := sfnt.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("meshwarp: failed to parse font data: %w", err)
	}
	return NewSFNTMeasurer(f), nil
}

// UseLibrary makes the measurer resolve FontStyle.Family against lib.
func (m *SFNTMeasurer) UseLibrary(lib *etxtfont.Library) {
	m.library = lib
	clear(m.resolved)
}

// MeasureString returns the advance width (with kerning) and the ascent plus
// descent of s at style.Size.
func (m *SFNTMeasurer) MeasureString(s string, style FontStyle) (width, height float64) {
	f := m.face(style)
	if f == nil || style.Size <= 0 {
		return 0, 0
	}
	ppem := fixed.Int26_6(math.Round(style.Size * 64))

	var adv fixed.Int26_6
	var prev sfnt.GlyphIndex
	hasPrev := false
	for _, r := range s {
		idx, err := f.GlyphIndex(&m.buf, r)
		if err != nil || idx == 0 {
			hasPrev = false
			continue
		}
		if hasPrev {
			if k, err := f.Kern(&m.buf, prev, idx, ppem, font.HintingNone); err == nil {
				adv += k
			}
		}
		a, err := f.GlyphAdvance(&m.buf, idx, ppem, font.HintingNone)
		if err == nil {
			adv += a
		}
		prev = idx
		hasPrev = true
	}

	metrics, err := f.Metrics(&m.buf, ppem, font.HintingNone)
	if err == nil {
		height = fixedToFloat(metrics.Ascent + metrics.Descent)
	}
	return fixedToFloat(adv), height
}

// face returns the library face best matching style, or the fallback.
func (m *SFNTMeasurer) face(style FontStyle) *sfnt.Font {
	if m.library == nil || style.Family == "" {
		return m.fallback
	}
	key := faceKey{strings.ToLower(style.Family), style.Bold, style.Italic}
	if f, ok := m.resolved[key]; ok {
		return f
	}

	best := m.fallback
	bestScore := -1
	_ = m.library.EachFont(func(_ string, f *sfnt.Font) error {
		family, err := etxtfont.GetFamily(f)
		if err != nil || strings.ToLower(family) != key.family {
			return nil
		}
		sub, _ := etxtfont.GetSubfamily(f)
		if score := styleScore(sub, style); score > bestScore {
			best, bestScore = f, score
		}
		return nil
	})
	m.resolved[key] = best
	return best
}

// styleScore ranks a subfamily name ("Regular", "Bold Italic", ...) against
// the requested weight and slant.
func styleScore(subfamily string, style FontStyle) int {
	sub := strings.ToLower(subfamily)
	isBold := strings.Contains(sub, "bold")
	isItalic := strings.Contains(sub, "italic") || strings.Contains(sub, "oblique")
	score := 0
	if isBold == style.Bold {
		score += 2
	}
	if isItalic == style.Italic {
		score++
	}
	return score
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
