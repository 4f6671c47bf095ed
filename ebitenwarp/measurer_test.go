package ebitenwarp

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/meshwarp"
)

func TestMeasurer(t *testing.T) {
	m, err := NewMeasurer(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	style := meshwarp.FontStyle{Size: 32}

	w, h := m.MeasureString("HELLO", style)
	if w <= 0 || h <= 0 {
		t.Fatalf("MeasureString = %v x %v", w, h)
	}
	if lh := m.LineHeight(style); lh < h {
		t.Errorf("line height %v is below the text height %v", lh, h)
	}
	if w2, _ := m.MeasureString("HELLO", meshwarp.FontStyle{Size: 64}); w2 <= w {
		t.Errorf("64pt width %v not wider than 32pt width %v", w2, w)
	}
	if w, h := m.MeasureString("HELLO", meshwarp.FontStyle{}); w != 0 || h != 0 {
		t.Errorf("zero size = %v x %v", w, h)
	}
	if m.Face(style) != m.Face(style) {
		t.Error("faces not cached per size")
	}
}

func TestNewMeasurerInvalid(t *testing.T) {
	if _, err := NewMeasurer([]byte("not a font")); err == nil {
		t.Error("expected an error for invalid font data")
	}
}

func TestMeasurerFaceResolution(t *testing.T) {
	m, err := NewMeasurer(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddFace("Go", true, false, gobold.TTF); err != nil {
		t.Fatal(err)
	}
	if err := m.AddFace("Go", false, true, goitalic.TTF); err != nil {
		t.Fatal(err)
	}
	if err := m.AddFace("Go", false, false, []byte("junk")); err == nil {
		t.Error("AddFace accepted invalid data")
	}

	bold := m.sources[faceKey{"go", true, false}]
	italic := m.sources[faceKey{"go", false, true}]

	tests := []struct {
		name  string
		style meshwarp.FontStyle
		want  any
	}{
		{"bold", meshwarp.FontStyle{Family: "Go", Bold: true}, bold},
		{"italic", meshwarp.FontStyle{Family: "GO", Italic: true}, italic},
		{"bold italic drops slant", meshwarp.FontStyle{Family: "Go", Bold: true, Italic: true}, bold},
		{"regular falls back", meshwarp.FontStyle{Family: "Go"}, m.fallback},
		{"unknown family", meshwarp.FontStyle{Family: "Nope", Bold: true}, m.fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.source(tt.style); any(got) != tt.want {
				t.Errorf("source(%+v) resolved to the wrong face", tt.style)
			}
		})
	}

	if !m.HasItalic(meshwarp.FontStyle{Family: "Go", Italic: true}) {
		t.Error("registered italic not reported")
	}
	if m.HasItalic(meshwarp.FontStyle{Family: "Go", Bold: true, Italic: true}) {
		t.Error("bold italic reported without a registered face")
	}
}
