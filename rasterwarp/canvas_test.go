package rasterwarp

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/meshwarp"
)

func newTestMeasurer(t *testing.T) *Measurer {
	t.Helper()
	m, err := NewMeasurer(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestMeasurer(t *testing.T) {
	m := newTestMeasurer(t)
	w, h := m.MeasureString("HELLO", meshwarp.FontStyle{Size: 32})
	if w <= 0 || h <= 0 {
		t.Fatalf("MeasureString = %v x %v", w, h)
	}
	if w, h := m.MeasureString("HELLO", meshwarp.FontStyle{}); w != 0 || h != 0 {
		t.Errorf("zero size = %v x %v", w, h)
	}
	if _, err := NewMeasurer([]byte("junk")); err == nil {
		t.Error("NewMeasurer accepted invalid data")
	}
	if err := m.AddFace("Go", true, false, []byte("junk")); err == nil {
		t.Error("AddFace accepted invalid data")
	}
	if m.HasItalic(meshwarp.FontStyle{Italic: true}) {
		t.Error("italic reported without a registered face")
	}
}

func TestToMatrix(t *testing.T) {
	a := meshwarp.Affine{2, 0.5, -1, 3, 10, 20}
	m := toMatrix(a)
	p := meshwarp.Vec2{X: 4, Y: -7}
	want := a.Apply(p)
	got := m.TransformPoint(gg.Point{X: p.X, Y: p.Y})
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("gg point = %v, want %v", got, want)
	}
}

// inkedPixels counts pixels darker than mid grey.
func inkedPixels(cv *Canvas) int {
	img := cv.Image()
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r+g+bl < 3*0x8000 {
				n++
			}
		}
	}
	return n
}

func TestCanvasDrawsWarpedText(t *testing.T) {
	m := newTestMeasurer(t)
	cv := NewCanvas(256, 128, m)
	defer cv.Close()
	cv.Clear(meshwarp.ColorWhite)
	if n := inkedPixels(cv); n != 0 {
		t.Fatalf("cleared canvas has %d inked pixels", n)
	}

	e := meshwarp.NewEngine(m, meshwarp.DefaultConfig())
	obj := &meshwarp.TextObject{Content: "HELLO", Style: meshwarp.FontStyle{Size: 48}, X: 128, Y: 64}
	g := e.Grid(obj)
	g.SetPoint(0, g.Point(0, 0).Add(meshwarp.Vec2{X: -10, Y: -10}))

	black := meshwarp.Color{A: 1}
	n := meshwarp.NewGlyphPlacer(e, cv).Draw(obj, meshwarp.GlyphStyle{Fill: black})
	if n != 5 {
		t.Fatalf("drew %d glyphs, want 5", n)
	}
	inked := inkedPixels(cv)
	if inked == 0 {
		t.Fatal("no glyph pixels rendered")
	}

	// Ink stays near the text object.
	img := cv.Image()
	for y := 0; y < 128; y++ {
		for _, x := range []int{0, 1, 254, 255} {
			if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
				t.Fatalf("ink at canvas edge (%d, %d)", x, y)
			}
		}
	}

	g.ShowGrid = true
	cv.DrawGrid(obj, meshwarp.Dragging{Index: 0})
	if after := inkedPixels(cv); after < inked {
		t.Errorf("overlay removed ink: %d -> %d", inked, after)
	}

	var buf bytes.Buffer
	if err := cv.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 256 || decoded.Bounds().Dy() != 128 {
		t.Errorf("png bounds = %v", decoded.Bounds())
	}
}

func TestCanvasSkipsEmptyGlyphs(t *testing.T) {
	m := newTestMeasurer(t)
	cv := NewCanvas(64, 64, m)
	defer cv.Close()
	cv.Clear(meshwarp.ColorWhite)

	p := meshwarp.GlyphPlacement{Char: ' ', Font: meshwarp.FontStyle{Size: 32}, World: meshwarp.IdentityAffine}
	cv.DrawGlyph(p, meshwarp.GlyphStyle{Fill: meshwarp.Color{A: 1}})
	p.Char, p.Font.Size = 'A', 0
	cv.DrawGlyph(p, meshwarp.GlyphStyle{Fill: meshwarp.Color{A: 1}})
	if n := inkedPixels(cv); n != 0 {
		t.Errorf("%d pixels inked by empty glyphs", n)
	}
}
