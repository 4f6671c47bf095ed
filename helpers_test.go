package meshwarp

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2, eps float64) {
	t.Helper()
	if !approxEqual(got.X, want.X, eps) || !approxEqual(got.Y, want.Y, eps) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// monoMeasurer gives every rune an advance of half the font size and a line
// height equal to the font size.
type monoMeasurer struct{}

func (monoMeasurer) MeasureString(s string, style FontStyle) (float64, float64) {
	n := 0
	for range s {
		n++
	}
	return float64(n) * style.Size * 0.5, style.Size
}

// eventLog records every event emitted by an engine.
type eventLog struct {
	events []WarpEvent
}

func (l *eventLog) EmitEvent(e WarpEvent) { l.events = append(l.events, e) }

func (l *eventLog) types() []EventType {
	out := make([]EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

func (l *eventLog) count(typ EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func newTestEngine() (*Engine, *eventLog) {
	e := NewEngine(monoMeasurer{}, DefaultConfig())
	log := &eventLog{}
	e.SetEventSink(log)
	return e, log
}

// hello returns the 100pt "HELLO" object centered on the origin. With
// monoMeasurer it is 250×100; the 4×5 lattice spans 270×120.
func hello() *TextObject {
	return &TextObject{Content: "HELLO", Style: FontStyle{Size: 100}}
}

func nan() float64 { return math.NaN() }
