package meshwarp

import (
	"log/slog"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ResetTween eases the control points of a mesh back onto its reference
// lattice. Call Update(dt) each frame until Done. If the mesh is rebuilt or
// detached while animating, the tween stops without further writes.
//
// There is no global animation manager; hosts call Update themselves.
type ResetTween struct {
	engine *Engine
	obj    *TextObject
	grid   *Grid
	from   []Vec2 // start offsets from the grid origin
	tween  *gween.Tween
	Done   bool
}

// AnimateReset starts easing obj's mesh back to its undeformed lattice over
// duration seconds using fn (nil means linear). A non-positive duration
// resets immediately.
func (e *Engine) AnimateReset(obj *TextObject, duration float32, fn ease.TweenFunc) *ResetTween {
	if fn == nil {
		fn = ease.Linear
	}
	g := e.Grid(obj)
	from := make([]Vec2, len(g.points))
	for i, p := range g.points {
		from[i] = p.Sub(g.origin)
	}
	t := &ResetTween{engine: e, obj: obj, grid: g, from: from}
	if duration <= 0 || !g.HasCustomDistortion {
		t.finish()
		return t
	}
	t.tween = gween.New(0, 1, duration, fn)
	return t
}

// Update advances the tween by dt seconds and writes the interpolated points
// to the mesh.
func (t *ResetTween) Update(dt float32) {
	if t.Done {
		return
	}
	if t.obj.Grid() != t.grid {
		t.Done = true
		return
	}

	v, finished := t.tween.Update(dt)
	if finished {
		t.finish()
		return
	}
	k := float64(v)
	g := t.grid
	for i, ref := range g.reference {
		start := g.origin.Add(t.from[i])
		g.points[i] = Vec2{
			X: start.X + (ref.X-start.X)*k,
			Y: start.Y + (ref.Y-start.Y)*k,
		}
	}
	g.captureRelative()
	t.engine.commit(t.obj)
}

func (t *ResetTween) finish() {
	t.Done = true
	t.grid.Reset()
	t.engine.commit(t.obj)
	logger.Debug("meshwarp: reset", slog.Int("points", t.grid.Len()))
	t.engine.emit(WarpEvent{Type: EventReset, Object: t.obj, Index: -1})
}
