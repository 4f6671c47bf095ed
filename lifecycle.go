package meshwarp

import (
	"log/slog"
	"math"
)

// meshState is the live warp attached to a TextObject.
type meshState struct {
	grid     *Grid
	snapshot TextSnapshot
}

// Engine builds, rescales and restores the meshes attached to text objects.
// All calls are synchronous and must happen on the thread that owns the
// objects.
type Engine struct {
	measurer Measurer
	config   Config
	sink     EventSink
	debug    bool
}

// NewEngine creates an engine that measures text with m. Zero fields in
// cfg take their defaults.
func NewEngine(m Measurer, cfg Config) *Engine {
	return &Engine{measurer: m, config: cfg.withDefaults()}
}

// Config returns the engine configuration with defaults applied.
func (e *Engine) Config() Config { return e.config }

// Measurer returns the text measurer.
func (e *Engine) Measurer() Measurer { return e.measurer }

// SetEventSink sets the optional event forwarder. nil disables forwarding.
func (e *Engine) SetEventSink(sink EventSink) { e.sink = sink }

// SetDebugMode enables or disables debug mode. When enabled, the lattice
// invariant is checked after every lifecycle operation and a violation panics.
func (e *Engine) SetDebugMode(enabled bool) { e.debug = enabled }

// Grid returns obj's mesh, creating it on first use with the configured
// lattice size. A live mesh keeps its own size.
func (e *Engine) Grid(obj *TextObject) *Grid {
	rows, cols := e.latticeSize(obj)
	return e.EnsureGrid(obj, rows, cols, false)
}

// Reset discards any distortion on obj and rebuilds its mesh.
func (e *Engine) Reset(obj *TextObject) *Grid {
	rows, cols := e.latticeSize(obj)
	return e.EnsureGrid(obj, rows, cols, true)
}

// latticeSize returns the size of obj's live mesh, or the configured size
// when none is attached or the attached one is broken.
func (e *Engine) latticeSize(obj *TextObject) (rows, cols int) {
	if g := obj.Grid(); g != nil && g.rows >= 2 && g.cols >= 2 {
		return g.rows, g.cols
	}
	return e.config.Rows, e.config.Cols
}

// Detach removes the warp from obj, including its persisted record.
func (e *Engine) Detach(obj *TextObject) {
	if obj.mesh == nil && obj.Warp == nil {
		return
	}
	obj.mesh = nil
	obj.Warp = nil
	logger.Debug("meshwarp: detach", slog.String("text", obj.Content))
	e.emit(WarpEvent{Type: EventDetach, Object: obj, Index: -1})
}

// SetShowGrid toggles the overlay flag of obj's mesh.
func (e *Engine) SetShowGrid(obj *TextObject, show bool) {
	g := e.Grid(obj)
	g.ShowGrid = show
	e.commit(obj)
}

// EnsureGrid returns obj's mesh, bringing it in line with the current text:
//
//   - no mesh yet: restore from obj.Warp when the record is restorable,
//     otherwise build one
//   - forceReset, a lattice size change or a broken lattice: rebuild
//   - object moved: translate the lattice with it
//   - text changed without custom distortion: rebuild
//   - text changed with custom distortion: rescale, keeping the shape
//
// The resulting state is written back to obj.Warp.
func (e *Engine) EnsureGrid(obj *TextObject, rows, cols int, forceReset bool) *Grid {
	if obj.mesh == nil && !forceReset && obj.Warp != nil {
		e.restore(obj, rows, cols)
	}

	st := obj.mesh
	if st == nil || forceReset || st.grid.rows != rows || st.grid.cols != cols || !st.grid.valid() {
		return e.rebuild(obj, rows, cols)
	}

	g := st.grid
	if pos := obj.Position(); pos != g.origin {
		d := pos.Sub(g.origin)
		g.translate(d)
		logger.Debug("meshwarp: translate", slog.Float64("dx", d.X), slog.Float64("dy", d.Y))
	}

	snap := e.snapshot(obj)
	if !snapshotChanged(st.snapshot, snap) {
		e.commit(obj)
		return g
	}
	if !g.HasCustomDistortion {
		return e.rebuild(obj, rows, cols)
	}
	return e.rescale(obj, snap)
}

// restore installs the mesh stored in obj.Warp. A refused record leaves
// obj without a mesh so the caller rebuilds.
func (e *Engine) restore(obj *TextObject, rows, cols int) {
	rec := obj.Warp
	if err := rec.Validate(); err != nil {
		logger.Warn("meshwarp: record refused", slog.String("reason", err.Error()))
		return
	}
	if rec.Rows != rows || rec.Cols != cols {
		logger.Warn("meshwarp: record refused",
			slog.String("reason", "lattice size mismatch"),
			slog.Int("rows", rec.Rows), slog.Int("cols", rec.Cols))
		return
	}
	g := FromRecord(rec, obj.Position())
	if g == nil {
		return
	}
	snap := e.snapshot(obj)
	if rec.Text != nil && rec.Text.Width > 0 && rec.Text.Height > 0 {
		snap = *rec.Text
	}
	obj.mesh = &meshState{grid: g, snapshot: snap}
	logger.Debug("meshwarp: restore", slog.Int("points", g.Len()))
	e.debugCheck(g, "restore")
	e.emit(WarpEvent{Type: EventRestore, Object: obj, Index: -1})
}

// rebuild regenerates an undeformed lattice from the current text metrics.
func (e *Engine) rebuild(obj *TextObject, rows, cols int) *Grid {
	snap := e.snapshot(obj)
	g := NewGrid(rows, cols, obj.Position(), e.boundsFor(snap, obj.Style.Size))
	if obj.mesh != nil {
		g.ShowGrid = obj.mesh.grid.ShowGrid
	} else if obj.Warp != nil {
		g.ShowGrid = obj.Warp.ShowGrid
	}
	obj.mesh = &meshState{grid: g, snapshot: snap}
	logger.Debug("meshwarp: rebuild",
		slog.Int("rows", rows), slog.Int("cols", cols),
		slog.Float64("width", snap.Width), slog.Float64("height", snap.Height))
	e.debugCheck(g, "rebuild")
	e.commit(obj)
	e.emit(WarpEvent{Type: EventRebuild, Object: obj, Index: -1})
	return g
}

// rescale re-targets a distorted lattice to the text dimensions in snap.
// Relative points are preferred; the incremental scale path is used only
// when none were captured. A lattice that drifts past the limit is rebuilt.
func (e *Engine) rescale(obj *TextObject, snap TextSnapshot) *Grid {
	st := obj.mesh
	g := st.grid
	old := st.snapshot

	if len(g.relative) == g.Len() {
		g.layout(g.origin, e.boundsFor(snap, obj.Style.Size))
		g.applyRelative()
	} else {
		sx := ratio(snap.Width, old.Width)
		sy := ratio(snap.Height, old.Height)
		scale := func(p Vec2) Vec2 {
			return g.origin.Add(p.Sub(g.origin).Scale(sx, sy))
		}
		for i := range g.points {
			g.points[i] = scale(g.points[i])
			g.reference[i] = scale(g.reference[i])
		}
		b := g.bounds
		g.bounds = Rect{X: b.X * sx, Y: b.Y * sy, Width: b.Width * sx, Height: b.Height * sy}
	}

	if m := g.maxMagnitude(); m > e.config.DriftLimit {
		logger.Warn("meshwarp: drift limit exceeded, rebuilding",
			slog.Float64("magnitude", m), slog.Float64("limit", e.config.DriftLimit))
		return e.rebuild(obj, g.rows, g.cols)
	}

	st.snapshot = snap
	logger.Debug("meshwarp: rescale",
		slog.Float64("width", snap.Width), slog.Float64("height", snap.Height),
		slog.Bool("relative", len(g.relative) > 0))
	e.debugCheck(g, "rescale")
	e.commit(obj)
	e.emit(WarpEvent{Type: EventRescale, Object: obj, Index: -1})
	return g
}

// boundsFor returns the lattice rect centered on the object origin with
// padding proportional to the font size.
func (e *Engine) boundsFor(snap TextSnapshot, fontSize float64) Rect {
	pad := math.Max(fontSize, 0) * e.config.PaddingRatio
	w := snap.Width + 2*pad
	h := snap.Height + 2*pad
	return Rect{X: -w / 2, Y: -h / 2, Width: w, Height: h}
}

// snapshot measures obj's current text.
func (e *Engine) snapshot(obj *TextObject) TextSnapshot {
	w, h := measureObject(e.measurer, obj)
	return TextSnapshot{Content: obj.Content, FontSize: obj.Style.Size, Width: w, Height: h}
}

// commit writes obj's live mesh to obj.Warp.
func (e *Engine) commit(obj *TextObject) {
	st := obj.mesh
	if st == nil {
		return
	}
	rec := ToRecord(st.grid)
	snap := st.snapshot
	rec.Text = &snap
	obj.Warp = rec
}

func (e *Engine) emit(ev WarpEvent) {
	if e.sink != nil {
		e.sink.EmitEvent(ev)
	}
}

const snapshotEpsilon = 1e-9

func snapshotChanged(a, b TextSnapshot) bool {
	return a.Content != b.Content || a.FontSize != b.FontSize ||
		math.Abs(a.Width-b.Width) > snapshotEpsilon || math.Abs(a.Height-b.Height) > snapshotEpsilon
}

// ratio returns to/from, or 1 when the ratio is not usable.
func ratio(to, from float64) float64 {
	r := to / from
	if !finite(r) || r <= 0 {
		return 1
	}
	return r
}
