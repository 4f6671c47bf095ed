package meshwarp

import "math"

// WarpSample is the result of evaluating the mesh at one point.
type WarpSample struct {
	Position       Vec2
	ScaleX, ScaleY float64
	// Valid is false when the grid was not initialised and the sample is
	// the identity fallback.
	Valid bool
}

// Evaluate maps p (grid space) to its warped position and the local
// anisotropic scale of the cell containing it. Points outside the grid are
// clamped to the nearest edge cell. An uninitialised grid returns p
// unchanged with unit scale.
//
// Scales are clamped to DefaultMinScale. Use [Engine.Evaluate] to sample with
// the engine's configured MinScale, as glyph placement does.
func (g *Grid) Evaluate(p Vec2) WarpSample {
	return g.evaluate(p, DefaultMinScale)
}

// Evaluate samples obj's mesh at p (grid space) with the configured
// MinScale. The mesh is created on first use.
func (e *Engine) Evaluate(obj *TextObject, p Vec2) WarpSample {
	return e.Grid(obj).evaluate(p, e.config.MinScale)
}

func (g *Grid) evaluate(p Vec2, minScale float64) WarpSample {
	identity := WarpSample{Position: p, ScaleX: 1, ScaleY: 1}
	if g == nil || !g.valid() {
		return identity
	}

	wb := g.WorldBounds()
	u := normalize(p.X, wb.X, wb.Width)
	v := normalize(p.Y, wb.Y, wb.Height)

	col := u * float64(g.cols-1)
	row := v * float64(g.rows-1)
	// The far edge belongs to the last cell so that its scale is measured
	// against a real cell instead of a zero-length edge.
	c0 := min(int(math.Floor(col)), g.cols-2)
	r0 := min(int(math.Floor(row)), g.rows-2)
	c1 := c0 + 1
	r1 := r0 + 1
	fu := col - float64(c0)
	fv := row - float64(r0)

	i00 := r0*g.cols + c0
	i10 := r0*g.cols + c1
	i01 := r1*g.cols + c0
	i11 := r1*g.cols + c1

	p00, p10, p01, p11 := g.points[i00], g.points[i10], g.points[i01], g.points[i11]
	q00, q10, q01, q11 := g.reference[i00], g.reference[i10], g.reference[i01], g.reference[i11]

	w00 := (1 - fu) * (1 - fv)
	w10 := fu * (1 - fv)
	w01 := (1 - fu) * fv
	w11 := fu * fv
	pos := Vec2{
		X: p00.X*w00 + p10.X*w10 + p01.X*w01 + p11.X*w11,
		Y: p00.Y*w00 + p10.Y*w10 + p01.Y*w01 + p11.Y*w11,
	}
	if !finite(pos.X) || !finite(pos.Y) {
		return identity
	}

	// Horizontal scale from the top/bottom edges, vertical from left/right.
	curH := (dist(p00, p10) + dist(p01, p11)) / 2
	refH := (dist(q00, q10) + dist(q01, q11)) / 2
	curV := (dist(p00, p01) + dist(p10, p11)) / 2
	refV := (dist(q00, q01) + dist(q10, q11)) / 2

	return WarpSample{
		Position: pos,
		ScaleX:   safeScale(curH/refH, minScale),
		ScaleY:   safeScale(curV/refV, minScale),
		Valid:    true,
	}
}

// normalize maps x into [0, 1] relative to [origin, origin+size]. A
// zero-sized axis maps to 0.
func normalize(x, origin, size float64) float64 {
	if size == 0 || !finite(size) {
		return 0
	}
	t := (x - origin) / size
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// safeScale coerces non-finite ratios to 1 and clamps the rest to minScale.
func safeScale(s, minScale float64) float64 {
	if !finite(s) {
		return 1
	}
	if s < minScale {
		return minScale
	}
	return s
}

func dist(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
