package meshwarp

import (
	"fmt"
	"math"
)

// Grid is a rows×cols lattice of control points overlaid on a text run.
// Points are stored row-major. Positions are in grid space: the unrotated
// frame of the host object, anchored at Origin.
type Grid struct {
	rows, cols int

	points    []Vec2 // live, possibly dragged positions
	reference []Vec2 // undeformed lattice at the last (re)build
	relative  []Vec2 // points as 0..1 fractions of bounds; empty until captured

	origin Vec2 // object position the lattice is anchored to
	bounds Rect // undeformed lattice extent, relative to origin

	// HasCustomDistortion is true once any point has been dragged.
	HasCustomDistortion bool
	// ShowGrid toggles the editor overlay. View state only.
	ShowGrid bool
}

// NewGrid creates an undeformed lattice spanning bounds (object-local)
// anchored at origin. rows and cols must both be at least 2.
func NewGrid(rows, cols int, origin Vec2, bounds Rect) *Grid {
	if rows < 2 || cols < 2 {
		panic(fmt.Sprintf("meshwarp: grid must be at least 2x2, got %dx%d", rows, cols))
	}
	n := rows * cols
	g := &Grid{
		rows:      rows,
		cols:      cols,
		points:    make([]Vec2, n),
		reference: make([]Vec2, n),
	}
	g.layout(origin, bounds)
	return g
}

// layout resets both lattices to an evenly spaced grid over bounds.
func (g *Grid) layout(origin Vec2, bounds Rect) {
	g.origin = origin
	g.bounds = bounds
	cellW := bounds.Width / float64(g.cols-1)
	cellH := bounds.Height / float64(g.rows-1)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := r*g.cols + c
			p := Vec2{
				X: origin.X + bounds.X + float64(c)*cellW,
				Y: origin.Y + bounds.Y + float64(r)*cellH,
			}
			g.points[idx] = p
			g.reference[idx] = p
		}
	}
}

// Rows returns the number of lattice rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of lattice columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid) Len() int { return g.rows * g.cols }

// Origin returns the object position the lattice is anchored to.
func (g *Grid) Origin() Vec2 { return g.origin }

// Bounds returns the undeformed lattice rect relative to Origin.
func (g *Grid) Bounds() Rect { return g.bounds }

// WorldBounds returns Bounds translated into grid space.
func (g *Grid) WorldBounds() Rect { return g.bounds.Offset(g.origin) }

// Point returns the live control point at (row, col). Out-of-range access panics.
func (g *Grid) Point(row, col int) Vec2 {
	return g.points[g.index(row, col)]
}

// Reference returns the undeformed control point at (row, col).
func (g *Grid) Reference(row, col int) Vec2 {
	return g.reference[g.index(row, col)]
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("meshwarp: grid point (%d,%d) out of range %dx%d", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Points returns a copy of the live control points, row-major.
func (g *Grid) Points() []Vec2 { return append([]Vec2(nil), g.points...) }

// ReferencePoints returns a copy of the undeformed lattice, row-major.
func (g *Grid) ReferencePoints() []Vec2 { return append([]Vec2(nil), g.reference...) }

// RelativePoints returns a copy of the captured relative points. Empty until
// the first drag or restoration.
func (g *Grid) RelativePoints() []Vec2 { return append([]Vec2(nil), g.relative...) }

// valid reports whether the lattice invariant holds.
func (g *Grid) valid() bool {
	n := g.rows * g.cols
	return n > 0 && len(g.points) == n && len(g.reference) == n &&
		(len(g.relative) == 0 || len(g.relative) == n)
}

// SetPoint moves the control point at index i and marks the grid as custom.
// Relative points are recaptured for the whole lattice.
func (g *Grid) SetPoint(i int, p Vec2) {
	g.points[i] = p
	g.HasCustomDistortion = true
	g.captureRelative()
}

// captureRelative expresses every live point as a fraction of WorldBounds.
// A zero-sized axis maps to 0 on that axis.
func (g *Grid) captureRelative() {
	if len(g.relative) != len(g.points) {
		g.relative = make([]Vec2, len(g.points))
	}
	wb := g.WorldBounds()
	for i, p := range g.points {
		var u, v float64
		if wb.Width != 0 {
			u = (p.X - wb.X) / wb.Width
		}
		if wb.Height != 0 {
			v = (p.Y - wb.Y) / wb.Height
		}
		g.relative[i] = Vec2{u, v}
	}
}

// applyRelative rebuilds the live points from the relative points against
// the current WorldBounds.
func (g *Grid) applyRelative() {
	wb := g.WorldBounds()
	for i, rp := range g.relative {
		g.points[i] = Vec2{
			X: wb.X + rp.X*wb.Width,
			Y: wb.Y + rp.Y*wb.Height,
		}
	}
}

// translate shifts both lattices and the origin by d.
func (g *Grid) translate(d Vec2) {
	g.origin = g.origin.Add(d)
	for i := range g.points {
		g.points[i] = g.points[i].Add(d)
		g.reference[i] = g.reference[i].Add(d)
	}
}

// Reset returns every point to its reference position and clears the
// custom distortion flag.
func (g *Grid) Reset() {
	copy(g.points, g.reference)
	g.relative = g.relative[:0]
	g.HasCustomDistortion = false
}

// maxMagnitude returns the largest coordinate magnitude of any live or
// reference point measured from the origin. Non-finite coordinates report +Inf.
func (g *Grid) maxMagnitude() float64 {
	var m float64
	for _, set := range [2][]Vec2{g.points, g.reference} {
		for _, p := range set {
			d := p.Sub(g.origin)
			if !finite(d.X) || !finite(d.Y) {
				return math.Inf(1)
			}
			if ax := math.Abs(d.X); ax > m {
				m = ax
			}
			if ay := math.Abs(d.Y); ay > m {
				m = ay
			}
		}
	}
	return m
}

// Segment is one lattice edge between neighbouring live points.
type Segment struct {
	From, To Vec2
}

// Segments returns every horizontal and vertical lattice edge for overlays.
func (g *Grid) Segments() []Segment {
	segs := make([]Segment, 0, g.rows*(g.cols-1)+g.cols*(g.rows-1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := g.points[r*g.cols+c]
			if c+1 < g.cols {
				segs = append(segs, Segment{p, g.points[r*g.cols+c+1]})
			}
			if r+1 < g.rows {
				segs = append(segs, Segment{p, g.points[(r+1)*g.cols+c]})
			}
		}
	}
	return segs
}
