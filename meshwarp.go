package meshwarp

import "math"

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled component-wise by (sx, sy).
func (v Vec2) Scale(sx, sy float64) Vec2 { return Vec2{v.X * sx, v.Y * sy} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Offset returns r translated by d.
func (r Rect) Offset(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default glyph fill.
var ColorWhite = Color{1, 1, 1, 1}

// --- Configuration ---

const (
	DefaultRows         = 4       // lattice rows
	DefaultCols         = 5       // lattice columns
	DefaultPaddingRatio = 0.1     // bounding rect padding as a fraction of font size
	DefaultMinScale     = 0.05    // lower clamp for per-glyph scale
	DefaultDriftLimit   = 10000.0 // grid-space magnitude treated as numerical drift
	DefaultPickRadius   = 10.0    // handle pick radius in screen pixels
)

// Config holds the tuning values of an Engine. Zero fields take the
// corresponding Default* constant.
type Config struct {
	Rows, Cols   int
	PaddingRatio float64
	MinScale     float64
	DriftLimit   float64
	PickRadius   float64
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.Rows < 2 {
		c.Rows = DefaultRows
	}
	if c.Cols < 2 {
		c.Cols = DefaultCols
	}
	if c.PaddingRatio <= 0 {
		c.PaddingRatio = DefaultPaddingRatio
	}
	if c.MinScale <= 0 {
		c.MinScale = DefaultMinScale
	}
	if c.DriftLimit <= 0 {
		c.DriftLimit = DefaultDriftLimit
	}
	if c.PickRadius <= 0 {
		c.PickRadius = DefaultPickRadius
	}
	return c
}
