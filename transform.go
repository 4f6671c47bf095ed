package meshwarp

import "math"

// Affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// IdentityAffine is the identity matrix.
var IdentityAffine = Affine{1, 0, 0, 1, 0, 0}

// translateAffine returns a pure translation matrix.
func translateAffine(tx, ty float64) Affine {
	return Affine{1, 0, 0, 1, tx, ty}
}

// scaleAffine returns a pure scale matrix.
func scaleAffine(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// rotateAffine returns a rotation matrix for angle radians (clockwise in
// screen space, Y down).
func rotateAffine(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Multiply returns m * c (c is applied first).
func (m Affine) Multiply(c Affine) Affine {
	return Affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Invert returns the inverse of m.
// Returns the identity matrix if m is singular (determinant ≈ 0).
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityAffine
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms p by m.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// rotateAbout rotates p by angle radians around center.
func rotateAbout(p, center Vec2, angle float64) Vec2 {
	if angle == 0 {
		return p
	}
	sin, cos := math.Sincos(angle)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Vec2{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// --- Glyph transforms ---

// GlyphTransform places one glyph inside its text object's rotated frame.
// Translate is the glyph center relative to the object center; the scale is
// applied around that center.
type GlyphTransform struct {
	Translate      Vec2
	ScaleX, ScaleY float64
}

// IdentityGlyph returns the undistorted placement of a glyph centered at
// (x, 0) in object-local space.
func IdentityGlyph(x float64) GlyphTransform {
	return GlyphTransform{Translate: Vec2{X: x}, ScaleX: 1, ScaleY: 1}
}

// Matrix returns the local affine Translate(t) * Scale(sx, sy).
func (t GlyphTransform) Matrix() Affine {
	return translateAffine(t.Translate.X, t.Translate.Y).Multiply(scaleAffine(t.ScaleX, t.ScaleY))
}

// IsIdentity reports whether t leaves a glyph at (x, 0) unchanged.
func (t GlyphTransform) IsIdentity(x, eps float64) bool {
	return math.Abs(t.Translate.X-x) < eps && math.Abs(t.Translate.Y) < eps &&
		math.Abs(t.ScaleX-1) < eps && math.Abs(t.ScaleY-1) < eps
}

// objectFrame returns the matrix mapping object-local space to world space:
// Translate(X, Y) * Rotate(Rotation).
func objectFrame(obj *TextObject) Affine {
	return translateAffine(obj.X, obj.Y).Multiply(rotateAffine(obj.Rotation))
}

// ItalicShear is the horizontal shear of faux italic glyphs, as the x offset
// per unit of height above the glyph center.
const ItalicShear = 0.2

// ShearX returns the matrix x' = x - k*y, which slants upright glyphs to the
// right in a Y-down frame.
func ShearX(k float64) Affine {
	return Affine{1, 0, -k, 1, 0, 0}
}
