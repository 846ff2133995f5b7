package polyplay

import (
	"math"

	"github.com/gogpu/gg"
)

// Indices into a Transform.
const (
	ScaleX     = 0
	SkewY      = 1
	SkewX      = 2
	ScaleY     = 3
	TranslateX = 4
	TranslateY = 5
)

// Transform is the viewport transform mapping scene coordinates to screen
// coordinates. It is a 2D affine transform stored as six elements
// [a b c d e f]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// Elements 4 and 5 hold the translation (the pan offset); elements 0 and 3
// hold the scale (the zoom factor).
type Transform [6]float64

// IdentityTransform returns the identity viewport transform.
func IdentityTransform() Transform {
	return Transform{1, 0, 0, 1, 0, 0}
}

// Apply transforms a scene point to screen space.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t[0]*p.X + t[2]*p.Y + t[4],
		Y: t[1]*p.X + t[3]*p.Y + t[5],
	}
}

// Invert returns the inverse transform.
// Returns the identity transform if t is not invertible.
func (t Transform) Invert() Transform {
	det := t[0]*t[3] - t[1]*t[2]
	if math.Abs(det) < 1e-10 {
		return IdentityTransform()
	}
	inv := 1 / det
	return Transform{
		t[3] * inv,
		-t[1] * inv,
		-t[2] * inv,
		t[0] * inv,
		(t[2]*t[5] - t[3]*t[4]) * inv,
		(t[1]*t[4] - t[0]*t[5]) * inv,
	}
}

// Scale returns the horizontal scale factor, which is the zoom factor for
// the transforms produced by ZoomAt.
func (t Transform) Scale() float64 {
	return t[ScaleX]
}

// Translation returns the pan offset.
func (t Transform) Translation() Point {
	return Point{X: t[TranslateX], Y: t[TranslateY]}
}

// Translate returns t with (dx, dy) added to its translation.
func (t Transform) Translate(dx, dy float64) Transform {
	t[TranslateX] += dx
	t[TranslateY] += dy
	return t
}

// ZoomAt returns t rescaled to factor, anchored at the screen point focal:
// the scene point under focal before the call is still under focal after it.
func (t Transform) ZoomAt(focal Point, factor float64) Transform {
	scene := t.Invert().Apply(focal)
	z := t
	z[ScaleX] = factor
	z[ScaleY] = factor
	after := z.Apply(scene)
	z[TranslateX] += focal.X - after.X
	z[TranslateY] += focal.Y - after.Y
	return z
}

// IsIdentity reports whether t is the identity transform.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}

// Matrix converts t to a gg.Matrix for drawing.
func (t Transform) Matrix() gg.Matrix {
	return gg.Matrix{
		A: t[0], B: t[2], C: t[4],
		D: t[1], E: t[3], F: t[5],
	}
}
