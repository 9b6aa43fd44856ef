// Package geom supplies the planar point/vector primitives the diagram core
// needs but does not implement itself: dot/cross products, norms, and the
// right-of-line test used throughout the predicate and separator code.
package geom

import (
	"math"

	"github.com/unixpickle/model3d/model2d"
)

// Point is a planar coordinate. It is a thin alias over model2d.Coord so the
// rest of the engine gets that package's vector arithmetic for free while
// keeping its own vocabulary (Dot, Cross, Norm, RightOf) for the operations
// the bisector math actually names.
type Point = model2d.Coord

// New returns the point (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dot returns the dot product of a and b.
func Dot(a, b Point) float64 {
	return a.Dot(b)
}

// Cross returns the 2D (scalar) cross product of a and b.
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Norm returns the Euclidean length of p.
func Norm(p Point) float64 {
	return p.Norm()
}

// Dist returns the distance between a and b.
func Dist(a, b Point) float64 {
	return a.Dist(b)
}

// Normalize returns p scaled to unit length. Panics on the zero vector, same
// as model2d.Coord.Normalize.
func Normalize(p Point) Point {
	return p.Normalize()
}

// Sub returns a - b.
func Sub(a, b Point) Point {
	return a.Sub(b)
}

// Add returns a + b.
func Add(a, b Point) Point {
	return a.Add(b)
}

// Scale returns p scaled by s.
func Scale(p Point, s float64) Point {
	return p.Scale(s)
}

// Mid returns the midpoint of a and b.
func Mid(a, b Point) Point {
	return a.Mid(b)
}

// Perp returns p rotated 90 degrees counter-clockwise.
func Perp(p Point) Point {
	return Point{X: -p.Y, Y: p.X}
}

// RightOf reports whether p lies strictly to the right of the directed line
// from a to b (i.e. the signed area of (b-a, p-a) is negative).
func RightOf(p, a, b Point) bool {
	return Cross(Sub(b, a), Sub(p, a)) < 0
}

// SignedArea2 returns twice the signed area of the triangle (a, b, c).
// Positive when a, b, c are in counter-clockwise order.
func SignedArea2(a, b, c Point) float64 {
	return Cross(Sub(b, a), Sub(c, a))
}

// ProjectOnLine projects p onto the infinite line through a and b, returning
// the parameter u such that a + u*(b-a) is the projection, and the distance
// from p to that projection.
func ProjectOnLine(p, a, b Point) (u float64, dist float64) {
	ab := Sub(b, a)
	denom := Dot(ab, ab)
	if denom == 0 {
		return 0, Dist(p, a)
	}
	u = Dot(Sub(p, a), ab) / denom
	proj := Add(a, Scale(ab, u))
	return u, Dist(proj, p)
}

// Equal reports whether a and b are within tol of each other.
func Equal(a, b Point, tol float64) bool {
	return Dist(a, b) <= tol
}

// InCircleRadius returns the circumradius of the triangle a, b, c, or
// +Inf if the three points are collinear (degenerate circle).
func InCircleRadius(a, b, c Point) float64 {
	area2 := math.Abs(SignedArea2(a, b, c))
	if area2 < 1e-12 {
		return math.Inf(1)
	}
	ab := Dist(a, b)
	bc := Dist(b, c)
	ca := Dist(c, a)
	return (ab * bc * ca) / (2 * area2)
}
