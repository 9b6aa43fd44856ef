// Package positioner implements the numerical bisector-intersection solver
// the diagram core treats as an external collaborator (§6): given three
// sites, find the point equidistant from all three (and that common
// distance, the clearance radius), plus a bracketed 1-D root finder used to
// locate split points on a degenerate bisector edge.
//
// The solver is intentionally numerical rather than closed-form per site
// combination: the distilled spec explicitly "accommodates floating-point
// uncertainty" and does not require exact arithmetic, so a single Newton
// iteration that treats point and line sites uniformly (via their distance
// function) covers the point-point-point, point-point-line and
// point-line-line cases without three separate derivations.
package positioner

import (
	"math"

	"github.com/CatMou/openvoronoi/internal/geom"
)

// SiteKind tags which variant a Geom describes.
type SiteKind int

const (
	// Point tags a single-point site.
	Point SiteKind = iota
	// Line tags a line-segment site.
	Line
)

// Geom is the minimal geometric description of a site the positioner needs:
// either a single point, or a segment's two endpoints. It deliberately does
// not depend on the ovd package's Site interface, so this package stays
// leaf-level and import-cycle free; ovd adapts its own sites to Geom before
// calling in.
type Geom struct {
	Kind SiteKind
	P    geom.Point // valid when Kind == Point
	A, B geom.Point // valid when Kind == Line
}

// PointGeom returns a Geom for a point site at p.
func PointGeom(p geom.Point) Geom { return Geom{Kind: Point, P: p} }

// LineGeom returns a Geom for a line site from a to b.
func LineGeom(a, b geom.Point) Geom { return Geom{Kind: Line, A: a, B: b} }

// Distance returns the distance from q to this site.
func (g Geom) Distance(q geom.Point) float64 {
	if g.Kind == Point {
		return geom.Dist(q, g.P)
	}
	u, dist := geom.ProjectOnLine(q, g.A, g.B)
	if u < 0 {
		return geom.Dist(q, g.A)
	}
	if u > 1 {
		return geom.Dist(q, g.B)
	}
	return dist
}

func (g Geom) anchor() geom.Point {
	if g.Kind == Point {
		return g.P
	}
	return geom.Mid(g.A, g.B)
}

// ErrNoConvergence is returned by Position/PositionOnEdge/BracketedRoot when
// the underlying numerical method fails to converge within its iteration
// budget.
type ErrNoConvergence struct {
	Op string
}

func (e *ErrNoConvergence) Error() string { return e.Op + ": failed to converge" }

// ErrNotBracketed is returned by BracketedRoot when f(lo) and f(hi) do not
// have opposite signs.
type ErrNotBracketed struct{}

func (e *ErrNotBracketed) Error() string { return "root finder: interval is not bracketed" }

// Position finds the point equidistant from sites a, b and newSite, and
// that common distance (the clearance radius), seeding Newton's method
// from hint (typically the midpoint of the bisector edge the new vertex
// falls on) and falling back to the centroid of the three sites' anchors
// if hint is the zero point.
func Position(a, b, newSite Geom, hint geom.Point) (geom.Point, float64, error) {
	p := hint
	if p == (geom.Point{}) {
		p = geom.Scale(geom.Add(geom.Add(a.anchor(), b.anchor()), newSite.anchor()), 1.0/3.0)
	}
	r := (a.Distance(p) + b.Distance(p) + newSite.Distance(p)) / 3

	const maxIter = 60
	const eps = 1e-7
	sites := [3]Geom{a, b, newSite}
	for iter := 0; iter < maxIter; iter++ {
		var f [3]float64
		for i, s := range sites {
			f[i] = s.Distance(p) - r
		}
		if maxAbs(f) < 1e-10 {
			return p, r, nil
		}

		// Numerical Jacobian of f w.r.t. (px, py, r) via central
		// differences; three equations, three unknowns.
		var jac [3][3]float64
		for i, s := range sites {
			jac[i][0] = (s.Distance(geom.New(p.X+eps, p.Y)) - s.Distance(geom.New(p.X-eps, p.Y))) / (2 * eps)
			jac[i][1] = (s.Distance(geom.New(p.X, p.Y+eps)) - s.Distance(geom.New(p.X, p.Y-eps))) / (2 * eps)
			jac[i][2] = -1
		}

		delta, ok := solve3(jac, f)
		if !ok {
			return p, r, &ErrNoConvergence{Op: "position"}
		}
		p = geom.New(p.X-delta[0], p.Y-delta[1])
		r -= delta[2]
		if r < 0 {
			r = 0
		}
	}
	return p, r, &ErrNoConvergence{Op: "position"}
}

// PositionOnEdge finds t in [0,1] such that edge.Point(t) is equidistant
// from siteA and siteB, via BracketedRoot on their signed distance
// difference. The diagram exposes it through its Positioner interface but
// no insertion step calls it.
func PositionOnEdge(point func(t float64) geom.Point, siteA, siteB Geom) (float64, error) {
	f := func(t float64) float64 {
		p := point(t)
		return siteA.Distance(p) - siteB.Distance(p)
	}
	f0, f1 := f(0), f(1)
	if f0 == 0 {
		return 0, nil
	}
	if f1 == 0 {
		return 1, nil
	}
	if (f0 < 0) == (f1 < 0) {
		return 0, &ErrNotBracketed{}
	}
	return BracketedRoot(f, 0, 1)
}

// BracketedRoot finds a root of f in [lo, hi] using a regula-falsi
// (false-position) iteration with a bisection step every eighth
// iteration — a simple
// bracketed solver in the spirit of the boost::toms748 variant the original
// engine uses for the same split-point search, without requiring a
// dedicated numerical library.
func BracketedRoot(f func(float64) float64, lo, hi float64) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo < 0) == (fhi < 0) {
		return 0, &ErrNotBracketed{}
	}

	const maxIter = 100
	const tol = 1e-12
	for iter := 0; iter < maxIter; iter++ {
		mid := lo - flo*(hi-lo)/(fhi-flo)
		if hi-lo < tol {
			return mid, nil
		}
		fmid := f(mid)
		if fmid == 0 {
			return mid, nil
		}
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi, fhi = mid, fmid
		}
		// bisection fallback every few iterations guards against
		// regula-falsi's slow-convergence pathology on curved f.
		if iter%8 == 7 {
			bmid := (lo + hi) / 2
			fb := f(bmid)
			if (fb < 0) == (flo < 0) {
				lo, flo = bmid, fb
			} else {
				hi, fhi = bmid, fb
			}
		}
	}
	return 0, &ErrNoConvergence{Op: "bracketed root"}
}

func maxAbs(v [3]float64) float64 {
	m := math.Abs(v[0])
	for _, x := range v[1:] {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}

// solve3 solves the linear system jac * x = f for x via Cramer's rule,
// reporting ok=false on a near-singular Jacobian.
func solve3(jac [3][3]float64, f [3]float64) (x [3]float64, ok bool) {
	det := det3(jac)
	if math.Abs(det) < 1e-14 {
		return x, false
	}
	for col := 0; col < 3; col++ {
		m := jac
		for row := 0; row < 3; row++ {
			m[row][col] = f[row]
		}
		x[col] = det3(m) / det
	}
	return x, true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
