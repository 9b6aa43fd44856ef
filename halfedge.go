package ovd

import "github.com/CatMou/openvoronoi/internal/geom"

// HalfEdge is one directed half-edge of the planar subdivision. Half-edges
// are always created in twin pairs (§4.1): e.Twin.Twin == e always holds for
// a live edge.
type HalfEdge struct {
	// Source is this half-edge's origin vertex.
	Source VertexID
	// Twin is the oppositely-directed half-edge sharing the same endpoints.
	Twin EdgeID
	// Next is the following half-edge around Face, in CCW order.
	Next EdgeID
	// Face is the face this half-edge borders.
	Face FaceID
	// Kind is this edge's curve type.
	Kind EdgeKind

	// a, b are this edge's two endpoint positions: point(0) and point(1).
	// For straight kinds (LineEdge, LineSiteEdge, SeparatorEdge, NullEdge)
	// point(t) is the linear interpolation of a, b. For ParabolaEdge they
	// are still the two endpoints, but point(t) instead samples the true
	// focus/directrix curve between them.
	a, b geom.Point

	// focus and directrix0/directrix1 describe a ParabolaEdge's bisector:
	// the locus of points equidistant from focus (a point site) and the
	// infinite line through directrix0-directrix1 (a line site's
	// supporting line).
	focus                        geom.Point
	directrix0, directrix1       geom.Point

	// leftSite, rightSite are the sites bordering this edge, used by
	// repair to decide whether a NEW-to-OUT edge inherits a pre-existing
	// bisector rather than building a fresh one against the inserted site.
	leftSite, rightSite Site

	deleted bool
}

// alive reports whether e is a live half-edge.
func (e *HalfEdge) alive() bool {
	return !e.deleted
}

// Point evaluates this half-edge's parametric curve at t in [0, 1].
func (e *HalfEdge) Point(t float64) geom.Point {
	if e.Kind != ParabolaEdge {
		return geom.Add(e.a, geom.Scale(geom.Sub(e.b, e.a), t))
	}
	return parabolaPoint(e.focus, e.directrix0, e.directrix1, e.a, e.b, t)
}

// parabolaPoint samples the parabola with the given focus and directrix
// (the infinite line through d0, d1) at parameter t, where t=0 and t=1
// correspond to the already-known curve points p0, p1. The directrix
// projection of p0/p1 is interpolated linearly in t and then lifted back
// onto the curve using the focus-directrix equidistance property, so the
// result stays exactly on the parabola for every t even though p0/p1 are
// not equally spaced in arc length.
func parabolaPoint(focus, d0, d1, p0, p1 geom.Point, t float64) geom.Point {
	dir := geom.Sub(d1, d0)
	dlen := geom.Norm(dir)
	if dlen < 1e-12 {
		return geom.Add(p0, geom.Scale(geom.Sub(p1, p0), t))
	}
	u := geom.Scale(dir, 1/dlen)
	n := geom.Perp(u)
	// orient n to point from the directrix towards the focus.
	if geom.Dot(n, geom.Sub(focus, d0)) < 0 {
		n = geom.Scale(n, -1)
	}

	project := func(p geom.Point) float64 { return geom.Dot(geom.Sub(p, d0), u) }
	s0, s1 := project(p0), project(p1)
	s := s0 + (s1-s0)*t

	q := geom.Add(d0, geom.Scale(u, s)) // foot of perpendicular on directrix
	v := geom.Sub(q, focus)
	vn := geom.Dot(v, n)
	v2 := geom.Dot(v, v)
	// h solves |v + h n|^2 = h^2  =>  h = -v2 / (2 vn), the signed distance
	// from q to the parabola along n (see SplitPointError in the original
	// header for the same focus-directrix algebra applied the other way).
	if vn == 0 {
		return q
	}
	h := -v2 / (2 * vn)
	return geom.Add(q, geom.Scale(n, h))
}
