package ovd

import "github.com/CatMou/openvoronoi/internal/geom"

// SiteKind tags a Site's underlying variant. Sites are modeled as a tagged
// union rather than a pointer-to-base hierarchy (per the design notes):
// callers switch on Kind() rather than relying on virtual dispatch.
type SiteKind int

const (
	// PointKind tags a PointSite.
	PointKind SiteKind = iota
	// LineKind tags a LineSite.
	LineKind
)

// Site is a generator of one face of the diagram: a point or a line
// segment.
type Site interface {
	// Kind reports which variant this site is.
	Kind() SiteKind
	// Position returns a representative point for the site (its single
	// point for a PointSite, the midpoint of the segment for a LineSite).
	// Used by the face grid, which indexes faces by a single coordinate.
	Position() geom.Point
	// Distance returns the distance from p to this site (point-to-point,
	// or point-to-segment for a line site).
	Distance(p geom.Point) float64
	// ApexParameter returns the parameter t on edge closest to this site,
	// i.e. where edge.Point(t) comes nearest to the site. Nothing in this
	// package calls it, and no Apex-type vertex is ever created.
	ApexParameter(edge *HalfEdge) float64
	// InRegion reports whether p lies in this site's region of validity.
	// For a point site this is always true; for a line site it is the
	// infinite slab perpendicular to the segment, bounded by the two
	// endpoints' perpendiculars (§3).
	InRegion(p geom.Point) bool
	// pointHandle returns a PointSite's Handle, and NoVertex for a
	// LineSite. Every PointSite the Diagram creates has Handle NoVertex;
	// InsertLineSite looks its endpoints up in the Diagram's own handle
	// maps and does not call pointHandle.
	pointHandle() VertexID
}

// PointSite is a site at a single point in the plane.
type PointSite struct {
	Pos    geom.Point
	Handle VertexID
}

func (s *PointSite) Kind() SiteKind        { return PointKind }
func (s *PointSite) Position() geom.Point  { return s.Pos }
func (s *PointSite) pointHandle() VertexID { return s.Handle }

func (s *PointSite) Distance(p geom.Point) float64 {
	return geom.Dist(p, s.Pos)
}

func (s *PointSite) InRegion(p geom.Point) bool {
	return true
}

// ApexParameter for a point site is meaningless on its own (apexes belong
// to the parabola's focus side, computed against the edge's other site);
// PointSite reports the closest-approach parameter by direct minimization
// over a coarse-then-refined scan; the result is approximate.
func (s *PointSite) ApexParameter(edge *HalfEdge) float64 {
	return closestParameter(edge, s.Distance)
}

// LineSite is a site along the segment from P1 to P2. Normal is the unit
// normal pointing to the left of P1->P2, as set by NewLineSite; nothing in
// this package reads it.
type LineSite struct {
	P1, P2    geom.Point
	Normal    geom.Point
	Endpoint1 VertexID
	Endpoint2 VertexID
}

// NewLineSite builds a LineSite from its two endpoints, deriving the unit
// normal pointing to the left of the directed segment P1->P2.
func NewLineSite(p1, p2 geom.Point, e1, e2 VertexID) *LineSite {
	dir := geom.Normalize(geom.Sub(p2, p1))
	return &LineSite{P1: p1, P2: p2, Normal: geom.Perp(dir), Endpoint1: e1, Endpoint2: e2}
}

func (s *LineSite) Kind() SiteKind        { return LineKind }
func (s *LineSite) Position() geom.Point  { return geom.Mid(s.P1, s.P2) }
func (s *LineSite) pointHandle() VertexID { return NoVertex }

func (s *LineSite) Distance(p geom.Point) float64 {
	u, dist := geom.ProjectOnLine(p, s.P1, s.P2)
	if u < 0 {
		return geom.Dist(p, s.P1)
	}
	if u > 1 {
		return geom.Dist(p, s.P2)
	}
	return dist
}

// InRegion reports whether p lies in the infinite slab perpendicular to the
// segment, bounded by the two endpoints' perpendiculars.
func (s *LineSite) InRegion(p geom.Point) bool {
	u, _ := geom.ProjectOnLine(p, s.P1, s.P2)
	return u >= 0 && u <= 1
}

func (s *LineSite) ApexParameter(edge *HalfEdge) float64 {
	return closestParameter(edge, s.Distance)
}

// closestParameter scans edge.Point(t) for the t in [0,1] minimizing dist,
// refining around the best sample with a shrinking step. This is the
// shared numerical fallback both site kinds use for an apex parameter; it
// deliberately does not need to be exact since the apex is a labeling
// convenience, not a geometric invariant.
func closestParameter(edge *HalfEdge, dist func(geom.Point) float64) float64 {
	const coarse = 32
	bestT, bestD := 0.0, dist(edge.Point(0))
	for i := 1; i <= coarse; i++ {
		t := float64(i) / float64(coarse)
		d := dist(edge.Point(t))
		if d < bestD {
			bestD, bestT = d, t
		}
	}
	step := 1.0 / float64(coarse)
	for iter := 0; iter < 20; iter++ {
		step /= 2
		lo, hi := bestT-step, bestT+step
		if lo < 0 {
			lo = 0
		}
		if hi > 1 {
			hi = 1
		}
		for _, t := range []float64{lo, hi} {
			d := dist(edge.Point(t))
			if d < bestD {
				bestD, bestT = d, t
			}
		}
	}
	return bestT
}
