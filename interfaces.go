package ovd

import "github.com/CatMou/openvoronoi/internal/geom"

// Positioner solves the bisector-intersection problem described in §6: given
// three sites, return the point equidistant from all three and that common
// distance (the new vertex's clearance radius), plus the bracketed 1-D root
// finder used to locate split points on a degenerate bisector edge. The
// core engine depends only on this interface; internal/positioner supplies
// the default implementation wired in by New.
type Positioner interface {
	// Position returns the point equidistant from a, b and c, seeded from
	// hint, and that common distance.
	Position(a, b, c Site, hint geom.Point) (geom.Point, float64, error)
	// PositionOnEdge finds t in [0,1] such that point(t) is equidistant
	// from siteA and siteB.
	PositionOnEdge(point func(t float64) geom.Point, siteA, siteB Site) (float64, error)
	// BracketedRoot finds a root of f in [lo, hi], requiring f(lo) and
	// f(hi) to have opposite sign.
	BracketedRoot(f func(float64) float64, lo, hi float64) (float64, error)
}

// FaceGrid is the nearest-face spatial index described in §6, used to seed
// each insertion's search for the affected region. The core engine depends
// only on this interface; internal/grid supplies the default
// implementation wired in by New.
type FaceGrid interface {
	// Add registers faceID as occupying the bin containing site.
	Add(faceID int, site geom.Point)
	// FindClosestFace returns the handle of the face whose registered site
	// is closest to query.
	FindClosestFace(query geom.Point) (faceID int, ok bool)
}
