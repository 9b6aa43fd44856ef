package ovd

import (
	"github.com/CatMou/openvoronoi/internal/geom"
	"github.com/CatMou/openvoronoi/internal/positioner"
)

// defaultPositioner adapts internal/positioner's free functions (which
// operate on the leaf-level positioner.Geom type, to stay import-cycle
// free) to the Positioner interface, which operates on this package's Site
// variant.
type defaultPositioner struct{}

func siteGeom(s Site) positioner.Geom {
	switch site := s.(type) {
	case *PointSite:
		return positioner.PointGeom(site.Pos)
	case *LineSite:
		return positioner.LineGeom(site.P1, site.P2)
	default:
		return positioner.PointGeom(s.Position())
	}
}

func (defaultPositioner) Position(a, b, c Site, hint geom.Point) (geom.Point, float64, error) {
	return positioner.Position(siteGeom(a), siteGeom(b), siteGeom(c), hint)
}

func (defaultPositioner) PositionOnEdge(point func(t float64) geom.Point, siteA, siteB Site) (float64, error) {
	return positioner.PositionOnEdge(point, siteGeom(siteA), siteGeom(siteB))
}

func (defaultPositioner) BracketedRoot(f func(float64) float64, lo, hi float64) (float64, error) {
	return positioner.BracketedRoot(f, lo, hi)
}
