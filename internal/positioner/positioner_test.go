package positioner_test

import (
	"math"
	"testing"

	"github.com/CatMou/openvoronoi/internal/geom"
	"github.com/CatMou/openvoronoi/internal/positioner"
)

func TestPositionThreePointSites(t *testing.T) {
	a := positioner.PointGeom(geom.New(0, 0))
	b := positioner.PointGeom(geom.New(4, 0))
	c := positioner.PointGeom(geom.New(0, 4))

	p, r, err := positioner.Position(a, b, c, geom.New(1, 1))
	if err != nil {
		t.Fatalf("Position: %v", err)
	}

	for _, s := range []positioner.Geom{a, b, c} {
		if d := s.Distance(p); math.Abs(d-r) > 1e-6 {
			t.Errorf("distance to site = %g, want %g", d, r)
		}
	}
}

func TestPositionPointAndLineSite(t *testing.T) {
	a := positioner.PointGeom(geom.New(0, 2))
	b := positioner.PointGeom(geom.New(4, 2))
	line := positioner.LineGeom(geom.New(-10, 0), geom.New(10, 0))

	p, r, err := positioner.Position(a, b, line, geom.New(2, 1))
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	for _, s := range []positioner.Geom{a, b, line} {
		if d := s.Distance(p); math.Abs(d-r) > 1e-6 {
			t.Errorf("distance to site = %g, want %g", d, r)
		}
	}
}

func TestBracketedRootRequiresOppositeSigns(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	if _, err := positioner.BracketedRoot(f, 0.1, 1); err == nil {
		t.Errorf("BracketedRoot on a non-bracketing interval: got nil error")
	}
}

func TestBracketedRootFindsZero(t *testing.T) {
	f := func(x float64) float64 { return x - 0.3 }
	root, err := positioner.BracketedRoot(f, 0, 1)
	if err != nil {
		t.Fatalf("BracketedRoot: %v", err)
	}
	if math.Abs(root-0.3) > 1e-9 {
		t.Errorf("BracketedRoot = %g, want 0.3", root)
	}
}

func TestPositionOnEdgeMidpoint(t *testing.T) {
	point := func(t float64) geom.Point {
		return geom.New(-1+2*t, 1)
	}
	left := positioner.PointGeom(geom.New(-1, 0))
	right := positioner.PointGeom(geom.New(1, 0))

	param, err := positioner.PositionOnEdge(point, left, right)
	if err != nil {
		t.Fatalf("PositionOnEdge: %v", err)
	}
	if math.Abs(param-0.5) > 1e-6 {
		t.Errorf("PositionOnEdge = %g, want 0.5", param)
	}
}
