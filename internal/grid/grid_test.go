package grid_test

import (
	"testing"

	"github.com/CatMou/openvoronoi/internal/geom"
	"github.com/CatMou/openvoronoi/internal/grid"
)

func TestFindClosestFaceEmpty(t *testing.T) {
	g := grid.New(10, 20)
	if _, ok := g.FindClosestFace(geom.New(0, 0)); ok {
		t.Errorf("FindClosestFace on an empty grid: got ok=true")
	}
}

func TestFindClosestFacePicksNearest(t *testing.T) {
	g := grid.New(10, 20)
	g.Add(1, geom.New(-5, -5))
	g.Add(2, geom.New(5, 5))
	g.Add(3, geom.New(5, 5.1))

	id, ok := g.FindClosestFace(geom.New(4.9, 4.9))
	if !ok {
		t.Fatalf("FindClosestFace: ok=false")
	}
	if id != 2 && id != 3 {
		t.Errorf("FindClosestFace = %d, want 2 or 3 (nearest cluster)", id)
	}
}

func TestFindClosestFaceAcrossEmptyRings(t *testing.T) {
	g := grid.New(100, 50)
	g.Add(7, geom.New(-90, -90))
	id, ok := g.FindClosestFace(geom.New(90, 90))
	if !ok {
		t.Fatalf("FindClosestFace: ok=false")
	}
	if id != 7 {
		t.Errorf("FindClosestFace = %d, want 7 (only registered face)", id)
	}
}
