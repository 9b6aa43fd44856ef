package ovd

import (
	"math"
	"testing"

	"github.com/CatMou/openvoronoi/internal/geom"
)

// buildSquareGraph builds a 4-vertex square face (v0..v3 CCW) with its
// boundary cycle F0 and the reverse cycle F1 sharing the same four edges'
// twins, enough to exercise findSplitEdges/addSplitVertex without the full
// engine.
func buildSquareGraph() (g *Graph, v [4]VertexID, e [4]EdgeID, f0, f1 FaceID) {
	g = NewGraph()
	v[0] = g.AddVertex(geom.New(0, 0), Normal)
	v[1] = g.AddVertex(geom.New(4, 0), Normal)
	v[2] = g.AddVertex(geom.New(4, 4), Normal)
	v[3] = g.AddVertex(geom.New(0, 4), Normal)

	f0 = g.AddFace(&PointSite{Pos: geom.New(2, 2)})
	f1 = g.AddFace(&PointSite{Pos: geom.New(100, 100)})

	for i := 0; i < 4; i++ {
		a, b := v[i], v[(i+1)%4]
		e[i] = g.AddEdge(a, b, LineEdge, f0, f1)
		g.SetEndpoints(e[i], g.Vertex(a).Position, g.Vertex(b).Position)
	}
	for i := 0; i < 4; i++ {
		g.SetNext(e[i], e[(i+1)%4])
	}
	// F1's cycle runs the reverse direction: twin(e[i]) is b->a, and its
	// successor around F1 is twin(e[i-1]).
	for i := 0; i < 4; i++ {
		ti := g.Edge(e[i]).Twin
		tprev := g.Edge(e[(i+3)%4]).Twin
		g.SetNext(ti, tprev)
	}
	g.Face(f0).Edge = e[0]
	g.Face(f1).Edge = g.Edge(e[0]).Twin
	return g, v, e, f0, f1
}

func TestFindSplitEdges(t *testing.T) {
	g, _, e, f0, _ := buildSquareGraph()
	p1, p2 := geom.New(-1, 2), geom.New(5, 2)

	got := findSplitEdges(g, f0, p1, p2)
	want := map[EdgeID]bool{e[1]: true, e[3]: true}
	if len(got) != len(want) {
		t.Fatalf("findSplitEdges = %v, want edges %d and %d", got, e[1], e[3])
	}
	for _, id := range got {
		if !want[id] {
			t.Errorf("findSplitEdges returned unexpected edge %d", id)
		}
	}
}

func TestSplitPointErrorOppositeSignsAtEnds(t *testing.T) {
	g, _, e, _, _ := buildSquareGraph()
	edge := g.Edge(e[1]) // v1=(4,0) -> v2=(4,4)
	errFn := splitPointError(edge, geom.New(-1, 2), geom.New(5, 2))

	lo, hi := errFn(0), errFn(1)
	if lo*hi >= 0 {
		t.Fatalf("splitPointError(0)=%g, splitPointError(1)=%g: want opposite signs", lo, hi)
	}
	if mid := errFn(0.5); math.Abs(mid) > 1e-9 {
		t.Errorf("splitPointError(0.5) = %g, want ~0 at the y=2 crossing", mid)
	}
}

func TestAddSplitVertex(t *testing.T) {
	g, v, e, f0, f1 := buildSquareGraph()
	line := &LineSite{P1: geom.New(-1, 2), P2: geom.New(5, 2)}

	origTwin := g.Edge(e[1]).Twin // t1: v2 -> v1, predecessor of origTwin in F1 is twin(e[2])
	twinPred := g.Edge(e[2]).Twin

	sv, err := addSplitVertex(g, defaultPositioner{}, e[1], line)
	if err != nil {
		t.Fatalf("addSplitVertex: %v", err)
	}

	got := g.Vertex(sv).Position
	want := geom.New(4, 2)
	if geom.Dist(got, want) > 1e-6 {
		t.Errorf("split vertex position = %v, want %v", got, want)
	}
	if typ := g.Vertex(sv).Type; typ != Split {
		t.Errorf("split vertex type = %v, want Split", typ)
	}

	// e[1] is truncated to v1->sv.
	if g.Edge(e[1]).Source != v[1] {
		t.Errorf("e[1].Source = %d, want %d", g.Edge(e[1]).Source, v[1])
	}
	eNew := g.Edge(e[1]).Next
	if g.Edge(eNew).Source != sv {
		t.Fatalf("edge after e[1] has Source %d, want split vertex %d", g.Edge(eNew).Source, sv)
	}
	if g.Edge(eNew).Next != e[2] {
		t.Errorf("edge after the split does not reconnect to e[2]")
	}

	// origTwin (v2->v1) is repurposed in place to become sv->v1.
	if g.Edge(origTwin).Source != sv {
		t.Errorf("original twin's Source = %d, want split vertex %d", g.Edge(origTwin).Source, sv)
	}

	// the new twin is spliced in between twinPred and origTwin on F1.
	newTwin := g.Edge(eNew).Twin
	if g.Edge(twinPred).Next != newTwin {
		t.Errorf("F1 predecessor does not point at the new twin edge")
	}
	if g.Edge(newTwin).Next != origTwin {
		t.Errorf("new twin edge does not reconnect to the original twin")
	}

	if got := len(g.FaceEdges(f0)); got != 5 {
		t.Errorf("F0 boundary length = %d, want 5 after one split", got)
	}
	if got := len(g.FaceEdges(f1)); got != 5 {
		t.Errorf("F1 boundary length = %d, want 5 after one split", got)
	}
}

func TestAddSeparator(t *testing.T) {
	g, v, _, f0, f1 := buildSquareGraph()
	sepPoint := geom.New(2, 2)

	fwd, bwd := addSeparator(g, v[0], sepPoint, f0, f1)

	if g.Edge(fwd).Kind != SeparatorEdge {
		t.Errorf("addSeparator edge kind = %v, want SeparatorEdge", g.Edge(fwd).Kind)
	}
	if g.Edge(fwd).Source != v[0] {
		t.Errorf("addSeparator forward Source = %d, want %d", g.Edge(fwd).Source, v[0])
	}
	if g.Edge(fwd).Twin != bwd {
		t.Errorf("addSeparator returned (%d, %d) that are not twins", fwd, bwd)
	}
	sp := g.Edge(bwd).Source
	if got := g.Vertex(sp).Position; geom.Dist(got, sepPoint) > 1e-9 {
		t.Errorf("separator vertex position = %v, want %v", got, sepPoint)
	}
	if typ := g.Vertex(sp).Type; typ != SepPoint {
		t.Errorf("separator vertex type = %v, want SepPoint", typ)
	}
}
