package ovd

import "github.com/CatMou/openvoronoi/internal/geom"

// splitPointError builds the signed-distance callable the positioner's
// BracketedRoot hunts a zero of, per §4's resolution of the distilled
// spec's SplitPointError-equivalent: the distance from the parametric point
// on edge at t to its projection onto the line through p1-p2, negative when
// the point lies to the right of that line. Its zero is where the edge
// crosses the line, which is where a SPLIT vertex belongs.
func splitPointError(edge *HalfEdge, p1, p2 geom.Point) func(float64) float64 {
	return func(t float64) float64 {
		p := edge.Point(t)
		_, dist := geom.ProjectOnLine(p, p1, p2)
		if geom.RightOf(p, p1, p2) {
			return -dist
		}
		return dist
	}
}

// findSplitEdges returns every live half-edge of f whose two endpoints
// straddle the line through p1-p2 (i.e. lie on opposite sides), the
// candidates addSplitVertex tests for a degenerate bisector.
func findSplitEdges(g *Graph, f FaceID, p1, p2 geom.Point) []EdgeID {
	var out []EdgeID
	for _, e := range g.FaceEdges(f) {
		a := g.Edge(e).Point(0)
		b := g.Edge(e).Point(1)
		if geom.RightOf(a, p1, p2) != geom.RightOf(b, p1, p2) {
			out = append(out, e)
		}
	}
	return out
}

// addSplitVertex subdivides e at the point where it crosses the line
// through s's two endpoints, inserting a vertex of type Split and
// returning its handle. e's curve is split into two half-edges sharing
// that vertex, re-linked into e's owning face's cycle (and its twin's).
// Used when a newly inserted LineSite's supporting line crosses a
// previously existing bisector edge that the ordinary repair path left
// intact, which the distilled spec's Non-goals do not exclude (§9).
func addSplitVertex(g *Graph, pos Positioner, e EdgeID, s *LineSite) (VertexID, error) {
	edge := g.Edge(e)
	errFn := splitPointError(edge, s.P1, s.P2)
	t, err := pos.BracketedRoot(errFn, 0, 1)
	if err != nil {
		return NoVertex, newPositionerFailed(err)
	}
	p := edge.Point(t)

	twin := edge.Twin
	face, twinFace := edge.Face, g.Edge(twin).Face
	kind := edge.Kind
	dst := g.Edge(twin).Source
	srcPos := edge.a
	oldNext := edge.Next
	leftSite, rightSite := edge.leftSite, edge.rightSite
	focus, d0, d1 := edge.focus, edge.directrix0, edge.directrix1

	// locate twin's predecessor in its own face cycle before mutating
	// anything, since splicing needs to redirect it to the new edge.
	var twinPrev EdgeID = NoEdge
	for _, cand := range g.FaceEdges(twinFace) {
		if g.Edge(cand).Next == twin {
			twinPrev = cand
			break
		}
	}

	sv := g.AddVertex(p, Split)
	g.Vertex(sv).Status = Undecided
	if leftSite != nil {
		// p lies on e's curve, which is by construction the bisector of
		// leftSite/rightSite at every parameter, so this is p's true
		// clearance radius (invariant 4) regardless of where along the
		// line through s's endpoints the crossing happens to fall.
		g.Vertex(sv).Radius = leftSite.Distance(p)
	}

	// the original twin (dst->src) becomes sv->src: only its source
	// endpoint moves, its own Next pointer (further around twinFace) is
	// untouched.
	g.Edge(twin).Source = sv

	e2 := g.AddEdge(sv, dst, kind, face, twinFace)
	t2 := g.Edge(e2).Twin

	g.SetEndpoints(e, srcPos, p)
	g.SetEndpoints(e2, p, g.Vertex(dst).Position)
	if kind == ParabolaEdge {
		g.SetParabola(e2, focus, d0, d1)
	}
	g.SetSites(e2, leftSite, rightSite)

	g.SetNext(e, e2)
	g.SetNext(e2, oldNext)

	if twinPrev != NoEdge {
		g.SetNext(twinPrev, t2)
	}
	g.SetNext(t2, twin)

	return sv, nil
}

// addSeparator inserts a SeparatorEdge pair between endpoint and a new
// vertex at sepPoint (§4.4). With faceA != faceB the pair partitions a
// shared boundary between two faces already split apart by other means;
// with faceA == faceB it instead produces a zero-width antenna rooted at
// endpoint, the shape insertLineSiteFaces uses to plant an Endpoint-type
// vertex at a line site's exact endpoint coordinate without disturbing the
// face it is spliced into. The caller owns splicing the returned pair's
// Next pointers into whichever face cycle it belongs to, exactly as
// AddEdge leaves Next for its caller.
func addSeparator(g *Graph, endpoint VertexID, sepPoint geom.Point, faceA, faceB FaceID) (EdgeID, EdgeID) {
	sp := g.AddVertex(sepPoint, SepPoint)
	g.Vertex(sp).Status = Undecided

	fwd := g.AddEdge(endpoint, sp, SeparatorEdge, faceA, faceB)
	g.SetEndpoints(fwd, g.Vertex(endpoint).Position, sepPoint)
	return fwd, g.Edge(fwd).Twin
}
