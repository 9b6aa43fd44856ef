package ovd

import "github.com/CatMou/openvoronoi/internal/geom"

// EdgeData is the per-face result of findEdgeData (§4.5), named explicitly
// rather than left as an anonymous tuple — the original header names this
// exact record. InEdge is the single OUT->IN crossing edge and OutEdge the
// single IN->OUT crossing edge that predicateC4 guarantees are the only
// ones, since the IN-vertices of f form one contiguous arc; V1/V2 are the
// NEW vertices addVertices already placed on those two edges.
type EdgeData struct {
	InEdge  EdgeID
	V1      VertexID
	OutEdge EdgeID
	V2      VertexID
	F       FaceID
}

// findEdgeData walks f's boundary cycle and locates its two crossing
// edges. It must run against the graph's pristine pre-repair topology: the
// caller collects an EdgeData for every incident face before repairFace
// retargets any of them, since repairing one face moves the Source of an
// edge shared with its twin's face, which would otherwise corrupt this
// OUT/IN classification for a not-yet-collected neighbor.
func findEdgeData(g *Graph, scope *insertionScope, f FaceID) (EdgeData, bool) {
	var ed EdgeData
	ed.F = f
	found := 0

	for _, e := range g.FaceEdges(f) {
		src := g.Edge(e).Source
		twin := g.Edge(e).Twin
		dst := g.Edge(twin).Source
		srcStatus, dstStatus := g.Vertex(src).Status, g.Vertex(dst).Status

		nv, isCrossing := scope.newVertices[e]
		if !isCrossing || srcStatus == dstStatus {
			continue
		}

		if srcStatus == Out && dstStatus == In {
			ed.InEdge, ed.V1 = e, nv
			found++
		} else if srcStatus == In && dstStatus == Out {
			ed.OutEdge, ed.V2 = e, nv
			found++
		}
	}
	return ed, found == 2
}

// classifyEdgeKind returns the bisector kind between two sites, per the
// glossary: a line for point-point or segment-segment, a parabola for
// point-segment.
func classifyEdgeKind(a, b Site) EdgeKind {
	if a.Kind() == PointKind && b.Kind() == PointKind {
		return LineEdge
	}
	if a.Kind() == LineKind && b.Kind() == LineKind {
		return LineEdge
	}
	return ParabolaEdge
}

// repairFace implements §4.5 for a single incident face, given the
// EdgeData the caller already collected for it against the pristine
// graph. It retargets the two crossing edges' IN-side endpoints onto
// their NEW vertices — inEdge keeps its OUT source and gains V1 as its
// destination, outEdge keeps its OUT destination and gains V2 as its
// source — so both edges inherit their pre-existing bisector onto the
// repaired face instead of being discarded, then splices a fresh v1->v2
// edge between them. RemoveVertexSet runs after every face's repair and
// deletes every edge still incident to an IN vertex; retargeting inEdge
// and outEdge away from their IN endpoints here is what keeps them both
// out of that deletion. It returns the fresh edge's twin (v2->v1), which
// belongs to the newly inserted site's face and is stitched into that
// face's cycle by stitchNewFace once every incident face has been
// repaired.
func repairFace(g *Graph, ed EdgeData, newFace FaceID, s Site) (EdgeID, VertexID, VertexID, error) {
	f := ed.F
	kind := classifyEdgeKind(g.Face(f).Site, s)
	fwd := g.AddEdge(ed.V1, ed.V2, kind, f, newFace)
	setEdgeCurve(g, fwd, kind, g.Vertex(ed.V1).Position, g.Vertex(ed.V2).Position, g.Face(f).Site, s)
	g.SetSites(fwd, g.Face(f).Site, s)

	g.Edge(g.Edge(ed.InEdge).Twin).Source = ed.V1
	g.Edge(ed.OutEdge).Source = ed.V2

	g.SetNext(ed.InEdge, fwd)
	g.SetNext(fwd, ed.OutEdge)

	g.Face(f).Edge = ed.InEdge

	return g.Edge(fwd).Twin, ed.V1, ed.V2, nil
}

var errNotExactlyTwoCrossings = errFace{"face does not have exactly two IN/OUT crossings"}

type errFace struct{ msg string }

func (e errFace) Error() string { return e.msg }

// setEdgeCurve fills in a freshly created half-edge pair's curve
// parameters from its two endpoints and the pair of sites it bisects.
func setEdgeCurve(g *Graph, e EdgeID, kind EdgeKind, a, b geom.Point, siteA, siteB Site) {
	g.SetEndpoints(e, a, b)
	if kind != ParabolaEdge {
		return
	}
	focus, d0, d1 := parabolaParams(siteA, siteB)
	g.SetParabola(e, focus, d0, d1)
}

// parabolaParams picks out the point-site focus and line-site directrix
// from whichever of siteA/siteB is which.
func parabolaParams(siteA, siteB Site) (focus, d0, d1 geom.Point) {
	point, line := siteA, siteB
	if point.Kind() != PointKind {
		point, line = siteB, siteA
	}
	ps := point.(*PointSite)
	ls := line.(*LineSite)
	return ps.Pos, ls.P1, ls.P2
}

// stitchNewFace chains the backward (v2->v1) half-edge handed back by
// repairFace for every incident face into newFace's boundary cycle. Each
// crossing edge's NEW vertex is shared by exactly two incident faces — the
// face it is an entry (v1) for, and the face it is an exit (v2) for — so
// walking "the face whose v2 equals my v1" traces the single cycle around
// the flooded region (§4.5: edges connecting a NEW vertex to a NEW vertex
// on the new face carry the bisector between f's site and s, which
// repairFace has already set on each backward edge's twin).
func stitchNewFace(g *Graph, newFace FaceID, backward map[FaceID]EdgeID, v1 map[FaceID]VertexID, v2 map[FaceID]VertexID) error {
	if len(backward) == 0 {
		return newInvalidSite(errNoIncidentFaces)
	}

	exitVertexToFace := map[VertexID]FaceID{}
	for f, v := range v2 {
		exitVertexToFace[v] = f
	}

	var first FaceID
	for f := range backward {
		first = f
		break
	}

	order := []FaceID{first}
	seen := map[FaceID]bool{first: true}
	cur := first
	for {
		nextFace, ok := exitVertexToFace[v1[cur]]
		if !ok {
			return newPositionerFailed(errBoundaryChainBroken)
		}
		if nextFace == first {
			break
		}
		if seen[nextFace] {
			return newPositionerFailed(errBoundaryChainBroken)
		}
		seen[nextFace] = true
		order = append(order, nextFace)
		cur = nextFace
		if len(order) > len(backward)+1 {
			return newPositionerFailed(errBoundaryChainBroken)
		}
	}
	if len(order) != len(backward) {
		return newPositionerFailed(errBoundaryChainBroken)
	}

	for i, f := range order {
		e := backward[f]
		next := backward[order[(i+1)%len(order)]]
		g.SetNext(e, next)
	}
	g.Face(newFace).Edge = backward[order[0]]
	return nil
}

var errNoIncidentFaces = errFace{"insertion produced no incident faces"}
var errBoundaryChainBroken = errFace{"new face boundary chain does not close"}
