package ovd

import "github.com/CatMou/openvoronoi/internal/geom"

// splitRingAtSegment implements §4.4 steps 2 and 5. insertLineSiteFaces
// runs the ordinary flood-fill/repair pipeline against a single merged
// ring face exactly as a point site would; this function then divides
// that ring into the two faces the segment actually borders.
//
// findSplitEdges locates the two ring edges crossing the infinite line
// through s's endpoints, addSplitVertex inserts a Split vertex at each
// crossing, and a new LineSiteEdge pair chords the two split vertices,
// reassigning one of the ring's two arcs to a freshly allocated face.
func splitRingAtSegment(g *Graph, pos Positioner, ring FaceID, s *LineSite) (faceLeft, faceRight FaceID, splitP1, splitP2 VertexID, err error) {
	crossings := findSplitEdges(g, ring, s.P1, s.P2)
	if len(crossings) != 2 {
		return NoFace, NoFace, NoVertex, NoVertex, newPositionerFailed(errRingCrossingCount)
	}

	sv0, err := addSplitVertex(g, pos, crossings[0], s)
	if err != nil {
		return NoFace, NoFace, NoVertex, NoVertex, err
	}
	sv1, err := addSplitVertex(g, pos, crossings[1], s)
	if err != nil {
		return NoFace, NoFace, NoVertex, NoVertex, err
	}

	// order the two split vertices by their projection onto p1->p2 so the
	// chord and its antennas line up with the segment's own direction.
	u0, _ := geom.ProjectOnLine(g.Vertex(sv0).Position, s.P1, s.P2)
	u1, _ := geom.ProjectOnLine(g.Vertex(sv1).Position, s.P1, s.P2)
	splitP1, splitP2 = sv0, sv1
	if u0 > u1 {
		splitP1, splitP2 = sv1, sv0
	}

	edges := g.FaceEdges(ring)
	n := len(edges)
	iA, iB := -1, -1
	for i, e := range edges {
		switch g.Edge(e).Source {
		case splitP1:
			iA = i
		case splitP2:
			iB = i
		}
	}
	if iA < 0 || iB < 0 || iA == iB {
		return NoFace, NoFace, NoVertex, NoVertex, newPositionerFailed(errBoundaryChainBroken)
	}

	faceRight = g.AddFace(s)
	chordFwd := g.AddEdge(splitP1, splitP2, LineSiteEdge, ring, faceRight)
	g.SetEndpoints(chordFwd, g.Vertex(splitP1).Position, g.Vertex(splitP2).Position)
	g.SetSites(chordFwd, s, s)
	chordBwd := g.Edge(chordFwd).Twin

	prevA := edges[(iA-1+n)%n] // ends at splitP1, on the arc staying with ring
	prevB := edges[(iB-1+n)%n] // ends at splitP2, on the arc moving to faceRight

	for i := iA; i != iB; i = (i + 1) % n {
		g.Edge(edges[i]).Face = faceRight
	}

	g.SetNext(prevA, chordFwd)
	g.SetNext(chordFwd, edges[iB])
	g.SetNext(prevB, chordBwd)
	g.SetNext(chordBwd, edges[iA])

	g.Face(ring).Edge = chordFwd
	g.Face(faceRight).Edge = chordBwd

	return ring, faceRight, splitP1, splitP2, nil
}

var errRingCrossingCount = errFace{"line site's merged ring does not cross its supporting line exactly twice"}

// attachEndpointAntenna wires addSeparator into a face's boundary cycle
// (§4.4 step 6): the same-face pair it returns is a zero-width detour from
// root out to pos and straight back, which this function splices in
// immediately after root's current position in face's cycle. The result
// is an Endpoint-type vertex sitting at the line site's exact endpoint
// coordinate, at degree one, without changing face's Euler contribution.
func attachEndpointAntenna(g *Graph, root VertexID, pos geom.Point, face FaceID) VertexID {
	fwd, bwd := addSeparator(g, root, pos, face, face)
	ep := g.Edge(bwd).Source
	g.Vertex(ep).Type = Endpoint
	g.Vertex(ep).Radius = 0

	edges := g.FaceEdges(face)
	n := len(edges)
	idx := -1
	for i, e := range edges {
		if g.Edge(e).Source == root {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ep
	}
	prev := edges[(idx-1+n)%n]
	atRoot := edges[idx]

	g.SetNext(prev, fwd)
	g.SetNext(fwd, bwd)
	g.SetNext(bwd, atRoot)
	return ep
}
