package ovd

import "math"

// findSeedVertex scans the vertices of f and returns the one maximizing the
// in-circle predicate against s — the vertex whose IN classification is
// most numerically certain (§4.2 step 2).
func findSeedVertex(g *Graph, f FaceID, s Site) (VertexID, float64) {
	verts := g.FaceVertices(f)
	best := verts[0]
	bestDet := inCirclePredicate(g, s, best)
	for _, v := range verts[1:] {
		det := inCirclePredicate(g, s, v)
		if det > bestDet {
			bestDet, best = det, v
		}
	}
	return best, bestDet
}

// findSeedVertexInRegion restricts findSeedVertex's scan to the vertices of
// f lying in s's region of validity (Site.InRegion), falling back to the
// unrestricted scan if none qualify. A line site's seed must lie in its
// perpendicular slab (§4.4 step 1: "seed off the segment's InRegion test")
// or the flood fill can start from a vertex the segment's own bisector
// formula was never meant to classify.
func findSeedVertexInRegion(g *Graph, f FaceID, s Site) VertexID {
	verts := g.FaceVertices(f)
	best := NoVertex
	bestDet := math.Inf(-1)
	for _, v := range verts {
		if !s.InRegion(g.Vertex(v).Position) {
			continue
		}
		if det := inCirclePredicate(g, s, v); det > bestDet {
			bestDet, best = det, v
		}
	}
	if best == NoVertex {
		best, _ = findSeedVertex(g, f, s)
	}
	return best
}

// seedFill marks v as IN (unconditionally — seeds bypass C4/C5, since
// predicateC5 would always reject the seed: no vertex has been marked OUT
// yet when it is placed) and enqueues its undecided
// neighbors, handing off to augmentVertexSet to drain the queue (§4.2
// steps 2-3).
func seedFill(g *Graph, scope *insertionScope, seed VertexID, s Site) {
	acceptIn(g, scope, seed, s)
}

// acceptIn marks v IN, records it in v0, marks its incident faces, and
// pushes every still-undecided neighbor onto the predicate queue — the
// single place "a vertex became IN" fans out to its neighborhood, shared
// by both the seed and every vertex accepted during the flood fill proper.
func acceptIn(g *Graph, scope *insertionScope, v VertexID, s Site) {
	g.Vertex(v).Status = In
	scope.markModified(g, v)
	scope.v0 = append(scope.v0, v)
	markAdjacentFaces(g, scope, v)

	for _, u := range g.Neighbors(v) {
		if g.Vertex(u).Status != Undecided || g.Vertex(u).queued {
			continue
		}
		g.Vertex(u).queued = true
		scope.markModified(g, u)
		scope.queue.push(u, inCirclePredicate(g, s, u))
	}
}

// augmentVertexSet runs the flood fill described in §4.3: pop the vertex
// the queue is most certain about, accept it as IN unless C4 or C5 forbid
// it, and fan out from every newly accepted vertex.
//
// C4/C5 are re-evaluated synchronously against the graph's current status
// on every pop, so every popped vertex is decided immediately — there is
// no deferred/undecidable state here for the queue to get stuck on, unlike
// an implementation that batches decisions. The error return exists so a
// future positioner or checker failure surfaced mid-fill has somewhere to
// go without changing this function's signature.
func augmentVertexSet(g *Graph, scope *insertionScope, s Site) error {
	for !scope.queue.empty() {
		v, _ := scope.queue.pop()
		vert := g.Vertex(v)
		if vert.Status != Undecided {
			continue
		}

		if predicateC4(g, v) && predicateC5(g, v) {
			acceptIn(g, scope, v, s)
		} else {
			g.Vertex(v).Status = Out
			scope.markModified(g, v)
		}
	}
	return nil
}

// predicateC4 prevents deletion of a vertex whose removal would disconnect
// the face's IN-subgraph on any incident face: v is accepted only if, for
// every face f incident to v, the IN-vertices of f (including v) induce a
// connected subgraph of f's boundary cycle — i.e. at most one maximal run
// of IN vertices around the cycle once v is included.
func predicateC4(g *Graph, v VertexID) bool {
	for _, f := range g.IncidentFaces(v) {
		verts := g.FaceVertices(f)
		n := len(verts)
		if n == 0 {
			continue
		}
		runs := 0
		for i := 0; i < n; i++ {
			cur := isInOrCandidate(g, verts[i], v)
			prev := isInOrCandidate(g, verts[(i-1+n)%n], v)
			if cur && !prev {
				runs++
			}
		}
		if runs > 1 {
			return false
		}
	}
	return true
}

// predicateC5 prevents a face from losing its last OUT vertex: v is
// accepted only if, for every face incident to v, at least one OUT vertex
// remains once v is accepted as IN.
func predicateC5(g *Graph, v VertexID) bool {
	for _, f := range g.IncidentFaces(v) {
		hasOut := false
		for _, u := range g.FaceVertices(f) {
			if u == v {
				continue
			}
			if g.Vertex(u).Status == Out {
				hasOut = true
				break
			}
		}
		if !hasOut {
			return false
		}
	}
	return true
}

// markAdjacentFaces marks every face incident to v as Incident and appends
// it to scope.incidentFaces if not already present (§4.3).
func markAdjacentFaces(g *Graph, scope *insertionScope, v VertexID) {
	for _, f := range g.IncidentFaces(v) {
		g.Face(f).Incidence = Incident
		scope.markIncident(f)
	}
}

// isInOrCandidate reports whether vertex u should be counted as IN for the
// purpose of predicateC4's run-count, treating the candidate vertex v as
// IN (it hasn't been marked yet at the time C4 runs).
func isInOrCandidate(g *Graph, u, v VertexID) bool {
	if u == v {
		return true
	}
	return g.Vertex(u).Status == In
}
