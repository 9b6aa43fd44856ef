package ovd

// insertionScope holds every piece of state one insertion needs beyond the
// graph itself. It is allocated at the start of insertSite /
// insertLineSiteFaces and discarded when that call returns — on every exit path,
// including an error return — which is the idiomatic Go equivalent of the
// distilled spec's "acquired at insertion start, released at insertion end"
// scoped-resource rule (§5): there is nothing to explicitly release, the
// struct simply goes out of scope and is collected.
type insertionScope struct {
	// incidentFaces are the faces touched by this insertion, in the order
	// they were first marked (mark_adjacent_faces, §4.3).
	incidentFaces []FaceID
	// modifiedVertices are every vertex whose Status left Undecided during
	// this insertion, so Graph.ResetStatus knows what to revert.
	modifiedVertices []VertexID
	// v0 is the accumulated IN-set.
	v0 []VertexID
	// queue is the in-circle predicate priority queue driving the flood
	// fill.
	queue *vertexQueue
	// newVertices are the NEW vertices created by addVertices, keyed by
	// the edge they were created on, consumed by repairFace.
	newVertices map[EdgeID]VertexID
}

func newInsertionScope() *insertionScope {
	return &insertionScope{
		queue:       newVertexQueue(),
		newVertices: map[EdgeID]VertexID{},
	}
}

func (s *insertionScope) markModified(g *Graph, v VertexID) {
	if !g.Vertex(v).touched {
		g.Vertex(v).touched = true
		s.modifiedVertices = append(s.modifiedVertices, v)
	}
}

func (s *insertionScope) markIncident(f FaceID) {
	for _, existing := range s.incidentFaces {
		if existing == f {
			return
		}
	}
	s.incidentFaces = append(s.incidentFaces, f)
}
