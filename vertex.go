package ovd

import "github.com/CatMou/openvoronoi/internal/geom"

// Vertex is one entry in the graph's vertex arena. Status, queued and
// touched are scratch state reset to their zero value once the insertion
// that uses them completes.
type Vertex struct {
	// Position in the plane.
	Position geom.Point
	// Radius is the clearance radius: the common distance from Position to
	// every site whose face is incident at this vertex (invariant 4).
	Radius float64
	// Status is this vertex's role in the insertion currently in progress.
	// Always Undecided between insertions.
	Status VertexStatus
	// Type records why the vertex exists (outer frame, ordinary, split, ...).
	Type VertexType
	// Index is a monotonically assigned creation-order index. The vertex
	// counters do not use it; Graph.NumVertices scans the arena.
	Index int

	// leaving is an arbitrary half-edge with this vertex as its origin,
	// used to seed adjacency walks. It is EdgeID(-1) for a deleted vertex.
	leaving EdgeID
	// queued marks a vertex as already pushed onto the predicate queue
	// during the flood fill currently in progress, so it is never pushed
	// twice (§4.3: "mark u as queued").
	queued bool
	// touched marks a vertex as already recorded in the current
	// insertion's modifiedVertices list, so Graph.ResetStatus visits it exactly
	// once regardless of how many times its status changed.
	touched bool
	// deleted marks an arena slot as free for reuse-free bookkeeping; the
	// slot itself is never physically reused so outstanding handles from
	// other insertions stay valid (§5's handle-stability guarantee).
	deleted bool
}

// alive reports whether v is a live vertex (not a removed one).
func (v *Vertex) alive() bool {
	return !v.deleted
}
