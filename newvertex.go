package ovd

import "github.com/CatMou/openvoronoi/internal/geom"

// addVertices implements §4.2 step 4: for every edge with one IN and one
// OUT endpoint, create a NEW vertex on that edge at the position computed
// by the positioner from the three defining sites — the two face sites
// bordering the edge plus s — and record its clearance radius.
//
// The new vertex is recorded in scope.newVertices keyed by the boundary
// edge it sits on (both directions of the twin pair map to the same
// vertex), consumed by repairFace when it stitches the new boundary path.
func addVertices(g *Graph, scope *insertionScope, pos Positioner, s Site) error {
	seen := map[EdgeID]bool{}
	for _, v := range scope.v0 {
		for _, e := range g.EdgesFrom(v) {
			twin := g.Edge(e).Twin
			if seen[e] || seen[twin] {
				continue
			}
			other := g.Edge(twin).Source
			if g.Vertex(other).Status != Out {
				continue
			}
			seen[e] = true
			seen[twin] = true

			faceSiteA := g.Face(g.Edge(e).Face).Site
			faceSiteB := g.Face(g.Edge(twin).Face).Site
			hint := geom.Mid(g.Vertex(v).Position, g.Vertex(other).Position)

			p, radius, err := pos.Position(faceSiteA, faceSiteB, s, hint)
			if err != nil {
				return newPositionerFailed(err)
			}

			nv := g.AddVertex(p, Normal)
			g.Vertex(nv).Status = NewVertex
			g.Vertex(nv).Radius = radius
			scope.markModified(g, nv)
			scope.newVertices[e] = nv
			scope.newVertices[twin] = nv
		}
	}
	return nil
}
