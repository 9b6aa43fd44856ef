package ovd

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/CatMou/openvoronoi/internal/checker"
	"github.com/CatMou/openvoronoi/internal/geom"
	"github.com/CatMou/openvoronoi/internal/grid"
)

// Point is the plane coordinate type used at this package's public
// boundary, re-exported from internal/geom so callers never need to import
// an internal package to call InsertPointSite.
type Point = geom.Point

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point { return geom.New(x, y) }

// engineVersion is this engine's version string (§9: the original header's
// VERSION_STRING, baked in at build time rather than CMake-generated).
const engineVersion = "0.9.0"

// Diagram is the public facade over the half-edge engine: site insertion,
// counters, and optional debug rendering, wired against the Positioner and
// FaceGrid interfaces' default implementations.
type Diagram struct {
	graph *Graph
	pos   Positioner
	grid  FaceGrid
	cfg   Config

	rootFace  FaceID
	outerFace FaceID

	nextHandle      int
	pointHandlePos  map[int]geom.Point
	pointHandleFace map[int]FaceID
	lineSites       []*LineSite

	numSplitVertices int
}

// New constructs a Diagram bounded by cfg.FarRadius, wiring the default
// Positioner (internal/positioner) and FaceGrid (internal/grid)
// implementations, the way a production Go service wires a default
// store/client behind an interface at its constructor.
func New(cfg Config) (*Diagram, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	d := &Diagram{
		graph:           NewGraph(),
		pos:             defaultPositioner{},
		grid:            grid.New(cfg.FarRadius, cfg.NBins),
		cfg:             cfg,
		pointHandlePos:  map[int]geom.Point{},
		pointHandleFace: map[int]FaceID{},
	}
	d.initialize()
	return d, nil
}

// initialize builds the bootstrap topology described in §3 Lifecycle: a
// triangle of three OUTER vertices well beyond FarRadius, bounding one
// inner face (where every real insertion begins) and one unbounded outer
// face. Both faces share a single bootstrap PointSite positioned at the
// origin — the role the original engine gives a "point at infinity": it is
// never returned to a caller, never registered in the face grid, and only
// ever surfaces to the positioner during the very first insertion, where
// it behaves as an ordinary, if arbitrary, third site.
func (d *Diagram) initialize() {
	root := &PointSite{Pos: geom.New(0, 0), Handle: NoVertex}
	d.rootFace = d.graph.AddFace(root)
	d.outerFace = d.graph.AddFace(root)

	outerRadius := d.cfg.FarRadius * 3
	angles := [3]float64{math.Pi / 2, math.Pi/2 + 2*math.Pi/3, math.Pi/2 + 4*math.Pi/3}
	var v [3]VertexID
	for i, a := range angles {
		p := geom.New(outerRadius*math.Cos(a), outerRadius*math.Sin(a))
		v[i] = d.graph.AddVertex(p, Outer)
		d.graph.Vertex(v[i]).Radius = geom.Dist(p, root.Pos)
	}

	fwd01 := d.graph.AddEdge(v[0], v[1], LineEdge, d.rootFace, d.outerFace)
	fwd12 := d.graph.AddEdge(v[1], v[2], LineEdge, d.rootFace, d.outerFace)
	fwd20 := d.graph.AddEdge(v[2], v[0], LineEdge, d.rootFace, d.outerFace)

	d.graph.SetEndpoints(fwd01, d.graph.Vertex(v[0]).Position, d.graph.Vertex(v[1]).Position)
	d.graph.SetEndpoints(fwd12, d.graph.Vertex(v[1]).Position, d.graph.Vertex(v[2]).Position)
	d.graph.SetEndpoints(fwd20, d.graph.Vertex(v[2]).Position, d.graph.Vertex(v[0]).Position)
	d.graph.SetSites(fwd01, root, root)
	d.graph.SetSites(fwd12, root, root)
	d.graph.SetSites(fwd20, root, root)

	d.graph.SetNext(fwd01, fwd12)
	d.graph.SetNext(fwd12, fwd20)
	d.graph.SetNext(fwd20, fwd01)

	twin01, twin12, twin20 := d.graph.Edge(fwd01).Twin, d.graph.Edge(fwd12).Twin, d.graph.Edge(fwd20).Twin
	d.graph.SetNext(twin20, twin12)
	d.graph.SetNext(twin12, twin01)
	d.graph.SetNext(twin01, twin20)

	d.graph.Face(d.rootFace).Edge = fwd01
	d.graph.Face(d.outerFace).Edge = twin20
}

// debugf logs via the standard logger when Config.Debug is set — the
// pack's one ambient-logging idiom (vigilantbsp's mylogger.go), carried
// here as a hand-rolled wrapper since no third-party logger appears
// anywhere in the retrieval pack.
func (d *Diagram) debugf(format string, args ...interface{}) {
	if d.cfg.Debug {
		log.Printf(format, args...)
	}
}

// seedFace returns the face InsertPointSite/InsertLineSite should begin
// flood-filling from: the grid's nearest registered face, or the bootstrap
// root face before any real site has been registered.
func (d *Diagram) seedFace(p geom.Point) FaceID {
	if len(d.pointHandlePos) == 0 {
		return d.rootFace
	}
	if id, ok := d.grid.FindClosestFace(p); ok {
		return FaceID(id)
	}
	return d.rootFace
}

// InsertPointSite inserts a point site at p and returns an opaque handle
// identifying it, for later use as an InsertLineSite endpoint.
func (d *Diagram) InsertPointSite(p geom.Point) (int, error) {
	if geom.Dist(p, geom.New(0, 0)) >= d.cfg.FarRadius {
		return 0, newInvalidSite(ErrOutsideFarCircle)
	}
	for _, existing := range d.pointHandlePos {
		if geom.Equal(existing, p, d.Tolerance()) {
			return 0, newInvalidSite(ErrCoincidentSite)
		}
	}

	s := &PointSite{Pos: p, Handle: NoVertex}
	newFace, err := d.insertSite(s)
	if err != nil {
		return 0, err
	}

	handle := d.nextHandle
	d.nextHandle++
	d.pointHandlePos[handle] = p
	d.pointHandleFace[handle] = newFace
	d.grid.Add(int(newFace), p)
	return handle, nil
}

// InsertLineSite inserts a line-segment site between two previously
// inserted point sites, identified by the handles InsertPointSite
// returned for each endpoint.
//
// Per §4.4, the segment generates two faces, one on each side of the line
// it supports: the flood fill and repair run once against a single merged
// ring exactly as a point-site insertion would, and insertLineSiteFaces
// then splits that ring in two with a LineSiteEdge chord and attaches an
// Endpoint-type antenna vertex at each of the segment's exact endpoints.
func (d *Diagram) InsertLineSite(idx1, idx2 int) (bool, error) {
	p1, ok1 := d.pointHandlePos[idx1]
	p2, ok2 := d.pointHandlePos[idx2]
	if !ok1 || !ok2 {
		return false, newInvalidSite(ErrUnknownHandle)
	}
	if geom.Equal(p1, p2, d.Tolerance()) {
		return false, newInvalidSite(ErrDegenerateSegment)
	}
	for _, other := range d.lineSites {
		if segmentsIntersect(p1, p2, other.P1, other.P2) {
			return false, newInvalidSite(ErrSegmentIntersects)
		}
	}

	s := NewLineSite(p1, p2, NoVertex, NoVertex)
	if _, _, err := d.insertLineSiteFaces(s); err != nil {
		return false, err
	}
	d.lineSites = append(d.lineSites, s)
	return true, nil
}

// insertLineSiteFaces runs the pipeline InsertLineSite's doc comment
// describes, returning the two faces the segment borders.
func (d *Diagram) insertLineSiteFaces(s *LineSite) (FaceID, FaceID, error) {
	g := d.graph
	seedFaceID := d.seedFace(s.Position())
	scope := newInsertionScope()

	seed := findSeedVertexInRegion(g, seedFaceID, s)
	seedFill(g, scope, seed, s)
	if err := augmentVertexSet(g, scope, s); err != nil {
		g.ResetStatus(scope.modifiedVertices, scope.incidentFaces)
		return NoFace, NoFace, err
	}

	if err := addVertices(g, scope, d.pos, s); err != nil {
		d.rollbackNewVertices(scope)
		g.ResetStatus(scope.modifiedVertices, scope.incidentFaces)
		return NoFace, NoFace, err
	}

	ring := g.AddFace(s)
	edgeData := make(map[FaceID]EdgeData, len(scope.incidentFaces))
	for _, f := range scope.incidentFaces {
		ed, ok := findEdgeData(g, scope, f)
		if !ok {
			return NoFace, NoFace, newPositionerFailed(errNotExactlyTwoCrossings)
		}
		edgeData[f] = ed
	}
	backward := map[FaceID]EdgeID{}
	v1m := map[FaceID]VertexID{}
	v2m := map[FaceID]VertexID{}
	for _, f := range scope.incidentFaces {
		e, v1, v2, err := repairFace(g, edgeData[f], ring, s)
		if err != nil {
			return NoFace, NoFace, err
		}
		backward[f] = e
		v1m[f] = v1
		v2m[f] = v2
	}
	if err := stitchNewFace(g, ring, backward, v1m, v2m); err != nil {
		return NoFace, NoFace, err
	}

	g.RemoveVertexSet(scope.modifiedVertices)
	g.ResetStatus(scope.modifiedVertices, scope.incidentFaces)

	faceLeft, faceRight, splitP1, splitP2, err := splitRingAtSegment(g, d.pos, ring, s)
	if err != nil {
		return NoFace, NoFace, err
	}
	s.Endpoint1 = attachEndpointAntenna(g, splitP1, s.P1, faceLeft)
	s.Endpoint2 = attachEndpointAntenna(g, splitP2, s.P2, faceRight)
	d.numSplitVertices += 2

	if d.cfg.Debug {
		if err := checker.Check(d); err != nil {
			return faceLeft, faceRight, &InvariantViolatedError{Cause: err}
		}
	}
	d.debugf("inserted line site %v-%v: %d incident faces, %d new vertices, split into faces %d and %d",
		s.P1, s.P2, len(scope.incidentFaces), len(scope.newVertices), faceLeft, faceRight)
	return faceLeft, faceRight, nil
}

// insertSite runs the point-site insertion pipeline (§4.2 steps 1-8):
// seed, flood fill, new-vertex creation, per-face repair stitched into one
// new face, then vertex removal and status reset. insertLineSiteFaces runs
// the same steps for a line site before splitting the new face in two.
func (d *Diagram) insertSite(s Site) (FaceID, error) {
	g := d.graph
	seedFaceID := d.seedFace(s.Position())
	scope := newInsertionScope()

	seed, _ := findSeedVertex(g, seedFaceID, s)
	seedFill(g, scope, seed, s)
	if err := augmentVertexSet(g, scope, s); err != nil {
		g.ResetStatus(scope.modifiedVertices, scope.incidentFaces)
		return NoFace, err
	}

	if err := addVertices(g, scope, d.pos, s); err != nil {
		d.rollbackNewVertices(scope)
		g.ResetStatus(scope.modifiedVertices, scope.incidentFaces)
		return NoFace, err
	}

	newFace := g.AddFace(s)
	edgeData := make(map[FaceID]EdgeData, len(scope.incidentFaces))
	for _, f := range scope.incidentFaces {
		ed, ok := findEdgeData(g, scope, f)
		if !ok {
			return NoFace, newPositionerFailed(errNotExactlyTwoCrossings)
		}
		edgeData[f] = ed
	}
	backward := map[FaceID]EdgeID{}
	v1m := map[FaceID]VertexID{}
	v2m := map[FaceID]VertexID{}
	for _, f := range scope.incidentFaces {
		e, v1, v2, err := repairFace(g, edgeData[f], newFace, s)
		if err != nil {
			return NoFace, err
		}
		backward[f] = e
		v1m[f] = v1
		v2m[f] = v2
	}
	if err := stitchNewFace(g, newFace, backward, v1m, v2m); err != nil {
		return NoFace, err
	}

	g.RemoveVertexSet(scope.modifiedVertices)
	g.ResetStatus(scope.modifiedVertices, scope.incidentFaces)

	if d.cfg.Debug {
		if err := checker.Check(d); err != nil {
			return newFace, &InvariantViolatedError{Cause: err}
		}
	}
	d.debugf("inserted site %v: %d incident faces, %d new vertices", s.Position(), len(scope.incidentFaces), len(scope.newVertices))
	return newFace, nil
}

// rollbackNewVertices discards the NEW vertices addVertices created before
// a later positioner failure aborted the insertion. Safe because, at this
// point in the pipeline, no half-edge has yet been created to reference
// them (repairFace runs strictly after addVertices succeeds).
func (d *Diagram) rollbackNewVertices(scope *insertionScope) {
	seen := map[VertexID]bool{}
	for _, v := range scope.newVertices {
		if !seen[v] {
			seen[v] = true
			d.graph.Vertex(v).deleted = true
		}
	}
}

// NumPointSites returns the number of point sites inserted so far.
func (d *Diagram) NumPointSites() int { return len(d.pointHandlePos) }

// NumLineSites returns the number of line sites inserted so far.
func (d *Diagram) NumLineSites() int { return len(d.lineSites) }

// NumVertices returns the live vertex count in the underlying graph.
func (d *Diagram) NumVertices() int { return d.graph.NumVertices() }

// NumSplitVertices returns the number of SPLIT-type vertices created so
// far (§9).
func (d *Diagram) NumSplitVertices() int { return d.numSplitVertices }

// GetFarRadius returns the configured bounding radius.
func (d *Diagram) GetFarRadius() float64 { return d.cfg.FarRadius }

// Version returns this engine's version string.
func (d *Diagram) Version() string { return engineVersion }

// Print returns a text dump of every live vertex, edge and face, collapsing
// the original header's print_vertices/print_edges/print_faces/print_face
// into the one dump the distilled spec already calls for (§9).
func (d *Diagram) Print() string {
	var b strings.Builder
	fmt.Fprintf(&b, "openvoronoi diagram v%s: %d vertices, %d edges, %d faces\n",
		engineVersion, d.graph.NumVertices(), d.graph.NumEdges(), d.graph.NumFaces())
	for i := 0; i < d.graph.VertexSlots(); i++ {
		v := d.graph.Vertex(VertexID(i))
		if !v.alive() {
			continue
		}
		fmt.Fprintf(&b, "  vertex %d: pos=(%.4f,%.4f) r=%.4f type=%s status=%s\n",
			i, v.Position.X, v.Position.Y, v.Radius, v.Type, v.Status)
	}
	for i := 0; i < d.graph.EdgeSlots(); i++ {
		e := d.graph.Edge(EdgeID(i))
		if !e.alive() {
			continue
		}
		fmt.Fprintf(&b, "  edge %d: src=%d twin=%d next=%d face=%d kind=%s\n",
			i, e.Source, e.Twin, e.Next, e.Face, e.Kind)
	}
	for i := 0; i < d.graph.FaceSlots(); i++ {
		f := d.graph.Face(FaceID(i))
		if !f.alive() {
			continue
		}
		fmt.Fprintf(&b, "  face %d: edge=%d incidence=%v site-at=%v\n", i, f.Edge, f.Incidence, f.Site.Position())
	}
	return b.String()
}

// segmentsIntersect reports whether segments p1-p2 and p3-p4 cross at a
// point interior to both, via the standard orientation test.
func segmentsIntersect(p1, p2, p3, p4 geom.Point) bool {
	d1 := geom.SignedArea2(p3, p4, p1)
	d2 := geom.SignedArea2(p3, p4, p2)
	d3 := geom.SignedArea2(p1, p2, p3)
	d4 := geom.SignedArea2(p1, p2, p4)
	return ((d1 > 0) != (d2 > 0)) && ((d3 > 0) != (d4 > 0))
}
