package ovd_test

import (
	"math"
	"math/rand"
	"testing"

	ovd "github.com/CatMou/openvoronoi"
)

// debugTestDiagram returns a Diagram configured with Config.Debug = true,
// so every insertion below runs internal/checker.Check against the real
// post-insertion graph and fails the test immediately on any invariant
// violation, rather than only checking counts.
func debugTestDiagram(t *testing.T) *ovd.Diagram {
	t.Helper()
	cfg := ovd.DefaultConfig()
	cfg.Debug = true
	d, err := ovd.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

// interiorVertices returns every live vertex within bound of the origin,
// filtering out the three bootstrap OUTER vertices that sit at
// far_radius*3 and never belong to any inserted site's geometry.
func interiorVertices(d *ovd.Diagram, bound float64) []ovd.Point {
	var out []ovd.Point
	for i := 0; i < d.VertexCount(); i++ {
		x, y, _, _, alive := d.Vertex(i)
		if !alive {
			continue
		}
		if math.Hypot(x, y) <= bound {
			out = append(out, ovd.NewPoint(x, y))
		}
	}
	return out
}

func hasVertexNear(pts []ovd.Point, want ovd.Point, tol float64) bool {
	for _, p := range pts {
		if math.Hypot(p.X-want.X, p.Y-want.Y) <= tol {
			return true
		}
	}
	return false
}

// TestScenarioThreePointsCircumcenter is spec scenario 1: (1,0), (-1,0) and
// (0,1) all lie on the unit circle, so their one interior Voronoi vertex is
// the circumcenter (0,0).
func TestScenarioThreePointsCircumcenter(t *testing.T) {
	d := debugTestDiagram(t)
	for _, p := range []ovd.Point{ovd.NewPoint(1, 0), ovd.NewPoint(-1, 0), ovd.NewPoint(0, 1)} {
		if _, err := d.InsertPointSite(p); err != nil {
			t.Fatalf("InsertPointSite(%v): %v", p, err)
		}
	}
	if got := d.NumPointSites(); got != 3 {
		t.Fatalf("NumPointSites() = %d, want 3", got)
	}
	want := ovd.NewPoint(0, 0)
	if pts := interiorVertices(d, 5); !hasVertexNear(pts, want, 1e-6) {
		t.Errorf("no Voronoi vertex within 1e-6 of %v, got %v", want, pts)
	}
}

// TestScenarioFourPointsTwoVertices is spec scenario 2: (1,0), (-1,0),
// (0,sqrt(3)) and (0,-sqrt(3)) triangulate along the x-axis diagonal, with
// circumcenters at (0, +-1/sqrt(3)).
func TestScenarioFourPointsTwoVertices(t *testing.T) {
	d := debugTestDiagram(t)
	sqrt3 := math.Sqrt(3)
	for _, p := range []ovd.Point{
		ovd.NewPoint(1, 0), ovd.NewPoint(-1, 0),
		ovd.NewPoint(0, sqrt3), ovd.NewPoint(0, -sqrt3),
	} {
		if _, err := d.InsertPointSite(p); err != nil {
			t.Fatalf("InsertPointSite(%v): %v", p, err)
		}
	}
	k := 1 / sqrt3
	pts := interiorVertices(d, 5)
	if len(pts) != 2 {
		t.Fatalf("interior vertex count = %d, want 2 (got %v)", len(pts), pts)
	}
	if !hasVertexNear(pts, ovd.NewPoint(0, k), 1e-6) {
		t.Errorf("no vertex within 1e-6 of (0, %g), got %v", k, pts)
	}
	if !hasVertexNear(pts, ovd.NewPoint(0, -k), 1e-6) {
		t.Errorf("no vertex within 1e-6 of (0, %g), got %v", -k, pts)
	}
}

// TestScenarioSquareOneVertex is spec scenario 3: a square of points at
// (+-1, +-1) has exactly one interior Voronoi vertex, at the origin.
func TestScenarioSquareOneVertex(t *testing.T) {
	d := debugTestDiagram(t)
	for _, p := range []ovd.Point{
		ovd.NewPoint(1, 1), ovd.NewPoint(1, -1),
		ovd.NewPoint(-1, 1), ovd.NewPoint(-1, -1),
	} {
		if _, err := d.InsertPointSite(p); err != nil {
			t.Fatalf("InsertPointSite(%v): %v", p, err)
		}
	}
	pts := interiorVertices(d, 5)
	if len(pts) != 1 {
		t.Fatalf("interior vertex count = %d, want 1 (got %v)", len(pts), pts)
	}
	if !hasVertexNear(pts, ovd.NewPoint(0, 0), 1e-6) {
		t.Errorf("vertex %v not within 1e-6 of (0,0)", pts[0])
	}
}

// TestScenarioLineSiteSplitsTwoFaces is spec scenario 5: after the square
// of scenario 3, a segment between two of its corners must add exactly one
// line site, keep the point-site count at 4, and split its merged ring
// into exactly two new faces.
func TestScenarioLineSiteSplitsTwoFaces(t *testing.T) {
	d := debugTestDiagram(t)
	tr, err := d.InsertPointSite(ovd.NewPoint(1, 1))
	if err != nil {
		t.Fatalf("InsertPointSite(tr): %v", err)
	}
	br, err := d.InsertPointSite(ovd.NewPoint(1, -1))
	if err != nil {
		t.Fatalf("InsertPointSite(br): %v", err)
	}
	if _, err := d.InsertPointSite(ovd.NewPoint(-1, 1)); err != nil {
		t.Fatalf("InsertPointSite(tl): %v", err)
	}
	if _, err := d.InsertPointSite(ovd.NewPoint(-1, -1)); err != nil {
		t.Fatalf("InsertPointSite(bl): %v", err)
	}

	facesBefore := len(d.FaceIDs())
	ok, err := d.InsertLineSite(tr, br)
	if err != nil {
		t.Fatalf("InsertLineSite: %v", err)
	}
	if !ok {
		t.Fatalf("InsertLineSite returned ok=false")
	}
	facesAfter := len(d.FaceIDs())

	if got := d.NumLineSites(); got != 1 {
		t.Errorf("NumLineSites() = %d, want 1", got)
	}
	if got := d.NumPointSites(); got != 4 {
		t.Errorf("NumPointSites() = %d, want 4", got)
	}
	if got := facesAfter - facesBefore; got != 2 {
		t.Errorf("face count grew by %d, want 2 new faces", got)
	}
}

// TestScenarioRandomFuzzStaysValid is spec scenario 6: 1000 random points
// inside radius 9 (clear of far_radius=10), checking the post-insertion
// invariant checker after every single one via Debug mode.
func TestScenarioRandomFuzzStaysValid(t *testing.T) {
	d := debugTestDiagram(t)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		r := rng.Float64() * 9
		theta := rng.Float64() * 2 * math.Pi
		p := ovd.NewPoint(r*math.Cos(theta), r*math.Sin(theta))
		if _, err := d.InsertPointSite(p); err != nil {
			t.Fatalf("InsertPointSite(#%d, %v): %v", i, p, err)
		}
	}
	if got := d.NumPointSites(); got != 1000 {
		t.Errorf("NumPointSites() = %d, want 1000", got)
	}
}
