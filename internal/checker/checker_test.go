package checker_test

import (
	"math"
	"testing"

	"github.com/CatMou/openvoronoi/internal/checker"
)

// fakeView is a minimal checker.View: a single triangle bounding one
// inner and one outer face, each generated by a point site at the origin
// — enough to exercise every invariant without pulling in the full engine.
type fakeView struct {
	vx, vy []float64
	radius []float64
	status []string

	esrc, etwin, enext, eface []int

	finc []string
}

func newFakeTriangle() *fakeView {
	v := &fakeView{
		vx: []float64{10, -10, 0}, vy: []float64{0, 0, 17.3},
		radius: make([]float64, 3),
		status: []string{"UNDECIDED", "UNDECIDED", "UNDECIDED"},
		finc:   []string{"NONINCIDENT", "NONINCIDENT"},
	}
	for i := range v.vx {
		v.radius[i] = math.Hypot(v.vx[i], v.vy[i])
	}
	// forward triangle (face 0): 0->1->2->0 ; backward (face 1): 0->2->1->0
	v.esrc = []int{0, 1, 2, 1, 2, 0}
	v.etwin = []int{3, 4, 5, 0, 1, 2}
	v.enext = []int{1, 2, 0, 5, 3, 4}
	v.eface = []int{0, 0, 0, 1, 1, 1}
	return v
}

func (v *fakeView) VertexCount() int { return len(v.vx) }
func (v *fakeView) EdgeCount() int   { return len(v.esrc) }
func (v *fakeView) FaceCount() int   { return len(v.finc) }

func (v *fakeView) Vertex(i int) (x, y, radius float64, status string, alive bool) {
	return v.vx[i], v.vy[i], v.radius[i], v.status[i], true
}

func (v *fakeView) Edge(i int) (source, twin, next, face int, alive bool) {
	return v.esrc[i], v.etwin[i], v.enext[i], v.eface[i], true
}

func (v *fakeView) Face(i int) (incidence string, alive bool) {
	return v.finc[i], true
}

func (v *fakeView) FaceIDs() []int { return []int{0, 1} }

func (v *fakeView) PointT(edge int, t float64) (x, y float64) {
	a := v.esrc[edge]
	b := v.esrc[v.enext[edge]]
	return v.vx[a] + (v.vx[b]-v.vx[a])*t, v.vy[a] + (v.vy[b]-v.vy[a])*t
}

func (v *fakeView) Distance(face int, x, y float64) float64 {
	return math.Hypot(x, y)
}

func (v *fakeView) Tolerance() float64 { return 1e-6 }

func TestCheckPassesOnConsistentTriangle(t *testing.T) {
	if err := checker.Check(newFakeTriangle()); err != nil {
		t.Errorf("Check: %v", err)
	}
}

func TestCheckCatchesBrokenTwin(t *testing.T) {
	v := newFakeTriangle()
	v.etwin[0] = 1 // breaks twin(twin(e)) == e
	if err := checker.Check(v); err == nil {
		t.Errorf("Check on a broken twin pairing: got nil error")
	}
}

func TestCheckCatchesRestingStatusViolation(t *testing.T) {
	v := newFakeTriangle()
	v.status[0] = "IN"
	if err := checker.Check(v); err == nil {
		t.Errorf("Check with a vertex stuck IN between insertions: got nil error")
	}
}
