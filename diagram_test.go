package ovd_test

import (
	"testing"

	ovd "github.com/CatMou/openvoronoi"
)

func newTestDiagram(t *testing.T) *ovd.Diagram {
	t.Helper()
	d, err := ovd.New(ovd.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestInsertSinglePointSite(t *testing.T) {
	d := newTestDiagram(t)
	handle, err := d.InsertPointSite(ovd.NewPoint(1, 1))
	if err != nil {
		t.Fatalf("InsertPointSite: %v", err)
	}
	if d.NumPointSites() != 1 {
		t.Errorf("NumPointSites() = %d, want 1", d.NumPointSites())
	}
	if _, err := d.InsertPointSite(ovd.NewPoint(1, 1)); err == nil {
		t.Errorf("re-inserting handle %d's position: got nil error, want ErrCoincidentSite", handle)
	}
}

func TestInsertMultiplePointSites(t *testing.T) {
	d := newTestDiagram(t)
	pts := []ovd.Point{
		ovd.NewPoint(3, 2),
		ovd.NewPoint(-4, 1),
		ovd.NewPoint(0, -5),
		ovd.NewPoint(2, 4),
		ovd.NewPoint(-2, -2),
	}
	for i, p := range pts {
		if _, err := d.InsertPointSite(p); err != nil {
			t.Fatalf("InsertPointSite(%d) = %v", i, err)
		}
	}
	if got, want := d.NumPointSites(), len(pts); got != want {
		t.Errorf("NumPointSites() = %d, want %d", got, want)
	}
	if d.NumVertices() == 0 {
		t.Errorf("NumVertices() = 0 after %d insertions", len(pts))
	}
}

func TestInsertPointSiteOutsideFarCircle(t *testing.T) {
	d := newTestDiagram(t)
	far := d.GetFarRadius() + 1
	if _, err := d.InsertPointSite(ovd.NewPoint(far, 0)); err == nil {
		t.Errorf("InsertPointSite outside far circle: got nil error")
	}
}

func TestInsertLineSiteBetweenPointSites(t *testing.T) {
	d := newTestDiagram(t)
	a, err := d.InsertPointSite(ovd.NewPoint(-3, 0))
	if err != nil {
		t.Fatalf("InsertPointSite(a): %v", err)
	}
	b, err := d.InsertPointSite(ovd.NewPoint(3, 0))
	if err != nil {
		t.Fatalf("InsertPointSite(b): %v", err)
	}
	ok, err := d.InsertLineSite(a, b)
	if err != nil {
		t.Fatalf("InsertLineSite: %v", err)
	}
	if !ok {
		t.Errorf("InsertLineSite returned ok=false, want true")
	}
	if d.NumLineSites() != 1 {
		t.Errorf("NumLineSites() = %d, want 1", d.NumLineSites())
	}
}

func TestInsertLineSiteDegenerate(t *testing.T) {
	d := newTestDiagram(t)
	a, err := d.InsertPointSite(ovd.NewPoint(1, 1))
	if err != nil {
		t.Fatalf("InsertPointSite: %v", err)
	}
	if _, err := d.InsertLineSite(a, a); err == nil {
		t.Errorf("InsertLineSite(a, a): got nil error, want ErrDegenerateSegment")
	}
}

func TestInsertLineSiteUnknownHandle(t *testing.T) {
	d := newTestDiagram(t)
	a, err := d.InsertPointSite(ovd.NewPoint(1, 1))
	if err != nil {
		t.Fatalf("InsertPointSite: %v", err)
	}
	if _, err := d.InsertLineSite(a, a+1000); err == nil {
		t.Errorf("InsertLineSite with unknown handle: got nil error")
	}
}

func TestPrintDoesNotPanic(t *testing.T) {
	d := newTestDiagram(t)
	for _, p := range []ovd.Point{ovd.NewPoint(1, 2), ovd.NewPoint(-2, -1), ovd.NewPoint(4, -3)} {
		if _, err := d.InsertPointSite(p); err != nil {
			t.Fatalf("InsertPointSite: %v", err)
		}
	}
	if out := d.Print(); out == "" {
		t.Errorf("Print() returned empty string")
	}
}

func TestVersionIsStable(t *testing.T) {
	d := newTestDiagram(t)
	if d.Version() == "" {
		t.Errorf("Version() returned empty string")
	}
}
