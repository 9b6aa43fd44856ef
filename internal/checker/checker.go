// Package checker implements the post-insertion invariant audit the
// diagram core treats as an external collaborator (§6), run after every
// insertion when the diagram is built with debug mode enabled.
//
// It operates purely against the View interface — the "friend-style
// checker access" of the original design notes, implemented here as an
// ordinary Go interface rather than a C++ friend class, so this package
// never imports the core ovd package and there is no import cycle.
package checker

import (
	"fmt"
	"math"
)

// View is the read-only window into the diagram the checker audits. ovd's
// Diagram satisfies this interface structurally.
type View interface {
	// VertexCount, EdgeCount (half-edges, twins counted separately) and
	// FaceCount return the arena's slot counts, alive or not — Vertex,
	// Edge and Face report liveness per-slot.
	VertexCount() int
	EdgeCount() int
	FaceCount() int

	// Vertex returns vertex i's position, clearance radius, status
	// ("UNDECIDED", "IN", "OUT", "NEW") and whether the slot is alive.
	Vertex(i int) (x, y, radius float64, status string, alive bool)
	// Edge returns half-edge i's source vertex, twin, next half-edge and
	// owning face indices, and whether the slot is alive.
	Edge(i int) (source, twin, next, face int, alive bool)
	// Face returns face i's incidence ("INCIDENT", "NONINCIDENT") and
	// whether the slot is alive.
	Face(i int) (incidence string, alive bool)
	// FaceIDs returns every alive face's index.
	FaceIDs() []int
	// PointT evaluates half-edge i's parametric curve at parameter t.
	PointT(edge int, t float64) (x, y float64)
	// Distance returns the distance from (x, y) to face i's generator
	// site.
	Distance(face int, x, y float64) float64

	// Tolerance is the numerical tolerance (τ in §8) invariant checks
	// should allow for.
	Tolerance() float64
}

// Check audits invariants 1, 4, 5, 6 and 7 of §3 and the Euler
// characteristic of §8 against v, returning the first violation found. A
// nil return means every audited invariant held; vertex degree
// (invariant 2) and the single outer face (invariant 3) are not audited.
func Check(v View) error {
	if err := checkTwinNextConsistency(v); err != nil {
		return err
	}
	if err := checkRestingStatus(v); err != nil {
		return err
	}
	if err := checkEulerCharacteristic(v); err != nil {
		return err
	}
	if err := checkClearanceRadius(v); err != nil {
		return err
	}
	if err := checkNearestSite(v); err != nil {
		return err
	}
	return nil
}

// checkTwinNextConsistency verifies invariant 1: twin(twin(e)) == e, that
// every edge's Next belongs to the same face, and that following Next from
// the first live edge of each face returns to it (the face cycle closes).
func checkTwinNextConsistency(v View) error {
	n := v.EdgeCount()
	for i := 0; i < n; i++ {
		source, twin, next, face, alive := v.Edge(i)
		_ = source
		if !alive {
			continue
		}
		_, twinOfTwin, _, _, twinAlive := v.Edge(twin)
		if !twinAlive {
			return fmt.Errorf("edge %d: twin %d is not alive", i, twin)
		}
		if twinOfTwin != i {
			return fmt.Errorf("edge %d: twin(twin(e)) = %d, want %d", i, twinOfTwin, i)
		}
		_, _, _, nextFace, nextAlive := v.Edge(next)
		if !nextAlive {
			return fmt.Errorf("edge %d: next %d is not alive", i, next)
		}
		if nextFace != face {
			return fmt.Errorf("edge %d: next %d belongs to face %d, want %d", i, next, nextFace, face)
		}
	}

	// every face's cycle must close within a bounded number of steps.
	for _, f := range v.FaceIDs() {
		_, alive := v.Face(f)
		if !alive {
			continue
		}
		start := -1
		for i := 0; i < n; i++ {
			_, _, _, face, edgeAlive := v.Edge(i)
			if edgeAlive && face == f {
				start = i
				break
			}
		}
		if start < 0 {
			continue
		}
		e := start
		steps := 0
		for {
			_, _, next, _, _ := v.Edge(e)
			e = next
			steps++
			if e == start {
				break
			}
			if steps > n+1 {
				return fmt.Errorf("face %d: next-cycle does not close", f)
			}
		}
	}
	return nil
}

// checkRestingStatus verifies invariants 5 and 6: between insertions every
// vertex is UNDECIDED and every face is NONINCIDENT.
func checkRestingStatus(v View) error {
	for i := 0; i < v.VertexCount(); i++ {
		_, _, _, status, alive := v.Vertex(i)
		if alive && status != "UNDECIDED" {
			return fmt.Errorf("vertex %d: status %s, want UNDECIDED between insertions", i, status)
		}
	}
	for _, f := range v.FaceIDs() {
		incidence, alive := v.Face(f)
		if alive && incidence != "NONINCIDENT" {
			return fmt.Errorf("face %d: incidence %s, want NONINCIDENT between insertions", f, incidence)
		}
	}
	return nil
}

// checkEulerCharacteristic verifies V - E/2 + F = 2 for the planar
// subdivision, counting the outer face.
func checkEulerCharacteristic(v View) error {
	vCount, eCount, fCount := 0, 0, 0
	for i := 0; i < v.VertexCount(); i++ {
		if _, _, _, _, alive := v.Vertex(i); alive {
			vCount++
		}
	}
	for i := 0; i < v.EdgeCount(); i++ {
		if _, _, _, _, alive := v.Edge(i); alive {
			eCount++
		}
	}
	for _, f := range v.FaceIDs() {
		if _, alive := v.Face(f); alive {
			fCount++
		}
	}
	euler := float64(vCount) - float64(eCount)/2 + float64(fCount)
	if math.Abs(euler-2) > 0.5 {
		return fmt.Errorf("euler characteristic V-E/2+F = %g, want 2 (V=%d E=%d F=%d)", euler, vCount, eCount, fCount)
	}
	return nil
}

// checkClearanceRadius verifies invariant 4: every vertex's stored radius
// matches its distance to every incident face's site within tolerance.
func checkClearanceRadius(v View) error {
	tol := v.Tolerance()
	for i := 0; i < v.EdgeCount(); i++ {
		source, _, _, face, alive := v.Edge(i)
		if !alive {
			continue
		}
		x, y, radius, status, vAlive := v.Vertex(source)
		if !vAlive || status != "UNDECIDED" {
			continue
		}
		d := v.Distance(face, x, y)
		if math.Abs(d-radius) > tol {
			return fmt.Errorf("vertex %d: distance to face %d site = %g, radius = %g (tol %g)", source, face, d, radius, tol)
		}
	}
	return nil
}

// checkNearestSite verifies invariant 7: for every edge, the point sampled
// at t=0.5 is at least as close to the edge's two bordering faces' sites
// as to any other face's site (modulo the bounding circle and numerical
// tolerance).
func checkNearestSite(v View) error {
	tol := v.Tolerance()
	faceIDs := v.FaceIDs()
	for i := 0; i < v.EdgeCount(); i++ {
		_, twin, _, face, alive := v.Edge(i)
		if !alive {
			continue
		}
		_, _, _, otherFace, _ := v.Edge(twin)
		x, y := v.PointT(i, 0.5)
		dHere := v.Distance(face, x, y)
		dThere := v.Distance(otherFace, x, y)
		bound := math.Max(dHere, dThere)
		for _, f := range faceIDs {
			if f == face || f == otherFace {
				continue
			}
			if _, alive := v.Face(f); !alive {
				continue
			}
			if v.Distance(f, x, y) < bound-tol {
				return fmt.Errorf("edge %d midpoint is closer to face %d than to its own faces %d/%d", i, f, face, otherFace)
			}
		}
	}
	return nil
}
