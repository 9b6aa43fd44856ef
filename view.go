package ovd

import "github.com/CatMou/openvoronoi/internal/geom"

// This file implements internal/checker's View interface against Diagram,
// so Check(d) can audit the live graph without checker importing ovd (§6:
// "the friend-style checker access of the original design notes,
// implemented as a Go interface rather than a C++ friend class").

func (d *Diagram) VertexCount() int { return d.graph.VertexSlots() }
func (d *Diagram) EdgeCount() int   { return d.graph.EdgeSlots() }
func (d *Diagram) FaceCount() int   { return d.graph.FaceSlots() }

func (d *Diagram) Vertex(i int) (x, y, radius float64, status string, alive bool) {
	v := d.graph.Vertex(VertexID(i))
	return v.Position.X, v.Position.Y, v.Radius, v.Status.String(), v.alive()
}

func (d *Diagram) Edge(i int) (source, twin, next, face int, alive bool) {
	e := d.graph.Edge(EdgeID(i))
	return int(e.Source), int(e.Twin), int(e.Next), int(e.Face), e.alive()
}

func (d *Diagram) Face(i int) (incidence string, alive bool) {
	f := d.graph.Face(FaceID(i))
	inc := "NONINCIDENT"
	if f.Incidence == Incident {
		inc = "INCIDENT"
	}
	return inc, f.alive()
}

func (d *Diagram) FaceIDs() []int {
	var out []int
	for i := 0; i < d.graph.FaceSlots(); i++ {
		if d.graph.Face(FaceID(i)).alive() {
			out = append(out, i)
		}
	}
	return out
}

func (d *Diagram) PointT(edge int, t float64) (x, y float64) {
	p := d.graph.Edge(EdgeID(edge)).Point(t)
	return p.X, p.Y
}

func (d *Diagram) Distance(face int, x, y float64) float64 {
	return d.graph.Face(FaceID(face)).Site.Distance(geom.New(x, y))
}

func (d *Diagram) Tolerance() float64 {
	return d.cfg.FarRadius * 1e-6
}
