package ovd

import (
	"image/color"

	"github.com/fogleman/gg"
)

// DebugRender rasterizes every live half-edge and vertex into a size x size
// PNG-ready context, scaled to fit the far circle. The distilled spec
// leaves print()/rendering explicitly "not specified bit-exact," so this is
// a debug aid rather than a golden-output surface — the teacher's own
// citymap.go reaches for the same library for exactly this kind of
// non-bit-exact raster dump (§7).
func (d *Diagram) DebugRender(size int) *gg.Context {
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	scale := float64(size) / (2.2 * d.cfg.FarRadius)
	center := float64(size) / 2
	toScreen := func(x, y float64) (float64, float64) {
		return center + x*scale, center - y*scale
	}

	dc.SetColor(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})
	for i := 0; i < d.graph.EdgeSlots(); i++ {
		e := d.graph.Edge(EdgeID(i))
		if !e.alive() {
			continue
		}
		const steps = 16
		px, py := toScreen(e.Point(0).X, e.Point(0).Y)
		dc.MoveTo(px, py)
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			x, y := toScreen(e.Point(t).X, e.Point(t).Y)
			dc.LineTo(x, y)
		}
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	dc.SetColor(color.RGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0xff})
	for i := 0; i < d.graph.VertexSlots(); i++ {
		v := d.graph.Vertex(VertexID(i))
		if !v.alive() || v.Status != Undecided {
			continue
		}
		x, y := toScreen(v.Position.X, v.Position.Y)
		dc.DrawCircle(x, y, 2)
		dc.Fill()
	}

	return dc
}
