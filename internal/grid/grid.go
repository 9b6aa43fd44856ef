// Package grid implements the nearest-face spatial index the diagram core
// treats as an external collaborator (§6): a uniform bin grid over the
// diagram's bounding circle, searched by an expanding ring so a query near
// the edge of a sparse region doesn't need to touch every bin.
package grid

import (
	"github.com/boljen/go-bitmap"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/CatMou/openvoronoi/internal/geom"
)

// entry is one occupant of a bin: a face handle and the site position used
// to seed it.
type entry struct {
	faceID int
	pos    geom.Point
}

// Grid buckets face sites into a uniform NBins x NBins grid covering
// [-radius, radius]^2, with a bitmap marking which bins are non-empty so
// FindClosestFace's ring search skips an empty bin with a single bit test
// instead of reading its entry slice.
type Grid struct {
	bounds r2.Rect
	nbins  int
	cell   float64
	bins   [][]entry
	occ    bitmap.Bitmap
}

// New returns an empty grid covering [-radius, radius]^2 with nbins bins
// per axis.
func New(radius float64, nbins int) *Grid {
	if nbins < 1 {
		nbins = 1
	}
	bounds := r2.Rect{
		X: r1.Interval{Lo: -radius, Hi: radius},
		Y: r1.Interval{Lo: -radius, Hi: radius},
	}
	return &Grid{
		bounds: bounds,
		nbins:  nbins,
		cell:   (2 * radius) / float64(nbins),
		bins:   make([][]entry, nbins*nbins),
		occ:    bitmap.New(nbins * nbins),
	}
}

// Add registers faceID as occupying the bin containing site.
func (g *Grid) Add(faceID int, site geom.Point) {
	bx, by := g.binOf(site)
	idx := by*g.nbins + bx
	g.bins[idx] = append(g.bins[idx], entry{faceID: faceID, pos: site})
	g.occ.Set(idx, true)
}

// FindClosestFace returns the handle of the face whose registered site is
// closest to query, searching bins in expanding square rings around
// query's own bin. Every bin of ring k lies at least k-1 bin widths from
// query, so the search stops at the first ring whose bound already exceeds
// the best distance found.
func (g *Grid) FindClosestFace(query geom.Point) (int, bool) {
	cx, cy := g.binOf(query)

	best, bestDist := -1, 0.0

	for ring := 0; ring <= g.nbins; ring++ {
		if best >= 0 && float64(ring-1)*g.cell > bestDist {
			break
		}
		for bx := cx - ring; bx <= cx+ring; bx++ {
			for by := cy - ring; by <= cy+ring; by++ {
				if bx < 0 || bx >= g.nbins || by < 0 || by >= g.nbins {
					continue
				}
				// only the border of the current ring is new work.
				if ring > 0 && bx > cx-ring && bx < cx+ring && by > cy-ring && by < cy+ring {
					continue
				}
				idx := by*g.nbins + bx
				if !g.occ.Get(idx) {
					continue
				}
				for _, e := range g.bins[idx] {
					d := geom.Dist(query, e.pos)
					if best < 0 || d < bestDist {
						best, bestDist = e.faceID, d
					}
				}
			}
		}
	}
	return best, best >= 0
}

func (g *Grid) binOf(p geom.Point) (int, int) {
	bx := int((p.X - g.bounds.X.Lo) / g.cell)
	by := int((p.Y - g.bounds.Y.Lo) / g.cell)
	if bx < 0 {
		bx = 0
	}
	if bx >= g.nbins {
		bx = g.nbins - 1
	}
	if by < 0 {
		by = 0
	}
	if by >= g.nbins {
		by = g.nbins - 1
	}
	return bx, by
}
