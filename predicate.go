package ovd

import "container/heap"

// inCirclePredicate evaluates the signed in-circle predicate of site s
// against vertex v (§4.6): positive when v lies strictly inside the region
// closer to s than to any of v's defining sites, negative when strictly
// outside, zero on the boundary.
//
// v's clearance radius equals the distance from v to every site whose face
// meets at v (invariant 4), so "v is closer to s than to its defining
// sites" reduces to comparing v.Radius against s's distance to v. This
// single formula is deliberately uniform across PointSite and LineSite —
// LineSite.Distance already implements the point-to-segment distance that
// stands in for the shifted-site construction the distilled spec allows
// for ("exact formula depends on site kinds ... only the sign and
// magnitude are consumed").
func inCirclePredicate(g *Graph, s Site, v VertexID) float64 {
	vert := g.Vertex(v)
	return vert.Radius - s.Distance(vert.Position)
}

// vertexQueueItem pairs a vertex with the predicate value it was pushed
// with, per §9's "priority queue of (vertex, |predicate|): a max-heap keyed
// on magnitude; ties broken by insertion order."
type vertexQueueItem struct {
	vertex VertexID
	det    float64
	seq    int
}

// vertexQueue is a max-heap ordered by descending |det|, ties broken by
// insertion order (earlier pushes sort first).
type vertexQueue struct {
	items []vertexQueueItem
	seq   int
}

func newVertexQueue() *vertexQueue {
	return &vertexQueue{}
}

func (q *vertexQueue) Len() int { return len(q.items) }

func (q *vertexQueue) Less(i, j int) bool {
	ai, aj := absf(q.items[i].det), absf(q.items[j].det)
	if ai != aj {
		return ai > aj
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *vertexQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *vertexQueue) Push(x any) { q.items = append(q.items, x.(vertexQueueItem)) }

func (q *vertexQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// push enqueues v with its predicate value det, using heap.Push to restore
// the max-heap invariant.
func (q *vertexQueue) push(v VertexID, det float64) {
	heap.Push(q, vertexQueueItem{vertex: v, det: det, seq: q.seq})
	q.seq++
}

// pop removes and returns the item with the largest |det|.
func (q *vertexQueue) pop() (VertexID, float64) {
	item := heap.Pop(q).(vertexQueueItem)
	return item.vertex, item.det
}

func (q *vertexQueue) empty() bool { return len(q.items) == 0 }

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
