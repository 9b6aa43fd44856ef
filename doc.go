// Package ovd implements the incremental construction of a Voronoi diagram
// for point and line-segment sites bounded by a circular domain. Sites are
// inserted one at a time: each insertion locates the region of the diagram
// that the new site invalidates, deletes the vertices that can no longer be
// Voronoi vertices, computes the replacement vertices from the bisector
// equations of the sites involved, and re-stitches the half-edge topology
// around the affected faces.
//
// The half-edge graph, vertex/edge attributes, the in-circle predicate
// queue, the delete-region flood fill, and face reconstruction are the core
// of this package. Geometric primitives, the bisector-intersection solver,
// the nearest-face spatial index, and the post-insertion checker are each
// behind a narrow interface and have a default implementation in an
// internal subpackage, wired together by New.
package ovd
