package ovd

// Face is one entry in the graph's face arena. Faces are created once per
// inserted site and never destroyed (§3 Lifecycle).
type Face struct {
	// Edge is an arbitrary half-edge on this face's boundary cycle.
	Edge EdgeID
	// Site is the generator of this face.
	Site Site
	// Incidence tracks whether the insertion in progress has touched this
	// face. Always NonIncident between insertions (invariant 6).
	Incidence FaceIncidence

	deleted bool
}

func (f *Face) alive() bool {
	return !f.deleted
}
