package ovd

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the conditions that need no extra context beyond
// their own message, following the teacher's ErrCannotMeetDesiredDistricts
// package-level-var idiom.
var (
	// ErrOutsideFarCircle is returned when a site does not lie strictly
	// inside the configured far radius.
	ErrOutsideFarCircle = errors.New("site lies outside (or on) the far circle")
	// ErrCoincidentSite is returned when a point site coincides with an
	// existing point site.
	ErrCoincidentSite = errors.New("point site coincides with an existing site")
	// ErrDegenerateSegment is returned when a line site's two endpoints
	// are the same point.
	ErrDegenerateSegment = errors.New("line site endpoints coincide")
	// ErrUnknownHandle is returned when insert_line_site is given a point
	// handle the diagram does not recognize.
	ErrUnknownHandle = errors.New("unknown point-site handle")
	// ErrSegmentIntersects is returned when a new line site would cross an
	// existing one.
	ErrSegmentIntersects = errors.New("line site crosses an existing segment")
)

// InvalidSiteError is error kind 1 (§7): the input point lies outside the
// far circle, coincides with an existing site, or the segment is
// self-intersecting/degenerate/crossing. The diagram is left unchanged.
type InvalidSiteError struct {
	Cause error
}

func (e *InvalidSiteError) Error() string {
	return fmt.Sprintf("invalid site: %v", e.Cause)
}

func (e *InvalidSiteError) Unwrap() error { return e.Cause }

func newInvalidSite(cause error) *InvalidSiteError {
	return &InvalidSiteError{Cause: errors.WithStack(cause)}
}

// PredicateUndecidableError is error kind 2 (§7): the flood fill reached a
// state where the in/out classification of the remaining queued vertices
// could not be resolved. Fatal to the insertion in progress; the diagram
// is rolled back to its pre-insertion state.
type PredicateUndecidableError struct {
	Vertex    VertexID
	Predicate float64
}

func (e *PredicateUndecidableError) Error() string {
	return fmt.Sprintf("predicate undecidable at vertex %d (det=%g)", e.Vertex, e.Predicate)
}

// PositionerFailedError is error kind 3 (§7): the bisector solver could not
// converge, or returned a position outside the expected region. Rolled
// back identically to InvalidSiteError/PredicateUndecidableError.
type PositionerFailedError struct {
	Cause error
}

func (e *PositionerFailedError) Error() string {
	return fmt.Sprintf("positioner failed: %v", e.Cause)
}

func (e *PositionerFailedError) Unwrap() error { return e.Cause }

func newPositionerFailed(cause error) *PositionerFailedError {
	return &PositionerFailedError{Cause: errors.WithStack(cause)}
}

// InvariantViolatedError is error kind 4 (§7): the post-insertion checker
// failed. Fatal; the diagram is not guaranteed restorable past this point.
type InvariantViolatedError struct {
	Cause error
}

func (e *InvariantViolatedError) Error() string {
	return fmt.Sprintf("diagram invariant violated: %v", e.Cause)
}

func (e *InvariantViolatedError) Unwrap() error { return e.Cause }
