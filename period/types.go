// Package period: interval type, sentinel errors, and span constants.
package period

import (
	"errors"
	"time"

	"github.com/vedanga/dasha/ring"
)

// Sentinel errors for partitioning.
var (
	// ErrNilTable indicates a nil *ring.Table passed to Partition.
	ErrNilTable = errors.New("period: weight table is nil")

	// ErrSpanTooSmall indicates a parent span too short to hold nine
	// children of at least one day each.
	ErrSpanTooSmall = errors.New("period: span too small to partition")
)

// MinSpanDays is the shortest parent span Partition accepts: one day
// per child of the ninefold split. Spans below this are leaves; the
// subdivision is undefined for them and descent stops there.
const MinSpanDays = ring.Size

// Interval is one labeled span of the timeline: a symbol active from
// Start (inclusive) to End (exclusive), at a given nesting level
// (1 = outermost). Both bounds are UTC midnights; the duration is
// always a whole, positive number of days.
//
// An Interval is owned by the structure that produced it (its parent
// interval, or the level-1 builder) and is never mutated after
// construction, with one write-once exception: the lazily computed
// child list cached by Children.
type Interval struct {
	// Sym labels the interval and seeds its own subdivision.
	Sym ring.Symbol

	// Start is the first day of the interval (UTC midnight).
	Start time.Time

	// End is the first day after the interval (UTC midnight, exclusive).
	End time.Time

	// Level is the nesting depth, 1 for top-level periods.
	Level int

	// children caches the ninefold subdivision. nil until Children is
	// first called; assigned exactly once, never replaced.
	children []*Interval
}

// Days returns the interval's duration in whole days.
func (iv *Interval) Days() int { return DaysBetween(iv.Start, iv.End) }

// Contains reports whether date falls inside the half-open span
// [Start, End). A date equal to End belongs to the next sibling.
func (iv *Interval) Contains(date time.Time) bool {
	return !date.Before(iv.Start) && date.Before(iv.End)
}

// Expanded reports whether the child list has already been computed.
// Useful to assert laziness: resolving a date must expand only the
// branch it visits.
func (iv *Interval) Expanded() bool { return iv.children != nil }

// Children returns the interval's ninefold subdivision, computing and
// caching it on first call. The subdivision is self-seeded: a parent
// labeled X starts its child rotation at X.
//
// The returned slice is the cached one; callers must treat it as
// read-only. First calls from multiple goroutines race on the cache;
// see the package doc for the confinement rules.
//
// Errors: ErrNilTable, ErrSpanTooSmall (spans under MinSpanDays stay
// leaves), ring.ErrUnknownSymbol. Errors are not cached; a failed call
// leaves the interval unexpanded.
func (iv *Interval) Children(t *ring.Table) ([]*Interval, error) {
	if iv.children != nil {
		return iv.children, nil
	}

	kids, err := Partition(iv.Start, iv.Days(), iv.Sym, t, iv.Level+1)
	if err != nil {
		return nil, err
	}
	iv.children = kids

	return kids, nil
}
