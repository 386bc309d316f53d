// SPDX-License-Identifier: MIT

// Package sandhi: window type, options, and sentinel errors.
package sandhi

import (
	"errors"
	"time"

	"github.com/vedanga/dasha/ring"
)

// Sentinel errors for window collection.
var (
	// ErrBadPercent indicates an unusable transition percent: outside
	// [0,1], not a number, or a nil percent function.
	ErrBadPercent = errors.New("sandhi: invalid transition percent")

	// ErrBadHorizon indicates a horizon shorter than one day.
	ErrBadHorizon = errors.New("sandhi: horizon must be at least one day")

	// ErrNotContiguous indicates a sibling list that is not a contiguous
	// ascending run: a nil or inverted interval, a gap or overlap
	// between neighbours, or mixed nesting levels.
	ErrNotContiguous = errors.New("sandhi: siblings not a contiguous run")
)

// DefaultPercent is the flat transition width: one tenth of the
// shorter neighbour, split evenly around the junction day.
const DefaultPercent = 0.10

// Window is one transition zone: the span around the junction between
// two adjacent intervals where the outgoing symbol's influence fades
// into the incoming one's.
type Window struct {
	// From is the symbol whose interval ends at the junction.
	From ring.Symbol

	// To is the symbol whose interval begins at the junction.
	To ring.Symbol

	// Level is the nesting level of the two intervals.
	Level int

	// Transition is the junction day itself: the first day of To.
	Transition time.Time

	// Start is the first day of the window (UTC midnight, inclusive).
	Start time.Time

	// End is the first day after the window (UTC midnight, exclusive).
	End time.Time
}

// Options configures window collection.
//
// PercentFor – window width as a fraction of the shorter neighbour,
// per nesting level. Values must lie in [0,1]; 0 yields no windows.
type Options struct {
	PercentFor func(level int) float64
}

// Option is a functional option for window collection.
type Option func(*Options)

// WithPercentFor overrides the per-level transition percent, e.g. wider
// windows for slow outer periods and narrower for fast inner ones.
// A nil function panics with ErrBadPercent; returned values are
// validated when Collect runs.
func WithPercentFor(fn func(level int) float64) Option {
	return func(o *Options) {
		if fn == nil {
			panic(ErrBadPercent.Error())
		}
		o.PercentFor = fn
	}
}

// DefaultOptions returns the single source of truth for collection
// defaults: a flat DefaultPercent at every level.
func DefaultOptions() Options {
	return Options{
		PercentFor: func(int) float64 { return DefaultPercent },
	}
}
