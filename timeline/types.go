// Package timeline: anchor type, options, sentinel errors, and level
// constants.
package timeline

import (
	"errors"
	"math"
	"time"

	"github.com/vedanga/dasha/ring"
)

// Sentinel errors for building and querying a timeline.
var (
	// ErrMissingAnchor indicates an unusable anchor: zero birth date,
	// progress outside [0,1) or not a number, or a start symbol absent
	// from the table.
	ErrMissingAnchor = errors.New("timeline: anchor missing or malformed")

	// ErrOutOfRange indicates a query date outside the built timeline,
	// either before birth or past the eagerly built horizon.
	ErrOutOfRange = errors.New("timeline: date outside the built timeline")

	// ErrBadLevel indicates a requested depth outside [1, MaxLevel].
	ErrBadLevel = errors.New("timeline: level outside the supported range")

	// ErrBadYearLength indicates a non-positive or non-finite value
	// passed to WithYearLengthDays.
	ErrBadYearLength = errors.New("timeline: year length must be positive and finite")

	// ErrBadHorizonIntervals indicates a value below 1 passed to
	// WithHorizonIntervals.
	ErrBadHorizonIntervals = errors.New("timeline: horizon must be at least one interval")
)

const (
	// MaxLevel is the deepest supported nesting depth. Level 1 holds the
	// major periods; each further level is one ninefold subdivision.
	// Beyond six levels every interval is shorter than a day.
	MaxLevel = 6

	// DefaultYearLengthDays converts weight-years to days: the Julian
	// year, the conventional constant for period lengths.
	DefaultYearLengthDays = 365.25

	// DefaultHorizonIntervals is the number of level-1 intervals built
	// eagerly: the balance plus a full cycle plus wrap-around covers the
	// longest practical life span under the canonical table.
	DefaultHorizonIntervals = 12
)

// dateLayout formats dates in error context.
const dateLayout = "2006-01-02"

// maxYearLengthDays caps the conversion constant so interval lengths in
// days stay within int range; it also rejects +Inf.
const maxYearLengthDays = 1e6

// Anchor is the external input a timeline grows from: the birth date
// and the position within the cycle at that instant, computed upstream
// by an ephemeris collaborator.
type Anchor struct {
	// Birth is the civil birth date. Clock time and zone are ignored;
	// the date is normalized to its UTC midnight.
	Birth time.Time

	// Start is the symbol whose period is running at birth.
	Start ring.Symbol

	// Progress is the elapsed fraction of Start's full period at birth,
	// in [0,1). Zero means the period began exactly at birth.
	Progress float64
}

// Options configures timeline construction.
//
// YearLengthDays   – days per weight-year (must be positive and finite).
// HorizonIntervals – how many level-1 intervals to build eagerly (≥ 1).
type Options struct {
	YearLengthDays   float64 // conversion constant, weight-years to days
	HorizonIntervals int     // length of the eagerly built level-1 list
}

// Option is a functional option for timeline construction.
type Option func(*Options)

// WithYearLengthDays overrides the weight-year length in days, e.g. 365
// for a plain civil-year convention. The value must be positive and
// finite; nonsense panics with ErrBadYearLength.
func WithYearLengthDays(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d <= 0 || d > maxYearLengthDays {
			panic(ErrBadYearLength.Error())
		}
		o.YearLengthDays = d
	}
}

// WithHorizonIntervals overrides how many level-1 intervals Build
// materializes. Values below 1 panic with ErrBadHorizonIntervals.
func WithHorizonIntervals(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadHorizonIntervals.Error())
		}
		o.HorizonIntervals = n
	}
}

// DefaultOptions returns the single source of truth for timeline
// defaults. Use as a starting point for functional-option overrides.
//
// Defaults:
//   - YearLengthDays:   DefaultYearLengthDays (365.25).
//   - HorizonIntervals: DefaultHorizonIntervals (12).
func DefaultOptions() Options {
	return Options{
		YearLengthDays:   DefaultYearLengthDays,
		HorizonIntervals: DefaultHorizonIntervals,
	}
}
