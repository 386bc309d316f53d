// SPDX-License-Identifier: MIT

package sandhi

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/vedanga/dasha/period"
)

// Collect reports the transition windows of a contiguous sibling run
// that intersect the horizon [from, from+horizonDays).
//
// For each junction between adjacent siblings A and B the window spans
// [A.End − half, A.End + half), where half is the rounded value of
// percent × min(A.Days, B.Days) / 2. There is no one-day floor here: a
// half that rounds to zero collapses the window and the junction is
// skipped. With percent ≤ 1 a window never reaches past the midpoint
// of either neighbour.
//
// Windows are emitted whole: any overlap with the horizon keeps the
// window, including the part outside it. Fewer than two siblings means
// no junctions and yields an empty result.
//
// Errors: ErrBadHorizon, ErrNotContiguous, ErrBadPercent.
func Collect(siblings []*period.Interval, from time.Time, horizonDays int, opts ...Option) ([]Window, error) {
	// Stage 1: validate the horizon and the run shape.
	if horizonDays < 1 {
		return nil, fmt.Errorf("%w: %d days", ErrBadHorizon, horizonDays)
	}
	opt := DefaultOptions()
	for _, o := range opts {
		o(&opt)
	}
	if err := validateRun(siblings); err != nil {
		return nil, err
	}
	if len(siblings) < 2 {
		return nil, nil
	}

	// Stage 2: pin the percent for this run's level. One run is one
	// level, so a single fetch covers every junction.
	level := siblings[0].Level
	pct := opt.PercentFor(level)
	if math.IsNaN(pct) || pct < 0 || pct > 1 {
		return nil, fmt.Errorf("%w: %v at level %d", ErrBadPercent, pct, level)
	}
	pr := new(big.Rat).SetFloat64(pct)

	// Stage 3: walk the junctions.
	f := period.Midnight(from)
	to := period.AddDays(f, horizonDays)
	out := make([]Window, 0, len(siblings)-1)
	r := new(big.Rat)
	for i := 1; i < len(siblings); i++ {
		a, b := siblings[i-1], siblings[i]
		minDays := a.Days()
		if d := b.Days(); d < minDays {
			minDays = d
		}

		r.SetInt64(int64(minDays))
		r.Mul(r, pr)
		r.Quo(r, two)
		half := period.RoundHalfEven(r)
		if half == 0 {
			continue // window collapses to nothing
		}

		start := period.AddDays(a.End, -half)
		end := period.AddDays(a.End, half)
		if !start.Before(to) || !end.After(f) {
			continue // no overlap with the horizon
		}

		out = append(out, Window{
			From:       a.Sym,
			To:         b.Sym,
			Level:      level,
			Transition: a.End,
			Start:      start,
			End:        end,
		})
	}

	return out, nil
}

// two halves the percent share of the shorter neighbour.
var two = big.NewRat(2, 1)

// validateRun rejects runs Collect cannot walk: nil or inverted
// intervals, gaps or overlaps between neighbours, mixed levels.
func validateRun(siblings []*period.Interval) error {
	for i, iv := range siblings {
		if iv == nil {
			return fmt.Errorf("%w: nil interval at index %d", ErrNotContiguous, i)
		}
		if !iv.End.After(iv.Start) {
			return fmt.Errorf("%w: empty or inverted interval at index %d", ErrNotContiguous, i)
		}
		if i == 0 {
			continue
		}
		if iv.Level != siblings[0].Level {
			return fmt.Errorf("%w: level %d at index %d, want %d",
				ErrNotContiguous, iv.Level, i, siblings[0].Level)
		}
		if !iv.Start.Equal(siblings[i-1].End) {
			return fmt.Errorf("%w: gap or overlap at index %d", ErrNotContiguous, i)
		}
	}

	return nil
}
