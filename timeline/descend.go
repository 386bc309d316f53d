package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/vedanga/dasha/period"
	"github.com/vedanga/dasha/ring"
)

// Resolve locates the interval chain active on a date: one interval per
// level, outermost first, down to maxLevel. The level-1 list is
// bisected; deeper levels expand lazily through Children, so repeated
// queries along a visited path recompute nothing.
//
// The chain may legitimately be shorter than maxLevel: descent stops
// without error at an interval narrower than period.MinSpanDays, where
// the ninefold subdivision is undefined. Such tail leaves appear only
// at extreme depth.
//
// Errors: ErrOutOfRange (date before the first interval or past the
// built horizon), ErrBadLevel (maxLevel outside [1, MaxLevel]),
// period.ErrNilTable.
func Resolve(levels []*period.Interval, date time.Time, maxLevel int, t *ring.Table) ([]*period.Interval, error) {
	// Stage 1: validate query parameters.
	if t == nil {
		return nil, fmt.Errorf("timeline: resolve: %w", period.ErrNilTable)
	}
	if maxLevel < 1 || maxLevel > MaxLevel {
		return nil, fmt.Errorf("%w: maxLevel %d outside [1, %d]", ErrBadLevel, maxLevel, MaxLevel)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: timeline is empty", ErrOutOfRange)
	}

	d := period.Midnight(date)
	if d.Before(levels[0].Start) {
		return nil, fmt.Errorf("%w: %s precedes birth %s",
			ErrOutOfRange, d.Format(dateLayout), levels[0].Start.Format(dateLayout))
	}
	if last := levels[len(levels)-1]; !d.Before(last.End) {
		return nil, fmt.Errorf("%w: %s is past the built horizon %s",
			ErrOutOfRange, d.Format(dateLayout), last.End.Format(dateLayout))
	}

	// Stage 2: bisect the level-1 list. The range checks above
	// guarantee a hit: the first interval whose End exceeds d holds it.
	i := sort.Search(len(levels), func(i int) bool { return d.Before(levels[i].End) })
	cur := levels[i]

	// Stage 3: descend, expanding one branch per level.
	chain := make([]*period.Interval, 1, maxLevel)
	chain[0] = cur
	for level := 2; level <= maxLevel; level++ {
		if cur.Days() < period.MinSpanDays {
			break // leaf: too narrow for nine one-day children
		}
		kids, err := cur.Children(t)
		if err != nil {
			return nil, fmt.Errorf("timeline: resolve at level %d: %w", level, err)
		}

		child := containing(kids, d)
		if child == nil {
			// Children tile the parent exactly, so d ∈ cur implies a hit.
			return nil, fmt.Errorf("timeline: resolve: no child of %s holds %s",
				cur.Sym, d.Format(dateLayout))
		}
		chain = append(chain, child)
		cur = child
	}

	return chain, nil
}

// containing scans nine siblings for the one holding d. Linear: the
// list is a single ring rotation.
func containing(kids []*period.Interval, d time.Time) *period.Interval {
	for _, k := range kids {
		if k.Contains(d) {
			return k
		}
	}

	return nil
}
