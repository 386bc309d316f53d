package period

import (
	"fmt"
	"time"

	"github.com/vedanga/dasha/ring"
)

// Partition splits a parent span into ring.Size contiguous child
// intervals, one per symbol, in ring order starting at startSym, with
// durations proportional to the table's weights. The produced intervals
// carry the given level (a parent at level L passes L+1).
//
// Contract:
//   - t non-nil; startSym a member of t; days ≥ MinSpanDays.
//   - start is normalized to UTC midnight before any arithmetic.
//
// The first eight shares are rounded individually (ToDays, one-day
// floor); the ninth is never rounded: it is forced to the remaining
// days, so the children always sum to the parent exactly. When the
// forced remainder falls below one day it is clamped up and the deficit
// borrowed from the nearest earlier sibling longer than one day.
//
// Errors: ErrNilTable, ErrSpanTooSmall, ring.ErrUnknownSymbol.
//
// Complexity: O(ring.Size) time; allocates the nine intervals and the
// transient share rationals.
func Partition(start time.Time, days int, startSym ring.Symbol, t *ring.Table, level int) ([]*Interval, error) {
	// Stage 1: validate inputs before touching any arithmetic.
	if t == nil {
		return nil, ErrNilTable
	}
	if days < MinSpanDays {
		return nil, fmt.Errorf("%w: %d days, want ≥ %d", ErrSpanTooSmall, days, MinSpanDays)
	}
	order, err := t.RotateFrom(startSym)
	if err != nil {
		return nil, err
	}
	start = Midnight(start)

	// Stage 2: round the first eight shares; the ninth absorbs the rest.
	var (
		total   = t.Total()
		lengths [ring.Size]int
		used    int
	)
	for i := 0; i < ring.Size-1; i++ {
		lengths[i] = ToDays(Share(days, order[i].Weight, total))
		used += lengths[i]
	}
	last := days - used

	// Stage 3: borrow when the forced remainder is under the one-day
	// floor. Walk from the eighth sibling backwards, taking one day at a
	// time from the nearest sibling longer than one day. For
	// days ≥ MinSpanDays a donor always exists: while last < 1 the eight
	// rounded shares hold more than days−1 ≥ 8 days between them.
	for j := ring.Size - 2; last < 1 && j >= 0; j-- {
		for last < 1 && lengths[j] > 1 {
			lengths[j]--
			last++
		}
	}
	if last < 1 {
		return nil, fmt.Errorf("%w: %d days left no remainder for the final share", ErrSpanTooSmall, days)
	}
	lengths[ring.Size-1] = last

	// Stage 4: materialize contiguous intervals in ring order.
	out := make([]*Interval, ring.Size)
	cursor := start
	for i, e := range order {
		end := AddDays(cursor, lengths[i])
		out[i] = &Interval{Sym: e.Sym, Start: cursor, End: end, Level: level}
		cursor = end
	}

	return out, nil
}
