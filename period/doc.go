// Package period provides the partitioning primitive of a dasha
// timeline: whole-day calendar intervals, the exact rounding policy,
// and the ninefold proportional split of a parent span into contiguous
// child spans.
//
// 🚀 What does period do?
//
//	Given a parent span (start date, whole-day duration, starting
//	symbol) and a ring.Table, Partition produces nine contiguous
//	child intervals whose durations are proportional to the table's
//	weights, rotated to begin at the starting symbol. The same
//	primitive applies at every nesting level, so a multi-decade span
//	subdivides into years, months, days, always exactly, never
//	drifting.
//
// ✨ Guarantees (hold at every level, for every table):
//   - Sum: child durations add up to the parent duration exactly.
//   - Contiguity: each child starts where the previous one ends; the
//     first starts at the parent start, the last ends at the parent end.
//   - Ring order: child symbols are the table rotated to the start
//     symbol.
//   - Floor: every child lasts at least one day.
//
// The guarantees come from two deliberate choices: all share arithmetic
// is exact rational (math/big.Rat) funnelled through a single rounding
// boundary (RoundHalfEven/ToDays), and the ninth child is never rounded
// independently: it absorbs the remainder, borrowing from earlier
// siblings when the remainder would fall below the one-day floor.
//
// ⚙️ Usage:
//
//	t := ring.Vimshottari()
//	kids, err := period.Partition(period.Date(2000, 1, 1), 7300, ring.Venus, t, 2)
//	// kids: Venus, Sun, Moon, ... Ketu, contiguous, summing to 7300 days
//
// Intervals are half-open [Start, End): a date equal to End belongs to
// the next sibling. Child lists are computed lazily through
// (*Interval).Children and cached write-once on the parent; the cache is
// the only mutable state in the model and is not guarded; confine one
// chart's intervals to one goroutine, or pre-expand before sharing
// read-only.
//
// Errors (sentinel):
//
//	ErrNilTable           - if no table is supplied.
//	ErrSpanTooSmall       - if the span cannot hold nine one-day children.
//	ring.ErrUnknownSymbol - if the start symbol is not in the table.
//
// Complexity: Partition is O(ring.Size) time and allocations; rounding
// is O(1) big-integer arithmetic on small operands.
package period
