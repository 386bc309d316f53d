// Package timeline turns a birth anchor into a queryable multi-level
// period timeline: an eager, cheap level-1 skeleton and a lazy,
// memoizing descent into the levels below it.
//
// 🚀 What does timeline do?
//
//	An Anchor says where in the cycle a life begins: the birth date,
//	the symbol ruling at that instant, and how much of that symbol's
//	period had already elapsed. Build converts it into the level-1
//	interval list: the balance (the unelapsed remainder of the anchor
//	symbol's period) followed by full-weight periods in ring order, out
//	to a configurable horizon. Resolve then answers "which period chain
//	is active on this date, down to level N", expanding only the
//	branches a query actually visits and remembering them on the
//	intervals themselves.
//
// ✨ Shape of the model:
//   - Level 1 is eager: a handful of intervals, built once, bisected
//     by every query.
//   - Levels 2..MaxLevel are lazy: each interval splits into nine
//     children on first visit via period.Partition, cached write-once.
//   - A Chart owns one anchor's state end to end; two charts share
//     nothing, and dropping a chart drops all its memoized branches.
//
// ⚙️ Usage:
//
//	chart, err := timeline.NewChart(timeline.Anchor{
//		Birth:    period.Date(2003, time.July, 2),
//		Start:    ring.Venus,
//		Progress: 0.25,
//	}, ring.Vimshottari())
//	if err != nil { ... }
//
//	chain, err := chart.Resolve(period.Date(2031, time.March, 14), 3)
//	// chain: [level-1 interval, its level-2 child, its level-3 child]
//
//	wins, err := chart.UpcomingTransitions(2, period.Date(2031, time.January, 1), 730)
//	// wins: sandhi windows at level 2 over the next two years
//
// Determinism: no wall clock is ever read; the same anchor, table and
// options produce byte-identical timelines. The two float inputs
// (Progress, YearLengthDays) convert to exact rationals once, at the
// boundary; all interval arithmetic downstream is rational with a
// single rounding rule.
//
// Concurrency: none inside. Resolution mutates interval caches, so a
// Chart must be confined to one goroutine, or pre-expanded and then
// shared read-only.
//
// Errors (sentinel):
//
//	ErrMissingAnchor - if the anchor is unusable (zero birth date,
//	                   progress outside [0,1), start symbol not in the
//	                   table).
//	ErrOutOfRange    - if a query date precedes birth or lies past the
//	                   built horizon.
//	ErrBadLevel      - if a requested depth is outside [1, MaxLevel].
//
// Lower layers surface unchanged: period.ErrNilTable,
// period.ErrSpanTooSmall, sandhi.ErrBadHorizon, sandhi.ErrBadPercent.
//
// Complexity: Build is O(HorizonIntervals). A cold Resolve to level L
// is O(log H + L·9) plus at most L−1 partitions; a warm one recomputes
// nothing and only walks cached children.
package timeline
