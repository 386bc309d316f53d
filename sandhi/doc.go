// SPDX-License-Identifier: MIT

// Package sandhi detects transition windows: the spans around the
// junction between two adjacent periods where the outgoing symbol's
// influence fades into the incoming one's.
//
// 🚀 What does sandhi do?
//
//	Given a contiguous run of same-level intervals, Collect walks the
//	junctions between neighbours and emits a Window for each one wide
//	enough to matter: half the window extends into the ending period,
//	half into the beginning one, and the total width is a percent of
//	the shorter neighbour. Only windows overlapping the requested
//	horizon are reported.
//
// ✨ Properties:
//   - Symmetric: the window is centred on the junction day.
//   - Bounded: with percent ≤ 1 a window never reaches past the
//     midpoint of either neighbour, so windows of consecutive
//     junctions cannot swallow a whole interval.
//   - No floor: a window that rounds to zero width is skipped, not
//     inflated; short inner periods simply have no reportable sandhi.
//
// ⚙️ Usage:
//
//	wins, err := sandhi.Collect(siblings, from, 365)
//	for _, w := range wins {
//		fmt.Printf("%s→%s around %s\n", w.From, w.To, w.Transition.Format("2006-01-02"))
//	}
//
// The run may come from anywhere: the level-1 list, one parent's
// children, or several parents' children concatenated (contiguous by
// construction). Collection never expands intervals and never mutates
// them; assembling the run is the caller's concern (see
// timeline.Chart.UpcomingTransitions).
//
// Errors (sentinel):
//
//	ErrBadHorizon    - if the horizon is shorter than one day.
//	ErrBadPercent    - if a percent is outside [0,1], NaN, or the
//	                   percent function is nil.
//	ErrNotContiguous - if the run has nil or inverted intervals, gaps,
//	                   overlaps, or mixed levels.
//
// Complexity: O(n) time over the run, O(1) extra memory beyond the
// result.
package sandhi
