// Package dasha partitions a life span into the nested cyclic periods
// of the Vimshottari system — nine weighted symbols, reapplied level
// after level, with exact whole-day arithmetic.
//
// 🚀 What is dasha?
//
//	A small, deterministic library that turns one birth anchor into a
//	queryable multi-level timeline:
//		• Weighted ring: the nine-lord cycle, or any nine-symbol system
//		• Exact partitioning: proportional ninefold splits that always
//		  sum back to the parent, down to the day
//		• Lazy timeline: eager major periods, memoized descent below
//		• Transition windows: the junction zones where one period hands
//		  over to the next
//
// ✨ Why this shape?
//
//   - Deterministic – no wall clock, no floats past the boundary; the
//     same anchor yields byte-identical timelines forever
//   - Exact – one rounding rule (half to even), one place it happens
//   - Lazy – a full six-level expansion would be hundreds of thousands
//     of intervals; queries expand only the branches they visit
//   - Pure Go – computation only, no I/O anywhere
//
// Everything is organized under four subpackages:
//
//	ring/     — weighted symbol table: order, successor, rotation
//	period/   — calendar days, rounding policy, the ninefold partition
//	timeline/ — anchor, level-1 builder, lazy resolver, Chart facade
//	sandhi/   — transition-window detection over sibling runs
//
// Quick sketch:
//
//	birth ─┬─ Venus (balance) ──┬─ Venus ── … nine children …
//	       ├─ Sun ──────────────┼─ Sun
//	       ├─ Moon              ╎
//	       ╎                    └─ each child splits the same way
//
// Start with timeline.NewChart and ring.Vimshottari; everything else
// hangs off the Chart.
//
//	go get github.com/vedanga/dasha
package dasha
