package timeline

import (
	"fmt"
	"time"

	"github.com/vedanga/dasha/period"
	"github.com/vedanga/dasha/ring"
	"github.com/vedanga/dasha/sandhi"
)

// Chart is one birth chart's timeline: the eagerly built level-1 list
// plus every branch expanded by queries so far. All lazily computed
// state lives in the chart's intervals; two charts never share cache,
// and dropping the chart drops everything it memoized.
//
// A Chart is not safe for concurrent queries: resolution expands
// branches in place. Confine a chart to one goroutine, or pre-expand
// with Resolve before sharing read-only.
type Chart struct {
	table  *ring.Table
	levels []*period.Interval
}

// NewChart validates the anchor, builds the level-1 list, and returns
// the chart handle all queries go through.
//
// Errors: ErrMissingAnchor, period.ErrNilTable.
func NewChart(anchor Anchor, t *ring.Table, opts ...Option) (*Chart, error) {
	levels, err := Build(anchor, t, opts...)
	if err != nil {
		return nil, err
	}

	return &Chart{table: t, levels: levels}, nil
}

// Overview returns the level-1 intervals in order: the balance period
// first, then full periods to the horizon. The slice is the caller's
// own; the intervals are shared with the chart's cache and must be
// treated as read-only.
func (c *Chart) Overview() []*period.Interval {
	out := make([]*period.Interval, len(c.levels))
	copy(out, c.levels)

	return out
}

// Resolve locates the interval chain active on a date, outermost first,
// down to maxLevel. See the package-level Resolve for the contract.
func (c *Chart) Resolve(date time.Time, maxLevel int) ([]*period.Interval, error) {
	return Resolve(c.levels, date, maxLevel, c.table)
}

// UpcomingTransitions reports the transition windows at one nesting
// level over the horizon [from, from+horizonDays): it assembles the
// contiguous run of intervals at that level covering the horizon
// (walking parents and concatenating their child lists, which tile
// seamlessly across parent boundaries) and hands the run to
// sandhi.Collect. The run keeps one extra sibling on each side so
// windows leaning into the horizon from just outside are not lost.
//
// Every interval the horizon touches must be wide enough to subdivide
// down to the requested level; a too-narrow leaf surfaces
// period.ErrSpanTooSmall.
//
// Errors: ErrBadLevel, ErrOutOfRange (from outside the built span),
// sandhi.ErrBadHorizon, sandhi.ErrBadPercent, period.ErrSpanTooSmall.
func (c *Chart) UpcomingTransitions(level int, from time.Time, horizonDays int, opts ...sandhi.Option) ([]sandhi.Window, error) {
	// Stage 1: validate before assembling anything.
	if level < 1 || level > MaxLevel {
		return nil, fmt.Errorf("%w: level %d outside [1, %d]", ErrBadLevel, level, MaxLevel)
	}
	if horizonDays < 1 {
		return nil, fmt.Errorf("timeline: transitions: %w", sandhi.ErrBadHorizon)
	}
	f := period.Midnight(from)
	if f.Before(c.levels[0].Start) || !f.Before(c.levels[len(c.levels)-1].End) {
		return nil, fmt.Errorf("%w: horizon start %s outside the built timeline",
			ErrOutOfRange, f.Format(dateLayout))
	}

	// Stage 2: descend to the requested level, trimming to the horizon
	// at every step so only touched branches expand.
	to := period.AddDays(f, horizonDays)
	run := trimRun(c.levels, f, to)
	for l := 2; l <= level; l++ {
		next := make([]*period.Interval, 0, len(run)*ring.Size)
		for _, iv := range run {
			kids, err := iv.Children(c.table)
			if err != nil {
				return nil, fmt.Errorf("timeline: transitions at level %d: %w", l, err)
			}
			next = append(next, kids...)
		}
		run = trimRun(next, f, to)
	}

	// Stage 3: window detection is sandhi's concern.
	return sandhi.Collect(run, f, horizonDays, opts...)
}

// trimRun narrows a contiguous sibling run to the members intersecting
// the half-open window [from, to), padded by one sibling on each side
// when available. The result is a subslice: same backing, read-only.
func trimRun(run []*period.Interval, from, to time.Time) []*period.Interval {
	lo := 0
	for lo < len(run) && !run[lo].End.After(from) {
		lo++ // ends on or before the window start
	}
	hi := len(run)
	for hi > lo && !run[hi-1].Start.Before(to) {
		hi-- // starts on or after the window end
	}

	if lo > 0 {
		lo--
	}
	if hi < len(run) {
		hi++
	}

	return run[lo:hi]
}
