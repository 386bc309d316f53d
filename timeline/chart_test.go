package timeline_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedanga/dasha/period"
	"github.com/vedanga/dasha/ring"
	"github.com/vedanga/dasha/sandhi"
	"github.com/vedanga/dasha/timeline"
)

// letterChart wraps the half-elapsed letter-table timeline in a Chart.
func letterChart(t *testing.T) (*timeline.Chart, *ring.Table) {
	t.Helper()

	tbl := letterTable(t)
	chart, err := timeline.NewChart(timeline.Anchor{
		Birth:    period.Date(2000, time.January, 1),
		Start:    "A",
		Progress: 0.5,
	}, tbl, timeline.WithYearLengthDays(365))
	require.NoError(t, err)

	return chart, tbl
}

// TestChart_Overview: the slice is the caller's own, the intervals are
// the chart's.
func TestChart_Overview(t *testing.T) {
	chart, _ := letterChart(t)

	first := chart.Overview()
	require.Len(t, first, timeline.DefaultHorizonIntervals)
	assert.Equal(t, ring.Symbol("A"), first[0].Sym)
	assert.Equal(t, 1278, first[0].Days())

	// Clobbering the returned slice must not disturb the chart.
	first[0], first[1] = first[1], first[0]
	second := chart.Overview()
	assert.Equal(t, ring.Symbol("A"), second[0].Sym)

	// Same interval objects on every call: the overview exposes the
	// chart's cache, not copies of it.
	assert.Same(t, first[1], second[0])
}

// TestChart_Resolve delegates to the package resolver against the
// chart's own state.
func TestChart_Resolve(t *testing.T) {
	chart, _ := letterChart(t)

	chain, err := chart.Resolve(period.Date(2005, time.March, 15), 2)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, ring.Symbol("B"), chain[0].Sym)
	assert.Equal(t, ring.Symbol("B"), chain[1].Sym)

	_, err = chart.Resolve(period.Date(1999, time.June, 1), 1)
	assert.ErrorIs(t, err, timeline.ErrOutOfRange)
}

// TestChart_UpcomingTransitions_TopLevel pins the first major junction:
// the 1278-day balance into the 7300-day B period, a 64-day half-width
// around 2003-07-02.
func TestChart_UpcomingTransitions_TopLevel(t *testing.T) {
	chart, _ := letterChart(t)

	got, err := chart.UpcomingTransitions(1, period.Date(2003, time.January, 1), 365)
	require.NoError(t, err)

	want := []sandhi.Window{{
		From:       "A",
		To:         "B",
		Level:      1,
		Transition: period.Date(2003, time.July, 2),
		Start:      period.Date(2003, time.April, 29),
		End:        period.Date(2003, time.September, 4),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("windows mismatch (-want +got):\n%s", diff)
	}
}

// TestChart_UpcomingTransitions_CrossParent: at level 2 the junction
// between the balance's last sub-period and the next major period's
// first sub-period spans two parents; the assembled run must bridge
// them seamlessly.
func TestChart_UpcomingTransitions_CrossParent(t *testing.T) {
	chart, _ := letterChart(t)

	got, err := chart.UpcomingTransitions(2, period.Date(2003, time.June, 1), 60)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// I (181 days, last child of the A balance) into B (1217 days,
	// first child of the B period): min 181, tenth 18.1, half 9.
	win := got[0]
	assert.Equal(t, ring.Symbol("I"), win.From)
	assert.Equal(t, ring.Symbol("B"), win.To)
	assert.Equal(t, 2, win.Level)
	assert.Equal(t, period.Date(2003, time.July, 2), win.Transition)
	assert.Equal(t, period.Date(2003, time.June, 23), win.Start)
	assert.Equal(t, period.Date(2003, time.July, 11), win.End)
}

// TestChart_UpcomingTransitions_PercentOptions: percent overrides flow
// through to the windows, and bad percents surface as errors.
func TestChart_UpcomingTransitions_PercentOptions(t *testing.T) {
	chart, _ := letterChart(t)
	from := period.Date(2003, time.January, 1)

	got, err := chart.UpcomingTransitions(1, from, 365,
		sandhi.WithPercentFor(func(int) float64 { return 0.5 }))
	require.NoError(t, err)
	require.Len(t, got, 1)
	// 1278 × 0.5 / 2 = 319.5, an exact tie, rounds to 320.
	assert.Equal(t, 320, period.DaysBetween(got[0].Start, got[0].Transition))

	_, err = chart.UpcomingTransitions(1, from, 365,
		sandhi.WithPercentFor(func(int) float64 { return 2 }))
	assert.ErrorIs(t, err, sandhi.ErrBadPercent)
}

// TestChart_UpcomingTransitions_Validation: depth, horizon and range
// checks fire before any expansion.
func TestChart_UpcomingTransitions_Validation(t *testing.T) {
	chart, _ := letterChart(t)
	from := period.Date(2003, time.January, 1)

	_, err := chart.UpcomingTransitions(0, from, 365)
	assert.ErrorIs(t, err, timeline.ErrBadLevel)

	_, err = chart.UpcomingTransitions(timeline.MaxLevel+1, from, 365)
	assert.ErrorIs(t, err, timeline.ErrBadLevel)

	_, err = chart.UpcomingTransitions(1, from, 0)
	assert.ErrorIs(t, err, sandhi.ErrBadHorizon)

	_, err = chart.UpcomingTransitions(1, period.Date(1999, time.January, 1), 365)
	assert.ErrorIs(t, err, timeline.ErrOutOfRange)

	beyond := chart.Overview()[timeline.DefaultHorizonIntervals-1].End
	_, err = chart.UpcomingTransitions(1, beyond, 365)
	assert.ErrorIs(t, err, timeline.ErrOutOfRange)
}

// TestChart_TransitionsShareExpansionWithResolve: transition assembly
// and date resolution feed the same cache; neither recomputes what the
// other already expanded.
func TestChart_TransitionsShareExpansionWithResolve(t *testing.T) {
	chart, tbl := letterChart(t)

	_, err := chart.UpcomingTransitions(2, period.Date(2003, time.June, 1), 60)
	require.NoError(t, err)

	chain, err := chart.Resolve(period.Date(2003, time.August, 1), 2)
	require.NoError(t, err)

	kids, err := chart.Overview()[1].Children(tbl)
	require.NoError(t, err)
	assert.Same(t, kids[0], chain[1], "resolution must reuse the expanded child")
}
