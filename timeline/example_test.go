package timeline_test

import (
	"fmt"
	"time"

	"github.com/vedanga/dasha/period"
	"github.com/vedanga/dasha/ring"
	"github.com/vedanga/dasha/timeline"
)

// ExampleBuild lays out the start of a canonical timeline: an anchor at
// the very beginning of a Ketu period, Julian-year conversion.
func ExampleBuild() {
	levels, err := timeline.Build(timeline.Anchor{
		Birth: period.Date(1990, time.April, 5),
		Start: ring.Ketu,
	}, ring.Vimshottari())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, iv := range levels[:3] {
		fmt.Printf("%s %d\n", iv.Sym, iv.Days())
	}
	// Output:
	// Ketu 2557
	// Venus 7305
	// Sun 2192
}

// ExampleChart_Resolve drills three levels into a half-elapsed anchor:
// the major period, its sub-period, and the sub-sub-period active on
// one chosen day.
func ExampleChart_Resolve() {
	tbl, err := ring.New([]ring.Entry{
		{Sym: "A", Weight: 7}, {Sym: "B", Weight: 20}, {Sym: "C", Weight: 6},
		{Sym: "D", Weight: 10}, {Sym: "E", Weight: 7}, {Sym: "F", Weight: 18},
		{Sym: "G", Weight: 16}, {Sym: "H", Weight: 19}, {Sym: "I", Weight: 17},
	}, 120)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	chart, err := timeline.NewChart(timeline.Anchor{
		Birth:    period.Date(2000, time.January, 1),
		Start:    "A",
		Progress: 0.5,
	}, tbl, timeline.WithYearLengthDays(365))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	chain, err := chart.Resolve(period.Date(2005, time.March, 15), 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, iv := range chain {
		fmt.Printf("%d %s %s %s\n", iv.Level, iv.Sym,
			iv.Start.Format("2006-01-02"), iv.End.Format("2006-01-02"))
	}
	// Output:
	// 1 B 2003-07-02 2023-06-27
	// 2 B 2003-07-02 2006-10-31
	// 3 G 2005-03-12 2005-08-21
}

// ExampleChart_UpcomingTransitions reports the first major junction of
// a chart: the balance period giving way to the next full period.
func ExampleChart_UpcomingTransitions() {
	chart, err := timeline.NewChart(timeline.Anchor{
		Birth:    period.Date(2000, time.January, 1),
		Start:    ring.Venus,
		Progress: 0.825,
	}, ring.Vimshottari(), timeline.WithYearLengthDays(365))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	wins, err := chart.UpcomingTransitions(1, period.Date(2003, time.January, 1), 365)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, w := range wins {
		fmt.Printf("%s→%s %s..%s around %s\n", w.From, w.To,
			w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"),
			w.Transition.Format("2006-01-02"))
	}
	// Output:
	// Venus→Sun 2003-04-29..2003-09-04 around 2003-07-02
}
