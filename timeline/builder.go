package timeline

import (
	"fmt"
	"math"
	"math/big"

	"github.com/vedanga/dasha/period"
	"github.com/vedanga/dasha/ring"
)

// Build materializes the level-1 interval list for an anchor: first the
// balance of the anchor symbol's period (its unelapsed remainder at
// birth), then full-weight periods in ring order, until the configured
// horizon count is reached.
//
// The list is contiguous from the birth date, every interval carries
// Level 1, and construction is eager: the whole horizon exists before
// Build returns, so queries always have a closed span to bisect.
//
// Errors: ErrMissingAnchor (zero birth, progress outside [0,1), start
// symbol not in the table), period.ErrNilTable.
func Build(anchor Anchor, t *ring.Table, opts ...Option) ([]*period.Interval, error) {
	// Stage 1: validate inputs before touching any arithmetic.
	if t == nil {
		return nil, fmt.Errorf("timeline: build: %w", period.ErrNilTable)
	}
	if err := validateAnchor(anchor); err != nil {
		return nil, err
	}
	opt := DefaultOptions()
	for _, o := range opts {
		o(&opt)
	}

	rot, err := t.RotateFrom(anchor.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start symbol %q not in table", ErrMissingAnchor, anchor.Start)
	}

	// Stage 2: fix the conversion constants exactly once. Both floats
	// convert losslessly; everything after this line is rational.
	yearLen := new(big.Rat).SetFloat64(opt.YearLengthDays)
	remain := new(big.Rat).SetFloat64(anchor.Progress)
	remain.Sub(one, remain)

	// Stage 3: walk the ring from the anchor symbol. Index 0 is the
	// balance; its share is scaled by the unelapsed fraction.
	out := make([]*period.Interval, 0, opt.HorizonIntervals)
	cursor := period.Midnight(anchor.Birth)
	span := new(big.Rat)
	for k := 0; k < opt.HorizonIntervals; k++ {
		entry := rot[k%ring.Size]
		span.SetInt64(int64(entry.Weight))
		span.Mul(span, yearLen)
		if k == 0 {
			span.Mul(span, remain)
		}

		end := period.AddDays(cursor, period.ToDays(span))
		out = append(out, &period.Interval{Sym: entry.Sym, Start: cursor, End: end, Level: 1})
		cursor = end
	}

	return out, nil
}

// one is the rational unit used for the progress complement.
var one = big.NewRat(1, 1)

// validateAnchor rejects anchors the builder cannot place on a
// calendar. Start-symbol membership is checked against the table in
// Build itself.
func validateAnchor(a Anchor) error {
	if a.Birth.IsZero() {
		return fmt.Errorf("%w: zero birth date", ErrMissingAnchor)
	}
	if math.IsNaN(a.Progress) || a.Progress < 0 || a.Progress >= 1 {
		return fmt.Errorf("%w: progress %v outside [0,1)", ErrMissingAnchor, a.Progress)
	}

	return nil
}
