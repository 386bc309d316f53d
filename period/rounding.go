// Package period - the rounding policy.
//
// Every duration in this library is computed as an exact rational
// (math/big.Rat) and crosses into whole days through exactly one
// function, RoundHalfEven. Nothing downstream of it touches fractional
// values, so rounding error cannot accumulate across nesting levels:
// the forced-remainder rule in Partition absorbs whatever single-day
// slack rounding produces.
package period

import "math/big"

// Share returns the exact raw share days × weight / total as a
// rational. It is the only share formula in the library; Partition
// feeds its result straight into ToDays.
func Share(days, weight, total int) *big.Rat {
	return big.NewRat(int64(days)*int64(weight), int64(total))
}

// RoundHalfEven rounds an exact rational to the nearest integer,
// breaking .5 ties toward the even neighbor (banker's rounding). Pure
// integer arithmetic; no floating point is involved.
func RoundHalfEven(r *big.Rat) int {
	den := r.Denom()

	// Floor division: value = q + m/den with 0 ≤ m < den.
	q, m := new(big.Int).QuoRem(r.Num(), den, new(big.Int))
	if m.Sign() < 0 {
		q.Sub(q, bigOne)
		m.Add(m, den)
	}

	// Compare the fractional part against one half via 2m vs den.
	switch twice := new(big.Int).Lsh(m, 1); twice.Cmp(den) {
	case -1:
		// below half: round down
	case 1:
		q.Add(q, bigOne)
	default:
		// exact half: round to even
		if q.Bit(0) == 1 {
			q.Add(q, bigOne)
		}
	}

	return int(q.Int64())
}

// ToDays converts a fractional-day duration to whole days using
// RoundHalfEven, clamped to a minimum of one day. The clamp turns
// degenerate zero-day shares into one-day spans; the borrow in
// Partition pays for the extra day, so the clamp is a corrected
// condition, never a propagated failure.
func ToDays(r *big.Rat) int {
	if d := RoundHalfEven(r); d > 1 {
		return d
	}

	return 1
}

var bigOne = big.NewInt(1)
