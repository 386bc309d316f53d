// Package ring defines the nine-symbol weight cycle that seeds every
// level of a dasha timeline: a fixed cyclic ordering of symbols, each
// carrying a positive integer weight, summing to a declared cycle total.
//
// 🚀 What is the ring?
//
//	Vimshottari-style period systems divide time among nine lords in a
//	fixed rotation. Each lord owns a share of the full cycle
//	proportional to its weight in years:
//	  Ketu 7 → Venus 20 → Sun 6 → Moon 10 → Mars 7 →
//	  Rahu 18 → Jupiter 16 → Saturn 19 → Mercury 17   (total 120)
//	The same rotation is re-applied at every nesting level, so the ring
//	is the single source of both ordering and proportions.
//
// ✨ Key properties:
//   - Table is immutable after construction; accessors return copies.
//   - Alternate nine-symbol systems plug in through New without touching
//     any downstream algorithm.
//   - Construction is strictly validated: exactly nine distinct symbols,
//     positive weights, sum equal to the declared total.
//
// ⚙️ Usage:
//
//	t := ring.Vimshottari()
//	order, _ := t.RotateFrom(ring.Moon) // Moon, Mars, Rahu, ... Sun
//	next, _ := t.Next(ring.Mercury)     // wraps to Ketu
//
// Errors (sentinel):
//
//	ErrInvalidTable  - if New is given a malformed entry set.
//	ErrUnknownSymbol - if a queried symbol is not in the table.
//
// Complexity: all lookups are O(1); RotateFrom/Order copy nine entries.
package ring
