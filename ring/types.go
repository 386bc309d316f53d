// Package ring: symbols, entries, and sentinel errors.
package ring

import "errors"

// Sentinel errors for ring construction and lookups.
var (
	// ErrInvalidTable indicates a malformed entry set passed to New:
	// wrong entry count, empty or duplicate symbol, non-positive weight,
	// or a weight sum that differs from the declared total.
	ErrInvalidTable = errors.New("ring: invalid weight table")

	// ErrUnknownSymbol indicates a queried symbol that is not a member
	// of this table.
	ErrUnknownSymbol = errors.New("ring: symbol not in table")
)

// Symbol is one of the nine cyclic labels of a weight table.
//
// The canonical Vimshottari lords are provided as constants; alternate
// nine-symbol systems may use any distinct non-empty labels.
type Symbol string

// The canonical Vimshottari lords, in ring order.
const (
	Ketu    Symbol = "Ketu"
	Venus   Symbol = "Venus"
	Sun     Symbol = "Sun"
	Moon    Symbol = "Moon"
	Mars    Symbol = "Mars"
	Rahu    Symbol = "Rahu"
	Jupiter Symbol = "Jupiter"
	Saturn  Symbol = "Saturn"
	Mercury Symbol = "Mercury"
)

const (
	// Size is the fixed number of symbols in every table. The ninefold
	// rotation is structural: partitioning and descent both assume it.
	Size = 9

	// VimshottariTotal is the weight sum of the canonical table, in
	// weight-years of the full cycle.
	VimshottariTotal = 120
)

// Entry pairs a symbol with its positive integer weight.
type Entry struct {
	// Sym is the symbol's label, unique within its table.
	Sym Symbol

	// Weight is the symbol's share of the cycle total, in weight-years.
	Weight int
}
