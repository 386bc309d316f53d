package ring

import "fmt"

// Table is an immutable nine-symbol weight cycle: ring order, per-symbol
// weights, and the validated cycle total. A Table never changes after
// New returns it; every accessor that exposes ordering returns a copy.
type Table struct {
	entries [Size]Entry
	index   map[Symbol]int // symbol → position in ring order
	total   int
}

// New validates entries and builds a Table.
//
// Contract:
//   - len(entries) == Size (nine), in the desired ring order.
//   - Every symbol non-empty and distinct; every weight ≥ 1.
//   - Weights sum exactly to the declared total.
//
// Violations return an error wrapping ErrInvalidTable.
//
// Complexity: O(Size) time and space.
func New(entries []Entry, total int) (*Table, error) {
	if len(entries) != Size {
		return nil, fmt.Errorf("%w: %d entries, want %d", ErrInvalidTable, len(entries), Size)
	}

	t := &Table{
		index: make(map[Symbol]int, Size),
		total: total,
	}

	sum := 0
	for i, e := range entries {
		if e.Sym == "" {
			return nil, fmt.Errorf("%w: empty symbol at position %d", ErrInvalidTable, i)
		}
		if _, dup := t.index[e.Sym]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidTable, e.Sym)
		}
		if e.Weight < 1 {
			return nil, fmt.Errorf("%w: weight %d for %q, want ≥ 1", ErrInvalidTable, e.Weight, e.Sym)
		}
		t.entries[i] = e
		t.index[e.Sym] = i
		sum += e.Weight
	}
	if sum != total {
		return nil, fmt.Errorf("%w: weights sum to %d, declared total %d", ErrInvalidTable, sum, total)
	}

	return t, nil
}

// Vimshottari returns the canonical 120-year table:
// Ketu 7, Venus 20, Sun 6, Moon 10, Mars 7, Rahu 18, Jupiter 16,
// Saturn 19, Mercury 17.
func Vimshottari() *Table {
	t, err := New([]Entry{
		{Ketu, 7},
		{Venus, 20},
		{Sun, 6},
		{Moon, 10},
		{Mars, 7},
		{Rahu, 18},
		{Jupiter, 16},
		{Saturn, 19},
		{Mercury, 17},
	}, VimshottariTotal)
	if err != nil {
		// The canonical entries are constants; failing here is a
		// programmer error, not a user condition.
		panic("ring: canonical table rejected: " + err.Error())
	}

	return t
}

// Has reports whether s is a member of the table.
func (t *Table) Has(s Symbol) bool {
	_, ok := t.index[s]

	return ok
}

// Weight returns the weight of s, or ErrUnknownSymbol if s is not in
// the table.
func (t *Table) Weight(s Symbol) (int, error) {
	i, ok := t.index[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
	}

	return t.entries[i].Weight, nil
}

// Total returns the validated cycle total (sum of all nine weights).
func (t *Table) Total() int { return t.total }

// Order returns the nine entries in ring order, starting at the table's
// first symbol. The returned slice is a copy.
func (t *Table) Order() []Entry {
	out := make([]Entry, Size)
	copy(out, t.entries[:])

	return out
}

// Next returns the cyclic successor of s (the last symbol wraps to the
// first), or ErrUnknownSymbol if s is not in the table.
func (t *Table) Next(s Symbol) (Symbol, error) {
	i, ok := t.index[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
	}

	return t.entries[(i+1)%Size].Sym, nil
}

// RotateFrom returns the nine entries in ring order beginning at s, so
// that RotateFrom(s)[0].Sym == s. The returned slice is a fresh copy.
// Returns ErrUnknownSymbol if s is not in the table.
func (t *Table) RotateFrom(s Symbol) ([]Entry, error) {
	start, ok := t.index[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
	}

	out := make([]Entry, Size)
	for i := 0; i < Size; i++ {
		out[i] = t.entries[(start+i)%Size]
	}

	return out, nil
}
