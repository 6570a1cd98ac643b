// Package table owns the flat coefficient storage of an aerodynamic
// lookup table and the Generator lifecycle that populates and queries it.
package table

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Table is a flat collection of coefficient-vector slots, one per grid
// point, addressed by the grid package's flat offsets. A nil slot means
// the grid point was never written.
//
// The Table owns its slots exclusively: Set stores a copy of the caller's
// vector and At returns a fresh copy, so no external code can alias or
// mutate stored coefficients. Distinct offsets are fully independent,
// which makes one-writer-per-offset population safe by construction.
type Table struct {
	slots []*mat.VecDense
}

// newTable allocates a table of n unpopulated slots.
func newTable(n int) *Table {
	return &Table{slots: make([]*mat.VecDense, n)}
}

// Len returns the number of coefficient slots.
// Complexity: O(1).
func (t *Table) Len() int {
	return len(t.slots)
}

// Populated reports whether every slot holds a coefficient vector.
// Complexity: O(Len()).
func (t *Table) Populated() bool {
	for _, slot := range t.slots {
		if slot == nil {
			return false
		}
	}

	return true
}

// set stores a deep copy of c at offset. The offset has already been
// produced by the grid mapper and is in range.
func (t *Table) set(offset int, c *mat.VecDense) {
	t.slots[offset] = mat.VecDenseCopyOf(c)
}

// at returns a deep copy of the vector at offset, or ErrUnpopulated.
func (t *Table) at(offset int) (*mat.VecDense, error) {
	if t.slots[offset] == nil {
		return nil, fmt.Errorf("offset %d: %w", offset, ErrUnpopulated)
	}

	return mat.VecDenseCopyOf(t.slots[offset]), nil
}
