package table

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/flightlab/aerotable/grid"
)

// Source is the coefficient-generation capability: it produces the
// aerodynamic coefficient vector for one grid point. tuple holds the
// per-axis sample indices and values the corresponding physical sample
// values (same axis order). Implementations range from panel methods to
// empirical correlations to wind-tunnel data readers; the core never
// implements aerodynamics itself.
type Source interface {
	Coefficients(tuple []int, values []float64) (*mat.VecDense, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(tuple []int, values []float64) (*mat.VecDense, error)

// Coefficients implements Source by calling f.
func (f SourceFunc) Coefficients(tuple []int, values []float64) (*mat.VecDense, error) {
	return f(tuple, values)
}

// State describes a Generator's lifecycle position. It advances
// Unconfigured -> Sized -> Allocated -> Populated and regresses only when
// an axis is resized (which invalidates the table).
type State int

const (
	// StateUnconfigured means at least one axis has not been sized.
	StateUnconfigured State = iota
	// StateSized means all axes are sized but no table is allocated.
	StateSized
	// StateAllocated means the table exists; some slots may be unwritten.
	StateAllocated
	// StatePopulated means every grid point holds a coefficient vector.
	StatePopulated
)

// stateNames maps each State to its display name.
var stateNames = [...]string{
	StateUnconfigured: "Unconfigured",
	StateSized:        "Sized",
	StateAllocated:    "Allocated",
	StatePopulated:    "Populated",
}

// String implements fmt.Stringer for State.
func (s State) String() string {
	if s < StateUnconfigured || s > StatePopulated {
		return "State(invalid)"
	}

	return stateNames[s]
}

// Internal panic messages (no magic strings).
const panicNilSource = "table: WithSource: source must not be nil"

// Option mutates Generator construction parameters.
type Option func(*Generator)

// WithSource installs the coefficient source used by Populate.
// Panics with a stable message when source is nil (programmer error);
// a Generator without a source is valid but can only be filled through
// SetCoefficients.
func WithSource(source Source) Option {
	if source == nil {
		panic(panicNilSource)
	}

	return func(gen *Generator) {
		gen.source = source
	}
}

// Generator ties a sampling grid to a flat coefficient table and drives
// the population lifecycle. It owns both exclusively; the grid is shared
// with the caller only for setup, and the table is never exposed except
// through copying accessors.
type Generator struct {
	grid   *grid.Grid
	table  *Table
	source Source

	// allocRevision is the grid revision the table was allocated against.
	// A mismatch means an axis was resized afterwards; the table is stale.
	allocRevision uint64
}

// NewGenerator constructs a Generator over g.
// Returns ErrNilGrid when g is nil.
func NewGenerator(g *grid.Grid, opts ...Option) (*Generator, error) {
	if g == nil {
		return nil, fmt.Errorf("NewGenerator: %w", ErrNilGrid)
	}
	gen := &Generator{grid: g}
	for _, opt := range opts {
		opt(gen)
	}

	return gen, nil
}

// Grid returns the owned sampling grid, for axis setup and inspection.
func (gen *Generator) Grid() *grid.Grid {
	return gen.grid
}

// Table returns the owned coefficient table for inspection (Len,
// Populated), or nil before Allocate. The table exposes no mutating
// methods; all writes go through the Generator.
func (gen *Generator) Table() *Table {
	return gen.table
}

// Points returns the total number of grid points.
// Returns grid.ErrAxisUnsized while any axis lacks storage.
func (gen *Generator) Points() (int, error) {
	return gen.grid.Points()
}

// State reports the Generator's lifecycle position.
// Complexity: O(axes + table length).
func (gen *Generator) State() State {
	if _, err := gen.grid.Points(); err != nil {
		return StateUnconfigured
	}
	if gen.table == nil || gen.allocRevision != gen.grid.Revision() {
		return StateSized
	}
	if !gen.table.Populated() {
		return StateAllocated
	}

	return StatePopulated
}

// Allocate sizes the coefficient table to the product of all per-axis
// sample counts, discarding any previously stored coefficients. It must
// be called once after all axes are sized, and again after any resize.
// Returns grid.ErrAxisUnsized while any axis lacks storage.
// Complexity: O(Points()) memory.
func (gen *Generator) Allocate() error {
	n, err := gen.grid.Points()
	if err != nil {
		return fmt.Errorf("Allocate: %w", err)
	}
	gen.table = newTable(n)
	gen.allocRevision = gen.grid.Revision()

	return nil
}

// checkTable gates every table access on allocation and staleness.
func (gen *Generator) checkTable(method string) error {
	if gen.table == nil {
		return fmt.Errorf("%s: %w", method, ErrNotAllocated)
	}
	if gen.allocRevision != gen.grid.Revision() {
		return fmt.Errorf("%s: %w", method, ErrStaleTable)
	}

	return nil
}

// SetCoefficients stores a copy of c as the coefficient vector of the
// grid point addressed by tuple. Intended for push-style strategies and
// data import; Populate covers the pull-style common case.
// Returns ErrNotAllocated, ErrStaleTable, ErrNilCoefficients, or the
// grid sentinels for an invalid tuple.
func (gen *Generator) SetCoefficients(tuple []int, c *mat.VecDense) error {
	if err := gen.checkTable("SetCoefficients"); err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("SetCoefficients%v: %w", tuple, ErrNilCoefficients)
	}
	offset, err := gen.grid.Offset(tuple)
	if err != nil {
		return fmt.Errorf("SetCoefficients: %w", err)
	}
	gen.table.set(offset, c)

	return nil
}

// Coefficients returns a copy of the coefficient vector stored for the
// grid point addressed by tuple. This is the query contract consumed by
// higher-level aerodynamic interfaces during simulation.
// Returns ErrNotAllocated, ErrStaleTable, ErrUnpopulated for a
// never-written point, or the grid sentinels for an invalid tuple.
func (gen *Generator) Coefficients(tuple []int) (*mat.VecDense, error) {
	if err := gen.checkTable("Coefficients"); err != nil {
		return nil, err
	}
	offset, err := gen.grid.Offset(tuple)
	if err != nil {
		return nil, fmt.Errorf("Coefficients: %w", err)
	}
	c, err := gen.table.at(offset)
	if err != nil {
		return nil, fmt.Errorf("Coefficients%v: %w", tuple, err)
	}

	return c, nil
}

// Populate walks the full Cartesian product of axis indices, asks the
// configured Source for each grid point's coefficient vector, and stores
// it at that point's flat offset. Each offset is written exactly once per
// call. Population is sequential by design; the table becomes immutable
// for concurrent readers once StatePopulated is reached.
// Returns ErrNoSource, ErrNotAllocated, ErrStaleTable,
// ErrNilCoefficients if the source produces a nil vector, or the source's
// own error wrapped with the failing tuple.
// Complexity: O(Points() x source cost).
func (gen *Generator) Populate() error {
	if gen.source == nil {
		return fmt.Errorf("Populate: %w", ErrNoSource)
	}
	if err := gen.checkTable("Populate"); err != nil {
		return err
	}

	for offset := 0; offset < gen.table.Len(); offset++ {
		// Offsets enumerate the product in row-major order; decode each
		// back into its tuple so the source sees per-axis indices.
		tuple, err := gen.grid.Tuple(offset)
		if err != nil {
			return fmt.Errorf("Populate: %w", err)
		}
		values, err := gen.grid.TupleValues(tuple)
		if err != nil {
			return fmt.Errorf("Populate: %w", err)
		}

		c, err := gen.source.Coefficients(tuple, values)
		if err != nil {
			return fmt.Errorf("Populate%v: %w", tuple, err)
		}
		if c == nil {
			return fmt.Errorf("Populate%v: %w", tuple, ErrNilCoefficients)
		}
		gen.table.set(offset, c)
	}

	return nil
}
