// Package table: sentinel error set.
// Package-level sentinels only; operations return these and tests match
// them via errors.Is. Grid-side precondition violations surface as the
// grid package's sentinels, wrapped with table context.

package table

import "errors"

var (
	// ErrNilGrid indicates a Generator was constructed without a grid.
	ErrNilGrid = errors.New("table: grid is nil")

	// ErrNotAllocated indicates table access before Allocate.
	ErrNotAllocated = errors.New("table: coefficient table not allocated")

	// ErrStaleTable indicates an axis was resized after the table was
	// allocated; the stored coefficients no longer match the grid shape
	// and must be discarded by calling Allocate again.
	ErrStaleTable = errors.New("table: grid resized since allocation, reallocate required")

	// ErrUnpopulated indicates a query for a grid point whose coefficient
	// vector was never written. This is the documented unpopulated-state
	// result: queries fail rather than return placeholder data.
	ErrUnpopulated = errors.New("table: grid point has no coefficients")

	// ErrNoSource indicates Populate was called on a Generator that has no
	// coefficient source configured.
	ErrNoSource = errors.New("table: no coefficient source configured")

	// ErrNilCoefficients indicates a nil coefficient vector passed to a
	// write, or produced by a Source.
	ErrNilCoefficients = errors.New("table: nil coefficient vector")
)
