// Package table stores aerodynamic coefficient vectors for every point of
// a sampling grid and drives the generate-then-query lifecycle.
//
// What:
//
//   - Table: one flat, exclusively owned slot per grid point, addressed
//     by the grid package's mixed-radix offsets; writes store copies and
//     reads return copies, so stored coefficients cannot be aliased.
//   - Generator: ties a grid to a table and walks the lifecycle
//     Unconfigured -> Sized -> Allocated -> Populated.
//   - Source: the single-operation extension point that computes one
//     coefficient vector per grid point; EmpiricalSource is a built-in
//     correlation-based implementation, SourceFunc adapts plain funcs.
//   - Physically named accessors (SetMachPoint, AngleOfAttackPoint, ...)
//     as pure pass-throughs to the grid's role registry.
//
// Why:
//
//   - Coefficient generation (panel sweep, wind-tunnel import) is
//     expensive and happens once; simulation queries happen millions of
//     times. The split keeps the hot path a bounds-checked array lookup.
//   - Selecting the Source at construction, rather than by subclassing,
//     lets one Generator serve any generation strategy.
//
// Lifecycle and staleness:
//
//   - Allocate sizes the table to the grid's point count and discards all
//     previous contents. Resizing any axis afterwards marks the table
//     stale; every access then returns ErrStaleTable until Allocate is
//     called again and the points are recomputed.
//   - Queries for never-written points return ErrUnpopulated - the
//     documented unpopulated-state policy; placeholder data is never
//     presented as valid.
//
// Concurrency:
//
//   - Configuration, allocation and population are sequential,
//     single-threaded operations. Each flat offset is independent and
//     written exactly once by Populate; after StatePopulated the table is
//     immutable and safe for unsynchronized concurrent readers.
//
// Errors:
//
//   - ErrNilGrid, ErrNotAllocated, ErrStaleTable, ErrUnpopulated,
//     ErrNoSource, ErrNilCoefficients; grid-side precondition violations
//     surface as the grid package's sentinels, wrapped with context.
package table
