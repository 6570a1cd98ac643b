// Package aerotable is the storage and indexing core of an
// aerodynamic-coefficient lookup table: force/moment coefficient vectors
// recorded over a regular grid of independent variables (Mach number,
// angle of attack, angle of sideslip, Reynolds number, and more).
//
// What aerotable gives you:
//
//   - A variable-dimensionality sampling grid: the number of axes, the
//     number of sample points per axis, and the role each axis plays are
//     all decided at runtime, safely.
//   - A mixed-radix index mapper: a bijection between per-axis index
//     tuples and flat offsets into one contiguous coefficient table.
//   - A generation contract: plug in any coefficient source (panel
//     method, empirical correlation, wind-tunnel import) and populate
//     every grid point exactly once.
//
// Why aerotable?
//
//   - Bounds-checked everywhere - out-of-range indices return sentinel
//     errors, never corrupt neighboring axes or table slots.
//   - Exclusive ownership - the generator owns its grid and table;
//     accessors hand out copies, so no caller can alias internal state.
//   - Pure in-memory - no I/O, no goroutines, no hidden machinery; after
//     population the table is immutable and safe for concurrent readers.
//
// Everything is organized under two subpackages:
//
//	grid/  — axes, sample points, physical-role registry, index mapper
//	table/ — flat coefficient storage, generator lifecycle, sources
//
// Typical flow: size the axes, assign roles, allocate, populate from a
// Source, then query coefficient vectors by index tuple during simulation.
//
//	go get github.com/flightlab/aerotable
package aerotable
