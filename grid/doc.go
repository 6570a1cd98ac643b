// Package grid manages a variable-dimensionality sampling grid of
// independent aerodynamic variables and the mapping from per-axis index
// tuples to flat storage offsets.
//
// What:
//
//   - Grid holds N axes, each an ordered sequence of sample values
//     (e.g., the discrete Mach numbers at which coefficients exist).
//   - A role registry fixes which axis carries Mach, angle of attack,
//     angle of sideslip, or Reynolds number, so generic per-axis
//     operations gain physically named pass-throughs.
//   - Offset/Tuple form a mixed-radix bijection between index tuples and
//     [0, Points()), the address space of a flat coefficient table.
//
// Why:
//
//   - Aerodynamic databases vary in dimensionality: a subsonic empirical
//     model may sample only angle of attack, a hypersonic panel sweep may
//     sample four variables. The axis count is a runtime value, not a
//     type parameter.
//   - One flat table keeps coefficient storage contiguous and makes each
//     grid point independently addressable (write-once-per-offset).
//
// Ordering convention:
//
//   - Axis 0 varies slowest, the last axis fastest (row-major). Offset
//     and Tuple are exact inverses; round-trip tests pin the convention.
//
// Complexity:
//
//   - All per-point operations: O(1) or O(N) in the axis count.
//   - No allocation on the query path except Tuple/TupleValues outputs.
//
// Options:
//
//   - WithRole(role, axis) and per-role sugar (WithMachAxis, ...) fix the
//     role registry at construction; assignments are validated against
//     the variable count and never change afterwards.
//
// Errors:
//
//   - ErrNoAxes: variable count below MinVariableCount.
//   - ErrAxisRange, ErrSampleRange, ErrTupleLength, ErrOffsetRange:
//     bounds violations; the operation fails, storage is untouched.
//   - ErrAxisUnsized: axis used before SetSampleCount.
//   - ErrRoleUnassigned, ErrRoleAxis: role registry misuse.
package grid
