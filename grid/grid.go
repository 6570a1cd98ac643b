// Package grid provides the variable-dimensionality sampling grid behind an
// aerodynamic-coefficient table: per-axis sample storage, a physical-role
// registry, and the mixed-radix mapping between per-axis index tuples and
// flat offsets into contiguous coefficient storage.
package grid

import "fmt"

// New constructs a Grid with variableCount axes, all initially unsized.
// Role assignments supplied via options are validated against the axis
// bound here and fixed for the grid's lifetime.
// Returns ErrNoAxes if variableCount < MinVariableCount,
// ErrRoleAxis if any assigned role references an axis outside
// [0, variableCount).
// Complexity: O(variableCount) time and memory.
func New(variableCount int, opts ...Option) (*Grid, error) {
	if variableCount < MinVariableCount {
		return nil, fmt.Errorf("New(%d): %w", variableCount, ErrNoAxes)
	}
	o := gatherOptions(opts)
	for r, axis := range o.roles {
		if axis == unassignedAxis {
			continue
		}
		if axis < 0 || axis >= variableCount {
			return nil, fmt.Errorf("New: %s->axis %d of %d: %w",
				Role(r), axis, variableCount, ErrRoleAxis)
		}
	}
	g := &Grid{
		axes:  make([][]float64, variableCount),
		roles: o.roles,
	}

	return g, nil
}

// VariableCount returns the number of independent-variable axes.
// Complexity: O(1).
func (g *Grid) VariableCount() int {
	return len(g.axes)
}

// Revision returns a counter that increments on every axis resize.
// A coefficient table records the revision it was allocated against and
// treats any later mismatch as stale.
// Complexity: O(1).
func (g *Grid) Revision() uint64 {
	return g.revision
}

// checkAxis validates an axis index against the variable count.
func (g *Grid) checkAxis(method string, axis int) error {
	if axis < 0 || axis >= len(g.axes) {
		return fmt.Errorf("%s(axis=%d): %w", method, axis, ErrAxisRange)
	}

	return nil
}

// SetSampleCount allocates storage for count sample values on axis,
// replacing any previous storage and discarding its values. Resizing an
// axis bumps the grid revision, which invalidates tables allocated
// against the old shape.
// Returns ErrAxisRange or ErrNegativeCount.
// Complexity: O(count) time and memory.
func (g *Grid) SetSampleCount(axis, count int) error {
	if err := g.checkAxis("SetSampleCount", axis); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("SetSampleCount(axis=%d, count=%d): %w", axis, count, ErrNegativeCount)
	}
	g.axes[axis] = make([]float64, count)
	g.revision++

	return nil
}

// SampleCount returns the number of sample values on axis.
// Returns ErrAxisRange for an invalid axis, ErrAxisUnsized if the axis
// was never sized.
// Complexity: O(1).
func (g *Grid) SampleCount(axis int) (int, error) {
	if err := g.checkAxis("SampleCount", axis); err != nil {
		return 0, err
	}
	if g.axes[axis] == nil {
		return 0, fmt.Errorf("SampleCount(axis=%d): %w", axis, ErrAxisUnsized)
	}

	return len(g.axes[axis]), nil
}

// checkSample validates a sample index on a sized axis.
func (g *Grid) checkSample(method string, axis, index int) error {
	if err := g.checkAxis(method, axis); err != nil {
		return err
	}
	if g.axes[axis] == nil {
		return fmt.Errorf("%s(axis=%d): %w", method, axis, ErrAxisUnsized)
	}
	if index < 0 || index >= len(g.axes[axis]) {
		return fmt.Errorf("%s(axis=%d, index=%d): %w", method, axis, index, ErrSampleRange)
	}

	return nil
}

// SetSamplePoint writes value at position index of axis's sample sequence.
// It touches exactly one axis; no other axis's storage is affected.
// Returns ErrAxisRange, ErrAxisUnsized or ErrSampleRange.
// Complexity: O(1).
func (g *Grid) SetSamplePoint(axis, index int, value float64) error {
	if err := g.checkSample("SetSamplePoint", axis, index); err != nil {
		return err
	}
	g.axes[axis][index] = value

	return nil
}

// SamplePoint returns the stored value at position index of axis.
// Returns ErrAxisRange, ErrAxisUnsized or ErrSampleRange.
// Complexity: O(1).
func (g *Grid) SamplePoint(axis, index int) (float64, error) {
	if err := g.checkSample("SamplePoint", axis, index); err != nil {
		return 0, err
	}

	return g.axes[axis][index], nil
}

// SamplePoints returns a copy of axis's full sample sequence.
// Returns ErrAxisRange or ErrAxisUnsized.
// Complexity: O(n) time and memory, n = SampleCount(axis).
func (g *Grid) SamplePoints(axis int) ([]float64, error) {
	if err := g.checkAxis("SamplePoints", axis); err != nil {
		return nil, err
	}
	if g.axes[axis] == nil {
		return nil, fmt.Errorf("SamplePoints(axis=%d): %w", axis, ErrAxisUnsized)
	}
	out := make([]float64, len(g.axes[axis]))
	copy(out, g.axes[axis])

	return out, nil
}

// AxisFor returns the axis index carrying role.
// Returns ErrRoleUnassigned when the role was not mapped at construction.
// Complexity: O(1).
func (g *Grid) AxisFor(role Role) (int, error) {
	if !role.valid() || g.roles[role] == unassignedAxis {
		return 0, fmt.Errorf("AxisFor(%s): %w", role, ErrRoleUnassigned)
	}

	return g.roles[role], nil
}

// SetRoleSampleCount sizes the axis carrying role. Pass-through to
// SetSampleCount via AxisFor; carries no independent state.
func (g *Grid) SetRoleSampleCount(role Role, count int) error {
	axis, err := g.AxisFor(role)
	if err != nil {
		return err
	}

	return g.SetSampleCount(axis, count)
}

// RoleSampleCount returns the sample count of the axis carrying role.
func (g *Grid) RoleSampleCount(role Role) (int, error) {
	axis, err := g.AxisFor(role)
	if err != nil {
		return 0, err
	}

	return g.SampleCount(axis)
}

// SetRolePoint writes value at position index of the axis carrying role.
// The role resolves through the registry exactly once, so a write under
// one role can never land in another role's axis.
func (g *Grid) SetRolePoint(role Role, index int, value float64) error {
	axis, err := g.AxisFor(role)
	if err != nil {
		return err
	}

	return g.SetSamplePoint(axis, index, value)
}

// RolePoint returns the stored value at position index of the axis
// carrying role.
func (g *Grid) RolePoint(role Role, index int) (float64, error) {
	axis, err := g.AxisFor(role)
	if err != nil {
		return 0, err
	}

	return g.SamplePoint(axis, index)
}

// Points returns the total number of grid points: the product of all
// per-axis sample counts.
// Returns ErrAxisUnsized if any axis was never sized.
// Complexity: O(VariableCount()).
func (g *Grid) Points() (int, error) {
	n := 1
	for axis, samples := range g.axes {
		if samples == nil {
			return 0, fmt.Errorf("Points(axis=%d): %w", axis, ErrAxisUnsized)
		}
		n *= len(samples)
	}

	return n, nil
}

// Offset maps an index tuple, one sample index per axis, to its flat
// offset in [0, Points()). The encoding is mixed-radix row-major: axis 0
// varies slowest, the last axis fastest. The same convention must be used
// when populating and when querying the coefficient table; both sides of
// this package use Offset, so they cannot diverge.
// Returns ErrTupleLength, ErrAxisUnsized or ErrSampleRange.
// Complexity: O(VariableCount()).
func (g *Grid) Offset(tuple []int) (int, error) {
	if len(tuple) != len(g.axes) {
		return 0, fmt.Errorf("Offset(len=%d, want %d): %w", len(tuple), len(g.axes), ErrTupleLength)
	}
	offset := 0
	for axis, index := range tuple {
		if err := g.checkSample("Offset", axis, index); err != nil {
			return 0, err
		}
		offset = offset*len(g.axes[axis]) + index
	}

	return offset, nil
}

// Tuple is the inverse of Offset: it decodes a flat offset back into the
// per-axis index tuple that produced it. Together with Offset it forms a
// bijection between the Cartesian product of valid indices and
// [0, Points()).
// Returns ErrAxisUnsized or ErrOffsetRange.
// Complexity: O(VariableCount()).
func (g *Grid) Tuple(offset int) ([]int, error) {
	total, err := g.Points()
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset >= total {
		return nil, fmt.Errorf("Tuple(%d): %w", offset, ErrOffsetRange)
	}
	tuple := make([]int, len(g.axes))
	for axis := len(g.axes) - 1; axis >= 0; axis-- {
		n := len(g.axes[axis])
		tuple[axis] = offset % n
		offset /= n
	}

	return tuple, nil
}

// TupleValues resolves an index tuple to the physical sample values it
// addresses, one per axis.
// Returns ErrTupleLength, ErrAxisUnsized or ErrSampleRange.
// Complexity: O(VariableCount()) time and memory.
func (g *Grid) TupleValues(tuple []int) ([]float64, error) {
	if len(tuple) != len(g.axes) {
		return nil, fmt.Errorf("TupleValues(len=%d, want %d): %w", len(tuple), len(g.axes), ErrTupleLength)
	}
	values := make([]float64, len(tuple))
	for axis, index := range tuple {
		if err := g.checkSample("TupleValues", axis, index); err != nil {
			return nil, err
		}
		values[axis] = g.axes[axis][index]
	}

	return values, nil
}
