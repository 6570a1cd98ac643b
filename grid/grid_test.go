package grid_test

import (
	"errors"
	"testing"

	"github.com/flightlab/aerotable/grid"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Construction and role registry
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty grids and bad role axes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		count int
		opts  []grid.Option
		err   error
	}{
		{"ZeroAxes", 0, nil, grid.ErrNoAxes},
		{"NegativeAxes", -2, nil, grid.ErrNoAxes},
		{"RoleAxisTooLarge", 2, []grid.Option{grid.WithMachAxis(2)}, grid.ErrRoleAxis},
		{"RoleAxisNegative", 1, []grid.Option{grid.WithAngleOfAttackAxis(-1)}, grid.ErrRoleAxis},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.count, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d) error = %v; want %v", tc.count, err, tc.err)
			}
		})
	}
}

// TestWithRole_PanicsOnInvalidRole pins the programmer-error contract of
// option constructors.
func TestWithRole_PanicsOnInvalidRole(t *testing.T) {
	require.Panics(t, func() { grid.WithRole(grid.Role(99), 0) })
	require.Panics(t, func() { grid.WithRole(grid.Role(-1), 0) })
}

// TestAxisFor resolves assigned roles and rejects unassigned ones.
func TestAxisFor(t *testing.T) {
	g, err := grid.New(3,
		grid.WithMachAxis(0),
		grid.WithAngleOfAttackAxis(1),
		grid.WithReynoldsNumberAxis(2),
	)
	require.NoError(t, err)

	axis, err := g.AxisFor(grid.AngleOfAttack)
	require.NoError(t, err)
	require.Equal(t, 1, axis)

	_, err = g.AxisFor(grid.AngleOfSideslip)
	require.ErrorIs(t, err, grid.ErrRoleUnassigned)
}

// TestRoleReassignment_LastWins documents that repeating WithRole keeps the
// final assignment.
func TestRoleReassignment_LastWins(t *testing.T) {
	g, err := grid.New(2, grid.WithMachAxis(0), grid.WithMachAxis(1))
	require.NoError(t, err)

	axis, err := g.AxisFor(grid.Mach)
	require.NoError(t, err)
	require.Equal(t, 1, axis)
}

//----------------------------------------------------------------------------//
// Sample storage
//----------------------------------------------------------------------------//

// TestSetSampleCount_ReplacesStorage checks that resizing an axis discards
// its previous values and bumps the revision.
func TestSetSampleCount_ReplacesStorage(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	rev := g.Revision()

	require.NoError(t, g.SetSampleCount(0, 2))
	require.NoError(t, g.SetSamplePoint(0, 1, 3.5))
	require.Greater(t, g.Revision(), rev)

	require.NoError(t, g.SetSampleCount(0, 3))
	v, err := g.SamplePoint(0, 1)
	require.NoError(t, err)
	require.Zero(t, v, "resize must discard prior values")
}

// TestSamplePoint_Bounds exercises every bounds violation on the per-axis
// accessors.
func TestSamplePoint_Bounds(t *testing.T) {
	g, err := grid.New(2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err = g.SetSampleCount(0, 3); err != nil {
		t.Fatalf("SetSampleCount error: %v", err)
	}

	cases := []struct {
		name        string
		axis, index int
		err         error
	}{
		{"AxisNegative", -1, 0, grid.ErrAxisRange},
		{"AxisTooLarge", 2, 0, grid.ErrAxisRange},
		{"AxisUnsized", 1, 0, grid.ErrAxisUnsized},
		{"IndexNegative", 0, -1, grid.ErrSampleRange},
		{"IndexAtCount", 0, 3, grid.ErrSampleRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := g.SetSamplePoint(tc.axis, tc.index, 1.0); !errors.Is(err, tc.err) {
				t.Errorf("SetSamplePoint(%d,%d) error = %v; want %v", tc.axis, tc.index, err, tc.err)
			}
			if _, err := g.SamplePoint(tc.axis, tc.index); !errors.Is(err, tc.err) {
				t.Errorf("SamplePoint(%d,%d) error = %v; want %v", tc.axis, tc.index, err, tc.err)
			}
		})
	}

	if err := g.SetSampleCount(0, -1); !errors.Is(err, grid.ErrNegativeCount) {
		t.Errorf("SetSampleCount(0,-1) error = %v; want %v", err, grid.ErrNegativeCount)
	}
}

// TestSamplePoints_Copies verifies the accessor hands out a copy, not the
// internal slice.
func TestSamplePoints_Copies(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	require.NoError(t, g.SetSampleCount(0, 2))
	require.NoError(t, g.SetSamplePoint(0, 0, 0.5))

	out, err := g.SamplePoints(0)
	require.NoError(t, err)
	out[0] = 99

	v, err := g.SamplePoint(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)
}

// TestRoleIsolation is the regression for the classic aliasing defect:
// writing sample points through one role must never alter another role's
// axis storage.
func TestRoleIsolation(t *testing.T) {
	g, err := grid.New(2, grid.WithMachAxis(0), grid.WithAngleOfAttackAxis(1))
	require.NoError(t, err)
	require.NoError(t, g.SetRoleSampleCount(grid.Mach, 3))
	require.NoError(t, g.SetRoleSampleCount(grid.AngleOfAttack, 4))

	// Seed the angle-of-attack axis, then overwrite every Mach point.
	aoa := []float64{-5, 0, 5, 10}
	for i, v := range aoa {
		require.NoError(t, g.SetRolePoint(grid.AngleOfAttack, i, v))
	}
	for i, v := range []float64{0.5, 1.0, 2.0} {
		require.NoError(t, g.SetRolePoint(grid.Mach, i, v))
	}

	// Every angle-of-attack point must be exactly as seeded.
	for i, want := range aoa {
		got, err := g.RolePoint(grid.AngleOfAttack, i)
		require.NoError(t, err)
		require.Equal(t, want, got, "AoA point %d perturbed by Mach writes", i)
	}
	// And the Mach axis holds the Mach values.
	for i, want := range []float64{0.5, 1.0, 2.0} {
		got, err := g.RolePoint(grid.Mach, i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

//----------------------------------------------------------------------------//
// Index mapping
//----------------------------------------------------------------------------//

// sizeAxes is a test helper sizing every axis of g per counts.
func sizeAxes(t *testing.T, g *grid.Grid, counts ...int) {
	t.Helper()
	for axis, n := range counts {
		if err := g.SetSampleCount(axis, n); err != nil {
			t.Fatalf("SetSampleCount(%d,%d) error: %v", axis, n, err)
		}
	}
}

// TestOffsetTuple_Bijection exhaustively checks that Offset is a bijection
// onto [0, Points()) and that Tuple inverts it, over several grid shapes.
func TestOffsetTuple_Bijection(t *testing.T) {
	shapes := [][]int{
		{4},
		{3, 4},
		{2, 3, 4},
		{1, 5},
		{2, 1, 3, 2},
	}
	for _, shape := range shapes {
		g, err := grid.New(len(shape))
		if err != nil {
			t.Fatalf("New(%d) error: %v", len(shape), err)
		}
		sizeAxes(t, g, shape...)

		total, err := g.Points()
		if err != nil {
			t.Fatalf("Points error: %v", err)
		}
		want := 1
		for _, n := range shape {
			want *= n
		}
		if total != want {
			t.Fatalf("Points() = %d; want %d for shape %v", total, want, shape)
		}

		seen := make(map[int][]int, total)
		tuple := make([]int, len(shape))
		for {
			offset, err := g.Offset(tuple)
			if err != nil {
				t.Fatalf("Offset(%v) error: %v", tuple, err)
			}
			if offset < 0 || offset >= total {
				t.Fatalf("Offset(%v) = %d outside [0,%d)", tuple, offset, total)
			}
			if prev, dup := seen[offset]; dup {
				t.Fatalf("offset %d produced by both %v and %v", offset, prev, tuple)
			}
			seen[offset] = append([]int(nil), tuple...)

			back, err := g.Tuple(offset)
			if err != nil {
				t.Fatalf("Tuple(%d) error: %v", offset, err)
			}
			for k := range tuple {
				if back[k] != tuple[k] {
					t.Fatalf("Tuple(Offset(%v)) = %v", tuple, back)
				}
			}

			// Odometer advance, last axis fastest.
			k := len(tuple) - 1
			for ; k >= 0; k-- {
				tuple[k]++
				if tuple[k] < shape[k] {
					break
				}
				tuple[k] = 0
			}
			if k < 0 {
				break
			}
		}
		if len(seen) != total {
			t.Fatalf("covered %d offsets; want %d for shape %v", len(seen), total, shape)
		}
	}
}

// TestOffset_RowMajor pins the documented convention: axis 0 slowest,
// last axis fastest.
func TestOffset_RowMajor(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	sizeAxes(t, g, 3, 4)

	off, err := g.Offset([]int{1, 2})
	require.NoError(t, err)
	require.Equal(t, 1*4+2, off)

	off, err = g.Offset([]int{2, 0})
	require.NoError(t, err)
	require.Equal(t, 8, off)
}

// TestOffset_Errors covers tuple-shape and bounds violations.
func TestOffset_Errors(t *testing.T) {
	g, err := grid.New(2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	sizeAxes(t, g, 3, 4)

	cases := []struct {
		name  string
		tuple []int
		err   error
	}{
		{"TooShort", []int{1}, grid.ErrTupleLength},
		{"TooLong", []int{1, 2, 0}, grid.ErrTupleLength},
		{"NegativeIndex", []int{-1, 0}, grid.ErrSampleRange},
		{"IndexAtCount", []int{0, 4}, grid.ErrSampleRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := g.Offset(tc.tuple); !errors.Is(err, tc.err) {
				t.Errorf("Offset(%v) error = %v; want %v", tc.tuple, err, tc.err)
			}
		})
	}

	if _, err := g.Tuple(-1); !errors.Is(err, grid.ErrOffsetRange) {
		t.Errorf("Tuple(-1) error = %v; want %v", err, grid.ErrOffsetRange)
	}
	if _, err := g.Tuple(12); !errors.Is(err, grid.ErrOffsetRange) {
		t.Errorf("Tuple(12) error = %v; want %v", err, grid.ErrOffsetRange)
	}
}

// TestPoints_Unsized rejects mapping while any axis lacks storage.
func TestPoints_Unsized(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	require.NoError(t, g.SetSampleCount(0, 3))

	_, err = g.Points()
	require.ErrorIs(t, err, grid.ErrAxisUnsized)

	_, err = g.Offset([]int{0, 0})
	require.ErrorIs(t, err, grid.ErrAxisUnsized)
}

// TestPoints_ZeroCountAxis documents that a zero-sample axis yields an
// empty (but valid) index space.
func TestPoints_ZeroCountAxis(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	sizeAxes(t, g, 3, 0)

	total, err := g.Points()
	require.NoError(t, err)
	require.Zero(t, total)
}

// TestTupleValues resolves index tuples to physical sample values.
func TestTupleValues(t *testing.T) {
	g, err := grid.New(2, grid.WithMachAxis(0), grid.WithAngleOfAttackAxis(1))
	require.NoError(t, err)
	sizeAxes(t, g, 3, 4)
	for i, m := range []float64{0.5, 1.0, 2.0} {
		require.NoError(t, g.SetRolePoint(grid.Mach, i, m))
	}
	for i, a := range []float64{-5, 0, 5, 10} {
		require.NoError(t, g.SetRolePoint(grid.AngleOfAttack, i, a))
	}

	values, err := g.TupleValues([]int{1, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{1.0, 5}, values)

	_, err = g.TupleValues([]int{1})
	require.ErrorIs(t, err, grid.ErrTupleLength)
	_, err = g.TupleValues([]int{1, 4})
	require.ErrorIs(t, err, grid.ErrSampleRange)
}

// TestRoleString covers the Stringer including the invalid branch.
func TestRoleString(t *testing.T) {
	require.Equal(t, "Mach", grid.Mach.String())
	require.Equal(t, "ReynoldsNumber", grid.ReynoldsNumber.String())
	require.Equal(t, "Role(invalid)", grid.Role(42).String())
}
