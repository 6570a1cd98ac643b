// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/flightlab/aerotable/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Offset / Tuple round trip
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Offset demonstrates the row-major flat addressing of a
// two-axis grid: three Mach numbers by four angles of attack.
// Scenario:
//
//   - Axis 0 (Mach):          [0.5, 1.0, 2.0]  — varies slowest
//   - Axis 1 (AngleOfAttack): [-5, 0, 5, 10]   — varies fastest
//   - 12 grid points total; tuple (1,2) means Mach=1.0, AoA=5.
func ExampleGrid_Offset() {
	g, _ := grid.New(2,
		grid.WithMachAxis(0),
		grid.WithAngleOfAttackAxis(1),
	)
	_ = g.SetSampleCount(0, 3)
	_ = g.SetSampleCount(1, 4)
	for i, m := range []float64{0.5, 1.0, 2.0} {
		_ = g.SetRolePoint(grid.Mach, i, m)
	}
	for i, a := range []float64{-5, 0, 5, 10} {
		_ = g.SetRolePoint(grid.AngleOfAttack, i, a)
	}

	total, _ := g.Points()
	fmt.Println("points:", total)

	offset, _ := g.Offset([]int{1, 2})
	fmt.Println("offset of (1,2):", offset)

	back, _ := g.Tuple(offset)
	values, _ := g.TupleValues(back)
	fmt.Printf("tuple %v -> Mach=%.1f AoA=%.0f\n", back, values[0], values[1])

	// Output:
	// points: 12
	// offset of (1,2): 6
	// tuple [1 2] -> Mach=1.0 AoA=5
}
