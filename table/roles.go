// Physically named accessor surface of the Generator: convenience sugar
// over the grid's role-generic operations. Every method resolves its role
// through the grid registry and carries no state of its own, so a write
// under one role can never land in another role's axis.

package table

import "github.com/flightlab/aerotable/grid"

// setRolePoints sizes the axis carrying role and fills it with points.
func (gen *Generator) setRolePoints(role grid.Role, points []float64) error {
	if err := gen.grid.SetRoleSampleCount(role, len(points)); err != nil {
		return err
	}
	for i, v := range points {
		if err := gen.grid.SetRolePoint(role, i, v); err != nil {
			return err
		}
	}

	return nil
}

// SetNumberOfMachPoints sizes the Mach axis for count sample values.
func (gen *Generator) SetNumberOfMachPoints(count int) error {
	return gen.grid.SetRoleSampleCount(grid.Mach, count)
}

// NumberOfMachPoints returns the Mach axis's sample count.
func (gen *Generator) NumberOfMachPoints() (int, error) {
	return gen.grid.RoleSampleCount(grid.Mach)
}

// SetMachPoint writes a Mach number at position index of the Mach axis.
func (gen *Generator) SetMachPoint(index int, machPoint float64) error {
	return gen.grid.SetRolePoint(grid.Mach, index, machPoint)
}

// MachPoint returns the Mach number stored at position index.
func (gen *Generator) MachPoint(index int) (float64, error) {
	return gen.grid.RolePoint(grid.Mach, index)
}

// SetMachPoints sizes the Mach axis and writes all points in one call.
func (gen *Generator) SetMachPoints(points []float64) error {
	return gen.setRolePoints(grid.Mach, points)
}

// SetNumberOfAngleOfAttackPoints sizes the angle-of-attack axis.
func (gen *Generator) SetNumberOfAngleOfAttackPoints(count int) error {
	return gen.grid.SetRoleSampleCount(grid.AngleOfAttack, count)
}

// NumberOfAngleOfAttackPoints returns the angle-of-attack sample count.
func (gen *Generator) NumberOfAngleOfAttackPoints() (int, error) {
	return gen.grid.RoleSampleCount(grid.AngleOfAttack)
}

// SetAngleOfAttackPoint writes an angle of attack at position index.
func (gen *Generator) SetAngleOfAttackPoint(index int, angleOfAttackPoint float64) error {
	return gen.grid.SetRolePoint(grid.AngleOfAttack, index, angleOfAttackPoint)
}

// AngleOfAttackPoint returns the angle of attack stored at position index.
func (gen *Generator) AngleOfAttackPoint(index int) (float64, error) {
	return gen.grid.RolePoint(grid.AngleOfAttack, index)
}

// SetAngleOfAttackPoints sizes the angle-of-attack axis and writes all
// points in one call.
func (gen *Generator) SetAngleOfAttackPoints(points []float64) error {
	return gen.setRolePoints(grid.AngleOfAttack, points)
}

// SetNumberOfAngleOfSideslipPoints sizes the angle-of-sideslip axis.
func (gen *Generator) SetNumberOfAngleOfSideslipPoints(count int) error {
	return gen.grid.SetRoleSampleCount(grid.AngleOfSideslip, count)
}

// NumberOfAngleOfSideslipPoints returns the angle-of-sideslip sample count.
func (gen *Generator) NumberOfAngleOfSideslipPoints() (int, error) {
	return gen.grid.RoleSampleCount(grid.AngleOfSideslip)
}

// SetAngleOfSideslipPoint writes an angle of sideslip at position index.
func (gen *Generator) SetAngleOfSideslipPoint(index int, angleOfSideslipPoint float64) error {
	return gen.grid.SetRolePoint(grid.AngleOfSideslip, index, angleOfSideslipPoint)
}

// AngleOfSideslipPoint returns the angle of sideslip stored at position index.
func (gen *Generator) AngleOfSideslipPoint(index int) (float64, error) {
	return gen.grid.RolePoint(grid.AngleOfSideslip, index)
}

// SetAngleOfSideslipPoints sizes the angle-of-sideslip axis and writes all
// points in one call.
func (gen *Generator) SetAngleOfSideslipPoints(points []float64) error {
	return gen.setRolePoints(grid.AngleOfSideslip, points)
}

// SetNumberOfReynoldsNumberPoints sizes the Reynolds-number axis.
func (gen *Generator) SetNumberOfReynoldsNumberPoints(count int) error {
	return gen.grid.SetRoleSampleCount(grid.ReynoldsNumber, count)
}

// NumberOfReynoldsNumberPoints returns the Reynolds-number sample count.
func (gen *Generator) NumberOfReynoldsNumberPoints() (int, error) {
	return gen.grid.RoleSampleCount(grid.ReynoldsNumber)
}

// SetReynoldsNumberPoint writes a Reynolds number at position index.
func (gen *Generator) SetReynoldsNumberPoint(index int, reynoldsNumberPoint float64) error {
	return gen.grid.SetRolePoint(grid.ReynoldsNumber, index, reynoldsNumberPoint)
}

// ReynoldsNumberPoint returns the Reynolds number stored at position index.
func (gen *Generator) ReynoldsNumberPoint(index int) (float64, error) {
	return gen.grid.RolePoint(grid.ReynoldsNumber, index)
}

// SetReynoldsNumberPoints sizes the Reynolds-number axis and writes all
// points in one call.
func (gen *Generator) SetReynoldsNumberPoints(points []float64) error {
	return gen.setRolePoints(grid.ReynoldsNumber, points)
}
