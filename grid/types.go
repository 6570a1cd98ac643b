// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/flightlab/aerotable.
package grid

// Role identifies the physical meaning of one independent-variable axis.
// Roles exist purely so generic per-axis operations can be exposed under
// physically meaningful names; all storage is role-agnostic.
type Role int

const (
	// Mach is the freestream Mach number.
	Mach Role = iota
	// AngleOfAttack is the angle of attack, in the caller's angular unit.
	AngleOfAttack
	// AngleOfSideslip is the angle of sideslip, in the caller's angular unit.
	AngleOfSideslip
	// ReynoldsNumber is the freestream Reynolds number.
	ReynoldsNumber

	// numRoles bounds the Role enumeration; keep it last.
	numRoles
)

// roleNames maps each Role to its display name.
var roleNames = [numRoles]string{
	Mach:            "Mach",
	AngleOfAttack:   "AngleOfAttack",
	AngleOfSideslip: "AngleOfSideslip",
	ReynoldsNumber:  "ReynoldsNumber",
}

// String implements fmt.Stringer for Role.
func (r Role) String() string {
	if r < 0 || r >= numRoles {
		return "Role(invalid)"
	}

	return roleNames[r]
}

// valid reports whether r is a recognized physical role.
func (r Role) valid() bool {
	return r >= 0 && r < numRoles
}

// unassignedAxis marks a Role with no axis in the registry.
const unassignedAxis = -1

// MinVariableCount is the smallest number of axes a Grid may declare.
// A zero-axis grid has no index space to map and is rejected by New.
const MinVariableCount = 1

// Grid is an N-dimensional sampling grid over independent variables.
// axes[k] holds the ordered sample values of axis k; a nil entry means
// the axis has not been sized yet (an allowed transient state during
// setup). roles fixes which axis, if any, carries each physical Role;
// the mapping is validated at construction and never changes.
//
// revision increments whenever any axis is resized, so a coefficient
// table allocated against an older shape can detect that it is stale.
//
// A Grid owns its storage exclusively: accessors copy values out and
// never leak internal slices.
type Grid struct {
	axes     [][]float64
	roles    [numRoles]int
	revision uint64
}
