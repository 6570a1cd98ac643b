// Package grid: functional configuration for role-to-axis assignment.
//
// Design goals:
//   - Deterministic behavior: the role registry is fixed at construction,
//     never reassigned at runtime.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); axis bounds are validated against the
//     actual variable count inside New and reported as ErrRoleAxis.
//   - Reusability: Options fields are unexported; New consumes ...Option.

package grid

// Internal panic messages (no magic strings).
const (
	panicInvalidRole = "grid: WithRole: unknown role"
)

// Option mutates internal options. Safe to apply repeatedly; the last
// assignment for a given role wins.
type Option func(*options)

// options stores the effective role registry before validation in New.
type options struct {
	roles [numRoles]int
}

// defaultOptions leaves every role unassigned.
func defaultOptions() options {
	var o options
	for r := range o.roles {
		o.roles[r] = unassignedAxis
	}

	return o
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRole assigns a physical role to the axis at index axis.
// The axis bound is checked against the variable count inside New
// (ErrRoleAxis); the role itself must be a recognized constant.
// Panics with a stable message when role is invalid.
func WithRole(role Role, axis int) Option {
	if !role.valid() {
		panic(panicInvalidRole)
	}

	return func(o *options) {
		o.roles[role] = axis
	}
}

// WithMachAxis assigns the Mach role to axis. Sugar over WithRole.
func WithMachAxis(axis int) Option { return WithRole(Mach, axis) }

// WithAngleOfAttackAxis assigns the AngleOfAttack role to axis.
func WithAngleOfAttackAxis(axis int) Option { return WithRole(AngleOfAttack, axis) }

// WithAngleOfSideslipAxis assigns the AngleOfSideslip role to axis.
func WithAngleOfSideslipAxis(axis int) Option { return WithRole(AngleOfSideslip, axis) }

// WithReynoldsNumberAxis assigns the ReynoldsNumber role to axis.
func WithReynoldsNumberAxis(axis int) Option { return WithRole(ReynoldsNumber, axis) }
