package table

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/flightlab/aerotable/grid"
)

// Empirical correlation constants. The curve shapes follow the classic
// standard-projectile drag tables: piecewise polynomials in Mach with a
// transonic rise, plus linear lift/side-force slopes in degrees and a
// turbulent skin-friction Reynolds correction about ReferenceReynolds.
const (
	// DefaultLiftSlope is the lift-curve slope per degree of angle of
	// attack (thin-airfoil 2*pi/rad, expressed per degree).
	DefaultLiftSlope = 0.1096

	// DefaultSideSlope is the side-force slope per degree of sideslip.
	DefaultSideSlope = 0.0548

	// DefaultInducedFactor scales the lift-squared induced-drag term.
	DefaultInducedFactor = 0.052

	// ReferenceReynolds anchors the skin-friction correction; at this
	// Reynolds number the correction is exactly 1.
	ReferenceReynolds = 1.0e6

	// reynoldsExponent is the turbulent flat-plate friction exponent.
	reynoldsExponent = -0.11
)

// EmpiricalSource is a built-in coefficient source producing three-entry
// vectors [C_D, C_S, C_L] from empirical correlations of the grid's
// physical roles. Roles the grid never assigned simply drop out of the
// correlation (Mach defaults to subsonic drag, angles to zero,
// Reynolds to the reference correction).
//
// It exists so the Source extension point ships with a working concrete
// strategy; real analyses substitute panel methods or measured data.
type EmpiricalSource struct {
	g *grid.Grid
}

// NewEmpiricalSource constructs an EmpiricalSource over g.
// Returns ErrNilGrid when g is nil.
func NewEmpiricalSource(g *grid.Grid) (*EmpiricalSource, error) {
	if g == nil {
		return nil, fmt.Errorf("NewEmpiricalSource: %w", ErrNilGrid)
	}

	return &EmpiricalSource{g: g}, nil
}

// roleValue extracts the physical value carried by role from values,
// falling back to def when the grid never assigned the role.
func (s *EmpiricalSource) roleValue(role grid.Role, values []float64, def float64) float64 {
	axis, err := s.g.AxisFor(role)
	if err != nil {
		return def
	}

	return values[axis]
}

// Coefficients implements Source. The returned vector is
// [C_D, C_S, C_L]: drag, side force, lift.
func (s *EmpiricalSource) Coefficients(_ []int, values []float64) (*mat.VecDense, error) {
	machNumber := s.roleValue(grid.Mach, values, 0)
	angleOfAttack := s.roleValue(grid.AngleOfAttack, values, 0)
	angleOfSideslip := s.roleValue(grid.AngleOfSideslip, values, 0)
	reynoldsNumber := s.roleValue(grid.ReynoldsNumber, values, ReferenceReynolds)

	liftCoefficient := DefaultLiftSlope * angleOfAttack
	sideCoefficient := -DefaultSideSlope * angleOfSideslip
	dragCoefficient := zeroLiftDrag(machNumber)*reynoldsCorrection(reynoldsNumber) +
		DefaultInducedFactor*liftCoefficient*liftCoefficient

	return mat.NewVecDense(3, []float64{dragCoefficient, sideCoefficient, liftCoefficient}), nil
}

// zeroLiftDrag evaluates the piecewise empirical zero-lift drag curve:
// near-constant subsonic level, transonic rise around Mach 1, supersonic
// decay toward a wave-drag floor.
func zeroLiftDrag(machNumber float64) float64 {
	switch {
	case machNumber > 2.5:
		return 0.2608 + machNumber*(-0.0442+machNumber*0.00314)
	case machNumber > 1.2:
		return 0.4465 + machNumber*(-0.1622+machNumber*0.02201)
	case machNumber > 1.0:
		return -1.1050 + machNumber*(2.7720-machNumber*1.2667)
	case machNumber > 0.9:
		return -2.2404 + machNumber*2.6387
	case machNumber >= 0.7:
		return 0.9100 + machNumber*(-1.9017+machNumber*1.2152)
	default:
		return 0.2303 + machNumber*(0.000211-machNumber*0.1275)
	}
}

// reynoldsCorrection scales skin-friction drag for off-reference Reynolds
// numbers; non-positive inputs fall back to the reference correction.
func reynoldsCorrection(reynoldsNumber float64) float64 {
	if reynoldsNumber <= 0 {
		return 1
	}

	return math.Pow(reynoldsNumber/ReferenceReynolds, reynoldsExponent)
}
