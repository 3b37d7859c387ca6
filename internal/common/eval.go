// internal/common/eval.go
// Maps the CLI coil selector onto the core field functions.
package common

import (
	"fmt"

	"bfield-core/field"

	"bfield/internal/sweep"
)

// Coil selector values accepted by --coil.
const (
	CoilLoop          = "loop"
	CoilHelmholtz     = "helmholtz"
	CoilAntiHelmholtz = "antihelmholtz"
)

// KnownCoil reports whether kind is a supported coil selector.
func KnownCoil(kind string) bool {
	switch kind {
	case CoilLoop, CoilHelmholtz, CoilAntiHelmholtz:
		return true
	}
	return false
}

// Evaluator returns the sweep function for the selected configuration.
// The general (off-axis) path is used throughout; on the axis it reduces
// to the closed form internally. With normalized set, the dimensionless
// shape family is used and the current is ignored.
func Evaluator(kind string, r, d, i float64, normalized bool) (sweep.Func, error) {
	switch kind {
	case CoilLoop:
		if normalized {
			return func(z, rho float64) (field.Vector, error) {
				return field.LoopGeneral(z, rho, r)
			}, nil
		}
		return func(z, rho float64) (field.Vector, error) {
			return field.MagneticLoopGeneral(z, rho, r, i)
		}, nil
	case CoilHelmholtz:
		if normalized {
			return func(z, rho float64) (field.Vector, error) {
				return field.HelmholtzGeneral(z, rho, r, d)
			}, nil
		}
		return func(z, rho float64) (field.Vector, error) {
			return field.MagneticHelmholtzGeneral(z, rho, r, d, i)
		}, nil
	case CoilAntiHelmholtz:
		if normalized {
			return func(z, rho float64) (field.Vector, error) {
				return field.AntiHelmholtzGeneral(z, rho, r, d)
			}, nil
		}
		return func(z, rho float64) (field.Vector, error) {
			return field.MagneticAntiHelmholtzGeneral(z, rho, r, d, i)
		}, nil
	}
	return nil, fmt.Errorf("unknown coil %q (loop | helmholtz | antihelmholtz)", kind)
}
