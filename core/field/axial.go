// core/field/axial.go
// On-axis closed forms for the loop and coil-pair fields.
//
// Two families, following the usual normalization:
//
//	LoopAxial, HelmholtzAxial, ...          normalized shape, unit current,
//	                                        dimensional prefactor omitted
//	MagneticLoopAxial, MagneticHelmholtz... shape × µ0·I/(2R), in Tesla
//
// The normalized on-axis loop field is R³/(R²+z²)^(3/2); it is the m→0
// limit of the general elliptic form in general.go, so the two paths
// agree identically on the axis.

package field

import (
	"math"

	"bfield-core/coil"
)

// LoopAxial returns the normalized on-axis field of a single loop of
// radius r at axial distance z from its center. Valid for all real z.
func LoopAxial(z, r float64) (float64, error) {
	if err := (coil.Loop{R: r}).Validate(); err != nil {
		return 0, err
	}
	return loopAxial(z, r), nil
}

func loopAxial(z, r float64) float64 {
	den := r*r + z*z
	return r * r * r / (den * math.Sqrt(den))
}

// HelmholtzAxial returns the normalized on-axis field of two coaxial
// loops at z = ±d/2 carrying same-direction current.
func HelmholtzAxial(z, r, d float64) (float64, error) {
	if err := (coil.Pair{R: r, D: d}).Validate(); err != nil {
		return 0, err
	}
	return loopAxial(z+d/2, r) + loopAxial(z-d/2, r), nil
}

// AntiHelmholtzAxial returns the normalized on-axis field of the same
// pair with the current in the z = +d/2 loop reversed. The result
// vanishes at z = 0 by construction and is linear in z near the
// midplane (the gradient-coil configuration).
func AntiHelmholtzAxial(z, r, d float64) (float64, error) {
	if err := (coil.Pair{R: r, D: d}).Validate(); err != nil {
		return 0, err
	}
	return loopAxial(z+d/2, r) - loopAxial(z-d/2, r), nil
}
