// core/field/general.go
// Off-axis loop field from the exact Biot–Savart reduction to complete
// elliptic integrals. In cylindrical coordinates (z along the axis,
// ρ the distance from it) the field of an axisymmetric loop has no
// azimuthal component, so the result is the pair (Bz, Bρ).
//
// With m = 4Rρ/((R+ρ)²+z²) the normalized components are
//
//	Bz = R/(π·√((R+ρ)²+z²)) · (K(m) + E(m)·(R²−ρ²−z²)/((R−ρ)²+z²))
//	Bρ = R·z/(π·ρ·√((R+ρ)²+z²)) · (−K(m) + E(m)·(R²+ρ²+z²)/((R−ρ)²+z²))
//
// ρ = 0 is a removable singularity of the Bρ formula: on the axis Bρ is
// exactly 0 and Bz reduces to the closed form in axial.go, which is what
// the code evaluates there. m → 1 means the observation point sits on
// the wire itself, where the physical field diverges; that is reported
// as ErrOnConductor instead of letting K(m) overflow.

package field

import (
	"errors"
	"fmt"
	"math"

	"bfield-core/coil"
	"bfield-core/ellip"
)

// ErrOnConductor reports an observation point on the current-carrying
// wire (ρ = R, z = 0 up to the ellip.OneTol band), where the field is
// singular.
var ErrOnConductor = errors.New("field: observation point on conductor")

// Vector is the field at one observation point, in the (z, ρ) plane.
// Units follow the function that produced it: dimensionless for the
// normalized family, Tesla for the Magnetic* family.
type Vector struct {
	Z   float64 // axial component
	Rho float64 // radial component
}

// Norm returns the magnitude of the field vector.
func (v Vector) Norm() float64 { return math.Hypot(v.Z, v.Rho) }

// Add returns v + w.
func (v Vector) Add(w Vector) Vector { return Vector{Z: v.Z + w.Z, Rho: v.Rho + w.Rho} }

// Sub returns v − w.
func (v Vector) Sub(w Vector) Vector { return Vector{Z: v.Z - w.Z, Rho: v.Rho - w.Rho} }

// Scale returns f·v.
func (v Vector) Scale(f float64) Vector { return Vector{Z: f * v.Z, Rho: f * v.Rho} }

// LoopGeneral returns the normalized field of a single loop of radius r
// at observation point (z, ρ). Negative ρ is folded through the axis:
// the radial component flips sign, the axial one does not.
func LoopGeneral(z, rho, r float64) (Vector, error) {
	if err := (coil.Loop{R: r}).Validate(); err != nil {
		return Vector{}, err
	}
	return loopGeneral(z, rho, r)
}

func loopGeneral(z, rho, r float64) (Vector, error) {
	sign := 1.0
	if rho < 0 {
		rho, sign = -rho, -1
	}
	if rho == 0 {
		return Vector{Z: loopAxial(z, r)}, nil
	}

	sum := (r+rho)*(r+rho) + z*z
	m := 4 * r * rho / sum
	K, E, err := ellip.KE(m)
	if err != nil {
		if ellip.Near1(m) {
			return Vector{}, fmt.Errorf("%w: (z=%g, rho=%g) on loop of radius %g",
				ErrOnConductor, z, sign*rho, r)
		}
		return Vector{}, err
	}

	den := (r-rho)*(r-rho) + z*z
	root := math.Sqrt(sum)
	bz := r / (math.Pi * root) * (K + E*(r*r-rho*rho-z*z)/den)
	brho := r * z / (math.Pi * rho * root) * (-K + E*(r*r+rho*rho+z*z)/den)
	return Vector{Z: bz, Rho: sign * brho}, nil
}

// HelmholtzGeneral returns the normalized field of two coaxial loops at
// z = ±d/2 with same-direction currents.
func HelmholtzGeneral(z, rho, r, d float64) (Vector, error) {
	if err := (coil.Pair{R: r, D: d}).Validate(); err != nil {
		return Vector{}, err
	}
	lo, err := loopGeneral(z+d/2, rho, r)
	if err != nil {
		return Vector{}, err
	}
	hi, err := loopGeneral(z-d/2, rho, r)
	if err != nil {
		return Vector{}, err
	}
	return lo.Add(hi), nil
}

// AntiHelmholtzGeneral returns the normalized field of the same pair
// with the current in the z = +d/2 loop reversed.
func AntiHelmholtzGeneral(z, rho, r, d float64) (Vector, error) {
	if err := (coil.Pair{R: r, D: d}).Validate(); err != nil {
		return Vector{}, err
	}
	lo, err := loopGeneral(z+d/2, rho, r)
	if err != nil {
		return Vector{}, err
	}
	hi, err := loopGeneral(z-d/2, rho, r)
	if err != nil {
		return Vector{}, err
	}
	return lo.Sub(hi), nil
}
