// core/field/magnetic.go
// Dimensional wrappers: each normalized shape function times the physical
// prefactor µ0·I/(2R) gives the magnetic field in Tesla. I is signed;
// a negative current flips the whole field.

package field

import "bfield-core/coil"

// Prefactor returns µ0·i/(2r), the factor that converts a normalized
// shape value into Tesla for current i (A) and loop radius r (m).
func Prefactor(i, r float64) float64 {
	return coil.Mu0 * i / (2 * r)
}

// MagneticLoopAxial returns the on-axis field of a single loop in Tesla.
func MagneticLoopAxial(z, r, i float64) (float64, error) {
	b, err := LoopAxial(z, r)
	if err != nil {
		return 0, err
	}
	return Prefactor(i, r) * b, nil
}

// MagneticHelmholtzAxial returns the on-axis Helmholtz-pair field in Tesla.
func MagneticHelmholtzAxial(z, r, d, i float64) (float64, error) {
	b, err := HelmholtzAxial(z, r, d)
	if err != nil {
		return 0, err
	}
	return Prefactor(i, r) * b, nil
}

// MagneticAntiHelmholtzAxial returns the on-axis anti-Helmholtz-pair
// field in Tesla.
func MagneticAntiHelmholtzAxial(z, r, d, i float64) (float64, error) {
	b, err := AntiHelmholtzAxial(z, r, d)
	if err != nil {
		return 0, err
	}
	return Prefactor(i, r) * b, nil
}

// MagneticLoopGeneral returns the off-axis field of a single loop in Tesla.
func MagneticLoopGeneral(z, rho, r, i float64) (Vector, error) {
	v, err := LoopGeneral(z, rho, r)
	if err != nil {
		return Vector{}, err
	}
	return v.Scale(Prefactor(i, r)), nil
}

// MagneticHelmholtzGeneral returns the off-axis Helmholtz-pair field in Tesla.
func MagneticHelmholtzGeneral(z, rho, r, d, i float64) (Vector, error) {
	v, err := HelmholtzGeneral(z, rho, r, d)
	if err != nil {
		return Vector{}, err
	}
	return v.Scale(Prefactor(i, r)), nil
}

// MagneticAntiHelmholtzGeneral returns the off-axis anti-Helmholtz-pair
// field in Tesla.
func MagneticAntiHelmholtzGeneral(z, rho, r, d, i float64) (Vector, error) {
	v, err := AntiHelmholtzGeneral(z, rho, r, d)
	if err != nil {
		return Vector{}, err
	}
	return v.Scale(Prefactor(i, r)), nil
}
