// core/coil/coil.go
// Geometry value types for circular current loops and coaxial pairs.
// All types are immutable values; validate once, then evaluate fields
// at as many observation points as needed.
//
// Units are SI: lengths in meters, currents in amperes.

package coil

import (
	"errors"
	"fmt"
	"math"
)

// Mu0 is the vacuum permeability.
// Unit: Henry/Meter = Newton/Ampere² = Tesla·Meter/Ampere.
const Mu0 = 4 * math.Pi * 1e-7

// ErrInvalidGeometry reports a coil description that cannot carry a field
// computation (non-positive radius, negative pair separation).
var ErrInvalidGeometry = errors.New("coil: invalid geometry")

// Loop is a single circular loop of radius R centered on the origin,
// lying in the z = 0 plane with its axis along z.
type Loop struct {
	R float64 // radius (m)
}

// Validate checks the loop preconditions.
func (l Loop) Validate() error {
	if !(l.R > 0) { // rejects NaN too
		return fmt.Errorf("%w: radius must be > 0, got %g", ErrInvalidGeometry, l.R)
	}
	return nil
}

// Pair is two coaxial loops of equal radius R separated by D, centered
// symmetrically about the origin (loops at z = ±D/2). Current direction
// (same or opposed) is chosen by the field function, not the geometry.
type Pair struct {
	R float64 // loop radius (m)
	D float64 // separation between the loop planes (m)
}

// Validate checks the pair preconditions. D = 0 (coincident loops) is
// allowed; D < 0 is not.
func (p Pair) Validate() error {
	if !(p.R > 0) {
		return fmt.Errorf("%w: radius must be > 0, got %g", ErrInvalidGeometry, p.R)
	}
	if !(p.D >= 0) {
		return fmt.Errorf("%w: separation must be >= 0, got %g", ErrInvalidGeometry, p.D)
	}
	return nil
}

// Helmholtz returns the canonical Helmholtz geometry: D = R.
// Driven with same-direction currents it gives the uniform-field region.
func Helmholtz(r float64) Pair { return Pair{R: r, D: r} }

// AntiHelmholtz returns the canonical gradient-coil geometry, identical
// to Helmholtz spacing; the sign flip lives in the field superposition.
func AntiHelmholtz(r float64) Pair { return Pair{R: r, D: r} }
