// core/field/discrete.go
// Straight-segment approximation of the unit-radius loop. The loop is
// replaced by n chords and the Biot–Savart contributions are summed
// directly. Slow compared to the elliptic path but independent of it,
// which makes it a useful numerical cross-check.

package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"bfield-core/coil"
)

// LoopDiscrete approximates the normalized field of a unit-radius loop
// at observation point (z, ρ) by n straight segments. The returned
// vector holds (radial, azimuthal, axial) components in X, Y, Z; the
// azimuthal component is zero up to discretization error. A point on
// the wire (z = 0, |ρ| = 1) returns the zero vector.
func LoopDiscrete(z, rho float64, n int) (r3.Vec, error) {
	if n < 3 {
		return r3.Vec{}, fmt.Errorf("%w: need at least 3 segments, got %d",
			coil.ErrInvalidGeometry, n)
	}
	if z == 0 && math.Abs(rho) == 1 {
		return r3.Vec{}, nil
	}

	h := 2 * math.Pi / float64(n)
	var b r3.Vec
	for i := 0; i < n; i++ {
		th0 := float64(i) * h
		th1 := th0 + h
		dl := r3.Vec{X: math.Cos(th1) - math.Cos(th0), Y: math.Sin(th1) - math.Sin(th0)}
		s := r3.Vec{X: rho - math.Cos(th0), Y: -math.Sin(th0), Z: z}
		ns := r3.Norm(s)
		b = r3.Add(b, r3.Scale(1/(ns*ns*ns), r3.Cross(dl, s)))
	}
	return r3.Scale(1/(2*math.Pi), b), nil
}
