// core/ellip/ellip.go
// Complete elliptic integrals K(m) and E(m) for the loop-field kernels.
// Evaluation is delegated to gonum's mathext; this package only owns the
// domain guard, so callers never hand an out-of-range parameter to the
// special-function code.
//
// Convention: m is the parameter (modulus squared), as in scipy's
// ellipk/ellipe and gonum's CompleteK/CompleteE.

package ellip

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mathext"
)

// OneTol is the exclusion band below m = 1. Parameters at or above
// 1−OneTol belong to observation points on (or numerically
// indistinguishable from) the conductor, where K diverges.
const OneTol = 1e-12

// ErrDomain reports an elliptic parameter outside [0, 1−OneTol].
var ErrDomain = errors.New("ellip: parameter outside [0,1)")

// KE returns the complete elliptic integrals of the first and second
// kind for parameter m. Both integrals come from the same m so the two
// values are always mutually consistent.
func KE(m float64) (K, E float64, err error) {
	if !(m >= 0) { // catches NaN as well
		return 0, 0, fmt.Errorf("%w: m=%g", ErrDomain, m)
	}
	if m >= 1-OneTol {
		return 0, 0, fmt.Errorf("%w: m=%g within %g of 1", ErrDomain, m, OneTol)
	}
	return mathext.CompleteK(m), mathext.CompleteE(m), nil
}

// Near1 reports whether m falls in the on-conductor exclusion band.
func Near1(m float64) bool { return m >= 1-OneTol }
